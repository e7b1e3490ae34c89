package main

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get needs a dotted path", cli.ErrUsage)
	}
	path := strings.Split(args[0], ".")
	file := ""
	if len(args) > 1 {
		file = args[1]
	}
	root, err := loadArg(file)
	if err != nil {
		return err
	}
	node := root.Get(path...)
	if node == nil {
		return fmt.Errorf("no key %q", args[0])
	}
	d, err := yaml.Marshal(node.ToUntyped())
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(d)
	return err
}
