package main

import (
	"github.com/scott-cotton/cli"

	"github.com/signadot/toml-format/go-toml/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputArgs(args) {
		n, err := loadArg(file)
		if err != nil {
			return err
		}
		if err := encode.Encode(n, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputArgs(args) {
		n, err := loadArg(file)
		if err != nil {
			return err
		}
		if err := encode.Encode(n, cc.Out); err != nil {
			return err
		}
	}
	return nil
}
