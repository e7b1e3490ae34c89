package main

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/signadot/toml-format/go-toml/encode"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch needs a patch argument", cli.ErrUsage)
	}
	var patchData []byte
	if cfg.String {
		patchData = []byte(args[0])
	} else {
		patchData, err = readArg(args[0])
		if err != nil {
			return err
		}
	}
	ops, err := jsonpatch.DecodePatch(patchData)
	if err != nil {
		return fmt.Errorf("decoding patch: %w", err)
	}
	file := ""
	if len(args) > 1 {
		file = args[1]
	}
	doc, err := loadArg(file)
	if err != nil {
		return err
	}
	d, err := encode.Dump(doc)
	if err != nil {
		return err
	}
	res, err := ops.Apply([]byte(d))
	if err != nil {
		return fmt.Errorf("applying patch: %w", err)
	}
	_, err = cc.Out.Write(append(res, '\n'))
	return err
}
