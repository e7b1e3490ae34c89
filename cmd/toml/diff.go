package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/toml-format/go-toml/encode"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff needs two documents", cli.ErrUsage)
	}
	a, err := loadArg(args[0])
	if err != nil {
		return err
	}
	b, err := loadArg(args[1])
	if err != nil {
		return err
	}
	aDump, err := encode.Dump(a)
	if err != nil {
		return err
	}
	bDump, err := encode.Dump(b)
	if err != nil {
		return err
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(aDump, bDump, true)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	if colorOut(cfg.MainConfig, cc) {
		fmt.Fprint(cc.Out, diffCfg.DiffPrettyText(diffs))
		return nil
	}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			printMarked(cc, "-", d.Text)
		case diffpatch.DiffInsert:
			printMarked(cc, "+", d.Text)
		}
	}
	return nil
}

func printMarked(cc *cli.Context, mark, text string) {
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		fmt.Fprintf(cc.Out, "%s %s\n", mark, line)
	}
}

func colorOut(cfg *MainConfig, cc *cli.Context) bool {
	if cfg.Color {
		return true
	}
	f, ok := cc.Out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
