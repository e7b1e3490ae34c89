package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/signadot/toml-format/go-toml/query"
)

func runQuery(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query needs an expression", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return err
	}
	file := ""
	if len(args) > 1 {
		file = args[1]
	}
	doc, err := loadArg(file)
	if err != nil {
		return err
	}
	res, err := q.Run(doc)
	if err != nil {
		return err
	}
	switch res.(type) {
	case map[string]any, []any:
		d, err := yaml.Marshal(res)
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(d)
		return err
	}
	_, err = fmt.Fprintf(cc.Out, "%v\n", res)
	return err
}
