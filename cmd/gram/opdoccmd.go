package main

import (
	"github.com/scott-cotton/cli"

	"github.com/gramlang/gram/opdoc"
)

func opdocTrees(cfg *OpdocConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Opdoc.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	var ops []opdoc.Operator
	for _, arg := range args {
		n, err := cfg.readTree(arg)
		if err != nil {
			return err
		}
		ops = append(ops, opdoc.Collect(n)...)
	}
	if cfg.J {
		return opdoc.EncodeJSON(cc.Out, ops)
	}
	return opdoc.EncodeYAML(cc.Out, ops)
}
