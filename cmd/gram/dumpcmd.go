package main

import (
	"github.com/scott-cotton/cli"

	"github.com/gramlang/gram/dump"
)

func dumpTrees(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	opts := dump.Options{
		Color:     cfg.colorize(cc.Out),
		Locations: cfg.Locations,
	}
	for _, arg := range args {
		n, err := cfg.readTree(arg)
		if err != nil {
			return err
		}
		if err := dump.Dump(n, cc.Out, opts); err != nil {
			return err
		}
	}
	return nil
}
