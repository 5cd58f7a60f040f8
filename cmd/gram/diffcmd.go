package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/gramlang/gram/treediff"
)

func diffTrees(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	before, err := cfg.readTree(args[0])
	if err != nil {
		return err
	}
	after, err := cfg.readTree(args[1])
	if err != nil {
		return err
	}
	hunks := treediff.Diff(before, after)
	if !treediff.Changed(hunks) {
		return nil
	}
	if _, err := cc.Out.Write([]byte(treediff.Format(hunks))); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
