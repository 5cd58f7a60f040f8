package main

import (
	"errors"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/gramlang/gram/diag"
	"github.com/gramlang/gram/dump"
	"github.com/gramlang/gram/pass"
)

func runPipeline(cfg *RunConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Run.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		n, err := cfg.readTree(arg)
		if err != nil {
			return err
		}
		pctx := pass.NewContext()
		pipe := pass.NewPipeline(pass.NewResolve(), pass.NewFold(), pass.NewSweep()).
			WithMaxRounds(cfg.Rounds)
		err = pipe.Run(pctx, n)
		diag.Print(os.Stderr, pctx.Diags.Diagnostics(), cfg.colorize(os.Stderr))
		if err != nil && !errors.Is(err, pass.ErrUnstable) {
			return err
		}
		if cfg.Show {
			opts := dump.Options{Color: cfg.colorize(cc.Out)}
			if err := dump.Dump(n, cc.Out, opts); err != nil {
				return err
			}
		} else if err := cfg.writeTree(cc.Out, n); err != nil {
			return err
		}
		if err != nil || pctx.Diags.HasErrors() {
			return cli.ExitCodeErr(1)
		}
	}
	return nil
}
