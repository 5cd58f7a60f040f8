package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/gramlang/gram/dump"
	"github.com/gramlang/gram/query"
)

func queryTrees(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires a predicate argument", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	opts := dump.Options{Color: cfg.colorize(cc.Out)}
	total := 0
	for _, arg := range args {
		n, err := cfg.readTree(arg)
		if err != nil {
			return err
		}
		hits, err := q.Select(n)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", arg, err)
		}
		total += len(hits)
		if cfg.Count {
			continue
		}
		for _, hit := range hits {
			if err := dump.Dump(hit, cc.Out, opts); err != nil {
				return err
			}
		}
	}
	if cfg.Count {
		if _, err := fmt.Fprintf(cc.Out, "%d\n", total); err != nil {
			return err
		}
	}
	return nil
}
