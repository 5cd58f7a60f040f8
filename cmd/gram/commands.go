package main

import (
	"github.com/scott-cotton/cli"

	"github.com/gramlang/gram/pass"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "gram").
		WithSynopsis("gram [opts] command [opts]").
		WithDescription("gram is a tool for working with serialized gram trees.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gramMain(cfg, cc, args)
		}).
		WithSubs(
			DumpCommand(cfg),
			RunCommand(cfg),
			DiffCommand(cfg),
			QueryCommand(cfg),
			OpdocCommand(cfg),
			PatchCommand(cfg))
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithAliases("d").
		WithSynopsis("dump [files]").
		WithDescription("print trees one node per line").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dumpTrees(cfg, cc, args)
		})
}

func RunCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RunConfig{MainConfig: mainCfg, Rounds: pass.DefaultMaxRounds}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Run, "run").
		WithAliases("r").
		WithSynopsis("run [opts] [files]").
		WithDescription("run the standard pass pipeline over trees").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runPipeline(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("di").
		WithSynopsis("diff a b").
		WithDescription("diff the dumps of two trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return diffTrees(cfg, cc, args)
		})
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q").
		WithSynopsis("query <predicate> [files]").
		WithDescription("select nodes matching a predicate expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return queryTrees(cfg, cc, args)
		})
}

func OpdocCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &OpdocConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Opdoc, "opdoc").
		WithSynopsis("opdoc [files]").
		WithDescription("extract operator metadata for the documentation generator").
		WithRun(func(cc *cli.Context, args []string) error {
			return opdocTrees(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithSynopsis("patch [opts] <patch> [files]").
		WithDescription("apply an RFC 6902 patch to trees").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchTrees(cfg, cc, args)
		})
}
