package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/gramlang/gram/irjson"
)

func patchTrees(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	patch := []byte(args[0])
	if cfg.File {
		patch, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("could not read patch %q: %w", args[0], err)
		}
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		n, err := cfg.readTree(arg)
		if err != nil {
			return err
		}
		patched, err := irjson.ApplyPatch(n, patch)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if err := cfg.writeTree(cc.Out, patched); err != nil {
			return err
		}
	}
	return nil
}
