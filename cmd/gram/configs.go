package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/gramlang/gram/ir"
	"github.com/gramlang/gram/irjson"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// readTree loads a serialized tree from a file, or from stdin for "-".
// The encoding follows -j/-y when given, otherwise the file extension,
// defaulting to JSON.
func (cfg *MainConfig) readTree(arg string) (*ir.Node, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	if cfg.yamlIO(arg) {
		n, err := irjson.FromYAML(d)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", arg, err)
		}
		return n, nil
	}
	n, err := irjson.FromJSON(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return n, nil
}

// writeTree outputs a tree in the configured serialization format.
func (cfg *MainConfig) writeTree(w io.Writer, n *ir.Node) error {
	var (
		d   []byte
		err error
	)
	if cfg.yamlIO("") {
		d, err = irjson.ToYAML(n)
	} else {
		d, err = irjson.ToJSON(n)
		d = append(d, '\n')
	}
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = w.Write(d)
	return err
}

func (cfg *MainConfig) yamlIO(arg string) bool {
	if cfg.Y {
		return true
	}
	if cfg.J {
		return false
	}
	return strings.HasSuffix(arg, ".yaml") || strings.HasSuffix(arg, ".yml")
}

// colorize reports whether output to w should be colored: forced on by
// -color, otherwise on when w is a terminal. Forcing also clears the
// color package's global NoColor, which auto-disables off-TTY.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		color.NoColor = false
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type DumpConfig struct {
	*MainConfig
	Locations bool `cli:"name=l aliases=loc desc='show source locations'"`

	Dump *cli.Command
}

type RunConfig struct {
	*MainConfig
	Rounds int  `cli:"name=rounds desc='max fixed-point rounds'"`
	Show   bool `cli:"name=d aliases=dump desc='dump the result instead of serializing it'"`

	Run *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Count bool `cli:"name=c aliases=count desc='print only the number of matches'"`

	Query *cli.Command
}

type OpdocConfig struct {
	*MainConfig

	Opdoc *cli.Command
}

type PatchConfig struct {
	*MainConfig
	File bool `cli:"name=f desc='patch arg is a file path'"`

	Patch *cli.Command
}
