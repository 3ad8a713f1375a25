package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/treex-io/treex/encode"
	"github.com/treex-io/treex/ir"
	"github.com/treex-io/treex/serialize"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`
	Y     bool `cli:"name=y aliases=yaml desc='read tree documents as yaml'"`

	Main *cli.Command
}

type RenderConfig struct {
	*MainConfig
	Render *cli.Command
}

type DiffConfig struct {
	*MainConfig
	JSONPatch bool `cli:"name=p aliases=jsonpatch desc='output an RFC-6902 patch'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Patch *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Query *cli.Command
}

func (cfg *MainConfig) colors() *encode.Colors {
	if cfg.Color || isatty.IsTerminal(os.Stdout.Fd()) {
		return encode.NewColors()
	}
	return encode.PlainColors()
}

func (cfg *MainConfig) loadTree(arg string) (ir.Node, error) {
	data, err := readArg(arg)
	if err != nil {
		return nil, err
	}
	if cfg.Y || strings.HasSuffix(arg, ".yaml") || strings.HasSuffix(arg, ".yml") {
		return serialize.UnmarshalYAML(data, ir.DraftFactory{})
	}
	return serialize.UnmarshalJSON(data, ir.DraftFactory{})
}

func readArg(arg string) ([]byte, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	return io.ReadAll(r)
}
