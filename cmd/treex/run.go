package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/treex-io/treex"
	"github.com/treex-io/treex/encode"
	"github.com/treex-io/treex/mapping"
	"github.com/treex-io/treex/query"
	"github.com/treex-io/treex/serialize"
)

func render(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		cfg.Render.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		n, err := cfg.loadTree(arg)
		if err != nil {
			return err
		}
		if err := encode.Encode(n, cc.Out, cfg.colors()); err != nil {
			return err
		}
	}
	return nil
}

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	left, err := cfg.loadTree(args[0])
	if err != nil {
		return err
	}
	right, err := cfg.loadTree(args[1])
	if err != nil {
		return err
	}
	if cfg.JSONPatch {
		res, err := mapping.TopDown{}.Map(left, right)
		if err != nil {
			return err
		}
		d, err := serialize.ExportJSONPatch(left, res)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\n", d)
		return nil
	}
	t, err := treex.Diff(left, right)
	if err != nil {
		return err
	}
	return t.Encode(cc.Out, cfg.colors())
}

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires two arguments", cli.ErrUsage)
	}
	doc, err := readArg(args[0])
	if err != nil {
		return err
	}
	p, err := readArg(args[1])
	if err != nil {
		return err
	}
	out, err := serialize.ApplyJSONPatch(doc, p)
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "%s\n", out)
	return nil
}

func runQuery(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires a predicate expression", cli.ErrUsage)
	}
	pred, err := query.Compile(args[0])
	if err != nil {
		return err
	}
	for _, arg := range args[1:] {
		n, err := cfg.loadTree(arg)
		if err != nil {
			return err
		}
		nodes, err := query.Select(n, pred)
		if err != nil {
			return err
		}
		for _, match := range nodes {
			fmt.Fprintf(cc.Out, "%s\n", encode.String(match))
		}
	}
	return nil
}
