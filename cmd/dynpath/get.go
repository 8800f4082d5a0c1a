package main

import (
	"fmt"

	"github.com/signadot/dynpath/encode"
	"github.com/signadot/dynpath/ir"
	"github.com/signadot/dynpath/parse"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	var dflt *ir.Node
	if cfg.Default != "" {
		dflt, err = parse.ParseString(cfg.Default, parse.ParseYAML())
		if err != nil {
			return fmt.Errorf("%w: default: %w", cli.ErrUsage, err)
		}
	}
	c, err := coercion(cfg.Type)
	if err != nil {
		return err
	}
	return cfg.eachDoc(cc, args[1:], func(file string, doc *ir.Node) error {
		res := c(doc.Fetch(path, nil), dflt)
		if res == nil {
			return fmt.Errorf("%s: %w: %q", file, ir.ErrNotFound, path)
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	})
}
