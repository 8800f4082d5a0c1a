package main

import (
	"fmt"
	"os"

	"github.com/signadot/dynpath/encode"
	"github.com/signadot/dynpath/ir"
	"github.com/signadot/dynpath/parse"

	"github.com/scott-cotton/cli"

	jsonpatch "github.com/evanphx/json-patch"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	ops, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	failed := false
	err = cfg.eachDoc(cc, args[1:], func(file string, doc *ir.Node) error {
		res, err := applyPatch(ops, doc)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if cfg.Unpack {
			if uErr := res.UnpackKeys(); uErr != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", file, uErr)
				failed = true
			}
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) (jsonpatch.Patch, error) {
	var (
		node *ir.Node
		err  error
	)
	if cfg.String {
		node, err = parse.ParseString(arg, parse.ParseYAML())
	} else {
		node, err = getObjFile(cc, arg, cfg.parseOpts(arg)...)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: error decoding patch: %w", cli.ErrUsage, err)
	}
	return decodePatch(node)
}

func decodePatch(node *ir.Node) (jsonpatch.Patch, error) {
	d, err := node.MarshalJSON()
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return ops, nil
}

func applyPatch(ops jsonpatch.Patch, doc *ir.Node) (*ir.Node, error) {
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	return parse.Parse(out, parse.ParseJSON())
}
