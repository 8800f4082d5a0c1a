package main

import (
	"fmt"
	"os"

	"github.com/signadot/dynpath/encode"
	"github.com/signadot/dynpath/ir"

	"github.com/scott-cotton/cli"
)

func unpack(cfg *UnpackConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Unpack.Parse(cc, args)
	if err != nil {
		cfg.Unpack.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	failed := false
	err = cfg.eachDoc(cc, args, func(file string, doc *ir.Node) error {
		var before string
		if cfg.Diff {
			// uncolored, for diffing
			before = encode.MustString(doc, encode.EncodeFormat(cfg.outFormat()))
		}
		if uErr := doc.UnpackKeys(); uErr != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", file, uErr)
			failed = true
		}
		if !cfg.Diff {
			if err := encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
				return fmt.Errorf("error encoding result: %w", err)
			}
			return nil
		}
		after := encode.MustString(doc, encode.EncodeFormat(cfg.outFormat()))
		writeLineDiff(cc.Out, before+"\n", after+"\n")
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
