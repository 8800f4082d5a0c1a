package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/signadot/dynpath/conv"
	"github.com/signadot/dynpath/encode"
	"github.com/signadot/dynpath/ir"
	"github.com/signadot/dynpath/parse"

	"github.com/scott-cotton/cli"
)

// coerceFunc converts n, returning dflt when it cannot.
type coerceFunc func(n, dflt *ir.Node) *ir.Node

func coerceWith[T any](as func(*ir.Node) (T, bool), from func(T) *ir.Node) coerceFunc {
	return func(n, dflt *ir.Node) *ir.Node {
		v, ok := as(n)
		if !ok {
			return dflt
		}
		return from(v)
	}
}

func fromUUID(u uuid.UUID) *ir.Node {
	return ir.FromString(u.String())
}

func fromList(vs []*ir.Node) *ir.Node {
	res := make([]*ir.Node, len(vs))
	for i, v := range vs {
		res[i] = v.Clone()
	}
	return ir.FromSlice(res)
}

func fromStrings(vs []string) *ir.Node {
	res := make([]*ir.Node, len(vs))
	for i, v := range vs {
		res[i] = ir.FromString(v)
	}
	return ir.FromSlice(res)
}

func fromMap(m map[string]*ir.Node) *ir.Node {
	res := make(map[string]*ir.Node, len(m))
	for k, v := range m {
		res[k] = v.Clone()
	}
	return ir.FromMap(res)
}

var coercions = map[string]coerceFunc{
	"string":  coerceWith(conv.AsString, ir.FromString),
	"bool":    coerceWith(conv.AsBool, ir.FromBool),
	"int":     coerceWith(conv.AsInt64, ir.FromInt),
	"int64":   coerceWith(conv.AsInt64, ir.FromInt),
	"float":   coerceWith(conv.AsFloat64, ir.FromFloat),
	"float64": coerceWith(conv.AsFloat64, ir.FromFloat),
	"uuid":    coerceWith(conv.AsUUID, fromUUID),
	"guid":    coerceWith(conv.AsUUID, fromUUID),
	"list":    coerceWith(conv.AsList, fromList),
	"strings": coerceWith(func(n *ir.Node) ([]string, bool) {
		return conv.AsListOf(n, conv.AsString)
	}, fromStrings),
	"map": coerceWith(conv.AsMap, fromMap),
}

func coercion(typ string) (coerceFunc, error) {
	if typ == "" {
		return func(n, dflt *ir.Node) *ir.Node {
			if n == nil {
				return dflt
			}
			return n
		}, nil
	}
	c := coercions[typ]
	if c == nil {
		return nil, fmt.Errorf("%w: unknown type %q, expected one of %s", cli.ErrUsage, typ,
			strings.Join(slices.Sorted(maps.Keys(coercions)), ", "))
	}
	return c, nil
}

func convert(cfg *ConvConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Conv.Parse(cc, args)
	if err != nil {
		cfg.Conv.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: conv requires 2 arguments, a type and a value", cli.ErrUsage)
	}
	c, err := coercion(args[0])
	if err != nil {
		return err
	}
	val, err := parse.ParseString(args[1], parse.ParseYAML())
	if err != nil {
		val = ir.FromString(args[1])
	}
	res := c(val, nil)
	if res == nil {
		return fmt.Errorf("cannot convert %q to %s", args[1], args[0])
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
