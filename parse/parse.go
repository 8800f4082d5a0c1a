package parse

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/signadot/dynpath/debug"
	"github.com/signadot/dynpath/format"
	"github.com/signadot/dynpath/ir"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.YAMLFormat}
	for _, f := range opts {
		f(pOpts)
	}
	var (
		res *ir.Node
		err error
	)
	switch pOpts.format {
	case format.JSONFormat:
		res, err = parseJSON(d)
	case format.YAMLFormat:
		res, err = parseYAML(d)
	default:
		return nil, fmt.Errorf("%w %s", ErrFormat, pOpts.format)
	}
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed %s %v\n", pOpts.format, res)
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

func parseJSON(d []byte) (*ir.Node, error) {
	if len(bytes.TrimSpace(d)) == 0 {
		return ir.Null(), nil
	}
	res := &ir.Node{}
	if err := res.UnmarshalJSON(d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return res, nil
}

func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return FromYAML(v)
}

// FromYAML converts a value decoded by go-yaml into a node. Mappings
// decoded with yaml.UseOrderedMap keep their order; other keys than
// strings are converted to their YAML text.
func FromYAML(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := &ir.Node{Type: ir.ObjectType}
		for _, item := range x {
			key, err := keyString(item.Key)
			if err != nil {
				return nil, err
			}
			val, err := FromYAML(item.Value)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", key, err)
			}
			if err := res.Set(key, val); err != nil {
				return nil, err
			}
		}
		return res, nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i := range x {
			val, err := FromYAML(x[i])
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			vals[i] = val
		}
		return ir.FromSlice(vals), nil
	}
	res, err := ir.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return res, nil
}

func keyString(k any) (string, error) {
	switch x := k.(type) {
	case string:
		return x, nil
	case nil:
		return "null", nil
	case yaml.MapSlice, []any:
		return "", fmt.Errorf("%w: complex mapping key", ErrParse)
	}
	d, err := yaml.Marshal(k)
	if err != nil {
		return "", fmt.Errorf("%w: key %v: %w", ErrParse, k, err)
	}
	return string(bytes.TrimSpace(d)), nil
}
