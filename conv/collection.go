package conv

import (
	"slices"
	"strings"

	"github.com/signadot/dynpath/ir"
	"github.com/signadot/dynpath/parse"
)

// AsList returns the elements of an array, of a string holding a flow
// sequence, or a one element list holding a non-null scalar.
func AsList(n *ir.Node) ([]*ir.Node, bool) {
	if n == nil {
		return nil, false
	}
	switch n.Type {
	case ir.ArrayType:
		return slices.Clone(n.Values), true
	case ir.NullType, ir.ObjectType:
		return nil, false
	case ir.StringType:
		if flow, ok := decodeFlow(n.String, '[', ']'); ok {
			return flow.Values, true
		}
	}
	return []*ir.Node{n}, true
}

// AsMap returns the fields of an object, or of a string holding a flow
// mapping.
func AsMap(n *ir.Node) (map[string]*ir.Node, bool) {
	if n == nil {
		return nil, false
	}
	switch n.Type {
	case ir.ObjectType:
		return ir.ToMap(n), true
	case ir.StringType:
		if flow, ok := decodeFlow(n.String, '{', '}'); ok {
			return ir.ToMap(flow), true
		}
	}
	return nil, false
}

func decodeFlow(s string, open, close byte) (*ir.Node, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != open || s[len(s)-1] != close {
		return nil, false
	}
	node, err := parse.ParseString(s, parse.ParseYAML())
	if err != nil {
		return nil, false
	}
	want := ir.ArrayType
	if open == '{' {
		want = ir.ObjectType
	}
	if node.Type != want {
		return nil, false
	}
	return node, true
}

func ToList(n *ir.Node, fallback []*ir.Node) []*ir.Node {
	v, ok := AsList(n)
	return or(v, ok, n, "list", fallback)
}

func List(n *ir.Node) []*ir.Node {
	return ToList(n, nil)
}

func ToStringMap(n *ir.Node, fallback map[string]*ir.Node) map[string]*ir.Node {
	v, ok := AsMap(n)
	return or(v, ok, n, "map", fallback)
}

func StringMap(n *ir.Node) map[string]*ir.Node {
	return ToStringMap(n, nil)
}

// AsListOf converts n with AsList and then every element with elt.
func AsListOf[T any](n *ir.Node, elt func(*ir.Node) (T, bool)) ([]T, bool) {
	vals, ok := AsList(n)
	if !ok {
		return nil, false
	}
	res := make([]T, len(vals))
	for i, v := range vals {
		if res[i], ok = elt(v); !ok {
			return nil, false
		}
	}
	return res, true
}

func ToListOf[T any](n *ir.Node, elt func(*ir.Node) (T, bool), fallback []T) []T {
	v, ok := AsListOf(n, elt)
	return or(v, ok, n, "list", fallback)
}

// AsMapOf converts n with AsMap and then every value with elt.
func AsMapOf[T any](n *ir.Node, elt func(*ir.Node) (T, bool)) (map[string]T, bool) {
	m, ok := AsMap(n)
	if !ok {
		return nil, false
	}
	res := make(map[string]T, len(m))
	for k, v := range m {
		if res[k], ok = elt(v); !ok {
			return nil, false
		}
	}
	return res, true
}

func ToMapOf[T any](n *ir.Node, elt func(*ir.Node) (T, bool), fallback map[string]T) map[string]T {
	v, ok := AsMapOf(n, elt)
	return or(v, ok, n, "map", fallback)
}

func ToStringSlice(n *ir.Node, fallback []string) []string {
	return ToListOf(n, AsString, fallback)
}

func StringSlice(n *ir.Node) []string {
	return ToStringSlice(n, nil)
}

func ToInt64Slice(n *ir.Node, fallback []int64) []int64 {
	return ToListOf(n, AsInt64, fallback)
}

func Int64Slice(n *ir.Node) []int64 {
	return ToInt64Slice(n, nil)
}

func ToFloat64Slice(n *ir.Node, fallback []float64) []float64 {
	return ToListOf(n, AsFloat64, fallback)
}

func Float64Slice(n *ir.Node) []float64 {
	return ToFloat64Slice(n, nil)
}
