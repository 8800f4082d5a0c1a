// Package dynpath navigates and rebuilds loosely typed nested data.
//
// The core lives in package ir: a node tree with path resolution
// ((*ir.Node).Fetch) and the inverse transform that turns flat keys such
// as "a[0].b" into nested structure ((*ir.Node).UnpackKeys). Package conv
// coerces the nodes found to Go types.
//
// This package applies the same operations to plain Go values as produced
// by encoding/json, for callers that do not want to hold IR nodes:
//
//	var v any
//	_ = json.Unmarshal(data, &v)
//	name := dynpath.Fetch(v, "users[0].name", "anonymous")
//
//	form := map[string]any{"a[0].b": "hello"}
//	err := dynpath.UnpackMap(form) // form is now {"a": [{"b": "hello"}]}
package dynpath
