// Package ir provides the node model for dynamic, loosely typed data.
//
// # Overview
//
// Data decoded from loosely typed wire formats (JSON, YAML, form style flat
// key sets) is represented as a tree of *Node. The package resolves path
// expressions against such trees and rebuilds nested trees from flat maps
// whose keys are path expressions.
//
// # Node Types
//
// The Type field is the discriminant of a closed tagged union:
//
//   - NullType: absence
//   - BoolType: Bool
//   - NumberType: Int64, Float64, or the literal in Number if neither fits
//   - StringType: String
//   - BytesType: Bytes
//   - ObjectType: Fields[i] is the key of Values[i]; keys are unique and
//     kept in insertion order
//   - ArrayType: Values, dense and 0-based
//
// Every child records Parent, ParentIndex and, in objects, ParentField, so
// a node can be substituted in its parent with Replace.
//
// # Creating Nodes
//
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("ann")},
//	    {Key: "tags", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1)})},
//	})
//	node, err := ir.FromAny(map[string]any{"a": []any{1, 2}})
//
// # Paths
//
// Path expressions are dotted fields with bracketed list indices, e.g.
// "a[0].b"; see package kpath for the grammar.
//
//	v := root.Fetch("a[0].b", ir.Null())   // never fails, may fall back
//	v, err := root.GetKPath("a[0].b")      // strict, reports why
//	err = root.SetKPath("a[2].b", ir.FromBool(true))
//
// Fetch prefers literal keys: at each level the whole remaining path is
// first tried as a single key, so a field named "a.b" wins over a → b.
//
// # Unpacking
//
// UnpackKeys turns {"a[0].b": "hello"} into {"a": [{"b": "hello"}]} in
// place. Keys that conflict with the structure built so far are left as
// they are and reported with ErrConflict.
//
// # Read-only views
//
// ReadOnlyView returns a copy whose mutation methods fail with ErrReadOnly,
// which wraps errors.ErrUnsupported.
//
// # Thread Safety
//
// Reading (Get, Fetch, GetKPath) is safe from multiple goroutines as long
// as nothing mutates the tree. Mutation, including UnpackKeys, requires
// exclusive access.
//
// # Related Packages
//
//   - github.com/signadot/dynpath/ir/kpath - Path parsing
//   - github.com/signadot/dynpath/conv - Coercion of nodes to Go types
//   - github.com/signadot/dynpath/parse - Decode text to nodes
//   - github.com/signadot/dynpath/encode - Encode nodes to text
package ir
