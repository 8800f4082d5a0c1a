package dynpath

import (
	"errors"
	"fmt"
	"maps"

	"github.com/signadot/dynpath/conv"
	"github.com/signadot/dynpath/ir"
	"github.com/signadot/dynpath/parse"
)

// Fetch resolves path against v with (*ir.Node).Fetch and returns the
// value found, or fallback. The result is a copy of the data in the plain
// forms of ir.ToAny: integers come back as int64, maps as map[string]any
// and lists as []any. A path resolving to an explicit null returns nil,
// not fallback.
func Fetch(v any, path string, fallback any) any {
	root, err := ir.FromAny(v)
	if err != nil {
		return fallback
	}
	res := root.Fetch(path, nil)
	if res == nil {
		return fallback
	}
	return ir.ToAny(res)
}

// FetchNode is like Fetch but returns the node, for use with package conv.
// It returns nil when path does not resolve.
func FetchNode(v any, path string) *ir.Node {
	root, err := ir.FromAny(v)
	if err != nil {
		return nil
	}
	return root.Fetch(path, nil)
}

// UnpackMap rewrites the path keys of m into nested structure in place,
// with the rules of (*ir.Node).UnpackKeys. Keys are processed in sorted
// order. All values of m are replaced by their ir.ToAny forms.
//
// Keys that cannot be unpacked stay in m and are reported in the returned
// error. If m holds a value that has no node form, m is left unchanged
// and the error wraps ir.ErrShape.
func UnpackMap(m map[string]any) error {
	root, err := ir.FromAny(m)
	if err != nil {
		return fmt.Errorf("unpack: %w", err)
	}
	uErr := root.UnpackKeys()
	clear(m)
	maps.Copy(m, ir.ToAny(root).(map[string]any))
	return uErr
}

// Load parses d, unpacks the path keys of the top-level object and stores
// the result in the value pointed to by p with conv.Decode. So the document
//
//	server.port: 8080
//	server.hosts[0]: a
//
// loads into a struct with a nested Server field. Unpack conflicts are
// returned after p is filled from what could be unpacked.
func Load(d []byte, p any, opts ...parse.ParseOption) error {
	root, err := parse.Parse(d, opts...)
	if err != nil {
		return err
	}
	var uErr error
	if root.Type == ir.ObjectType {
		uErr = root.UnpackKeys()
	}
	return errors.Join(uErr, conv.Decode(root, p))
}
