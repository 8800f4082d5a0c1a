package ir

import (
	"errors"
	"fmt"
	"slices"

	"github.com/signadot/dynpath/debug"
	"github.com/signadot/dynpath/ir/kpath"
)

// UnpackKeys rewrites, in place, every top-level field of node whose key
// is a path expression (see kpath.IsPath) into the equivalent nested
// structure, so that
//
//	{"a[0].b": "hello"}
//
// becomes
//
//	{"a": [{"b": "hello"}]}
//
// Keys are processed in field order and later keys extend the structures
// built by earlier ones. Intermediates are created with SetKPath rules:
// missing or null intermediates become objects or arrays, arrays grow with
// null placeholders, read-only intermediates are replaced by mutable
// copies, and an existing terminal value is overwritten. Values are not
// unpacked recursively.
//
// A key that does not parse, whose path conflicts with the existing
// structure (for example an index into an object), or whose index lies
// more than MaxGrow past the end of its array, is left as is and
// reported. The returned error joins one error per such key, wrapping
// kpath.ErrSyntax, ErrConflict or ErrShape; all other keys are still
// unpacked.
//
// UnpackKeys is not safe for concurrent use with any other access to the
// same tree.
func (node *Node) UnpackKeys() error {
	if node.Type != ObjectType {
		return fmt.Errorf("%w: cannot unpack %s", ErrShape, node.Type)
	}
	if node.ReadOnly {
		return fmt.Errorf("%w: cannot unpack", ErrReadOnly)
	}
	var errs []error
	for _, key := range slices.Clone(node.Fields) {
		if !kpath.IsPath(key) {
			continue
		}
		if err := node.unpackKey(key); err != nil {
			if debug.Unpack() {
				debug.Logf("unpack: leaving %q: %v\n", key, err)
			}
			errs = append(errs, fmt.Errorf("key %q: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

func (node *Node) unpackKey(key string) error {
	kp, err := kpath.Parse(key)
	if err != nil {
		return err
	}
	if err := node.planKPath(kp); err != nil {
		return err
	}
	v := node.Get(key)
	if debug.Unpack() {
		debug.Logf("unpack: %q -> %s\n", key, kp)
	}
	if err := node.setKPath(kp, v); err != nil {
		return err
	}
	return node.Delete(key)
}
