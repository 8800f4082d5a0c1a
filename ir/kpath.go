package ir

import (
	"fmt"
	"strconv"

	"github.com/signadot/dynpath/ir/kpath"
)

// KPath returns the path string of this node's position in the tree.
//
// Examples:
//   - Root node → ""
//   - Object field "a" → "a"
//   - Array element at index 0 → "[0]"
//   - Mixed "a[0].b" → "a[0].b"
//
// Fields containing '.' or '[' are written as is, so such paths only
// resolve through the literal key matching of Fetch.
func (node *Node) KPath() string {
	if node.Parent == nil {
		return ""
	}
	switch node.Parent.Type {
	case ObjectType:
		prefix := node.Parent.KPath()
		if prefix == "" {
			return node.ParentField
		}
		return prefix + "." + node.ParentField
	case ArrayType:
		return node.Parent.KPath() + "[" + strconv.Itoa(node.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

// GetKPath navigates the tree segment by segment along a parsed path.
// Unlike Fetch, keys are never matched literally across delimiters, and
// every failure is reported:
//   - kpath.ErrSyntax for a malformed path
//   - ErrShape when a segment does not fit the node kind
//   - ErrNotFound for a missing field or an index out of range
func (node *Node) GetKPath(kp string) (*Node, error) {
	p, err := kpath.Parse(kp)
	if err != nil {
		return nil, err
	}
	return node.getKPath(p)
}

func (node *Node) getKPath(kp *kpath.KPath) (*Node, error) {
	res := node
	for ; kp != nil; kp = kp.Next {
		if kp.Index != nil {
			if res.Type != ArrayType {
				return nil, fmt.Errorf("%w: expected array at %q, got %s", ErrShape, res.KPath(), res.Type)
			}
			index := *kp.Index
			if index >= len(res.Values) {
				return nil, fmt.Errorf("%w: index out of bounds %d (len %d) at %q", ErrNotFound, index, len(res.Values), res.KPath())
			}
			res = res.Values[index]
			continue
		}
		if res.Type != ObjectType {
			return nil, fmt.Errorf("%w: expected object at %q, got %s", ErrShape, res.KPath(), res.Type)
		}
		next := res.Get(*kp.Field)
		if next == nil {
			return nil, fmt.Errorf("%w: field %q at %q", ErrNotFound, *kp.Field, res.KPath())
		}
		res = next
	}
	return res, nil
}

// SetKPath assigns v at the parsed path below node, creating missing
// intermediate objects and arrays, growing arrays with null placeholders,
// and replacing null and read-only intermediates. The path is checked
// against the existing tree before anything is changed: an existing
// non-null node of the wrong kind yields ErrConflict and leaves node
// untouched.
func (node *Node) SetKPath(kp string, v *Node) error {
	p, err := kpath.Parse(kp)
	if err != nil {
		return err
	}
	if p == nil {
		return node.Replace(v)
	}
	if err := node.planKPath(p); err != nil {
		return err
	}
	return node.setKPath(p, v)
}

// planKPath checks that setKPath(kp, ...) can succeed without mutating.
func (node *Node) planKPath(kp *kpath.KPath) error {
	if node.ReadOnly {
		return fmt.Errorf("%w at %q", ErrReadOnly, node.KPath())
	}
	cur := node
	var at *kpath.KPath
	for _, seg := range kp.Segments() {
		n := 0
		if cur != nil {
			if err := cur.accepts(seg, at); err != nil {
				return err
			}
			n = len(cur.Values)
			if cur = cur.child(seg); cur != nil && cur.Type == NullType {
				cur = nil
			}
		}
		// below a missing node everything is created, only growth is checked
		if err := checkGrow(seg, n, at); err != nil {
			return err
		}
		at = at.Append(seg)
	}
	return nil
}

// MaxGrow bounds how far past the end of an array SetIndex, SetKPath and
// UnpackKeys may place an element, so a short path such as "a[999999999]"
// cannot allocate without limit.
const MaxGrow = 1 << 16

func checkGrow(seg *kpath.KPath, n int, at *kpath.KPath) error {
	if seg.Index == nil || *seg.Index-n <= MaxGrow {
		return nil
	}
	return fmt.Errorf("%w: index %d at %q grows array of length %d by more than %d",
		ErrShape, *seg.Index, at.String(), n, MaxGrow)
}

func (node *Node) accepts(seg, at *kpath.KPath) error {
	want := ObjectType
	if seg.Index != nil {
		want = ArrayType
	}
	if node.Type == want {
		return nil
	}
	return fmt.Errorf("%w: %s %q needs %s at %q, found %s",
		ErrConflict, seg.EntryKind(), seg.SegmentString(), want, at.String(), node.Type)
}

func (node *Node) child(seg *kpath.KPath) *Node {
	if seg.Index != nil {
		return node.Index(*seg.Index)
	}
	return node.Get(*seg.Field)
}

func (node *Node) setChild(seg *kpath.KPath, v *Node) error {
	if seg.Index != nil {
		return node.SetIndex(*seg.Index, v)
	}
	return node.Set(*seg.Field, v)
}

func containerFor(seg *kpath.KPath) *Node {
	if seg.Index != nil {
		return &Node{Type: ArrayType}
	}
	return &Node{Type: ObjectType}
}

func (node *Node) setKPath(kp *kpath.KPath, v *Node) error {
	cur := node
	segs := kp.Segments()
	for i, seg := range segs[:len(segs)-1] {
		child := cur.child(seg)
		switch {
		case child == nil || child.Type == NullType:
			child = containerFor(segs[i+1])
			if err := cur.setChild(seg, child); err != nil {
				return err
			}
		case child.ReadOnly:
			mutable := child.Mutable()
			if err := child.Replace(mutable); err != nil {
				return err
			}
			child = mutable
		}
		cur = child
	}
	return cur.setChild(segs[len(segs)-1], v)
}
