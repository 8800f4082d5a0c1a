package kpath

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// KPath is a parsed path expression, as a linked list of segments.
// Exactly one of Field and Index is set on each segment.
//
//	"a.b"    → KPath{Field: "a", Next: KPath{Field: "b"}}
//	"a[0]"   → KPath{Field: "a", Next: KPath{Index: 0}}
//	"[1].c"  → KPath{Index: 1, Next: KPath{Field: "c"}}
type KPath struct {
	Field *string // Map field name
	Index *int    // List index
	Next  *KPath  // Next segment in path (nil for leaf)
}

// String returns the canonical path string.
//
//	KPath{Field: &"a", Next: &KPath{Field: &"b"}} → "a.b"
//	KPath{Field: &"a", Next: &KPath{Index: &0}}   → "a[0]"
func (p *KPath) String() string {
	if p == nil {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
			continue
		}
		if x.Field != nil {
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(*x.Field)
		}
	}
	return buf.String()
}

// Parse parses a path string into a KPath.
//
// Examples:
//   - "a.b.c" → 3 field segments
//   - "a[0][1]" → field then two indices
//   - "a[0].b" → field, index, field
//   - "[2]" → a single index, addressing a list root
//   - "" → root path (returns nil)
//
// Errors wrap ErrSyntax.
func Parse(kpath string) (*KPath, error) {
	if kpath == "" {
		return nil, nil
	}
	root := &KPath{}
	if err := parseKFrag(kpath, root, false); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrSyntax, kpath, err)
	}
	return root, nil
}

// MustParse is like Parse but panics on error.
func MustParse(kpath string) *KPath {
	kp, err := Parse(kpath)
	if err != nil {
		panic(err)
	}
	return kp
}

// IsPath reports whether key would be read as more than a single field,
// that is whether it contains a '.' or '['.
func IsPath(key string) bool {
	return strings.ContainsAny(key, ".[")
}

// parseKFrag parses a fragment of a path string into parent and its
// successors. needField is set right after a '.', where an index or
// another '.' is not allowed.
func parseKFrag(frag string, parent *KPath, needField bool) error {
	if len(frag) == 0 {
		return fmt.Errorf("expected field at end of string")
	}
	var rest string
	switch frag[0] {
	case '[':
		if needField {
			return fmt.Errorf("expected field before '['")
		}
		i := strings.IndexByte(frag, ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, err := parseKIndex(frag[1:i])
		if err != nil {
			return err
		}
		parent.Index = &index
		rest = frag[i+1:]
	case '.':
		return fmt.Errorf("empty field")
	default:
		field, r, err := parseKField(frag)
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	}
	if len(rest) == 0 {
		return nil
	}
	needField = false
	switch rest[0] {
	case '.':
		rest = rest[1:]
		needField = true
	case '[':
	default:
		return fmt.Errorf("unexpected %q after index", rest[0])
	}
	next := &KPath{}
	if err := parseKFrag(rest, next, needField); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

// parseKIndex parses a list index such as "0" or "42". Signs, spaces and
// empty indices are rejected.
func parseKIndex(is string) (int, error) {
	if is == "" {
		return 0, fmt.Errorf("empty index")
	}
	for i := 0; i < len(is); i++ {
		if is[i] < '0' || is[i] > '9' {
			return 0, fmt.Errorf("invalid index %q", is)
		}
	}
	index, err := strconv.Atoi(is)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", is, err)
	}
	return index, nil
}

// parseKField parses a field name from the start of frag, stopping at '.'
// or '['.
func parseKField(frag string) (field, rest string, err error) {
	i := strings.IndexAny(frag, ".[]")
	if i == -1 {
		return frag, "", nil
	}
	if frag[i] == ']' {
		return "", "", fmt.Errorf("unexpected ']' in field %q", frag)
	}
	if i == 0 {
		return "", "", fmt.Errorf("empty field")
	}
	return frag[:i], frag[i:], nil
}

// Len returns the number of segments in the path.
func (p *KPath) Len() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}

// Last returns the final segment of the path.
func (p *KPath) Last() *KPath {
	if p == nil {
		return nil
	}
	x := p
	for x.Next != nil {
		x = x.Next
	}
	return x
}

// Append returns a copy of p with the segments of q appended.
func (p *KPath) Append(q *KPath) *KPath {
	if p == nil {
		return q.Clone()
	}
	res := p.Clone()
	res.Last().Next = q.Clone()
	return res
}

// Clone returns a deep copy of the path.
func (p *KPath) Clone() *KPath {
	if p == nil {
		return nil
	}
	res := p.copySegment()
	current := res
	for x := p.Next; x != nil; x = x.Next {
		current.Next = x.copySegment()
		current = current.Next
	}
	return res
}

// ParseIndex parses a bare list index such as "0" or "42", with the same
// rules as the index inside "[...]".
func ParseIndex(s string) (int, error) {
	i, err := parseKIndex(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return i, nil
}
