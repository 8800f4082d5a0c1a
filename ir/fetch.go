package ir

import (
	"strings"

	"github.com/signadot/dynpath/debug"
	"github.com/signadot/dynpath/ir/kpath"
)

// Fetch resolves path against node and returns the value found there, or
// fallback.
//
// Resolution works on the unparsed remainder of path. At an object, the
// whole remainder is first looked up as a literal key. Failing that, the
// remainder is split at each '.' and '[' from the rightmost to the
// leftmost, and the first split whose prefix is a key and whose suffix
// resolves below that key wins. Thus a literal key "a.b" is preferred over
// the nested a → b, and longer literal keys are preferred over shorter
// ones. At an array, the remainder must start with "[N]" or a bare
// decimal component "N".
//
// Malformed paths, missing keys, indices out of range and paths running
// into scalars all yield fallback. A path that resolves to an explicit
// null returns the null node, not fallback; use GetOr for the lookup that
// treats null as missing. Fetch never mutates node.
func (node *Node) Fetch(path string, fallback *Node) *Node {
	res, ok := node.fetch(path)
	if !ok {
		if debug.Fetch() {
			debug.Logf("fetch %q at %q: no match, using fallback\n", path, node.KPath())
		}
		return fallback
	}
	return res
}

// Fetch is like (*Node).Fetch but accepts a nil root.
func Fetch(root *Node, path string, fallback *Node) *Node {
	if root == nil {
		return fallback
	}
	return root.Fetch(path, fallback)
}

func (node *Node) fetch(rest string) (*Node, bool) {
	if rest == "" {
		return node, true
	}
	switch node.Type {
	case ObjectType:
		return node.fetchObject(rest)
	case ArrayType:
		return node.fetchArray(rest)
	default:
		return nil, false
	}
}

func (node *Node) fetchObject(rest string) (*Node, bool) {
	if v := node.Get(rest); v != nil {
		return v, true
	}
	for i := len(rest) - 1; i > 0; i-- {
		var next string
		switch rest[i] {
		case '.':
			next = rest[i+1:]
			if next == "" {
				continue
			}
		case '[':
			next = rest[i:]
		default:
			continue
		}
		child := node.Get(rest[:i])
		if child == nil {
			continue
		}
		if debug.Fetch() {
			debug.Logf("fetch: key %q at %q, remainder %q\n", rest[:i], node.KPath(), next)
		}
		if res, ok := child.fetch(next); ok {
			return res, true
		}
	}
	return nil, false
}

func (node *Node) fetchArray(rest string) (*Node, bool) {
	var seg, next string
	if rest[0] == '[' {
		j := strings.IndexByte(rest, ']')
		if j == -1 {
			return nil, false
		}
		seg, next = rest[1:j], rest[j+1:]
		if next != "" && next[0] != '.' && next[0] != '[' {
			return nil, false
		}
	} else {
		j := strings.IndexAny(rest, ".[")
		if j == -1 {
			seg, next = rest, ""
		} else {
			seg, next = rest[:j], rest[j:]
		}
	}
	if strings.HasPrefix(next, ".") {
		next = next[1:]
		if next == "" {
			return nil, false
		}
	}
	index, err := kpath.ParseIndex(seg)
	if err != nil || index >= len(node.Values) {
		return nil, false
	}
	return node.Values[index].fetch(next)
}
