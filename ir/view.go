package ir

// ReadOnlyView returns a read-only snapshot of y: a deep copy in which
// every node is read-only. Later changes to y are not seen through it.
// Reads, Fetch and GetKPath work as usual; Set, Delete, Append, SetIndex,
// Replace and UnpackKeys fail with an error wrapping ErrReadOnly (and so
// errors.ErrUnsupported).
func (y *Node) ReadOnlyView() *Node {
	res := y.Clone()
	res.Parent = nil
	setReadOnly(res, true)
	return res
}

// Mutable returns a deep copy of y in which no node is read-only. The copy
// keeps y's parent links so it can be swapped in with Replace.
func (y *Node) Mutable() *Node {
	res := y.Clone()
	setReadOnly(res, false)
	return res
}

func setReadOnly(y *Node, v bool) {
	_ = y.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost {
			n.ReadOnly = v
		}
		return true, nil
	})
}
