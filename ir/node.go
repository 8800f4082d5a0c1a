package ir

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []string
	Values      []*Node

	// ReadOnly containers refuse mutation with ErrReadOnly.
	ReadOnly bool

	String  string
	Bool    bool
	Bytes   []byte
	Number  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.ReadOnly = y.ReadOnly
	dst.Fields = slices.Clone(y.Fields)
	dst.Values = make([]*Node, len(y.Values))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Values[i] = dstI
	}
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Bytes = slices.Clone(y.Bytes)
	dst.Number = y.Number
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	return dst
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

// FromNumber creates a number node from a numeric literal. The literal is
// kept in Number when it is an integer beyond the int64 range or does not
// fit a float64.
func FromNumber(lit string) *Node {
	i, err := strconv.ParseInt(lit, 10, 64)
	if err == nil {
		return FromInt(i)
	}
	if !errors.Is(err, strconv.ErrRange) {
		if f, err := strconv.ParseFloat(lit, 64); err == nil {
			return FromFloat(f)
		}
	}
	return &Node{
		Type:   NumberType,
		Number: lit,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromBytes(v []byte) *Node {
	return &Node{
		Type:  BytesType,
		Bytes: v,
	}
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals creates an object preserving the order of kvs. A repeated
// key keeps its first position and its last value.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]string, 0, len(kvs))
	res.Values = make([]*Node, 0, len(kvs))
	for _, kv := range kvs {
		res.put(kv.Key, kv.Val)
	}
	return res
}

// FromMap creates an object with the keys of yMap in sorted order.
func FromMap(yMap map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]string, 0, len(yMap))
	res.Values = make([]*Node, 0, len(yMap))
	for _, key := range slices.Sorted(maps.Keys(yMap)) {
		res.put(key, yMap[key])
	}
	return res
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i, field := range node.Fields {
		res[field] = node.Values[i]
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		if y == nil {
			y = Null()
		}
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = ""
	}
	return res
}

func (y *Node) fieldIndex(field string) int {
	if y == nil || y.Type != ObjectType {
		return -1
	}
	return slices.Index(y.Fields, field)
}

// Get returns the value of field, or nil if y is not an object or has no
// such field. The field is matched literally, it is never read as a path.
func (y *Node) Get(field string) *Node {
	i := y.fieldIndex(field)
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

// GetOr is Get with a fallback for a missing field or a null value.
// Fetch, in contrast, returns an explicit null as found.
func (y *Node) GetOr(field string, fallback *Node) *Node {
	v := y.Get(field)
	if v == nil || v.Type == NullType {
		return fallback
	}
	return v
}

func (y *Node) Has(field string) bool {
	return y.fieldIndex(field) != -1
}

// Index returns the i'th element of an array, or nil.
func (y *Node) Index(i int) *Node {
	if y == nil || y.Type != ArrayType || i < 0 || i >= len(y.Values) {
		return nil
	}
	return y.Values[i]
}

// Len returns the number of entries of a container, and 0 for leaves.
func (y *Node) Len() int {
	if y == nil || y.Type.IsLeaf() {
		return 0
	}
	return len(y.Values)
}

// Keys returns a copy of the object's fields in order.
func (y *Node) Keys() []string {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	return slices.Clone(y.Fields)
}

func (y *Node) checkMutable(want Type) error {
	if y.ReadOnly {
		return fmt.Errorf("%w at %q", ErrReadOnly, y.KPath())
	}
	if y.Type != want {
		return fmt.Errorf("%w: expected %s at %q, got %s", ErrShape, want, y.KPath(), y.Type)
	}
	return nil
}

// put sets field without checks.
func (y *Node) put(field string, v *Node) {
	if v == nil {
		v = Null()
	}
	v.Parent = y
	v.ParentField = field
	if i := slices.Index(y.Fields, field); i != -1 {
		v.ParentIndex = i
		y.Values[i] = v
		return
	}
	v.ParentIndex = len(y.Values)
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
}

// Set sets field to v, replacing an existing value in place or appending
// a new field. A nil v is stored as null.
func (y *Node) Set(field string, v *Node) error {
	if err := y.checkMutable(ObjectType); err != nil {
		return err
	}
	y.put(field, v)
	return nil
}

// Delete removes field. Deleting an absent field is a no-op.
func (y *Node) Delete(field string) error {
	if err := y.checkMutable(ObjectType); err != nil {
		return err
	}
	i := slices.Index(y.Fields, field)
	if i == -1 {
		return nil
	}
	old := y.Values[i]
	if old.Parent == y && old.ParentField == field {
		old.Parent = nil
		old.ParentField = ""
	}
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	for j := i; j < len(y.Values); j++ {
		y.Values[j].ParentIndex = j
	}
	return nil
}

func (y *Node) Append(v *Node) error {
	if err := y.checkMutable(ArrayType); err != nil {
		return err
	}
	if v == nil {
		v = Null()
	}
	v.Parent = y
	v.ParentIndex = len(y.Values)
	v.ParentField = ""
	y.Values = append(y.Values, v)
	return nil
}

// SetIndex sets element i of an array to v. The array grows with null
// placeholders as needed, so it never has holes, but by at most MaxGrow
// elements.
func (y *Node) SetIndex(i int, v *Node) error {
	if err := y.checkMutable(ArrayType); err != nil {
		return err
	}
	if i < 0 {
		return fmt.Errorf("%w: negative index %d at %q", ErrShape, i, y.KPath())
	}
	if i-len(y.Values) > MaxGrow {
		return fmt.Errorf("%w: index %d grows array of length %d at %q by more than %d",
			ErrShape, i, len(y.Values), y.KPath(), MaxGrow)
	}
	for len(y.Values) <= i {
		if err := y.Append(Null()); err != nil {
			return err
		}
	}
	if v == nil {
		v = Null()
	}
	v.Parent = y
	v.ParentIndex = i
	v.ParentField = ""
	y.Values[i] = v
	return nil
}

// Replace substitutes v for y in y's parent. For a root node the contents
// of v are moved into y, so callers holding y observe the change.
func (y *Node) Replace(v *Node) error {
	if v == nil {
		v = Null()
	}
	p := y.Parent
	if p == nil {
		if y.ReadOnly {
			return fmt.Errorf("%w at root", ErrReadOnly)
		}
		y.adopt(v)
		return nil
	}
	switch p.Type {
	case ObjectType:
		return p.Set(y.ParentField, v)
	case ArrayType:
		return p.SetIndex(y.ParentIndex, v)
	default:
		panic("parent but not in container")
	}
}

// adopt moves the contents of v into y, keeping y's position in the tree.
func (y *Node) adopt(v *Node) {
	parent, index, field := y.Parent, y.ParentIndex, y.ParentField
	*y = *v
	y.Parent, y.ParentIndex, y.ParentField = parent, index, field
	for _, c := range y.Values {
		c.Parent = y
	}
}

// Visit calls f on y and its descendants, depth first, once before
// (isPost false) and once after (isPost true) the children. Children are
// skipped when the pre-order call returns false.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
