package kpath

import "strconv"

type EntryKind int

const (
	FieldEntry EntryKind = iota
	ArrayEntry
)

func (k EntryKind) String() string {
	switch k {
	case FieldEntry:
		return "field"
	case ArrayEntry:
		return "index"
	default:
		return "<unknown entry kind>"
	}
}

// Field returns a single field segment.
func Field(name string) *KPath {
	return &KPath{Field: &name}
}

// Index returns a single list index segment.
func Index(i int) *KPath {
	return &KPath{Index: &i}
}

// EntryKind reports whether this segment addresses a map field or a list
// index.
func (p *KPath) EntryKind() EntryKind {
	if p.Index != nil {
		return ArrayEntry
	}
	return FieldEntry
}

// SegmentString returns the string form of this single segment.
//   - KPath{Field: &"a"} → "a"
//   - KPath{Index: &0} → "[0]"
func (p *KPath) SegmentString() string {
	if p == nil {
		return ""
	}
	if p.Index != nil {
		return "[" + strconv.Itoa(*p.Index) + "]"
	}
	if p.Field != nil {
		return *p.Field
	}
	return ""
}

func (p *KPath) copySegment() *KPath {
	res := &KPath{}
	if p.Field != nil {
		tmp := *p.Field
		res.Field = &tmp
	}
	if p.Index != nil {
		tmp := *p.Index
		res.Index = &tmp
	}
	return res
}

// Segments returns the path as a slice of single, unlinked segments.
func (p *KPath) Segments() []*KPath {
	res := make([]*KPath, 0, p.Len())
	for x := p; x != nil; x = x.Next {
		res = append(res, x.copySegment())
	}
	return res
}
