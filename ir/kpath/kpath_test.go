package kpath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func stringPtr(s string) *string { return &s }
func intPtr(i int) *int          { return &i }

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *KPath
	}{
		{
			name: "root",
			in:   "",
			want: nil,
		},
		{
			name: "single field",
			in:   "a",
			want: &KPath{Field: stringPtr("a")},
		},
		{
			name: "dotted fields",
			in:   "a.b.c",
			want: &KPath{Field: stringPtr("a"), Next: &KPath{Field: stringPtr("b"), Next: &KPath{Field: stringPtr("c")}}},
		},
		{
			name: "field index field",
			in:   "a[0].b",
			want: &KPath{Field: stringPtr("a"), Next: &KPath{Index: intPtr(0), Next: &KPath{Field: stringPtr("b")}}},
		},
		{
			name: "multiple indices",
			in:   "m[1][22]",
			want: &KPath{Field: stringPtr("m"), Next: &KPath{Index: intPtr(1), Next: &KPath{Index: intPtr(22)}}},
		},
		{
			name: "leading index",
			in:   "[3].x",
			want: &KPath{Index: intPtr(3), Next: &KPath{Field: stringPtr("x")}},
		},
		{
			name: "leading zeros",
			in:   "a[007]",
			want: &KPath{Field: stringPtr("a"), Next: &KPath{Index: intPtr(7)}},
		},
		{
			name: "field with spaces and symbols",
			in:   "first name.$ref",
			want: &KPath{Field: stringPtr("first name"), Next: &KPath{Field: stringPtr("$ref")}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		".",
		".a",
		"a.",
		"a..b",
		"a.[0]",
		"a[",
		"a[0",
		"a[]",
		"a[x]",
		"a[-1]",
		"a[+1]",
		"a[ 1]",
		"a[1]b",
		"a[1]]",
		"a]",
		"a[99999999999999999999999]",
	} {
		t.Run(in, func(t *testing.T) {
			kp, err := Parse(in)
			if !errors.Is(err, ErrSyntax) {
				t.Fatalf("Parse(%q) = %v, %v; want ErrSyntax", in, kp, err)
			}
		})
	}
}

func TestString(t *testing.T) {
	for _, in := range []string{"a", "a.b", "a[0].b", "[1][2].c", "x[10]", ""} {
		kp, err := Parse(in)
		if err != nil {
			t.Fatal(err)
		}
		if got := kp.String(); got != in {
			t.Errorf("Parse(%q).String() = %q", in, got)
		}
	}
}

func TestSegments(t *testing.T) {
	kp := MustParse("a[0].b")
	if kp.Len() != 3 {
		t.Fatalf("Len() = %d", kp.Len())
	}
	var segs []string
	var kinds []EntryKind
	for _, x := range kp.Segments() {
		if x.Next != nil {
			t.Errorf("segment %s is linked", x.SegmentString())
		}
		segs = append(segs, x.SegmentString())
		kinds = append(kinds, x.EntryKind())
	}
	if diff := cmp.Diff([]string{"a", "[0]", "b"}, segs); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff([]EntryKind{FieldEntry, ArrayEntry, FieldEntry}, kinds); diff != "" {
		t.Error(diff)
	}
	if got := kp.Last().SegmentString(); got != "b" {
		t.Errorf("Last() = %q", got)
	}
}

func TestAppend(t *testing.T) {
	kp := MustParse("a[0]")
	child := kp.Append(Field("c"))
	if got := child.String(); got != "a[0].c" {
		t.Errorf("Append() = %q", got)
	}
	if kp.String() != "a[0]" {
		t.Errorf("Append() mutated receiver: %q", kp)
	}
	if got := (*KPath)(nil).Append(Index(2)).String(); got != "[2]" {
		t.Errorf("nil Append() = %q", got)
	}
}

func TestIsPath(t *testing.T) {
	for key, want := range map[string]bool{
		"a":      false,
		"a.b":    true,
		"a[0]":   true,
		"a]":     false,
		"":       false,
		"x y z":  false,
		"[0]":    true,
		"a.b[0]": true,
	} {
		if got := IsPath(key); got != want {
			t.Errorf("IsPath(%q) = %v", key, got)
		}
	}
}
