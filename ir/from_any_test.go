package ir

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestFromAny(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, `null`},
		{"string", "x", `"x"`},
		{"int", 3, `3`},
		{"uint8", uint8(200), `200`},
		{"big uint", uint64(math.MaxUint64), `18446744073709551615`},
		{"float", 1.25, `1.25`},
		{"json number", json.Number("12"), `12`},
		{"sorted map", map[string]any{"b": 1, "a": []any{true, nil}}, `{"a":[true,null],"b":1}`},
		{"typed slice", []string{"x", "y"}, `["x","y"]`},
		{"typed map", map[string]int{"k": 1}, `{"k":1}`},
		{"pointer", &[]int{1}, `[1]`},
		{"text marshaler", id, `"6ba7b810-9dad-11d1-80b4-00c04fd430c8"`},
		{"time", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), `"2024-01-02T03:04:05Z"`},
		{"node", FromString("n"), `"n"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := FromAny(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got := jsonString(t, node); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFromAnyErrors(t *testing.T) {
	for _, in := range []any{
		map[int]string{1: "x"},
		make(chan int),
		map[string]any{"f": func() {}},
	} {
		if _, err := FromAny(in); !errors.Is(err, ErrShape) {
			t.Errorf("%T: got %v", in, err)
		}
	}
}

func TestToAny(t *testing.T) {
	node := mustJSON(t, `{"a":[1,2.5,"x",null,false],"b":{"c":123456789012345678901234567890}}`)
	want := map[string]any{
		"a": []any{int64(1), 2.5, "x", nil, false},
		"b": map[string]any{"c": json.Number("123456789012345678901234567890")},
	}
	if diff := cmp.Diff(want, ToAny(node)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := ToAny(&Node{Type: NumberType, Number: "1e999"}); got != json.Number("1e999") {
		t.Errorf("got %#v", got)
	}
}

func TestFromAnyKeepsNodes(t *testing.T) {
	doc := mustJSON(t, `{"a":[1,2]}`)
	elt := doc.Fetch("a[0]", nil)
	for _, in := range []any{
		elt,
		[]*Node{elt},
		map[string]*Node{"x": elt},
	} {
		node, err := FromAny(in)
		if err != nil {
			t.Fatal(err)
		}
		node.Visit(func(n *Node, isPost bool) (bool, error) {
			if n == elt {
				t.Errorf("%T: node shared with source tree", in)
			}
			return true, nil
		})
		if got := elt.KPath(); got != "a[0]" {
			t.Fatalf("%T: source node moved to %q", in, got)
		}
	}
	if err := elt.Replace(FromInt(9)); err != nil {
		t.Fatal(err)
	}
	if got := jsonString(t, doc); got != `{"a":[9,2]}` {
		t.Errorf("got %s", got)
	}
}
