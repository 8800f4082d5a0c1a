package main

import (
	"errors"
	"testing"

	"github.com/scott-cotton/cli"

	"github.com/signadot/dynpath/encode"
	"github.com/signadot/dynpath/ir"
	"github.com/signadot/dynpath/parse"
)

func TestCoercion(t *testing.T) {
	tests := []struct {
		typ  string
		in   string
		want string // JSON, "" for the default
	}{
		{"", `{"a":1}`, `{"a":1}`},
		{"string", `12`, `"12"`},
		{"string", `[1, x]`, `"[1,\"x\"]"`},
		{"bool", `"TRUE"`, `true`},
		{"bool", `0`, `false`},
		{"bool", `maybe`, ""},
		{"int", `"3.9"`, `3`},
		{"int64", `true`, `1`},
		{"float", `"2.5"`, `2.5`},
		{"uuid", `"{6BA7B810-9DAD-11D1-80B4-00C04FD430C8}"`, `"6ba7b810-9dad-11d1-80b4-00c04fd430c8"`},
		{"guid", `nope`, ""},
		{"list", `5`, `[5]`},
		{"list", `"[a, b]"`, `["a","b"]`},
		{"strings", `[1, true, x]`, `["1","true","x"]`},
		{"strings", `[1, null]`, ""},
		{"map", `"{b: 1, a: 2}"`, `{"a":2,"b":1}`},
		{"map", `[1]`, ""},
		{"string", `null`, ""},
	}
	dflt := ir.FromString("default")
	for _, tt := range tests {
		t.Run(tt.typ+" "+tt.in, func(t *testing.T) {
			c, err := coercion(tt.typ)
			if err != nil {
				t.Fatal(err)
			}
			in, err := parse.ParseString(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			got := c(in, dflt)
			if tt.want == "" {
				if got != dflt {
					t.Errorf("got %s, want default", encode.MustString(got))
				}
				return
			}
			if s := compact(t, got); s != tt.want {
				t.Errorf("got %s, want %s", s, tt.want)
			}
		})
	}
}

func compact(t *testing.T, n *ir.Node) string {
	t.Helper()
	d, err := n.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}

func TestCoercionUnknown(t *testing.T) {
	if _, err := coercion("complex"); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v", err)
	}
}

func TestCoercionKeepsSource(t *testing.T) {
	doc, err := parse.ParseString("a: [x, y]\n")
	if err != nil {
		t.Fatal(err)
	}
	c, _ := coercion("list")
	c(doc.Get("a"), nil)
	if got := doc.Fetch("a[1]", nil); got == nil || got.KPath() != "a[1]" {
		t.Errorf("source tree links changed")
	}
}
