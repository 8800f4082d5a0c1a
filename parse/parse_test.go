package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/dynpath/format"
	"github.com/signadot/dynpath/ir"
)

type parseTest struct {
	in   string
	opts []ParseOption
	out  string
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: `null`, out: `null`},
		{in: ``, out: `null`},
		{in: `true`, out: `true`},
		{in: `22`, out: `22`},
		{in: `-3`, out: `-3`},
		{in: `1.5`, out: `1.5`},
		{in: `hello`, out: `"hello"`},
		{in: `"a.b"`, out: `"a.b"`},
		{in: `[a, b]`, out: `["a","b"]`},
		{in: `{z: 1, a: 2}`, out: `{"z":1,"a":2}`},
		{
			in: `
z: 1
a:
  - x: true
  - 2
"a[0].b": hello
`,
			out: `{"z":1,"a":[{"x":true},2],"a[0].b":"hello"}`,
		},
		{in: "1: one\ntrue: yes\n", out: `{"1":"one","true":"yes"}`},
		{in: `{"b":1,"a":[null]}`, opts: []ParseOption{ParseJSON()}, out: `{"b":1,"a":[null]}`},
		{
			in:   `{"n":123456789012345678901234567890}`,
			opts: []ParseOption{ParseJSON()},
			out:  `{"n":123456789012345678901234567890}`,
		},
		{in: ` `, opts: []ParseOption{ParseJSON()}, out: `null`},
	}
	for _, pt := range pts {
		t.Run(pt.in, func(t *testing.T) {
			node, err := Parse([]byte(pt.in), pt.opts...)
			if err != nil {
				t.Fatal(err)
			}
			d, err := node.MarshalJSON()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(pt.out, string(d)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	pts := []parseTest{
		{in: "a: [1, 2"},
		{in: `{"a":}`, opts: []ParseOption{ParseJSON()}},
		{in: `{"a":1}{`, opts: []ParseOption{ParseJSON()}},
		{in: "a: 1", opts: []ParseOption{ParseFormat(format.Format(99))}},
	}
	for _, pt := range pts {
		t.Run(pt.in, func(t *testing.T) {
			_, err := Parse([]byte(pt.in), pt.opts...)
			if !errors.Is(err, ErrParse) {
				t.Errorf("got %v", err)
			}
		})
	}
}

func TestParsedTreeIsLinked(t *testing.T) {
	node, err := ParseString("a:\n  - b: 1\n")
	if err != nil {
		t.Fatal(err)
	}
	b := node.Fetch("a[0].b", nil)
	if b == nil {
		t.Fatal("not found")
	}
	if got := b.KPath(); got != "a[0].b" {
		t.Errorf("got %q", got)
	}
	if b.Parent.Parent.Parent != node {
		t.Errorf("root not reachable")
	}
	if err := node.UnpackKeys(); err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(node.Get("a").Index(0).Get("b"), ir.FromInt(1)) {
		t.Errorf("bad value")
	}
}
