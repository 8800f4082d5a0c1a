package dynpath

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/dynpath/conv"
	"github.com/signadot/dynpath/ir"
	"github.com/signadot/dynpath/parse"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatal(err)
	}
	return v
}

func TestFetch(t *testing.T) {
	doc := decode(t, `{"users":[{"name":"ann","tags":["x"]}],"users.count":1,"n":null}`)
	tests := []struct {
		path string
		want any
	}{
		{"users[0].name", "ann"},
		{"users.0.tags", []any{"x"}},
		{"users.count", 1.0},
		{"n", nil},
		{"users[1].name", "FB"},
		{"users[0].name.first", "FB"},
		{"users[", "FB"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Fetch(doc, tt.path, "FB")); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
	if got := Fetch(make(chan int), "a", "FB"); got != "FB" {
		t.Errorf("got %v", got)
	}
}

func TestFetchNode(t *testing.T) {
	doc := map[string]any{"port": "8080"}
	if got := conv.ToInt(FetchNode(doc, "port"), 80); got != 8080 {
		t.Errorf("got %d", got)
	}
	if got := conv.ToInt(FetchNode(doc, "host"), 80); got != 80 {
		t.Errorf("got %d", got)
	}
}

func TestFetchLeavesNodes(t *testing.T) {
	doc := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromSlice([]*ir.Node{ir.FromInt(1)})}})
	elt := doc.Fetch("a[0]", nil)
	if got := Fetch([]*ir.Node{elt}, "[0]", nil); got != int64(1) {
		t.Fatalf("got %v", got)
	}
	if got := elt.KPath(); got != "a[0]" {
		t.Errorf("node moved to %q", got)
	}
	if err := elt.Replace(ir.FromInt(9)); err != nil {
		t.Fatal(err)
	}
	if got := conv.Int(doc.Fetch("a[0]", nil)); got != 9 {
		t.Errorf("got %d", got)
	}
}

func TestUnpackMap(t *testing.T) {
	m := map[string]any{
		"a[0].b": "hello",
		"a[1]":   2,
		"c.d":    true,
		"e":      1.5,
	}
	if err := UnpackMap(m); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"a": []any{map[string]any{"b": "hello"}, int64(2)},
		"c": map[string]any{"d": true},
		"e": 1.5,
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestUnpackMapConflict(t *testing.T) {
	m := map[string]any{"a": "x", "a.b": 1, "c[0]": "y"}
	err := UnpackMap(m)
	if !errors.Is(err, ir.ErrConflict) {
		t.Fatalf("got %v", err)
	}
	want := map[string]any{"a": "x", "a.b": int64(1), "c": []any{"y"}}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestUnpackMapBadValue(t *testing.T) {
	ch := make(chan int)
	m := map[string]any{"a.b": ch}
	if err := UnpackMap(m); !errors.Is(err, ir.ErrShape) {
		t.Fatalf("got %v", err)
	}
	if len(m) != 1 || m["a.b"] != ch {
		t.Errorf("map changed: %v", m)
	}
}

type server struct {
	Port  int      `json:"port"`
	Hosts []string `json:"hosts"`
}

type config struct {
	Name   string `json:"name"`
	Server server `json:"server"`
}

func TestLoad(t *testing.T) {
	doc := `
name: svc
server.port: 8080
server.hosts[1]: b
server.hosts[0]: a
`
	var cfg config
	if err := Load([]byte(doc), &cfg); err != nil {
		t.Fatal(err)
	}
	want := config{Name: "svc", Server: server{Port: 8080, Hosts: []string{"a", "b"}}}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLoadJSON(t *testing.T) {
	var cfg config
	err := Load([]byte(`{"server.port": 1, "server.port.x": 2}`), &cfg, parse.ParseJSON())
	if !errors.Is(err, ir.ErrConflict) {
		t.Fatalf("got %v", err)
	}
	if cfg.Server.Port != 1 {
		t.Errorf("got %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	var cfg config
	if err := Load([]byte("a: [1"), &cfg); !errors.Is(err, parse.ErrParse) {
		t.Errorf("got %v", err)
	}
	if err := Load([]byte("[1, 2]"), &cfg); err == nil {
		t.Error("expected type error")
	}
}

func TestFetchStruct(t *testing.T) {
	cfg := config{Name: "svc", Server: server{Port: 80, Hosts: []string{"h"}}}
	if got := Fetch(cfg, "server.hosts[0]", nil); got != "h" {
		t.Errorf("got %v", got)
	}
	if got := Fetch(&cfg, "server.port", nil); got != int64(80) {
		t.Errorf("got %v", got)
	}
}
