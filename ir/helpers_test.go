package ir

import (
	"testing"
)

func mustJSON(t *testing.T, s string) *Node {
	t.Helper()
	node := &Node{}
	if err := node.UnmarshalJSON([]byte(s)); err != nil {
		t.Fatalf("decode %s: %v", s, err)
	}
	return node
}

func jsonString(t *testing.T, node *Node) string {
	t.Helper()
	d, err := node.MarshalJSON()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return string(d)
}
