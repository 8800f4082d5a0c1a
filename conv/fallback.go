package conv

import (
	"github.com/signadot/dynpath/debug"
	"github.com/signadot/dynpath/ir"
)

func or[T any](v T, ok bool, n *ir.Node, target string, fallback T) T {
	if ok {
		return v
	}
	if debug.Conv() {
		debug.Logf("conv %s: using fallback for %v\n", target, n)
	}
	return fallback
}
