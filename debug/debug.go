package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Fetch  bool
	Unpack bool
	Conv   bool
	Parse  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Fetch = boolEnv("DYNPATH_DEBUG_FETCH")
	d.Unpack = boolEnv("DYNPATH_DEBUG_UNPACK")
	d.Conv = boolEnv("DYNPATH_DEBUG_CONV")
	d.Parse = boolEnv("DYNPATH_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Fetch() bool {
	return d.Fetch
}
func Unpack() bool {
	return d.Unpack
}
func Conv() bool {
	return d.Conv
}
func Parse() bool {
	return d.Parse
}
