package conv

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/signadot/dynpath/ir"
)

// AsString converts scalars to their text, and objects and arrays to
// compact JSON. Numbers are written as integers when they are integers
// and in shortest float form otherwise.
func AsString(n *ir.Node) (string, bool) {
	if n == nil {
		return "", false
	}
	switch n.Type {
	case ir.StringType:
		return n.String, true
	case ir.BoolType:
		return strconv.FormatBool(n.Bool), true
	case ir.BytesType:
		if !utf8.Valid(n.Bytes) {
			return "", false
		}
		return string(n.Bytes), true
	case ir.NumberType, ir.ObjectType, ir.ArrayType:
		d, err := n.MarshalJSON()
		if err != nil {
			return "", false
		}
		return string(d), true
	}
	return "", false
}

func ToString(n *ir.Node, fallback string) string {
	v, ok := AsString(n)
	return or(v, ok, n, "string", fallback)
}

func String(n *ir.Node) string {
	return ToString(n, "")
}

// AsBool accepts booleans, numbers (zero is false), and strings that are
// "true" or "false" in any case or a numeric literal.
func AsBool(n *ir.Node) (bool, bool) {
	if n == nil {
		return false, false
	}
	switch n.Type {
	case ir.BoolType:
		return n.Bool, true
	case ir.NumberType:
		return ir.Truth(n), true
	case ir.StringType:
		s := strings.TrimSpace(n.String)
		switch {
		case strings.EqualFold(s, "true"):
			return true, true
		case strings.EqualFold(s, "false"):
			return false, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) {
			return false, false
		}
		return f != 0, true
	}
	return false, false
}

func ToBool(n *ir.Node, fallback bool) bool {
	v, ok := AsBool(n)
	return or(v, ok, n, "bool", fallback)
}

func Bool(n *ir.Node) bool {
	return ToBool(n, false)
}

// AsInt64 accepts integral numbers, floats (truncated toward zero),
// booleans (1 and 0) and strings holding an integer or float literal.
func AsInt64(n *ir.Node) (int64, bool) {
	if n == nil {
		return 0, false
	}
	switch n.Type {
	case ir.NumberType:
		switch {
		case n.Int64 != nil:
			return *n.Int64, true
		case n.Float64 != nil:
			return truncate(*n.Float64)
		}
		return parseInt(n.Number)
	case ir.BoolType:
		if n.Bool {
			return 1, true
		}
		return 0, true
	case ir.StringType:
		return parseInt(strings.TrimSpace(n.String))
	}
	return 0, false
}

func parseInt(s string) (int64, bool) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return i, true
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return truncate(f)
}

func truncate(f float64) (int64, bool) {
	if math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func asIntRange(n *ir.Node, lo, hi int64) (int64, bool) {
	v, ok := AsInt64(n)
	if !ok || v < lo || v > hi {
		return 0, false
	}
	return v, true
}

func ToInt64(n *ir.Node, fallback int64) int64 {
	v, ok := AsInt64(n)
	return or(v, ok, n, "int64", fallback)
}

func Int64(n *ir.Node) int64 {
	return ToInt64(n, 0)
}

func ToInt32(n *ir.Node, fallback int32) int32 {
	v, ok := asIntRange(n, math.MinInt32, math.MaxInt32)
	return or(int32(v), ok, n, "int32", fallback)
}

func Int32(n *ir.Node) int32 {
	return ToInt32(n, 0)
}

func ToInt(n *ir.Node, fallback int) int {
	v, ok := asIntRange(n, math.MinInt, math.MaxInt)
	return or(int(v), ok, n, "int", fallback)
}

func Int(n *ir.Node) int {
	return ToInt(n, 0)
}

func ToInt16(n *ir.Node, fallback int16) int16 {
	v, ok := asIntRange(n, math.MinInt16, math.MaxInt16)
	return or(int16(v), ok, n, "int16", fallback)
}

func Int16(n *ir.Node) int16 {
	return ToInt16(n, 0)
}

func ToInt8(n *ir.Node, fallback int8) int8 {
	v, ok := asIntRange(n, math.MinInt8, math.MaxInt8)
	return or(int8(v), ok, n, "int8", fallback)
}

func Int8(n *ir.Node) int8 {
	return ToInt8(n, 0)
}

// AsFloat64 accepts numbers, booleans (1 and 0) and strings holding a
// numeric literal.
func AsFloat64(n *ir.Node) (float64, bool) {
	if n == nil {
		return 0, false
	}
	switch n.Type {
	case ir.NumberType:
		switch {
		case n.Float64 != nil:
			return *n.Float64, true
		case n.Int64 != nil:
			return float64(*n.Int64), true
		}
		return parseFloat(n.Number)
	case ir.BoolType:
		if n.Bool {
			return 1, true
		}
		return 0, true
	case ir.StringType:
		return parseFloat(strings.TrimSpace(n.String))
	}
	return 0, false
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func ToFloat64(n *ir.Node, fallback float64) float64 {
	v, ok := AsFloat64(n)
	return or(v, ok, n, "float64", fallback)
}

func Float64(n *ir.Node) float64 {
	return ToFloat64(n, 0)
}

func ToFloat32(n *ir.Node, fallback float32) float32 {
	v, ok := AsFloat64(n)
	if ok && !math.IsInf(v, 0) && math.Abs(v) > math.MaxFloat32 {
		ok = false
	}
	return or(float32(v), ok, n, "float32", fallback)
}

func Float32(n *ir.Node) float32 {
	return ToFloat32(n, 0)
}
