package ir

import (
	"bytes"
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Objects compare by their sorted fields, so field order does not matter.
// Numbers compare by value regardless of representation.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BytesType:
		return bytes.Compare(a.Bytes, b.Bytes)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

// Equal reports whether a and b hold the same data.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Bytes < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case BytesType:
		return 4
	case ArrayType:
		return 5
	case ObjectType:
		return 6
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	if a.Int64 != nil && b.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	if isLiteral(a) && isLiteral(b) {
		return strings.Compare(a.Number, b.Number)
	}
	return cmp.Compare(numberFloat(a), numberFloat(b))
}

func isLiteral(n *Node) bool {
	return n.Int64 == nil && n.Float64 == nil
}

func numberFloat(n *Node) float64 {
	switch {
	case n.Int64 != nil:
		return float64(*n.Int64)
	case n.Float64 != nil:
		return *n.Float64
	}
	f, err := strconv.ParseFloat(n.Number, 64)
	if err != nil && !math.IsInf(f, 0) {
		return math.NaN()
	}
	return f
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareObjects(a, b *Node) int {
	fieldsA := slices.Sorted(slices.Values(a.Fields))
	fieldsB := slices.Sorted(slices.Values(b.Fields))
	minLen := min(len(fieldsA), len(fieldsB))

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(fieldsA[i], fieldsB[i]); c != 0 {
			return c
		}
		if c := Compare(a.Get(fieldsA[i]), b.Get(fieldsB[i])); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(fieldsA), len(fieldsB))
}
