package ir

import "strconv"

// Truth reports the truthiness of a node: non-empty containers, strings
// and byte sequences, non-zero numbers and true are truthy.
func Truth(node *Node) bool {
	if node == nil {
		return false
	}
	switch node.Type {
	case ObjectType:
		return len(node.Fields) != 0
	case ArrayType:
		return len(node.Values) != 0
	case StringType:
		return node.String != ""
	case BytesType:
		return len(node.Bytes) != 0
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64 != 0
		}
		if node.Float64 != nil {
			return *node.Float64 != 0.0
		}
		f, err := strconv.ParseFloat(node.Number, 64)
		if err != nil {
			return node.Number != ""
		}
		return f != 0
	case BoolType:
		return node.Bool
	case NullType:
		return false
	default:
		panic("type")
	}
}
