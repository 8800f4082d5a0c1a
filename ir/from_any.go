package ir

import (
	"encoding"
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
)

// FromAny converts a plain Go value, such as the result of decoding JSON
// into an any, into a node tree. Nodes found in v are copied, never
// relinked.
//
// Maps must have string keys; their fields are sorted since Go maps have
// no order. Values implementing encoding.TextMarshaler (time.Time,
// uuid.UUID, ...) become strings, and structs are converted through their
// encoding/json form, keeping field order. Any other kind of value is an
// ErrShape error.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return detached(x), nil
	case []*Node:
		vals := make([]*Node, len(x))
		for i := range x {
			vals[i] = detached(x[i])
		}
		return FromSlice(vals), nil
	case map[string]*Node:
		m := make(map[string]*Node, len(x))
		for k, c := range x {
			m[k] = detached(c)
		}
		return FromMap(m), nil
	case string:
		return FromString(x), nil
	case bool:
		return FromBool(x), nil
	case []byte:
		return FromBytes(x), nil
	case json.Number:
		return FromNumber(string(x)), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case map[string]any:
		res := &Node{Type: ObjectType}
		for _, k := range slices.Sorted(maps.Keys(x)) {
			c, err := FromAny(x[k])
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", k, err)
			}
			res.put(k, c)
		}
		return res, nil
	case []any:
		vals := make([]*Node, len(x))
		for i := range x {
			c, err := FromAny(x[i])
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			vals[i] = c
		}
		return FromSlice(vals), nil
	case encoding.TextMarshaler:
		d, err := x.MarshalText()
		if err != nil {
			return nil, err
		}
		return FromString(string(d)), nil
	}
	return fromReflect(reflect.ValueOf(v))
}

// detached returns a copy of x outside any tree, leaving x and its parent
// links untouched.
func detached(x *Node) *Node {
	if x == nil {
		return Null()
	}
	res := x.Clone()
	res.Parent = nil
	return res
}

func fromUint(u uint64) *Node {
	if u <= 1<<63-1 {
		return FromInt(int64(u))
	}
	return &Node{Type: NumberType, Number: strconv.FormatUint(u, 10)}
}

func fromReflect(rv reflect.Value) (*Node, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return FromAny(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		vals := make([]*Node, rv.Len())
		for i := range vals {
			c, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			vals[i] = c
		}
		return FromSlice(vals), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key type %s", ErrShape, rv.Type().Key())
		}
		m := make(map[string]*Node, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			c, err := FromAny(iter.Value().Interface())
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", iter.Key().String(), err)
			}
			m[iter.Key().String()] = c
		}
		return FromMap(m), nil
	case reflect.Struct:
		d, err := json.Marshal(rv.Interface())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrShape, err)
		}
		res := &Node{}
		if err := res.UnmarshalJSON(d); err != nil {
			return nil, err
		}
		return res, nil
	case reflect.String:
		return FromString(rv.String()), nil
	case reflect.Bool:
		return FromBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fromUint(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return FromFloat(rv.Float()), nil
	}
	return nil, fmt.Errorf("%w: unsupported Go type %s", ErrShape, rv.Type())
}

// ToAny converts a node tree to plain Go values: map[string]any, []any,
// string, bool, []byte, int64, float64, json.Number (for number literals
// that fit neither) and nil.
func ToAny(node *Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, field := range node.Fields {
			res[field] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case BytesType:
		return node.Bytes
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return json.Number(node.Number)
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}
