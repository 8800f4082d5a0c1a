package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// MarshalJSON encodes the node as plain JSON data, keeping object fields
// in order. Bytes are base64 encoded as encoding/json does for []byte.
func (y *Node) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(buf, y); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, y *Node) error {
	if y == nil {
		buf.WriteString("null")
		return nil
	}
	switch y.Type {
	case ObjectType:
		buf.WriteByte('{')
		for i, field := range y.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := json.Marshal(field)
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteByte(':')
			if err := writeJSON(buf, y.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case NumberType:
		switch {
		case y.Int64 != nil:
			buf.WriteString(strconv.FormatInt(*y.Int64, 10))
			return nil
		case y.Float64 != nil:
			d, err := json.Marshal(*y.Float64)
			if err != nil {
				return err
			}
			buf.Write(d)
			return nil
		}
		if !json.Valid([]byte(y.Number)) {
			return fmt.Errorf("invalid number literal %q", y.Number)
		}
		buf.WriteString(y.Number)
		return nil
	case StringType:
		d, err := json.Marshal(y.String)
		if err != nil {
			return err
		}
		buf.Write(d)
		return nil
	case BytesType:
		d, err := json.Marshal(y.Bytes)
		if err != nil {
			return err
		}
		buf.Write(d)
		return nil
	case BoolType:
		buf.WriteString(strconv.FormatBool(y.Bool))
		return nil
	case NullType:
		buf.WriteString("null")
		return nil
	default:
		return fmt.Errorf("cannot encode type %s", y.Type)
	}
}

// UnmarshalJSON decodes plain JSON data into y, keeping object fields in
// the order they appear. A repeated field keeps its first position and its
// last value.
func (y *Node) UnmarshalJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	node, err := decodeJSON(dec)
	if err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("unexpected data after JSON value")
	}
	y.adopt(node)
	return nil
}

func decodeJSON(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '{':
			res := &Node{Type: ObjectType}
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("expected object key, got %v", kt)
				}
				v, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				res.put(key, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return res, nil
		case '[':
			var vals []*Node
			for dec.More() {
				v, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				vals = append(vals, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return FromSlice(vals), nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", x)
	case string:
		return FromString(x), nil
	case json.Number:
		return FromNumber(string(x)), nil
	case bool:
		return FromBool(x), nil
	case nil:
		return Null(), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}
