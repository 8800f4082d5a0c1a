package encode

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/dynpath/format"
	"github.com/signadot/dynpath/ir"
)

type EncState struct {
	indent int
	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w in the chosen format (YAML by default),
// followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
		format: format.YAMLFormat,
	}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		node = ir.Null()
	}
	switch es.format {
	case format.JSONFormat:
		if err := es.json(w, node, 0); err != nil {
			return err
		}
		return writeString(w, "\n")
	case format.YAMLFormat:
		if !isBlock(node) {
			s, err := es.yamlScalar(node)
			if err != nil {
				return err
			}
			return writeString(w, s+"\n")
		}
		return es.yaml(w, node, 0, false)
	}
	return fmt.Errorf("cannot encode format %s", es.format)
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func (es *EncState) pad(depth int) string {
	return strings.Repeat(" ", depth*es.indent)
}

func (es *EncState) json(w io.Writer, node *ir.Node, depth int) error {
	switch node.Type {
	case ir.ObjectType, ir.ArrayType:
	default:
		s, err := jsonScalar(node)
		if err != nil {
			return err
		}
		return writeString(w, es.color(node.Type, ValueColor, s))
	}
	open, close := "{", "}"
	if node.Type == ir.ArrayType {
		open, close = "[", "]"
	}
	if len(node.Values) == 0 {
		return writeString(w, es.color(node.Type, SepColor, open+close))
	}
	if err := writeString(w, es.color(node.Type, SepColor, open)+"\n"); err != nil {
		return err
	}
	for i, v := range node.Values {
		if err := writeString(w, es.pad(depth+1)); err != nil {
			return err
		}
		if node.Type == ir.ObjectType {
			key, err := jsonScalar(ir.FromString(node.Fields[i]))
			if err != nil {
				return err
			}
			sep := es.color(ir.ObjectType, SepColor, ":")
			if err := writeString(w, es.color(ir.ObjectType, FieldColor, key)+sep+" "); err != nil {
				return err
			}
		}
		if err := es.json(w, v, depth+1); err != nil {
			return err
		}
		if i < len(node.Values)-1 {
			if err := writeString(w, es.color(node.Type, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	return writeString(w, es.pad(depth)+es.color(node.Type, SepColor, close))
}

func jsonScalar(node *ir.Node) (string, error) {
	d, err := node.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(d), nil
}

func isBlock(node *ir.Node) bool {
	return (node.Type == ir.ObjectType || node.Type == ir.ArrayType) && len(node.Values) != 0
}

// yaml writes a non-empty container in block style. When inline is set the
// cursor already sits after a "- " sequence marker, so the first entry is
// not indented.
func (es *EncState) yaml(w io.Writer, node *ir.Node, depth int, inline bool) error {
	for i, v := range node.Values {
		if i > 0 || !inline {
			if err := writeString(w, es.pad(depth)); err != nil {
				return err
			}
		}
		var lead string
		if node.Type == ir.ObjectType {
			key, err := yamlString(node.Fields[i])
			if err != nil {
				return err
			}
			lead = es.color(ir.ObjectType, FieldColor, key) + es.color(ir.ObjectType, SepColor, ":")
		} else {
			lead = es.color(ir.ArrayType, SepColor, "-")
		}
		if !isBlock(v) {
			s, err := es.yamlScalar(v)
			if err != nil {
				return err
			}
			if err := writeString(w, lead+" "+s+"\n"); err != nil {
				return err
			}
			continue
		}
		if node.Type == ir.ArrayType {
			if err := writeString(w, lead+" "); err != nil {
				return err
			}
			if err := es.yaml(w, v, depth+1, true); err != nil {
				return err
			}
			continue
		}
		if err := writeString(w, lead+"\n"); err != nil {
			return err
		}
		if err := es.yaml(w, v, depth+1, false); err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) yamlScalar(node *ir.Node) (string, error) {
	var s string
	switch node.Type {
	case ir.ObjectType:
		s = "{}"
	case ir.ArrayType:
		s = "[]"
	case ir.StringType:
		ys, err := yamlString(node.String)
		if err != nil {
			return "", err
		}
		s = ys
	case ir.BytesType:
		s = "!!binary " + base64.StdEncoding.EncodeToString(node.Bytes)
	default:
		js, err := jsonScalar(node)
		if err != nil {
			return "", err
		}
		s = js
	}
	if node.Type == ir.ObjectType || node.Type == ir.ArrayType {
		return es.color(node.Type, SepColor, s), nil
	}
	return es.color(node.Type, ValueColor, s), nil
}

// yamlString renders s as a single line YAML scalar, quoted where a plain
// scalar would read as something else.
func yamlString(s string) (string, error) {
	if !strings.ContainsAny(s, "\n\r") {
		d, err := yaml.Marshal(s)
		if err != nil {
			return "", err
		}
		res := strings.TrimSuffix(string(d), "\n")
		if !strings.Contains(res, "\n") {
			return res, nil
		}
	}
	return jsonScalar(ir.FromString(s))
}
