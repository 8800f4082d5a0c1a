// Package encode encodes IR nodes as JSON or YAML text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	    {Key: "age", Val: ir.FromInt(30)},
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// Encode to JSON with terminal colors
//	err := encode.Encode(node, os.Stdout,
//	    encode.EncodeFormat(format.JSONFormat),
//	    encode.EncodeColors(encode.NewColors()))
//
// Object fields are written in node order.
//
// # Related Packages
//
//   - github.com/signadot/dynpath/ir - IR representation
//   - github.com/signadot/dynpath/parse - Parse text to IR
package encode
