// Package parse decodes JSON and YAML text into IR nodes.
//
// # Usage
//
//	// Parse YAML (the default; JSON is valid YAML)
//	node, err := parse.Parse([]byte("a: 1\nb: [x, y]\n"))
//
//	// Parse JSON, keeping number literals that do not fit int64
//	node, err := parse.Parse(data, parse.ParseJSON())
//
//	// Parse from string
//	node, err := parse.ParseString(`{name: alice, age: 30}`)
//
// Object fields keep the order in which they appear in the input.
//
// # Related Packages
//
//   - github.com/signadot/dynpath/ir - IR representation
//   - github.com/signadot/dynpath/encode - Encode IR to text
package parse
