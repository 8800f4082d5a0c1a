// Package format names the wire formats dynpath reads and writes.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	if err != nil {
//	    // unknown format
//	}
//	f.Suffix() // ".yaml"
//
// # Related Packages
//
//   - github.com/signadot/dynpath/parse - Decode text to IR
//   - github.com/signadot/dynpath/encode - Encode IR to text
package format
