// Package kpath provides path expression parsing for dynamic data.
//
// A path addresses a value inside nested maps and lists:
//   - name - Map field access
//   - [index] - List index (base-10, non-negative, no sign)
//
// Components are separated by '.', and any component may carry one or
// more index suffixes:
//
//	segment ("." segment)*
//	segment := name ("[" digits "]")*
//
// A path may also start with an index to address a list root ("[0].a").
// Names cannot contain '.', '[' or ']'; keys that do are only reachable as
// literal keys, see ir.Node.Fetch.
//
// # Usage
//
//	// Parse a path
//	kp, err := kpath.Parse("users[0].name")
//
//	// Walk the segments
//	for seg := kp; seg != nil; seg = seg.Next {
//	    switch seg.EntryKind() {
//	    case kpath.FieldEntry:
//	        // *seg.Field
//	    case kpath.ArrayEntry:
//	        // *seg.Index
//	    }
//	}
//
//	// Build
//	child := kp.Append(kpath.Field("email")) // users[0].name.email
//
// # Related Packages
//
//   - github.com/signadot/dynpath/ir - Node model, resolver and unpacker
package kpath
