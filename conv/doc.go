// Package conv coerces IR nodes of loosely known type into Go values.
//
// Every target shape has three entry points:
//
//	v, ok := conv.AsInt64(node)     // reports whether coercion succeeded
//	v := conv.ToInt64(node, 42)     // fallback when it did not
//	v := conv.Int64(node)           // zero value when it did not
//
// Coercion never fails loudly: nil and null nodes, unparseable text,
// values out of the target range and mismatched shapes all yield the
// fallback. Strings are parsed for numeric, boolean and UUID targets, and
// strings holding a YAML or JSON flow sequence or mapping ("[1, 2]",
// "{a: 1}") are decoded for list and map targets. A single scalar given
// to a list target becomes a one element list.
//
// Collection targets convert every element; if one element does not
// convert, the whole result is the fallback.
//
// Combined with (*ir.Node).Fetch this gives typed lookups:
//
//	port := conv.ToInt(root.Fetch("service.ports[0].port", nil), 80)
package conv
