// Package registry loads declarative type tables and resolves them into
// descriptor trees: a concrete type descriptor provider backed by YAML.
//
// A table file declares named types and references between them:
//
//	types:
//	  - name: Windows.Foundation.Collections.IIterable`1
//	    kind: interface
//	    guid: faa585ea-6214-4217-afda-7f46de5869b3
//
//	  - name: Sample.Point
//	    kind: struct
//	    fields: [int32, int32]
//
//	  - name: Sample.StringIterable
//	    kind: pinterface
//	    of: Windows.Foundation.Collections.IIterable`1
//	    args: [string]
//
// Field and argument entries are type references: either a builtin name
// (int8..uint64, float32, float64, bool, char16, guid, string, object) or
// the name of another declared type, in any declaration order.
//
// Loading validates what the resolver needs to stay well-defined: names
// must be unique, NFC-normalized and not shadow builtins; references must
// resolve; reference cycles are rejected. Identifier-level problems (an
// interface without a guid, say) are deliberately left to signature and
// identity lookup, which report them as the descriptor defects they are.
package registry
