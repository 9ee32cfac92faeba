package descriptor

import "github.com/avirell/wintype/winguid"

// Type describes the ABI-relevant shape of one type. Trees of Types are
// the unit the signature builder and identifier lookups consume.
//
// A Type is plain data with no behavior: once built it is never mutated,
// so a single descriptor may be shared freely between goroutines and
// embedded in any number of containing trees.
type Type struct {
	// Kind selects the signature grammar production for this type.
	Kind Kind

	// FullName is the stable qualified name. It is embedded verbatim into
	// enum, struct and runtime-class signatures, so it must match the name
	// every other component uses for the same type.
	FullName string

	// Primitive is set for KindPrimitive only.
	Primitive PrimitiveKind

	// DeclaredID is the authoring-time identifier, when the type has one.
	// For KindPInterface it is the declared identifier of the open generic
	// definition, not of the instantiation.
	DeclaredID *winguid.GUID

	// InstanceID optionally carries a pre-published identifier for a
	// closed generic instantiation, short-circuiting derivation.
	InstanceID *winguid.GUID

	// GenericArgs are the closed type arguments, in declaration order.
	// Order is load-bearing for signature determinism.
	GenericArgs []*Type

	// Fields are the struct fields, in declaration order. Field graphs
	// must be acyclic.
	Fields []*Type

	// IsFlags marks a flags enum (u4 underlying type instead of i4).
	IsFlags bool

	// DefaultInterface is the interface a runtime class projects to.
	DefaultInterface *Type

	// AuthoredAs, when set on an interface, names the higher-level
	// construct the interface stands in for. The signature builder
	// substitutes it before applying the grammar.
	AuthoredAs *Type

	// SignatureOverride bypasses recursive expansion entirely when
	// non-empty. It is consulted before kind dispatch.
	SignatureOverride string
}
