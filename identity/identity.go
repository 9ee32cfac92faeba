// Package identity resolves 128-bit interface identifiers for type
// descriptors, composing the signature grammar with namespace-hash
// derivation.
//
// Both entry points are stateless, total functions over their inputs:
// there is no I/O, no retry semantics, and no shared mutable state, so
// they may be called concurrently without coordination.
package identity

import (
	"github.com/avirell/wintype/descriptor"
	"github.com/avirell/wintype/signature"
	"github.com/avirell/wintype/winguid"
)

// GUIDOf returns the declared identifier for t. It performs no hashing;
// the declared identifier is taken as ground truth. A descriptor without
// one yields a MissingIDError.
func GUIDOf(t *descriptor.Type) (winguid.GUID, error) {
	if t == nil {
		return winguid.GUID{}, &descriptor.MissingIDError{}
	}
	if t.DeclaredID == nil {
		return winguid.GUID{}, &descriptor.MissingIDError{TypeName: t.FullName}
	}
	return *t.DeclaredID, nil
}

// IIDOf returns the interface identifier for t.
//
// Non-generic types pass through to their declared identifier. A
// parameterized interface uses its pre-published instantiation identifier
// when the descriptor carries one, and otherwise derives the identifier
// from its canonical signature under the parameterized interface
// namespace.
func IIDOf(t *descriptor.Type) (winguid.GUID, error) {
	if t == nil {
		return winguid.GUID{}, &descriptor.MissingIDError{}
	}
	if t.Kind != descriptor.KindPInterface {
		return GUIDOf(t)
	}
	if t.InstanceID != nil {
		return *t.InstanceID, nil
	}
	sig, err := signature.Build(t)
	if err != nil {
		return winguid.GUID{}, err
	}
	return winguid.Derive(winguid.PInterfaceNamespace, sig), nil
}
