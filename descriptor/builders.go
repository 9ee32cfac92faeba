package descriptor

import "github.com/avirell/wintype/winguid"

// Primitive returns a descriptor for a fixed-size primitive value type.
func Primitive(p PrimitiveKind) *Type {
	return &Type{Kind: KindPrimitive, FullName: p.String(), Primitive: p}
}

// String returns the descriptor for the platform string type.
func String() *Type {
	return &Type{Kind: KindString, FullName: "string"}
}

// Object returns the descriptor for a bare object with no declared
// interface.
func Object() *Type {
	return &Type{Kind: KindObject, FullName: "object"}
}

// Enum returns a descriptor for an enumeration.
func Enum(fullName string, flags bool) *Type {
	return &Type{Kind: KindEnum, FullName: fullName, IsFlags: flags}
}

// Struct returns a descriptor for a value aggregate with the given fields,
// in declaration order.
func Struct(fullName string, fields ...*Type) *Type {
	return &Type{Kind: KindStruct, FullName: fullName, Fields: fields}
}

// Interface returns a descriptor for a plain interface with a declared
// identifier.
func Interface(fullName string, id winguid.GUID) *Type {
	return &Type{Kind: KindInterface, FullName: fullName, DeclaredID: &id}
}

// Delegate returns a descriptor for a delegate type with a declared
// identifier.
func Delegate(fullName string, id winguid.GUID) *Type {
	return &Type{Kind: KindDelegate, FullName: fullName, DeclaredID: &id}
}

// Class returns a descriptor for a runtime class projecting to the given
// default interface.
func Class(fullName string, defaultInterface *Type) *Type {
	return &Type{Kind: KindClass, FullName: fullName, DefaultInterface: defaultInterface}
}

// PInterface returns a descriptor for a closed generic interface. The
// identifier is the declared identifier of the open generic definition;
// args are the closed type arguments in declaration order.
func PInterface(fullName string, definitionID winguid.GUID, args ...*Type) *Type {
	return &Type{Kind: KindPInterface, FullName: fullName, DeclaredID: &definitionID, GenericArgs: args}
}
