// Package signature builds canonical signature strings for type
// descriptors.
//
// A signature is a closed, recursive encoding of a type's ABI shape. Two
// independently compiled components that describe the same shape produce
// byte-identical signatures, which is what makes derived interface
// identifiers agree across binaries with no coordination. Token spellings,
// delimiters and field order are wire compatibility surface: any change
// breaks identifiers already in the wild.
package signature

import (
	"fmt"
	"strings"

	"github.com/avirell/wintype/descriptor"
)

// Build returns the canonical signature for t.
//
// The expansion is a pure function of the descriptor tree; no process
// state is consulted. A SignatureOverride on any node short-circuits the
// expansion of that node, and an interface with an authoring alias is
// signed as the construct it stands in for.
//
// Struct field graphs must be acyclic. Build does not guard against
// descriptor cycles and will not terminate on one.
func Build(t *descriptor.Type) (string, error) {
	if t == nil {
		return "", &descriptor.ShapeError{Message: "nil type descriptor"}
	}
	if t.SignatureOverride != "" {
		return t.SignatureOverride, nil
	}
	if t.Kind == descriptor.KindInterface && t.AuthoredAs != nil {
		return Build(t.AuthoredAs)
	}

	switch t.Kind {
	case descriptor.KindObject:
		return "cinterface(IInspectable)", nil

	case descriptor.KindString:
		return "string", nil

	case descriptor.KindPrimitive:
		code := t.Primitive.Code()
		if code == "" {
			return "", &descriptor.ShapeError{TypeName: t.FullName, Message: "unknown primitive kind"}
		}
		return code, nil

	case descriptor.KindEnum:
		underlying := "i4"
		if t.IsFlags {
			underlying = "u4"
		}
		return "enum(" + t.FullName + ";" + underlying + ")", nil

	case descriptor.KindStruct:
		return buildStruct(t)

	case descriptor.KindClass:
		if t.DefaultInterface == nil {
			return "", &descriptor.ShapeError{TypeName: t.FullName, Message: "runtime class has no default interface"}
		}
		inner, err := Build(t.DefaultInterface)
		if err != nil {
			return "", err
		}
		return "rc(" + t.FullName + ";" + inner + ")", nil

	case descriptor.KindDelegate:
		if t.DeclaredID == nil {
			return "", &descriptor.MissingIDError{TypeName: t.FullName}
		}
		return "delegate(" + t.DeclaredID.Braced() + ")", nil

	case descriptor.KindPInterface:
		return buildPInterface(t)

	case descriptor.KindInterface:
		if t.DeclaredID == nil {
			return "", &descriptor.MissingIDError{TypeName: t.FullName}
		}
		return t.DeclaredID.Braced(), nil
	}

	return "", &descriptor.ShapeError{
		TypeName: t.FullName,
		Message:  fmt.Sprintf("no signature form for kind %s", t.Kind),
	}
}

// buildStruct expands a value aggregate in declared field order.
func buildStruct(t *descriptor.Type) (string, error) {
	var b strings.Builder
	b.WriteString("struct(")
	b.WriteString(t.FullName)
	for i, f := range t.Fields {
		if f == nil {
			return "", &descriptor.ShapeError{
				TypeName: t.FullName,
				Field:    fmt.Sprintf("[%d]", i),
				Message:  "nil field descriptor",
			}
		}
		// An overridden field bypasses the shape policy along with the
		// rest of the expansion.
		if f.SignatureOverride == "" && !structFieldKind(f.Kind) {
			return "", &descriptor.ShapeError{
				TypeName: t.FullName,
				Field:    fmt.Sprintf("[%d] %s", i, f.FullName),
				Message:  fmt.Sprintf("%s field cannot appear in a value aggregate", f.Kind),
			}
		}
		sig, err := Build(f)
		if err != nil {
			return "", err
		}
		b.WriteString(";")
		b.WriteString(sig)
	}
	b.WriteString(")")
	return b.String(), nil
}

// structFieldKind reports whether a shape may appear as a struct field.
func structFieldKind(k descriptor.Kind) bool {
	switch k {
	case descriptor.KindPrimitive, descriptor.KindEnum, descriptor.KindStruct, descriptor.KindString:
		return true
	}
	return false
}

// buildPInterface expands a closed generic interface: the declared
// identifier of the open definition followed by each argument signature,
// semicolon separated, in declaration order.
func buildPInterface(t *descriptor.Type) (string, error) {
	if t.DeclaredID == nil {
		return "", &descriptor.MissingIDError{TypeName: t.FullName}
	}
	if len(t.GenericArgs) == 0 {
		return "", &descriptor.ShapeError{TypeName: t.FullName, Message: "parameterized interface has no type arguments"}
	}
	var b strings.Builder
	b.WriteString("pinterface(")
	b.WriteString(t.DeclaredID.Braced())
	for _, arg := range t.GenericArgs {
		sig, err := Build(arg)
		if err != nil {
			return "", err
		}
		b.WriteString(";")
		b.WriteString(sig)
	}
	b.WriteString(")")
	return b.String(), nil
}
