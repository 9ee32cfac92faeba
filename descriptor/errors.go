package descriptor

import "fmt"

// ShapeError reports a type whose shape has no signature grammar
// production, such as a struct field that is neither primitive, enum,
// struct nor string. It signals a defect in the descriptor data; the fix
// is to correct the type or attach a SignatureOverride.
type ShapeError struct {
	// TypeName is the full name of the offending type, if known.
	TypeName string

	// Field identifies the struct field context, if any.
	Field string

	// Message describes what could not be expressed.
	Message string
}

func (e *ShapeError) Error() string {
	switch {
	case e.TypeName != "" && e.Field != "":
		return fmt.Sprintf("unsupported type shape: %s %s: %s", e.TypeName, e.Field, e.Message)
	case e.TypeName != "":
		return fmt.Sprintf("unsupported type shape: %s: %s", e.TypeName, e.Message)
	}
	return fmt.Sprintf("unsupported type shape: %s", e.Message)
}

// MissingIDError reports a type that needs a declared identifier but
// whose descriptor carries none.
type MissingIDError struct {
	// TypeName is the full name of the type, if known.
	TypeName string
}

func (e *MissingIDError) Error() string {
	if e.TypeName == "" {
		return "type has no declared identifier"
	}
	return fmt.Sprintf("type %s has no declared identifier", e.TypeName)
}
