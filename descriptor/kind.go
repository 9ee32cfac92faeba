package descriptor

// Kind classifies the structural shape of a described type. Each kind maps
// to exactly one signature grammar production.
type Kind int

const (
	KindUnknown Kind = iota

	// KindPrimitive is a fixed-size primitive value type (see PrimitiveKind).
	KindPrimitive

	// KindEnum is an enumeration over a 32-bit underlying type.
	KindEnum

	// KindStruct is a non-primitive value aggregate with ordered fields.
	KindStruct

	// KindString is the platform string type.
	KindString

	// KindDelegate is a delegate type with a declared identifier.
	KindDelegate

	// KindPInterface is a parameterized (closed generic) interface.
	KindPInterface

	// KindClass is a runtime class projecting to a default interface.
	KindClass

	// KindInterface is a plain interface with a declared identifier.
	KindInterface

	// KindObject is a bare object with no declared interface.
	KindObject
)

var kindNames = map[Kind]string{
	KindUnknown:    "unknown",
	KindPrimitive:  "primitive",
	KindEnum:       "enum",
	KindStruct:     "struct",
	KindString:     "string",
	KindDelegate:   "delegate",
	KindPInterface: "pinterface",
	KindClass:      "class",
	KindInterface:  "interface",
	KindObject:     "object",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}
