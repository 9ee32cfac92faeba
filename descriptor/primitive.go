package descriptor

// PrimitiveKind identifies a fixed-size primitive value type.
type PrimitiveKind int

const (
	PrimitiveInvalid PrimitiveKind = iota
	Int8
	UInt8
	Int16
	UInt16
	Int32
	UInt32
	Int64
	UInt64
	Float32
	Float64
	Bool
	Char16
	Guid
)

// primitiveCodes are the fixed signature codes. Token spellings are wire
// compatibility surface and must not change.
var primitiveCodes = map[PrimitiveKind]string{
	Int8:    "i1",
	UInt8:   "u1",
	Int16:   "i2",
	UInt16:  "u2",
	Int32:   "i4",
	UInt32:  "u4",
	Int64:   "i8",
	UInt64:  "u8",
	Float32: "f4",
	Float64: "f8",
	Bool:    "b1",
	Char16:  "c2",
	Guid:    "g16",
}

var primitiveNames = map[PrimitiveKind]string{
	Int8:    "int8",
	UInt8:   "uint8",
	Int16:   "int16",
	UInt16:  "uint16",
	Int32:   "int32",
	UInt32:  "uint32",
	Int64:   "int64",
	UInt64:  "uint64",
	Float32: "float32",
	Float64: "float64",
	Bool:    "bool",
	Char16:  "char16",
	Guid:    "guid",
}

// Code returns the signature code for the primitive, or "" for an
// invalid kind.
func (p PrimitiveKind) Code() string {
	return primitiveCodes[p]
}

func (p PrimitiveKind) String() string {
	if name, ok := primitiveNames[p]; ok {
		return name
	}
	return "invalid"
}
