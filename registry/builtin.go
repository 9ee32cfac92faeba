package registry

import "github.com/avirell/wintype/descriptor"

// builtins maps reference names usable in fields: and args: lists to the
// fixed primitive shapes. Descriptors are immutable, so the shared
// instances are safe to embed in any number of trees.
var builtins = map[string]*descriptor.Type{
	"int8":    descriptor.Primitive(descriptor.Int8),
	"uint8":   descriptor.Primitive(descriptor.UInt8),
	"int16":   descriptor.Primitive(descriptor.Int16),
	"uint16":  descriptor.Primitive(descriptor.UInt16),
	"int32":   descriptor.Primitive(descriptor.Int32),
	"uint32":  descriptor.Primitive(descriptor.UInt32),
	"int64":   descriptor.Primitive(descriptor.Int64),
	"uint64":  descriptor.Primitive(descriptor.UInt64),
	"float32": descriptor.Primitive(descriptor.Float32),
	"float64": descriptor.Primitive(descriptor.Float64),
	"bool":    descriptor.Primitive(descriptor.Bool),
	"char16":  descriptor.Primitive(descriptor.Char16),
	"guid":    descriptor.Primitive(descriptor.Guid),
	"string":  descriptor.String(),
	"object":  descriptor.Object(),
}
