package signature

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avirell/wintype/descriptor"
	"github.com/avirell/wintype/winguid"
)

var (
	iterableID  = winguid.MustParse("faa585ea-6214-4217-afda-7f46de5869b3")
	vectorID    = winguid.MustParse("913337e9-11a1-4345-a3a2-4e7f956e222d")
	delegateID  = winguid.MustParse("9de1c534-6ae1-11e0-84e1-18a905bcc53f")
	referenceID = winguid.MustParse("61c17706-2d65-11e0-9ae8-d48564015472")
)

func TestBuildPrimitives(t *testing.T) {
	cases := map[descriptor.PrimitiveKind]string{
		descriptor.Int8:    "i1",
		descriptor.UInt8:   "u1",
		descriptor.Int16:   "i2",
		descriptor.UInt16:  "u2",
		descriptor.Int32:   "i4",
		descriptor.UInt32:  "u4",
		descriptor.Int64:   "i8",
		descriptor.UInt64:  "u8",
		descriptor.Float32: "f4",
		descriptor.Float64: "f8",
		descriptor.Bool:    "b1",
		descriptor.Char16:  "c2",
		descriptor.Guid:    "g16",
	}

	for kind, want := range cases {
		sig, err := Build(descriptor.Primitive(kind))
		require.NoError(t, err)
		assert.Equal(t, want, sig)
	}
}

func TestBuildStringAndObject(t *testing.T) {
	sig, err := Build(descriptor.String())
	require.NoError(t, err)
	assert.Equal(t, "string", sig)

	sig, err = Build(descriptor.Object())
	require.NoError(t, err)
	assert.Equal(t, "cinterface(IInspectable)", sig)
}

func TestBuildEnum(t *testing.T) {
	sig, err := Build(descriptor.Enum("Sample.Color", true))
	require.NoError(t, err)
	assert.Equal(t, "enum(Sample.Color;u4)", sig)

	sig, err = Build(descriptor.Enum("Sample.Mode", false))
	require.NoError(t, err)
	assert.Equal(t, "enum(Sample.Mode;i4)", sig)
}

func TestBuildStruct(t *testing.T) {
	point := descriptor.Struct("Sample.Point",
		descriptor.Primitive(descriptor.Int32),
		descriptor.Primitive(descriptor.Int32),
	)
	sig, err := Build(point)
	require.NoError(t, err)
	assert.Equal(t, "struct(Sample.Point;i4;i4)", sig)

	// Nested structs, enums and strings expand in declared field order.
	nested := descriptor.Struct("Sample.Shape",
		point,
		descriptor.Enum("Sample.Color", true),
		descriptor.String(),
	)
	sig, err = Build(nested)
	require.NoError(t, err)
	assert.Equal(t, "struct(Sample.Shape;struct(Sample.Point;i4;i4);enum(Sample.Color;u4);string)", sig)
}

func TestBuildStructFieldOrderMatters(t *testing.T) {
	a := descriptor.Struct("Sample.Pair",
		descriptor.Primitive(descriptor.Int32),
		descriptor.String(),
	)
	b := descriptor.Struct("Sample.Pair",
		descriptor.String(),
		descriptor.Primitive(descriptor.Int32),
	)

	sigA, err := Build(a)
	require.NoError(t, err)
	sigB, err := Build(b)
	require.NoError(t, err)

	assert.NotEqual(t, sigA, sigB)
}

func TestBuildStructRejectsNonValueField(t *testing.T) {
	bad := descriptor.Struct("Sample.Bad",
		descriptor.Primitive(descriptor.Int32),
		descriptor.Interface("Sample.IThing", iterableID),
	)

	_, err := Build(bad)
	var shapeErr *descriptor.ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "Sample.Bad", shapeErr.TypeName)
	assert.Contains(t, shapeErr.Field, "Sample.IThing")
}

func TestBuildStructOverriddenFieldBypassesShapePolicy(t *testing.T) {
	field := descriptor.Interface("Sample.IThing", iterableID)
	field.SignatureOverride = "i4"

	sig, err := Build(descriptor.Struct("Sample.Wrapped", field))
	require.NoError(t, err)
	assert.Equal(t, "struct(Sample.Wrapped;i4)", sig)
}

func TestBuildInterface(t *testing.T) {
	sig, err := Build(descriptor.Interface("Sample.IThing", iterableID))
	require.NoError(t, err)
	assert.Equal(t, "{faa585ea-6214-4217-afda-7f46de5869b3}", sig)
}

func TestBuildDelegate(t *testing.T) {
	sig, err := Build(descriptor.Delegate("Sample.Handler", delegateID))
	require.NoError(t, err)
	assert.Equal(t, "delegate({9de1c534-6ae1-11e0-84e1-18a905bcc53f})", sig)
}

func TestBuildClass(t *testing.T) {
	widget := descriptor.Class("Sample.Widget", descriptor.Interface("Sample.IWidget", vectorID))
	sig, err := Build(widget)
	require.NoError(t, err)
	assert.Equal(t, "rc(Sample.Widget;{913337e9-11a1-4345-a3a2-4e7f956e222d})", sig)
}

func TestBuildPInterfaceComposition(t *testing.T) {
	closed := descriptor.PInterface("Sample.Map", iterableID,
		descriptor.Primitive(descriptor.Int32),
		descriptor.String(),
	)
	sig, err := Build(closed)
	require.NoError(t, err)
	assert.Equal(t, "pinterface({faa585ea-6214-4217-afda-7f46de5869b3};i4;string)", sig)
}

func TestBuildPInterfaceNested(t *testing.T) {
	inner := descriptor.PInterface("Sample.Inner", iterableID, descriptor.String())
	outer := descriptor.PInterface("Sample.Outer", referenceID, inner)

	sig, err := Build(outer)
	require.NoError(t, err)
	assert.Equal(t,
		"pinterface({61c17706-2d65-11e0-9ae8-d48564015472};pinterface({faa585ea-6214-4217-afda-7f46de5869b3};string))",
		sig)
}

func TestBuildOverridePrecedesKindDispatch(t *testing.T) {
	e := descriptor.Enum("Sample.Color", true)
	e.SignatureOverride = "hand-written"

	sig, err := Build(e)
	require.NoError(t, err)
	assert.Equal(t, "hand-written", sig)
}

func TestBuildAuthoringAliasSubstitution(t *testing.T) {
	widget := descriptor.Class("Sample.Widget", descriptor.Interface("Sample.IWidget", vectorID))
	iface := descriptor.Interface("Sample.IWidgetFactory", iterableID)
	iface.AuthoredAs = widget

	sig, err := Build(iface)
	require.NoError(t, err)
	assert.Equal(t, "rc(Sample.Widget;{913337e9-11a1-4345-a3a2-4e7f956e222d})", sig)
}

func TestBuildDeterminism(t *testing.T) {
	closed := descriptor.PInterface("Sample.List", vectorID, descriptor.String())

	first, err := Build(closed)
	require.NoError(t, err)
	second, err := Build(closed)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildMissingIdentifiers(t *testing.T) {
	for _, bad := range []*descriptor.Type{
		{Kind: descriptor.KindInterface, FullName: "Sample.IThing"},
		{Kind: descriptor.KindDelegate, FullName: "Sample.Handler"},
		{Kind: descriptor.KindPInterface, FullName: "Sample.List", GenericArgs: []*descriptor.Type{descriptor.String()}},
	} {
		_, err := Build(bad)
		var missing *descriptor.MissingIDError
		require.ErrorAs(t, err, &missing, "kind %s", bad.Kind)
		assert.Equal(t, bad.FullName, missing.TypeName)
	}
}

func TestBuildShapeErrors(t *testing.T) {
	_, err := Build(nil)
	var shapeErr *descriptor.ShapeError
	assert.ErrorAs(t, err, &shapeErr)

	_, err = Build(&descriptor.Type{FullName: "Sample.Mystery"})
	assert.ErrorAs(t, err, &shapeErr)

	noArgs := &descriptor.Type{Kind: descriptor.KindPInterface, FullName: "Sample.List", DeclaredID: &iterableID}
	_, err = Build(noArgs)
	require.ErrorAs(t, err, &shapeErr)
	assert.Contains(t, shapeErr.Message, "no type arguments")

	classless := &descriptor.Type{Kind: descriptor.KindClass, FullName: "Sample.Widget"}
	_, err = Build(classless)
	assert.True(t, errors.As(err, &shapeErr))
}
