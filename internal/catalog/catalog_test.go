package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "identifiers.db"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestRecordAndReadBack(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()

	e := Entry{
		FullName:  "Sample.StringIterable",
		Signature: "pinterface({faa585ea-6214-4217-afda-7f46de5869b3};string)",
		IID:       "e2fcc7c1-3bfc-5a0b-b2b0-72e769d1cb7e",
		Derived:   true,
	}
	require.NoError(t, c.Record(ctx, e))

	got, err := c.ByName(ctx, "Sample.StringIterable")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, e, got[0])
}

func TestRecordIsIdempotent(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()

	e := Entry{
		FullName:  "Sample.IThing",
		Signature: "{faa585ea-6214-4217-afda-7f46de5869b3}",
		IID:       "faa585ea-6214-4217-afda-7f46de5869b3",
	}
	require.NoError(t, c.Record(ctx, e))
	require.NoError(t, c.Record(ctx, e))

	got, err := c.All(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestAllOrdersDeterministically(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()

	// Insert out of order; listings come back sorted.
	entries := []Entry{
		{FullName: "Sample.B", Signature: "enum(Sample.B;i4)", IID: ""},
		{FullName: "Sample.A", Signature: "enum(Sample.A;u4)", IID: ""},
		{FullName: "Sample.A", Signature: "enum(Sample.A;i4)", IID: ""},
	}
	for _, e := range entries {
		require.NoError(t, c.Record(ctx, e))
	}

	got, err := c.All(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "enum(Sample.A;i4)", got[0].Signature)
	assert.Equal(t, "enum(Sample.A;u4)", got[1].Signature)
	assert.Equal(t, "Sample.B", got[2].FullName)
}

func TestSameNameDifferentSignatureKeepsBothRows(t *testing.T) {
	c := openTestCatalog(t)
	ctx := context.Background()

	require.NoError(t, c.Record(ctx, Entry{
		FullName:  "Sample.IntIterable",
		Signature: "pinterface({faa585ea-6214-4217-afda-7f46de5869b3};i4)",
		IID:       "81a643fb-f51c-5565-83c4-f96425777b66",
		Derived:   true,
	}))
	require.NoError(t, c.Record(ctx, Entry{
		FullName:  "Sample.IntIterable",
		Signature: "pinterface({faa585ea-6214-4217-afda-7f46de5869b3};i8)",
		IID:       "0e05eb29-7b6c-5fcb-bbbb-3cb28a12b55f",
		Derived:   true,
	}))

	got, err := c.ByName(ctx, "Sample.IntIterable")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "identifiers.db")

	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Record(context.Background(), Entry{FullName: "Sample.A", Signature: "i4", IID: ""}))
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
