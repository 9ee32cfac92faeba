// Package winguid implements the 128-bit identifier value that names
// WinRT-style interfaces, plus the namespace-hash derivation that assigns
// identifiers to parameterized interface signatures.
//
// A GUID is stored in native GUID struct layout: the first three fields
// (4, 2, and 2 bytes) are in host byte order, the trailing 8 bytes are a
// plain byte sequence. On little-endian hosts this matches the in-memory
// layout of a Windows GUID, which is the layout the derivation in this
// package byte-swaps against.
package winguid

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// GUID is a 128-bit interface identifier in native GUID struct layout.
type GUID [16]byte

// Parse converts the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx"
// text form into a GUID. It accepts the same textual forms as uuid.Parse.
func Parse(s string) (GUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return GUID{}, fmt.Errorf("parse guid %q: %w", s, err)
	}
	return FromUUID(u), nil
}

// MustParse is like Parse but panics on malformed input.
// Use for package-level constants only.
func MustParse(s string) GUID {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

// FromUUID converts an RFC 4122 big-endian UUID into native GUID layout.
func FromUUID(u uuid.UUID) GUID {
	var g GUID
	binary.NativeEndian.PutUint32(g[0:4], binary.BigEndian.Uint32(u[0:4]))
	binary.NativeEndian.PutUint16(g[4:6], binary.BigEndian.Uint16(u[4:6]))
	binary.NativeEndian.PutUint16(g[6:8], binary.BigEndian.Uint16(u[6:8]))
	copy(g[8:], u[8:])
	return g
}

// UUID returns the RFC 4122 big-endian view of the identifier.
func (g GUID) UUID() uuid.UUID {
	return uuid.UUID(g.BytesBE())
}

// BytesBE returns the canonical 16-byte big-endian serialization.
// This is the form hashed when the identifier acts as a derivation
// namespace, regardless of host byte order.
func (g GUID) BytesBE() [16]byte {
	var out [16]byte
	binary.BigEndian.PutUint32(out[0:4], binary.NativeEndian.Uint32(g[0:4]))
	binary.BigEndian.PutUint16(out[4:6], binary.NativeEndian.Uint16(g[4:6]))
	binary.BigEndian.PutUint16(out[6:8], binary.NativeEndian.Uint16(g[6:8]))
	copy(out[8:], g[8:])
	return out
}

// String renders the canonical lowercase hyphenated form.
func (g GUID) String() string {
	return g.UUID().String()
}

// Braced renders the identifier the way signatures embed it: the canonical
// lowercase form wrapped in braces.
func (g GUID) Braced() string {
	return "{" + g.String() + "}"
}

// IsZero reports whether all 16 bytes are zero.
func (g GUID) IsZero() bool {
	return g == GUID{}
}

// Version returns the RFC 4122 version nibble.
func (g GUID) Version() byte {
	return byte(binary.NativeEndian.Uint16(g[6:8]) >> 12)
}

// VariantBits returns the top two bits of the clock-seq-high octet.
// RFC 4122 identifiers carry binary 10 there.
func (g GUID) VariantBits() byte {
	return g[8] >> 6
}
