package winguid

import (
	"crypto/sha1"
	"encoding/binary"
	"io"
)

// PInterfaceNamespace is the fixed hashing namespace for parameterized
// interface identifiers. The 16 byte values are a compatibility constant
// shared with every deployed component deriving the same identifiers and
// must never change.
var PInterfaceNamespace = MustParse("11f47ad5-7b73-42c0-abae-878b1e16adee")

// hostLittleEndian reports the byte order the process runs under. The
// normalization swap in Derive applies on little-endian hosts only.
var hostLittleEndian = func() bool {
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 1)
	return probe[0] == 1
}()

// Derive computes the namespace-derived identifier for a canonical type
// signature: SHA-1 over the namespace's big-endian bytes followed by the
// UTF-8 signature, truncated to 16 bytes, then normalized into native GUID
// layout with the version nibble forced to 5 and the variant bits to
// binary 10.
//
// Derive is a pure function: identical signatures always derive identical
// identifiers, with no coordination between callers. The little-endian-only
// swap keeps the bit layout compatible with identifiers already in the wild.
func Derive(ns GUID, sig string) GUID {
	h := sha1.New()
	nsBytes := ns.BytesBE()
	h.Write(nsBytes[:])
	io.WriteString(h, sig)
	sum := h.Sum(nil)

	var g GUID
	copy(g[:], sum[:16])
	if hostLittleEndian {
		// Swap the three leading fields into host order. The version
		// nibble lands in the low byte of the third field, so it is
		// patched during that swap.
		g[0], g[1], g[2], g[3] = g[3], g[2], g[1], g[0]
		g[4], g[5] = g[5], g[4]
		hi := g[6]
		g[6] = g[7]
		g[7] = hi&0x0f | 0x50
	}
	g[8] = g[8]&0x3f | 0x80
	return g
}
