package identity

import (
	"sync"

	"github.com/avirell/wintype/descriptor"
	"github.com/avirell/wintype/winguid"
)

// Cache memoizes interface identifiers per descriptor identity. It is an
// optimization for generic instantiations resolved repeatedly, not a
// correctness requirement.
//
// Derivation is deterministic, so concurrent first computations for the
// same descriptor are wasteful but never incorrect; LoadOrStore makes
// them converge on a single stored value. The zero Cache is ready to use.
type Cache struct {
	m sync.Map // *descriptor.Type -> winguid.GUID
}

// IIDOf returns the identifier for t, computing and recording it on first
// use. Errors are not cached; a failed lookup is recomputed on the next
// call.
func (c *Cache) IIDOf(t *descriptor.Type) (winguid.GUID, error) {
	if v, ok := c.m.Load(t); ok {
		return v.(winguid.GUID), nil
	}
	iid, err := IIDOf(t)
	if err != nil {
		return winguid.GUID{}, err
	}
	v, _ := c.m.LoadOrStore(t, iid)
	return v.(winguid.GUID), nil
}
