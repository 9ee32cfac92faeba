package catalog

import (
	"context"
	"fmt"
)

// Record inserts an identifier row. Re-recording the same
// (full_name, signature) pair is silently ignored, so callers may replay
// whole type tables without tracking what is already present.
func (c *Catalog) Record(ctx context.Context, e Entry) error {
	derived := 0
	if e.Derived {
		derived = 1
	}
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO identifiers (full_name, signature, iid, derived)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(full_name, signature) DO NOTHING
	`, e.FullName, e.Signature, e.IID, derived)
	if err != nil {
		return fmt.Errorf("record identifier: %w", err)
	}
	return nil
}
