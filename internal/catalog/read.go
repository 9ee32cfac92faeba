package catalog

import (
	"context"
	"fmt"
)

// All returns every recorded row ordered by (full_name, signature).
// The fixed ordering keeps repeated listings byte-identical.
func (c *Catalog) All(ctx context.Context) ([]Entry, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT full_name, signature, iid, derived
		FROM identifiers
		ORDER BY full_name ASC, signature ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list identifiers: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// ByName returns every recorded row for a full name, ordered by signature.
// A type that changed shape across recordings shows up as multiple rows.
func (c *Catalog) ByName(ctx context.Context, fullName string) ([]Entry, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT full_name, signature, iid, derived
		FROM identifiers
		WHERE full_name = ?
		ORDER BY signature ASC
	`, fullName)
	if err != nil {
		return nil, fmt.Errorf("list identifiers for %s: %w", fullName, err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanEntries(rows rowScanner) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var derived int
		if err := rows.Scan(&e.FullName, &e.Signature, &e.IID, &derived); err != nil {
			return nil, fmt.Errorf("scan identifier row: %w", err)
		}
		e.Derived = derived != 0
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate identifier rows: %w", err)
	}
	return entries, nil
}
