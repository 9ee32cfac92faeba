// Package catalog provides a SQLite-backed record of computed interface
// identifiers.
//
// The catalog is an append-only table keyed by (full_name, signature):
// recording a pair that is already present is a silent no-op, and reads
// use a fixed ORDER BY so repeated listings are byte-identical. The
// catalog records and reads back; it does not version or migrate
// previously issued identifiers.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
package catalog
