// Package database provides SQLite-based storage for extraction results.
//
// This package implements the ResultDB, which stores one record per
// processed document: the inferred title, the outline as JSON, and run
// metadata for historical queries.
//
// Design decision: We use SQLite (via modernc.org/sqlite) instead of other
// databases because:
// 1. No external dependencies - the database is a single file
// 2. CGO-free implementation allows easy cross-compilation
// 3. Sufficient performance for our use case
// 4. WAL mode provides good concurrent read performance
package database
