// Package store persists the station catalogue in SQLite.
//
// Each record is kept as its canonical JSON document alongside a few indexed
// columns (names, genre, player ownership) used for listing and integrity
// checks. Writes load the current catalogue inside a transaction, apply the
// pure canonicalization and cascade functions from the catalog package, and
// write back only the rows that changed, so ownership reassignment and
// referential cleanup commit atomically.
package store
