// Package catalog defines the radio catalogue records (genres, stations,
// player apps and export profiles) and the pure functions that keep them in
// canonical form.
//
// Canonicalization runs on every write: genre sub-genres are deduplicated
// case-insensitively, station sub-genres are restricted to the ones defined
// on the station's genre, and player apps always carry a non-empty,
// lower-cased platform list whose first entry is the primary platform.
//
// Ownership and cascade helpers (SaveProfile, DeleteGenre, DeletePlayerApp,
// ...) take the full catalogue and return an updated copy. Nothing in this
// package mutates its arguments or performs I/O, so the invariants can be
// verified without a database.
package catalog
