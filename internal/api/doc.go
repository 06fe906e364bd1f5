// Package api holds the application services the CLI calls. It keeps
// command handlers free of store, compiler and writer wiring so each command
// is a flag parse plus one service call.
//
// # Services
//
// CatalogService: catalogue CRUD over the store, seed import and status
// summaries. Saving a profile that claims a player app reports the profiles
// that lost it.
//
// ExportService: compiles profiles into per-platform targets and hands them
// to the export writer, either for one profile or for every profile with
// auto-export enabled.
//
// # Design Notes
//
// DTOs use camelCase JSON tags so `--json` output matches the seed and
// export documents. Catalogue records are returned as the canonical
// catalog types rather than copies.
package api
