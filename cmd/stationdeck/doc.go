// Package main hosts the stationdeck CLI entrypoint and command graph.
//
// The Cobra-based command tree covers configuration scaffolding, seed
// import, catalogue maintenance for genres, stations, player apps and
// export profiles, and the export commands that write per-platform JSON
// artifacts. It centralizes configuration resolution, logger setup and
// store lifetime so subcommands stay declarative.
//
// Keep this package lean: add new functionality by extending the internal
// packages first (usually internal/api), then surface it through a command
// or flag here.
package main
