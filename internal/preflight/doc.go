// Package preflight provides readiness checks for the filesystem paths
// stationdeck reads from and writes to.
//
// The export commands call RunAll before compiling anything so a missing
// or read-only export directory fails fast instead of after the catalogue
// has been loaded. The CLI "stationdeck status" command renders the same
// results as a table.
package preflight
