// Package textutil provides the string helpers shared by the catalogue and
// export packages.
//
// The primary use cases are:
//   - Case-insensitive keys for sub-genres, tags and ids (Unicode case folding)
//   - Slugs for player app ids and export file names
//   - Platform keys that collapse spelling variants ("iOS", " IOS ") to one target
//   - Sanitizing filenames and path segments for safe filesystem use
//
// Folding and slugging are backed by golang.org/x/text so accented station
// and genre names compare and slug the same way regardless of composition.
package textutil
