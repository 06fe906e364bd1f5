// Package selection computes which catalogue stations belong to an export
// profile and maps them to their exported form.
//
// A station is selected when its genre is one of the profile's genres, when
// one of its sub-genres matches a profile sub-genre (case-insensitively), or
// when the profile lists it explicitly. Genre and sub-genre matches skip
// deactivated stations; explicit selections do not. Results are unique per
// station and ordered by name with a locale-aware collator.
package selection
