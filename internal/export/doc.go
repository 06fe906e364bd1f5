// Package export compiles export profiles into per-platform payloads.
//
// Compile selects the profile's stations and attaches the app and ad blocks
// for the linked player app's primary platform. Materialize then regenerates
// the app, ads and settings blocks for every platform the player declares,
// producing one Target per distinct platform key. Build runs both steps for
// a profile id.
//
// Everything here is a pure function of the catalogue snapshot; writing the
// targets to disk is left to the exportwriter package.
package export
