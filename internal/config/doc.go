// Package config loads, normalizes, and validates stationdeck configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// STATIONDECK_DEFAULT_NETWORK_CODE. Every directory, export default and
// logging knob the CLI needs is resolved here in one pass.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical log formats, and clear validation errors.
package config
