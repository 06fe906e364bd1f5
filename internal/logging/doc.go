// Package logging assembles structured slog loggers for stationdeck.
//
// It owns the console and JSON handlers, level parsing and output routing
// (stderr plus the configured log file), and standard field names so export
// runs, imports and catalogue edits emit log lines with the same shape. A
// no-op logger is provided for tests and wiring code that cannot fail.
package logging
