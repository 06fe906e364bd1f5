// Package logs reads recent lines from the stationdeck log file.
//
// Lines are kept in a fixed-size ring so memory stays bounded by the
// requested count regardless of file size. A filter restricts the output to
// lines mentioning one export profile, in either the console or the JSON
// log format.
package logs
