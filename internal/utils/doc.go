// Package utils provides small shared helpers: a generic bounded-retry
// executor, regex named-group extraction, line-list file reading, filename
// sanitizing, and scoped duration measurement.
package utils
