// Package loader seeds the lookup store from a newline-delimited word source.
//
// Each line is trimmed and checked against the four-letter format. Accepted
// words are inserted with ids 1, 2, 3... in file order; rejected lines are
// counted and skipped. A single failed insert is logged and the load goes on.
package loader
