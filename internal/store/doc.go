// Package store provides the SQLite-backed lookup store for valid words.
//
// The store owns a single database file with two tables of identical shape:
//   - validWords: the membership set queried by guesses
//   - wordlist: created alongside validWords but never written or read
//
// # Lifecycle
//
// Open creates or opens the file and never touches tables it does not manage.
// ResetSchema drops and recreates both tables, so every startup begins from an
// empty set. InsertWord adds rows, IsMember answers membership queries.
//
// # Parameterized Statements
//
// Every statement binds user-supplied values as parameters. Guesses and words
// are never concatenated into SQL text.
//
// # Errors
//
// Failures are returned as *Error carrying an ErrorCode (connection, schema,
// duplicate key, insert, query). IsMember is the exception: it logs the query
// error and reports false so an interactive session never fails on a lookup.
package store
