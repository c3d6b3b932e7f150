// Package testutil holds fixtures shared by package tests: word list files
// on disk and SQLite stores seeded from them.
//
// Packages below the loader (store, loader, words) cannot import testutil
// and keep their own helpers.
package testutil
