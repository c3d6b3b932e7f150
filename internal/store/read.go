package store

import (
	"context"
	"fmt"
)

// Lookup reports whether word is in validWords.
// Zero matching rows is (false, nil); a failed statement returns an *Error
// with ErrCodeQuery.
func (s *Store) Lookup(ctx context.Context, word string) (bool, error) {
	var total int
	err := s.db.QueryRowContext(ctx, `SELECT count(id) AS total FROM validWords WHERE word = ?`, word).Scan(&total)
	if err != nil {
		return false, &Error{Code: ErrCodeQuery, Path: s.path, Word: word, Err: err}
	}
	return total >= 1, nil
}

// IsMember reports whether word is in validWords.
//
// A failed query is logged and reported as false, never returned.
func (s *Store) IsMember(ctx context.Context, word string) bool {
	found, err := s.Lookup(ctx, word)
	if err != nil {
		s.logger.Warn("error checking if word is valid", "word", word, "error", err)
		return false
	}
	s.logger.Debug("checked if word is valid", "word", word, "result", found)
	return found
}

// Count returns the number of rows in validWords.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(id) FROM validWords`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count valid words: %w", err)
	}
	return n, nil
}
