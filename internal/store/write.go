package store

import (
	"context"
)

// InsertWord inserts one row into validWords.
//
// The store does not validate word; callers that need the four-letter format
// check it first. An id that already exists returns an *Error with
// ErrCodeDuplicateKey.
func (s *Store) InsertWord(ctx context.Context, id int64, word string) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO validWords(id, word) VALUES(?, ?)`, id, word)
	if err != nil {
		code := ErrCodeInsert
		if isPrimaryKeyViolation(err) {
			code = ErrCodeDuplicateKey
		}
		err = &Error{Code: code, Path: s.path, Word: word, ID: id, Err: err}
		s.logger.Warn("error adding valid word", "word", word, "id", id, "error", err)
		return err
	}

	s.logger.Debug("added valid word", "word", word, "id", id)
	return nil
}
