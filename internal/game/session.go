// Package game runs the interactive guess prompt against a membership checker.
package game

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/roach88/fourword/internal/loader"
	"github.com/roach88/fourword/internal/logging"
	"github.com/roach88/fourword/internal/words"
)

// QuitCommand ends a session.
const QuitCommand = "q"

// Prompt and reply text shown to the player.
const (
	Prompt         = "Enter a 4 letter word for a guess or q to quit: "
	MsgFound       = "Success! It is in the list."
	MsgNotFound    = "Sorry. This word is NOT in the list."
	MsgInvalidForm = "Sorry. This is not a valid 4 letter word."
)

// Checker answers membership queries. It reports false on storage failures
// rather than returning them.
type Checker interface {
	IsMember(ctx context.Context, word string) bool
}

// Summary counts what happened in a session.
type Summary struct {
	Guesses   int
	Found     int
	NotFound  int
	Malformed int
	Quit      bool // false when input ended without the quit command
}

// Session is one run of the guess prompt.
type Session struct {
	checker Checker
	in      io.Reader
	out     io.Writer
	id      string
	logger  *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. Every event carries the session id.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSessionID overrides the generated session id.
func WithSessionID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

// NewSessionID returns a time-sortable UUIDv7 string.
func NewSessionID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// NewSession creates a session reading guesses from in and writing replies to out.
func NewSession(checker Checker, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		checker: checker,
		in:      in,
		out:     out,
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.id == "" {
		s.id = NewSessionID()
	}
	s.logger = s.logger.With("session", s.id)
	return s
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// Run prompts for guesses until the quit command, the end of input, or ctx
// is cancelled. Malformed guesses are answered without consulting the checker.
//
// Cancelling ctx returns at once, even while waiting for input.
func (s *Session) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	done := make(chan struct{})
	defer close(done)
	reader := loader.NewLineReader(s.in)
	guesses := s.readGuesses(reader, done)

	s.logger.Info("session started")
	for {
		if err := ctx.Err(); err != nil {
			return sum, s.interrupted(err)
		}

		fmt.Fprint(s.out, Prompt)

		var guess string
		var ok bool
		select {
		case <-ctx.Done():
			return sum, s.interrupted(ctx.Err())
		case guess, ok = <-guesses:
		}
		if !ok {
			// The reader goroutine has finished, so its error is safe to read.
			if err := reader.Err(); err != nil {
				s.logger.Warn("error during user input", "error", err)
				return sum, fmt.Errorf("read guess: %w", err)
			}
			break
		}

		if guess == QuitCommand {
			sum.Quit = true
			break
		}

		sum.Guesses++
		s.handleGuess(ctx, guess, &sum)
	}

	if !sum.Quit {
		// Input ended mid-prompt; finish the line.
		fmt.Fprintln(s.out)
		s.logger.Info("input closed")
	} else {
		s.logger.Info("user quit the game")
	}

	s.logger.Info("session finished",
		"guesses", sum.Guesses,
		"found", sum.Found,
		"not_found", sum.NotFound,
		"malformed", sum.Malformed,
	)
	return sum, nil
}

// readGuesses feeds input lines to the returned channel, which is closed at
// the end of input. The goroutine stays blocked in Read until the input
// yields or closes; done only stops it from delivering further lines.
func (s *Session) readGuesses(reader *loader.LineReader, done <-chan struct{}) <-chan string {
	guesses := make(chan string)
	go func() {
		defer close(guesses)
		for _, line := range reader.All() {
			select {
			case guesses <- line:
			case <-done:
				return
			}
		}
	}()
	return guesses
}

func (s *Session) interrupted(err error) error {
	fmt.Fprintln(s.out)
	s.logger.Info("session interrupted")
	return err
}

func (s *Session) handleGuess(ctx context.Context, guess string, sum *Summary) {
	if !words.Valid(guess) {
		sum.Malformed++
		fmt.Fprintf(s.out, "%s\n\n", MsgInvalidForm)
		s.logger.Warn("invalid guess format, expected a 4-letter lowercase word", "guess", guess)
		return
	}

	fmt.Fprintf(s.out, "You've guessed '%s'.\n", guess)
	s.logger.Info("user guessed", "guess", guess)

	if s.checker.IsMember(ctx, guess) {
		sum.Found++
		fmt.Fprintf(s.out, "%s\n\n", MsgFound)
		s.logger.Info("guess is a valid word", "guess", guess)
		return
	}

	sum.NotFound++
	fmt.Fprintf(s.out, "%s\n\n", MsgNotFound)
	s.logger.Info("guess is not in the valid word list", "guess", guess)
}
