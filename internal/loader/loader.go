package loader

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/roach88/fourword/internal/logging"
	"github.com/roach88/fourword/internal/words"
)

// Inserter stores one word under the given id.
type Inserter interface {
	InsertWord(ctx context.Context, id int64, word string) error
}

// Result counts the outcome of a load.
type Result struct {
	Loaded   int `json:"loaded"`   // words inserted
	Rejected int `json:"rejected"` // lines failing the word format, empty lines included
	Failed   int `json:"failed"`   // well-formed words whose insert failed
}

// Loader reads word sources into an Inserter.
type Loader struct {
	ins    Inserter
	logger *slog.Logger
}

// New creates a Loader. A nil logger discards events.
func New(ins Inserter, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Loader{ins: ins, logger: logger}
}

// LoadFile opens path and loads it. If the file cannot be opened, nothing is
// loaded and a *SourceUnavailableError is returned.
func (l *Loader) LoadFile(ctx context.Context, path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		err = &SourceUnavailableError{Source: path, Err: err}
		l.logger.Error("error reading word source", "source", path, "error", err)
		return Result{}, err
	}
	defer f.Close()

	return l.load(ctx, path, f)
}

// Load reads r line by line and inserts every valid word.
func (l *Loader) Load(ctx context.Context, r io.Reader) (Result, error) {
	return l.load(ctx, "reader", r)
}

func (l *Loader) load(ctx context.Context, source string, r io.Reader) (Result, error) {
	var res Result
	var id int64 = 1

	lines := NewLineReader(r)
	for n, line := range lines.All() {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		word := strings.TrimSpace(line)
		if !words.Valid(word) {
			res.Rejected++
			if word == "" {
				l.logger.Debug("skipped empty line", "source", source, "line", n)
			} else {
				l.logger.Warn("invalid word in source, expected a 4-letter lowercase word",
					"source", source, "line", n, "word", word)
			}
			continue
		}

		// The id is spent even if the insert fails.
		wordID := id
		id++
		if err := l.ins.InsertWord(ctx, wordID, word); err != nil {
			res.Failed++
			l.logger.Warn("error loading word", "source", source, "line", n, "word", word, "id", wordID, "error", err)
			continue
		}
		res.Loaded++
		l.logger.Debug("loaded valid word", "word", word, "id", wordID)
	}

	if err := lines.Err(); err != nil {
		err = &SourceUnavailableError{Source: source, Err: err}
		l.logger.Error("error reading word source", "source", source, "error", err)
		return res, err
	}

	l.logger.Info("finished loading words",
		"source", source,
		"loaded", res.Loaded,
		"rejected", res.Rejected,
		"failed", res.Failed,
	)
	return res, nil
}
