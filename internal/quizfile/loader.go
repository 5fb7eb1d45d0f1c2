// Package quizfile loads quiz definitions from a directory of JSON files.
//
// Files are named quiz1.json, quiz2.json, ... and probed sequentially:
// the first missing index ends enumeration, so the set of available
// quizzes is always a contiguous prefix. A file that exists but fails
// validation is rejected (its quiz is unavailable) without stopping the
// probe — later valid files remain loadable.
package quizfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mkaneda/kotoba/internal/quiz"
)

// ErrNotFound is returned by Load for an id with no quiz file.
var ErrNotFound = errors.New("quiz not found")

// Loader reads quiz files from a single directory.
type Loader struct {
	dir string
	log *zap.Logger
}

// New creates a Loader over dir. A nil logger is replaced with a nop.
func New(dir string, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{dir: dir, log: log}
}

// LoadAll probes quiz1.json upward until the first missing file and
// returns the valid quizzes in index order. Malformed files are logged
// and skipped; any other read error aborts.
func (l *Loader) LoadAll() ([]*quiz.Quiz, error) {
	var quizzes []*quiz.Quiz
	for i := 1; ; i++ {
		q, err := l.Load(i)
		if errors.Is(err, ErrNotFound) {
			break
		}
		if err != nil {
			var vErr *ValidationError
			if errors.As(err, &vErr) {
				l.log.Warn("rejecting malformed quiz file",
					zap.String("file", vErr.Path),
					zap.Error(vErr.Err))
				continue
			}
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, nil
}

// Load reads and validates the quiz with the given index.
func (l *Loader) Load(index int) (*quiz.Quiz, error) {
	id := fmt.Sprintf("quiz%d", index)
	path := filepath.Join(l.dir, id+".json")

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := validate(raw); err != nil {
		return nil, &ValidationError{Path: path, Err: err}
	}

	var q quiz.Quiz
	if err := json.Unmarshal(raw, &q); err != nil {
		return nil, &ValidationError{Path: path, Err: err}
	}
	q.ID = id
	return &q, nil
}

// ValidationError marks a quiz file that exists but is unusable.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid quiz file %s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
