package quiz

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Session owns one quiz attempt: the current question set, the mode
// flags it was built under, and the running mistake tally. It is mutated
// only from the UI event loop — commits, mode toggles, and autoplay
// steps all arrive one at a time.
type Session struct {
	Quiz      *Quiz
	Modes     Modes
	Questions []Question

	// AttemptID groups this attempt's persisted events.
	AttemptID string

	// StartedAt is when the current question set was built.
	StartedAt time.Time

	// mistakes records one entry per wrong submission, in order. A
	// question answered wrong twice contributes two entries.
	mistakes []string

	rng *rand.Rand
}

// CommitResult describes the outcome of a commit event.
type CommitResult struct {
	// Status is the question's status after the commit.
	Status Status
	// Correct is true when this commit locked the question.
	Correct bool
	// Advance is true when focus should move to the next question.
	Advance bool
	// Changed is false for no-op commits (blank input, already locked).
	Changed bool
}

// NewSession builds a session for one quiz attempt.
func NewSession(q *Quiz, modes Modes, rng *rand.Rand) *Session {
	s := &Session{
		Quiz:      q,
		AttemptID: uuid.New().String(),
		rng:       rng,
	}
	s.SetModes(modes)
	return s
}

// SetModes rebuilds the question set under the given modes. All
// per-question progress and the mistake tally are discarded — toggling
// any mode restarts the attempt.
func (s *Session) SetModes(modes Modes) {
	s.Modes = modes
	s.Questions = Rebuild(s.Quiz, modes, s.rng)
	s.mistakes = nil
	s.StartedAt = time.Now()
}

// Reset rebuilds the question set under the current modes. Used when
// autoplay is cancelled mid-run: the attempt restarts fresh rather than
// resuming.
func (s *Session) Reset() {
	s.SetModes(s.Modes)
}

// Commit finalizes a submission for question i (fired on confirm or on
// focus leaving the row). Blank input and Locked questions are no-ops.
// A correct submission locks the question permanently; a wrong one marks
// it Wrong and records a mistake.
func (s *Session) Commit(i int, input string) (CommitResult, error) {
	if i < 0 || i >= len(s.Questions) {
		return CommitResult{}, fmt.Errorf("question index %d out of range", i)
	}
	q := &s.Questions[i]

	if q.Status == Locked {
		return CommitResult{Status: Locked}, nil
	}

	q.Input = input
	if IsBlank(input) {
		return CommitResult{Status: q.Status}, nil
	}

	ok, err := Evaluate(q.Expected, input)
	if err != nil {
		return CommitResult{}, fmt.Errorf("evaluate %q: %w", q.Prompt, err)
	}

	if ok {
		q.Status = Locked
		return CommitResult{
			Status:  Locked,
			Correct: true,
			Advance: i+1 < len(s.Questions),
			Changed: true,
		}, nil
	}

	q.Status = Wrong
	s.mistakes = append(s.mistakes, strings.Join(normalize(q.Expected), ", "))
	return CommitResult{Status: Wrong, Changed: true}, nil
}

// forceLock writes the canonical answer into question i and locks it
// without evaluation. Autoplay is correct by construction.
func (s *Session) forceLock(i int) {
	q := &s.Questions[i]
	q.Input = q.Expected
	q.Status = Locked
}

// Complete reports whether every question in the set is Locked.
func (s *Session) Complete() bool {
	for i := range s.Questions {
		if s.Questions[i].Status != Locked {
			return false
		}
	}
	return true
}

// Mistakes returns the ordered per-submission mistake entries.
func (s *Session) Mistakes() []string {
	return s.mistakes
}
