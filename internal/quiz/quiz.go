// Package quiz holds the flashcard quiz core: the question state machine,
// the free-text answer evaluator, and the autoplay driver.
package quiz

import (
	"math/rand"

	"github.com/mkaneda/kotoba/internal/kana"
)

// Item is a single word/answer pair from a quiz file. Answer is a
// comma-separated set of acceptable responses.
type Item struct {
	Word   string `json:"word"`
	Answer string `json:"answer"`
}

// Quiz is an immutable quiz definition loaded from storage.
type Quiz struct {
	ID    string `json:"-"`
	Name  string `json:"name"`
	Items []Item `json:"questions"`
}

// Modes are the four independent presentation toggles for one attempt.
type Modes struct {
	Shuffle   bool
	Reverse   bool
	Translate bool
	Autoplay  bool
}

// Status is the lifecycle state of a single question.
type Status int

const (
	// Unanswered means no non-blank submission has been committed yet.
	Unanswered Status = iota
	// Wrong means the last non-blank submission failed evaluation.
	// Wrong is not absorbing; the question can still be retried.
	Wrong
	// Locked means a submission was accepted. Terminal: no later event
	// changes a Locked question.
	Locked
)

// Question is the per-question state for the currently built display set.
type Question struct {
	// ItemIndex points back into Quiz.Items.
	ItemIndex int
	// Prompt is the text shown to the player (possibly transliterated).
	Prompt string
	// Expected is the raw acceptable-answer field for this question,
	// before normalization. Autoplay writes it verbatim.
	Expected string
	// Input is the player's current submission text.
	Input string
	// Status is the question's lifecycle state.
	Status Status
}

// Rebuild derives a fresh question set from quiz under modes. It is pure
// apart from draws on rng, and is invoked on every mode toggle: progress
// never carries across a rebuild.
//
// The returned order is a permutation of all item indices. Reverse swaps
// which field is prompt vs. expected answer. Translate replaces a kana
// prompt's display text with romaji but leaves the expected set alone.
func Rebuild(q *Quiz, modes Modes, rng *rand.Rand) []Question {
	order := make([]int, len(q.Items))
	for i := range order {
		order[i] = i
	}
	if modes.Shuffle && rng != nil {
		// Fisher-Yates over the index copy; Quiz.Items is never mutated.
		for i := len(order) - 1; i > 0; i-- {
			j := rng.Intn(i + 1)
			order[i], order[j] = order[j], order[i]
		}
	}

	questions := make([]Question, 0, len(order))
	for _, idx := range order {
		item := q.Items[idx]

		prompt, expected := item.Word, item.Answer
		if modes.Reverse {
			prompt, expected = item.Answer, item.Word
		}
		if modes.Translate && kana.IsKana(prompt) {
			prompt = kana.ToRomaji(prompt)
		}

		questions = append(questions, Question{
			ItemIndex: idx,
			Prompt:    prompt,
			Expected:  expected,
		})
	}
	return questions
}
