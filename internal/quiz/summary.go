package quiz

import (
	"math"
	"time"
)

// Summary is the terminal report for a completed attempt.
type Summary struct {
	QuizID   string
	QuizName string
	Modes    Modes
	Duration time.Duration

	Total   int
	Correct int
	// Mistakes lists the expected answer for every wrong submission,
	// in order. Not de-duplicated per question.
	Mistakes []string
}

// Wrong is the number of wrong submissions counted against the score.
func (s *Summary) Wrong() int {
	return len(s.Mistakes)
}

// Percentage is the displayed score: round((correct - wrongs) / total * 100),
// floored at 0. Enough retries can drive the raw formula negative, so
// the clamp keeps the display sane while preserving the penalty.
func (s *Summary) Percentage() int {
	if s.Total == 0 {
		return 0
	}
	p := int(math.Round(float64(s.Correct-len(s.Mistakes)) / float64(s.Total) * 100))
	if p < 0 {
		return 0
	}
	return p
}

// Perfect reports a flawless run, which picks the celebratory label.
func (s *Summary) Perfect() bool {
	return s.Percentage() == 100
}

// Summarize builds the attempt summary. Call it when Complete() — both
// the manual path and autoplay finish through here.
func (s *Session) Summarize() *Summary {
	correct := 0
	for i := range s.Questions {
		if s.Questions[i].Status == Locked {
			correct++
		}
	}

	mistakes := make([]string, len(s.mistakes))
	copy(mistakes, s.mistakes)

	return &Summary{
		QuizID:   s.Quiz.ID,
		QuizName: s.Quiz.Name,
		Modes:    s.Modes,
		Duration: time.Since(s.StartedAt),
		Total:    len(s.Questions),
		Correct:  correct,
		Mistakes: mistakes,
	}
}
