package store

import (
	"context"
	"database/sql"
	"fmt"
)

// AttemptEventData captures an attempt lifecycle event (start/end).
type AttemptEventData struct {
	AttemptID      string
	QuizID         string
	QuizName       string
	Action         string // "start" or "end"
	TotalQuestions int    // end only
	CorrectCount   int    // end only
	WrongCount     int    // end only
	Percentage     int    // end only
	Autoplay       bool
	DurationSecs   int // end only
}

// AnswerEventData captures one committed submission.
type AnswerEventData struct {
	AttemptID string
	QuizID    string
	Prompt    string
	Expected  string
	Given     string
	Correct   bool
}

// QuizStats aggregates finished attempts for one quiz.
type QuizStats struct {
	QuizID         string
	QuizName       string
	Attempts       int
	AvgPercentage  float64
	BestPercentage int
}

// MissedWord is a prompt ranked by how often it was answered wrong.
type MissedWord struct {
	Prompt   string
	Expected string
	Misses   int
}

// EventRepo provides append and query access to attempt history.
type EventRepo interface {
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// QuizStatsAll aggregates per-quiz stats over finished attempts,
	// ordered by quiz id.
	QuizStatsAll(ctx context.Context) ([]QuizStats, error)

	// MostMissed returns up to limit prompts with the highest wrong
	// submission counts, across all quizzes.
	MostMissed(ctx context.Context, limit int) ([]MissedWord, error)
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendAttemptEvent(ctx context.Context, data AttemptEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO attempt_events
			(attempt_id, quiz_id, quiz_name, action, total_questions,
			 correct_count, wrong_count, percentage, autoplay, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		data.AttemptID, data.QuizID, data.QuizName, data.Action,
		data.TotalQuestions, data.CorrectCount, data.WrongCount,
		data.Percentage, data.Autoplay, data.DurationSecs)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO answer_events
			(attempt_id, quiz_id, prompt, expected, given, correct)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		data.AttemptID, data.QuizID, data.Prompt, data.Expected,
		data.Given, data.Correct)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuizStatsAll(ctx context.Context) ([]QuizStats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT quiz_id, quiz_name, COUNT(*), AVG(percentage), MAX(percentage)
		 FROM attempt_events
		 WHERE action = 'end'
		 GROUP BY quiz_id, quiz_name
		 ORDER BY quiz_id`)
	if err != nil {
		return nil, fmt.Errorf("query quiz stats: %w", err)
	}
	defer rows.Close()

	var stats []QuizStats
	for rows.Next() {
		var s QuizStats
		if err := rows.Scan(&s.QuizID, &s.QuizName, &s.Attempts, &s.AvgPercentage, &s.BestPercentage); err != nil {
			return nil, fmt.Errorf("scan quiz stats: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *eventRepo) MostMissed(ctx context.Context, limit int) ([]MissedWord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT prompt, expected, COUNT(*) AS misses
		 FROM answer_events
		 WHERE correct = 0
		 GROUP BY prompt, expected
		 ORDER BY misses DESC, prompt
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query most missed: %w", err)
	}
	defer rows.Close()

	var missed []MissedWord
	for rows.Next() {
		var m MissedWord
		if err := rows.Scan(&m.Prompt, &m.Expected, &m.Misses); err != nil {
			return nil, fmt.Errorf("scan most missed: %w", err)
		}
		missed = append(missed, m)
	}
	return missed, rows.Err()
}
