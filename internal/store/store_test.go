package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestOpen_CreatesSchema(t *testing.T) {
	st := openTestStore(t)

	// Both tables should be queryable immediately.
	var n int
	require.NoError(t, st.DB().QueryRow("SELECT COUNT(*) FROM attempt_events").Scan(&n))
	assert.Equal(t, 0, n)
	require.NoError(t, st.DB().QueryRow("SELECT COUNT(*) FROM answer_events").Scan(&n))
	assert.Equal(t, 0, n)
}

func TestAppendAndAggregate(t *testing.T) {
	st := openTestStore(t)
	repo := st.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendAttemptEvent(ctx, AttemptEventData{
		AttemptID: "a1", QuizID: "quiz1", QuizName: "Animals", Action: "start",
	}))
	require.NoError(t, repo.AppendAttemptEvent(ctx, AttemptEventData{
		AttemptID: "a1", QuizID: "quiz1", QuizName: "Animals", Action: "end",
		TotalQuestions: 5, CorrectCount: 5, WrongCount: 1, Percentage: 80,
		DurationSecs: 42,
	}))
	require.NoError(t, repo.AppendAttemptEvent(ctx, AttemptEventData{
		AttemptID: "a2", QuizID: "quiz1", QuizName: "Animals", Action: "end",
		TotalQuestions: 5, CorrectCount: 5, Percentage: 100,
	}))

	stats, err := repo.QuizStatsAll(ctx)
	require.NoError(t, err)

	require.Len(t, stats, 1)
	assert.Equal(t, "quiz1", stats[0].QuizID)
	assert.Equal(t, "Animals", stats[0].QuizName)
	assert.Equal(t, 2, stats[0].Attempts, "start events must not count as attempts")
	assert.InDelta(t, 90.0, stats[0].AvgPercentage, 0.01)
	assert.Equal(t, 100, stats[0].BestPercentage)
}

func TestMostMissed(t *testing.T) {
	st := openTestStore(t)
	repo := st.EventRepo()
	ctx := context.Background()

	miss := func(prompt, expected string) {
		require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{
			AttemptID: "a1", QuizID: "quiz1",
			Prompt: prompt, Expected: expected, Given: "nope",
		}))
	}
	miss("ねこ", "cat")
	miss("ねこ", "cat")
	miss("いぬ", "dog")
	require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{
		AttemptID: "a1", QuizID: "quiz1",
		Prompt: "とり", Expected: "bird", Given: "bird", Correct: true,
	}))

	missed, err := repo.MostMissed(ctx, 10)
	require.NoError(t, err)

	require.Len(t, missed, 2, "correct answers never rank")
	assert.Equal(t, "ねこ", missed[0].Prompt)
	assert.Equal(t, 2, missed[0].Misses)
	assert.Equal(t, "いぬ", missed[1].Prompt)
}

func TestMostMissed_Limit(t *testing.T) {
	st := openTestStore(t)
	repo := st.EventRepo()
	ctx := context.Background()

	for _, p := range []string{"a", "b", "c"} {
		require.NoError(t, repo.AppendAnswerEvent(ctx, AnswerEventData{
			AttemptID: "a1", QuizID: "quiz1", Prompt: p, Expected: p, Given: "x",
		}))
	}

	missed, err := repo.MostMissed(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, missed, 2)
}

func TestReset(t *testing.T) {
	st := openTestStore(t)
	repo := st.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendAttemptEvent(ctx, AttemptEventData{
		AttemptID: "a1", QuizID: "quiz1", QuizName: "Animals", Action: "end", Percentage: 50,
	}))
	require.NoError(t, st.Reset(ctx))

	stats, err := repo.QuizStatsAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, stats)
}
