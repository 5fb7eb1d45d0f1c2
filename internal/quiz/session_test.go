package quiz

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuiz() *Quiz {
	return &Quiz{
		ID:   "quiz1",
		Name: "Animals",
		Items: []Item{
			{Word: "ねこ", Answer: "cat"},
			{Word: "いぬ", Answer: "dog, hound"},
			{Word: "とり", Answer: "bird"},
		},
	}
}

func TestRebuild_DefaultOrder(t *testing.T) {
	qs := Rebuild(testQuiz(), Modes{}, nil)

	require.Len(t, qs, 3)
	for i, q := range qs {
		assert.Equal(t, i, q.ItemIndex)
		assert.Equal(t, Unanswered, q.Status)
		assert.Empty(t, q.Input)
	}
	assert.Equal(t, "ねこ", qs[0].Prompt)
	assert.Equal(t, "cat", qs[0].Expected)
}

func TestRebuild_ShuffleIsPermutation(t *testing.T) {
	quiz := testQuiz()
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 20; trial++ {
		qs := Rebuild(quiz, Modes{Shuffle: true}, rng)
		require.Len(t, qs, len(quiz.Items))

		seen := make(map[int]bool)
		for _, q := range qs {
			assert.False(t, seen[q.ItemIndex], "duplicate index %d", q.ItemIndex)
			seen[q.ItemIndex] = true
			// Pairing must survive the shuffle.
			item := quiz.Items[q.ItemIndex]
			assert.Equal(t, item.Word, q.Prompt)
			assert.Equal(t, item.Answer, q.Expected)
		}
		assert.Len(t, seen, len(quiz.Items))
	}
}

func TestRebuild_Reverse(t *testing.T) {
	qs := Rebuild(testQuiz(), Modes{Reverse: true}, nil)

	assert.Equal(t, "cat", qs[0].Prompt)
	assert.Equal(t, "ねこ", qs[0].Expected)
}

func TestRebuild_TranslateOnlyChangesPrompt(t *testing.T) {
	qs := Rebuild(testQuiz(), Modes{Translate: true}, nil)

	assert.Equal(t, "neko", qs[0].Prompt)
	assert.Equal(t, "cat", qs[0].Expected, "expected answers stay untransliterated")
}

func TestRebuild_TranslateSkipsNonKanaPrompts(t *testing.T) {
	// Reversed prompts are English; translate must leave them alone.
	qs := Rebuild(testQuiz(), Modes{Reverse: true, Translate: true}, nil)

	assert.Equal(t, "cat", qs[0].Prompt)
}

func TestCommit_CorrectLocksAndAdvances(t *testing.T) {
	s := NewSession(testQuiz(), Modes{}, nil)

	res, err := s.Commit(0, "cat")
	require.NoError(t, err)

	assert.Equal(t, Locked, res.Status)
	assert.True(t, res.Correct)
	assert.True(t, res.Advance)
	assert.Empty(t, s.Mistakes())
}

func TestCommit_LastQuestionDoesNotAdvance(t *testing.T) {
	s := NewSession(testQuiz(), Modes{}, nil)

	res, err := s.Commit(2, "bird")
	require.NoError(t, err)

	assert.True(t, res.Correct)
	assert.False(t, res.Advance)
}

func TestCommit_WrongThenCorrect(t *testing.T) {
	s := NewSession(testQuiz(), Modes{}, nil)

	res, err := s.Commit(0, "dog")
	require.NoError(t, err)
	assert.Equal(t, Wrong, res.Status)
	assert.Len(t, s.Mistakes(), 1)
	assert.Equal(t, "cat", s.Mistakes()[0])

	res, err = s.Commit(0, "cat")
	require.NoError(t, err)
	assert.Equal(t, Locked, res.Status)
	// The earlier mistake still counts.
	assert.Len(t, s.Mistakes(), 1)
}

func TestCommit_EachWrongSubmissionCounts(t *testing.T) {
	s := NewSession(testQuiz(), Modes{}, nil)

	_, err := s.Commit(1, "cat")
	require.NoError(t, err)
	_, err = s.Commit(1, "bird")
	require.NoError(t, err)

	assert.Len(t, s.Mistakes(), 2, "mistakes accumulate per submission, not per question")
}

func TestCommit_BlankIsNoOp(t *testing.T) {
	s := NewSession(testQuiz(), Modes{}, nil)

	for _, input := range []string{"", "   ", ",,"} {
		res, err := s.Commit(0, input)
		require.NoError(t, err)
		assert.Equal(t, Unanswered, res.Status)
		assert.False(t, res.Changed)
	}
	assert.Empty(t, s.Mistakes())
}

func TestCommit_LockedIsAbsorbing(t *testing.T) {
	s := NewSession(testQuiz(), Modes{}, nil)

	_, err := s.Commit(0, "cat")
	require.NoError(t, err)

	// No later event may move a Locked question.
	res, err := s.Commit(0, "garbage")
	require.NoError(t, err)
	assert.Equal(t, Locked, res.Status)
	assert.False(t, res.Changed)
	assert.Equal(t, Locked, s.Questions[0].Status)
	assert.Empty(t, s.Mistakes())
}

func TestCommit_OutOfRange(t *testing.T) {
	s := NewSession(testQuiz(), Modes{}, nil)

	_, err := s.Commit(99, "cat")
	assert.Error(t, err)
}

func TestSetModes_ResetsProgress(t *testing.T) {
	s := NewSession(testQuiz(), Modes{}, rand.New(rand.NewSource(1)))

	_, err := s.Commit(0, "cat")
	require.NoError(t, err)
	_, err = s.Commit(1, "wrong")
	require.NoError(t, err)

	s.SetModes(Modes{Shuffle: true})

	for _, q := range s.Questions {
		assert.Equal(t, Unanswered, q.Status)
		assert.Empty(t, q.Input)
	}
	assert.Empty(t, s.Mistakes())
	assert.False(t, s.Complete())
}

func TestComplete(t *testing.T) {
	s := NewSession(testQuiz(), Modes{}, nil)
	assert.False(t, s.Complete())

	answers := []string{"cat", "dog", "bird"}
	for i, a := range answers {
		_, err := s.Commit(i, a)
		require.NoError(t, err)
	}
	assert.True(t, s.Complete())
}

func TestSummarize_CompletionArithmetic(t *testing.T) {
	// Five questions, question 3 wrong once before correction, rest
	// right first try: 5 correct, 1 mistake, 80%.
	q := &Quiz{
		ID:   "quiz2",
		Name: "Numbers",
		Items: []Item{
			{Word: "いち", Answer: "one"},
			{Word: "に", Answer: "two"},
			{Word: "さん", Answer: "three"},
			{Word: "よん", Answer: "four"},
			{Word: "ご", Answer: "five"},
		},
	}
	s := NewSession(q, Modes{}, nil)

	_, err := s.Commit(0, "one")
	require.NoError(t, err)
	_, err = s.Commit(1, "two")
	require.NoError(t, err)
	_, err = s.Commit(2, "tree")
	require.NoError(t, err)
	_, err = s.Commit(2, "three")
	require.NoError(t, err)
	_, err = s.Commit(3, "four")
	require.NoError(t, err)
	_, err = s.Commit(4, "five")
	require.NoError(t, err)

	require.True(t, s.Complete())
	sum := s.Summarize()

	assert.Equal(t, 5, sum.Total)
	assert.Equal(t, 5, sum.Correct)
	assert.Equal(t, 1, sum.Wrong())
	assert.Equal(t, 80, sum.Percentage())
	assert.False(t, sum.Perfect())
}

func TestSummary_PercentageClampedAtZero(t *testing.T) {
	// Known boundary case: enough retries drive the raw formula
	// negative; the display clamps at 0.
	sum := &Summary{Total: 2, Correct: 2, Mistakes: []string{"a", "a", "a", "a", "a"}}
	assert.Equal(t, 0, sum.Percentage())
}

func TestSummary_Perfect(t *testing.T) {
	sum := &Summary{Total: 3, Correct: 3}
	assert.Equal(t, 100, sum.Percentage())
	assert.True(t, sum.Perfect())
}

func TestSummary_EmptyQuiz(t *testing.T) {
	sum := &Summary{}
	assert.Equal(t, 0, sum.Percentage())
}
