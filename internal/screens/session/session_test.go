package session

import (
	"context"
	"testing"

	"github.com/mkaneda/kotoba/internal/quiz"
	"github.com/mkaneda/kotoba/internal/router"
	"github.com/mkaneda/kotoba/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	attemptEvents []store.AttemptEventData
	answerEvents  []store.AnswerEventData
}

func (m *mockEventRepo) AppendAttemptEvent(_ context.Context, data store.AttemptEventData) error {
	m.attemptEvents = append(m.attemptEvents, data)
	return nil
}
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) QuizStatsAll(_ context.Context) ([]store.QuizStats, error) {
	return nil, nil
}
func (m *mockEventRepo) MostMissed(_ context.Context, _ int) ([]store.MissedWord, error) {
	return nil, nil
}

func testQuiz() *quiz.Quiz {
	return &quiz.Quiz{
		ID:   "quiz1",
		Name: "Basics",
		Items: []quiz.Item{
			{Word: "ねこ", Answer: "neko"},
			{Word: "いぬ", Answer: "inu"},
			{Word: "とり", Answer: "tori"},
		},
	}
}

func testSessionScreen() (*SessionScreen, *mockEventRepo) {
	events := &mockEventRepo{}
	s := New(Deps{Events: events}, testQuiz())
	return s, events
}

func TestNew_OneInputPerQuestion(t *testing.T) {
	s, _ := testSessionScreen()
	if len(s.inputs) != 3 {
		t.Errorf("inputs = %d, want 3", len(s.inputs))
	}
	if s.focus != 0 {
		t.Errorf("focus = %d, want 0", s.focus)
	}
}

func TestCommit_CorrectLocksAndAdvances(t *testing.T) {
	s, events := testSessionScreen()

	s.inputs[0].SetValue("neko")
	s.commitAndMove(1)

	if s.state.Questions[0].Status != quiz.Locked {
		t.Errorf("status = %v, want Locked", s.state.Questions[0].Status)
	}
	if s.focus != 1 {
		t.Errorf("focus = %d, want 1", s.focus)
	}
	if len(events.answerEvents) != 1 || !events.answerEvents[0].Correct {
		t.Errorf("want one correct answer event, got %+v", events.answerEvents)
	}
}

func TestCommit_WrongRecordsMistake(t *testing.T) {
	s, events := testSessionScreen()

	s.inputs[0].SetValue("nope")
	s.commitAndMove(1)

	if s.state.Questions[0].Status != quiz.Wrong {
		t.Errorf("status = %v, want Wrong", s.state.Questions[0].Status)
	}
	if got := len(s.state.Mistakes()); got != 1 {
		t.Errorf("mistakes = %d, want 1", got)
	}
	if len(events.answerEvents) != 1 || events.answerEvents[0].Correct {
		t.Errorf("want one wrong answer event, got %+v", events.answerEvents)
	}
}

func TestCommit_BlankIsNoOp(t *testing.T) {
	s, events := testSessionScreen()

	s.commitAndMove(1)

	if s.state.Questions[0].Status != quiz.Unanswered {
		t.Errorf("status = %v, want Unanswered", s.state.Questions[0].Status)
	}
	if len(events.answerEvents) != 0 {
		t.Errorf("want no answer events, got %d", len(events.answerEvents))
	}
	if s.focus != 1 {
		t.Errorf("blank commit should still move focus, focus = %d", s.focus)
	}
}

func TestModeToggle_DiscardsProgress(t *testing.T) {
	s, _ := testSessionScreen()

	s.inputs[0].SetValue("neko")
	s.commitAndMove(1)

	modes := s.state.Modes
	modes.Reverse = true
	s.applyModes(modes)

	for i, q := range s.state.Questions {
		if q.Status != quiz.Unanswered {
			t.Errorf("question %d status = %v, want Unanswered after toggle", i, q.Status)
		}
	}
	if len(s.state.Mistakes()) != 0 {
		t.Error("mistakes should be cleared on mode toggle")
	}
	if s.focus != 0 {
		t.Errorf("focus = %d, want 0 after rebuild", s.focus)
	}
}

func TestAutoplay_RunsToSummary(t *testing.T) {
	s, events := testSessionScreen()

	modes := s.state.Modes
	modes.Autoplay = true
	cmd := s.applyModes(modes)
	if cmd == nil {
		t.Fatal("expected a tick command when autoplay starts")
	}
	if s.driver == nil {
		t.Fatal("expected a running driver")
	}

	var finishCmd func() interface{}
	for i := 0; i < 10; i++ {
		_, c := s.handleAutoplayTick()
		if s.finished {
			finishCmd = func() interface{} { return c() }
			break
		}
	}
	if finishCmd == nil {
		t.Fatal("autoplay never finished")
	}

	for i, q := range s.state.Questions {
		if q.Status != quiz.Locked {
			t.Errorf("question %d not locked after autoplay", i)
		}
		if q.Input != q.Expected {
			t.Errorf("question %d input = %q, want %q", i, q.Input, q.Expected)
		}
	}
	if len(s.state.Mistakes()) != 0 {
		t.Error("autoplay must not record mistakes")
	}

	if _, ok := finishCmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected finish to replace with the summary screen")
	}

	var end *store.AttemptEventData
	for i := range events.attemptEvents {
		if events.attemptEvents[i].Action == "end" {
			end = &events.attemptEvents[i]
		}
	}
	if end == nil {
		t.Fatal("expected an end attempt event")
	}
	if !end.Autoplay || end.Percentage != 100 {
		t.Errorf("end event = %+v, want autoplay perfect score", *end)
	}
}

func TestAutoplay_StopResetsAttempt(t *testing.T) {
	s, _ := testSessionScreen()

	modes := s.state.Modes
	modes.Autoplay = true
	s.applyModes(modes)

	s.handleAutoplayTick()
	if s.state.Questions[0].Status != quiz.Locked {
		t.Fatal("first tick should lock a question")
	}

	s.stopAutoplay()

	if s.state.Modes.Autoplay {
		t.Error("autoplay flag should be off after stop")
	}
	for i, q := range s.state.Questions {
		if q.Status != quiz.Unanswered {
			t.Errorf("question %d status = %v, want Unanswered after stop", i, q.Status)
		}
	}
}

func TestRetry_WrongThenCorrectLocks(t *testing.T) {
	s, _ := testSessionScreen()

	s.inputs[0].SetValue("nope")
	s.commitAndMove(1)
	s.moveFocus(-1)

	s.inputs[0].SetValue("neko")
	s.commitAndMove(1)

	if s.state.Questions[0].Status != quiz.Locked {
		t.Errorf("status = %v, want Locked after retry", s.state.Questions[0].Status)
	}
	if got := len(s.state.Mistakes()); got != 1 {
		t.Errorf("mistakes = %d, want the original wrong try kept", got)
	}
}

func TestFinish_AllCorrect(t *testing.T) {
	s, events := testSessionScreen()

	answers := []string{"neko", "inu", "tori"}
	for range answers {
		s.inputs[s.focus].SetValue(answers[s.focus])
		s.commitAndMove(1)
	}

	if !s.finished {
		t.Fatal("expected finished after all questions locked")
	}

	var end *store.AttemptEventData
	for i := range events.attemptEvents {
		if events.attemptEvents[i].Action == "end" {
			end = &events.attemptEvents[i]
		}
	}
	if end == nil {
		t.Fatal("expected an end attempt event")
	}
	if end.Percentage != 100 || end.CorrectCount != 3 || end.WrongCount != 0 {
		t.Errorf("end event = %+v, want a perfect score", *end)
	}
}
