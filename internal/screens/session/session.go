package session

import (
	"context"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/mkaneda/kotoba/internal/config"
	"github.com/mkaneda/kotoba/internal/quiz"
	"github.com/mkaneda/kotoba/internal/router"
	"github.com/mkaneda/kotoba/internal/screen"
	summaryscreen "github.com/mkaneda/kotoba/internal/screens/summary"
	"github.com/mkaneda/kotoba/internal/store"
	"github.com/mkaneda/kotoba/internal/ui/components"
	"github.com/mkaneda/kotoba/internal/ui/layout"
)

// Deps holds the services the session screen needs.
type Deps struct {
	Config *config.Config
	Log    *zap.Logger
	Events store.EventRepo
}

// SessionScreen runs one quiz attempt.
type SessionScreen struct {
	deps  Deps
	state *quiz.Session

	inputs []components.TextInput
	focus  int

	driver   *quiz.Driver
	finished bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a session screen for the given quiz. Every attempt starts
// with all modes off.
func New(deps Deps, q *quiz.Quiz) *SessionScreen {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	s := &SessionScreen{
		deps:  deps,
		state: quiz.NewSession(q, quiz.Modes{}, rng),
	}
	s.rebuildInputs()
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	return tea.Batch(
		s.persistStart(),
		s.focusCmd(),
	)
}

func (s *SessionScreen) Title() string {
	return s.state.Quiz.Name
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.state.Modes.Autoplay {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Stop autoplay"},
			{Key: "Ctrl+A", Description: "Autoplay off"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Check"},
		{Key: "Tab/↓↑", Description: "Move"},
		{Key: "^S ^R ^T ^A", Description: "Modes"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case attemptSavedMsg:
		if msg.Err != nil {
			s.deps.Log.Warn("persist attempt start", zap.Error(msg.Err))
		}
		return s, nil

	case autoplayTickMsg:
		return s.handleAutoplayTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToInput(msg)
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.finished {
		return s, nil
	}

	switch msg.String() {
	case "esc":
		if s.driver != nil {
			s.stopAutoplay()
			return s, s.focusCmd()
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case "ctrl+s":
		modes := s.state.Modes
		modes.Shuffle = !modes.Shuffle
		return s, s.applyModes(modes)

	case "ctrl+r":
		modes := s.state.Modes
		modes.Reverse = !modes.Reverse
		return s, s.applyModes(modes)

	case "ctrl+t":
		modes := s.state.Modes
		modes.Translate = !modes.Translate
		return s, s.applyModes(modes)

	case "ctrl+a":
		modes := s.state.Modes
		modes.Autoplay = !modes.Autoplay
		return s, s.applyModes(modes)
	}

	if s.driver != nil {
		// Autoplay owns the board; only the keys above are live.
		return s, nil
	}

	switch msg.String() {
	case "enter", "tab", "down":
		return s, s.commitAndMove(1)
	case "shift+tab", "up":
		return s, s.commitAndMove(-1)
	}

	return s.forwardToInput(msg)
}

// applyModes rebuilds the attempt under the new mode flags. All progress
// is discarded, matching the rebuild-on-toggle contract.
func (s *SessionScreen) applyModes(modes quiz.Modes) tea.Cmd {
	s.driver = nil
	s.state.SetModes(modes)
	s.rebuildInputs()

	if modes.Autoplay {
		s.driver = quiz.NewDriver(s.state)
		return s.tickCmd()
	}
	return s.focusCmd()
}

// stopAutoplay cancels a running driver and restarts the attempt fresh.
func (s *SessionScreen) stopAutoplay() {
	if s.driver != nil {
		s.driver.Cancel()
		s.driver = nil
	}
	modes := s.state.Modes
	modes.Autoplay = false
	s.state.SetModes(modes)
	s.rebuildInputs()
}

func (s *SessionScreen) handleAutoplayTick() (screen.Screen, tea.Cmd) {
	if s.driver == nil || s.finished {
		return s, nil
	}

	filled, done := s.driver.Step()
	if filled >= 0 {
		q := s.state.Questions[filled]
		s.inputs[filled].SetValue(q.Input)
		s.inputs[filled].Submit(true)
	}

	if done {
		s.driver = nil
		return s, s.finish()
	}
	return s, s.tickCmd()
}

// commitAndMove commits the focused row, then moves focus by delta.
// Correct answers force the move forward regardless of delta.
func (s *SessionScreen) commitAndMove(delta int) tea.Cmd {
	res := s.commit(s.focus)

	if s.finished {
		return s.finish()
	}

	if res.Correct && res.Advance {
		return s.moveFocus(1)
	}
	if res.Correct && !res.Advance {
		// Last question locked but the set is not complete: wrap to the
		// first open row.
		return s.moveFocus(1)
	}
	return s.moveFocus(delta)
}

// commit evaluates the input for row i and updates its marks.
func (s *SessionScreen) commit(i int) quiz.CommitResult {
	res, err := s.state.Commit(i, s.inputs[i].Value())
	if err != nil {
		s.deps.Log.Warn("commit answer", zap.Int("question", i), zap.Error(err))
		return quiz.CommitResult{}
	}

	if res.Changed {
		s.inputs[i].Submit(res.Correct)
		s.persistAnswer(i, res.Correct)
	}

	if s.state.Complete() {
		s.finished = true
	}
	return res
}

// moveFocus shifts focus by delta, skipping locked rows, and commits
// nothing (the departing row was already committed by the caller).
func (s *SessionScreen) moveFocus(delta int) tea.Cmd {
	n := len(s.inputs)
	if n == 0 {
		return nil
	}

	next := s.focus
	for step := 0; step < n; step++ {
		next = (next + delta + n) % n
		if s.state.Questions[next].Status != quiz.Locked {
			break
		}
	}

	s.inputs[s.focus].Blur()
	s.focus = next
	return s.inputs[s.focus].Focus()
}

func (s *SessionScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.driver != nil || s.finished {
		return s, nil
	}
	if s.focus < 0 || s.focus >= len(s.inputs) {
		return s, nil
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)

	// Editing a Wrong row clears its mark until the next commit.
	if s.state.Questions[s.focus].Status == quiz.Wrong {
		s.inputs[s.focus].ClearSubmit()
	}
	return s, cmd
}

// finish persists the end event and swaps in the summary screen.
func (s *SessionScreen) finish() tea.Cmd {
	s.finished = true
	sum := s.state.Summarize()

	if s.deps.Events != nil {
		err := s.deps.Events.AppendAttemptEvent(context.Background(), store.AttemptEventData{
			AttemptID:      s.state.AttemptID,
			QuizID:         sum.QuizID,
			QuizName:       sum.QuizName,
			Action:         "end",
			TotalQuestions: sum.Total,
			CorrectCount:   sum.Correct,
			WrongCount:     sum.Wrong(),
			Percentage:     sum.Percentage(),
			Autoplay:       sum.Modes.Autoplay,
			DurationSecs:   int(sum.Duration.Seconds()),
		})
		if err != nil {
			s.deps.Log.Warn("persist attempt end", zap.Error(err))
		}
	}

	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summaryscreen.New(sum)}
	}
}

func (s *SessionScreen) persistStart() tea.Cmd {
	if s.deps.Events == nil {
		return nil
	}
	state := s.state
	events := s.deps.Events
	return func() tea.Msg {
		err := events.AppendAttemptEvent(context.Background(), store.AttemptEventData{
			AttemptID: state.AttemptID,
			QuizID:    state.Quiz.ID,
			QuizName:  state.Quiz.Name,
			Action:    "start",
		})
		return attemptSavedMsg{Err: err}
	}
}

func (s *SessionScreen) persistAnswer(i int, correct bool) {
	if s.deps.Events == nil {
		return
	}
	q := s.state.Questions[i]
	err := s.deps.Events.AppendAnswerEvent(context.Background(), store.AnswerEventData{
		AttemptID: s.state.AttemptID,
		QuizID:    s.state.Quiz.ID,
		Prompt:    q.Prompt,
		Expected:  q.Expected,
		Given:     q.Input,
		Correct:   correct,
	})
	if err != nil {
		s.deps.Log.Warn("persist answer", zap.Error(err))
	}
}

// rebuildInputs recreates one text input per question and focuses the first.
func (s *SessionScreen) rebuildInputs() {
	s.inputs = make([]components.TextInput, len(s.state.Questions))
	for i := range s.inputs {
		s.inputs[i] = components.NewTextInput("answer", 40)
	}
	s.focus = 0
	s.finished = false
}

func (s *SessionScreen) focusCmd() tea.Cmd {
	if s.focus < 0 || s.focus >= len(s.inputs) {
		return nil
	}
	return s.inputs[s.focus].Focus()
}

func (s *SessionScreen) tickCmd() tea.Cmd {
	delay := quiz.StepDelay
	if s.deps.Config != nil && s.deps.Config.AutoplayDelay > 0 {
		delay = s.deps.Config.AutoplayDelay
	}
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return autoplayTickMsg(t)
	})
}
