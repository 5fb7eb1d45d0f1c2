package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mkaneda/kotoba/internal/quiz"
	"github.com/mkaneda/kotoba/internal/ui/components"
	"github.com/mkaneda/kotoba/internal/ui/theme"
)

// visibleRows caps how many question rows render at once; the window
// scrolls to keep the focused row in view.
const visibleRows = 12

func (s *SessionScreen) View(width, height int) string {
	var b strings.Builder

	locked := 0
	for i := range s.state.Questions {
		if s.state.Questions[i].Status == quiz.Locked {
			locked++
		}
	}
	total := len(s.state.Questions)

	percent := 0.0
	if total > 0 {
		percent = float64(locked) / float64(total)
	}
	bar := components.NewProgressBar(
		fmt.Sprintf("%d/%d", locked, total),
		percent, false, min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")

	toggles := components.ToggleBar{Toggles: []components.Toggle{
		{Key: "^S", Label: "Shuffle", On: s.state.Modes.Shuffle},
		{Key: "^R", Label: "Reverse", On: s.state.Modes.Reverse},
		{Key: "^T", Label: "Translate", On: s.state.Modes.Translate},
		{Key: "^A", Label: "Autoplay", On: s.state.Modes.Autoplay},
	}}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, toggles.View()))
	b.WriteString("\n\n")

	start, end := s.rowWindow()
	for i := start; i < end; i++ {
		b.WriteString(s.renderRow(i, width))
		b.WriteString("\n")
	}
	if end < total {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render(fmt.Sprintf("… %d more", total-end))))
		b.WriteString("\n")
	}

	if n := len(s.state.Mistakes()); n > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render(fmt.Sprintf("Mistakes: %d", n))))
	}

	return b.String()
}

// rowWindow returns the half-open row range kept on screen.
func (s *SessionScreen) rowWindow() (int, int) {
	total := len(s.state.Questions)
	if total <= visibleRows {
		return 0, total
	}
	start := s.focus - visibleRows/2
	if start < 0 {
		start = 0
	}
	end := start + visibleRows
	if end > total {
		end = total
		start = end - visibleRows
	}
	return start, end
}

func (s *SessionScreen) renderRow(i int, width int) string {
	q := s.state.Questions[i]

	cursor := "  "
	if i == s.focus && s.driver == nil {
		cursor = theme.Selected.Render("▸ ")
	}

	promptStyle := lipgloss.NewStyle().Foreground(theme.Text)
	switch q.Status {
	case quiz.Locked:
		promptStyle = theme.Correct
	case quiz.Wrong:
		promptStyle = theme.Incorrect
	}

	prompt := promptStyle.Width(24).Render(q.Prompt)

	var answer string
	if q.Status == quiz.Locked {
		answer = theme.Correct.Render(q.Input) + " " +
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	} else {
		answer = s.inputs[i].View()
	}

	row := fmt.Sprintf("%s%2d. %s  %s", cursor, i+1, prompt, answer)
	return lipgloss.PlaceHorizontal(width, lipgloss.Left,
		lipgloss.NewStyle().PaddingLeft(4).Render(row))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
