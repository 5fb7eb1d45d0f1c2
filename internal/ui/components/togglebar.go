package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mkaneda/kotoba/internal/ui/theme"
)

// Toggle is a single labeled on/off flag.
type Toggle struct {
	Key   string
	Label string
	On    bool
}

// ToggleBar renders a row of labeled flags, highlighting the active ones.
type ToggleBar struct {
	Toggles []Toggle
}

// View renders the toggle bar.
func (b ToggleBar) View() string {
	parts := make([]string, 0, len(b.Toggles))
	for _, t := range b.Toggles {
		key := lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.Key)
		var label string
		if t.On {
			label = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(t.Label)
		} else {
			label = lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.Label)
		}
		parts = append(parts, key+" "+label)
	}
	return strings.Join(parts, "   ")
}
