package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/mkaneda/kotoba/internal/config"
	"github.com/mkaneda/kotoba/internal/quiz"
	"github.com/mkaneda/kotoba/internal/quizfile"
	"github.com/mkaneda/kotoba/internal/router"
	"github.com/mkaneda/kotoba/internal/screen"
	sessionscreen "github.com/mkaneda/kotoba/internal/screens/session"
	"github.com/mkaneda/kotoba/internal/store"
	"github.com/mkaneda/kotoba/internal/ui/components"
	"github.com/mkaneda/kotoba/internal/ui/theme"
)

// Deps holds the services the home screen hands down to sessions.
type Deps struct {
	Config *config.Config
	Log    *zap.Logger
	Loader *quizfile.Loader
	Events store.EventRepo
}

// HomeScreen lists the available quizzes.
type HomeScreen struct {
	deps    Deps
	menu    components.Menu
	quizzes []*quiz.Quiz
	loadErr error
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}

	quizzes, err := deps.Loader.LoadAll()
	if err != nil {
		h.loadErr = err
	}
	h.quizzes = quizzes

	items := make([]components.MenuItem, 0, len(quizzes)+1)
	for _, q := range quizzes {
		q := q
		items = append(items, components.MenuItem{
			Label: q.Name,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: sessionscreen.New(sessionscreen.Deps{
							Config: deps.Config,
							Log:    deps.Log,
							Events: deps.Events,
						}, q),
					}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "Exit",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("言葉 · Kotoba"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Flashcard quizzes for vocabulary drills"))
	b.WriteString("\n\n")

	if h.loadErr != nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("Failed to load quizzes: %v", h.loadErr)))
		b.WriteString("\n\n")
	} else if len(h.quizzes) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No quiz files found. Add quiz1.json to the quizzes directory."))
		b.WriteString("\n\n")
	}

	menu := h.menu.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	content := b.String()
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Quizzes"
}
