package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tutelearn/tute/internal/rewards"
	"github.com/tutelearn/tute/internal/router"
	"github.com/tutelearn/tute/internal/screen"
	"github.com/tutelearn/tute/internal/screens/history"
	sessionscreen "github.com/tutelearn/tute/internal/screens/session"
	"github.com/tutelearn/tute/internal/topic"
	"github.com/tutelearn/tute/internal/ui/components"
	"github.com/tutelearn/tute/internal/ui/layout"
	"github.com/tutelearn/tute/internal/ui/theme"
)

// homeStatsMsg carries the snapshot-derived stats shown on the home screen.
type homeStatsMsg struct {
	Balance   int
	Completed int
	Best      map[string]int
}

type homeErrMsg struct{ err error }

// HomeScreen is the topic picker and entry point of the application.
type HomeScreen struct {
	menu       components.Menu
	topics     []topic.Topic
	rewardsSvc *rewards.Service
	balance    int
	completed  int
	errMsg     string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.BalanceProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen listing the catalog's topics.
func New(catalog *topic.Catalog, rewardsSvc *rewards.Service, learnerID string) *HomeScreen {
	h := &HomeScreen{
		topics:     catalog.Topics(),
		rewardsSvc: rewardsSvc,
	}

	var items []components.MenuItem
	for _, t := range h.topics {
		t := t
		items = append(items, components.MenuItem{
			Label:  t.Title,
			Detail: topicDetail(t, 0, false),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					scr, err := sessionscreen.New(t, learnerID, rewardsSvc)
					if err != nil {
						return homeErrMsg{err}
					}
					return router.PushScreenMsg{Screen: scr}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{Label: "History", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(rewardsSvc, catalog)}
			}
		}},
		components.MenuItem{Label: "Exit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	h.menu = components.NewMenu(items)
	return h
}

// Init loads learner stats. It runs again each time the stack unwinds back
// here, so the balance and best scores stay fresh.
func (h *HomeScreen) Init() tea.Cmd {
	return func() tea.Msg {
		snap, err := h.rewardsSvc.LatestSnapshot(context.Background())
		if err != nil || snap == nil {
			return homeStatsMsg{}
		}
		return homeStatsMsg{
			Balance:   snap.Data.TutePointBalance,
			Completed: snap.Data.SessionsCompleted,
			Best:      snap.Data.TopicsCompleted,
		}
	}
}

func (h *HomeScreen) Title() string {
	return "Topics"
}

// TutePointBalance reports the balance shown in the header.
func (h *HomeScreen) TutePointBalance() int {
	return h.balance
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case homeStatsMsg:
		h.balance = msg.Balance
		h.completed = msg.Completed
		for i, t := range h.topics {
			pct, done := msg.Best[t.ID]
			h.menu.Items[i].Detail = topicDetail(t, pct, done)
		}
		return h, nil

	case homeErrMsg:
		h.errMsg = msg.err.Error()
		return h, nil
	}

	if h.errMsg != "" {
		if _, ok := msg.(tea.KeyMsg); ok {
			h.errMsg = ""
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	if h.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Could not open topic: %s\n\n  Press any key.", h.errMsg))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("What do you want to learn today?"))
	b.WriteString("\n")

	stats := fmt.Sprintf("%d topics · %d sessions completed · ◆ %d TUTE",
		len(h.topics), h.completed, h.balance)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(stats))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))
	return b.String()
}

func topicDetail(t topic.Topic, bestPct int, done bool) string {
	detail := fmt.Sprintf("%s · %d min", t.Difficulty.DisplayName(), t.EstimatedTime)
	if done {
		detail += fmt.Sprintf(" · best %d%%", bestPct)
	}
	return detail
}
