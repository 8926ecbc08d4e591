package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tutelearn/tute/internal/ui/theme"
)

// ChoiceList is a single-selection option list. It only tracks the cursor
// and the chosen index; grading happens elsewhere.
type ChoiceList struct {
	Options []string
	Cursor  int
	Chosen  int // -1 until a choice is made
}

// NewChoiceList creates a choice list with no selection.
func NewChoiceList(options []string) ChoiceList {
	return ChoiceList{Options: options, Chosen: -1}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and selection.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "enter", " ":
		c.Chosen = c.Cursor
	}

	return c, nil
}

// Select marks the option at index as chosen, moving the cursor with it.
func (c *ChoiceList) Select(index int) {
	if index >= 0 && index < len(c.Options) {
		c.Cursor = index
		c.Chosen = index
	}
}

// View renders the option list.
func (c ChoiceList) View() string {
	var s string
	for i, opt := range c.Options {
		marker := "( )"
		if i == c.Chosen {
			marker = "(•)"
		}
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s %s", prefix, marker, opt)

		switch {
		case i == c.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case i == c.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
