package components

import (
	"fmt"
	"sort"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tutelearn/tute/internal/ui/theme"
)

// CheckList is a multiple-selection option list. Space toggles the option
// under the cursor; any subset may be checked.
type CheckList struct {
	Options []string
	Cursor  int
	checked map[int]bool
}

// NewCheckList creates a check list with nothing checked.
func NewCheckList(options []string) CheckList {
	return CheckList{Options: options, checked: make(map[int]bool)}
}

// Init returns nil.
func (c CheckList) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and toggling.
func (c CheckList) Update(msg tea.Msg) (CheckList, tea.Cmd) {
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
	case " ":
		c.checked[c.Cursor] = !c.checked[c.Cursor]
	}

	return c, nil
}

// SetChecked marks the given indices as checked, replacing any current
// selection.
func (c *CheckList) SetChecked(indices []int) {
	c.checked = make(map[int]bool)
	for _, i := range indices {
		if i >= 0 && i < len(c.Options) {
			c.checked[i] = true
		}
	}
}

// Checked returns the checked indices in ascending order.
func (c CheckList) Checked() []int {
	var out []int
	for i, on := range c.checked {
		if on {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}

// View renders the option list.
func (c CheckList) View() string {
	var s string
	for i, opt := range c.Options {
		marker := "[ ]"
		if c.checked[i] {
			marker = "[x]"
		}
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s %s", prefix, marker, opt)

		switch {
		case i == c.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case c.checked[i]:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
