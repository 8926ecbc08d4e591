package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/tutelearn/tute/internal/session"
	"github.com/tutelearn/tute/internal/topic"
	"github.com/tutelearn/tute/internal/ui/components"
	"github.com/tutelearn/tute/internal/ui/theme"
)

const sidebarWidth = 28

func (s *TopicScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.quitAsked {
		return renderQuitConfirm(width)
	}
	if s.saving {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Saving your results...")
	}

	switch s.snap.Phase {
	case sess.PhaseLearning:
		return s.renderLearning(width, height)
	case sess.PhaseQuiz:
		return s.renderQuiz(width, height)
	default:
		return ""
	}
}

// renderLearning shows the item list on the left and the current content
// item on the right.
func (s *TopicScreen) renderLearning(width, height int) string {
	mainWidth := width - sidebarWidth - 3
	if mainWidth < 20 {
		mainWidth = 20
	}

	sidebar := s.renderSidebar()
	main := s.renderCurrentItem(mainWidth)

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(sidebarWidth).Render(sidebar),
		lipgloss.NewStyle().Foreground(theme.Border).Render(" │ "),
		lipgloss.NewStyle().Width(mainWidth).Render(main),
	)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(row)

	if s.gateMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(s.gateMsg))
	}
	return b.String()
}

// renderSidebar lists the topic's content items with completion markers.
func (s *TopicScreen) renderSidebar() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Contents (%d/%d)", s.snap.CompletedCount(), len(s.snap.Items))))
	b.WriteString("\n\n")

	for i, item := range s.snap.Items {
		marker := "○"
		if s.snap.Completed[item.ID] {
			marker = "✓"
		}
		line := fmt.Sprintf(" %s %s", marker, item.DisplayTitle())

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if s.snap.Completed[item.ID] {
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}
		if i == s.snap.ContentIndex {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			line = "▸" + line[1:]
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// renderCurrentItem renders the main pane for the item under the cursor.
func (s *TopicScreen) renderCurrentItem(width int) string {
	item, ok := s.snap.CurrentItem()
	if !ok {
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("This topic has no learning content. Press Enter to start the quiz.")
	}

	switch item.Kind {
	case topic.ContentText:
		return s.renderTextItem(item, width)
	case topic.ContentVideo:
		return s.renderVideoItem(item, width)
	case topic.ContentQuiz:
		return s.renderPracticeItem(item, width)
	default:
		return ""
	}
}

func (s *TopicScreen) renderTextItem(item topic.ContentItem, width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(item.Text.Title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Foreground(theme.Text).
		Render(item.Text.Body))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Press Enter when you're done reading."))
	return b.String()
}

func (s *TopicScreen) renderVideoItem(item topic.ContentItem, width int) string {
	v := item.Video
	watched := s.snap.WatchSeconds[item.ID]

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("▶ " + v.Title))
	b.WriteString("\n\n")
	if v.Description != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Foreground(theme.Text).
			Render(v.Description))
		b.WriteString("\n\n")
	}

	var pct float64
	if v.Duration > 0 {
		pct = float64(watched) / float64(v.Duration)
		if pct > 1 {
			pct = 1
		}
	} else {
		pct = 1
	}
	bar := components.NewProgressBar("Watched", pct, true, width-4)
	b.WriteString(bar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s / %s", formatSecs(watched), formatSecs(v.Duration))))

	b.WriteString("\n\n")
	if s.paused {
		b.WriteString(theme.Hint.Render("Paused. Space to resume, Enter when finished."))
	} else {
		b.WriteString(theme.Hint.Render("Playing. Space to pause, Enter when finished."))
	}
	return b.String()
}

func (s *TopicScreen) renderPracticeItem(item topic.ContentItem, width int) string {
	q := item.Quiz.Question

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("Quick check"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n\n")

	if q.Type == topic.QuestionText {
		b.WriteString("Answer: " + s.practiceInput.View())
	} else {
		b.WriteString(s.practice.View())
	}
	b.WriteString("\n")

	if s.practiceChecked {
		if s.practiceCorrect {
			b.WriteString(theme.Correct.Render("Nice, that's right."))
		} else {
			b.WriteString(theme.Incorrect.Render("Not quite."))
		}
		if q.Explanation != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Foreground(theme.TextDim).
				Render(q.Explanation))
		}
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("This one doesn't count. Press Enter to move on."))
	} else {
		b.WriteString(theme.Hint.Render("Try it, or press Enter to skip ahead."))
	}
	return b.String()
}

// renderQuiz shows the current quiz question with its input component and
// an answered-questions tracker.
func (s *TopicScreen) renderQuiz(width, height int) string {
	var b strings.Builder

	total := len(s.snap.Questions)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Quiz  •  Question %d of %d", s.snap.QuestionIndex+1, total)))
	b.WriteString("\n")

	// Tracker: one dot per question.
	var dots []string
	for i := range s.snap.Questions {
		dot := "○"
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if s.snap.Answers[i] != nil {
			dot = "●"
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		if i == s.snap.QuestionIndex {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		dots = append(dots, style.Render(dot))
	}
	b.WriteString("  " + strings.Join(dots, " "))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	q, ok := s.snap.CurrentQuestion()
	if !ok {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No quiz questions for this topic. Press Enter to finish."))
		return b.String()
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n\n")

	var input string
	switch q.Type {
	case topic.QuestionSingle:
		input = s.choice.View()
	case topic.QuestionMultiple:
		input = s.checks.View() + "\n" +
			theme.Hint.Render("Space toggles, several answers may apply.")
	case topic.QuestionText:
		input = "Answer: " + s.input.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, input))

	b.WriteString("\n\n")
	hint := "Enter saves your answer and moves on."
	if s.snap.QuestionIndex == total-1 {
		hint = "Enter submits the quiz. Answers are graded at the end."
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(hint))

	return b.String()
}

// renderQuitConfirm renders the leave-topic confirmation.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Leave this topic?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Progress in this session will be lost."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))
	return b.String()
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func formatSecs(total int) string {
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
