package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tutelearn/tute/internal/grading"
	"github.com/tutelearn/tute/internal/rewards"
	"github.com/tutelearn/tute/internal/router"
	"github.com/tutelearn/tute/internal/screen"
	"github.com/tutelearn/tute/internal/scoring"
	sess "github.com/tutelearn/tute/internal/session"
	"github.com/tutelearn/tute/internal/topic"
	"github.com/tutelearn/tute/internal/ui/layout"
	"github.com/tutelearn/tute/internal/ui/theme"
)

// SummaryScreen displays the graded outcome of a completed session.
type SummaryScreen struct {
	record    sess.CompletionRecord
	award     *rewards.Award
	questions []topic.Question
	answers   []*grading.Answer
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for a finished session.
func New(record sess.CompletionRecord, award *rewards.Award, questions []topic.Question, answers []*grading.Answer) *SummaryScreen {
	return &SummaryScreen{
		record:    record,
		award:     award,
		questions: questions,
		answers:   answers,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to topics"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	rec := s.record
	var b strings.Builder

	headline := "Topic complete!"
	headlineColor := theme.Primary
	if !rec.Passed {
		headline = "Topic finished"
		headlineColor = theme.Accent
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(headlineColor).
		Bold(true).
		Render(headline))
	b.WriteString("\n\n")

	duration := rec.CompletedAt.Sub(rec.StartedAt)
	mins := int(duration.Minutes())
	secs := int(duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Time: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	verdict := lipgloss.NewStyle().Foreground(theme.Success).Render("passed")
	if !rec.Passed {
		verdict = lipgloss.NewStyle().Foreground(theme.Error).Render("below the pass mark")
	}
	statsLine := fmt.Sprintf("Score: %d/%d        %d%%        %s",
		rec.Score, rec.TotalQuestions, rec.Percentage, verdict)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	// Point breakdown.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("TUTE points")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	correctPts := rec.Score * scoring.PointsPerCorrect
	videoPts := rec.TutePointsEarned - scoring.BaseCompletionPoints - correctPts
	rows := []string{
		fmt.Sprintf("  Completing the topic       +%d", scoring.BaseCompletionPoints),
		fmt.Sprintf("  Correct answers (%d)        +%d", rec.Score, correctPts),
	}
	if videoPts > 0 {
		rows = append(rows, fmt.Sprintf("  Watching the videos        +%d", videoPts))
	}
	for _, row := range rows {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(row)))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("  Earned                     ◆ %d TUTE", rec.TutePointsEarned))))
	b.WriteString("\n")
	if s.award != nil {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("Credited to your balance.")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Answer review.
	if len(s.questions) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Answers")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for i, q := range s.questions {
			var answer *grading.Answer
			if i < len(s.answers) {
				answer = s.answers[i]
			}

			mark := lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
			if grading.IsCorrect(q, answer) {
				mark = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
			}

			given := answerText(q, answer)
			if given == "" {
				given = lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("no answer")
			}

			line := fmt.Sprintf("  %s %d. %s", mark, i+1, q.Prompt)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
			b.WriteString("\n")
			detail := fmt.Sprintf("       yours: %s   correct: %s", given, correctText(q))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
			b.WriteString("\n")
			if !grading.IsCorrect(q, answer) && q.Explanation != "" {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
						Render("       "+q.Explanation)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

// answerText renders the learner's answer for review.
func answerText(q topic.Question, a *grading.Answer) string {
	if a == nil {
		return ""
	}
	if q.Type == topic.QuestionText {
		return a.Text
	}
	return optionText(q, a.Indices)
}

// correctText renders the canonical answer for review.
func correctText(q topic.Question) string {
	if q.Type == topic.QuestionText {
		return q.CorrectText
	}
	return optionText(q, q.CorrectIndices)
}

func optionText(q topic.Question, indices []int) string {
	var parts []string
	for _, i := range indices {
		if i >= 0 && i < len(q.Options) {
			parts = append(parts, q.Options[i])
		}
	}
	return strings.Join(parts, ", ")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
