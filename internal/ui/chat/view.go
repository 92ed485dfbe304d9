package chat

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/seonho-dev/tutorgraph/internal/ui/theme"
)

var spinnerFrames = []string{"   ", ".  ", ".. ", "..."}

// View renders the transcript tail above the input line, fitted to the
// given content area.
func (s *ChatScreen) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	inputLine := lipgloss.NewStyle().
		Width(width).
		Render("❯ " + s.input.View())

	bottom := inputLine
	if path := s.pathLine(width); path != "" {
		bottom = path + "\n" + inputLine
	}
	bottomHeight := lipgloss.Height(bottom) + 1 // blank separator line

	transcriptHeight := height - bottomHeight
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}

	transcript := s.renderTranscript(width)
	lines := strings.Split(transcript, "\n")
	if len(lines) > transcriptHeight {
		lines = lines[len(lines)-transcriptHeight:]
	}

	return strings.Join(lines, "\n") + "\n\n" + bottom
}

// pathLine summarizes the learning-path snapshot around the current goal
// concept: the goal first, then every connected concept.
func (s *ChatScreen) pathLine(width int) string {
	p := s.state.Path
	if p == nil || len(p.Nodes) <= 1 {
		return ""
	}
	names := make([]string, 0, len(p.Nodes)-1)
	for _, n := range p.Nodes[1:] {
		names = append(names, n.Label)
	}
	return theme.Hint.Width(width).
		Render("🔗 " + p.Nodes[0].Label + " 연결 개념: " + strings.Join(names, ", "))
}

func (s *ChatScreen) renderTranscript(width int) string {
	textWidth := width - 2
	if textWidth < 10 {
		textWidth = 10
	}

	var b strings.Builder
	for i, e := range s.transcript {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch e.role {
		case roleLearner:
			b.WriteString(theme.LearnerLabel.Render("나"))
			b.WriteString("\n")
			b.WriteString(theme.LearnerText.Width(textWidth).Render(e.text))
		case roleTutor:
			b.WriteString(theme.TutorLabel.Render("튜터"))
			b.WriteString("\n")
			text := e.text
			if text == "" && s.busy {
				text = theme.Hint.Render("생각 중" + spinnerFrames[s.spinnerFrame%len(spinnerFrames)])
			}
			b.WriteString(theme.TutorText.Width(textWidth).Render(text))
		}
	}
	return b.String()
}
