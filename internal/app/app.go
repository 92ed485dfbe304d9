package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/seonho-dev/tutorgraph/internal/logging"
	"github.com/seonho-dev/tutorgraph/internal/tutor"
	"github.com/seonho-dev/tutorgraph/internal/ui/chat"
	"github.com/seonho-dev/tutorgraph/internal/ui/layout"
)

// Options wires the application's dependencies.
type Options struct {
	Engine    *tutor.Engine
	LearnerID string
	Logger    *logging.Logger
}

// AppModel is the root Bubble Tea model: a single chat screen framed by
// the header and footer.
type AppModel struct {
	chat    *chat.ChatScreen
	learner string
	width   int
	height  int
}

func newAppModel(opts Options) AppModel {
	return AppModel{
		chat:    chat.New(opts.Engine, opts.Logger),
		learner: opts.LearnerID,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.chat.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(m.chat.Mode(), m.learner, m.width)
	footer := layout.RenderFooter([]layout.KeyHint{
		{Key: "Enter", Description: "전송"},
		{Key: "Ctrl+C", Description: "종료"},
	}, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.chat.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
