package chat

import (
	"context"
	"io"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/seonho-dev/tutorgraph/internal/llm"
	"github.com/seonho-dev/tutorgraph/internal/logging"
	"github.com/seonho-dev/tutorgraph/internal/tutor"
	"github.com/seonho-dev/tutorgraph/internal/ui/components"
)

type role int

const (
	roleLearner role = iota
	roleTutor
)

// entry is one transcript line pair: who spoke and what they said.
type entry struct {
	role role
	text string
}

const welcomeText = "안녕하세요! 수학 개념이 궁금하면 편하게 물어보세요.\n('종료'라고 입력하면 대화를 마칩니다.)"

// ChatScreen is the tutoring chat: a scrolling transcript above a text
// input, with replies streamed chunk by chunk.
type ChatScreen struct {
	engine *tutor.Engine
	state  *tutor.SessionState
	log    *logging.Logger

	input      components.TextInput
	transcript []entry
	stream     llm.Stream

	busy         bool
	exiting      bool
	spinnerFrame int
}

// New creates the chat screen around a ready engine.
func New(engine *tutor.Engine, log *logging.Logger) *ChatScreen {
	if log == nil {
		log = logging.Nop()
	}
	return &ChatScreen{
		engine:     engine,
		state:      tutor.NewSessionState(),
		log:        log,
		input:      components.NewTextInput("궁금한 수학 개념을 물어보세요...", 200),
		transcript: []entry{{role: roleTutor, text: welcomeText}},
	}
}

func (s *ChatScreen) Init() tea.Cmd {
	return s.input.Init()
}

// Mode returns the dialogue mode label for the header.
func (s *ChatScreen) Mode() string {
	return s.state.Mode.String()
}

func (s *ChatScreen) Update(msg tea.Msg) (*ChatScreen, tea.Cmd) {
	switch msg := msg.(type) {
	case turnReadyMsg:
		s.state = msg.Next
		s.stream = msg.Reply.Stream()
		s.transcript = append(s.transcript, entry{role: roleTutor})
		return s, readStream(s.stream)

	case streamChunkMsg:
		s.appendToLastEntry(msg.Chunk)
		return s, readStream(s.stream)

	case streamDoneMsg:
		return s, s.finishTurn()

	case streamFailedMsg:
		s.log.Warn("reply stream failed", "error", msg.Err)
		s.appendToLastEntry("\n(응답이 중간에 끊겼어요.)")
		return s, s.finishTurn()

	case spinnerTickMsg:
		if !s.busy {
			return s, nil
		}
		s.spinnerFrame++
		return s, spinnerTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if !s.busy {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ChatScreen) handleKey(msg tea.KeyMsg) (*ChatScreen, tea.Cmd) {
	if s.busy {
		return s, nil
	}

	if msg.String() == "enter" {
		text := strings.TrimSpace(s.input.Value())
		if text == "" {
			return s, nil
		}
		s.exiting = tutor.IsExitCommand(text)
		s.transcript = append(s.transcript, entry{role: roleLearner, text: text})
		s.input.Reset()
		s.busy = true
		s.spinnerFrame = 0
		return s, tea.Batch(s.runTurn(text), spinnerTick())
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// runTurn processes the turn off the UI loop; the engine blocks on LLM
// and graph calls.
func (s *ChatScreen) runTurn(input string) tea.Cmd {
	engine, state := s.engine, s.state
	return func() tea.Msg {
		reply, next := engine.ProcessTurn(context.Background(), input, state)
		return turnReadyMsg{Reply: reply, Next: next}
	}
}

func (s *ChatScreen) finishTurn() tea.Cmd {
	s.busy = false
	s.stream = nil
	if s.exiting {
		return tea.Quit
	}
	return nil
}

func (s *ChatScreen) appendToLastEntry(text string) {
	if len(s.transcript) == 0 {
		return
	}
	s.transcript[len(s.transcript)-1].text += text
}

// readStream pulls one chunk from the reply stream.
func readStream(stream llm.Stream) tea.Cmd {
	return func() tea.Msg {
		chunk, err := stream.Recv()
		if err == io.EOF {
			return streamDoneMsg{}
		}
		if err != nil {
			return streamFailedMsg{Err: err}
		}
		return streamChunkMsg{Chunk: chunk}
	}
}

// spinnerTick animates the thinking indicator.
func spinnerTick() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
