package chat

import (
	"encoding/json"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seonho-dev/tutorgraph/internal/kgraph"
	"github.com/seonho-dev/tutorgraph/internal/llm"
	"github.com/seonho-dev/tutorgraph/internal/profile"
	"github.com/seonho-dev/tutorgraph/internal/tutor"
)

func newTestScreen(t *testing.T, responses ...llm.MockResponse) *ChatScreen {
	t.Helper()
	g := kgraph.NewMemoryGraph()
	kgraph.Seed(g)
	engine, err := tutor.NewEngine(tutor.Options{
		Provider: llm.NewMockProvider(responses...),
		Graph:    g,
		Profile:  profile.New("test"),
	})
	require.NoError(t, err)
	return New(engine, nil)
}

// drainTurn feeds a completed turn through Update until the stream is
// exhausted, returning the final command.
func drainTurn(t *testing.T, s *ChatScreen, first tea.Msg) tea.Cmd {
	t.Helper()
	msg := first
	for i := 0; i < 100; i++ {
		var cmd tea.Cmd
		s, cmd = s.Update(msg)
		if cmd == nil {
			return nil
		}
		msg = cmd()
		if _, done := msg.(streamDoneMsg); done {
			_, cmd = s.Update(msg)
			return cmd
		}
	}
	t.Fatal("stream did not terminate")
	return nil
}

func TestChatStartsWithWelcome(t *testing.T) {
	s := newTestScreen(t)

	require.Len(t, s.transcript, 1)
	assert.Equal(t, roleTutor, s.transcript[0].role)
	assert.Contains(t, s.transcript[0].text, "안녕하세요")
	assert.Equal(t, "idle", s.Mode())
}

func TestChatTurnStreamsIntoTranscript(t *testing.T) {
	s := newTestScreen(t, llm.MockResponse{
		Content: json.RawMessage(`{"task":"greeting","topic":"none"}`),
	})

	s.transcript = append(s.transcript, entry{role: roleLearner, text: "안녕하세요"})
	s.busy = true
	msg := s.runTurn("안녕하세요")()

	cmd := drainTurn(t, s, msg)
	assert.Nil(t, cmd)

	require.Len(t, s.transcript, 3)
	last := s.transcript[len(s.transcript)-1]
	assert.Equal(t, roleTutor, last.role)
	assert.Contains(t, last.text, "수학 개념에 대해 질문해주시면")
	assert.False(t, s.busy)
}

func TestChatExitQuitsAfterFarewell(t *testing.T) {
	s := newTestScreen(t)

	s.exiting = true
	s.busy = true
	msg := s.runTurn("종료")()

	cmd := drainTurn(t, s, msg)
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)

	last := s.transcript[len(s.transcript)-1]
	assert.Contains(t, last.text, "다음에 또 만나요")
}

func TestChatStreamFailureKeepsPartialReply(t *testing.T) {
	s := newTestScreen(t)

	s.transcript = append(s.transcript, entry{role: roleTutor, text: "부분 응답"})
	s.busy = true
	var cmd tea.Cmd
	s, cmd = s.Update(streamFailedMsg{Err: assert.AnError})
	assert.Nil(t, cmd)

	last := s.transcript[len(s.transcript)-1]
	assert.Contains(t, last.text, "부분 응답")
	assert.Contains(t, last.text, "끊겼어요")
	assert.False(t, s.busy)
}
