package chat

import (
	"time"

	"github.com/seonho-dev/tutorgraph/internal/tutor"
)

// turnReadyMsg is sent when the engine finished processing a turn and the
// reply stream is ready to consume.
type turnReadyMsg struct {
	Reply *tutor.Reply
	Next  *tutor.SessionState
}

// streamChunkMsg carries one chunk of the tutor's streamed reply.
type streamChunkMsg struct {
	Chunk string
}

// streamDoneMsg is sent when the reply stream is exhausted.
type streamDoneMsg struct{}

// streamFailedMsg is sent when reading the reply stream fails mid-way.
type streamFailedMsg struct {
	Err error
}

// spinnerTickMsg animates the thinking indicator while a turn is running.
type spinnerTickMsg time.Time
