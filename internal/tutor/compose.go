package tutor

import (
	"io"

	"github.com/seonho-dev/tutorgraph/internal/llm"
)

// Reply is one turn's output: an optional static prefix, an optional
// streamed body, and an optional static suffix, delivered in that order.
// The suffix is always appended after the body completes; composition is
// an explicit contract, never content sniffing.
type Reply struct {
	prefix string
	body   llm.Stream
	suffix string

	tee *llm.TeeStream
}

// NewReply builds a reply from its three parts. Any part may be empty/nil.
func NewReply(prefix string, body llm.Stream, suffix string) *Reply {
	return &Reply{prefix: prefix, body: body, suffix: suffix}
}

// TextReply builds a reply with only static text.
func TextReply(text string) *Reply {
	return &Reply{prefix: text}
}

// Stream returns the reply as a single finite chunk stream:
// prefix, then body chunks, then suffix. Single consumption.
func (r *Reply) Stream() llm.Stream {
	if r.tee == nil {
		r.tee = llm.Tee(&replyStream{reply: r})
	}
	return r.tee
}

// Transcript returns the full reply text accumulated so far. Complete
// once the stream has been drained.
func (r *Reply) Transcript() string {
	if r.tee == nil {
		return ""
	}
	return r.tee.Transcript()
}

// Collect drains the reply and returns its full text.
func (r *Reply) Collect() (string, error) {
	return llm.Collect(r.Stream())
}

type replyStream struct {
	reply *Reply
	stage int // 0 = prefix, 1 = body, 2 = suffix, 3 = done
}

func (s *replyStream) Recv() (string, error) {
	for {
		switch s.stage {
		case 0:
			s.stage = 1
			if s.reply.prefix != "" {
				return s.reply.prefix, nil
			}
		case 1:
			if s.reply.body == nil {
				s.stage = 2
				continue
			}
			chunk, err := s.reply.body.Recv()
			if err == io.EOF {
				s.stage = 2
				continue
			}
			if err != nil {
				return "", err
			}
			return chunk, nil
		case 2:
			s.stage = 3
			if s.reply.suffix != "" {
				return s.reply.suffix, nil
			}
		default:
			return "", io.EOF
		}
	}
}
