package llm

import (
	"io"
	"strings"
)

// Stream is a finite, single-consumption sequence of text chunks.
// Recv returns io.EOF after the final chunk. A Stream is not safe for
// concurrent use and must not be consumed twice.
type Stream interface {
	Recv() (string, error)
}

// textStream yields a fixed sequence of chunks. Used for static responses
// and by the mock provider.
type textStream struct {
	chunks []string
	pos    int
}

// NewTextStream returns a Stream over the given chunks.
func NewTextStream(chunks ...string) Stream {
	return &textStream{chunks: chunks}
}

func (s *textStream) Recv() (string, error) {
	if s.pos >= len(s.chunks) {
		return "", io.EOF
	}
	c := s.chunks[s.pos]
	s.pos++
	return c, nil
}

// Collect drains a stream and returns the concatenated text.
// A nil stream collects to "".
func Collect(s Stream) (string, error) {
	if s == nil {
		return "", nil
	}
	var b strings.Builder
	for {
		chunk, err := s.Recv()
		if err == io.EOF {
			return b.String(), nil
		}
		if err != nil {
			return b.String(), err
		}
		b.WriteString(chunk)
	}
}

// TeeStream forwards chunks from an inner stream while accumulating the
// full text, so a stream can be consumed chunk-by-chunk and still yield a
// transcript afterwards without re-running generation.
type TeeStream struct {
	inner Stream
	buf   strings.Builder
	done  bool
}

// Tee wraps a stream with transcript accumulation.
func Tee(inner Stream) *TeeStream {
	return &TeeStream{inner: inner}
}

func (t *TeeStream) Recv() (string, error) {
	chunk, err := t.inner.Recv()
	if err == io.EOF {
		t.done = true
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	t.buf.WriteString(chunk)
	return chunk, nil
}

// Transcript returns the text accumulated so far. It is complete once
// Recv has returned io.EOF.
func (t *TeeStream) Transcript() string {
	return t.buf.String()
}

// Done reports whether the stream has been fully consumed.
func (t *TeeStream) Done() bool {
	return t.done
}
