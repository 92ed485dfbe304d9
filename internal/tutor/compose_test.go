package tutor

import (
	"io"
	"testing"

	"github.com/seonho-dev/tutorgraph/internal/llm"
)

func TestReplyStreamOrder(t *testing.T) {
	r := NewReply("prefix. ", llm.NewTextStream("one ", "two"), " suffix.")

	got, err := r.Collect()
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	want := "prefix. one two suffix."
	if got != want {
		t.Errorf("collected = %q, want %q", got, want)
	}
	if r.Transcript() != want {
		t.Errorf("transcript = %q, want %q", r.Transcript(), want)
	}
}

func TestReplySuffixAlwaysAppended(t *testing.T) {
	// Even when the body already ends with the suffix text, it is
	// appended again: composition is a contract, not content sniffing.
	r := NewReply("", llm.NewTextStream("done. more?"), " more?")
	got, err := r.Collect()
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if got != "done. more? more?" {
		t.Errorf("collected = %q", got)
	}
}

func TestTextReply(t *testing.T) {
	r := TextReply("hello")
	got, err := r.Collect()
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if got != "hello" {
		t.Errorf("collected = %q", got)
	}
}

func TestReplyEmptyParts(t *testing.T) {
	r := NewReply("", nil, "")
	s := r.Stream()
	if _, err := s.Recv(); err != io.EOF {
		t.Fatalf("expected immediate EOF, got %v", err)
	}
}

func TestReplyStreamSingleConsumption(t *testing.T) {
	r := NewReply("a", llm.NewTextStream("b"), "c")

	var chunks []string
	s := r.Stream()
	for {
		chunk, err := s.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("recv: %v", err)
		}
		chunks = append(chunks, chunk)
	}
	if len(chunks) != 3 {
		t.Errorf("chunks = %v, want 3 parts", chunks)
	}

	// Re-requesting the stream returns the same drained stream.
	if _, err := r.Stream().Recv(); err != io.EOF {
		t.Errorf("expected EOF on drained stream, got %v", err)
	}
}
