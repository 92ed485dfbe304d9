package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/seonho-dev/tutorgraph/internal/store"
)

// LoggingProvider is a decorator that records every LLM request as an event.
type LoggingProvider struct {
	inner     Provider
	eventRepo store.EventRepo
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, eventRepo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.ResponseBody = string(resp.Content)
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	l.append(ctx, data)
	return resp, err
}

// GenerateStream wraps the stream so the event is recorded once the
// stream ends (or fails), with the accumulated response text.
func (l *LoggingProvider) GenerateStream(ctx context.Context, req Request) (Stream, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	stream, err := l.inner.GenerateStream(ctx, req)
	if err != nil {
		l.append(ctx, store.LLMRequestEventData{
			Provider:     l.inner.ModelID(),
			Model:        l.inner.ModelID(),
			Purpose:      purpose,
			LatencyMs:    time.Since(start).Milliseconds(),
			Success:      false,
			RequestBody:  serializeRequest(req),
			ErrorMessage: err.Error(),
		})
		return nil, err
	}

	return &loggedStream{
		inner:   stream,
		logger:  l,
		ctx:     ctx,
		start:   start,
		purpose: purpose,
		req:     req,
	}, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

func (l *LoggingProvider) append(ctx context.Context, data store.LLMRequestEventData) {
	// Log the event but don't fail the request if logging fails.
	if err := l.eventRepo.AppendLLMRequest(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", err)
	}
}

// loggedStream accumulates chunks and records a single event at stream end.
type loggedStream struct {
	inner   Stream
	logger  *LoggingProvider
	ctx     context.Context
	start   time.Time
	purpose string
	req     Request
	buf     strings.Builder
	logged  bool
}

func (s *loggedStream) Recv() (string, error) {
	chunk, err := s.inner.Recv()
	if err == nil {
		s.buf.WriteString(chunk)
		return chunk, nil
	}

	if !s.logged {
		s.logged = true
		data := store.LLMRequestEventData{
			Provider:     s.logger.inner.ModelID(),
			Model:        s.logger.inner.ModelID(),
			Purpose:      s.purpose,
			LatencyMs:    time.Since(s.start).Milliseconds(),
			Success:      err == io.EOF,
			RequestBody:  serializeRequest(s.req),
			ResponseBody: s.buf.String(),
		}
		if err != io.EOF {
			data.ErrorMessage = err.Error()
		}
		s.logger.append(s.ctx, data)
	}

	return "", err
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		b.WriteString(fmt.Sprintf("[%s]\n", m.Role))
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.Schema != nil {
		schemaDef, err := json.Marshal(req.Schema.Definition)
		if err == nil {
			b.WriteString(fmt.Sprintf("[schema: %s]\n", req.Schema.Name))
			b.WriteString(string(schemaDef))
			b.WriteString("\n")
		}
	}

	return b.String()
}
