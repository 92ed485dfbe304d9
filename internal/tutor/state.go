// Package tutor implements the prerequisite-aware tutoring dialogue engine.
// Each turn runs through an intent router, then a mode-specific handler that
// may consult the knowledge graph and the LLM, producing a composed reply
// and the next session state.
package tutor

import (
	"fmt"

	"github.com/seonho-dev/tutorgraph/internal/kgraph"
)

// Mode is the dialogue state between turns.
type Mode int

const (
	// ModeIdle waits for a fresh question.
	ModeIdle Mode = iota
	// ModeWaitingDiagnostic waits for the learner's answer to a
	// prerequisite diagnostic question.
	ModeWaitingDiagnostic
	// ModeWaitingContinuation waits for the learner's answer to a
	// "shall I explain X?" or "do you know X?" question.
	ModeWaitingContinuation
	// ModeWaitingProblemAnswer waits for the learner's answer to a
	// generated practice problem.
	ModeWaitingProblemAnswer
	// ModePostExplanation follows a completed explanation, open to
	// follow-up questions.
	ModePostExplanation
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeWaitingDiagnostic:
		return "waiting_diagnostic"
	case ModeWaitingContinuation:
		return "waiting_continuation"
	case ModeWaitingProblemAnswer:
		return "waiting_problem_answer"
	case ModePostExplanation:
		return "post_explanation"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// questionType records which phrasing the tutor last used when asking
// about the next queued concept, so the continuation classifier can
// interpret the learner's answer correctly.
type questionType string

const (
	questionNone          questionType = ""
	questionDoYouKnow     questionType = "do_you_know"
	questionShallIExplain questionType = "shall_i_explain"
)

// Problem is a generated practice problem held while waiting for the
// learner's answer. Answer and KeyConcept are never shown until grading.
type Problem struct {
	Text       string
	Answer     string
	KeyConcept string
}

// SessionState is the transient dialogue state for one conversation.
// It is copied on turn entry; durable learning memory lives in the
// profile, not here.
type SessionState struct {
	Mode Mode

	// PrimaryGoal is the concept the learner originally asked about,
	// driving the current tutoring flow.
	PrimaryGoal string

	// Target is the goal concept's graph record, held while a diagnostic
	// or continuation flow is active.
	Target *kgraph.Concept

	// Prerequisites are the depth-1 prerequisites under diagnosis.
	Prerequisites []kgraph.Prerequisite

	// Queue is the ordered list of concepts still to explain.
	Queue []string

	// Unmentioned are queued concepts the learner's diagnostic answer
	// did not address; they get "do you know X?" phrasing.
	Unmentioned []string

	// LastQuestion is the phrasing of the pending continuation question.
	LastQuestion questionType

	// LastExplained is the most recently explained concept.
	LastExplained string

	// PendingInput, when set, is consumed as the next turn's input before
	// reading anything from the learner.
	PendingInput string

	// CurrentProblem is the outstanding practice problem, if any.
	CurrentProblem *Problem

	// Path is the learning-path snapshot around the current goal concept.
	Path *kgraph.LearningPath
}

// NewSessionState returns the initial IDLE state.
func NewSessionState() *SessionState {
	return &SessionState{Mode: ModeIdle}
}

// clone returns a deep copy so a turn never mutates its input state.
func (s *SessionState) clone() *SessionState {
	cp := *s
	cp.Queue = append([]string(nil), s.Queue...)
	cp.Unmentioned = append([]string(nil), s.Unmentioned...)
	cp.Prerequisites = append([]kgraph.Prerequisite(nil), s.Prerequisites...)
	if s.Target != nil {
		t := *s.Target
		cp.Target = &t
	}
	if s.CurrentProblem != nil {
		p := *s.CurrentProblem
		cp.CurrentProblem = &p
	}
	if s.Path != nil {
		path := *s.Path
		path.Nodes = append([]kgraph.PathNode(nil), s.Path.Nodes...)
		path.Edges = append([]kgraph.PathEdge(nil), s.Path.Edges...)
		cp.Path = &path
	}
	return &cp
}

// resetFlow clears the transient dialogue flow back to IDLE. Durable
// learning memory is untouched; it lives in the profile.
func (s *SessionState) resetFlow() {
	s.Mode = ModeIdle
	s.PrimaryGoal = ""
	s.Target = nil
	s.Prerequisites = nil
	s.Queue = nil
	s.Unmentioned = nil
	s.LastQuestion = questionNone
	s.PendingInput = ""
	s.CurrentProblem = nil
	s.Path = nil
}

// CheckInvariants verifies the structural invariants that must hold
// between turns. Used by tests after every transition.
func (s *SessionState) CheckInvariants() error {
	switch s.Mode {
	case ModeIdle, ModeWaitingDiagnostic, ModeWaitingContinuation,
		ModeWaitingProblemAnswer, ModePostExplanation:
	default:
		return fmt.Errorf("invalid mode %d", int(s.Mode))
	}

	if s.Mode == ModeWaitingProblemAnswer && s.CurrentProblem == nil {
		return fmt.Errorf("waiting for a problem answer with no problem set")
	}
	if s.Mode != ModeWaitingProblemAnswer && s.CurrentProblem != nil {
		return fmt.Errorf("stale problem outside waiting_problem_answer")
	}

	if s.Mode == ModeWaitingDiagnostic && s.Target == nil {
		return fmt.Errorf("waiting_diagnostic without a target concept")
	}

	seen := make(map[string]bool)
	for _, name := range s.Queue {
		if seen[name] {
			return fmt.Errorf("duplicate %q in queue", name)
		}
		seen[name] = true
	}
	return nil
}
