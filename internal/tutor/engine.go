package tutor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/seonho-dev/tutorgraph/internal/kgraph"
	"github.com/seonho-dev/tutorgraph/internal/llm"
	"github.com/seonho-dev/tutorgraph/internal/logging"
	"github.com/seonho-dev/tutorgraph/internal/profile"
	"github.com/seonho-dev/tutorgraph/internal/store"
)

// Engine orchestrates tutoring turns: routing, graph lookups, LLM calls,
// state transitions and profile bookkeeping.
type Engine struct {
	provider  llm.Provider
	graph     kgraph.Graph
	profile   *profile.Profile
	profiles  store.ProfileRepo
	events    store.EventRepo
	sessionID string
	log       *logging.Logger
}

// Options wires the engine's collaborators. ProfileRepo and EventRepo may
// be nil; persistence is then skipped.
type Options struct {
	Provider    llm.Provider
	Graph       kgraph.Graph
	Profile     *profile.Profile
	ProfileRepo store.ProfileRepo
	EventRepo   store.EventRepo
	SessionID   string
	Logger      *logging.Logger
}

// NewEngine builds an engine. Provider, Graph and Profile are required.
func NewEngine(opts Options) (*Engine, error) {
	if opts.Provider == nil {
		return nil, errors.New("tutor: provider required")
	}
	if opts.Graph == nil {
		return nil, errors.New("tutor: graph required")
	}
	if opts.Profile == nil {
		return nil, errors.New("tutor: profile required")
	}
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}
	return &Engine{
		provider:  opts.Provider,
		graph:     opts.Graph,
		profile:   opts.Profile,
		profiles:  opts.ProfileRepo,
		events:    opts.EventRepo,
		sessionID: opts.SessionID,
		log:       log.With("component", "tutor"),
	}, nil
}

// Profile exposes the learner's study memory (for stats display).
func (e *Engine) Profile() *profile.Profile {
	return e.profile
}

const (
	fatalApologyText   = "죄송합니다. 튜터와 대화 중 오류가 발생했어요. 대화를 처음부터 다시 시작할게요."
	emptyInputText     = "(입력이 없습니다. 다시 말씀해주세요.)"
	commandIgnoredText = "(명령어 또는 코드 입력으로 보여 무시합니다. 수학 질문을 해주세요.)"
	farewellText       = "다음에 또 만나요!"
	noResponseText     = "죄송합니다. 응답을 생성하지 못했습니다."
)

// maxPendingHops bounds the requeue loop so a misbehaving classifier can
// never spin the engine.
const maxPendingHops = 3

// ProcessTurn runs one dialogue turn. The input state is never mutated;
// the returned state is the next turn's starting point. Rerouted inputs
// (via PendingInput) are resolved within the same call, their notice
// texts prepended to the final reply.
func (e *Engine) ProcessTurn(ctx context.Context, input string, state *SessionState) (reply *Reply, next *SessionState) {
	next = state.clone()
	modeBefore := next.Mode
	explainedBefore := next.LastExplained
	var task Task

	defer func() {
		if r := recover(); r != nil {
			e.log.Error("turn panicked", "panic", r)
			reply = TextReply(fatalApologyText)
			next = NewSessionState()
			e.reloadProfile(ctx)
		}

		e.saveProfile(ctx)
		explained := ""
		if next.LastExplained != explainedBefore {
			explained = next.LastExplained
		}
		e.appendTurnEvent(ctx, store.TurnEventData{
			LearnerID:        e.profile.LearnerID,
			SessionID:        e.sessionID,
			Task:             string(task),
			ModeBefore:       modeBefore.String(),
			ModeAfter:        next.Mode.String(),
			Input:            input,
			ExplainedConcept: explained,
		})
	}()

	if next.PendingInput != "" {
		input = next.PendingInput
		next.PendingInput = ""
	}

	var notices []string
	for hop := 0; ; hop++ {
		var t Task
		reply, t = e.handleTurn(ctx, input, next)
		task = t

		if next.PendingInput == "" || hop >= maxPendingHops {
			break
		}
		// The handler rerouted the turn. Its reply is a static notice;
		// keep it and process the requeued input immediately.
		notice, err := reply.Collect()
		if err == nil && notice != "" {
			notices = append(notices, notice)
		}
		input = next.PendingInput
		next.PendingInput = ""
	}

	if len(notices) > 0 {
		reply = prependNotices(notices, reply)
	}

	// Flow bookkeeping only survives while a diagnosis is in progress.
	if next.Mode != ModeWaitingDiagnostic && next.Mode != ModeWaitingContinuation {
		next.Target = nil
		next.Prerequisites = nil
	}
	return reply, next
}

func prependNotices(notices []string, r *Reply) *Reply {
	head := strings.Join(notices, "\n") + "\n\n"
	return NewReply(head+r.prefix, r.body, r.suffix)
}

// handleTurn routes and dispatches a single (possibly requeued) input.
func (e *Engine) handleTurn(ctx context.Context, input string, st *SessionState) (*Reply, Task) {
	input = strings.TrimSpace(input)
	if input == "" {
		return TextReply(emptyInputText), ""
	}
	if IsExitCommand(input) {
		st.resetFlow()
		return TextReply(farewellText), ""
	}
	if isSystemCommand(input) {
		return TextReply(commandIgnoredText), ""
	}

	task, topic := e.routeTurn(ctx, input, st)
	e.log.Debug("routed turn", "task", task, "topic", topic, "mode", st.Mode.String())

	switch task {
	case TaskGreeting:
		return TextReply(greetingText), task
	case TaskChitchat:
		body, err := e.chitchat(ctx, input)
		if err != nil {
			e.log.Warn("chitchat failed", "error", err)
			return TextReply(noResponseText), task
		}
		return NewReply("", body, ""), task
	case TaskAskProblem:
		return e.handleAskProblem(ctx, topic, st), task
	case TaskSolveProblem:
		return e.handleSolveProblem(ctx, input, st), task
	case TaskTutorFlow:
		return e.handleTutorFlow(ctx, input, st), task
	default:
		e.log.Warn("unknown router task", "task", task)
		st.resetFlow()
		return TextReply("죄송합니다. 요청을 이해하지 못했어요. 다시 말씀해주시겠어요?"), task
	}
}

// handleAskProblem generates a practice problem on the requested topic,
// falling back to the most recently explained concept.
func (e *Engine) handleAskProblem(ctx context.Context, topic string, st *SessionState) *Reply {
	concept := ""
	if topic != noTopic && topic != "" {
		concept = topic
	} else if st.LastExplained != "" {
		concept = st.LastExplained
	}
	if concept == "" {
		st.Mode = ModeIdle
		return TextReply("먼저 학습할 개념을 알려주세요! 어떤 개념에 대한 문제를 내드릴까요?")
	}

	prior := e.profile.ExplanationCount(concept)
	p, ok := e.generateProblem(ctx, concept, prior)
	if !ok {
		st.Mode = ModePostExplanation
		st.CurrentProblem = nil
		return TextReply(p.Text)
	}

	st.Mode = ModeWaitingProblemAnswer
	st.CurrentProblem = p
	return TextReply(p.Text + "\n\n답을 입력해주세요.")
}

// handleSolveProblem grades the learner's answer to the outstanding problem.
func (e *Engine) handleSolveProblem(ctx context.Context, input string, st *SessionState) *Reply {
	p := st.CurrentProblem
	st.CurrentProblem = nil
	if p == nil {
		e.log.Warn("problem answer received with no problem outstanding")
		st.Mode = ModeIdle
		return TextReply("어떤 문제에 대한 답인지 잘 모르겠어요. 다시 질문해주시겠어요?")
	}

	st.Mode = ModePostExplanation
	body, err := e.gradeAnswer(ctx, input, p)
	if err != nil {
		e.log.Warn("grading failed", "error", err)
		return TextReply(fmt.Sprintf("채점 중 오류가 발생했어요. 정답은 '%s'였어요. 더 궁금한 점이 있나요?", p.Answer))
	}
	return NewReply("", body, "")
}

// handleTutorFlow runs the concept-explanation state machine.
func (e *Engine) handleTutorFlow(ctx context.Context, input string, st *SessionState) *Reply {
	switch st.Mode {
	case ModePostExplanation:
		return e.handlePostExplanation(ctx, input, st)
	case ModeWaitingContinuation:
		return e.handleContinuation(ctx, input, st)
	case ModeWaitingDiagnostic:
		return e.handleDiagnostic(ctx, input, st)
	default:
		return e.handleNewQuestion(ctx, input, st)
	}
}

// handleNewQuestion starts a fresh tutoring flow from an IDLE question:
// extract the concept, resolve it in the graph, then either explain
// directly, open a diagnostic, or fall back to general knowledge.
func (e *Engine) handleNewQuestion(ctx context.Context, input string, st *SessionState) *Reply {
	concept := extractConcept(ctx, e.provider, input)
	if concept == "" {
		st.Mode = ModeIdle
		return TextReply("질문에서 수학 개념을 찾을 수 없습니다. 다른 질문이 있을까요?")
	}
	e.log.Debug("extracted concept", "concept", concept)

	info, err := e.graph.Lookup(ctx, concept)
	if err != nil {
		if errors.Is(err, kgraph.ErrNotFound) {
			e.recordMissingConcept(ctx, concept)
		} else {
			e.log.Warn("graph lookup failed", "concept", concept, "error", err)
		}
		return e.explainFromGeneralKnowledge(ctx, concept, st)
	}

	if path, err := e.graph.Path(ctx, concept); err != nil {
		e.log.Warn("learning path lookup failed", "concept", concept, "error", err)
	} else {
		st.Path = path
	}

	prereqs, err := e.graph.Prerequisites(ctx, concept, kgraph.DefaultPrereqDepth)
	if err != nil {
		e.log.Warn("prerequisite lookup failed", "concept", concept, "error", err)
		prereqs = nil
	}

	var toCheck []kgraph.Prerequisite
	for _, p := range kgraph.Immediate(prereqs) {
		if !e.profile.Knows(p.Name) {
			toCheck = append(toCheck, p)
		}
	}

	if len(toCheck) == 0 {
		return e.explainConcept(ctx, info, st,
			"\n\n💡 더 궁금한 것이 있나요?", ModePostExplanation)
	}

	body, err := e.diagnosticQuestion(ctx, concept, toCheck)
	if err != nil {
		e.log.Warn("diagnostic question failed", "concept", concept, "error", err)
		return e.explainConcept(ctx, info, st,
			"\n\n💡 더 궁금한 것이 있나요?", ModePostExplanation)
	}

	st.Mode = ModeWaitingDiagnostic
	st.PrimaryGoal = concept
	st.Target = info
	st.Prerequisites = toCheck
	st.Queue = nil
	st.Unmentioned = nil
	st.LastQuestion = questionNone
	return NewReply("", body, "")
}

// explainFromGeneralKnowledge streams the fallback explanation with its
// disclaimer prefix for a concept absent from the graph.
func (e *Engine) explainFromGeneralKnowledge(ctx context.Context, concept string, st *SessionState) *Reply {
	body, err := e.fallbackExplanation(ctx, concept)
	if err != nil {
		e.log.Warn("fallback explanation failed", "concept", concept, "error", err)
		st.Mode = ModeIdle
		return TextReply(noResponseText)
	}
	st.LastExplained = concept
	st.Mode = ModePostExplanation
	prefix := fmt.Sprintf("'%s'에 대해 제가 아는 선에서 설명해 드릴게요.\n\n", concept)
	return NewReply(prefix, body, "")
}

// explainConcept streams an explanation of info, updates the learning
// memory and moves to the given mode with the given suffix.
func (e *Engine) explainConcept(ctx context.Context, info *kgraph.Concept, st *SessionState, suffix string, mode Mode) *Reply {
	count := e.profile.ExplanationCount(info.Name)
	body, err := e.explanation(ctx, info, count)
	if err != nil {
		e.log.Warn("explanation failed", "concept", info.Name, "error", err)
		st.Mode = ModeIdle
		return TextReply(noResponseText)
	}
	e.profile.MarkExplained(info.Name)
	st.LastExplained = info.Name
	st.Mode = mode
	return NewReply("", body, suffix)
}

// handleDiagnostic consumes the learner's answer to the diagnostic
// question: assess understanding per prerequisite, build the explanation
// queue, explain its head, and queue a continuation question.
func (e *Engine) handleDiagnostic(ctx context.Context, input string, st *SessionState) *Reply {
	if st.Target == nil {
		e.log.Warn("diagnostic mode without target, resetting")
		st.resetFlow()
		return TextReply("흠, 대화가 잠시 꼬였네요. 새로운 질문을 해주세요.")
	}

	names := make([]string, len(st.Prerequisites))
	for i, p := range st.Prerequisites {
		names[i] = p.Name
	}

	// An unrelated new question aborts the diagnosis and reroutes.
	c := e.classifyContinuation(ctx, input, questionDoYouKnow, strings.Join(names, ", "), st.LastExplained)
	if c.Intent == IntentNewQuestion {
		requeued := input
		if c.Topic != noTopic {
			requeued = c.Topic
		}
		st.resetFlow()
		st.PendingInput = requeued
		return TextReply(fmt.Sprintf("알겠습니다! 그럼 '%s'에 대해 먼저 알아볼까요?", requeued))
	}

	target := st.Target
	assessment := assessUnderstanding(ctx, e.provider, input, names)
	for _, name := range assessment.names {
		if status := assessment.status(name); status != nil && *status {
			e.profile.MarkKnown(name)
		}
	}

	queue, unmentioned := buildQueue(assessment, target.Name)
	first := queue[0]
	queue = queue[1:]

	reply := e.explainQueued(ctx, first, st)
	e.advanceQueue(st, queue, unmentioned, reply)
	return reply
}

// handleContinuation consumes the learner's answer to a pending
// "shall I explain X?" / "do you know X?" question.
func (e *Engine) handleContinuation(ctx context.Context, input string, st *SessionState) *Reply {
	if len(st.Queue) == 0 {
		e.log.Warn("continuation mode with empty queue, resetting")
		st.resetFlow()
		return TextReply("흠, 대화가 잠시 꼬였네요. 새로운 질문을 해주세요.")
	}

	next := st.Queue[0]
	qt := st.LastQuestion
	if qt == questionNone {
		qt = questionShallIExplain
	}

	c := e.classifyContinuation(ctx, input, qt, next, st.LastExplained)
	e.log.Debug("continuation intent", "intent", c.Intent, "topic", c.Topic)

	prefix := ""
	if c.Clarification != "" {
		last := st.LastExplained
		if last == "" {
			last = "이전 개념"
		}
		prefix = fmt.Sprintf("좋은 질문이에요! '%s'(은)는 '%s'(을)를 이해하는 데 꼭 필요한 기초 개념이랍니다. ", last, next)
	}

	var reply *Reply
	switch c.Intent {
	case IntentContinue:
		st.Queue = st.Queue[1:]
		reply = e.explainQueued(ctx, next, st)
		reply.prefix = prefix + reply.prefix

	case IntentSkip:
		st.Queue = st.Queue[1:]
		e.profile.MarkKnown(next)
		reply = TextReply(prefix + fmt.Sprintf("알겠습니다! '%s'(은)는 이미 알고 계셨군요.", next))

	case IntentReExplain:
		topic := c.Topic
		if topic == noTopic || topic == "" {
			topic = st.LastExplained
		}
		reply = e.reExplain(ctx, topic, prefix, st)
		// The queue is untouched; the pending question is re-asked below.

	case IntentNewQuestion:
		if c.Topic != noTopic {
			st.resetFlow()
			st.PendingInput = c.Topic
			return TextReply(fmt.Sprintf("알겠습니다! 그럼 '%s'에 대해 먼저 알아볼까요?", c.Topic))
		}
		fallthrough

	default: // unclear
		st.Mode = ModeWaitingContinuation
		st.LastQuestion = questionShallIExplain
		return TextReply(prefix + fmt.Sprintf(
			"죄송해요, '%s'(이)라고 하신 게 '네'라는 뜻인지 '아니오'라는 뜻인지 잘 모르겠어요. '%s' 개념을 설명해드릴까요?",
			input, next))
	}

	e.advanceQueue(st, st.Queue, st.Unmentioned, reply)
	return reply
}

// explainQueued explains one queued concept, using the held target record
// when it matches and the graph otherwise.
func (e *Engine) explainQueued(ctx context.Context, name string, st *SessionState) *Reply {
	var info *kgraph.Concept
	if st.Target != nil && st.Target.Name == name {
		info = st.Target
	} else {
		found, err := e.graph.Lookup(ctx, name)
		if err != nil {
			if !errors.Is(err, kgraph.ErrNotFound) {
				e.log.Warn("graph lookup failed", "concept", name, "error", err)
			}
			e.profile.MarkExplained(name)
			st.LastExplained = name
			return TextReply(fmt.Sprintf("'%s' 개념에 대한 정보를 찾을 수 없습니다.", name))
		}
		info = found
	}

	count := e.profile.ExplanationCount(name)
	body, err := e.explanation(ctx, info, count)
	if err != nil {
		e.log.Warn("explanation failed", "concept", name, "error", err)
		return TextReply(noResponseText)
	}
	e.profile.MarkExplained(name)
	st.LastExplained = name
	return NewReply("", body, "")
}

// reExplain re-explains a concept outside the queue order, bumping its
// explanation count so the next rendition takes a different angle.
func (e *Engine) reExplain(ctx context.Context, topic, prefix string, st *SessionState) *Reply {
	if topic == "" {
		return TextReply(prefix + "어떤 개념을 다시 설명해 드릴까요?")
	}
	info, err := e.graph.Lookup(ctx, topic)
	if err != nil {
		if !errors.Is(err, kgraph.ErrNotFound) {
			e.log.Warn("graph lookup failed", "concept", topic, "error", err)
		}
		return TextReply(prefix + fmt.Sprintf("'%s'에 대한 정보를 찾을 수 없네요.", topic))
	}

	count := e.profile.ExplanationCount(topic)
	body, err := e.explanation(ctx, info, count)
	if err != nil {
		e.log.Warn("explanation failed", "concept", topic, "error", err)
		return TextReply(noResponseText)
	}
	e.profile.MarkExplained(topic)
	st.LastExplained = topic
	return NewReply(prefix+fmt.Sprintf("아, '%s'(이)가 아직 이해가 안 되셨군요. 다시 설명해드릴게요.\n\n", topic), body, "")
}

// advanceQueue installs the remaining queue and attaches the next
// continuation question as the reply suffix, or closes out the flow.
func (e *Engine) advanceQueue(st *SessionState, queue, unmentioned []string, reply *Reply) {
	if len(queue) > 0 {
		nextName := queue[0]
		if contains(unmentioned, nextName) {
			st.LastQuestion = questionDoYouKnow
			reply.suffix = fmt.Sprintf("\n\n💡 그럼 다음으로 '%s'(은)는 알고 계신가요?", nextName)
		} else {
			st.LastQuestion = questionShallIExplain
			reply.suffix = fmt.Sprintf("\n\n💡 이 개념이 이해되셨나요? 다음으로 '%s'(을)를 설명해드릴까요?", nextName)
		}
		st.Mode = ModeWaitingContinuation
		st.Queue = queue
		st.Unmentioned = unmentioned
		return
	}

	reply.suffix = "\n\n💡 모든 설명이 끝났어요! 더 궁금한 것이 있나요?"
	st.Mode = ModePostExplanation
	st.Queue = nil
	st.Unmentioned = nil
	st.LastQuestion = questionNone
}

// handlePostExplanation handles follow-ups after an explanation finished.
func (e *Engine) handlePostExplanation(ctx context.Context, input string, st *SessionState) *Reply {
	c := e.classifyContinuation(ctx, input, questionPostExplanation, "", st.LastExplained)
	e.log.Debug("post-explanation intent", "intent", c.Intent, "topic", c.Topic)

	switch c.Intent {
	case IntentReExplain:
		requeued := ""
		switch {
		case c.Topic != noTopic && c.Topic != "":
			requeued = c.Topic
		case !isNonAnswer(input):
			requeued = input
		default:
			requeued = st.LastExplained
		}
		if requeued == "" {
			st.Mode = ModePostExplanation
			return TextReply("어떤 개념을 다시 설명해 드릴까요?")
		}
		st.resetFlow()
		st.PendingInput = requeued
		return TextReply(fmt.Sprintf("('%s'(으)로 재설명 요청을 처리합니다.)", requeued))

	case IntentNewQuestion:
		requeued := input
		if c.Topic != noTopic && c.Topic != "" {
			requeued = c.Topic
		}
		st.resetFlow()
		st.PendingInput = requeued
		return TextReply("(새로운 질문으로 처리합니다.)")

	case IntentAcknowledged:
		st.Mode = ModePostExplanation
		return TextReply("네! 다른 질문이 있으면 편하게 해주세요.")

	default:
		st.Mode = ModePostExplanation
		return TextReply("흠... 방금 하신 말씀이 재설명 요청인지, 새 질문인지 잘 모르겠어요. 다시 말씀해주시겠어요?")
	}
}

// isNonAnswer filters inputs too vague to requeue as a topic.
func isNonAnswer(input string) bool {
	switch strings.TrimSpace(input) {
	case "??", "?", "흠", "음", "음...":
		return true
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// reloadProfile restores the last saved profile, discarding whatever the
// failed turn wrote into learning memory. Without a repository there is
// no saved copy to restore, so the in-memory profile stays.
func (e *Engine) reloadProfile(ctx context.Context) {
	if e.profiles == nil {
		return
	}
	p, err := profile.Load(ctx, e.profiles, e.profile.LearnerID)
	if err != nil {
		e.log.Error("profile reload failed", "error", err)
		return
	}
	e.profile = p
}

func (e *Engine) saveProfile(ctx context.Context) {
	if e.profiles == nil {
		return
	}
	if err := profile.Save(ctx, e.profiles, e.profile); err != nil {
		e.log.Error("profile save failed", "error", err)
	}
}

func (e *Engine) appendTurnEvent(ctx context.Context, data store.TurnEventData) {
	if e.events == nil {
		return
	}
	if err := e.events.AppendTurn(ctx, data); err != nil {
		e.log.Error("turn event append failed", "error", err)
	}
}

func (e *Engine) recordMissingConcept(ctx context.Context, name string) {
	e.log.Info("concept missing from graph", "concept", name)
	if e.events == nil {
		return
	}
	if err := e.events.RecordMissingConcept(ctx, name); err != nil {
		e.log.Error("missing concept record failed", "error", err)
	}
}
