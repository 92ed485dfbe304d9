package tutor

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/seonho-dev/tutorgraph/internal/kgraph"
	"github.com/seonho-dev/tutorgraph/internal/llm"
	"github.com/seonho-dev/tutorgraph/internal/profile"
	"github.com/seonho-dev/tutorgraph/internal/store"
)

func testEngine(t *testing.T, mock *llm.MockProvider) *Engine {
	t.Helper()
	g := kgraph.NewMemoryGraph()
	kgraph.Seed(g)
	e, err := NewEngine(Options{
		Provider: mock,
		Graph:    g,
		Profile:  profile.New("test"),
	})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e
}

func jsonResp(v string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(v)}
}

func streamResp(chunks ...string) llm.MockResponse {
	return llm.MockResponse{Chunks: chunks}
}

func mustCollect(t *testing.T, r *Reply) string {
	t.Helper()
	text, err := r.Collect()
	if err != nil {
		t.Fatalf("collect reply: %v", err)
	}
	return text
}

func checkInvariants(t *testing.T, st *SessionState) {
	t.Helper()
	if err := st.CheckInvariants(); err != nil {
		t.Fatalf("invariant violated: %v", err)
	}
}

// Scenario: a fresh question whose prerequisites are unverified opens a
// diagnostic, the learner's mixed answer builds the queue, and working
// through the queue ends in POST_EXPLANATION.
func TestDiagnosticFlow(t *testing.T) {
	mock := llm.NewMockProvider(
		// Turn 1: router, downgrade-check extraction, extraction, diagnostic question.
		jsonResp(`{"task":"tutor_flow","topic":"일차방정식"}`),
		jsonResp(`{"concept":"일차방정식"}`),
		jsonResp(`{"concept":"일차방정식"}`),
		streamResp("일차방정식을 이해하려면 ", "방정식과 일차식을 알아야 해요. 기억나시나요?"),
	)
	e := testEngine(t, mock)
	ctx := context.Background()

	reply, st := e.ProcessTurn(ctx, "일차방정식이 뭐야?", NewSessionState())
	checkInvariants(t, st)

	if st.Mode != ModeWaitingDiagnostic {
		t.Fatalf("mode = %s, want waiting_diagnostic", st.Mode)
	}
	if st.PrimaryGoal != "일차방정식" {
		t.Errorf("primary goal = %q", st.PrimaryGoal)
	}
	if st.Target == nil || st.Target.Name != "일차방정식" {
		t.Errorf("target = %+v", st.Target)
	}
	if len(st.Prerequisites) == 0 {
		t.Error("expected prerequisites under diagnosis")
	}
	text := mustCollect(t, reply)
	if !strings.Contains(text, "기억나시나요") {
		t.Errorf("reply = %q", text)
	}

	// Turn 2: mixed diagnostic answer. 방정식 known, 일차식 unknown,
	// 이항 unmentioned. Queue: 일차식 (explained now), then 이항, then target.
	mock.AddResponse(jsonResp(`{"primary_intent":"continue","topic":"none"}`))
	mock.AddResponse(jsonResp(`{"방정식":true,"일차식":false,"이항":null}`))
	mock.AddResponse(streamResp("일차식은 차수가 1인 식이에요."))

	reply, st = e.ProcessTurn(ctx, "방정식은 알겠는데 일차식은 모르겠어요", st)
	checkInvariants(t, st)

	if st.Mode != ModeWaitingContinuation {
		t.Fatalf("mode = %s, want waiting_continuation", st.Mode)
	}
	wantQueue := []string{"이항", "일차방정식"}
	if len(st.Queue) != len(wantQueue) {
		t.Fatalf("queue = %v, want %v", st.Queue, wantQueue)
	}
	for i := range wantQueue {
		if st.Queue[i] != wantQueue[i] {
			t.Errorf("queue[%d] = %q, want %q", i, st.Queue[i], wantQueue[i])
		}
	}
	// 이항 was unmentioned, so the follow-up asks "do you know?".
	if st.LastQuestion != questionDoYouKnow {
		t.Errorf("question type = %q", st.LastQuestion)
	}
	text = mustCollect(t, reply)
	if !strings.Contains(text, "일차식은 차수가 1인") {
		t.Errorf("reply missing explanation: %q", text)
	}
	if !strings.Contains(text, "'이항'(은)는 알고 계신가요") {
		t.Errorf("reply missing follow-up: %q", text)
	}

	// Learner memory: 방정식 acknowledged, 일차식 explained.
	if !e.Profile().Knows("방정식") {
		t.Error("방정식 should be marked known")
	}
	if e.Profile().ExplanationCount("방정식") != 0 {
		t.Error("방정식 must not gain an explanation count")
	}
	if e.Profile().ExplanationCount("일차식") != 1 {
		t.Errorf("일차식 count = %d, want 1", e.Profile().ExplanationCount("일차식"))
	}

	// Turn 3: continue through 이항.
	mock.AddResponse(jsonResp(`{"primary_intent":"continue","topic":"none"}`))
	mock.AddResponse(streamResp("이항은 항을 부호를 바꿔 옮기는 거예요."))

	reply, st = e.ProcessTurn(ctx, "응 설명해줘", st)
	checkInvariants(t, st)
	if st.Mode != ModeWaitingContinuation {
		t.Fatalf("mode = %s", st.Mode)
	}
	if len(st.Queue) != 1 || st.Queue[0] != "일차방정식" {
		t.Fatalf("queue = %v", st.Queue)
	}
	text = mustCollect(t, reply)
	if !strings.Contains(text, "'일차방정식'(을)를 설명해드릴까요") {
		t.Errorf("reply = %q", text)
	}

	// Turn 4: continue through the target; flow completes.
	mock.AddResponse(jsonResp(`{"primary_intent":"continue","topic":"none"}`))
	mock.AddResponse(streamResp("일차방정식은 (일차식)=0 꼴의 방정식이에요."))

	reply, st = e.ProcessTurn(ctx, "응", st)
	checkInvariants(t, st)
	if st.Mode != ModePostExplanation {
		t.Fatalf("mode = %s, want post_explanation", st.Mode)
	}
	if len(st.Queue) != 0 {
		t.Errorf("queue = %v, want empty", st.Queue)
	}
	if st.Target != nil {
		t.Error("target must be cleared once the flow ends")
	}
	if st.LastExplained != "일차방정식" {
		t.Errorf("last explained = %q", st.LastExplained)
	}
	text = mustCollect(t, reply)
	if !strings.Contains(text, "모든 설명이 끝났어요") {
		t.Errorf("reply = %q", text)
	}
}

// Scenario: a concept with no unverified prerequisites is explained
// immediately, no diagnostic.
func TestDirectExplanation(t *testing.T) {
	mock := llm.NewMockProvider(
		jsonResp(`{"task":"tutor_flow","topic":"등식"}`),
		jsonResp(`{"concept":"등식"}`),
		jsonResp(`{"concept":"등식"}`),
		streamResp("등식은 등호로 두 식이 같음을 나타내요."),
	)
	e := testEngine(t, mock)

	reply, st := e.ProcessTurn(context.Background(), "등식이 뭐야?", NewSessionState())
	checkInvariants(t, st)

	if st.Mode != ModePostExplanation {
		t.Fatalf("mode = %s, want post_explanation", st.Mode)
	}
	if st.LastExplained != "등식" {
		t.Errorf("last explained = %q", st.LastExplained)
	}
	if e.Profile().ExplanationCount("등식") != 1 {
		t.Errorf("count = %d", e.Profile().ExplanationCount("등식"))
	}
	text := mustCollect(t, reply)
	if !strings.Contains(text, "더 궁금한 것이 있나요") {
		t.Errorf("reply = %q", text)
	}
}

// Scenario: a concept missing from the graph gets the general-knowledge
// fallback with disclaimer prefix, and is not marked as explained.
func TestFallbackExplanation(t *testing.T) {
	mock := llm.NewMockProvider(
		jsonResp(`{"task":"tutor_flow","topic":"미적분"}`),
		jsonResp(`{"concept":"미적분"}`),
		jsonResp(`{"concept":"미적분"}`),
		streamResp("(이 설명은 제 지식 그래프에 기반한 것이 아니라 일반적인 내용이에요.) 미적분은..."),
	)
	e := testEngine(t, mock)

	reply, st := e.ProcessTurn(context.Background(), "미적분이 뭐야?", NewSessionState())
	checkInvariants(t, st)

	if st.Mode != ModePostExplanation {
		t.Fatalf("mode = %s", st.Mode)
	}
	if st.LastExplained != "미적분" {
		t.Errorf("last explained = %q", st.LastExplained)
	}
	if e.Profile().Knows("미적분") {
		t.Error("fallback concepts must not enter the explained set")
	}
	text := mustCollect(t, reply)
	if !strings.Contains(text, "제가 아는 선에서 설명해 드릴게요") {
		t.Errorf("missing fallback prefix: %q", text)
	}
}

// Scenario: problem request on the last explained concept, then grading.
func TestProblemFlow(t *testing.T) {
	mock := llm.NewMockProvider()
	e := testEngine(t, mock)
	ctx := context.Background()

	st := NewSessionState()
	st.Mode = ModePostExplanation
	st.LastExplained = "일차방정식"

	mock.AddResponse(jsonResp(`{"task":"ask_problem","topic":"none"}`))
	mock.AddResponse(jsonResp(`{"problem":"2x + 3 = 11일 때 x는?","answer":"4","key_concept":"이항"}`))

	reply, st := e.ProcessTurn(ctx, "문제 내줘", st)
	checkInvariants(t, st)

	if st.Mode != ModeWaitingProblemAnswer {
		t.Fatalf("mode = %s, want waiting_problem_answer", st.Mode)
	}
	if st.CurrentProblem == nil || st.CurrentProblem.Answer != "4" {
		t.Fatalf("problem = %+v", st.CurrentProblem)
	}
	text := mustCollect(t, reply)
	if !strings.Contains(text, "2x + 3 = 11") {
		t.Errorf("reply = %q", text)
	}
	if strings.Contains(text, `"4"`) {
		t.Errorf("answer leaked into reply: %q", text)
	}

	// Answer turn bypasses classification entirely: only grading is called.
	before := mock.CallCount()
	mock.AddResponse(streamResp("정답입니다! 이항 개념을 잘 활용하셨네요."))

	reply, st = e.ProcessTurn(ctx, "4", st)
	checkInvariants(t, st)

	if mock.CallCount() != before+1 {
		t.Errorf("expected a single LLM call for grading, got %d", mock.CallCount()-before)
	}
	if st.Mode != ModePostExplanation {
		t.Fatalf("mode = %s", st.Mode)
	}
	if st.CurrentProblem != nil {
		t.Error("problem must be cleared after grading")
	}
	text = mustCollect(t, reply)
	if !strings.Contains(text, "정답입니다") {
		t.Errorf("reply = %q", text)
	}
}

// Scenario: problem generation failure must not enter the answer-wait mode.
func TestProblemGenerationFailure(t *testing.T) {
	mock := llm.NewMockProvider()
	e := testEngine(t, mock)

	st := NewSessionState()
	st.Mode = ModePostExplanation
	st.LastExplained = "일차방정식"

	mock.AddResponse(jsonResp(`{"task":"ask_problem","topic":"none"}`))
	mock.AddResponse(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})

	reply, st := e.ProcessTurn(context.Background(), "문제 내줘", st)
	checkInvariants(t, st)

	if st.Mode == ModeWaitingProblemAnswer {
		t.Fatal("must not wait for an answer without a problem")
	}
	if st.CurrentProblem != nil {
		t.Error("no problem should be stored")
	}
	text := mustCollect(t, reply)
	if !strings.Contains(text, "오류") {
		t.Errorf("reply = %q", text)
	}
}

// Scenario: a problem request with no topic and nothing explained yet.
func TestProblemWithoutConcept(t *testing.T) {
	mock := llm.NewMockProvider(
		jsonResp(`{"task":"ask_problem","topic":"none"}`),
	)
	e := testEngine(t, mock)

	reply, st := e.ProcessTurn(context.Background(), "문제 내줘", NewSessionState())
	checkInvariants(t, st)

	if st.Mode != ModeIdle {
		t.Fatalf("mode = %s, want idle", st.Mode)
	}
	text := mustCollect(t, reply)
	if !strings.Contains(text, "먼저 학습할 개념을") {
		t.Errorf("reply = %q", text)
	}
}

// Scenario: a new question in POST_EXPLANATION reroutes through
// PendingInput and is resolved within the same call.
func TestPostExplanationNewQuestionRequeue(t *testing.T) {
	mock := llm.NewMockProvider(
		// Pass 1: router, post-explanation intent → requeue "정비례".
		jsonResp(`{"task":"tutor_flow","topic":"정비례"}`),
		jsonResp(`{"primary_intent":"new_question","clarification_question":null,"topic":"정비례"}`),
		// Pass 2 (requeued): router, downgrade check, extraction, explanation.
		jsonResp(`{"task":"tutor_flow","topic":"정비례"}`),
		jsonResp(`{"concept":"정비례"}`),
		jsonResp(`{"concept":"정비례"}`),
		streamResp("정비례는 x가 커질 때 y도 같은 비율로 커지는 관계예요."),
	)
	e := testEngine(t, mock)

	st := NewSessionState()
	st.Mode = ModePostExplanation
	st.LastExplained = "일차방정식"

	reply, st := e.ProcessTurn(context.Background(), "정비례가 뭐야?", st)
	checkInvariants(t, st)

	if st.Mode != ModePostExplanation {
		t.Fatalf("mode = %s, want post_explanation after direct explanation", st.Mode)
	}
	if st.LastExplained != "정비례" {
		t.Errorf("last explained = %q", st.LastExplained)
	}
	if st.PendingInput != "" {
		t.Errorf("pending input must be consumed, got %q", st.PendingInput)
	}
	text := mustCollect(t, reply)
	if !strings.Contains(text, "새로운 질문으로 처리합니다") {
		t.Errorf("missing requeue notice: %q", text)
	}
	if !strings.Contains(text, "정비례는") {
		t.Errorf("missing explanation: %q", text)
	}
}

// Scenario: skip answers mark the concept known without explaining it.
func TestContinuationSkip(t *testing.T) {
	mock := llm.NewMockProvider(
		jsonResp(`{"primary_intent":"skip","clarification_question":null,"topic":"none"}`),
	)
	e := testEngine(t, mock)

	st := NewSessionState()
	st.Mode = ModeWaitingContinuation
	st.Queue = []string{"이항", "일차방정식"}
	st.Target = &kgraph.Concept{Name: "일차방정식", Definition: "정리하여 (일차식)=0 꼴이 되는 방정식"}
	st.LastQuestion = questionDoYouKnow
	st.LastExplained = "일차식"

	reply, st := e.ProcessTurn(context.Background(), "알아요", st)
	checkInvariants(t, st)

	if !e.Profile().Knows("이항") {
		t.Error("skipped concept must be marked known")
	}
	if e.Profile().ExplanationCount("이항") != 0 {
		t.Error("skipped concept must not gain a count")
	}
	if len(st.Queue) != 1 || st.Queue[0] != "일차방정식" {
		t.Errorf("queue = %v", st.Queue)
	}
	text := mustCollect(t, reply)
	if !strings.Contains(text, "이미 알고 계셨군요") {
		t.Errorf("reply = %q", text)
	}
}

// Scenario: an unclear continuation answer keeps the queue and re-asks.
func TestContinuationUnclear(t *testing.T) {
	mock := llm.NewMockProvider(
		jsonResp(`{"primary_intent":"unclear","clarification_question":null,"topic":"none"}`),
	)
	e := testEngine(t, mock)

	st := NewSessionState()
	st.Mode = ModeWaitingContinuation
	st.Queue = []string{"이항"}
	st.Target = &kgraph.Concept{Name: "일차방정식"}
	st.LastQuestion = questionDoYouKnow

	reply, st := e.ProcessTurn(context.Background(), "아니", st)
	checkInvariants(t, st)

	if st.Mode != ModeWaitingContinuation {
		t.Fatalf("mode = %s", st.Mode)
	}
	if len(st.Queue) != 1 || st.Queue[0] != "이항" {
		t.Errorf("queue = %v, must be unchanged", st.Queue)
	}
	if st.LastQuestion != questionShallIExplain {
		t.Errorf("question type = %q, want shall_i_explain re-ask", st.LastQuestion)
	}
	text := mustCollect(t, reply)
	if !strings.Contains(text, "설명해드릴까요") {
		t.Errorf("reply = %q", text)
	}
}

// Scenario: continuation mode with an empty queue resets cleanly.
func TestContinuationEmptyQueueResets(t *testing.T) {
	mock := llm.NewMockProvider()
	e := testEngine(t, mock)

	st := NewSessionState()
	st.Mode = ModeWaitingContinuation

	reply, st := e.ProcessTurn(context.Background(), "응", st)
	checkInvariants(t, st)

	if st.Mode != ModeIdle {
		t.Fatalf("mode = %s, want idle", st.Mode)
	}
	text := mustCollect(t, reply)
	if !strings.Contains(text, "새로운 질문을 해주세요") {
		t.Errorf("reply = %q", text)
	}
}

// Scenario: exit token resets the flow and says goodbye, no LLM involved.
func TestExitCommand(t *testing.T) {
	mock := llm.NewMockProvider()
	e := testEngine(t, mock)

	st := NewSessionState()
	st.Mode = ModeWaitingContinuation
	st.Queue = []string{"이항"}

	reply, st := e.ProcessTurn(context.Background(), "종료", st)
	checkInvariants(t, st)

	if st.Mode != ModeIdle {
		t.Fatalf("mode = %s", st.Mode)
	}
	if mock.CallCount() != 0 {
		t.Errorf("exit must not call the LLM, got %d calls", mock.CallCount())
	}
	text := mustCollect(t, reply)
	if !strings.Contains(text, "다음에 또 만나요") {
		t.Errorf("reply = %q", text)
	}
}

func TestEmptyAndCommandInput(t *testing.T) {
	mock := llm.NewMockProvider()
	e := testEngine(t, mock)
	ctx := context.Background()

	reply, st := e.ProcessTurn(ctx, "   ", NewSessionState())
	checkInvariants(t, st)
	if text := mustCollect(t, reply); !strings.Contains(text, "입력이 없습니다") {
		t.Errorf("reply = %q", text)
	}

	reply, st = e.ProcessTurn(ctx, "pip install sympy", st)
	checkInvariants(t, st)
	if text := mustCollect(t, reply); !strings.Contains(text, "무시합니다") {
		t.Errorf("reply = %q", text)
	}
	if mock.CallCount() != 0 {
		t.Errorf("filtered inputs must not reach the LLM")
	}
}

// Scenario: every LLM call failing still yields a graceful reply.
func TestTotalProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider() // empty: every call errors
	e := testEngine(t, mock)

	reply, st := e.ProcessTurn(context.Background(), "일차방정식이 뭐야?", NewSessionState())
	checkInvariants(t, st)

	if st.Mode != ModeIdle {
		t.Fatalf("mode = %s", st.Mode)
	}
	text := mustCollect(t, reply)
	if text == "" {
		t.Error("expected a fallback reply")
	}
}

// Scenario: input state is never mutated by a turn.
func TestProcessTurnDoesNotMutateInput(t *testing.T) {
	mock := llm.NewMockProvider(
		jsonResp(`{"primary_intent":"skip","clarification_question":null,"topic":"none"}`),
	)
	e := testEngine(t, mock)

	st := NewSessionState()
	st.Mode = ModeWaitingContinuation
	st.Queue = []string{"이항", "일차방정식"}
	st.Target = &kgraph.Concept{Name: "일차방정식"}
	st.LastQuestion = questionDoYouKnow

	_, next := e.ProcessTurn(context.Background(), "알아요", st)

	if len(st.Queue) != 2 {
		t.Errorf("input queue mutated: %v", st.Queue)
	}
	if st.Mode != ModeWaitingContinuation {
		t.Errorf("input mode mutated: %s", st.Mode)
	}
	if next == st {
		t.Error("next state must be a distinct value")
	}
}

// Scenario: an IDLE input routed tutor_flow but carrying no extractable
// concept is downgraded. Short inputs read as greetings.
func TestShortInputWithoutConceptGreets(t *testing.T) {
	mock := llm.NewMockProvider(
		jsonResp(`{"task":"tutor_flow","topic":"none"}`),
		jsonResp(`{"concept":""}`),
	)
	e := testEngine(t, mock)

	reply, st := e.ProcessTurn(context.Background(), "ㅎㅇ", NewSessionState())
	checkInvariants(t, st)

	if st.Mode != ModeIdle {
		t.Fatalf("mode = %s, want idle", st.Mode)
	}
	text := mustCollect(t, reply)
	if !strings.Contains(text, "수학 개념에 대해 질문해주시면") {
		t.Errorf("reply = %q, want greeting", text)
	}
	if mock.CallCount() != 2 {
		t.Errorf("llm calls = %d, want router and extraction only", mock.CallCount())
	}
}

// Scenario: the same downgrade on a longer concept-free input lands in
// chitchat instead.
func TestLongInputWithoutConceptChitchats(t *testing.T) {
	mock := llm.NewMockProvider(
		jsonResp(`{"task":"tutor_flow","topic":"none"}`),
		jsonResp(`{"concept":""}`),
		streamResp("좋네요! 궁금한 수학 개념이 있으면 물어보세요."),
	)
	e := testEngine(t, mock)

	reply, st := e.ProcessTurn(context.Background(), "오늘은 기분이 좋아서 공부가 잘 돼요", NewSessionState())
	checkInvariants(t, st)

	if st.Mode != ModeIdle {
		t.Fatalf("mode = %s, want idle", st.Mode)
	}
	text := mustCollect(t, reply)
	if !strings.Contains(text, "물어보세요") {
		t.Errorf("reply = %q, want chitchat", text)
	}
	if mock.CallCount() != 3 {
		t.Errorf("llm calls = %d, want router, extraction and chitchat", mock.CallCount())
	}
}

type memProfileRepo struct {
	recs map[string]*store.ProfileRecord
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{recs: make(map[string]*store.ProfileRecord)}
}

func (r *memProfileRepo) Load(ctx context.Context, learnerID string) (*store.ProfileRecord, error) {
	return r.recs[learnerID], nil
}

func (r *memProfileRepo) Save(ctx context.Context, rec *store.ProfileRecord) error {
	r.recs[rec.LearnerID] = rec
	return nil
}

func (r *memProfileRepo) Reset(ctx context.Context, learnerID string) error {
	delete(r.recs, learnerID)
	return nil
}

// faultyLookupGraph panics when one particular concept is looked up.
type faultyLookupGraph struct {
	kgraph.Graph
	faulty string
}

func (g *faultyLookupGraph) Lookup(ctx context.Context, name string) (*kgraph.Concept, error) {
	if name == g.faulty {
		panic("lookup: connection lost")
	}
	return g.Graph.Lookup(ctx, name)
}

// Scenario: a turn that dies mid-flight returns the apology, resets the
// session and rolls learning memory back to its last saved state.
func TestFatalTurnDiscardsMemoryWrites(t *testing.T) {
	ctx := context.Background()
	repo := newMemProfileRepo()
	prof := profile.New("test")
	prof.MarkExplained("등식")
	if err := profile.Save(ctx, repo, prof); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	g := kgraph.NewMemoryGraph()
	kgraph.Seed(g)
	mock := llm.NewMockProvider(
		jsonResp(`{"task":"tutor_flow","topic":"일차방정식"}`),
		jsonResp(`{"concept":"일차방정식"}`),
		jsonResp(`{"concept":"일차방정식"}`),
		streamResp("방정식과 일차식을 알고 계신가요?"),
	)
	e, err := NewEngine(Options{
		Provider:    mock,
		Graph:       &faultyLookupGraph{Graph: g, faulty: "일차식"},
		Profile:     prof,
		ProfileRepo: repo,
	})
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	_, st := e.ProcessTurn(ctx, "일차방정식이 뭐야?", NewSessionState())
	if st.Mode != ModeWaitingDiagnostic {
		t.Fatalf("mode = %s, want waiting_diagnostic", st.Mode)
	}

	// The diagnostic answer marks 방정식 known, then the queued lookup of
	// 일차식 blows up before any explanation starts.
	mock.AddResponse(jsonResp(`{"primary_intent":"continue","topic":"none"}`))
	mock.AddResponse(jsonResp(`{"방정식":true,"일차식":false,"이항":null}`))

	reply, next := e.ProcessTurn(ctx, "방정식은 알아요", st)
	checkInvariants(t, next)

	if next.Mode != ModeIdle {
		t.Fatalf("mode = %s, want idle after fatal turn", next.Mode)
	}
	text := mustCollect(t, reply)
	if !strings.Contains(text, "오류가 발생했어요") {
		t.Errorf("reply = %q, want apology", text)
	}
	if e.Profile().Knows("방정식") {
		t.Error("failed turn's memory write must be discarded")
	}
	if !e.Profile().Knows("등식") {
		t.Error("saved memory must survive the rollback")
	}
}
