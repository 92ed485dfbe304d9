package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/seonho-dev/tutorgraph/internal/llm"
)

// Task is the router's classification of a turn.
type Task string

const (
	TaskGreeting     Task = "greeting"
	TaskAskProblem   Task = "ask_problem"
	TaskTutorFlow    Task = "tutor_flow"
	TaskChitchat     Task = "chitchat"
	TaskSolveProblem Task = "solve_problem"
)

const noTopic = "none"

var routerSchema = &llm.Schema{
	Name:        "router-task",
	Description: "Dialogue task classification with optional topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"task": map[string]any{
				"type": "string",
				"enum": []string{"greeting", "ask_problem", "tutor_flow", "chitchat", "solve_problem"},
			},
			"topic": map[string]any{"type": "string"},
		},
		"required": []string{"task", "topic"},
	},
}

const routerSystemTemplate = `당신은 학생의 요청을 분류하는 '교통 정리' 담당자입니다.
학생의 입력과 현재 대화 상태를 보고, 이 요청을 어떤 부서로 보내야 할지 결정하세요.

[부서 목록]
1. greeting: 단순한 인사나 안부. (예: "안녕", "ㅎㅇ")
2. ask_problem: 개념에 대한 '문제'를 풀어보길 원함. (예: "문제 내줘", "일차식 문제 풀어볼게요")
3. tutor_flow: 수학 '개념'을 질문하거나, 방금 끝난 설명에 대해 재설명/추가 질문. (가장 일반적)
   (예: "일차방정식이 뭐야?", "방금 설명한 거 이해 안돼", "다른 예시 없어?")
4. chitchat: 수학과 관련 없는 대화 또는 감사 표현. (예: "너는 누구야?", "고마워")
5. solve_problem: 방금 출제된 문제의 답. (예: "3", "정답 4", "x=4")

[현재 상태]
- mode: %s
- 큐: %s
- 마지막 설명 개념: %s

"문제 내줘"와 "다른 예시"를 명확히 구분하세요:
- "문제 내줘" → ask_problem
- "다른 예시" → tutor_flow (재설명 요청)

ask_problem 또는 tutor_flow의 경우, 학생이 특정 개념을 언급했다면 topic으로 추출하세요.
해당 없으면 topic은 "none"입니다.`

// routeTurn classifies the learner input into a task, with an optional topic.
// Diagnostic and problem-answer modes bypass the LLM entirely.
func (e *Engine) routeTurn(ctx context.Context, input string, state *SessionState) (Task, string) {
	switch state.Mode {
	case ModeWaitingProblemAnswer:
		return TaskSolveProblem, noTopic
	case ModeWaitingDiagnostic, ModeWaitingContinuation:
		return TaskTutorFlow, noTopic
	}

	queueStatus := "비어있음"
	if len(state.Queue) > 0 {
		queueStatus = "설명 대기 중"
	}
	lastExplained := state.LastExplained
	if lastExplained == "" {
		lastExplained = "없음"
	}

	ctx = llm.WithPurpose(ctx, "router")
	resp, err := e.provider.Generate(ctx, llm.Request{
		System:    fmt.Sprintf(routerSystemTemplate, state.Mode, queueStatus, lastExplained),
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: "학생 입력: " + input}},
		Schema:    routerSchema,
		MaxTokens: 128,
	})
	if err != nil {
		e.log.Warn("router call failed, defaulting to tutor_flow", "error", err)
		return TaskTutorFlow, noTopic
	}

	var out struct {
		Task  string `json:"task"`
		Topic string `json:"topic"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return TaskTutorFlow, noTopic
	}
	task := Task(out.Task)
	topic := out.Topic
	if topic == "" {
		topic = noTopic
	}

	// In IDLE, a tutor_flow verdict on input with no extractable concept
	// would dead-end. Downgrade short inputs to greeting, longer to chitchat.
	if task == TaskTutorFlow && state.Mode == ModeIdle {
		if concept := extractConcept(ctx, e.provider, input); concept == "" {
			if len(strings.Fields(input)) < 4 && len([]rune(input)) < 15 {
				return TaskGreeting, noTopic
			}
			return TaskChitchat, noTopic
		}
	}
	return task, topic
}

// Intent is the continuation classifier's verdict while a tutoring flow
// is waiting on the learner.
type Intent string

const (
	IntentContinue     Intent = "continue"
	IntentSkip         Intent = "skip"
	IntentReExplain    Intent = "re-explain"
	IntentNewQuestion  Intent = "new_question"
	IntentAcknowledged Intent = "acknowledged"
	IntentUnclear      Intent = "unclear"
)

// continuation is the full classifier output: the primary intent, an
// optional side question to acknowledge, and the topic when one applies.
type continuation struct {
	Intent        Intent
	Clarification string
	Topic         string
}

var continuationSchema = &llm.Schema{
	Name:        "continuation-intent",
	Description: "Learner reply intent within a tutoring flow",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"primary_intent": map[string]any{
				"type": "string",
				"enum": []string{"continue", "skip", "re-explain", "new_question", "acknowledged", "unclear"},
			},
			"clarification_question": map[string]any{"type": []string{"string", "null"}},
			"topic":                  map[string]any{"type": "string"},
		},
		"required": []string{"primary_intent", "topic"},
	},
}

func continuationIntentList(qt questionType, nextConcept, lastExplained string) string {
	if qt == questionPostExplanation {
		return `1. "re-explain": 방금 설명들은 개념에 대한 재설명/추가 설명 요청 (예: "아직 이해안돼", "다른 예시 없어?").
2. "new_question": 새로운 수학 질문 (문제가 아닌 개념 질문).
3. "acknowledged": 설명을 잘 들었다는 단순 긍정/감사 표현 (예: "네", "웅", "알겠습니다", "고마워요").
4. "unclear": 의도가 불명확하거나 수학과 관련 없는 대화.`
	}
	return fmt.Sprintf(`1. "continue": '%[1]s' 설명을 듣길 원함.
   - "네", "응", "웅", "맞아요" 등 단 한 단어로 된 긍정 답변은 무조건 "continue"입니다.
   - 설명을 직접 요청하는 경우 포함 (예: "설명해줘", "그게 뭔데?")
2. "skip": '%[1]s' 설명을 건너뛰길 원함 (이미 안다고 답함). (예: "알아요", "괜찮아요", "됐어")
3. "re-explain": 방금 설명한 개념(%[2]s)에 대한 재설명 요청. (예: "아직 이해안돼", "잘 모르겠어")
4. "new_question": '%[1]s'과 무관한 새 질문.
5. "unclear": 위 어디에도 해당하지 않는 불명확한 답변. (예: "아니", "응?", "음...")`,
		nextConcept, lastExplained)
}

// questionPostExplanation is a classifier-only phrasing for the
// POST_EXPLANATION follow-up ("anything else?").
const questionPostExplanation questionType = "post_explanation"

// classifyContinuation interprets the learner's reply to a pending tutor
// question. Failures collapse to unclear.
func (e *Engine) classifyContinuation(ctx context.Context, input string, qt questionType, nextConcept, lastExplained string) continuation {
	fallback := continuation{Intent: IntentUnclear, Topic: noTopic}
	if lastExplained == "" {
		lastExplained = "none"
	}

	var questionContext string
	switch qt {
	case questionDoYouKnow:
		questionContext = fmt.Sprintf("튜터가 방금 '%s'(은)는 알고 계신지 물어봤습니다.", nextConcept)
	case questionPostExplanation:
		questionContext = "튜터가 방금 개념 설명을 마치고 '더 궁금한 것이 있나요?'라고 물었습니다."
	default:
		questionContext = fmt.Sprintf("튜터가 방금 '%s'(을)를 설명해줄지 물어봤습니다.", nextConcept)
	}

	system := fmt.Sprintf(`당신은 학생의 답변 의도를 매우 정확하게 분석하는 전문가입니다.
%s

학생의 답변을 분석하여 다음 의도 중 하나로 분류하세요:
%s

부가적인 질문(clarification_question):
- 학생이 주된 의도와 별개로 추가 질문한 내용. 없으면 null.

topic:
- 주된 의도가 "re-explain" 또는 "new_question"일 경우 관련 수학 개념을 추출하세요.
- "re-explain"인데 학생이 특정 개념 A를 명시했다면 반드시 A를 topic으로 추출하세요.
- 학생이 topic을 명시하지 않았다면, "re-explain"일 경우 "%s", "new_question"일 경우 "none"을 반환하세요.`,
		questionContext, continuationIntentList(qt, nextConcept, lastExplained), lastExplained)

	ctx = llm.WithPurpose(ctx, "intent")
	resp, err := e.provider.Generate(ctx, llm.Request{
		System:    system,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: "학생 답변: " + input}},
		Schema:    continuationSchema,
		MaxTokens: 256,
	})
	if err != nil {
		e.log.Warn("continuation classifier failed", "error", err)
		return fallback
	}

	var out struct {
		PrimaryIntent string  `json:"primary_intent"`
		Clarification *string `json:"clarification_question"`
		Topic         string  `json:"topic"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return fallback
	}

	c := continuation{Intent: Intent(out.PrimaryIntent), Topic: out.Topic}
	if c.Topic == "" {
		c.Topic = noTopic
	}
	if out.Clarification != nil {
		c.Clarification = strings.TrimSpace(*out.Clarification)
	}
	switch c.Intent {
	case IntentContinue, IntentSkip, IntentReExplain, IntentNewQuestion, IntentAcknowledged, IntentUnclear:
	default:
		c.Intent = IntentUnclear
	}
	return c
}
