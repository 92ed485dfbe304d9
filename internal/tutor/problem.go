package tutor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/seonho-dev/tutorgraph/internal/llm"
)

var problemSchema = &llm.Schema{
	Name:        "practice-problem",
	Description: "One short-answer practice problem with its answer and key prerequisite concept",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"problem":     map[string]any{"type": "string"},
			"answer":      map[string]any{"type": "string"},
			"key_concept": map[string]any{"type": "string"},
		},
		"required": []string{"problem", "answer", "key_concept"},
	},
}

const problemFailureText = "죄송합니다, 문제 생성 중 오류가 발생했어요."

// generateProblem asks the LLM for a short-answer problem on the concept.
// priorAttempts > 0 demands a problem different from earlier ones. On any
// failure the returned problem carries only apology text and a nil answer
// marker, and the caller must not enter the problem-answer mode.
func (e *Engine) generateProblem(ctx context.Context, concept string, priorAttempts int) (*Problem, bool) {
	history := fmt.Sprintf("학생이 이 개념(%s)을 방금 학습했습니다.", concept)
	if priorAttempts > 0 {
		history = fmt.Sprintf("학생이 이 개념(%s)에 대한 문제를 이미 풀어본 적이 있습니다. 반드시 이전과 다른 새로운 문제를 출제하세요.", concept)
	}

	system := fmt.Sprintf(`당신은 수학 선생님입니다.
%s
'%s' 개념을 활용하는 간단한 단답형 문제 1개를 만들어주세요.

규칙:
1. problem, answer, key_concept 세 필드를 모두 채우세요.
2. key_concept에는 이 문제를 푸는 데 필요한 가장 중요한 선수 개념 1가지를 적으세요.
   (예: '이항', '밑면의 넓이') 마땅한 선수 개념이 없으면 "none"이라고 적으세요.`, history, concept)

	ctx = llm.WithPurpose(ctx, "problem-gen")
	resp, err := e.provider.Generate(ctx, llm.Request{
		System:      system,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: fmt.Sprintf("'%s'에 대한 문제를 1개 출제해주세요.", concept)}},
		Schema:      problemSchema,
		MaxTokens:   512,
		Temperature: 0.5,
	})
	if err != nil {
		e.log.Warn("problem generation failed", "concept", concept, "error", err)
		return &Problem{Text: problemFailureText}, false
	}

	var out struct {
		Problem    string `json:"problem"`
		Answer     string `json:"answer"`
		KeyConcept string `json:"key_concept"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil || out.Problem == "" {
		e.log.Warn("problem generation returned malformed output", "concept", concept)
		return &Problem{Text: problemFailureText}, false
	}

	return &Problem{Text: out.Problem, Answer: out.Answer, KeyConcept: out.KeyConcept}, true
}

// gradeAnswer streams diagnostic feedback on the learner's answer: praise
// naming the key concept on a hit, the correct answer plus a concept hint
// on a miss.
func (e *Engine) gradeAnswer(ctx context.Context, answer string, p *Problem) (llm.Stream, error) {
	system := fmt.Sprintf(`당신은 학생의 답을 채점하는 친절하고 격려하는 수학 선생님입니다.
학생이 방금 수학 문제를 풀었습니다. 학생의 답이 정답과 일치하는지 판단하고, 진단형 피드백을 제공하세요.

[문제 정보]
- 문제: %[1]s
- 정답: "%[2]s"
- 핵심 개념: "%[3]s"

[피드백 규칙]
1. 정답일 경우 (학생의 답이 "%[2]s"와 일치하거나 "x=%[2]s"처럼 의미상 같을 경우):
   - "정답입니다!"라고 칭찬해주세요.
   - "%[3]s" 개념을 잘 활용했다고 1~2문장으로 격려해주세요.
2. 오답일 경우:
   - "아쉽네요, 정답은 '%[2]s'였어요."라고 정답을 명확히 알려주세요.
   - 이 문제를 풀려면 "%[3]s" 개념이 필요했다고 힌트를 주세요.
   - "이 개념을 다시 공부해보는 것도 좋아요."라고 제안한 뒤 "더 궁금한 점이 있나요?"라고 물어보세요.

피드백은 2-4문장으로 간결하게.`, p.Text, p.Answer, p.KeyConcept)

	ctx = llm.WithPurpose(ctx, "grading")
	return e.provider.GenerateStream(ctx, llm.Request{
		System:      system,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: "학생의 답: " + answer}},
		MaxTokens:   512,
		Temperature: 0.3,
	})
}
