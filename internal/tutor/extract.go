package tutor

import (
	"context"
	"encoding/json"

	"github.com/seonho-dev/tutorgraph/internal/llm"
)

const extractSystemPrompt = `당신은 중학교 수학 질문 분석 전문가입니다.
질문에서 학생이 궁금해하는 '핵심 수학 개념'을 추출하세요.

규칙:
1. 개념을 정확히 추출해야 합니다. (예: '각뿔대'를 '각뿔'로 추출하면 안 됩니다.)
2. 질문이 개념 그 자체인 경우, 해당 개념을 그대로 반환하세요.
3. 두 개념의 '차이'나 '비교'를 묻는 경우, 'A와 B' 형식으로 두 개념을 모두 반환하세요.
4. '넓이', '부피', '구하는 법' 등 속성이나 방법을 묻는 경우, 이를 포함하여 추출하세요.

예시:
"일차방정식이 뭐야?" → 일차방정식
"계수를 어떻게 구해?" → 계수 구하는 법
"정비례와 반비례 차이가 뭐야?" → 정비례와 반비례
"각뿔의 부피는 뭐야?" → 각뿔의 부피

개념을 찾을 수 없으면 concept에 빈 문자열을 반환하세요.`

var extractSchema = &llm.Schema{
	Name:        "concept-extraction",
	Description: "The core math concept the question asks about, empty when none",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"concept": map[string]any{"type": "string"},
		},
		"required": []string{"concept"},
	},
}

// extractConcept pulls the core math concept out of a learner question.
// Returns "" when no concept is present or the call fails.
func extractConcept(ctx context.Context, provider llm.Provider, question string) string {
	ctx = llm.WithPurpose(ctx, "concept-extract")
	resp, err := provider.Generate(ctx, llm.Request{
		System:    extractSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: question}},
		Schema:    extractSchema,
		MaxTokens: 128,
	})
	if err != nil {
		return ""
	}

	var out struct {
		Concept string `json:"concept"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return ""
	}
	if out.Concept == "개념없음" {
		return ""
	}
	return out.Concept
}
