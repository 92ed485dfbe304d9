package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/seonho-dev/tutorgraph/internal/llm"
)

// orderedAssessment holds the tri-state understanding verdict for each
// prerequisite, preserving the order the tutor asked about them. Queue
// construction depends on this order; Go map iteration would scramble it.
type orderedAssessment struct {
	names    []string
	statuses map[string]*bool
}

func newOrderedAssessment(names []string) *orderedAssessment {
	a := &orderedAssessment{statuses: make(map[string]*bool, len(names))}
	for _, n := range names {
		if _, dup := a.statuses[n]; dup {
			continue
		}
		a.names = append(a.names, n)
		a.statuses[n] = nil
	}
	return a
}

func (a *orderedAssessment) set(name string, status *bool) {
	if _, ok := a.statuses[name]; ok {
		a.statuses[name] = status
	}
}

// status returns the verdict for name: true (knows), false (doesn't),
// nil (unstated).
func (a *orderedAssessment) status(name string) *bool {
	return a.statuses[name]
}

const assessSystemPrompt = `당신은 학생의 이해도를 평가하는 전문가입니다.
학생이 여러 개념에 대해 답변했을 때, 각 개념별로 이해 여부를 판단하세요.

판단 기준:
- 명확한 긍정 (알아요, 이해해요, 응, 네, 그래, 맞아 등) → true
- 명확한 부정 (몰라요, 모르겠어요, 아니요, 아니, 기억 안나 등) → false
- 애매한 표현 / 언급 없음 → null

학생이 "아니", "응" 이라고만 답해도 각각 false/true로 판단해야 합니다.
"응" → 모든 언급된 개념 true, "아니" → 모든 언급된 개념 false.`

// assessUnderstanding asks the LLM for a per-concept verdict on the
// learner's diagnostic reply. Every requested name is present in the
// result; on any failure the result is all-nil (everything unstated).
func assessUnderstanding(ctx context.Context, provider llm.Provider, reply string, names []string) *orderedAssessment {
	assessment := newOrderedAssessment(names)
	if len(names) == 0 {
		return assessment
	}

	props := make(map[string]any, len(names))
	for _, n := range names {
		props[n] = map[string]any{"type": []string{"boolean", "null"}}
	}
	schema := &llm.Schema{
		Name:        "understanding-assessment",
		Description: "Per-concept understanding verdict: true, false, or null",
		Definition: map[string]any{
			"type":       "object",
			"properties": props,
			"required":   names,
		},
	}

	ctx = llm.WithPurpose(ctx, "assess")
	resp, err := provider.Generate(ctx, llm.Request{
		System: assessSystemPrompt,
		Messages: []llm.Message{{
			Role: llm.RoleUser,
			Content: fmt.Sprintf("선수 개념들: %s\n학생 답변: %s\n\n각 개념별 이해 여부를 JSON으로 반환하세요.",
				strings.Join(names, ", "), reply),
		}},
		Schema:    schema,
		MaxTokens: 512,
	})
	if err != nil {
		return assessment
	}

	var verdicts map[string]*bool
	if err := json.Unmarshal(resp.Content, &verdicts); err != nil {
		return assessment
	}
	for name, status := range verdicts {
		assessment.set(name, status)
	}
	return assessment
}
