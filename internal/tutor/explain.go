package tutor

import (
	"context"
	"fmt"
	"strings"

	"github.com/seonho-dev/tutorgraph/internal/kgraph"
	"github.com/seonho-dev/tutorgraph/internal/llm"
)

// diagnosticQuestion streams a gentle question checking whether the
// learner knows the listed prerequisites before the target is explained.
func (e *Engine) diagnosticQuestion(ctx context.Context, target string, prereqs []kgraph.Prerequisite) (llm.Stream, error) {
	var info strings.Builder
	for _, p := range prereqs {
		fmt.Fprintf(&info, "- %s: %s\n", p.Name, p.Definition)
	}

	system := fmt.Sprintf(`당신은 따뜻하고 친절한 수학 선생님입니다.
학생이 '%s'을 물어봤을 때, 이 개념을 이해하기 위해 먼저 알아야 할 선수 지식을 자연스럽게 확인하고 싶습니다.

규칙:
1. 학생의 기분을 상하게 하지 말고, 격려하는 톤으로 질문하세요
2. "혹시 기억나시나요?", "먼저 확인해볼까요?" 같은 부드러운 표현 사용
3. 선수 개념 1~2개만 언급
4. 질문은 한 문장으로 간결하게`, target)

	ctx = llm.WithPurpose(ctx, "diagnostic-q")
	return e.provider.GenerateStream(ctx, llm.Request{
		System: system,
		Messages: []llm.Message{{
			Role: llm.RoleUser,
			Content: fmt.Sprintf("목표 개념: %s\n선수 개념들:\n%s\n위 선수 개념을 확인하는 자연스러운 질문을 생성하세요.",
				target, info.String()),
		}},
		MaxTokens:   512,
		Temperature: 0.3,
	})
}

// explanation streams a learner-level explanation of the concept. When the
// concept has been explained before (count > 0), the prompt demands a
// genuinely different angle instead of repeating the prior wording.
func (e *Engine) explanation(ctx context.Context, c *kgraph.Concept, count int) (llm.Stream, error) {
	examples := "예시 없음"
	if len(c.Examples) > 0 {
		var b strings.Builder
		for _, ex := range c.Examples {
			fmt.Fprintf(&b, "- %s\n", ex)
		}
		examples = b.String()
	}

	system := `당신은 중학생 눈높이에 맞춰 설명하는 수학 선생님입니다.

규칙:
1. 정의를 쉽게 풀어서 설명
2. 구체적인 숫자 예시 포함
3. 3-4문장으로 간결하게
4. 격려하는 말로 마무리`
	user := fmt.Sprintf("개념: %s\n정의: %s\n\n관련 예시:\n%s\n위 내용을 바탕으로 쉬운 설명을 생성하세요.",
		c.Name, c.Definition, examples)

	if count > 0 {
		system = fmt.Sprintf(`당신은 매우 인내심이 많은 중학교 수학 선생님입니다.
학생이 이전에 '%s' 개념에 대한 설명을 들었지만, 여전히 이해하지 못했습니다.

반드시 이전과 다른 방식으로 설명해야 합니다.
- 새롭고 더 쉬운 예시나 다른 비유를 사용하세요.
- 절대 이전에 했던 말(예: "%s")을 그대로 반복하지 마세요.
- 3-4문장으로 간결하지만, 이해하기 쉽게 설명하세요.`, c.Name, c.Definition)
		user = fmt.Sprintf("개념: %s\n정의: %s\n관련 예시: %s\n\n위 내용을 바탕으로 새롭고 완전히 다른 방식의 설명을 생성하세요.",
			c.Name, c.Definition, examples)
	}

	ctx = llm.WithPurpose(ctx, "explanation")
	return e.provider.GenerateStream(ctx, llm.Request{
		System:      system,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: user}},
		MaxTokens:   1024,
		Temperature: 0.3,
	})
}

// fallbackExplanation streams a general-knowledge explanation for a
// concept absent from the graph, with a mandatory disclaimer up front.
func (e *Engine) fallbackExplanation(ctx context.Context, concept string) (llm.Stream, error) {
	system := fmt.Sprintf(`당신은 중학생 눈높이에 맞춰 수학 개념을 설명하는 친절한 선생님입니다.
학생이 '%[1]s'에 대해 질문했지만, 이 개념은 당신의 전문 지식 그래프에 아직 없습니다.

당신의 일반 지식을 바탕으로 '%[1]s' 개념을 설명해주세요.

규칙:
1. 중학생이 이해하기 쉽게 설명하세요.
2. 예시를 포함하면 좋습니다.
3. 3-5 문장으로 간결하게 설명하세요.
4. 설명 시작 부분에 "(이 설명은 제 지식 그래프에 기반한 것이 아니라 일반적인 내용이에요.)" 라는 면책 조항을 반드시 포함하세요.`, concept)

	ctx = llm.WithPurpose(ctx, "fallback")
	return e.provider.GenerateStream(ctx, llm.Request{
		System:      system,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: fmt.Sprintf("'%s' 개념을 설명해주세요.", concept)}},
		MaxTokens:   1024,
		Temperature: 0.3,
	})
}

// chitchat streams a short in-persona reply to non-math small talk,
// steering the learner back toward math questions.
func (e *Engine) chitchat(ctx context.Context, input string) (llm.Stream, error) {
	system := `당신은 '수학 튜터' 챗봇입니다. 학생이 수학과 관련 없는 간단한 대화를 시도합니다.
짧고 간결하게 '튜터'로서 응답하고, 다시 수학 질문을 하도록 유도하세요.

예시:
- 학생: 너는 누구야? / 튜터: 저는 AI 수학 튜터입니다. 궁금한 수학 개념을 물어보세요!
- 학생: 고마워 / 튜터: 천만에요! 더 궁금한 점이 있나요?`

	ctx = llm.WithPurpose(ctx, "chitchat")
	return e.provider.GenerateStream(ctx, llm.Request{
		System:      system,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: input}},
		MaxTokens:   256,
		Temperature: 0.3,
	})
}

const greetingText = "안녕하세요! 수학 개념에 대해 질문해주시면 자세히 설명해 드릴게요."
