package stage

import (
	"context"
	"fmt"
	"strings"

	"github.com/koreview/revu/pkg/models"
)

// defaultDecisionReason is used whenever the classification call fails or
// produces an unusable answer.
const defaultDecisionReason = "자동 판정 실패"

// ClassifyFinalDecision maps the final report and recommendation to an
// approved/on-hold verdict with a reason. Never returns an error: any
// failure defaults to on-hold so a broken classifier cannot approve a
// proposal by accident.
func ClassifyFinalDecision(ctx context.Context, client LLMClient, report, recommendation string) (string, string) {
	prompt := fmt.Sprintf(`당신은 AI 프로젝트 심사위원입니다. 최종 보고서와 최종 의견을 읽고 과제를 '승인' 또는 '보류' 중 하나로 판단하세요.
결정 기준: 실행 가능성, 기대 효과, 리스크 수준, ROI 등을 종합적으로 고려합니다.
출력은 JSON 형식으로만 답변하며, 가능한 값은 "승인" 또는 "보류"입니다.

최종 보고서:
%s

최종 의견:
%s

응답 형식 예시:
{"decision": "승인", "reason": "핵심 근거"}`,
		truncateForPrompt(report, 1200),
		truncateForPrompt(recommendation, promptCharBudget))

	response, err := client.Complete(ctx, prompt, Input{}.llmOptions())
	if err != nil {
		return models.DecisionOnHold, defaultDecisionReason
	}

	var parsed struct {
		Decision string `json:"decision"`
		Reason   string `json:"reason"`
	}
	if err := decodeJSONObject(response, &parsed); err != nil {
		return models.DecisionOnHold, defaultDecisionReason
	}

	decision := models.DecisionOnHold
	if strings.TrimSpace(parsed.Decision) == "승인" {
		decision = models.DecisionApproved
	}
	reason := strings.TrimSpace(parsed.Reason)
	if reason == "" {
		reason = "LLM 판단을 기준으로 자동 분류되었습니다."
	}
	return decision, reason
}
