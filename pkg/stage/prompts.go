package stage

import (
	"fmt"
	"strings"

	"github.com/koreview/revu/pkg/models"
)

// promptCharBudget caps how much of the proposal and of each upstream stage
// result is inlined into a prompt.
const promptCharBudget = 800

// truncateForPrompt clips text to limit runes with an ellipsis marker.
func truncateForPrompt(text string, limit int) string {
	text = strings.TrimSpace(text)
	r := []rune(text)
	if len(r) <= limit {
		return text
	}
	return string(r[:limit]) + "..."
}

// formatBPCases serializes cases compactly for prompt inclusion.
func formatBPCases(cases []models.BPCase) string {
	if len(cases) == 0 {
		return "유사 사례 없음"
	}
	var b strings.Builder
	for i, c := range cases {
		fmt.Fprintf(&b, "%d. %s (%s/%s)\n", i+1, c.Title, c.BusinessDomain, c.Division)
		if c.Summary != "" {
			fmt.Fprintf(&b, "   요약: %s\n", truncateForPrompt(c.Summary, 150))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// buildReviewPrompt renders the first-pass prompt for stages 2 through 5.
func buildReviewPrompt(s ReviewStage, in Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", s.role, s.task)
	fmt.Fprintf(&b, "제안서 내용:\n%s\n\n", truncateForPrompt(in.Proposal(), promptCharBudget))
	fmt.Fprintf(&b, "참고 가능한 유사 사례:\n%s\n\n", formatBPCases(in.BPCases))
	b.WriteString(s.criteriaIntro + "\n")
	for i, c := range s.criteria {
		fmt.Fprintf(&b, "%d. %s\n", i+1, c)
	}
	b.WriteString("\n" + s.lengthHint)
	return b.String()
}

// buildFeedbackRetryPrompt renders the rerun prompt after a user supplied
// feedback at a checkpoint. The feedback must be reflected explicitly.
func buildFeedbackRetryPrompt(s ReviewStage, in Input, previous string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", s.role)
	b.WriteString("사용자가 중요한 피드백을 제공했습니다. 이 피드백을 **반드시 반영**하여 검토 결과를 다시 작성해주세요.\n\n")
	fmt.Fprintf(&b, "제안서 내용:\n%s\n\n", truncateForPrompt(in.Proposal(), promptCharBudget))
	fmt.Fprintf(&b, "이전 검토 결과:\n%s\n\n", truncateForPrompt(previous, promptCharBudget))
	fmt.Fprintf(&b, "**사용자 피드백 (필수 반영):**\n%s\n\n", in.UserFeedback)
	b.WriteString("**중요:** 위 사용자 피드백의 내용을 검토 결과에 **구체적으로 반영**해주세요.\n")
	b.WriteString("사용자가 제공한 정보(예: 예산, 인력, 기간 등)를 명시적으로 언급하고,\n")
	b.WriteString("이를 바탕으로 다음 항목을 재평가해주세요:\n\n")
	for i, c := range s.criteria {
		fmt.Fprintf(&b, "%d. %s\n", i+1, c)
	}
	b.WriteString("\n**반드시 사용자 피드백의 내용을 검토 결과에 직접 언급하면서 5-7문장 이상으로 작성해주세요.**")
	return b.String()
}

// upstreamSection renders the stage 2-5 outputs for the synthesis prompts.
func upstreamSection(upstream map[string]string, budget int) string {
	sections := []struct {
		label string
		key   string
	}{
		{"목표 검토", KeyObjectiveReview},
		{"데이터 분석", KeyDataAnalysis},
		{"리스크 분석", KeyRiskAnalysis},
		{"ROI 추정", KeyROIEstimation},
	}
	var b strings.Builder
	for _, s := range sections {
		fmt.Fprintf(&b, "%s:\n%s\n\n", s.label, truncateForPrompt(upstream[s.key], budget))
	}
	return strings.TrimRight(b.String(), "\n")
}

// feedbackNames labels checkpoint stages in the synthesis prompts.
var feedbackNames = map[int]string{
	NumObjective: "목표 검토",
	NumData:      "데이터 분석",
	NumRisk:      "리스크 분석",
	NumROI:       "ROI 추정",
	NumFinal:     "최종 의견",
}

// userFeedbackSection renders accumulated checkpoint feedback, or an empty
// string when there is none.
func userFeedbackSection(feedbacks map[string]string) string {
	if len(feedbacks) == 0 {
		return ""
	}
	var lines []string
	for num := NumObjective; num <= NumFinal; num++ {
		key := fmt.Sprintf("%d", num)
		if fb := strings.TrimSpace(feedbacks[key]); fb != "" {
			lines = append(lines, fmt.Sprintf("- %s: %s", feedbackNames[num], fb))
		}
	}
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n\n**사용자가 제공한 중요 정보 (필수 반영):**\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n**중요:** 위 사용자 피드백의 모든 내용을 최종 의견에 **구체적으로 반영**해주세요.\n")
	b.WriteString("특히 예산, 인력, 기간, 기술 역량 등 구체적인 정보가 있다면 명시적으로 포함해주세요.")
	return b.String()
}
