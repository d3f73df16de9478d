package stage

import (
	"context"
	"fmt"
	"strings"
)

// RunProposalImprover rewrites the proposal incorporating every analysis and
// all checkpoint feedback. Runs after the final report; the caller treats a
// failure as non-fatal since the review itself is already complete.
func RunProposalImprover(ctx context.Context, eff Effects, in Input, feedbacks map[string]string) (string, error) {
	var b strings.Builder
	b.WriteString("당신은 AI 과제 지원서 작성 전문가입니다.\n")
	b.WriteString("다음 원본 지원서와 검토 결과를 바탕으로 개선된 지원서를 작성해주세요.\n\n")
	fmt.Fprintf(&b, "**원본 지원서:**\n%s\n\n", truncateForPrompt(in.Proposal(), promptCharBudget))
	b.WriteString("**검토 결과:**\n\n")
	b.WriteString(upstreamSection(in.Upstream, promptCharBudget))
	fmt.Fprintf(&b, "\n\n최종 의견:\n%s\n", truncateForPrompt(in.Upstream[KeyFinalRecommendation], promptCharBudget))

	if len(in.BPCases) > 0 {
		b.WriteString("\n참고 가능한 유사 사례:\n")
		limit := len(in.BPCases)
		if limit > 3 {
			limit = 3
		}
		for i, c := range in.BPCases[:limit] {
			fmt.Fprintf(&b, "%d. %s (%s/%s)\n", i+1, c.Title, c.BusinessDomain, c.Division)
		}
	}

	b.WriteString(userFeedbackSection(feedbacks))

	b.WriteString(`

**개선 방향:**
위 검토 결과에서 지적된 문제점들을 보완하고, 강점은 더욱 강화하여 개선된 지원서를 작성해주세요.
사용자 피드백에 포함된 구체적인 정보(예산, 인력, 기간 등)는 반드시 해당 섹션에 포함해주세요.

다음 구조로 개선된 지원서를 작성해주세요:

# 개선된 AI 과제 지원서

## 1. 과제 개요 및 목표
## 2. 기술적 접근 방법
## 3. 데이터 확보 및 활용 계획
## 4. 리스크 관리 계획
## 5. 기대 효과 및 ROI
## 6. 추진 일정 및 체계

**주의사항:**
- 검토에서 지적된 약점을 명확히 보완할 것
- 구체적인 수치와 근거를 포함할 것
- 실현 가능성을 높이는 방향으로 작성할 것
- 마크다운 형식으로 작성할 것
- 전체 분량은 800-1200자 정도로 작성할 것`)

	text, err := eff.LLM.Complete(ctx, b.String(), in.llmOptions())
	if err != nil {
		return "", fmt.Errorf("%s failed: %w", NameImprover, err)
	}
	return text, nil
}
