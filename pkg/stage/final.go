package stage

import (
	"context"
	"fmt"
	"html"
	"strings"
)

// FinalResult is the synthesis stage's full output for one segment.
type FinalResult struct {
	Recommendation string
	Report         string
	Decision       string // models.DecisionApproved or models.DecisionOnHold
	Reason         string
}

// RunFinalRecommendation produces the final opinion text from the proposal
// and all upstream analyses. Checkpoint feedback accumulated on earlier
// stages is folded in so the synthesis reflects what the user corrected.
func RunFinalRecommendation(ctx context.Context, eff Effects, in Input, feedbacks map[string]string) (string, error) {
	var prompt string
	if in.UserFeedback != "" {
		prompt = buildFinalRetryPrompt(in)
	} else {
		prompt = buildFinalPrompt(in, feedbacks)
	}

	text, err := eff.LLM.Complete(ctx, prompt, in.llmOptions())
	if err != nil {
		return "", fmt.Errorf("%s failed: %w", NameFinal, err)
	}
	return text, nil
}

func buildFinalPrompt(in Input, feedbacks map[string]string) string {
	var b strings.Builder
	b.WriteString("당신은 AI 프로젝트 검토 전문가입니다.\n")
	b.WriteString("다음 제안서와 분석 결과를 바탕으로 최종 의견을 작성해주세요:\n\n")
	fmt.Fprintf(&b, "제안서 내용:\n%s\n\n", truncateForPrompt(in.Proposal(), promptCharBudget))
	b.WriteString(upstreamSection(in.Upstream, promptCharBudget))
	b.WriteString(userFeedbackSection(feedbacks))
	b.WriteString("\n\n다음을 포함한 최종 의견을 작성해주세요:\n")
	b.WriteString("1. 승인 또는 보류 권장 (명확하게)\n")
	b.WriteString("2. 주요 근거 (3-4가지)\n")
	b.WriteString("3. 권장사항 (2-3가지)\n\n")
	b.WriteString("간결하게 5-7문장으로 작성해주세요.")
	return b.String()
}

func buildFinalRetryPrompt(in Input) string {
	var b strings.Builder
	b.WriteString("당신은 AI 프로젝트 검토 전문가입니다.\n")
	b.WriteString("사용자가 중요한 피드백을 제공했습니다. 이 피드백을 **반드시 반영**하여 최종 의견을 다시 작성해주세요.\n\n")
	fmt.Fprintf(&b, "제안서 내용:\n%s\n\n", truncateForPrompt(in.Proposal(), promptCharBudget))
	b.WriteString(upstreamSection(in.Upstream, promptCharBudget))
	fmt.Fprintf(&b, "\n\n이전 최종 의견:\n%s\n\n", truncateForPrompt(in.Upstream[KeyFinalRecommendation], promptCharBudget))
	fmt.Fprintf(&b, "**사용자 피드백 (필수 반영):**\n%s\n\n", in.UserFeedback)
	b.WriteString("**중요:** 위 사용자 피드백의 내용을 최종 의견에 **구체적으로 반영**해주세요.\n")
	b.WriteString("사용자가 제공한 모든 정보(예: 예산, 인력, 기간, 기술 역량 등)를 명시적으로 언급하고,\n")
	b.WriteString("이를 바탕으로 다음을 포함한 최종 의견을 작성해주세요:\n\n")
	b.WriteString("1. 승인/보류 권장 (사용자 피드백을 고려한 명확한 결정)\n")
	b.WriteString("2. 주요 근거 (사용자 피드백의 정보를 구체적으로 인용하여 3-4가지)\n")
	b.WriteString("3. 실행 권장사항 (사용자가 제공한 정보를 반영한 구체적인 제안 2-3가지)\n\n")
	b.WriteString("**반드시 사용자 피드백의 내용을 최종 의견에 직접 언급하면서 7-10문장 이상으로 작성해주세요.**")
	return b.String()
}

// BuildReport assembles the accordion review report for one segment.
// Stage texts are embedded as markdown payloads rendered client-side;
// BP case fields come from external systems and are escaped.
func BuildReport(in Input, recommendation string) string {
	var b strings.Builder
	b.WriteString(`<div style="padding: 20px;">` + "\n")
	b.WriteString("<h2>📊 AI 과제 지원서 검토 보고서</h2>\n<hr/>\n")

	// Section 1: BP cases
	b.WriteString(accordionHeader("section1", fmt.Sprintf("1. BP 사례 분석 (%d건)", len(in.BPCases))))
	b.WriteString(`<div id="section1" class="accordion-content">` + "\n")
	if len(in.BPCases) == 0 {
		b.WriteString("<p>검색된 사례 없음</p>\n")
	} else {
		b.WriteString("<p><strong>유사 사례:</strong></p>\n")
		for i, c := range in.BPCases {
			title := html.EscapeString(c.Title)
			b.WriteString(`<div style="background: #f8f9fa; padding: 12px; margin: 10px 0; border-left: 3px solid #007bff; border-radius: 4px;">` + "\n")
			if c.Link != "" {
				fmt.Fprintf(&b, `<h4 style="margin: 0 0 8px 0; color: #007bff;">%d. <a href="%s" target="_blank">%s 🔗</a></h4>`+"\n",
					i+1, html.EscapeString(c.Link), title)
			} else {
				fmt.Fprintf(&b, `<h4 style="margin: 0 0 8px 0; color: #007bff;">%d. %s</h4>`+"\n", i+1, title)
			}
			fmt.Fprintf(&b, "<p><strong>기술 유형:</strong> %s</p>\n", html.EscapeString(c.TechType))
			fmt.Fprintf(&b, "<p><strong>도메인:</strong> %s | <strong>사업부:</strong> %s</p>\n",
				html.EscapeString(c.BusinessDomain), html.EscapeString(c.Division))
			fmt.Fprintf(&b, "<p><strong>문제 (AS-IS):</strong> %s</p>\n", html.EscapeString(c.ProblemAsWas))
			fmt.Fprintf(&b, "<p><strong>솔루션 (TO-BE):</strong> %s</p>\n", html.EscapeString(c.SolutionToBe))
			fmt.Fprintf(&b, `<p style="background: #fff3cd; padding: 8px; border-radius: 3px;"><strong>💎 핵심 요약:</strong> %s</p>`+"\n",
				html.EscapeString(c.Summary))
			if c.Tips != "" {
				fmt.Fprintf(&b, `<p style="background: #d1ecf1; padding: 8px; border-radius: 3px;"><strong>💡 팁:</strong> %s</p>`+"\n",
					html.EscapeString(c.Tips))
			}
			b.WriteString("</div>\n")
		}
		fmt.Fprintf(&b, "<p style=\"margin-top: 15px;\"><em>총 %d건의 유사 사례가 발견되었습니다.</em></p>\n", len(in.BPCases))
	}
	b.WriteString("</div>\n</div>\n")

	// Sections 2-5: stage analyses
	sections := []struct {
		id    string
		label string
		key   string
	}{
		{"section2", "2. 목표 적합성", KeyObjectiveReview},
		{"section3", "3. 데이터 분석", KeyDataAnalysis},
		{"section4", "4. 리스크 분석", KeyRiskAnalysis},
		{"section5", "5. ROI 추정", KeyROIEstimation},
	}
	for _, s := range sections {
		b.WriteString(accordionHeader(s.id, s.label))
		fmt.Fprintf(&b, `<div id="%s" class="accordion-content">`+"\n", s.id)
		fmt.Fprintf(&b, `<div class="markdown-content" data-markdown>%s</div>`+"\n", in.Upstream[s.key])
		b.WriteString("</div>\n</div>\n")
	}

	// Section 6: final opinion, expanded by default
	b.WriteString(accordionHeader("section6", "6. 최종 의견"))
	b.WriteString(`<div id="section6" class="accordion-content" style="display: block;">` + "\n")
	fmt.Fprintf(&b, `<div class="markdown-content" data-markdown>%s</div>`+"\n", recommendation)
	b.WriteString("</div>\n</div>\n")

	b.WriteString("</div>")
	return b.String()
}

func accordionHeader(id, label string) string {
	return fmt.Sprintf(`<div class="accordion-item">
<div class="accordion-header" onclick="toggleAccordion('%s')">
<span>%s</span>
<span class="accordion-icon">▼</span>
</div>
`, id, label)
}
