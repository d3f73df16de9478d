package stage

import (
	"context"
	"fmt"
	"strings"
)

// qualityMinLength is the heuristic floor used when the quality LLM call
// fails: shorter results get one canned issue, longer ones pass clean.
const qualityMinLength = 200

// cannedQualityIssue is reported by the heuristic fallback for short results.
const cannedQualityIssue = "분석 결과가 너무 짧고 구체적인 근거가 부족합니다"

// QualityCheck annotates a stage result for the interrupt event. It is
// advisory only: the pipeline never auto-rejects a result, it surfaces the
// issues and lets the user decide.
type QualityCheck struct {
	Issues     []string `json:"issues"`
	Suggestion string   `json:"suggestion"`
}

// suggestionGuides steer the feedback template toward each stage's
// specialty. Keyed by agent name.
var suggestionGuides = map[string]string{
	NameObjective: `피드백 예시 형식:
**[목표 명확화]**
- 프로젝트 목표: [고객 문의 응답 시간을 현재 [10]분에서 [2]분으로 단축]
- 핵심 성과 지표(KPI): [응답 시간 [80]% 단축, 고객 만족도 [95]점 이상 달성]
- 성공 측정 방법: [매월 [응답 시간 통계] 및 [고객 만족도 설문] 분석]
**[목적 정렬성]**
- 업무 목적: [고객 서비스 품질 향상]을 통한 [고객 이탈률 [20]% 감소]
- 조직 전략과의 연계: [디지털 전환 전략]의 일환으로 [고객 경험 개선] 목표 달성`,

	NameData: `피드백 예시 형식:
**[데이터 규모 및 소스]**
- 학습 데이터: [고객 문의 [10만]건, [2020-2024]년 [5]개년 데이터]
- 데이터 소스: [고객센터 CRM 시스템], [이메일 문의 [5만]건]
**[데이터 품질 관리]**
- 품질 기준: 정확도 [95]% 이상, 결측치 [5]% 미만
- 전처리 계획: [개인정보 마스킹], [특수문자 정규화], [불용어 제거]`,

	NameRisk: `피드백 예시 형식:
**[기술 리스크 대응]**
- 리스크: [AI 모델 정확도가 목표 [90]%에 미달할 가능성 [30]%]
- 완화 방안: [사전 학습 모델(BERT) 활용으로 기본 정확도 [85]% 확보]
**[일정 리스크]**
- 리스크: [핵심 개발자 [2]명 이탈 시 일정 [3]개월 지연]
- 완화 방안: [기술 문서화 [100]%], [백업 인력 [3]명 사전 교육]`,

	NameROI: `피드백 예시 형식:
**[투자 비용 상세]**
- 개발 비용: [인건비 [5]명 × [6]개월 × [월 [800]만원] = [2.4]억원]
- 총 투자액: [3.62]억원
**[기대 효과 산출]**
- 인건비 절감: [상담사 [3]명 × [연봉 [4000]만원] = 연 [1.2]억원 절감]
**[ROI 계산]**
- ROI: [55]%, 투자 회수 기간 [1.8]년`,

	NameFinal: `피드백 예시 형식:
**[프로젝트 목표 및 범위]**
- 목표: [고객 문의 자동응답률 [70]%] 달성으로 [응답 시간 [80]% 단축]
- 기간: [6]개월 ([기획 1개월] + [개발 4개월] + [안정화 1개월])
**[투자 대비 효과]**
- 총 투자: [3.62]억원, 연간 효과: [2.5]억원
- ROI: [55]%, 회수 기간 [1.8]년`,
}

// AssessQuality evaluates a stage result and drafts a ready-to-edit feedback
// suggestion for the interrupt event. Never returns an error: on any failure
// a length heuristic stands in so the pipeline keeps moving.
func AssessQuality(ctx context.Context, client LLMClient, agentName, result, proposal string) QualityCheck {
	prompt := buildQualityPrompt(agentName, result, proposal)

	response, err := client.Complete(ctx, prompt, Input{}.llmOptions())
	if err != nil {
		return heuristicQuality(result)
	}

	var check QualityCheck
	if err := decodeJSONObject(response, &check); err != nil {
		return heuristicQuality(result)
	}
	if check.Issues == nil {
		check.Issues = []string{}
	}
	return check
}

func buildQualityPrompt(agentName, result, proposal string) string {
	var b strings.Builder
	b.WriteString("당신은 AI 검토 프로세스의 품질 관리 orchestrator입니다.\n")
	fmt.Fprintf(&b, "%s가 다음과 같은 분석 결과를 제출했습니다.\n\n", agentName)
	fmt.Fprintf(&b, "제안서 내용:\n%s\n\n", truncateForPrompt(proposal, 500))
	fmt.Fprintf(&b, "%s의 분석 결과:\n%s\n\n", agentName, result)
	b.WriteString(`위 분석 결과를 평가해주세요.

**issues에 포함할 문제점:**
- 분석 내용이 너무 짧거나 추상적인 경우 (2-3문장 미만)
- 구체적인 근거나 데이터가 부족한 경우
- 핵심 질문에 대한 답변이 불충분한 경우
- "평가 필요", "추가 검토 필요" 등 모호한 표현만 있는 경우
- 제안서 내용을 제대로 반영하지 않은 경우
문제가 없으면 issues는 빈 배열로 두세요.

**suggestion 작성 요령:**
제안서 작성자가 그대로 복사해서 피드백 입력란에 붙여넣고 []로 표시된 숫자나 단어만
수정하여 바로 제출할 수 있는 구체적인 피드백 예시를 작성하세요.
`)
	if guide := suggestionGuides[agentName]; guide != "" {
		b.WriteString("\n" + guide + "\n")
	}
	b.WriteString(`
반드시 다음 JSON 형식으로만 응답하세요 (설명 없이 JSON만):
{"issues": ["문제점1", "문제점2"], "suggestion": "구체적인 피드백 예시"}`)
	return b.String()
}

func heuristicQuality(result string) QualityCheck {
	if len([]rune(strings.TrimSpace(result))) >= qualityMinLength {
		return QualityCheck{Issues: []string{}}
	}
	return QualityCheck{Issues: []string{cannedQualityIssue}}
}
