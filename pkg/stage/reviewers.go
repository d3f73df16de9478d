package stage

import (
	"context"
	"fmt"
)

// ReviewStage is one of the four analysis stages (2 through 5). They share
// the same execution shape and differ only in their prompt material.
type ReviewStage struct {
	Num       int
	Name      string
	ResultKey string

	// Progress messages shown next to stage_status events.
	StartMessage string
	DoneMessage  string

	role          string
	task          string
	criteriaIntro string
	criteria      []string
	lengthHint    string

	// useToolSearch lets the gateway consult its search tool while
	// answering. Only the data stage benefits; the others reason over
	// the proposal text alone.
	useToolSearch bool
}

// ReviewStages lists stages 2 through 5 in execution order.
var ReviewStages = []ReviewStage{
	{
		Num:          NumObjective,
		Name:         NameObjective,
		ResultKey:    KeyObjectiveReview,
		StartMessage: "목표 적합성 검토 중...",
		DoneMessage:  "목표 검토 완료",
		role:         "당신은 기업의 AI 과제 제안서를 검토하는 전문가입니다.",
		task:         "다음 제안서의 목표 적합성을 검토하고 평가해주세요:",
		criteriaIntro: "다음 항목을 평가하고 짧게 요약해주세요:",
		criteria: []string{
			"목표의 명확성",
			"조직 전략과의 정렬성",
			"실현 가능성",
		},
		lengthHint: "간결하게 2-3문장으로 평가 결과를 작성해주세요.",
	},
	{
		Num:          NumData,
		Name:         NameData,
		ResultKey:    KeyDataAnalysis,
		StartMessage: "데이터 분석 중...",
		DoneMessage:  "데이터 분석 완료",
		role:         "당신은 AI 프로젝트의 데이터 분석 전문가입니다.",
		task:         "다음 제안서에 대한 데이터 분석을 수행해주세요:",
		criteriaIntro: "다음 항목을 평가하고 짧게 요약해주세요:",
		criteria: []string{
			"데이터 확보 가능성",
			"데이터 품질 예상",
			"데이터 접근성",
		},
		lengthHint:    "간결하게 2-3문장으로 평가 결과를 작성해주세요.",
		useToolSearch: true,
	},
	{
		Num:          NumRisk,
		Name:         NameRisk,
		ResultKey:    KeyRiskAnalysis,
		StartMessage: "리스크 분석 중...",
		DoneMessage:  "리스크 분석 완료",
		role:         "당신은 AI 프로젝트의 리스크 분석 전문가입니다.",
		task:         "다음 제안서에 대한 리스크 분석을 수행해주세요:",
		criteriaIntro: "다음 리스크를 평가하고 각각 짧게 요약해주세요:",
		criteria: []string{
			"기술적 리스크",
			"일정 리스크",
			"인력 리스크",
		},
		lengthHint: "각 항목마다 1-2문장으로 평가 결과를 작성해주세요.",
	},
	{
		Num:          NumROI,
		Name:         NameROI,
		ResultKey:    KeyROIEstimation,
		StartMessage: "ROI 추정 중...",
		DoneMessage:  "ROI 추정 완료",
		role:         "당신은 AI 프로젝트의 ROI(투자 수익률) 분석 전문가입니다.",
		task:         "다음 제안서에 대한 ROI를 추정해주세요:",
		criteriaIntro: "다음 항목을 평가하고 짧게 요약해주세요:",
		criteria: []string{
			"예상 효과 (비용 절감, 생산성 향상 등)",
			"투자 대비 효과 (ROI 퍼센티지, 손익분기점)",
		},
		lengthHint: "간결하게 2-3문장으로 평가 결과를 작성해주세요.",
	},
}

// Run executes the stage once. When in.UserFeedback is set the rerun prompt
// is used so the feedback is reflected in the regenerated text.
func (s ReviewStage) Run(ctx context.Context, eff Effects, in Input) (string, error) {
	var prompt string
	if in.UserFeedback != "" {
		prompt = buildFeedbackRetryPrompt(s, in, in.Upstream[s.ResultKey])
	} else {
		prompt = buildReviewPrompt(s, in)
	}

	opts := in.llmOptions()
	opts.UseToolSearch = s.useToolSearch

	text, err := eff.LLM.Complete(ctx, prompt, opts)
	if err != nil {
		return "", fmt.Errorf("%s failed: %w", s.Name, err)
	}
	return text, nil
}
