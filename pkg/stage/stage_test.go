package stage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koreview/revu/pkg/llm"
	"github.com/koreview/revu/pkg/models"
)

// fakeLLM returns scripted responses and records prompts.
type fakeLLM struct {
	responses []string
	err       error
	prompts   []string
}

func (f *fakeLLM) Complete(_ context.Context, prompt string, _ llm.Options) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", errors.New("no scripted response")
	}
	resp := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return resp, nil
}

func testInput() Input {
	return Input{
		Segment:  models.Segment{ID: "1", Title: "AI 챗봇 도입", Content: "고객 문의 자동화를 위한 AI 챗봇 도입 제안"},
		Domain:   "고객서비스",
		Division: "CS사업부",
		Upstream: map[string]string{},
	}
}

func TestTruncateForPrompt(t *testing.T) {
	assert.Equal(t, "abc", truncateForPrompt("  abc  ", 10))

	long := strings.Repeat("가", 900)
	out := truncateForPrompt(long, 800)
	assert.True(t, strings.HasSuffix(out, "..."))
	assert.Equal(t, 803, len([]rune(out)))
}

func TestReviewStage_InitialPrompt(t *testing.T) {
	client := &fakeLLM{responses: []string{"목표가 명확합니다."}}
	in := testInput()
	in.BPCases = []models.BPCase{{Title: "유사 사례 A", BusinessDomain: "고객서비스", Division: "CS사업부", Summary: "요약"}}

	result, err := ReviewStages[0].Run(context.Background(), Effects{LLM: client}, in)
	require.NoError(t, err)
	assert.Equal(t, "목표가 명확합니다.", result)

	require.Len(t, client.prompts, 1)
	prompt := client.prompts[0]
	assert.Contains(t, prompt, "목표 적합성")
	assert.Contains(t, prompt, in.Segment.Content)
	assert.Contains(t, prompt, "유사 사례 A")
}

func TestReviewStage_FeedbackRetryPrompt(t *testing.T) {
	client := &fakeLLM{responses: []string{"재검토 결과"}}
	in := testInput()
	in.UserFeedback = "예산은 3억원입니다"
	in.Upstream[KeyObjectiveReview] = "이전 결과"

	_, err := ReviewStages[0].Run(context.Background(), Effects{LLM: client}, in)
	require.NoError(t, err)

	prompt := client.prompts[0]
	assert.Contains(t, prompt, "예산은 3억원입니다")
	assert.Contains(t, prompt, "이전 결과")
	assert.Contains(t, prompt, "반드시 반영")
}

func TestReviewStages_CoverAllFourAnalyses(t *testing.T) {
	require.Len(t, ReviewStages, 4)
	assert.Equal(t, NameObjective, ReviewStages[0].Name)
	assert.Equal(t, NameData, ReviewStages[1].Name)
	assert.Equal(t, NameRisk, ReviewStages[2].Name)
	assert.Equal(t, NameROI, ReviewStages[3].Name)
}

func TestClassifyFinalDecision(t *testing.T) {
	tests := []struct {
		name         string
		response     string
		err          error
		wantDecision string
	}{
		{
			name:         "approved",
			response:     `{"decision": "승인", "reason": "ROI가 충분함"}`,
			wantDecision: models.DecisionApproved,
		},
		{
			name:         "on hold",
			response:     `{"decision": "보류", "reason": "리스크가 큼"}`,
			wantDecision: models.DecisionOnHold,
		},
		{
			name:         "fenced json",
			response:     "```json\n{\"decision\": \"승인\", \"reason\": \"ok\"}\n```",
			wantDecision: models.DecisionApproved,
		},
		{
			name:         "unexpected value defaults to on hold",
			response:     `{"decision": "maybe", "reason": "?"}`,
			wantDecision: models.DecisionOnHold,
		},
		{
			name:         "garbage defaults to on hold",
			response:     "not json at all",
			wantDecision: models.DecisionOnHold,
		},
		{
			name:         "llm error defaults to on hold",
			err:          errors.New("gateway down"),
			wantDecision: models.DecisionOnHold,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeLLM{responses: []string{tt.response}, err: tt.err}
			decision, reason := ClassifyFinalDecision(context.Background(), client, "report", "recommendation")
			assert.Equal(t, tt.wantDecision, decision)
			assert.NotEmpty(t, reason)
		})
	}
}

func TestAssessQuality_ParsesResponse(t *testing.T) {
	client := &fakeLLM{responses: []string{`{"issues": ["근거 부족"], "suggestion": "예산은 [3]억원입니다"}`}}

	check := AssessQuality(context.Background(), client, NameObjective, "짧은 결과", "제안서")
	assert.Equal(t, []string{"근거 부족"}, check.Issues)
	assert.Equal(t, "예산은 [3]억원입니다", check.Suggestion)
}

func TestAssessQuality_HeuristicFallback(t *testing.T) {
	client := &fakeLLM{err: errors.New("gateway down")}

	short := AssessQuality(context.Background(), client, NameObjective, "짧음", "제안서")
	require.Len(t, short.Issues, 1)

	long := AssessQuality(context.Background(), client, NameObjective, strings.Repeat("상세한 분석 ", 50), "제안서")
	assert.Empty(t, long.Issues)
}

func TestGenerateTitle(t *testing.T) {
	t.Run("uses llm title", func(t *testing.T) {
		client := &fakeLLM{responses: []string{`{"title": "AI 챗봇 도입 제안"}`}}
		title := GenerateTitle(context.Background(), client, "본문", "fallback")
		assert.Equal(t, "AI 챗봇 도입 제안", title)
	})

	t.Run("falls back to first line on error", func(t *testing.T) {
		client := &fakeLLM{err: errors.New("gateway down")}
		title := GenerateTitle(context.Background(), client, "\n\n첫 번째 줄\n두 번째 줄", "fallback")
		assert.Equal(t, "첫 번째 줄", title)
	})

	t.Run("uses fallback when content empty", func(t *testing.T) {
		client := &fakeLLM{err: errors.New("gateway down")}
		title := GenerateTitle(context.Background(), client, "", "제안서.docx")
		assert.Equal(t, "제안서.docx", title)
	})

	t.Run("clamps wide titles", func(t *testing.T) {
		client := &fakeLLM{responses: []string{`{"title": "` + strings.Repeat("가", 40) + `"}`}}
		title := GenerateTitle(context.Background(), client, "본문", "fallback")
		// 40 Hangul glyphs are 80 columns; the clamp keeps it at 50.
		assert.LessOrEqual(t, len([]rune(title)), 26)
	})
}

func TestBuildReport(t *testing.T) {
	in := testInput()
	in.BPCases = []models.BPCase{{Title: "사례 <A>", Summary: "요약", Link: "https://wiki/bp/1"}}
	in.Upstream = map[string]string{
		KeyObjectiveReview: "목표 평가",
		KeyDataAnalysis:    "데이터 평가",
		KeyRiskAnalysis:    "리스크 평가",
		KeyROIEstimation:   "ROI 평가",
	}

	report := BuildReport(in, "최종 의견 본문")

	assert.Contains(t, report, "검토 보고서")
	assert.Contains(t, report, "사례 &lt;A&gt;", "case fields must be escaped")
	assert.Contains(t, report, "https://wiki/bp/1")
	for _, section := range []string{"목표 평가", "데이터 평가", "리스크 평가", "ROI 평가", "최종 의견 본문"} {
		assert.Contains(t, report, section)
	}
	assert.Contains(t, report, `id="section6"`)
}

func TestBuildReport_NoCases(t *testing.T) {
	in := testInput()
	report := BuildReport(in, "의견")
	assert.Contains(t, report, "검색된 사례 없음")
}

func TestDecodeJSONObject(t *testing.T) {
	var out map[string]any

	require.NoError(t, decodeJSONObject(`{"a": 1}`, &out))
	require.NoError(t, decodeJSONObject("설명입니다.\n```json\n{\"a\": 1}\n```", &out))
	require.NoError(t, decodeJSONObject(`답변: {"a": 1} 입니다`, &out))
	assert.Error(t, decodeJSONObject("no json here", &out))
	assert.Error(t, decodeJSONObject("", &out))
}
