package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMergeMetadata(t *testing.T) {
	t.Run("agent results merge key-wise with patch winning", func(t *testing.T) {
		old := Metadata{AgentResults: map[string]string{
			"BP_Scouter":         "이전 사례 분석",
			"Objective_Reviewer": "이전 목표 평가",
		}}
		patch := Metadata{AgentResults: map[string]string{
			"Objective_Reviewer": "수정된 목표 평가",
			"Data_Analyzer":      "데이터 분석",
		}}

		out := MergeMetadata(old, patch)

		assert.Equal(t, "이전 사례 분석", out.AgentResults["BP_Scouter"])
		assert.Equal(t, "수정된 목표 평가", out.AgentResults["Objective_Reviewer"])
		assert.Equal(t, "데이터 분석", out.AgentResults["Data_Analyzer"])
	})

	t.Run("zero-valued patch fields leave old values alone", func(t *testing.T) {
		old := Metadata{
			Report:        "<h1>보고서</h1>",
			FinalDecision: &FinalDecision{Decision: DecisionApproved, Reason: "근거 충분"},
			HITLStages:    []int{2, 4},
		}

		out := MergeMetadata(old, Metadata{})

		assert.Equal(t, old.Report, out.Report)
		assert.Equal(t, old.FinalDecision, out.FinalDecision)
		assert.Equal(t, old.HITLStages, out.HITLStages)
	})

	t.Run("top-level fields overwrite", func(t *testing.T) {
		old := Metadata{
			Report:  "이전 보고서",
			BPCases: []BPCase{{Title: "예전 사례"}},
		}
		patch := Metadata{
			Report:  "새 보고서",
			BPCases: []BPCase{{Title: "새 사례"}, {Title: "추가 사례"}},
		}

		out := MergeMetadata(old, patch)

		assert.Equal(t, "새 보고서", out.Report)
		assert.Len(t, out.BPCases, 2)
	})

	t.Run("idempotent for equal patches", func(t *testing.T) {
		old := Metadata{AgentResults: map[string]string{"BP_Scouter": "결과"}}
		patch := Metadata{
			AgentResults:    map[string]string{"Data_Analyzer": "분석"},
			Report:          "보고서",
			UserFeedbacks:   map[string]string{"2": "보완 요청"},
			FeedbackHistory: []FeedbackEntry{{Timestamp: time.Now().UTC(), Stage: 2, Feedback: "보완 요청"}},
		}

		once := MergeMetadata(old, patch)
		twice := MergeMetadata(once, patch)

		assert.Equal(t, once, twice)
	})

	t.Run("does not mutate the old map", func(t *testing.T) {
		old := Metadata{AgentResults: map[string]string{"BP_Scouter": "결과"}}
		_ = MergeMetadata(old, Metadata{AgentResults: map[string]string{"Data_Analyzer": "분석"}})

		_, leaked := old.AgentResults["Data_Analyzer"]
		assert.False(t, leaked)
	})
}

func TestJobReviewSegments(t *testing.T) {
	t.Run("explicit segments are returned as-is", func(t *testing.T) {
		job := &Job{Segments: []Segment{{ID: "A"}, {ID: "B"}}}
		segs := job.ReviewSegments()
		assert.Len(t, segs, 2)
	})

	t.Run("plain submissions review as a single segment", func(t *testing.T) {
		job := &Job{Title: "제안", ProposalContent: "본문"}
		segs := job.ReviewSegments()
		assert.Len(t, segs, 1)
		assert.Equal(t, "1", segs[0].ID)
		assert.Equal(t, "본문", segs[0].Content)
	})
}

func TestJobHITLEnabled(t *testing.T) {
	job := &Job{HITLStages: []int{2, 5}}
	assert.True(t, job.HITLEnabled(2))
	assert.True(t, job.HITLEnabled(5))
	assert.False(t, job.HITLEnabled(3))

	none := &Job{}
	assert.False(t, none.HITLEnabled(2))
}
