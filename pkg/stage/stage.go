// Package stage implements the review pipeline's LLM stages.
//
// A stage is a pure function of its input snapshot plus an Effects bundle
// supplied by the orchestrator. Stages never call each other and never touch
// the database; the orchestrator owns sequencing, persistence, and events.
package stage

import (
	"context"

	"github.com/koreview/revu/pkg/llm"
	"github.com/koreview/revu/pkg/models"
	"github.com/koreview/revu/pkg/retrieval"
)

// Stage numbers. HITL checkpoint configuration refers to these.
const (
	NumBPScouter = 1
	NumObjective = 2
	NumData      = 3
	NumRisk      = 4
	NumROI       = 5
	NumFinal     = 6
	NumImprover  = 7
)

// Agent names as they appear in progress events.
const (
	NameBPScouter = "BP_Scouter"
	NameObjective = "Objective_Reviewer"
	NameData      = "Data_Analyzer"
	NameRisk      = "Risk_Analyzer"
	NameROI       = "ROI_Estimator"
	NameFinal     = "Final_Generator"
	NameImprover  = "Proposal_Improver"
)

// Result keys under metadata.agent_results.
const (
	KeyObjectiveReview     = "objective_review"
	KeyDataAnalysis        = "data_analysis"
	KeyRiskAnalysis        = "risk_analysis"
	KeyROIEstimation       = "roi_estimation"
	KeyFinalRecommendation = "final_recommendation"
	KeyImprovedProposal    = "improved_proposal"
)

// LLMClient is the completion surface stages depend on.
// Satisfied by llm.Client; tests substitute fakes.
type LLMClient interface {
	Complete(ctx context.Context, prompt string, opts llm.Options) (string, error)
}

// Effects bundles the external capabilities a stage may use.
type Effects struct {
	LLM       LLMClient
	Retrieval retrieval.Searcher
}

// Input is the snapshot a stage runs against. The orchestrator rebuilds it
// before every stage execution so reruns of an earlier stage are always
// visible downstream.
type Input struct {
	Segment  models.Segment
	Domain   string
	Division string

	// SequentialThinking asks the gateway for step-by-step reasoning.
	SequentialThinking bool

	// BPCases holds the scouting stage's output.
	BPCases []models.BPCase

	// Upstream maps result keys to the latest stage texts.
	Upstream map[string]string

	// UserFeedback is non-empty only while rerunning a stage after a
	// feedback checkpoint.
	UserFeedback string
}

// Proposal returns the segment text under review.
func (in Input) Proposal() string {
	return in.Segment.Content
}

func (in Input) llmOptions() llm.Options {
	return llm.Options{EnableSequentialThinking: in.SequentialThinking}
}
