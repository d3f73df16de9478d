// Package models contains the domain types shared between the HTTP API,
// the review orchestrator, and the persistence layer.
package models

import "time"

// Decision values for both human_decision and llm_decision.
const (
	DecisionPending  = "pending"
	DecisionApproved = "approved"
	DecisionOnHold   = "on-hold"
)

// Status values written during a review. The dashboard treats status as an
// opaque string; these are the ones the orchestrator produces.
const (
	StatusPending         = "pending"
	StatusProcessing      = "processing"
	StatusBPDone          = "bp_done"
	StatusObjectiveDone   = "objective_done"
	StatusDataDone        = "data_done"
	StatusRiskDone        = "risk_done"
	StatusROIDone         = "roi_done"
	StatusWaitingFeedback = "waiting_feedback"
	StatusCompleted       = "completed"
	StatusError           = "error"
)

// Segment is one independently reviewable unit of a submission. A plain
// text or file submission produces a single segment; a page-reference
// submission produces one segment per fetched page.
type Segment struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Job is a snapshot of a review job. The orchestrator and the stage
// library operate on this type only; the ent entity is converted at the
// service boundary.
type Job struct {
	ID                       int       `json:"id"`
	Title                    string    `json:"title"`
	Domain                   string    `json:"domain"`
	Division                 string    `json:"division"`
	ProposalContent          string    `json:"proposal_content"`
	Segments                 []Segment `json:"segments,omitempty"`
	HITLStages               []int     `json:"hitl_stages"`
	Status                   string    `json:"status"`
	HumanDecision            string    `json:"human_decision"`
	LLMDecision              string    `json:"llm_decision"`
	Metadata                 Metadata  `json:"metadata"`
	SourcePageID             string    `json:"source_page_id,omitempty"`
	SourcePageURL            string    `json:"source_page_url,omitempty"`
	EnableSequentialThinking bool      `json:"enable_sequential_thinking"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// HITLEnabled reports whether the orchestrator must pause for human
// feedback after the given stage number.
func (j *Job) HITLEnabled(stage int) bool {
	for _, s := range j.HITLStages {
		if s == stage {
			return true
		}
	}
	return false
}

// Terminal reports whether the job has finished, successfully or not.
func (j *Job) Terminal() bool {
	return j.Status == StatusCompleted || j.Status == StatusError
}

// ReviewSegments returns the units the orchestrator iterates over. Jobs
// submitted without explicit segments are reviewed as a single segment
// covering the whole proposal.
func (j *Job) ReviewSegments() []Segment {
	if len(j.Segments) > 0 {
		return j.Segments
	}
	return []Segment{{
		ID:      "1",
		Title:   j.Title,
		Content: j.ProposalContent,
	}}
}

// CreateJobInput carries the fields for a new job record.
type CreateJobInput struct {
	Title                    string
	Domain                   string
	Division                 string
	ProposalContent          string
	Segments                 []Segment
	HITLStages               []int
	Status                   string
	HumanDecision            string
	LLMDecision              string
	Metadata                 Metadata
	SourcePageID             string
	SourcePageURL            string
	EnableSequentialThinking bool
}

// JobPatch is a field-level patch for UpdateJob. Nil pointers leave the
// field untouched; scalar fields overwrite; Metadata is deep-merged per
// MergeMetadata.
type JobPatch struct {
	Title           *string
	ProposalContent *string
	Domain          *string
	Division        *string
	Status          *string
	HumanDecision   *string
	LLMDecision     *string
	HITLStages      *[]int
	Metadata        *Metadata
}

// IsEmpty reports whether the patch would change nothing.
func (p *JobPatch) IsEmpty() bool {
	return p.Title == nil && p.ProposalContent == nil && p.Domain == nil &&
		p.Division == nil && p.Status == nil && p.HumanDecision == nil &&
		p.LLMDecision == nil && p.HITLStages == nil && p.Metadata == nil
}

// JobFilter selects jobs for the dashboard list endpoint.
type JobFilter struct {
	Status        string
	HumanDecision string
	LLMDecision   string
	Search        string // substring match over title and proposal content
	Limit         int
	Offset        int
	OrderAsc      bool
}
