package events

import "github.com/koreview/revu/pkg/models"

// PageProgressPayload is the payload for page_progress events.
// Published when the pipeline starts working on a segment.
type PageProgressPayload struct {
	Type        string `json:"type"`         // always EventTypePageProgress
	JobID       int    `json:"job_id"`       // owning job
	Current     int    `json:"current"`      // 1-based segment index
	Total       int    `json:"total"`        // segment count
	Status      string `json:"status"`       // processing while a segment runs
	PageTitle   string `json:"page_title"`   // segment title
	ResetAgents bool   `json:"reset_agents"` // clients clear their stage panels before the segment starts
	Timestamp   string `json:"timestamp"`    // RFC3339Nano
}

// StageStatusPayload is the payload for stage_status events.
// Single event type for all stage transitions (started, completed, failed).
type StageStatusPayload struct {
	Type      string `json:"type"`              // always EventTypeStageStatus
	JobID     int    `json:"job_id"`            // owning job
	Agent     string `json:"agent"`             // stage name, e.g. "Objective_Reviewer"
	Status    string `json:"status"`            // processing, completed, failed
	Message   string `json:"message,omitempty"` // stage result summary or error text
	Timestamp string `json:"timestamp"`         // RFC3339Nano
}

// BPCasesPayload is the payload for bp_cases events.
// Published once per segment after similar-case retrieval.
type BPCasesPayload struct {
	Type      string          `json:"type"`   // always EventTypeBPCases
	JobID     int             `json:"job_id"` // owning job
	Records   []models.BPCase `json:"records"`
	Timestamp string          `json:"timestamp"` // RFC3339Nano
}

// InterruptPayload is the payload for interrupt events.
// Published when a stage reaches a feedback checkpoint and the pipeline
// suspends until the user responds (or the wait times out).
type InterruptPayload struct {
	Type               string            `json:"type"`   // always EventTypeInterrupt
	JobID              int               `json:"job_id"` // owning job
	Agent              string            `json:"agent"`  // stage awaiting feedback
	Results            map[string]string `json:"results"`
	FeedbackSuggestion string            `json:"feedback_suggestion,omitempty"`
	QualityIssues      []string          `json:"quality_issues,omitempty"`
	Attempt            int               `json:"attempt"`   // 0 for the initial run, grows per retry
	Timestamp          string            `json:"timestamp"` // RFC3339Nano
}

// PageCompletedPayload is the payload for page_completed events.
// Published when one segment's review pass finishes.
type PageCompletedPayload struct {
	Type      string `json:"type"`                 // always EventTypePageCompleted
	JobID     int    `json:"job_id"`               // owning job
	Current   int    `json:"current"`              // 1-based segment index
	Total     int    `json:"total"`                // segment count
	PageTitle string `json:"page_title"`           // segment title
	PageID    string `json:"page_id,omitempty"`    // segment id (wiki page id for page jobs)
	Report    string `json:"page_report"`          // segment HTML report
	Decision  string `json:"page_decision"`        // approved or on-hold
	Reason    string `json:"page_decision_reason"` // decision reason
	Timestamp string `json:"timestamp"`            // RFC3339Nano
}

// SegmentDecision is one segment's outcome inside a CompletedPayload.
type SegmentDecision struct {
	Title    string `json:"title"`
	Decision string `json:"decision"`
	Reason   string `json:"reason"`
}

// CompletedPayload is the terminal payload for completed events.
type CompletedPayload struct {
	Type           string            `json:"type"`     // always EventTypeCompleted
	JobID          int               `json:"job_id"`   // owning job
	Report         string            `json:"report"`   // combined HTML report
	Decision       string            `json:"decision"` // aggregate decision
	DecisionReason string            `json:"decision_reason"`
	Decisions      []SegmentDecision `json:"decisions,omitempty"` // per-segment outcomes for multi-segment jobs
	Timestamp      string            `json:"timestamp"`           // RFC3339Nano
}

// ErrorPayload is the terminal payload for error events.
type ErrorPayload struct {
	Type      string `json:"type"`      // always EventTypeError
	JobID     int    `json:"job_id"`    // owning job
	Message   string `json:"message"`   // failure description
	Timestamp string `json:"timestamp"` // RFC3339Nano
}
