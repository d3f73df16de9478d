package models

import "time"

// FinalDecision is the machine-inferred verdict written by the final
// synthesis stage.
type FinalDecision struct {
	Decision string `json:"decision"` // approved | on-hold
	Reason   string `json:"reason"`
}

// SegmentReport is the per-segment outcome of a multi-segment review.
type SegmentReport struct {
	Title    string `json:"title"`
	ID       string `json:"id"`
	Report   string `json:"report"`
	Decision string `json:"decision"`
	Reason   string `json:"reason"`
}

// FeedbackEntry records one published HITL feedback.
type FeedbackEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Stage     int       `json:"stage"`
	Feedback  string    `json:"feedback"`
	Skip      bool      `json:"skip"`
}

// Metadata is the structured bag attached to every job. It is stored as
// a single JSON column; the reserved keys below are the only ones the
// core reads or writes.
type Metadata struct {
	// AgentResults maps stage name to the latest output for the segment
	// currently under review. Later writes overwrite per name.
	AgentResults map[string]string `json:"agent_results,omitempty"`

	// BPCases holds the retrieval results of the current segment.
	BPCases []BPCase `json:"bp_cases,omitempty"`

	// FinalDecision and Report are written by the final stage.
	FinalDecision *FinalDecision `json:"final_decision,omitempty"`
	Report        string         `json:"report,omitempty"`

	// HITLStages echoes the submission configuration.
	HITLStages []int `json:"hitl_stages,omitempty"`

	// SegmentReports accumulates per-segment outcomes in segment order.
	SegmentReports []SegmentReport `json:"segment_reports,omitempty"`

	// UserFeedbacks maps stage number (as a string, for JSON stability)
	// to the most recent HITL feedback text for that stage.
	UserFeedbacks map[string]string `json:"user_feedbacks,omitempty"`

	// FeedbackHistory is the append-only log of published feedback.
	FeedbackHistory []FeedbackEntry `json:"feedback_history,omitempty"`
}

// MergeMetadata applies patch onto old and returns the result. Top-level
// keys overwrite (zero-valued patch fields are ignored) except
// AgentResults, which is merged key-wise with the patch winning per
// name. The operation is deterministic and idempotent for equal patches.
func MergeMetadata(old, patch Metadata) Metadata {
	out := old

	if patch.AgentResults != nil {
		merged := make(map[string]string, len(old.AgentResults)+len(patch.AgentResults))
		for k, v := range old.AgentResults {
			merged[k] = v
		}
		for k, v := range patch.AgentResults {
			merged[k] = v
		}
		out.AgentResults = merged
	}
	if patch.BPCases != nil {
		out.BPCases = patch.BPCases
	}
	if patch.FinalDecision != nil {
		out.FinalDecision = patch.FinalDecision
	}
	if patch.Report != "" {
		out.Report = patch.Report
	}
	if patch.HITLStages != nil {
		out.HITLStages = patch.HITLStages
	}
	if patch.SegmentReports != nil {
		out.SegmentReports = patch.SegmentReports
	}
	if patch.UserFeedbacks != nil {
		out.UserFeedbacks = patch.UserFeedbacks
	}
	if patch.FeedbackHistory != nil {
		out.FeedbackHistory = patch.FeedbackHistory
	}
	return out
}
