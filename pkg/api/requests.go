package api

// SubmitJobRequest is the body for POST /api/v1/jobs. Title is optional;
// when absent one is generated from the proposal content.
type SubmitJobRequest struct {
	Title                    string `json:"title"`
	Domain                   string `json:"domain"`
	Division                 string `json:"division"`
	ProposalContent          string `json:"proposal_content"`
	HITLStages               []int  `json:"hitl_stages"`
	EnableSequentialThinking bool   `json:"enable_sequential_thinking"`
}

// SubmitPagesRequest is the body for POST /api/v1/jobs/pages. The page
// tree rooted at PageID is fetched and reviewed one segment per page.
type SubmitPagesRequest struct {
	PageID                   string `json:"page_id"`
	IncludeRoot              bool   `json:"include_root"`
	MaxDepth                 int    `json:"max_depth"`
	Title                    string `json:"title"`
	Domain                   string `json:"domain"`
	Division                 string `json:"division"`
	HITLStages               []int  `json:"hitl_stages"`
	EnableSequentialThinking bool   `json:"enable_sequential_thinking"`
}

// FeedbackRequest is the body for POST /api/v1/jobs/:id/feedback.
// Skip tells the waiting stage to accept its current result as-is.
type FeedbackRequest struct {
	Feedback string `json:"feedback"`
	Skip     bool   `json:"skip"`
}

// UpdateJobRequest is the body for PATCH /api/v1/jobs/:id. Only present
// fields are applied.
type UpdateJobRequest struct {
	Title           *string `json:"title"`
	ProposalContent *string `json:"proposal_content"`
	Domain          *string `json:"domain"`
	Division        *string `json:"division"`
	HumanDecision   *string `json:"human_decision"`
	HITLStages      *[]int  `json:"hitl_stages"`
}
