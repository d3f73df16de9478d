package api

import (
	"github.com/koreview/revu/pkg/database"
	"github.com/koreview/revu/pkg/models"
	"github.com/koreview/revu/pkg/queue"
)

// SubmitResponse is returned by the submission endpoints.
type SubmitResponse struct {
	JobID     int        `json:"job_id"`
	Status    string     `json:"status"`
	Title     string     `json:"title"`
	Pages     []PageInfo `json:"pages,omitempty"`
	PageCount int        `json:"page_count"`
}

// PageInfo identifies one fetched page in a multi-segment submission.
type PageInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// FeedbackResponse is returned by POST /api/v1/jobs/:id/feedback.
type FeedbackResponse struct {
	JobID   int    `json:"job_id"`
	Message string `json:"message"`
}

// ListJobsResponse is the paged dashboard listing.
type ListJobsResponse struct {
	Jobs   []*models.Job `json:"jobs"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status     string                 `json:"status"`
	Database   *database.HealthStatus `json:"database,omitempty"`
	WorkerPool *queue.PoolHealth      `json:"worker_pool,omitempty"`
	Error      string                 `json:"error,omitempty"`
}
