// Package api exposes the HTTP surface: proposal submission, feedback
// checkpoints, the dashboard CRUD endpoints, the WebSocket event stream,
// and health.
package api

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/koreview/revu/pkg/config"
	"github.com/koreview/revu/pkg/database"
	"github.com/koreview/revu/pkg/events"
	"github.com/koreview/revu/pkg/feedback"
	"github.com/koreview/revu/pkg/models"
	"github.com/koreview/revu/pkg/pages"
	"github.com/koreview/revu/pkg/queue"
	"github.com/koreview/revu/pkg/stage"
)

// JobService is the persistence surface the handlers depend on.
// Implemented by services.JobService; tests substitute a stub.
type JobService interface {
	CreateJob(ctx context.Context, in models.CreateJobInput) (*models.Job, error)
	GetJob(ctx context.Context, id int) (*models.Job, error)
	UpdateJob(ctx context.Context, id int, patch models.JobPatch) (*models.Job, error)
	ListJobs(ctx context.Context, filter models.JobFilter) ([]*models.Job, int, error)
	SearchJobs(ctx context.Context, query string, limit int) ([]*models.Job, error)
	DeleteJob(ctx context.Context, id int) error
}

// Server holds the handler dependencies.
type Server struct {
	cfg         *config.Config
	jobs        JobService
	inbox       *feedback.Inbox
	connManager *events.ConnectionManager
	pageSource  pages.Source
	titler      stage.LLMClient
	dbClient    *database.Client
	workerPool  *queue.WorkerPool
}

// NewServer creates the API server. pageSource, titler, dbClient and
// workerPool may be nil; the corresponding endpoints degrade gracefully.
func NewServer(
	cfg *config.Config,
	jobs JobService,
	inbox *feedback.Inbox,
	connManager *events.ConnectionManager,
	pageSource pages.Source,
	titler stage.LLMClient,
	dbClient *database.Client,
	workerPool *queue.WorkerPool,
) *Server {
	return &Server{
		cfg:         cfg,
		jobs:        jobs,
		inbox:       inbox,
		connManager: connManager,
		pageSource:  pageSource,
		titler:      titler,
		dbClient:    dbClient,
		workerPool:  workerPool,
	}
}

// Handler builds the gin engine with all routes registered.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), securityHeaders())

	r.GET("/health", s.healthHandler)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/jobs", s.submitJobHandler)
		v1.POST("/jobs/upload", s.submitFileHandler)
		v1.POST("/jobs/pages", s.submitPagesHandler)
		v1.POST("/jobs/:id/feedback", s.feedbackHandler)

		v1.GET("/jobs", s.listJobsHandler)
		v1.GET("/jobs/search", s.searchJobsHandler)
		v1.GET("/jobs/:id", s.getJobHandler)
		v1.PATCH("/jobs/:id", s.updateJobHandler)
		v1.DELETE("/jobs/:id", s.deleteJobHandler)

		v1.GET("/ws", s.wsHandler)
	}

	return r
}
