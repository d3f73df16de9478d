package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/koreview/revu/pkg/feedback"
	"github.com/koreview/revu/pkg/models"
	"github.com/koreview/revu/pkg/stage"
)

// maxProposalSize caps submitted proposal content at 1 MiB.
const maxProposalSize = 1 << 20

// titleTimeout bounds the one-shot title inference call so submission
// stays responsive even when the gateway is slow.
const titleTimeout = 15 * time.Second

// submitJobHandler handles POST /api/v1/jobs.
// Creates a job in "pending" status; a worker picks it up for review.
func (s *Server) submitJobHandler(c *gin.Context) {
	var req SubmitJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(req.ProposalContent) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "proposal_content is required"})
		return
	}
	if len(req.ProposalContent) > maxProposalSize {
		c.JSON(http.StatusRequestEntityTooLarge,
			gin.H{"error": fmt.Sprintf("proposal content exceeds maximum size of %d bytes", maxProposalSize)})
		return
	}

	title := s.resolveTitle(c.Request.Context(), req.Title, req.ProposalContent)

	job, err := s.jobs.CreateJob(c.Request.Context(), models.CreateJobInput{
		Title:                    title,
		Domain:                   req.Domain,
		Division:                 req.Division,
		ProposalContent:          req.ProposalContent,
		HITLStages:               req.HITLStages,
		EnableSequentialThinking: req.EnableSequentialThinking,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, &SubmitResponse{
		JobID:     job.ID,
		Status:    "submitted",
		Title:     job.Title,
		PageCount: 1,
	})
}

// submitFileHandler handles POST /api/v1/jobs/upload (multipart form).
// The proposal text comes from the uploaded file; the remaining fields
// arrive as form values.
func (s *Server) submitFileHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
		return
	}
	if fileHeader.Size > maxProposalSize {
		c.JSON(http.StatusRequestEntityTooLarge,
			gin.H{"error": fmt.Sprintf("file exceeds maximum size of %d bytes", maxProposalSize)})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read uploaded file"})
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, maxProposalSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read uploaded file"})
		return
	}
	if len(raw) > maxProposalSize {
		c.JSON(http.StatusRequestEntityTooLarge,
			gin.H{"error": fmt.Sprintf("file exceeds maximum size of %d bytes", maxProposalSize)})
		return
	}
	content := string(raw)
	if strings.TrimSpace(content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "uploaded file is empty"})
		return
	}

	hitlStages, err := parseHITLStages(c.PostForm("hitl_stages"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	title := c.PostForm("title")
	if title == "" {
		// Strip the extension so a bare filename still works as a fallback.
		base := filepath.Base(fileHeader.Filename)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	title = s.resolveTitle(c.Request.Context(), "", content, title)

	job, err := s.jobs.CreateJob(c.Request.Context(), models.CreateJobInput{
		Title:                    title,
		Domain:                   c.PostForm("domain"),
		Division:                 c.PostForm("division"),
		ProposalContent:          content,
		HITLStages:               hitlStages,
		EnableSequentialThinking: c.PostForm("enable_sequential_thinking") == "true",
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, &SubmitResponse{
		JobID:     job.ID,
		Status:    "submitted",
		Title:     job.Title,
		PageCount: 1,
	})
}

// submitPagesHandler handles POST /api/v1/jobs/pages.
// Fetches the referenced wiki page tree and creates one multi-segment job
// reviewing each page independently.
func (s *Server) submitPagesHandler(c *gin.Context) {
	if s.pageSource == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "page source not configured"})
		return
	}

	var req SubmitPagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.PageID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page_id is required"})
		return
	}

	maxDepth := req.MaxDepth
	if maxDepth <= 0 {
		maxDepth = s.cfg.Pages.MaxDepth
	}

	fetched, err := s.pageSource.GetPagesRecursively(c.Request.Context(), req.PageID, req.IncludeRoot, maxDepth)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": fmt.Sprintf("cannot fetch pages: %v", err)})
		return
	}
	if len(fetched) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no pages found under " + req.PageID})
		return
	}

	segments := make([]models.Segment, 0, len(fetched))
	pageInfos := make([]PageInfo, 0, len(fetched))
	var combined strings.Builder
	var rootURL string
	for i, p := range fetched {
		segments = append(segments, models.Segment{ID: p.ID, Title: p.Title, Content: p.Content})
		pageInfos = append(pageInfos, PageInfo{ID: p.ID, Title: p.Title})
		if i > 0 {
			combined.WriteString("\n\n")
		}
		combined.WriteString(p.Content)
		if rootURL == "" {
			rootURL = p.URL
		}
	}

	title := req.Title
	if title == "" {
		title = fetched[0].Title
	}
	title = s.resolveTitle(c.Request.Context(), "", combined.String(), title)

	job, err := s.jobs.CreateJob(c.Request.Context(), models.CreateJobInput{
		Title:                    title,
		Domain:                   req.Domain,
		Division:                 req.Division,
		ProposalContent:          combined.String(),
		Segments:                 segments,
		HITLStages:               req.HITLStages,
		SourcePageID:             req.PageID,
		SourcePageURL:            rootURL,
		EnableSequentialThinking: req.EnableSequentialThinking,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, &SubmitResponse{
		JobID:     job.ID,
		Status:    "submitted",
		Title:     job.Title,
		Pages:     pageInfos,
		PageCount: len(pageInfos),
	})
}

// feedbackHandler handles POST /api/v1/jobs/:id/feedback.
// Publishes feedback into the job's inbox; the waiting stage picks it up.
// Publishing is last-writer-wins, so repeated posts before the stage
// resumes simply replace the pending feedback. Any job still in flight is
// accepted, not just waiting_feedback: the inbox holds the value until a
// checkpoint consumes it, and each stage entry discards stale leftovers.
func (s *Server) feedbackHandler(c *gin.Context) {
	jobID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}

	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Skip && strings.TrimSpace(req.Feedback) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "feedback is required unless skip is set"})
		return
	}

	job, err := s.jobs.GetJob(c.Request.Context(), jobID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if job.Terminal() {
		c.JSON(http.StatusConflict, gin.H{"error": "job already finished"})
		return
	}

	s.inbox.Publish(jobID, feedback.Feedback{Text: req.Feedback, Skip: req.Skip})

	c.JSON(http.StatusAccepted, &FeedbackResponse{
		JobID:   jobID,
		Message: "Feedback accepted",
	})
}

// resolveTitle returns the explicit title, or infers one from the proposal
// content when possible. fallbacks are tried in order when inference is
// unavailable or produces nothing.
func (s *Server) resolveTitle(ctx context.Context, explicit, content string, fallbacks ...string) string {
	if explicit != "" {
		return explicit
	}

	fallback := ""
	for _, f := range fallbacks {
		if f != "" {
			fallback = f
			break
		}
	}

	if s.titler == nil {
		for _, line := range strings.Split(content, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				return line
			}
		}
		return fallback
	}

	tctx, cancel := context.WithTimeout(ctx, titleTimeout)
	defer cancel()
	return stage.GenerateTitle(tctx, s.titler, content, fallback)
}

// parseHITLStages parses a comma-separated stage list from a form value.
func parseHITLStages(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	stages := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid hitl_stages value %q", p)
		}
		stages = append(stages, n)
	}
	return stages, nil
}
