package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/koreview/revu/pkg/models"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// listJobsHandler handles GET /api/v1/jobs.
func (s *Server) listJobsHandler(c *gin.Context) {
	filter := models.JobFilter{
		Status:        c.Query("status"),
		HumanDecision: c.Query("human_decision"),
		LLMDecision:   c.Query("llm_decision"),
		Search:        c.Query("search"),
		Limit:         defaultListLimit,
	}

	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxListLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit: must be 1-100"})
			return
		}
		filter.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
			return
		}
		filter.Offset = n
	}
	switch c.Query("order") {
	case "", "desc":
	case "asc":
		filter.OrderAsc = true
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order: must be asc or desc"})
		return
	}

	jobs, total, err := s.jobs.ListJobs(c.Request.Context(), filter)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, &ListJobsResponse{
		Jobs:   jobs,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// searchJobsHandler handles GET /api/v1/jobs/search.
// Full-text search over title and proposal content, backed by the GIN
// tsvector indexes; the list endpoint's search param is a plain substring
// match.
func (s *Server) searchJobsHandler(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	limit := defaultListLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxListLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit: must be 1-100"})
			return
		}
		limit = n
	}

	jobs, err := s.jobs.SearchJobs(c.Request.Context(), q, limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, &ListJobsResponse{
		Jobs:  jobs,
		Total: len(jobs),
		Limit: limit,
	})
}

// getJobHandler handles GET /api/v1/jobs/:id.
func (s *Server) getJobHandler(c *gin.Context) {
	jobID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}

	job, err := s.jobs.GetJob(c.Request.Context(), jobID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// updateJobHandler handles PATCH /api/v1/jobs/:id.
// The dashboard may record a human decision and edit the descriptive
// fields; review state (status, llm_decision, metadata) is owned by the
// orchestrator and not patchable here.
func (s *Server) updateJobHandler(c *gin.Context) {
	jobID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := models.JobPatch{
		Title:           req.Title,
		ProposalContent: req.ProposalContent,
		Domain:          req.Domain,
		Division:        req.Division,
		HumanDecision:   req.HumanDecision,
		HITLStages:      req.HITLStages,
	}
	if patch.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
		return
	}

	job, err := s.jobs.UpdateJob(c.Request.Context(), jobID, patch)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// deleteJobHandler handles DELETE /api/v1/jobs/:id.
func (s *Server) deleteJobHandler(c *gin.Context) {
	jobID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}

	if err := s.jobs.DeleteJob(c.Request.Context(), jobID); err != nil {
		mapServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
