package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koreview/revu/pkg/models"
)

func TestListJobsHandler(t *testing.T) {
	t.Run("passes filters through to the service", func(t *testing.T) {
		jobs := newStubJobService()
		jobs.total = 42
		s, _ := newTestServer(jobs, nil)

		rec := doJSON(t, s.Handler(), http.MethodGet,
			"/api/v1/jobs?status=completed&human_decision=approved&search=효율&limit=50&offset=10&order=asc", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		require.Len(t, jobs.listed, 1)
		filter := jobs.listed[0]
		assert.Equal(t, "completed", filter.Status)
		assert.Equal(t, "approved", filter.HumanDecision)
		assert.Equal(t, "효율", filter.Search)
		assert.Equal(t, 50, filter.Limit)
		assert.Equal(t, 10, filter.Offset)
		assert.True(t, filter.OrderAsc)

		var resp ListJobsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 42, resp.Total)
		assert.Equal(t, 50, resp.Limit)
	})

	t.Run("defaults limit and order", func(t *testing.T) {
		jobs := newStubJobService()
		s, _ := newTestServer(jobs, nil)

		rec := doJSON(t, s.Handler(), http.MethodGet, "/api/v1/jobs", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		require.Len(t, jobs.listed, 1)
		assert.Equal(t, defaultListLimit, jobs.listed[0].Limit)
		assert.False(t, jobs.listed[0].OrderAsc)
	})

	t.Run("rejects out-of-range limit", func(t *testing.T) {
		jobs := newStubJobService()
		s, _ := newTestServer(jobs, nil)

		rec := doJSON(t, s.Handler(), http.MethodGet, "/api/v1/jobs?limit=500", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, jobs.listed)
	})

	t.Run("rejects invalid order", func(t *testing.T) {
		jobs := newStubJobService()
		s, _ := newTestServer(jobs, nil)

		rec := doJSON(t, s.Handler(), http.MethodGet, "/api/v1/jobs?order=sideways", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSearchJobsHandler(t *testing.T) {
	t.Run("returns full-text matches", func(t *testing.T) {
		jobs := newStubJobService()
		jobs.jobs[5] = &models.Job{ID: 5, Title: "클린룸 공조 개선"}
		jobs.jobs[6] = &models.Job{ID: 6, Title: "물류 경로 최적화"}
		s, _ := newTestServer(jobs, nil)

		rec := doJSON(t, s.Handler(), http.MethodGet, "/api/v1/jobs/search?q=공조", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		assert.Equal(t, []string{"공조"}, jobs.searched)

		var resp ListJobsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Jobs, 1)
		assert.Equal(t, "클린룸 공조 개선", resp.Jobs[0].Title)
	})

	t.Run("requires a query", func(t *testing.T) {
		jobs := newStubJobService()
		s, _ := newTestServer(jobs, nil)

		rec := doJSON(t, s.Handler(), http.MethodGet, "/api/v1/jobs/search", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, jobs.searched)
	})

	t.Run("rejects out-of-range limit", func(t *testing.T) {
		jobs := newStubJobService()
		s, _ := newTestServer(jobs, nil)

		rec := doJSON(t, s.Handler(), http.MethodGet, "/api/v1/jobs/search?q=공조&limit=0", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetJobHandler(t *testing.T) {
	jobs := newStubJobService()
	jobs.jobs[12] = &models.Job{ID: 12, Title: "수율 개선", Status: models.StatusCompleted}
	s, _ := newTestServer(jobs, nil)

	t.Run("returns the job", func(t *testing.T) {
		rec := doJSON(t, s.Handler(), http.MethodGet, "/api/v1/jobs/12", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var job models.Job
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
		assert.Equal(t, "수율 개선", job.Title)
	})

	t.Run("404 for unknown id", func(t *testing.T) {
		rec := doJSON(t, s.Handler(), http.MethodGet, "/api/v1/jobs/999", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("400 for non-numeric id", func(t *testing.T) {
		rec := doJSON(t, s.Handler(), http.MethodGet, "/api/v1/jobs/abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateJobHandler(t *testing.T) {
	t.Run("records a human decision", func(t *testing.T) {
		jobs := newStubJobService()
		jobs.jobs[12] = &models.Job{ID: 12, Title: "수율 개선"}
		s, _ := newTestServer(jobs, nil)

		decision := models.DecisionApproved
		rec := doJSON(t, s.Handler(), http.MethodPatch, "/api/v1/jobs/12", UpdateJobRequest{
			HumanDecision: &decision,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		require.Len(t, jobs.patches, 1)
		require.NotNil(t, jobs.patches[0].HumanDecision)
		assert.Equal(t, models.DecisionApproved, *jobs.patches[0].HumanDecision)
		// Review state must not be patchable from the dashboard.
		assert.Nil(t, jobs.patches[0].Status)
		assert.Nil(t, jobs.patches[0].LLMDecision)
		assert.Nil(t, jobs.patches[0].Metadata)
	})

	t.Run("rejects an empty patch", func(t *testing.T) {
		jobs := newStubJobService()
		jobs.jobs[12] = &models.Job{ID: 12}
		s, _ := newTestServer(jobs, nil)

		rec := doJSON(t, s.Handler(), http.MethodPatch, "/api/v1/jobs/12", UpdateJobRequest{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, jobs.patches)
	})

	t.Run("404 for unknown id", func(t *testing.T) {
		jobs := newStubJobService()
		s, _ := newTestServer(jobs, nil)

		title := "새 제목"
		rec := doJSON(t, s.Handler(), http.MethodPatch, "/api/v1/jobs/5", UpdateJobRequest{Title: &title})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteJobHandler(t *testing.T) {
	jobs := newStubJobService()
	jobs.jobs[3] = &models.Job{ID: 3}
	s, _ := newTestServer(jobs, nil)

	rec := doJSON(t, s.Handler(), http.MethodDelete, "/api/v1/jobs/3", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []int{3}, jobs.deleted)

	rec = doJSON(t, s.Handler(), http.MethodDelete, "/api/v1/jobs/3", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthHandler(t *testing.T) {
	// Without a database or worker pool wired, health reports healthy with
	// no component detail. Component checks are covered by the
	// testcontainers-backed suite.
	jobs := newStubJobService()
	s, _ := newTestServer(jobs, nil)

	rec := doJSON(t, s.Handler(), http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, healthStatusHealthy, resp.Status)
}
