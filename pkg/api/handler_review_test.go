package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koreview/revu/pkg/config"
	"github.com/koreview/revu/pkg/feedback"
	"github.com/koreview/revu/pkg/models"
	"github.com/koreview/revu/pkg/pages"
	"github.com/koreview/revu/pkg/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubJobService is an in-memory JobService for handler tests.
type stubJobService struct {
	nextID    int
	jobs      map[int]*models.Job
	createdIn []models.CreateJobInput
	patches   []models.JobPatch
	deleted   []int
	listed    []models.JobFilter
	searched  []string
	total     int
	err       error
}

func newStubJobService() *stubJobService {
	return &stubJobService{nextID: 100, jobs: map[int]*models.Job{}}
}

func (s *stubJobService) CreateJob(_ context.Context, in models.CreateJobInput) (*models.Job, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.createdIn = append(s.createdIn, in)
	s.nextID++
	job := &models.Job{
		ID:              s.nextID,
		Title:           in.Title,
		Domain:          in.Domain,
		Division:        in.Division,
		ProposalContent: in.ProposalContent,
		Segments:        in.Segments,
		HITLStages:      in.HITLStages,
		Status:          models.StatusPending,
	}
	s.jobs[job.ID] = job
	return job, nil
}

func (s *stubJobService) GetJob(_ context.Context, id int) (*models.Job, error) {
	if s.err != nil {
		return nil, s.err
	}
	job, ok := s.jobs[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return job, nil
}

func (s *stubJobService) UpdateJob(_ context.Context, id int, patch models.JobPatch) (*models.Job, error) {
	if s.err != nil {
		return nil, s.err
	}
	job, ok := s.jobs[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	s.patches = append(s.patches, patch)
	if patch.Title != nil {
		job.Title = *patch.Title
	}
	if patch.HumanDecision != nil {
		job.HumanDecision = *patch.HumanDecision
	}
	return job, nil
}

func (s *stubJobService) ListJobs(_ context.Context, filter models.JobFilter) ([]*models.Job, int, error) {
	if s.err != nil {
		return nil, 0, s.err
	}
	s.listed = append(s.listed, filter)
	out := make([]*models.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, j)
	}
	return out, s.total, nil
}

func (s *stubJobService) SearchJobs(_ context.Context, query string, limit int) ([]*models.Job, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.searched = append(s.searched, query)
	out := make([]*models.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		if strings.Contains(j.Title, query) || strings.Contains(j.ProposalContent, query) {
			out = append(out, j)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubJobService) DeleteJob(_ context.Context, id int) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.jobs[id]; !ok {
		return services.ErrNotFound
	}
	s.deleted = append(s.deleted, id)
	delete(s.jobs, id)
	return nil
}

// stubPageSource returns a fixed page tree.
type stubPageSource struct {
	pages []pages.Page
	err   error
}

func (s *stubPageSource) GetPage(_ context.Context, pageID string) (*pages.Page, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.pages {
		if s.pages[i].ID == pageID {
			return &s.pages[i], nil
		}
	}
	return nil, fmt.Errorf("page %s not found", pageID)
}

func (s *stubPageSource) GetPagesRecursively(_ context.Context, _ string, _ bool, _ int) ([]pages.Page, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.pages, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Pages:  &config.PagesConfig{MaxDepth: 3},
		Server: &config.ServerConfig{Addr: ":0"},
	}
}

func newTestServer(jobs JobService, source pages.Source) (*Server, *feedback.Inbox) {
	inbox := feedback.NewInbox()
	s := NewServer(testConfig(), jobs, inbox, nil, source, nil, nil, nil)
	return s, inbox
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestSubmitJobHandler(t *testing.T) {
	t.Run("creates pending job from text", func(t *testing.T) {
		jobs := newStubJobService()
		s, _ := newTestServer(jobs, nil)

		rec := doJSON(t, s.Handler(), http.MethodPost, "/api/v1/jobs", SubmitJobRequest{
			Domain:          "제조",
			Division:        "메모리",
			ProposalContent: "운영 효율 개선 제안\n상세 내용입니다.",
			HITLStages:      []int{2, 4},
		})
		require.Equal(t, http.StatusAccepted, rec.Code)

		var resp SubmitResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "submitted", resp.Status)
		assert.Equal(t, 1, resp.PageCount)
		assert.NotZero(t, resp.JobID)

		require.Len(t, jobs.createdIn, 1)
		in := jobs.createdIn[0]
		assert.Equal(t, "제조", in.Domain)
		assert.Equal(t, []int{2, 4}, in.HITLStages)
		// No LLM client wired: title falls back to the first proposal line.
		assert.Equal(t, "운영 효율 개선 제안", in.Title)
	})

	t.Run("keeps explicit title", func(t *testing.T) {
		jobs := newStubJobService()
		s, _ := newTestServer(jobs, nil)

		rec := doJSON(t, s.Handler(), http.MethodPost, "/api/v1/jobs", SubmitJobRequest{
			Title:           "명시된 제목",
			Domain:          "제조",
			Division:        "메모리",
			ProposalContent: "본문",
		})
		require.Equal(t, http.StatusAccepted, rec.Code)
		require.Len(t, jobs.createdIn, 1)
		assert.Equal(t, "명시된 제목", jobs.createdIn[0].Title)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		jobs := newStubJobService()
		s, _ := newTestServer(jobs, nil)

		rec := doJSON(t, s.Handler(), http.MethodPost, "/api/v1/jobs", SubmitJobRequest{
			Domain:          "제조",
			Division:        "메모리",
			ProposalContent: "   ",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, jobs.createdIn)
	})

	t.Run("maps validation errors to 400", func(t *testing.T) {
		jobs := newStubJobService()
		jobs.err = services.NewValidationError("domain", "is required")
		s, _ := newTestServer(jobs, nil)

		rec := doJSON(t, s.Handler(), http.MethodPost, "/api/v1/jobs", SubmitJobRequest{
			ProposalContent: "본문",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "domain")
	})
}

func TestSubmitFileHandler(t *testing.T) {
	buildForm := func(t *testing.T, filename, content string, fields map[string]string) (*bytes.Buffer, string) {
		t.Helper()
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		fw, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
		for k, v := range fields {
			require.NoError(t, w.WriteField(k, v))
		}
		require.NoError(t, w.Close())
		return &buf, w.FormDataContentType()
	}

	t.Run("creates job from uploaded file", func(t *testing.T) {
		jobs := newStubJobService()
		s, _ := newTestServer(jobs, nil)

		body, contentType := buildForm(t, "개선안.txt", "파일로 제출한 제안 내용", map[string]string{
			"domain":      "제조",
			"division":    "파운드리",
			"hitl_stages": "3,5",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/upload", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		require.Equal(t, http.StatusAccepted, rec.Code)
		require.Len(t, jobs.createdIn, 1)
		in := jobs.createdIn[0]
		assert.Equal(t, "파일로 제출한 제안 내용", in.ProposalContent)
		assert.Equal(t, "파운드리", in.Division)
		assert.Equal(t, []int{3, 5}, in.HITLStages)
	})

	t.Run("rejects malformed hitl_stages", func(t *testing.T) {
		jobs := newStubJobService()
		s, _ := newTestServer(jobs, nil)

		body, contentType := buildForm(t, "a.txt", "내용", map[string]string{
			"hitl_stages": "2,x",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/upload", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, jobs.createdIn)
	})

	t.Run("rejects missing file", func(t *testing.T) {
		jobs := newStubJobService()
		s, _ := newTestServer(jobs, nil)

		rec := doJSON(t, s.Handler(), http.MethodPost, "/api/v1/jobs/upload", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSubmitPagesHandler(t *testing.T) {
	t.Run("creates multi-segment job with one segment per page", func(t *testing.T) {
		jobs := newStubJobService()
		source := &stubPageSource{pages: []pages.Page{
			{ID: "A", Title: "설계", Content: "설계 페이지 본문", URL: "https://wiki/A"},
			{ID: "B", Title: "검증", Content: "검증 페이지 본문", URL: "https://wiki/B"},
		}}
		s, _ := newTestServer(jobs, source)

		rec := doJSON(t, s.Handler(), http.MethodPost, "/api/v1/jobs/pages", SubmitPagesRequest{
			PageID:      "A",
			IncludeRoot: true,
			Domain:      "제조",
			Division:    "메모리",
		})
		require.Equal(t, http.StatusAccepted, rec.Code)

		var resp SubmitResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.PageCount)
		require.Len(t, resp.Pages, 2)
		assert.Equal(t, "A", resp.Pages[0].ID)
		assert.Equal(t, "검증", resp.Pages[1].Title)

		require.Len(t, jobs.createdIn, 1)
		in := jobs.createdIn[0]
		require.Len(t, in.Segments, 2)
		assert.Equal(t, "설계 페이지 본문", in.Segments[0].Content)
		assert.Equal(t, "A", in.SourcePageID)
		assert.Equal(t, "https://wiki/A", in.SourcePageURL)
		assert.Contains(t, in.ProposalContent, "검증 페이지 본문")
	})

	t.Run("rejects missing page_id", func(t *testing.T) {
		jobs := newStubJobService()
		s, _ := newTestServer(jobs, &stubPageSource{})

		rec := doJSON(t, s.Handler(), http.MethodPost, "/api/v1/jobs/pages", SubmitPagesRequest{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("maps fetch failure to 502", func(t *testing.T) {
		jobs := newStubJobService()
		s, _ := newTestServer(jobs, &stubPageSource{err: fmt.Errorf("wiki unreachable")})

		rec := doJSON(t, s.Handler(), http.MethodPost, "/api/v1/jobs/pages", SubmitPagesRequest{PageID: "A"})
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("returns 503 when no page source is configured", func(t *testing.T) {
		jobs := newStubJobService()
		s, _ := newTestServer(jobs, nil)

		rec := doJSON(t, s.Handler(), http.MethodPost, "/api/v1/jobs/pages", SubmitPagesRequest{PageID: "A"})
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestFeedbackHandler(t *testing.T) {
	t.Run("publishes feedback for a waiting job", func(t *testing.T) {
		jobs := newStubJobService()
		jobs.jobs[7] = &models.Job{ID: 7, Status: models.StatusWaitingFeedback}
		s, inbox := newTestServer(jobs, nil)
		inbox.Reset(7)

		rec := doJSON(t, s.Handler(), http.MethodPost, "/api/v1/jobs/7/feedback", FeedbackRequest{
			Feedback: "ROI 계산 근거를 보완해 주세요",
		})
		require.Equal(t, http.StatusAccepted, rec.Code)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		fb, err := inbox.Await(ctx, 7, time.Second)
		require.NoError(t, err)
		assert.Equal(t, "ROI 계산 근거를 보완해 주세요", fb.Text)
		assert.False(t, fb.Skip)
	})

	t.Run("accepts skip without text", func(t *testing.T) {
		jobs := newStubJobService()
		jobs.jobs[7] = &models.Job{ID: 7, Status: models.StatusWaitingFeedback}
		s, inbox := newTestServer(jobs, nil)
		inbox.Reset(7)

		rec := doJSON(t, s.Handler(), http.MethodPost, "/api/v1/jobs/7/feedback", FeedbackRequest{Skip: true})
		require.Equal(t, http.StatusAccepted, rec.Code)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		fb, err := inbox.Await(ctx, 7, time.Second)
		require.NoError(t, err)
		assert.True(t, fb.Skip)
	})

	t.Run("rejects empty feedback without skip", func(t *testing.T) {
		jobs := newStubJobService()
		jobs.jobs[7] = &models.Job{ID: 7, Status: models.StatusWaitingFeedback}
		s, _ := newTestServer(jobs, nil)

		rec := doJSON(t, s.Handler(), http.MethodPost, "/api/v1/jobs/7/feedback", FeedbackRequest{
			Feedback: "   ",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("holds feedback posted before the status flips to waiting", func(t *testing.T) {
		// A client reacting to an interrupt event can race the status write;
		// the publish must be held for the checkpoint, not rejected.
		jobs := newStubJobService()
		jobs.jobs[7] = &models.Job{ID: 7, Status: models.StatusObjectiveDone}
		s, inbox := newTestServer(jobs, nil)
		inbox.Reset(7)

		rec := doJSON(t, s.Handler(), http.MethodPost, "/api/v1/jobs/7/feedback", FeedbackRequest{
			Feedback: "목표 수치를 구체화해 주세요",
		})
		require.Equal(t, http.StatusAccepted, rec.Code)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		fb, err := inbox.Await(ctx, 7, time.Second)
		require.NoError(t, err)
		assert.Equal(t, "목표 수치를 구체화해 주세요", fb.Text)
	})

	t.Run("conflicts when job already finished", func(t *testing.T) {
		jobs := newStubJobService()
		jobs.jobs[7] = &models.Job{ID: 7, Status: models.StatusCompleted}
		jobs.jobs[8] = &models.Job{ID: 8, Status: models.StatusError}
		s, _ := newTestServer(jobs, nil)

		for _, id := range []string{"7", "8"} {
			rec := doJSON(t, s.Handler(), http.MethodPost, "/api/v1/jobs/"+id+"/feedback", FeedbackRequest{
				Feedback: "피드백",
			})
			assert.Equal(t, http.StatusConflict, rec.Code)
		}
	})

	t.Run("404 for unknown job", func(t *testing.T) {
		jobs := newStubJobService()
		s, _ := newTestServer(jobs, nil)

		rec := doJSON(t, s.Handler(), http.MethodPost, "/api/v1/jobs/99/feedback", FeedbackRequest{
			Feedback: "피드백",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestParseHITLStages(t *testing.T) {
	stages, err := parseHITLStages(" 2, 3 ,6 ")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 6}, stages)

	stages, err = parseHITLStages("")
	require.NoError(t, err)
	assert.Nil(t, stages)

	_, err = parseHITLStages("2,abc")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "abc"))
}
