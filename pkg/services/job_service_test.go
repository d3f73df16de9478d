package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koreview/revu/pkg/models"
	testdb "github.com/koreview/revu/test/database"
)

func validInput() models.CreateJobInput {
	return models.CreateJobInput{
		Title:           "생산 라인 효율 개선",
		Domain:          "제조",
		Division:        "메모리",
		ProposalContent: "교대 스케줄 최적화로 가동률을 높이는 제안입니다.",
	}
}

func TestJobService_CreateJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	t.Run("creates a pending job", func(t *testing.T) {
		job, err := svc.CreateJob(ctx, validInput())
		require.NoError(t, err)

		assert.NotZero(t, job.ID)
		assert.Equal(t, "생산 라인 효율 개선", job.Title)
		assert.Equal(t, models.StatusPending, job.Status)
		assert.Equal(t, models.DecisionPending, job.HumanDecision)
		assert.Equal(t, models.DecisionPending, job.LLMDecision)
		assert.False(t, job.CreatedAt.IsZero())
	})

	t.Run("stores segments for page submissions", func(t *testing.T) {
		in := validInput()
		in.Segments = []models.Segment{
			{ID: "A", Title: "설계", Content: "설계 본문"},
			{ID: "B", Title: "검증", Content: "검증 본문"},
		}
		in.SourcePageID = "A"
		in.SourcePageURL = "https://wiki/A"

		job, err := svc.CreateJob(ctx, in)
		require.NoError(t, err)

		loaded, err := svc.GetJob(ctx, job.ID)
		require.NoError(t, err)
		require.Len(t, loaded.Segments, 2)
		assert.Equal(t, "검증", loaded.Segments[1].Title)
		assert.Equal(t, "A", loaded.SourcePageID)
		assert.Equal(t, "https://wiki/A", loaded.SourcePageURL)
	})

	t.Run("rejects missing content", func(t *testing.T) {
		in := validInput()
		in.ProposalContent = "  "
		_, err := svc.CreateJob(ctx, in)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects missing domain", func(t *testing.T) {
		in := validInput()
		in.Domain = ""
		_, err := svc.CreateJob(ctx, in)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects checkpoint on a non-pausable stage", func(t *testing.T) {
		in := validInput()
		in.HITLStages = []int{1}
		_, err := svc.CreateJob(ctx, in)
		assert.True(t, IsValidationError(err))

		in.HITLStages = []int{7}
		_, err = svc.CreateJob(ctx, in)
		assert.True(t, IsValidationError(err))
	})
}

func TestJobService_GetJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	_, err := svc.GetJob(ctx, 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJobService_UpdateJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	t.Run("overwrites scalar fields", func(t *testing.T) {
		job, err := svc.CreateJob(ctx, validInput())
		require.NoError(t, err)

		title := "개정된 제목"
		status := models.StatusBPDone
		updated, err := svc.UpdateJob(ctx, job.ID, models.JobPatch{
			Title:  &title,
			Status: &status,
		})
		require.NoError(t, err)
		assert.Equal(t, "개정된 제목", updated.Title)
		assert.Equal(t, models.StatusBPDone, updated.Status)
		// Untouched fields survive.
		assert.Equal(t, job.ProposalContent, updated.ProposalContent)
	})

	t.Run("merges metadata key-wise for agent results", func(t *testing.T) {
		job, err := svc.CreateJob(ctx, validInput())
		require.NoError(t, err)

		first := models.Metadata{AgentResults: map[string]string{"BP_Scouter": "사례 분석"}}
		_, err = svc.UpdateJob(ctx, job.ID, models.JobPatch{Metadata: &first})
		require.NoError(t, err)

		second := models.Metadata{AgentResults: map[string]string{"Objective_Reviewer": "목표 평가"}}
		updated, err := svc.UpdateJob(ctx, job.ID, models.JobPatch{Metadata: &second})
		require.NoError(t, err)

		assert.Equal(t, "사례 분석", updated.Metadata.AgentResults["BP_Scouter"])
		assert.Equal(t, "목표 평가", updated.Metadata.AgentResults["Objective_Reviewer"])
	})

	t.Run("metadata merge is idempotent", func(t *testing.T) {
		job, err := svc.CreateJob(ctx, validInput())
		require.NoError(t, err)

		patch := models.Metadata{
			AgentResults: map[string]string{"BP_Scouter": "결과"},
			Report:       "<h1>보고서</h1>",
		}
		once, err := svc.UpdateJob(ctx, job.ID, models.JobPatch{Metadata: &patch})
		require.NoError(t, err)
		twice, err := svc.UpdateJob(ctx, job.ID, models.JobPatch{Metadata: &patch})
		require.NoError(t, err)

		assert.Equal(t, once.Metadata, twice.Metadata)
	})

	t.Run("validates decisions", func(t *testing.T) {
		job, err := svc.CreateJob(ctx, validInput())
		require.NoError(t, err)

		bad := "maybe"
		_, err = svc.UpdateJob(ctx, job.ID, models.JobPatch{HumanDecision: &bad})
		assert.True(t, IsValidationError(err))

		good := models.DecisionApproved
		updated, err := svc.UpdateJob(ctx, job.ID, models.JobPatch{HumanDecision: &good})
		require.NoError(t, err)
		assert.Equal(t, models.DecisionApproved, updated.HumanDecision)
	})

	t.Run("404 for unknown job", func(t *testing.T) {
		title := "x"
		_, err := svc.UpdateJob(ctx, 99999, models.JobPatch{Title: &title})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestJobService_ListJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	mk := func(title, status, llmDecision string) {
		in := validInput()
		in.Title = title
		in.Status = status
		in.LLMDecision = llmDecision
		_, err := svc.CreateJob(ctx, in)
		require.NoError(t, err)
	}

	mk("수율 개선 제안", models.StatusCompleted, models.DecisionApproved)
	mk("장비 교체 제안", models.StatusCompleted, models.DecisionOnHold)
	mk("물류 자동화 제안", models.StatusPending, "")

	t.Run("filters by status", func(t *testing.T) {
		jobs, total, err := svc.ListJobs(ctx, models.JobFilter{Status: models.StatusCompleted})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, jobs, 2)
	})

	t.Run("filters by llm decision", func(t *testing.T) {
		jobs, total, err := svc.ListJobs(ctx, models.JobFilter{LLMDecision: models.DecisionApproved})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, jobs, 1)
		assert.Equal(t, "수율 개선 제안", jobs[0].Title)
	})

	t.Run("substring search over title and content", func(t *testing.T) {
		jobs, total, err := svc.ListJobs(ctx, models.JobFilter{Search: "자동화"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, jobs, 1)
		assert.Equal(t, "물류 자동화 제안", jobs[0].Title)
	})

	t.Run("pages with total count", func(t *testing.T) {
		jobs, total, err := svc.ListJobs(ctx, models.JobFilter{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, jobs, 2)

		rest, _, err := svc.ListJobs(ctx, models.JobFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, rest, 1)
	})

	t.Run("ascending order returns oldest first", func(t *testing.T) {
		jobs, _, err := svc.ListJobs(ctx, models.JobFilter{OrderAsc: true})
		require.NoError(t, err)
		require.NotEmpty(t, jobs)
		assert.Equal(t, "수율 개선 제안", jobs[0].Title)
	})

	t.Run("counts without paging", func(t *testing.T) {
		count, err := svc.CountJobs(ctx, models.JobFilter{})
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		count, err = svc.CountJobs(ctx, models.JobFilter{Status: models.StatusCompleted, Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}

func TestJobService_SearchJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	in := validInput()
	in.Title = "클린룸 공조 개선"
	in.ProposalContent = "공조 설비의 에너지 사용량을 절감하는 제안"
	_, err := svc.CreateJob(ctx, in)
	require.NoError(t, err)

	jobs, err := svc.SearchJobs(ctx, "공조", 10)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "클린룸 공조 개선", jobs[0].Title)

	none, err := svc.SearchJobs(ctx, "존재하지않는단어", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestJobService_DeleteJob(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewJobService(client.Client)
	ctx := context.Background()

	job, err := svc.CreateJob(ctx, validInput())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteJob(ctx, job.ID))
	_, err = svc.GetJob(ctx, job.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.DeleteJob(ctx, job.ID), ErrNotFound)
}
