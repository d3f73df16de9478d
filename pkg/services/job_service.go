package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/koreview/revu/ent"
	"github.com/koreview/revu/ent/reviewjob"
	"github.com/koreview/revu/pkg/models"
	"github.com/koreview/revu/pkg/stage"
)

// JobService manages review job lifecycle.
type JobService struct {
	client *ent.Client
}

// NewJobService creates a new JobService.
func NewJobService(client *ent.Client) *JobService {
	return &JobService{client: client}
}

// CreateJob creates a new review job in pending status.
func (s *JobService) CreateJob(httpCtx context.Context, in models.CreateJobInput) (*models.Job, error) {
	if strings.TrimSpace(in.ProposalContent) == "" && len(in.Segments) == 0 {
		return nil, NewValidationError("proposal_content", "required")
	}
	if in.Domain == "" {
		return nil, NewValidationError("domain", "required")
	}
	if in.Division == "" {
		return nil, NewValidationError("division", "required")
	}
	if err := validateHITLStages(in.HITLStages); err != nil {
		return nil, err
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.ReviewJob.Create().
		SetTitle(in.Title).
		SetDomain(in.Domain).
		SetDivision(in.Division).
		SetProposalContent(in.ProposalContent).
		SetEnableSequentialThinking(in.EnableSequentialThinking)

	if in.Status != "" {
		builder.SetStatus(in.Status)
	}
	if len(in.Segments) > 0 {
		builder.SetSegments(in.Segments)
	}
	if len(in.HITLStages) > 0 {
		builder.SetHitlStages(in.HITLStages)
	}
	if in.HumanDecision != "" {
		builder.SetHumanDecision(reviewjob.HumanDecision(in.HumanDecision))
	}
	if in.LLMDecision != "" {
		builder.SetLlmDecision(reviewjob.LlmDecision(in.LLMDecision))
	}
	builder.SetMetadata(in.Metadata)
	if in.SourcePageID != "" {
		builder.SetSourcePageID(in.SourcePageID)
	}
	if in.SourcePageURL != "" {
		builder.SetSourcePageURL(in.SourcePageURL)
	}

	job, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return toModel(job), nil
}

// GetJob retrieves a job by id.
func (s *JobService) GetJob(ctx context.Context, id int) (*models.Job, error) {
	job, err := s.client.ReviewJob.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return toModel(job), nil
}

// UpdateJob applies a field-level patch. Scalar fields overwrite, metadata
// is deep-merged against the current row. The read-merge-write runs in a
// transaction with the row locked, so concurrent patches to the same job
// serialize instead of clobbering each other's metadata.
func (s *JobService) UpdateJob(ctx context.Context, id int, patch models.JobPatch) (*models.Job, error) {
	if patch.HITLStages != nil {
		if err := validateHITLStages(*patch.HITLStages); err != nil {
			return nil, err
		}
	}
	if err := validateDecision("human_decision", patch.HumanDecision); err != nil {
		return nil, err
	}
	if err := validateDecision("llm_decision", patch.LLMDecision); err != nil {
		return nil, err
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	current, err := tx.ReviewJob.Query().
		Where(reviewjob.ID(id)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load job for update: %w", err)
	}

	update := current.Update()
	if patch.Title != nil {
		update.SetTitle(*patch.Title)
	}
	if patch.ProposalContent != nil {
		update.SetProposalContent(*patch.ProposalContent)
	}
	if patch.Domain != nil {
		update.SetDomain(*patch.Domain)
	}
	if patch.Division != nil {
		update.SetDivision(*patch.Division)
	}
	if patch.Status != nil {
		update.SetStatus(*patch.Status)
	}
	if patch.HumanDecision != nil {
		update.SetHumanDecision(reviewjob.HumanDecision(*patch.HumanDecision))
	}
	if patch.LLMDecision != nil {
		update.SetLlmDecision(reviewjob.LlmDecision(*patch.LLMDecision))
	}
	if patch.HITLStages != nil {
		update.SetHitlStages(*patch.HITLStages)
	}
	if patch.Metadata != nil {
		update.SetMetadata(models.MergeMetadata(current.Metadata, *patch.Metadata))
	}

	updated, err := update.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit job update: %w", err)
	}
	return toModel(updated), nil
}

// ListJobs lists jobs with filtering and pagination, newest first unless
// the filter asks for ascending order. The second return value is the
// total count before paging.
func (s *JobService) ListJobs(ctx context.Context, filter models.JobFilter) ([]*models.Job, int, error) {
	query := applyFilter(s.client.ReviewJob.Query(), filter)

	total, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	order := ent.Desc(reviewjob.FieldCreatedAt)
	if filter.OrderAsc {
		order = ent.Asc(reviewjob.FieldCreatedAt)
	}

	jobs, err := query.
		Limit(limit).
		Offset(offset).
		Order(order).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}

	out := make([]*models.Job, len(jobs))
	for i, j := range jobs {
		out[i] = toModel(j)
	}
	return out, total, nil
}

// CountJobs returns how many jobs match the filter, ignoring paging.
func (s *JobService) CountJobs(ctx context.Context, filter models.JobFilter) (int, error) {
	count, err := applyFilter(s.client.ReviewJob.Query(), filter).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return count, nil
}

// applyFilter narrows a job query to the rows the filter describes.
// Paging and ordering are left to the caller. Search is a substring match;
// the tsvector path lives in SearchJobs.
func applyFilter(query *ent.ReviewJobQuery, filter models.JobFilter) *ent.ReviewJobQuery {
	if filter.Status != "" {
		query = query.Where(reviewjob.StatusEQ(filter.Status))
	}
	if filter.HumanDecision != "" {
		query = query.Where(reviewjob.HumanDecisionEQ(reviewjob.HumanDecision(filter.HumanDecision)))
	}
	if filter.LLMDecision != "" {
		query = query.Where(reviewjob.LlmDecisionEQ(reviewjob.LlmDecision(filter.LLMDecision)))
	}
	if q := strings.TrimSpace(filter.Search); q != "" {
		query = query.Where(reviewjob.Or(
			reviewjob.TitleContainsFold(q),
			reviewjob.ProposalContentContainsFold(q),
		))
	}
	return query
}

// SearchJobs runs a full-text search over title and proposal content.
// Uses the GIN tsvector indexes created by the migration layer.
func (s *JobService) SearchJobs(ctx context.Context, query string, limit int) ([]*models.Job, error) {
	if limit <= 0 {
		limit = 20
	}

	jobs, err := s.client.ReviewJob.Query().
		Where(func(sel *sql.Selector) {
			sel.Where(sql.Or(
				sql.ExprP("to_tsvector('simple', title) @@ plainto_tsquery('simple', $1)", query),
				sql.ExprP("to_tsvector('simple', proposal_content) @@ plainto_tsquery('simple', $2)", query),
			))
		}).
		Limit(limit).
		Order(ent.Desc(reviewjob.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search jobs: %w", err)
	}

	out := make([]*models.Job, len(jobs))
	for i, j := range jobs {
		out[i] = toModel(j)
	}
	return out, nil
}

// DeleteJob removes a job permanently.
func (s *JobService) DeleteJob(ctx context.Context, id int) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.client.ReviewJob.DeleteOneID(id).Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}

// validateHITLStages checks that configured checkpoint numbers refer to
// stages that can actually pause (scouting never pauses).
func validateHITLStages(stages []int) error {
	for _, n := range stages {
		if n < stage.NumObjective || n > stage.NumFinal {
			return NewValidationError("hitl_stages",
				fmt.Sprintf("stage %d cannot be a feedback checkpoint", n))
		}
	}
	return nil
}

func validateDecision(field string, v *string) error {
	if v == nil {
		return nil
	}
	switch *v {
	case models.DecisionPending, models.DecisionApproved, models.DecisionOnHold:
		return nil
	default:
		return NewValidationError(field, fmt.Sprintf("invalid decision %q", *v))
	}
}

// toModel converts the ent entity into the domain snapshot the rest of
// the system operates on.
func toModel(j *ent.ReviewJob) *models.Job {
	m := &models.Job{
		ID:                       j.ID,
		Title:                    j.Title,
		Domain:                   j.Domain,
		Division:                 j.Division,
		ProposalContent:          j.ProposalContent,
		Segments:                 j.Segments,
		HITLStages:               j.HitlStages,
		Status:                   j.Status,
		HumanDecision:            string(j.HumanDecision),
		LLMDecision:              string(j.LlmDecision),
		Metadata:                 j.Metadata,
		EnableSequentialThinking: j.EnableSequentialThinking,
		CreatedAt:                j.CreatedAt,
		UpdatedAt:                j.UpdatedAt,
	}
	if j.SourcePageID != nil {
		m.SourcePageID = *j.SourcePageID
	}
	if j.SourcePageURL != nil {
		m.SourcePageURL = *j.SourcePageURL
	}
	return m
}
