// Package orchestrator drives a review job through its stage pipeline.
//
// The orchestrator owns sequencing, durability, and progress events. Stages
// are pure functions over an input snapshot (pkg/stage); persistence goes
// through the JobStore interface; progress goes through ProgressPublisher.
// The orchestrator persists every stage result before emitting the matching
// event and before starting the next LLM call, so a crash never loses more
// than the stage in flight.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/koreview/revu/pkg/config"
	"github.com/koreview/revu/pkg/events"
	"github.com/koreview/revu/pkg/feedback"
	"github.com/koreview/revu/pkg/models"
	"github.com/koreview/revu/pkg/stage"
)

// JobStore is the persistence surface the orchestrator needs.
// Implemented by services.JobService.
type JobStore interface {
	GetJob(ctx context.Context, id int) (*models.Job, error)
	UpdateJob(ctx context.Context, id int, patch models.JobPatch) (*models.Job, error)
}

// ProgressPublisher delivers progress events. Implemented by
// events.EventPublisher; tests substitute a recorder.
type ProgressPublisher interface {
	PublishPageProgress(ctx context.Context, jobID int, payload events.PageProgressPayload) error
	PublishStageStatus(ctx context.Context, jobID int, payload events.StageStatusPayload) error
	PublishBPCases(ctx context.Context, jobID int, payload events.BPCasesPayload) error
	PublishInterrupt(ctx context.Context, jobID int, payload events.InterruptPayload) error
	PublishPageCompleted(ctx context.Context, jobID int, payload events.PageCompletedPayload) error
	PublishCompleted(ctx context.Context, jobID int, payload events.CompletedPayload) error
	PublishError(ctx context.Context, jobID int, payload events.ErrorPayload) error
}

// Orchestrator runs review jobs end to end.
type Orchestrator struct {
	store     JobStore
	publisher ProgressPublisher
	effects   stage.Effects
	inbox     *feedback.Inbox
	cfg       *config.ReviewConfig
}

// New creates an Orchestrator.
func New(store JobStore, publisher ProgressPublisher, effects stage.Effects, inbox *feedback.Inbox, cfg *config.ReviewConfig) *Orchestrator {
	return &Orchestrator{
		store:     store,
		publisher: publisher,
		effects:   effects,
		inbox:     inbox,
		cfg:       cfg,
	}
}

// run-scoped state for one job execution.
type run struct {
	job       *models.Job
	feedbacks map[string]string      // stage number → latest checkpoint feedback
	history   []models.FeedbackEntry // append-only checkpoint trail
}

// Run executes the full pipeline for one job. On a fatal stage error the job
// is marked error, an error event is emitted, and the error is returned for
// the worker's bookkeeping.
func (o *Orchestrator) Run(ctx context.Context, jobID int) error {
	defer o.inbox.Drop(jobID)

	job, err := o.store.GetJob(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to load job %d: %w", jobID, err)
	}

	r := &run{
		job:       job,
		feedbacks: make(map[string]string),
		history:   append([]models.FeedbackEntry(nil), job.Metadata.FeedbackHistory...),
	}
	for k, v := range job.Metadata.UserFeedbacks {
		r.feedbacks[k] = v
	}

	if err := o.reviewJob(ctx, r); err != nil {
		o.failJob(ctx, jobID, err)
		return err
	}
	return nil
}

func (o *Orchestrator) reviewJob(ctx context.Context, r *run) error {
	jobID := r.job.ID
	segments := r.job.ReviewSegments()
	total := len(segments)

	var reports []models.SegmentReport

	for i, seg := range segments {
		_ = o.publisher.PublishPageProgress(ctx, jobID, events.PageProgressPayload{
			Current:     i + 1,
			Total:       total,
			Status:      "processing",
			PageTitle:   seg.Title,
			ResetAgents: true,
			Timestamp:   now(),
		})

		in := stage.Input{
			Segment:            seg,
			Domain:             r.job.Domain,
			Division:           r.job.Division,
			SequentialThinking: r.job.EnableSequentialThinking,
			Upstream:           make(map[string]string),
		}

		final, err := o.reviewSegment(ctx, r, &in)
		if err != nil {
			return err
		}

		reports = append(reports, models.SegmentReport{
			Title:    seg.Title,
			ID:       seg.ID,
			Report:   final.Report,
			Decision: final.Decision,
			Reason:   final.Reason,
		})

		// Durability before the page_completed event: the appended segment
		// report must survive a crash between segments.
		if _, err := o.store.UpdateJob(ctx, jobID, models.JobPatch{
			Metadata: &models.Metadata{SegmentReports: reports},
		}); err != nil {
			return fmt.Errorf("failed to persist segment report: %w", err)
		}

		_ = o.publisher.PublishPageCompleted(ctx, jobID, events.PageCompletedPayload{
			Current:   i + 1,
			Total:     total,
			PageTitle: seg.Title,
			PageID:    seg.ID,
			Report:    final.Report,
			Decision:  final.Decision,
			Reason:    final.Reason,
			Timestamp: now(),
		})

		// Carry-over for the improver: the last segment's context stands in
		// for the whole job on single-segment submissions.
		if i == total-1 && total == 1 {
			o.improveProposal(ctx, r, in)
		}
	}

	return o.completeJob(ctx, r, reports)
}

// reviewSegment runs stages 1 through 6 for one segment and returns the
// synthesis result.
func (o *Orchestrator) reviewSegment(ctx context.Context, r *run, in *stage.Input) (*stage.FinalResult, error) {
	jobID := r.job.ID

	// Stage 1: case scouting. Degrades to sample cases, never HITL.
	o.stageStatus(ctx, jobID, stage.NameBPScouter, events.StageStatusProcessing, "BP 사례 검색 중...")
	cases := stage.RunBPScouter(ctx, o.effects, *in)
	in.BPCases = cases

	if _, err := o.store.UpdateJob(ctx, jobID, models.JobPatch{
		Status:   ptr(models.StatusBPDone),
		Metadata: &models.Metadata{BPCases: cases},
	}); err != nil {
		return nil, fmt.Errorf("failed to persist scouting result: %w", err)
	}

	o.stageStatus(ctx, jobID, stage.NameBPScouter, events.StageStatusCompleted,
		fmt.Sprintf("BP 사례 %d건 검색 완료", len(cases)))
	_ = o.publisher.PublishBPCases(ctx, jobID, events.BPCasesPayload{
		Records:   cases,
		Timestamp: now(),
	})

	// Stages 2-5: the four analyses.
	statusByStage := map[int]string{
		stage.NumObjective: models.StatusObjectiveDone,
		stage.NumData:      models.StatusDataDone,
		stage.NumRisk:      models.StatusRiskDone,
		stage.NumROI:       models.StatusROIDone,
	}
	for _, rs := range stage.ReviewStages {
		rs := rs
		text, err := o.stageLoop(ctx, r, in, stageRunner{
			num:          rs.Num,
			name:         rs.Name,
			resultKey:    rs.ResultKey,
			startMessage: rs.StartMessage,
			doneMessage:  rs.DoneMessage,
			doneStatus:   statusByStage[rs.Num],
			run: func(ctx context.Context, in stage.Input) (string, error) {
				return rs.Run(ctx, o.effects, in)
			},
		})
		if err != nil {
			return nil, err
		}
		in.Upstream[rs.ResultKey] = text
	}

	// Stage 6: synthesis.
	recommendation, err := o.stageLoop(ctx, r, in, stageRunner{
		num:          stage.NumFinal,
		name:         stage.NameFinal,
		resultKey:    stage.KeyFinalRecommendation,
		startMessage: "최종 보고서 생성 중...",
		doneMessage:  "최종 의견 생성 완료",
		run: func(ctx context.Context, in stage.Input) (string, error) {
			return stage.RunFinalRecommendation(ctx, o.effects, in, r.feedbacks)
		},
	})
	if err != nil {
		return nil, err
	}
	in.Upstream[stage.KeyFinalRecommendation] = recommendation

	report := stage.BuildReport(*in, recommendation)
	decision, reason := stage.ClassifyFinalDecision(ctx, o.effects.LLM, report, recommendation)

	return &stage.FinalResult{
		Recommendation: recommendation,
		Report:         report,
		Decision:       decision,
		Reason:         reason,
	}, nil
}

// stageRunner describes one HITL-capable stage execution for stageLoop.
type stageRunner struct {
	num          int
	name         string
	resultKey    string
	startMessage string
	doneMessage  string
	doneStatus   string // job status label after the stage, empty to skip
	run          func(ctx context.Context, in stage.Input) (string, error)
}

// stageLoop runs one stage, then, at a checkpoint, suspends for feedback and
// reruns the stage with the feedback folded in. Retries are bounded by
// MaxHITLRetries; skip, empty feedback, and timeout all accept the current
// result. The quality assessment is advisory: it annotates the interrupt but
// never forces a rerun on its own.
func (o *Orchestrator) stageLoop(ctx context.Context, r *run, in *stage.Input, sr stageRunner) (string, error) {
	jobID := r.job.ID
	o.inbox.Reset(jobID)

	attempt := 0
	for {
		o.stageStatus(ctx, jobID, sr.name, events.StageStatusProcessing, sr.startMessage)

		result, err := sr.run(ctx, *in)
		if err != nil {
			o.stageStatus(ctx, jobID, sr.name, events.StageStatusFailed, err.Error())
			return "", err
		}
		in.UserFeedback = ""

		patch := models.JobPatch{
			Metadata: &models.Metadata{AgentResults: map[string]string{sr.resultKey: result}},
		}
		if sr.doneStatus != "" {
			patch.Status = ptr(sr.doneStatus)
		}
		if _, err := o.store.UpdateJob(ctx, jobID, patch); err != nil {
			return "", fmt.Errorf("failed to persist %s result: %w", sr.name, err)
		}

		o.stageStatus(ctx, jobID, sr.name, events.StageStatusCompleted, sr.doneMessage)

		if !r.job.HITLEnabled(sr.num) {
			return result, nil
		}

		quality := stage.AssessQuality(ctx, o.effects.LLM, sr.name, result, in.Proposal())

		// Mark the job waiting before the interrupt goes out so a client that
		// posts feedback the moment it sees the event finds the status in place.
		if _, err := o.store.UpdateJob(ctx, jobID, models.JobPatch{
			Status: ptr(models.StatusWaitingFeedback),
		}); err != nil {
			return "", fmt.Errorf("failed to mark job waiting for feedback: %w", err)
		}

		_ = o.publisher.PublishInterrupt(ctx, jobID, events.InterruptPayload{
			Agent:              sr.name,
			Results:            map[string]string{sr.resultKey: result},
			FeedbackSuggestion: quality.Suggestion,
			QualityIssues:      quality.Issues,
			Attempt:            attempt,
			Timestamp:          now(),
		})

		fb, err := o.inbox.Await(ctx, jobID, o.cfg.FeedbackTimeout)
		if err != nil {
			return "", fmt.Errorf("feedback wait aborted: %w", err)
		}

		o.recordFeedback(ctx, r, sr.num, fb)

		if fb.Skip || strings.TrimSpace(fb.Text) == "" {
			o.restoreStatus(ctx, jobID, sr.doneStatus)
			return result, nil
		}
		if attempt >= o.cfg.MaxHITLRetries {
			slog.Info("Checkpoint retry limit reached, accepting current result",
				"job_id", jobID, "agent", sr.name, "attempts", attempt)
			o.restoreStatus(ctx, jobID, sr.doneStatus)
			return result, nil
		}

		attempt++
		in.UserFeedback = strings.TrimSpace(fb.Text)
		in.Upstream[sr.resultKey] = result
		r.feedbacks[strconv.Itoa(sr.num)] = in.UserFeedback

		if _, err := o.store.UpdateJob(ctx, jobID, models.JobPatch{
			Metadata: &models.Metadata{UserFeedbacks: r.feedbacks},
		}); err != nil {
			return "", fmt.Errorf("failed to persist checkpoint feedback: %w", err)
		}

		o.stageStatus(ctx, jobID, sr.name, events.StageStatusProcessing,
			fmt.Sprintf("품질 개선을 위해 재검토 중... (%d/%d)", attempt, o.cfg.MaxHITLRetries))
	}
}

// completeJob aggregates segment outcomes and finalizes the job.
func (o *Orchestrator) completeJob(ctx context.Context, r *run, reports []models.SegmentReport) error {
	jobID := r.job.ID

	decision := models.DecisionApproved
	reason := ""
	for _, rep := range reports {
		if rep.Decision != models.DecisionApproved {
			decision = models.DecisionOnHold
			reason = rep.Reason
			break
		}
	}
	if reason == "" && len(reports) > 0 {
		reason = reports[len(reports)-1].Reason
	}

	combined := combineReports(reports)

	meta := &models.Metadata{
		Report:         combined,
		SegmentReports: reports,
		FinalDecision:  &models.FinalDecision{Decision: decision, Reason: reason},
	}
	if _, err := o.store.UpdateJob(ctx, jobID, models.JobPatch{
		Status:      ptr(models.StatusCompleted),
		LLMDecision: ptr(decision),
		Metadata:    meta,
	}); err != nil {
		return fmt.Errorf("failed to finalize job: %w", err)
	}

	var decisions []events.SegmentDecision
	if len(reports) > 1 {
		for _, rep := range reports {
			decisions = append(decisions, events.SegmentDecision{
				Title:    rep.Title,
				Decision: rep.Decision,
				Reason:   rep.Reason,
			})
		}
	}

	_ = o.publisher.PublishCompleted(ctx, jobID, events.CompletedPayload{
		Report:         combined,
		Decision:       decision,
		DecisionReason: reason,
		Decisions:      decisions,
		Timestamp:      now(),
	})
	return nil
}

// improveProposal runs the rewrite stage. Fail-open: the review is already
// complete, so a failure here is logged and swallowed.
func (o *Orchestrator) improveProposal(ctx context.Context, r *run, in stage.Input) {
	jobID := r.job.ID
	o.stageStatus(ctx, jobID, stage.NameImprover, events.StageStatusProcessing, "개선된 지원서 작성 중...")

	improved, err := stage.RunProposalImprover(ctx, o.effects, in, r.feedbacks)
	if err != nil {
		slog.Warn("Proposal improver failed", "job_id", jobID, "error", err)
		o.stageStatus(ctx, jobID, stage.NameImprover, events.StageStatusFailed, "개선된 지원서 작성 실패")
		return
	}

	if _, err := o.store.UpdateJob(ctx, jobID, models.JobPatch{
		Metadata: &models.Metadata{AgentResults: map[string]string{stage.KeyImprovedProposal: improved}},
	}); err != nil {
		slog.Warn("Failed to persist improved proposal", "job_id", jobID, "error", err)
		return
	}

	o.stageStatus(ctx, jobID, stage.NameImprover, events.StageStatusCompleted, "개선된 지원서 작성 완료")
}

// recordFeedback appends a checkpoint response to the job's feedback trail.
// Best-effort: the trail is diagnostic, a write failure must not stall the
// pipeline.
func (o *Orchestrator) recordFeedback(ctx context.Context, r *run, stageNum int, fb feedback.Feedback) {
	r.history = append(r.history, models.FeedbackEntry{
		Timestamp: time.Now().UTC(),
		Stage:     stageNum,
		Feedback:  strings.TrimSpace(fb.Text),
		Skip:      fb.Skip,
	})
	if _, err := o.store.UpdateJob(ctx, r.job.ID, models.JobPatch{
		Metadata: &models.Metadata{FeedbackHistory: r.history},
	}); err != nil {
		slog.Warn("Failed to persist feedback history", "job_id", r.job.ID, "error", err)
	}
}

func (o *Orchestrator) restoreStatus(ctx context.Context, jobID int, status string) {
	if status == "" {
		return
	}
	if _, err := o.store.UpdateJob(ctx, jobID, models.JobPatch{Status: ptr(status)}); err != nil {
		slog.Warn("Failed to restore job status", "job_id", jobID, "status", status, "error", err)
	}
}

func (o *Orchestrator) failJob(ctx context.Context, jobID int, cause error) {
	if _, err := o.store.UpdateJob(ctx, jobID, models.JobPatch{
		Status: ptr(models.StatusError),
	}); err != nil {
		slog.Error("Failed to mark job as errored", "job_id", jobID, "error", err)
	}
	_ = o.publisher.PublishError(ctx, jobID, events.ErrorPayload{
		Message:   cause.Error(),
		Timestamp: now(),
	})
}

func (o *Orchestrator) stageStatus(ctx context.Context, jobID int, agent, status, message string) {
	_ = o.publisher.PublishStageStatus(ctx, jobID, events.StageStatusPayload{
		Agent:     agent,
		Status:    status,
		Message:   message,
		Timestamp: now(),
	})
}

func combineReports(reports []models.SegmentReport) string {
	if len(reports) == 1 {
		return reports[0].Report
	}
	var b strings.Builder
	for i, rep := range reports {
		if i > 0 {
			b.WriteString("\n<hr/>\n")
		}
		fmt.Fprintf(&b, "<h3>%d. %s</h3>\n%s", i+1, rep.Title, rep.Report)
	}
	return b.String()
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func ptr[T any](v T) *T {
	return &v
}
