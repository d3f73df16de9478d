package orchestrator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koreview/revu/pkg/config"
	"github.com/koreview/revu/pkg/events"
	"github.com/koreview/revu/pkg/feedback"
	"github.com/koreview/revu/pkg/llm"
	"github.com/koreview/revu/pkg/models"
	"github.com/koreview/revu/pkg/stage"
)

// fakeStore keeps one job in memory and applies patches the way
// services.JobService does, so the orchestrator's durability writes are
// observable.
type fakeStore struct {
	mu      sync.Mutex
	job     models.Job
	trail   []string // every status the job passed through
	patches []models.JobPatch
}

func newFakeStore(job models.Job) *fakeStore {
	return &fakeStore{job: job, trail: []string{job.Status}}
}

func (s *fakeStore) GetJob(ctx context.Context, id int) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j := s.job
	return &j, nil
}

func (s *fakeStore) UpdateJob(ctx context.Context, id int, patch models.JobPatch) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patches = append(s.patches, patch)
	if patch.Status != nil {
		s.job.Status = *patch.Status
		s.trail = append(s.trail, *patch.Status)
	}
	if patch.LLMDecision != nil {
		s.job.LLMDecision = *patch.LLMDecision
	}
	if patch.Metadata != nil {
		s.job.Metadata = models.MergeMetadata(s.job.Metadata, *patch.Metadata)
	}
	j := s.job
	return &j, nil
}

func (s *fakeStore) snapshot() models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.job
}

func (s *fakeStore) statusTrail() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.trail...)
}

// recorderPublisher collects events in emission order. onInterrupt lets a
// test answer a checkpoint synchronously, before the orchestrator starts
// waiting on the inbox.
type recorderPublisher struct {
	mu          sync.Mutex
	types       []string
	payloads    []any
	onInterrupt func(events.InterruptPayload)
}

func (p *recorderPublisher) record(typ string, payload any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.types = append(p.types, typ)
	p.payloads = append(p.payloads, payload)
}

func (p *recorderPublisher) PublishPageProgress(ctx context.Context, jobID int, payload events.PageProgressPayload) error {
	p.record(events.EventTypePageProgress, payload)
	return nil
}

func (p *recorderPublisher) PublishStageStatus(ctx context.Context, jobID int, payload events.StageStatusPayload) error {
	p.record(events.EventTypeStageStatus, payload)
	return nil
}

func (p *recorderPublisher) PublishBPCases(ctx context.Context, jobID int, payload events.BPCasesPayload) error {
	p.record(events.EventTypeBPCases, payload)
	return nil
}

func (p *recorderPublisher) PublishInterrupt(ctx context.Context, jobID int, payload events.InterruptPayload) error {
	p.record(events.EventTypeInterrupt, payload)
	if p.onInterrupt != nil {
		p.onInterrupt(payload)
	}
	return nil
}

func (p *recorderPublisher) PublishPageCompleted(ctx context.Context, jobID int, payload events.PageCompletedPayload) error {
	p.record(events.EventTypePageCompleted, payload)
	return nil
}

func (p *recorderPublisher) PublishCompleted(ctx context.Context, jobID int, payload events.CompletedPayload) error {
	p.record(events.EventTypeCompleted, payload)
	return nil
}

func (p *recorderPublisher) PublishError(ctx context.Context, jobID int, payload events.ErrorPayload) error {
	p.record(events.EventTypeError, payload)
	return nil
}

func (p *recorderPublisher) eventTypes() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.types...)
}

func (p *recorderPublisher) count(typ string) int {
	n := 0
	for _, t := range p.eventTypes() {
		if t == typ {
			n++
		}
	}
	return n
}

func (p *recorderPublisher) interrupts() []events.InterruptPayload {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []events.InterruptPayload
	for _, pl := range p.payloads {
		if ip, ok := pl.(events.InterruptPayload); ok {
			out = append(out, ip)
		}
	}
	return out
}

func (p *recorderPublisher) stageStatuses(agent, status string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, pl := range p.payloads {
		if sp, ok := pl.(events.StageStatusPayload); ok && sp.Agent == agent && sp.Status == status {
			n++
		}
	}
	return n
}

func (p *recorderPublisher) lastOf(typ string) (any, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := len(p.types) - 1; i >= 0; i-- {
		if p.types[i] == typ {
			return p.payloads[i], true
		}
	}
	return nil, false
}

// scriptedLLM answers by prompt kind: quality assessments and decision
// classifications get fixed JSON, everything else gets stage text. All
// prompts are recorded for assertion.
type scriptedLLM struct {
	mu        sync.Mutex
	prompts   []string
	decisions []string // consumed per classification call, last one sticks
	stageText string
	stageErr  error
}

func (l *scriptedLLM) Complete(ctx context.Context, prompt string, opts llm.Options) (string, error) {
	l.mu.Lock()
	l.prompts = append(l.prompts, prompt)
	l.mu.Unlock()

	switch {
	case strings.Contains(prompt, "품질 관리"):
		return `{"issues": [], "suggestion": "예시 피드백"}`, nil
	case strings.Contains(prompt, "심사위원"):
		l.mu.Lock()
		defer l.mu.Unlock()
		if len(l.decisions) == 0 {
			return `{"decision": "승인", "reason": "근거가 충분합니다"}`, nil
		}
		d := l.decisions[0]
		if len(l.decisions) > 1 {
			l.decisions = l.decisions[1:]
		}
		return d, nil
	default:
		if l.stageErr != nil {
			return "", l.stageErr
		}
		if l.stageText != "" {
			return l.stageText, nil
		}
		return "목표와 KPI가 구체적으로 제시되어 있으며 실행 계획의 타당성이 확인됩니다.", nil
	}
}

func (l *scriptedLLM) recordedPrompts() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.prompts...)
}

type fakeSearcher struct {
	cases []models.BPCase
}

func (s fakeSearcher) SearchBPCases(ctx context.Context, domain, division, proposalContent string) ([]models.BPCase, error) {
	return s.cases, nil
}

// failingSearcher simulates a dead retrieval gateway.
type failingSearcher struct{}

func (failingSearcher) SearchBPCases(ctx context.Context, domain, division, proposalContent string) ([]models.BPCase, error) {
	return nil, errors.New("search gateway unavailable")
}

func testJob(hitl []int) models.Job {
	return models.Job{
		ID:              7,
		Title:           "고객 문의 자동응답 도입",
		Domain:          "AI/ML",
		Division:        "고객서비스",
		ProposalContent: "고객 문의 응답 자동화를 위해 LLM 기반 챗봇을 도입하고자 합니다.",
		HITLStages:      hitl,
		Status:          models.StatusPending,
		HumanDecision:   models.DecisionPending,
		LLMDecision:     models.DecisionPending,
	}
}

type rig struct {
	orch  *Orchestrator
	store *fakeStore
	pub   *recorderPublisher
	llm   *scriptedLLM
	inbox *feedback.Inbox
}

func newRig(t *testing.T, job models.Job, cfg *config.ReviewConfig) *rig {
	t.Helper()
	if cfg == nil {
		cfg = &config.ReviewConfig{
			FeedbackTimeout: 5 * time.Second,
			MaxHITLRetries:  3,
		}
	}
	r := &rig{
		store: newFakeStore(job),
		pub:   &recorderPublisher{},
		llm:   &scriptedLLM{},
		inbox: feedback.NewInbox(),
	}
	r.orch = New(r.store, r.pub, stage.Effects{
		LLM: r.llm,
		Retrieval: fakeSearcher{cases: []models.BPCase{
			{Title: "상담 자동화", Summary: "콜센터 상담 자동화 사례"},
			{Title: "문서 요약", Summary: "사내 문서 자동 요약 사례"},
		}},
	}, r.inbox, cfg)
	return r
}

func TestRun_NoCheckpoints(t *testing.T) {
	r := newRig(t, testJob(nil), nil)

	err := r.orch.Run(context.Background(), 7)
	require.NoError(t, err)

	// One segment, no checkpoints: progress, scouting, four analyses, the
	// synthesis, then the report, the improver, and the final event.
	ss := events.EventTypeStageStatus
	expected := []string{
		events.EventTypePageProgress,
		ss, ss, // scouter
		events.EventTypeBPCases,
		ss, ss, // objective
		ss, ss, // data
		ss, ss, // risk
		ss, ss, // roi
		ss, ss, // final
		events.EventTypePageCompleted,
		ss, ss, // improver
		events.EventTypeCompleted,
	}
	assert.Equal(t, expected, r.pub.eventTypes())
	assert.Zero(t, r.pub.count(events.EventTypeInterrupt))
	assert.Zero(t, r.pub.count(events.EventTypeError))

	job := r.store.snapshot()
	assert.Equal(t, models.StatusCompleted, job.Status)
	assert.Equal(t, models.DecisionApproved, job.LLMDecision)
	assert.NotEmpty(t, job.Metadata.Report)
	require.NotNil(t, job.Metadata.FinalDecision)
	assert.Equal(t, models.DecisionApproved, job.Metadata.FinalDecision.Decision)
	assert.NotEmpty(t, job.Metadata.AgentResults[stage.KeyImprovedProposal])

	// Intermediate statuses must have been persisted in pipeline order.
	assert.Equal(t, []string{
		models.StatusPending,
		models.StatusBPDone,
		models.StatusObjectiveDone,
		models.StatusDataDone,
		models.StatusRiskDone,
		models.StatusROIDone,
		models.StatusCompleted,
	}, r.store.statusTrail())
}

func TestRun_FeedbackRerunsStage(t *testing.T) {
	r := newRig(t, testJob([]int{stage.NumObjective}), nil)

	const feedbackText = "목표 KPI를 수치로 제시해 주세요"
	r.pub.onInterrupt = func(p events.InterruptPayload) {
		if p.Attempt == 0 {
			r.inbox.Publish(7, feedback.Feedback{Text: feedbackText})
			return
		}
		r.inbox.Publish(7, feedback.Feedback{Skip: true})
	}

	err := r.orch.Run(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 2, r.pub.count(events.EventTypeInterrupt))
	assert.Equal(t, 2, r.pub.stageStatuses(stage.NameObjective, events.StageStatusCompleted))

	// The rerun prompt must carry the feedback and the previous result.
	var rerun string
	for _, p := range r.llm.recordedPrompts() {
		if strings.Contains(p, feedbackText) {
			rerun = p
			break
		}
	}
	require.NotEmpty(t, rerun, "no rerun prompt carried the user feedback")
	assert.Contains(t, rerun, "반드시 반영")

	job := r.store.snapshot()
	assert.Equal(t, models.StatusCompleted, job.Status)
	assert.Equal(t, feedbackText, job.Metadata.UserFeedbacks["2"])
	require.Len(t, job.Metadata.FeedbackHistory, 2)
	assert.Equal(t, stage.NumObjective, job.Metadata.FeedbackHistory[0].Stage)
	assert.False(t, job.Metadata.FeedbackHistory[0].Skip)
	assert.True(t, job.Metadata.FeedbackHistory[1].Skip)
}

func TestRun_SkipAcceptsWithoutRerun(t *testing.T) {
	r := newRig(t, testJob([]int{stage.NumObjective}), nil)
	r.pub.onInterrupt = func(events.InterruptPayload) {
		r.inbox.Publish(7, feedback.Feedback{Skip: true})
	}

	err := r.orch.Run(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 1, r.pub.count(events.EventTypeInterrupt))
	assert.Equal(t, 1, r.pub.stageStatuses(stage.NameObjective, events.StageStatusCompleted))

	trail := r.store.statusTrail()
	assert.Contains(t, trail, models.StatusWaitingFeedback)
	assert.Equal(t, models.StatusCompleted, r.store.snapshot().Status)
}

func TestRun_RetrievalFailureDegradesToSamples(t *testing.T) {
	r := newRig(t, testJob(nil), nil)
	r.orch.effects.Retrieval = failingSearcher{}

	err := r.orch.Run(context.Background(), 7)
	require.NoError(t, err)

	// The bp_cases event still carries records, served from the built-in
	// sample set, and the pipeline runs to completion.
	payload, ok := r.pub.lastOf(events.EventTypeBPCases)
	require.True(t, ok)
	bp := payload.(events.BPCasesPayload)
	assert.NotEmpty(t, bp.Records)
	assert.Contains(t, bp.Records[0].Title, "AI/ML")

	assert.Equal(t, models.StatusCompleted, r.store.snapshot().Status)
	assert.Equal(t, 1, r.pub.count(events.EventTypeCompleted))
}

func TestRun_WaitingStatusPersistedBeforeInterrupt(t *testing.T) {
	r := newRig(t, testJob([]int{stage.NumObjective}), nil)

	// A client posting feedback the instant the interrupt arrives must find
	// the job already in waiting_feedback.
	var statusAtInterrupt string
	r.pub.onInterrupt = func(events.InterruptPayload) {
		statusAtInterrupt = r.store.snapshot().Status
		r.inbox.Publish(7, feedback.Feedback{Skip: true})
	}

	err := r.orch.Run(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, models.StatusWaitingFeedback, statusAtInterrupt)
}

func TestRun_RetryLimitBoundsReruns(t *testing.T) {
	r := newRig(t, testJob([]int{stage.NumData}), nil)
	r.pub.onInterrupt = func(events.InterruptPayload) {
		r.inbox.Publish(7, feedback.Feedback{Text: "데이터 출처를 보강해 주세요"})
	}

	err := r.orch.Run(context.Background(), 7)
	require.NoError(t, err)

	// With a retry budget of 3 the stage executes 4 times, then the last
	// feedback is recorded but no longer triggers a rerun.
	interrupts := r.pub.interrupts()
	require.Len(t, interrupts, 4)
	for i, ip := range interrupts {
		assert.Equal(t, i, ip.Attempt)
		assert.Equal(t, stage.NameData, ip.Agent)
	}
	assert.Equal(t, 4, r.pub.stageStatuses(stage.NameData, events.StageStatusCompleted))
	assert.Equal(t, models.StatusCompleted, r.store.snapshot().Status)
}

func TestRun_MultiSegment(t *testing.T) {
	job := testJob(nil)
	job.Segments = []models.Segment{
		{ID: "101", Title: "상담 자동화 제안", Content: "상담 업무 자동화 계획입니다."},
		{ID: "102", Title: "품질 예측 제안", Content: "불량 예측 모델 도입 계획입니다."},
	}
	r := newRig(t, job, nil)
	r.llm.decisions = []string{
		`{"decision": "승인", "reason": "타당합니다"}`,
		`{"decision": "보류", "reason": "ROI 근거 부족"}`,
	}

	err := r.orch.Run(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 2, r.pub.count(events.EventTypePageProgress))
	assert.Equal(t, 2, r.pub.count(events.EventTypePageCompleted))
	assert.Equal(t, 1, r.pub.count(events.EventTypeCompleted))

	// Every page_progress tells clients to clear their stage panels.
	for _, pl := range r.pub.payloads {
		if pp, ok := pl.(events.PageProgressPayload); ok {
			assert.True(t, pp.ResetAgents)
		}
	}

	// The rewrite stage only runs for single-segment submissions.
	assert.Zero(t, r.pub.stageStatuses(stage.NameImprover, events.StageStatusProcessing))

	last, ok := r.pub.lastOf(events.EventTypeCompleted)
	require.True(t, ok)
	completed := last.(events.CompletedPayload)
	require.Len(t, completed.Decisions, 2)
	assert.Equal(t, "상담 자동화 제안", completed.Decisions[0].Title)
	assert.Equal(t, models.DecisionApproved, completed.Decisions[0].Decision)
	assert.Equal(t, models.DecisionOnHold, completed.Decisions[1].Decision)

	// One held segment holds the whole job.
	assert.Equal(t, models.DecisionOnHold, completed.Decision)
	assert.Equal(t, "ROI 근거 부족", completed.DecisionReason)
	assert.Equal(t, models.DecisionOnHold, r.store.snapshot().LLMDecision)

	pc, ok := r.pub.lastOf(events.EventTypePageCompleted)
	require.True(t, ok)
	page := pc.(events.PageCompletedPayload)
	assert.Equal(t, 2, page.Current)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, "102", page.PageID)

	job = r.store.snapshot()
	require.Len(t, job.Metadata.SegmentReports, 2)
	assert.Contains(t, job.Metadata.Report, "<hr/>")
	assert.Contains(t, job.Metadata.Report, "품질 예측 제안")
}

func TestRun_FeedbackTimeoutIsSkip(t *testing.T) {
	cfg := &config.ReviewConfig{
		FeedbackTimeout: 20 * time.Millisecond,
		MaxHITLRetries:  3,
	}
	r := newRig(t, testJob([]int{stage.NumFinal}), cfg)

	err := r.orch.Run(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 1, r.pub.count(events.EventTypeInterrupt))
	assert.Equal(t, 1, r.pub.stageStatuses(stage.NameFinal, events.StageStatusCompleted))
	assert.Equal(t, models.StatusCompleted, r.store.snapshot().Status)
}

func TestRun_StageFailureMarksJobError(t *testing.T) {
	r := newRig(t, testJob(nil), nil)
	r.llm.stageErr = errors.New("gateway unavailable")

	err := r.orch.Run(context.Background(), 7)
	require.Error(t, err)

	job := r.store.snapshot()
	assert.Equal(t, models.StatusError, job.Status)

	types := r.pub.eventTypes()
	require.NotEmpty(t, types)
	assert.Equal(t, events.EventTypeError, types[len(types)-1])
	assert.Equal(t, 1, r.pub.stageStatuses(stage.NameObjective, events.StageStatusFailed))

	last, ok := r.pub.lastOf(events.EventTypeError)
	require.True(t, ok)
	assert.Contains(t, last.(events.ErrorPayload).Message, "gateway unavailable")
}

func TestRun_PersistsResultBeforeCompletionEvent(t *testing.T) {
	r := newRig(t, testJob(nil), nil)

	err := r.orch.Run(context.Background(), 7)
	require.NoError(t, err)

	// Every stage result lands in agent_results even though no checkpoint
	// was configured, so a restart can resume from the stored state.
	results := r.store.snapshot().Metadata.AgentResults
	for _, key := range []string{
		stage.KeyObjectiveReview,
		stage.KeyDataAnalysis,
		stage.KeyRiskAnalysis,
		stage.KeyROIEstimation,
		stage.KeyFinalRecommendation,
	} {
		assert.NotEmpty(t, results[key], "missing persisted result for %s", key)
	}
	assert.NotEmpty(t, r.store.snapshot().Metadata.BPCases)
}
