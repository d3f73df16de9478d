package queue

import (
	"context"

	"github.com/koreview/revu/pkg/orchestrator"
)

// OrchestratorExecutor adapts the review orchestrator to the JobExecutor
// contract.
type OrchestratorExecutor struct {
	orch *orchestrator.Orchestrator
}

// NewOrchestratorExecutor creates a JobExecutor backed by the orchestrator.
func NewOrchestratorExecutor(orch *orchestrator.Orchestrator) *OrchestratorExecutor {
	return &OrchestratorExecutor{orch: orch}
}

// Execute runs the full review pipeline for one claimed job. Terminal
// status and the error event are written by the orchestrator itself.
func (e *OrchestratorExecutor) Execute(ctx context.Context, jobID int) error {
	return e.orch.Run(ctx, jobID)
}
