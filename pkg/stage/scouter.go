package stage

import (
	"context"
	"log/slog"

	"github.com/koreview/revu/pkg/models"
	"github.com/koreview/revu/pkg/retrieval"
)

// RunBPScouter finds best-practice cases similar to the proposal. Scouting
// never fails the pipeline: a searcher error or an empty result degrades to
// the built-in sample cases.
func RunBPScouter(ctx context.Context, eff Effects, in Input) []models.BPCase {
	cases, err := eff.Retrieval.SearchBPCases(ctx, in.Domain, in.Division, in.Proposal())
	if err != nil {
		slog.Warn("BP case scouting failed, using sample cases",
			"domain", in.Domain, "error", err)
		return retrieval.SampleBPCases(in.Domain, in.Division)
	}
	if len(cases) == 0 {
		return retrieval.SampleBPCases(in.Domain, in.Division)
	}
	return cases
}
