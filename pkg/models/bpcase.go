package models

// BPCase is a Best-Practice record returned by the retrieval gateway.
// The orchestrator treats it as opaque; stages 2-6 serialize it into
// prompt context and the final report renders it verbatim.
type BPCase struct {
	Title          string `json:"title"`
	TechType       string `json:"tech_type"`
	BusinessDomain string `json:"business_domain"`
	Division       string `json:"division"`
	ProblemAsWas   string `json:"problem_as_was"`
	SolutionToBe   string `json:"solution_to_be"`
	Summary        string `json:"summary"`
	Tips           string `json:"tips,omitempty"`
	Link           string `json:"link,omitempty"`
}
