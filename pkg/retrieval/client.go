// Package retrieval finds prior best-practice cases similar to a proposal.
//
// The search service is an Elasticsearch-backed HTTP API with one endpoint
// per ranking method (rrf, bm25, knn, cc). Retrieval is best-effort: any
// failure or empty result falls back to built-in sample cases so the
// scouting stage always has material to work with.
package retrieval

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/koreview/revu/pkg/config"
	"github.com/koreview/revu/pkg/models"
)

// querySnippetLen caps how much proposal text, in runes, is folded into the
// search query.
const querySnippetLen = 200

// Searcher finds similar best-practice cases for a proposal.
type Searcher interface {
	SearchBPCases(ctx context.Context, domain, division, proposalContent string) ([]models.BPCase, error)
}

// Client calls the similar-case search service over HTTP.
type Client struct {
	baseURL    string
	method     string
	caseCount  int
	httpClient *http.Client

	credentialKey string
	apiKey        string
	indexName     string
}

// NewClient builds a search client. An empty base URL yields a client that
// always serves the built-in sample cases.
func NewClient(cfg *config.RetrievalConfig, caseCount int) *Client {
	return &Client{
		baseURL:       strings.TrimSuffix(cfg.BaseURL, "/"),
		method:        cfg.Method,
		caseCount:     caseCount,
		httpClient:    &http.Client{Timeout: cfg.RequestTimeout},
		credentialKey: os.Getenv("RETRIEVAL_CREDENTIAL_KEY"),
		apiKey:        os.Getenv("RETRIEVAL_API_KEY"),
		indexName:     os.Getenv("RETRIEVAL_INDEX_NAME"),
	}
}

// searchRequest is the search service request body.
type searchRequest struct {
	IndexName        string   `json:"index_name"`
	PermissionGroups []string `json:"permission_groups"`
	QueryText        string   `json:"query_text"`
	NumResultDoc     int      `json:"num_result_doc"`
	FieldsExclude    []string `json:"fields_exclude"`
}

// searchResponse mirrors the Elasticsearch hit envelope.
type searchResponse struct {
	Hits struct {
		Hits []struct {
			Source caseSource `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

type caseSource struct {
	Title          string `json:"title"`
	TechType       string `json:"tech_type"`
	BusinessDomain string `json:"business_domain"`
	Domain         string `json:"domain"`
	Division       string `json:"division"`
	ProblemAsWas   string `json:"problem_as_was"`
	SolutionToBe   string `json:"solution_to_be"`
	Summary        string `json:"summary"`
	Tips           string `json:"tips"`
	Link           string `json:"link"`
	Content        string `json:"content"`
}

// SearchBPCases queries the search service and maps hits to BP cases.
// On any failure or an empty result, sample cases for the domain are
// returned instead of an error.
func (c *Client) SearchBPCases(ctx context.Context, domain, division, proposalContent string) ([]models.BPCase, error) {
	if c.baseURL == "" {
		return SampleBPCases(domain, division), nil
	}

	query := buildQuery(domain, division, proposalContent)
	cases, err := c.search(ctx, query)
	if err != nil {
		slog.Warn("BP case search failed, using sample cases",
			"domain", domain, "error", err)
		return SampleBPCases(domain, division), nil
	}
	if len(cases) == 0 {
		slog.Debug("BP case search returned no hits, using sample cases", "domain", domain)
		return SampleBPCases(domain, division), nil
	}
	return cases, nil
}

func (c *Client) search(ctx context.Context, query string) ([]models.BPCase, error) {
	body, err := json.Marshal(searchRequest{
		IndexName:        c.indexName,
		PermissionGroups: []string{"user"},
		QueryText:        query,
		NumResultDoc:     c.caseCount,
		FieldsExclude:    []string{"v_merge_title_content"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	url := c.baseURL + "/retrieve-" + c.method
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.credentialKey != "" {
		req.Header.Set("x-dep-ticket", c.credentialKey)
	}
	if c.apiKey != "" {
		req.Header.Set("api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("search service returned %d: %s", resp.StatusCode, string(msg))
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	cases := make([]models.BPCase, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		cases = append(cases, hit.Source.toBPCase())
	}
	return cases, nil
}

// buildQuery folds the first part of the proposal into the search query so
// hits reflect the proposal's actual subject, not just its domain labels.
func buildQuery(domain, division, proposalContent string) string {
	// Rune-based so Korean text is never cut mid-character.
	snippet := truncateRunes(proposalContent, querySnippetLen)
	if snippet == "" {
		return fmt.Sprintf("%s %s BP 사례", domain, division)
	}
	return fmt.Sprintf("%s %s %s BP 사례", domain, division, snippet)
}

// toBPCase maps a search hit to a BP case, filling gaps from the generic
// content field the way older index documents require.
func (s caseSource) toBPCase() models.BPCase {
	c := models.BPCase{
		Title:          s.Title,
		TechType:       s.TechType,
		BusinessDomain: s.BusinessDomain,
		Division:       s.Division,
		ProblemAsWas:   s.ProblemAsWas,
		SolutionToBe:   s.SolutionToBe,
		Summary:        s.Summary,
		Tips:           s.Tips,
		Link:           s.Link,
	}
	if c.Title == "" {
		c.Title = "제목 없음"
	}
	if c.TechType == "" {
		c.TechType = "AI/ML"
	}
	if c.BusinessDomain == "" {
		c.BusinessDomain = s.Domain
	}
	if c.ProblemAsWas == "" && s.Content != "" {
		c.ProblemAsWas = truncateRunes(s.Content, 100)
	}
	if c.Summary == "" && s.Content != "" {
		c.Summary = truncateRunes(s.Content, 200)
	}
	return c
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
