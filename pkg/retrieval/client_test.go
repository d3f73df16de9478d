package retrieval

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koreview/revu/pkg/config"
)

func newSearchClient(baseURL string) *Client {
	return NewClient(&config.RetrievalConfig{
		BaseURL:        baseURL,
		Method:         "rrf",
		RequestTimeout: 2 * time.Second,
	}, 5)
}

func hitsBody(t *testing.T, sources ...caseSource) []byte {
	t.Helper()
	var resp searchResponse
	for _, s := range sources {
		resp.Hits.Hits = append(resp.Hits.Hits, struct {
			Source caseSource `json:"_source"`
		}{Source: s})
	}
	body, err := json.Marshal(resp)
	require.NoError(t, err)
	return body
}

func TestSearchBPCases_MapsHits(t *testing.T) {
	var gotPath string
	var gotReq searchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_, _ = w.Write(hitsBody(t,
			caseSource{Title: "출하 검사 자동화", Summary: "비전 검사 도입 사례", Domain: "제조"},
			caseSource{Content: "문서 본문만 있는 구버전 색인 항목입니다"},
		))
	}))
	defer srv.Close()

	cases, err := newSearchClient(srv.URL).SearchBPCases(
		context.Background(), "제조", "생산기술", "출하 검사 공정을 자동화하고자 합니다")
	require.NoError(t, err)
	require.Len(t, cases, 2)

	assert.Equal(t, "/retrieve-rrf", gotPath)
	assert.Equal(t, 5, gotReq.NumResultDoc)
	assert.Contains(t, gotReq.QueryText, "제조 생산기술")
	assert.Contains(t, gotReq.QueryText, "출하 검사 공정")

	assert.Equal(t, "출하 검사 자동화", cases[0].Title)
	assert.Equal(t, "제조", cases[0].BusinessDomain)

	// Sparse legacy documents are filled from the content field.
	assert.Equal(t, "제목 없음", cases[1].Title)
	assert.Contains(t, cases[1].Summary, "구버전 색인 항목")
}

func TestSearchBPCases_ServiceErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "index unavailable", http.StatusInternalServerError)
	}))
	defer srv.Close()

	cases, err := newSearchClient(srv.URL).SearchBPCases(
		context.Background(), "물류", "SCM", "창고 피킹 경로를 최적화하고자 합니다")
	require.NoError(t, err)

	want := SampleBPCases("물류", "SCM")
	require.Len(t, cases, len(want))
	assert.Equal(t, want[0].Title, cases[0].Title)
}

func TestSearchBPCases_EmptyHitsFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(hitsBody(t))
	}))
	defer srv.Close()

	cases, err := newSearchClient(srv.URL).SearchBPCases(
		context.Background(), "물류", "SCM", "창고 피킹 경로를 최적화하고자 합니다")
	require.NoError(t, err)
	assert.Equal(t, SampleBPCases("물류", "SCM"), cases)
}

func TestSearchBPCases_UnconfiguredServesSamples(t *testing.T) {
	cases, err := newSearchClient("").SearchBPCases(
		context.Background(), "품질", "QA", "불량 원인 분석을 자동화하고자 합니다")
	require.NoError(t, err)
	assert.Equal(t, SampleBPCases("품질", "QA"), cases)
}

func TestBuildQuery_TruncatesByRunes(t *testing.T) {
	long := strings.Repeat("공정 개선 ", 100)
	query := buildQuery("제조", "생산기술", long)

	assert.True(t, utf8.ValidString(query))
	assert.LessOrEqual(t, utf8.RuneCountInString(query), querySnippetLen+30)

	short := buildQuery("제조", "생산기술", "")
	assert.Equal(t, "제조 생산기술 BP 사례", short)
}
