// Package pages fetches proposal documents from the corporate wiki.
//
// A submission can reference a wiki page tree instead of uploading a file.
// The client walks the tree (bounded by maxDepth), converts each page's
// storage HTML to markdown, and returns the pages as review segments.
package pages

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"

	"github.com/koreview/revu/pkg/config"
)

// maxDepthLimit bounds recursive page walks regardless of configuration.
const maxDepthLimit = 5

// childPageLimit caps how many children are listed per page.
const childPageLimit = 100

// Page is one wiki page flattened to markdown.
type Page struct {
	ID      string
	Title   string
	Content string // markdown
	URL     string
}

// Source provides proposal pages. Implemented by WikiClient; handlers and
// tests depend on this interface.
type Source interface {
	GetPage(ctx context.Context, pageID string) (*Page, error)
	GetPagesRecursively(ctx context.Context, pageID string, includeRoot bool, maxDepth int) ([]Page, error)
}

// WikiClient talks to a Confluence-compatible wiki REST API.
type WikiClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	converter  *md.Converter
}

// NewWikiClient builds a wiki client from configuration.
func NewWikiClient(cfg *config.PagesConfig) *WikiClient {
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())

	return &WikiClient{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		converter:  converter,
	}
}

// pageResponse mirrors the wiki content API response.
type pageResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  struct {
		Storage struct {
			Value string `json:"value"`
		} `json:"storage"`
	} `json:"body"`
	Links struct {
		WebUI string `json:"webui"`
	} `json:"_links"`
}

type childPagesResponse struct {
	Results []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	} `json:"results"`
}

// GetPage fetches one page and converts its body to markdown.
func (c *WikiClient) GetPage(ctx context.Context, pageID string) (*Page, error) {
	var page pageResponse
	path := fmt.Sprintf("/rest/api/content/%s?expand=body.storage,version", url.PathEscape(pageID))
	if err := c.getJSON(ctx, path, &page); err != nil {
		return nil, fmt.Errorf("failed to fetch page %s: %w", pageID, err)
	}

	content, err := c.converter.ConvertString(page.Body.Storage.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to convert page %s body: %w", pageID, err)
	}

	pageURL := ""
	if page.Links.WebUI != "" {
		pageURL = c.baseURL + page.Links.WebUI
	}

	return &Page{
		ID:      page.ID,
		Title:   page.Title,
		Content: strings.TrimSpace(content),
		URL:     pageURL,
	}, nil
}

// GetPagesRecursively fetches a page tree depth-first. includeRoot controls
// whether the root page itself is part of the result; children always are.
func (c *WikiClient) GetPagesRecursively(ctx context.Context, pageID string, includeRoot bool, maxDepth int) ([]Page, error) {
	if maxDepth > maxDepthLimit {
		maxDepth = maxDepthLimit
	}
	return c.walk(ctx, pageID, includeRoot, maxDepth, 0)
}

func (c *WikiClient) walk(ctx context.Context, pageID string, includeCurrent bool, maxDepth, depth int) ([]Page, error) {
	var pages []Page

	if includeCurrent || depth > 0 {
		page, err := c.GetPage(ctx, pageID)
		if err != nil {
			return nil, err
		}
		pages = append(pages, *page)
	}

	if depth >= maxDepth {
		return pages, nil
	}

	children, err := c.childPages(ctx, pageID)
	if err != nil {
		return nil, err
	}
	for _, childID := range children {
		sub, err := c.walk(ctx, childID, true, maxDepth, depth+1)
		if err != nil {
			return nil, err
		}
		pages = append(pages, sub...)
	}
	return pages, nil
}

func (c *WikiClient) childPages(ctx context.Context, pageID string) ([]string, error) {
	var children childPagesResponse
	path := fmt.Sprintf("/rest/api/content/%s/child/page?limit=%d", url.PathEscape(pageID), childPageLimit)
	if err := c.getJSON(ctx, path, &children); err != nil {
		return nil, fmt.Errorf("failed to list child pages of %s: %w", pageID, err)
	}

	ids := make([]string, 0, len(children.Results))
	for _, child := range children.Results {
		ids = append(ids, child.ID)
	}
	return ids, nil
}

func (c *WikiClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("wiki returned %d: %s", resp.StatusCode, string(msg))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
