package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/scorelib/scoresearch-backend/internal/search/types"
	"github.com/tidwall/gjson"
)

// BraveProvider implements the Brave Search API
type BraveProvider struct {
	*BaseProvider
}

// NewBraveProvider creates a new Brave provider
func NewBraveProvider(config *types.ProviderConfig) (Provider, error) {
	base := NewBaseProvider(config)
	return &BraveProvider{BaseProvider: base}, nil
}

// Search executes a search query using the Brave Search API.
//
// The response body is parsed tolerantly: the expected shape is an object
// with a web.results list of {url, title, description} records, and anything
// that deviates from it yields zero results rather than a decode error.
func (p *BraveProvider) Search(ctx context.Context, req *types.SearchRequest) (*types.SearchResponse, error) {
	startTime := time.Now()

	if req.Query == "" {
		return nil, types.ErrEmptyQuery
	}

	maxResults := req.MaxResults
	if maxResults == 0 {
		maxResults = 10
	}

	params := url.Values{}
	params.Set("q", req.Query)
	params.Set("count", strconv.Itoa(maxResults))

	apiURL := fmt.Sprintf("%s/res/v1/web/search?%s", p.config.APIHost, params.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, "GET", apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for k, v := range p.BuildDefaultHeaders() {
		httpReq.Header.Set(k, v)
	}
	httpReq.Header.Set("X-Subscription-Token", p.GetAPIKey())

	resp, err := p.DoRequest(ctx, httpReq)
	if err != nil {
		return nil, &types.ProviderError{
			Provider: p.GetID(),
			Code:     "REQUEST_FAILED",
			Message:  "Failed to execute request",
			Err:      err,
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &types.ProviderError{
			Provider: p.GetID(),
			Code:     fmt.Sprintf("HTTP_%d", resp.StatusCode),
			Message:  string(body),
		}
	}

	if !gjson.ValidBytes(body) {
		return nil, &types.ProviderError{
			Provider: p.GetID(),
			Code:     "INVALID_RESPONSE",
			Message:  "response is not valid JSON",
			Err:      types.ErrInvalidResponse,
		}
	}

	var results []*types.SearchResult
	gjson.GetBytes(body, "web.results").ForEach(func(_, r gjson.Result) bool {
		results = append(results, &types.SearchResult{
			Title:       r.Get("title").String(),
			URL:         r.Get("url").String(),
			Description: r.Get("description").String(),
		})
		return len(results) < maxResults
	})

	return &types.SearchResponse{
		Query:      req.Query,
		Results:    results,
		TotalCount: len(results),
		Took:       time.Since(startTime).Milliseconds(),
		Provider:   p.GetID(),
	}, nil
}
