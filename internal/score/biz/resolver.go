package biz

import (
	"context"
	"fmt"
	"strings"

	"github.com/scorelib/scoresearch-backend/internal/score/types"
	"github.com/scorelib/scoresearch-backend/internal/search/provider"
	searchtypes "github.com/scorelib/scoresearch-backend/internal/search/types"
	"go.uber.org/zap"
)

// Resolver produces score candidates for a query using three tiers in strict
// priority order: live site-scoped search, curated table, generic fallback.
// The last tier always yields a record, so Resolve never returns an empty
// list.
type Resolver struct {
	provider   provider.Provider // nil disables the search tier
	siteScope  string
	maxResults int
	logger     *zap.Logger
}

// NewResolver creates a resolver. The search provider is injected so tests
// can substitute a double or disable the tier entirely.
func NewResolver(p provider.Provider, siteScope string, maxResults int, logger *zap.Logger) *Resolver {
	if siteScope == "" {
		siteScope = "mutopiaproject.org"
	}
	if maxResults <= 0 {
		maxResults = 10
	}
	return &Resolver{
		provider:   p,
		siteScope:  siteScope,
		maxResults: maxResults,
		logger:     logger,
	}
}

// Resolve runs the tier chain. Search-tier errors are absorbed here: they are
// logged and the resolution falls through to the next tier, never surfacing
// to the caller.
func (r *Resolver) Resolve(ctx context.Context, query string) []*types.ScoreResult {
	results, err := r.searchTier(ctx, query)
	if err != nil {
		r.logger.Warn("search tier failed, falling through",
			zap.String("query", query),
			zap.Error(err),
		)
	}
	if len(results) > 0 {
		return results
	}

	if curated := lookupCatalog(query); len(curated) > 0 {
		return curated
	}

	return []*types.ScoreResult{genericFallback(query)}
}

// searchTier queries the injected provider with a site-scoped query and
// selects the first result carrying a "pdf" signal in its URL or description.
// Composer is intentionally left unset on this path.
func (r *Resolver) searchTier(ctx context.Context, query string) ([]*types.ScoreResult, error) {
	if r.provider == nil {
		return nil, nil
	}

	scoped := fmt.Sprintf("site:%s %s", r.siteScope, query)
	resp, err := r.provider.Search(ctx, &searchtypes.SearchRequest{
		Query:      scoped,
		MaxResults: r.maxResults,
	})
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, searchtypes.ErrInvalidResponse
	}

	for _, res := range resp.Results {
		if res == nil {
			continue
		}
		if hasPDFSignal(res.URL) || hasPDFSignal(res.Description) {
			return []*types.ScoreResult{
				{
					Title:       res.Title,
					PDFURL:      res.URL,
					Description: res.Description,
					Source:      fmt.Sprintf("Mutopia Project (%s)", r.provider.GetName()),
				},
			}, nil
		}
	}

	return nil, nil
}

func hasPDFSignal(s string) bool {
	return strings.Contains(strings.ToLower(s), "pdf")
}
