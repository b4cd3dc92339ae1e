package biz

import (
	"context"
	"errors"
	"testing"

	"github.com/scorelib/scoresearch-backend/internal/search/provider"
	searchtypes "github.com/scorelib/scoresearch-backend/internal/search/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeProvider is a search provider test double.
type fakeProvider struct {
	resp     *searchtypes.SearchResponse
	err      error
	gotQuery string
}

func (f *fakeProvider) Search(_ context.Context, req *searchtypes.SearchRequest) (*searchtypes.SearchResponse, error) {
	f.gotQuery = req.Query
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func (f *fakeProvider) GetID() searchtypes.ProviderID { return "fake" }
func (f *fakeProvider) GetName() string               { return "Fake" }
func (f *fakeProvider) Validate() error               { return nil }

func failingProvider() *fakeProvider {
	return &fakeProvider{err: errors.New("search unavailable")}
}

func newTestResolver(p provider.Provider) *Resolver {
	return NewResolver(p, "", 0, zap.NewNop())
}

func TestResolver_CuratedTable(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantTitle    string
		wantComposer string
	}{
		{
			name:         "exact key",
			query:        "bach",
			wantTitle:    "Prelude and Fugue in C major, BWV 846",
			wantComposer: "Johann Sebastian Bach",
		},
		{
			name:         "key embedded in longer query",
			query:        "please find some BACH for me",
			wantTitle:    "Prelude and Fugue in C major, BWV 846",
			wantComposer: "Johann Sebastian Bach",
		},
		{
			name:         "chopin",
			query:        "chopin nocturne",
			wantTitle:    "Nocturne in E-flat major, Op. 9, No. 2",
			wantComposer: "Frédéric Chopin",
		},
		{
			name:         "multi-word key",
			query:        "Moonlight Sonata sheet music",
			wantTitle:    `Piano Sonata No. 14 "Moonlight"`,
			wantComposer: "Ludwig van Beethoven",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Search tier fails so resolution lands on the curated table.
			resolver := newTestResolver(failingProvider())

			results := resolver.Resolve(context.Background(), tt.query)
			require.Len(t, results, 1)
			assert.Equal(t, tt.wantTitle, results[0].Title)
			assert.Equal(t, tt.wantComposer, results[0].Composer)
			assert.NotEmpty(t, results[0].SourceURL)
			assert.NotEmpty(t, results[0].PDFURL)
		})
	}
}

func TestResolver_GenericFallback(t *testing.T) {
	resolver := newTestResolver(failingProvider())

	query := "some totally unknown piece xyz"
	results := resolver.Resolve(context.Background(), query)

	require.Len(t, results, 1)
	assert.Equal(t, "Classical Music Search Result", results[0].Title)
	assert.Equal(t, "Unknown Composer", results[0].Composer)
	assert.Equal(t, "https://imslp.org/", results[0].SourceURL)
	assert.Equal(t, `Search result for "some totally unknown piece xyz"`, results[0].Description)
	assert.Contains(t, results[0].Description, query)
}

func TestResolver_NilProviderStillResolves(t *testing.T) {
	resolver := newTestResolver(nil)

	results := resolver.Resolve(context.Background(), "bach")
	require.Len(t, results, 1)
	assert.Equal(t, "Prelude and Fugue in C major, BWV 846", results[0].Title)
}

func TestResolver_SearchTierSelectsFirstPDFSignal(t *testing.T) {
	// Only the third entry carries a pdf signal; the resolver must skip the
	// earlier entries.
	provider := &fakeProvider{
		resp: &searchtypes.SearchResponse{
			Results: []*searchtypes.SearchResult{
				{Title: "Composer biography", URL: "https://www.mutopiaproject.org/bio.html", Description: "About the composer"},
				{Title: "Catalog index", URL: "https://www.mutopiaproject.org/index.html", Description: "Browse works"},
				{Title: "Sonata score", URL: "https://www.mutopiaproject.org/ftp/sonata-a4.PDF", Description: "Typeset score"},
			},
		},
	}
	resolver := newTestResolver(provider)

	results := resolver.Resolve(context.Background(), "sonata")
	require.Len(t, results, 1)
	assert.Equal(t, "Sonata score", results[0].Title)
	assert.Equal(t, "https://www.mutopiaproject.org/ftp/sonata-a4.PDF", results[0].PDFURL)
	assert.Empty(t, results[0].Composer)
	assert.Equal(t, "Mutopia Project (Fake)", results[0].Source)
}

func TestResolver_SearchTierPDFSignalInDescription(t *testing.T) {
	provider := &fakeProvider{
		resp: &searchtypes.SearchResponse{
			Results: []*searchtypes.SearchResult{
				{Title: "Prelude", URL: "https://www.mutopiaproject.org/prelude", Description: "Download the PDF here"},
			},
		},
	}
	resolver := newTestResolver(provider)

	results := resolver.Resolve(context.Background(), "prelude")
	require.Len(t, results, 1)
	assert.Equal(t, "Prelude", results[0].Title)
}

func TestResolver_SearchTierWinsOverCatalog(t *testing.T) {
	provider := &fakeProvider{
		resp: &searchtypes.SearchResponse{
			Results: []*searchtypes.SearchResult{
				{Title: "Live result", URL: "https://www.mutopiaproject.org/live.pdf", Description: ""},
			},
		},
	}
	resolver := newTestResolver(provider)

	// "bach" is a curated key, but the live tier has priority.
	results := resolver.Resolve(context.Background(), "bach")
	require.Len(t, results, 1)
	assert.Equal(t, "Live result", results[0].Title)
}

func TestResolver_SearchTierNoSignalFallsThrough(t *testing.T) {
	provider := &fakeProvider{
		resp: &searchtypes.SearchResponse{
			Results: []*searchtypes.SearchResult{
				{Title: "Biography", URL: "https://www.mutopiaproject.org/bio.html", Description: "no signal here"},
			},
		},
	}
	resolver := newTestResolver(provider)

	results := resolver.Resolve(context.Background(), "bach")
	require.Len(t, results, 1)
	assert.Equal(t, "Prelude and Fugue in C major, BWV 846", results[0].Title)
}

func TestResolver_SiteScopedQuery(t *testing.T) {
	provider := failingProvider()
	resolver := newTestResolver(provider)

	resolver.Resolve(context.Background(), "bach")
	assert.Equal(t, "site:mutopiaproject.org bach", provider.gotQuery)
}
