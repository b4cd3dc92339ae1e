package biz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCatalog_FirstDeclaredKeyWins(t *testing.T) {
	// Both "moonlight sonata" and "bach" are substrings of the query; the
	// earlier table entry must win.
	results := lookupCatalog("moonlight sonata arranged after bach")
	require.Len(t, results, 1)
	assert.Equal(t, `Piano Sonata No. 14 "Moonlight"`, results[0].Title)
}

func TestLookupCatalog_CaseInsensitive(t *testing.T) {
	results := lookupCatalog("CHOPIN Nocturne Op 9")
	require.Len(t, results, 1)
	assert.Equal(t, "Frédéric Chopin", results[0].Composer)
}

func TestLookupCatalog_NoMatch(t *testing.T) {
	assert.Nil(t, lookupCatalog("vivaldi four seasons"))
}

func TestLookupCatalog_ReturnsCopies(t *testing.T) {
	first := lookupCatalog("bach")
	require.Len(t, first, 1)
	first[0].Title = "mutated"

	second := lookupCatalog("bach")
	require.Len(t, second, 1)
	assert.Equal(t, "Prelude and Fugue in C major, BWV 846", second[0].Title)
}

func TestGenericFallback_EchoesQuery(t *testing.T) {
	record := genericFallback("rare piece 123")
	assert.Equal(t, "Classical Music Search Result", record.Title)
	assert.Equal(t, "Unknown Composer", record.Composer)
	assert.Equal(t, "https://imslp.org/wiki/Special:IMSLPDisclaimerAccept/28524", record.PDFURL)
	assert.Equal(t, `Search result for "rare piece 123"`, record.Description)
}
