package render

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholderRenderer_Render(t *testing.T) {
	r := NewPlaceholderRenderer()

	url, err := r.Render(context.Background(), "https://example.org/score.pdf", "Test Title")
	require.NoError(t, err)
	assert.Equal(t, "https://via.placeholder.com/800x1000/ffffff/000000?text=Test+Title", url)
	assert.True(t, strings.HasSuffix(url, "Test+Title"))
}

func TestPlaceholderRenderer_Idempotent(t *testing.T) {
	r := NewPlaceholderRenderer()

	first, err := r.Render(context.Background(), "", "Test Title")
	require.NoError(t, err)
	second, err := r.Render(context.Background(), "ignored entirely", "Test Title")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPlaceholderRenderer_IgnoresPDFURL(t *testing.T) {
	r := NewPlaceholderRenderer()

	a, _ := r.Render(context.Background(), "https://one.example.org/a.pdf", "Same Title")
	b, _ := r.Render(context.Background(), "https://two.example.org/b.pdf", "Same Title")
	assert.Equal(t, a, b)
}
