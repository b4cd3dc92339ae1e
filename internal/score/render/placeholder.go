package render

import (
	"context"
	"fmt"
	"strings"
)

const placeholderBase = "https://via.placeholder.com/800x1000/ffffff/000000"

// PlaceholderRenderer synthesizes a deterministic placeholder URL from the
// title, with spaces replaced by '+'. The pdf URL is ignored. This reproduces
// the demo behavior; it carries no actual image data.
type PlaceholderRenderer struct{}

// NewPlaceholderRenderer creates a placeholder renderer.
func NewPlaceholderRenderer() *PlaceholderRenderer {
	return &PlaceholderRenderer{}
}

// Render returns the placeholder URL for the given title.
func (r *PlaceholderRenderer) Render(_ context.Context, _ string, title string) (string, error) {
	return fmt.Sprintf("%s?text=%s", placeholderBase, strings.ReplaceAll(title, " ", "+")), nil
}
