package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	apperrors "github.com/scorelib/scoresearch-backend/internal/pkg/errors"
	"github.com/scorelib/scoresearch-backend/internal/pkg/response"
	"github.com/scorelib/scoresearch-backend/internal/score/render"
	"github.com/scorelib/scoresearch-backend/internal/score/types"
	"go.uber.org/zap"
)

// Resolver produces score candidates for a query. Satisfied by biz.Resolver.
type Resolver interface {
	Resolve(ctx context.Context, query string) []*types.ScoreResult
}

// ScoreService handles score lookup requests.
type ScoreService struct {
	resolver Resolver
	renderer render.Renderer
	logger   *zap.Logger
}

// NewScoreService creates a score service.
func NewScoreService(resolver Resolver, renderer render.Renderer, logger *zap.Logger) *ScoreService {
	return &ScoreService{
		resolver: resolver,
		renderer: renderer,
		logger:   logger,
	}
}

// RegisterRoutes registers the score routes on the given group.
func (s *ScoreService) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/scores/search", s.SearchScore)
}

type SearchScoreRequest struct {
	Query string `json:"query" binding:"required"`
}

type SearchScoreResponse struct {
	Status       string `json:"status"`
	Title        string `json:"title"`
	Composer     string `json:"composer"`
	ImageURL     string `json:"image_url"`
	IMSLPURL     string `json:"imslp_url"`
	Description  string `json:"description"`
	ResultsCount int    `json:"results_count"`
}

// SearchScore resolves a free-text query to a score record and an image URL
// for its first page.
func (s *ScoreService) SearchScore(c *gin.Context) {
	var req SearchScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.HandleError(c, apperrors.New(apperrors.ErrInvalidParams,
			"request body must be JSON with a non-empty \"query\" field"))
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		response.HandleError(c, apperrors.New(apperrors.ErrInvalidParams, "query must not be blank"))
		return
	}

	ctx := c.Request.Context()

	s.logger.Info("searching for score", zap.String("query", req.Query))

	results := s.resolver.Resolve(ctx, req.Query)
	if len(results) == 0 {
		response.HandleError(c, apperrors.New(apperrors.ErrNoResults,
			fmt.Sprintf("No classical music found for \"%s\"", req.Query)))
		return
	}

	first := results[0]
	imageURL, err := s.renderer.Render(ctx, first.PDFURL, first.Title)
	if err != nil || imageURL == "" {
		s.logger.Error("failed to render score page",
			zap.String("query", req.Query),
			zap.String("pdf_url", first.PDFURL),
			zap.Error(err),
		)
		response.HandleError(c, apperrors.New(apperrors.ErrRenderFailed, "Could not convert PDF to image"))
		return
	}

	response.Success(c, SearchScoreResponse{
		Status:       "success",
		Title:        first.Title,
		Composer:     first.Composer,
		ImageURL:     imageURL,
		IMSLPURL:     first.SourceURL,
		Description:  first.Description,
		ResultsCount: len(results),
	})
}
