package service

import (
	"context"

	"github.com/EC2-LivingLAB-Team-2/OCR-BackEnd/internal/types"
)

// RecommendationPipeline turns a pantry list into recipe suggestions. The
// number of recipes requested per call is fixed at construction.
type RecommendationPipeline struct {
	llm         ICompletionService
	recipeCount int
}

// NewRecommendationPipeline wires the pipeline with its completion
// collaborator and the target recipe count.
func NewRecommendationPipeline(llm ICompletionService, recipeCount int) *RecommendationPipeline {
	return &RecommendationPipeline{
		llm:         llm,
		recipeCount: recipeCount,
	}
}

// Run executes one recommendation request. An empty ingredient list fails
// with ErrNoIngredients before any upstream call.
func (p *RecommendationPipeline) Run(ctx context.Context, ingredients []types.IngredientRef) ([]types.Recipe, error) {
	if len(ingredients) == 0 {
		return nil, ErrNoIngredients
	}

	prompt := BuildRecommendationPrompt(ingredients, p.recipeCount)

	raw, err := p.llm.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return ParseRecommendation(raw)
}
