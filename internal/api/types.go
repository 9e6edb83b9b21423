package api

import (
	"context"

	"github.com/EC2-LivingLAB-Team-2/OCR-BackEnd/internal/types"
)

// ExtractionRunner runs the image-to-items pipeline.
type ExtractionRunner interface {
	Run(ctx context.Context, imagePath string) ([]types.ExtractedItem, error)
}

// RecommendationRunner runs the ingredients-to-recipes pipeline.
type RecommendationRunner interface {
	Run(ctx context.Context, ingredients []types.IngredientRef) ([]types.Recipe, error)
}
