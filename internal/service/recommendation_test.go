package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EC2-LivingLAB-Team-2/OCR-BackEnd/internal/types"
)

func TestRecommendationPipeline_Run(t *testing.T) {
	llm := &fakeCompleter{
		reply: `[{"name": "계란찜", "ingredients": ["계란 2개", "우유 100ml"], "instructions": "계란을 풀어 우유와 섞은 뒤 중탕으로 익힙니다."}]`,
	}
	pipeline := NewRecommendationPipeline(llm, 10)

	ingredients := []types.IngredientRef{
		{Name: "우유", Quantity: float64(1)},
		{Name: "계란", Quantity: float64(2)},
	}

	recipes, err := pipeline.Run(context.Background(), ingredients)
	require.NoError(t, err)

	require.Len(t, recipes, 1)
	assert.Equal(t, "계란찜", recipes[0].Name)
	assert.NotEmpty(t, recipes[0].Ingredients)
	assert.NotEmpty(t, recipes[0].Instructions)

	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], "우유 1, 계란 2")
	assert.Contains(t, llm.prompts[0], "10개 추천")
}

func TestRecommendationPipeline_EmptyIngredients(t *testing.T) {
	llm := &fakeCompleter{}
	pipeline := NewRecommendationPipeline(llm, 10)

	recipes, err := pipeline.Run(context.Background(), nil)
	assert.Nil(t, recipes)
	assert.ErrorIs(t, err, ErrNoIngredients)
	assert.Empty(t, llm.prompts, "no upstream call for empty input")
}

func TestRecommendationPipeline_RejectsIncompleteRecipe(t *testing.T) {
	llm := &fakeCompleter{
		reply: `[{"name": "계란찜", "ingredients": ["계란"]}]`,
	}
	pipeline := NewRecommendationPipeline(llm, 10)

	recipes, err := pipeline.Run(context.Background(), []types.IngredientRef{{Name: "계란", Quantity: float64(2)}})
	assert.Nil(t, recipes)
	var formatErr *FormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestRecommendationPipeline_UpstreamErrorPropagates(t *testing.T) {
	llm := &fakeCompleter{err: &UpstreamError{StatusCode: 401, Body: "invalid api key"}}
	pipeline := NewRecommendationPipeline(llm, 10)

	_, err := pipeline.Run(context.Background(), []types.IngredientRef{{Name: "우유", Quantity: float64(1)}})
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, 401, upstream.StatusCode)
}
