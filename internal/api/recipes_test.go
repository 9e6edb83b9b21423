package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EC2-LivingLAB-Team-2/OCR-BackEnd/internal/service"
	"github.com/EC2-LivingLAB-Team-2/OCR-BackEnd/internal/types"
)

type stubRecommendation struct {
	recipes []types.Recipe
	err     error
	calls   int
}

func (s *stubRecommendation) Run(ctx context.Context, ingredients []types.IngredientRef) ([]types.Recipe, error) {
	s.calls++
	return s.recipes, s.err
}

type stubCompleter struct {
	calls int
}

func (s *stubCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	s.calls++
	return "[]", nil
}

func setupRecipeRouter(t *testing.T, runner RecommendationRunner) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	NewRecipeHandler(runner).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func postRecipes(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommend-recipe", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRecommendRecipe_Success(t *testing.T) {
	runner := &stubRecommendation{recipes: []types.Recipe{
		{Name: "계란찜", Ingredients: []string{"계란 2개", "우유 100ml"}, Instructions: "중탕으로 익힙니다."},
	}}
	router := setupRecipeRouter(t, runner)

	w := postRecipes(router, `{"ingredients": [["우유", 1], ["계란", 2]]}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status int            `json:"status"`
		Data   []types.Recipe `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 200, resp.Status)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "계란찜", resp.Data[0].Name)
	assert.NotEmpty(t, resp.Data[0].Ingredients)
	assert.NotEmpty(t, resp.Data[0].Instructions)
}

func TestRecommendRecipe_EmptyIngredients(t *testing.T) {
	// real pipeline so we can also prove no upstream call happens
	completer := &stubCompleter{}
	pipeline := service.NewRecommendationPipeline(completer, 10)
	router := setupRecipeRouter(t, pipeline)

	w := postRecipes(router, `{"ingredients": []}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"status": 400, "data": {"error": "No ingredients provided"}}`, w.Body.String())
	assert.Zero(t, completer.calls, "no completion call for empty input")
}

func TestRecommendRecipe_InvalidBody(t *testing.T) {
	runner := &stubRecommendation{}
	router := setupRecipeRouter(t, runner)

	w := postRecipes(router, `{"ingredients": "not a list"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, runner.calls)
}

func TestRecommendRecipe_FormatError(t *testing.T) {
	runner := &stubRecommendation{err: &service.FormatError{Err: assert.AnError}}
	router := setupRecipeRouter(t, runner)

	w := postRecipes(router, `{"ingredients": [["우유", 1]]}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"status": 500, "data": {"error": "Response format error"}}`, w.Body.String())
}

func TestRecommendRecipe_UpstreamPassthrough(t *testing.T) {
	runner := &stubRecommendation{err: &service.UpstreamError{StatusCode: 502, Body: "bad gateway"}}
	router := setupRecipeRouter(t, runner)

	w := postRecipes(router, `{"ingredients": [["우유", 1]]}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"status": 502, "data": {"error": "bad gateway"}}`, w.Body.String())
}

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/v1/health", HealthCheck)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}
