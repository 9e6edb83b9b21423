package types

// RecommendRecipeRequest is the body of POST /api/v1/recommend-recipe.
type RecommendRecipeRequest struct {
	Ingredients []IngredientRef `json:"ingredients"`
}

// Envelope is the uniform {status, data} body both endpoints return.
type Envelope struct {
	Status int `json:"status"`
	Data   any `json:"data"`
}

// ErrorBody carries a single error message inside an Envelope.
type ErrorBody struct {
	Error string `json:"error"`
}
