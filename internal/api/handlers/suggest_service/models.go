package suggest_service

// SuggestRequest HTTP request model
type SuggestRequest struct {
	Input string `json:"input"`
}

// SuggestResponse HTTP response model
type SuggestResponse struct {
	Suggestion string `json:"suggestion"`
}
