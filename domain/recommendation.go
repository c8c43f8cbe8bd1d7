package domain

var (
	MessageSuccessGetRecommendations = "recommendations retrieved successfully"

	MessageFailedGetRecommendations = "failed to retrieve recommendations"
)

type (
	RecommendationRequest struct {
		Current []string `json:"current"`
		TopK    *int     `json:"top_k" validate:"omitempty,min=0"`
	}

	Recommendation struct {
		Name  string `json:"name"`
		Score int    `json:"score"`
	}

	RecommendationResponse struct {
		Recommendations []Recommendation `json:"recommendations"`
	}
)
