package domain

var (
	MessageSuccessGetSubstitution = "healthy substitution retrieved successfully"
	MessageSuccessGetCategories   = "categories retrieved successfully"

	MessageFailedGetSubstitution = "failed to retrieve healthy substitution"
)

type (
	SubstitutionResponse struct {
		Item        string  `json:"item"`
		Alternative *string `json:"alternative"`
	}

	CategoriesResponse struct {
		Categories []string `json:"categories"`
	}
)
