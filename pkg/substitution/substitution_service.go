package substitution

import (
	"Smart-Grocery-Backend/internal/utils"
)

type (
	SubstitutionService interface {
		// Suggest returns the healthier alternative for an item, or false
		// when the item has no mapping. A miss is an ordinary result, not
		// an error.
		Suggest(itemName string) (string, bool)
		Categories() []string
	}

	substitutionService struct {
		catalog Catalog
	}
)

func NewSubstitutionService(catalog Catalog) SubstitutionService {
	return &substitutionService{catalog: catalog}
}

func (s *substitutionService) Suggest(itemName string) (string, bool) {
	alternative, ok := s.catalog.Substitutions[utils.NormalizeName(itemName)]
	return alternative, ok
}

func (s *substitutionService) Categories() []string {
	return s.catalog.Categories
}
