package substitution

import (
	"Smart-Grocery-Backend/internal/utils"
	"gopkg.in/yaml.v2"
	"log"
	"os"
)

// Catalog is the static lookup data shared read-only by all requests: the
// healthy-substitute table and the canonical category list. Both are seeded
// from built-in defaults and may be overridden from a yaml file so the table
// lives in configuration rather than scattered over the callers.
type Catalog struct {
	Substitutions map[string]string `yaml:"substitutions"`
	Categories    []string          `yaml:"categories"`
}

func defaultCatalog() Catalog {
	return Catalog{
		Substitutions: map[string]string{
			"white bread":     "brown bread",
			"brown bread":     "whole grain bread",
			"full cream milk": "low fat milk",
			"sugar":           "honey",
			"white rice":      "brown rice",
			"fried chicken":   "grilled chicken",
			"soda":            "fresh juice",
			"burger":          "salad wrap",
			"chips":           "air-popped popcorn",
			"coke":            "fresh lime juice",
			"ice cream":       "frozen yogurt",
			"biscuits":        "oat cookies",
			"candy":           "fruit salad",
			"chocolate":       "dark chocolate",
			"french fries":    "baked sweet potato fries",
			"pizza":           "whole wheat veggie pizza",
			"donuts":          "banana pancakes",
			"margarine":       "olive oil",
			"cream":           "low-fat yogurt",
			"mayonnaise":      "avocado spread",
			"instant noodles": "whole grain pasta",
			"energy drinks":   "green tea",
		},
		Categories: []string{
			"Vegetables",
			"Fruits",
			"Dairy",
			"Snacks",
			"Beverages",
			"Bakery",
			"Others",
		},
	}
}

// LoadCatalog returns the default catalog merged with the overrides found at
// path, if any. Override keys and values are normalized the same way item
// names are. A missing or unreadable file leaves the defaults untouched.
func LoadCatalog(path string) Catalog {
	catalog := defaultCatalog()
	if path == "" {
		return catalog
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading catalog file: %s\n", err)
		return catalog
	}

	var override Catalog
	if err := yaml.Unmarshal(data, &override); err != nil {
		log.Printf("Error parsing catalog file: %s\n", err)
		return catalog
	}

	for name, alternative := range override.Substitutions {
		name = utils.NormalizeName(name)
		alternative = utils.NormalizeName(alternative)
		if name == "" || alternative == "" {
			continue
		}
		catalog.Substitutions[name] = alternative
	}

	if len(override.Categories) > 0 {
		catalog.Categories = override.Categories
	}

	return catalog
}
