package substitution

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSuggestNormalizesInput(t *testing.T) {
	service := NewSubstitutionService(LoadCatalog(""))

	tests := []struct {
		in   string
		want string
	}{
		{"sugar", "honey"},
		{"Sugar", "honey"},
		{"  SUGAR  ", "honey"},
		{"white bread", "brown bread"},
		{"White Rice", "brown rice"},
	}

	for _, tt := range tests {
		got, ok := service.Suggest(tt.in)
		if !ok {
			t.Errorf("Suggest(%q) missed, want %q", tt.in, tt.want)
			continue
		}
		if got != tt.want {
			t.Errorf("Suggest(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSuggestMissIsAbsent(t *testing.T) {
	service := NewSubstitutionService(LoadCatalog(""))

	for _, item := range []string{"quinoa", "", "   "} {
		if got, ok := service.Suggest(item); ok {
			t.Errorf("Suggest(%q) = %q, want miss", item, got)
		}
	}
}

func TestLoadCatalogOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	contents := "substitutions:\n" +
		"  \" Sugar \": \" Maple Syrup \"\n" +
		"  kombucha: green tea\n" +
		"  \"\": dropped\n" +
		"categories:\n" +
		"  - Pantry\n" +
		"  - Frozen\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	service := NewSubstitutionService(LoadCatalog(path))

	// Overridden entry wins over the default, with normalized key and value.
	if got, ok := service.Suggest("sugar"); !ok || got != "maple syrup" {
		t.Errorf("Suggest(sugar) = %q, %v; want maple syrup", got, ok)
	}

	// New entry is merged in.
	if got, ok := service.Suggest("Kombucha"); !ok || got != "green tea" {
		t.Errorf("Suggest(Kombucha) = %q, %v; want green tea", got, ok)
	}

	// Untouched defaults survive the merge.
	if got, ok := service.Suggest("soda"); !ok || got != "fresh juice" {
		t.Errorf("Suggest(soda) = %q, %v; want fresh juice", got, ok)
	}

	categories := service.Categories()
	if len(categories) != 2 || categories[0] != "Pantry" || categories[1] != "Frozen" {
		t.Errorf("Categories() = %v, want [Pantry Frozen]", categories)
	}
}

func TestLoadCatalogMissingFileFallsBack(t *testing.T) {
	service := NewSubstitutionService(LoadCatalog("/nonexistent/catalog.yaml"))

	if got, ok := service.Suggest("sugar"); !ok || got != "honey" {
		t.Errorf("Suggest(sugar) = %q, %v; want honey from defaults", got, ok)
	}
	if len(service.Categories()) == 0 {
		t.Error("default categories should not be empty")
	}
}
