package catalog

import (
	"strings"

	"github.com/psrun/psrun/internal/models"
)

// categoryKeyword pairs one vocabulary word with its category. The slice
// order is the tie-breaker for substring matches, so "test" is checked
// before "build" and so on.
type categoryKeyword struct {
	word     string
	category models.Category
}

var categoryVocabulary = []categoryKeyword{
	{"test", models.CategoryTest},
	{"build", models.CategoryBuild},
	{"compile", models.CategoryBuild},
	{"dev", models.CategoryDev},
	{"start", models.CategoryStart},
	{"serve", models.CategoryStart},
	{"lint", models.CategoryLint},
	{"check", models.CategoryLint},
	{"fmt", models.CategoryFormat},
	{"format", models.CategoryFormat},
	{"watch", models.CategoryWatch},
	{"clean", models.CategoryClean},
	{"deploy", models.CategoryDeploy},
	{"release", models.CategoryDeploy},
}

// InferCategory classifies a script name. Exact vocabulary matches are
// checked before substring matches, so a script literally named "dev"
// always lands in Dev even though "dev" is a substring of other words.
func InferCategory(name string) models.Category {
	lower := strings.ToLower(name)

	for _, kw := range categoryVocabulary {
		if lower == kw.word {
			return kw.category
		}
	}
	for _, kw := range categoryVocabulary {
		if strings.Contains(lower, kw.word) {
			return kw.category
		}
	}
	return models.CategoryOther
}
