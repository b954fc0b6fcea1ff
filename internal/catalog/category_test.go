package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/psrun/psrun/internal/models"
)

func TestInferCategory(t *testing.T) {
	cases := []struct {
		name     string
		expected models.Category
	}{
		{"test", models.CategoryTest},
		{"test:unit", models.CategoryTest},
		{"build", models.CategoryBuild},
		{"compile-assets", models.CategoryBuild},
		{"dev", models.CategoryDev},
		{"start", models.CategoryStart},
		{"serve", models.CategoryStart},
		{"lint", models.CategoryLint},
		{"typecheck", models.CategoryLint},
		{"fmt", models.CategoryFormat},
		{"format:write", models.CategoryFormat},
		{"watch", models.CategoryWatch},
		{"clean", models.CategoryClean},
		{"deploy", models.CategoryDeploy},
		{"release", models.CategoryDeploy},
		{"storybook", models.CategoryOther},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, InferCategory(tc.name))
		})
	}
}

func TestInferCategory_ExactBeatsSubstring(t *testing.T) {
	// "dev" appears later than "test" in the substring order, but an exact
	// match short-circuits: a script named "dev" is Dev even though no
	// earlier keyword matches, and "devtest" resolves by substring order.
	assert.Equal(t, models.CategoryDev, InferCategory("dev"))
	assert.Equal(t, models.CategoryTest, InferCategory("devtest"))
}
