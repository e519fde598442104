package usecases

import (
	"testing"

	"chatwidget/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateLibraryComplete(t *testing.T) {
	lib, err := NewTemplateLibrary()
	require.NoError(t, err)

	// Every declared category must answer every declared intent.
	for _, cat := range entities.Categories() {
		for _, intent := range Intents() {
			reply := lib.Lookup(cat, intent)
			assert.NotEmpty(t, reply, "category %s intent %s", cat, intent)
		}
	}
}

func TestTemplateLibraryUnknownCategoryFallsBackToOther(t *testing.T) {
	lib, err := NewTemplateLibrary()
	require.NoError(t, err)

	for _, intent := range Intents() {
		got := lib.Lookup(entities.BusinessCategory("food-truck"), intent)
		want := lib.Lookup(entities.CategoryOther, intent)
		assert.Equal(t, want, got)
	}
}

func TestTemplateLibraryUnknownIntentFallsBack(t *testing.T) {
	lib, err := NewTemplateLibrary()
	require.NoError(t, err)

	got := lib.Lookup(entities.CategoryRestaurant, Intent("smalltalk"))
	assert.Equal(t, lib.Lookup(entities.CategoryRestaurant, IntentUnknown), got)
}

func TestValidateTemplatesRejectsIncompleteMatrix(t *testing.T) {
	broken := map[entities.BusinessCategory]map[Intent]string{}
	for _, cat := range entities.Categories() {
		broken[cat] = map[Intent]string{}
		for _, intent := range Intents() {
			broken[cat][intent] = "ok"
		}
	}
	delete(broken[entities.CategoryFinance], IntentUnknown)

	err := validateTemplates(broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "finance")
	assert.Contains(t, err.Error(), "unknown")
}

func TestValidateTemplatesRejectsMissingCategory(t *testing.T) {
	broken := map[entities.BusinessCategory]map[Intent]string{}
	for _, cat := range entities.Categories() {
		if cat == entities.CategoryHealthcare {
			continue
		}
		broken[cat] = map[Intent]string{}
		for _, intent := range Intents() {
			broken[cat][intent] = "ok"
		}
	}

	err := validateTemplates(broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "healthcare")
}
