package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geodatos/geoforms/model"
)

func TestCatalog(t *testing.T) {
	all := All()
	require.Len(t, all, 6)

	names := map[string]bool{}
	for _, tpl := range all {
		assert.NotEmpty(t, tpl.Name)
		assert.NotEmpty(t, tpl.Category)
		assert.NotEmpty(t, tpl.Form.Title)
		assert.NotEmpty(t, tpl.Form.Questions)
		assert.False(t, names[tpl.Name], "duplicate template %s", tpl.Name)
		names[tpl.Name] = true
	}
}

func TestInstantiateProducesFreshDraft(t *testing.T) {
	tpl := Search("Satisfacción")[0]

	doc := tpl.Instantiate()

	assert.Zero(t, doc.ID)
	assert.True(t, doc.CreatedAt.IsZero())
	assert.Equal(t, model.StatusDraft, doc.Status)
	assert.Equal(t, tpl.Form.Title, doc.Title)
	assert.Equal(t, model.DefaultSettings(), doc.Settings)

	require.Len(t, doc.Questions, len(tpl.Form.Questions))
	for i, q := range doc.Questions {
		assert.Equal(t, tpl.Form.Questions[i].Type, q.Type)
		assert.Equal(t, tpl.Form.Questions[i].Label, q.Label)
		assert.Equal(t, tpl.Form.Questions[i].Required, q.Required)
		assert.Equal(t, i, q.Order)
		assert.NotEmpty(t, q.ID)
	}

	// two instances never share question ids
	other := tpl.Instantiate()
	assert.NotEqual(t, doc.Questions[0].ID, other.Questions[0].ID)
}

func TestInstantiateCarriesOptionsAndBounds(t *testing.T) {
	tpl := Search("Satisfacción")[0]
	doc := tpl.Instantiate()

	rating := doc.Questions[0]
	require.NotNil(t, rating.MinValue)
	require.NotNil(t, rating.MaxValue)
	assert.Equal(t, 1.0, *rating.MinValue)
	assert.Equal(t, 5.0, *rating.MaxValue)

	selectQ := doc.Questions[1]
	require.Len(t, selectQ.Options, 3)
	assert.Equal(t, "tal_vez", selectQ.Options[2].Value)
}

func TestInstantiatedTemplatesValidate(t *testing.T) {
	for _, tpl := range All() {
		t.Run(tpl.Name, func(t *testing.T) {
			assert.NoError(t, model.Validate(tpl.Instantiate()))
		})
	}
}

func TestByCategory(t *testing.T) {
	feedback := ByCategory("feedback")
	require.NotEmpty(t, feedback)
	for _, tpl := range feedback {
		assert.Equal(t, "feedback", tpl.Category)
	}

	assert.Empty(t, ByCategory("nonexistent"))
}

func TestSearch(t *testing.T) {
	assert.Len(t, Search("encuesta"), 2)
	assert.Len(t, Search("EVENTO"), 1)
	assert.Empty(t, Search("zzz"))
	assert.Len(t, Search(""), len(All()))
}
