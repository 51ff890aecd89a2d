package wizard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consogab-me/models"
	"consogab-me/wizard"
)

func TestCompleteVariants(t *testing.T) {
	t.Parallel()

	state := &models.WizardFormState{
		Variants: []models.Variant{
			{ColorCode: "blue", SizeCode: "M", Price: 5000, Stock: 3},
			{ColorCode: "blue", SizeCode: "L"},             // no price
			{ColorCode: "", SizeCode: "S", Price: 4000},    // no color
			{ColorCode: "red", SizeCode: "", Price: 4500},  // no size
			{ColorCode: "red", SizeCode: "M", Price: 4500, Stock: 2},
		},
	}

	complete := wizard.CompleteVariants(state)
	require.Len(t, complete, 2)
	assert.Equal(t, "M", complete[0].SizeCode)
	assert.Equal(t, "red", complete[1].ColorCode)
}

func TestToProductPayload(t *testing.T) {
	t.Parallel()

	rubric := wizard.DefaultRubric()
	state := fullProductState()
	state.Variants = []models.Variant{
		{ColorCode: "blue", SizeCode: "M", Price: 5000, Stock: 3},
		{ColorCode: "blue", SizeCode: "L", Price: 5500, Stock: 2},
		{ColorCode: "blue", SizeCode: "XL"}, // incomplete, dropped
	}

	payload, err := wizard.ToProductPayload(state, rubric, 7, 3)
	require.NoError(t, err)

	assert.Equal(t, int64(7), payload.BusinessID)
	assert.Equal(t, int64(3), payload.CatalogID)
	assert.Equal(t, "T-shirt coton bio bleu marine homme M", payload.Title)

	// Price comes from the first complete variant; stock is the sum of the
	// complete variants only.
	assert.Equal(t, int64(5000), payload.Price)
	assert.Equal(t, 5, payload.StockTotal)
	assert.Len(t, payload.Variants, 2)

	assert.Equal(t, 100, payload.QualityScore)
	assert.True(t, payload.IsPublished)
	assert.Len(t, payload.Images, 5)
}

func TestToProductPayloadRejectsWithoutCompleteVariant(t *testing.T) {
	t.Parallel()

	state := fullProductState()
	state.Variants = []models.Variant{{ColorCode: "blue", SizeCode: "M"}}

	_, err := wizard.ToProductPayload(state, wizard.DefaultRubric(), 7, 0)
	assert.ErrorIs(t, err, wizard.ErrNoCompleteVariant)
}

func TestProductTagsUnion(t *testing.T) {
	t.Parallel()

	state := fullProductState()
	state.Tags = []string{"coton", "Bleu", "homme"}
	state.MainColor = "blue"       // "bleu" already present, case-insensitive
	state.Condition = "Neuf"
	state.SecondaryColors = []string{"red", "white"}
	state.Variants = []models.Variant{{ColorCode: "blue", SizeCode: "M", Price: 5000}}

	payload, err := wizard.ToProductPayload(state, wizard.DefaultRubric(), 7, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"coton", "Bleu", "homme", "Neuf", "rouge", "blanc"}, payload.Tags)
}

func TestToCatalogPayload(t *testing.T) {
	t.Parallel()

	state := &models.WizardFormState{
		Title:       "  Catalogue été  ",
		Description: "Sélection estivale",
		Category:    "vetements",
		Tags:        []string{"été", "plage", "soleil"},
		Images:      []models.ImageRef{{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}},
	}

	payload, err := wizard.ToCatalogPayload(state, 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), payload.BusinessID)
	assert.Equal(t, "Catalogue été", payload.Name)
	assert.Equal(t, []string{"été", "plage", "soleil"}, payload.Keywords)
	assert.Len(t, payload.Images, 4)
	assert.True(t, payload.IsPublic)
}

func TestToCatalogPayloadRequiresName(t *testing.T) {
	t.Parallel()

	_, err := wizard.ToCatalogPayload(&models.WizardFormState{Title: "   "}, 7)
	assert.Error(t, err)
}
