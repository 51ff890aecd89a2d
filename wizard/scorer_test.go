package wizard_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consogab-me/models"
	"consogab-me/wizard"
)

// fullProductState builds a form state that earns full points on every rubric
// dimension.
func fullProductState() *models.WizardFormState {
	return &models.WizardFormState{
		Title:       "T-shirt coton bio bleu marine homme M",
		Description: "T-shirt en coton biologique certifié, coupe droite, col rond. Tissu doux et respirant, idéal pour un usage quotidien. Lavable en machine à 30 degrés.",
		Category:    "vetements",
		Subcategory: "t-shirts",
		Condition:   "Neuf",
		MainColor:   "blue",
		SecondaryColors: []string{
			"white",
		},
		Images: []models.ImageRef{
			{ID: "1", URL: "/media/1.jpg"},
			{ID: "2", URL: "/media/2.jpg"},
			{ID: "3", URL: "/media/3.jpg"},
			{ID: "4", URL: "/media/4.jpg"},
			{ID: "5", URL: "/media/5.jpg"},
		},
		Dimensions: models.Dimensions{
			Length: "70 cm",
			Width:  "50 cm",
			Height: "2 cm",
			Weight: "180 g",
		},
		PickupLocation: models.PickupLocation{
			Address:  "Rue des Palmiers 12",
			City:     "Libreville",
			District: "Glass",
		},
		Availability: "en_stock",
		DeliveryZone: "Libreville et environs",
	}
}

func TestScoreFullState(t *testing.T) {
	t.Parallel()

	rubric := wizard.DefaultRubric()
	state := fullProductState()

	assert.Equal(t, 100, rubric.Score(state))
	assert.True(t, rubric.CanPublish(state))

	breakdown := rubric.Evaluate(state)
	assert.Empty(t, breakdown.Deficiencies())
	for _, dim := range breakdown.Dimensions {
		assert.Equal(t, dim.Max, dim.Points, "dimension %s should be at full points", dim.Key)
	}
}

func TestScoreEmptyState(t *testing.T) {
	t.Parallel()

	rubric := wizard.DefaultRubric()
	state := &models.WizardFormState{}

	assert.Equal(t, 0, rubric.Score(state))
	assert.False(t, rubric.CanPublish(state))
}

func TestScoreTitleBands(t *testing.T) {
	t.Parallel()

	rubric := wizard.DefaultRubric()

	tests := []struct {
		name      string
		title     string
		mainColor string
		want      int
	}{
		{"long title with color token", "T-shirt coton bio bleu marine homme M", "blue", 15},
		{"long title without color token", "Pantalon élégant taille M", "blue", 10},
		{"mid length title", "Joli pantalon", "", 10},
		{"short title", "Produit", "", 5},
		{"too short", "Sac", "", 0},
		{"empty", "", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			state := &models.WizardFormState{Title: tt.title, MainColor: tt.mainColor}
			breakdown := rubric.Evaluate(state)
			assert.Equal(t, tt.want, breakdown.Dimensions[0].Points)
		})
	}
}

func TestScoreImagesBands(t *testing.T) {
	t.Parallel()

	rubric := wizard.DefaultRubric()

	tests := []struct {
		count int
		want  int
	}{
		{5, 20},
		{7, 20},
		{3, 15},
		{1, 8},
		{0, 0},
	}

	for _, tt := range tests {
		images := make([]models.ImageRef, tt.count)
		state := &models.WizardFormState{Images: images}
		breakdown := rubric.Evaluate(state)
		assert.Equal(t, tt.want, breakdown.Dimensions[3].Points, "with %d images", tt.count)
	}
}

func TestScoreDimensionsProportional(t *testing.T) {
	t.Parallel()

	rubric := wizard.DefaultRubric()

	tests := []struct {
		name string
		dims models.Dimensions
		want int
	}{
		{"all four", models.Dimensions{Length: "1", Width: "2", Height: "3", Weight: "4"}, 10},
		{"two of four", models.Dimensions{Length: "70 cm", Width: "50 cm"}, 5},
		{"one of four", models.Dimensions{Length: "70 cm"}, 2},
		{"none", models.Dimensions{}, 0},
		{"blank strings do not count", models.Dimensions{Length: "  ", Width: "50 cm"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			state := &models.WizardFormState{Dimensions: tt.dims}
			breakdown := rubric.Evaluate(state)
			assert.Equal(t, tt.want, breakdown.Dimensions[6].Points)
		})
	}
}

func TestScoreNeverDecreasesAsFieldsFill(t *testing.T) {
	t.Parallel()

	rubric := wizard.DefaultRubric()
	full := fullProductState()

	// Fill the state one dimension at a time and check the running score only
	// ever goes up.
	state := &models.WizardFormState{}
	prev := rubric.Score(state)

	steps := []func(){
		func() { state.Category = full.Category; state.Subcategory = full.Subcategory },
		func() { state.Title = full.Title; state.MainColor = full.MainColor },
		func() { state.Description = full.Description },
		func() { state.Images = full.Images },
		func() { state.Condition = full.Condition },
		func() { state.SecondaryColors = full.SecondaryColors },
		func() { state.Dimensions = full.Dimensions },
		func() { state.PickupLocation = full.PickupLocation },
		func() { state.Availability = full.Availability; state.DeliveryZone = full.DeliveryZone },
	}
	for _, fill := range steps {
		fill()
		got := rubric.Score(state)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
	assert.Equal(t, 100, prev)
}

func TestRemovingImagesLowersScore(t *testing.T) {
	t.Parallel()

	rubric := wizard.DefaultRubric()
	state := fullProductState()
	require.Equal(t, 100, rubric.Score(state))

	state.Images = state.Images[:1]
	assert.Equal(t, 88, rubric.Score(state))

	state.Images = nil
	assert.Equal(t, 80, rubric.Score(state))
	assert.True(t, rubric.CanPublish(state), "threshold is inclusive")
}

func TestDeficiencies(t *testing.T) {
	t.Parallel()

	rubric := wizard.DefaultRubric()
	state := &models.WizardFormState{
		Title: "Produit",
	}

	deficiencies := rubric.Evaluate(state).Deficiencies()
	assert.Contains(t, deficiencies, "Titre (5/15 pts)")
	assert.Contains(t, deficiencies, "Photos (0/20 pts)")
	assert.Contains(t, deficiencies, "Disponibilité et livraison (0/5 pts)")
	assert.Len(t, deficiencies, 9)
}

func TestRubricValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, wizard.DefaultRubric().Validate())

	broken := wizard.DefaultRubric()
	broken.ImagesWeight = 25
	assert.Error(t, broken.Validate())

	badThreshold := wizard.DefaultRubric()
	badThreshold.PublishThreshold = 120
	assert.Error(t, badThreshold.Validate())
}

func TestLoadRubric(t *testing.T) {
	t.Parallel()

	t.Run("missing file falls back to default", func(t *testing.T) {
		t.Parallel()
		rubric, err := wizard.LoadRubric(filepath.Join(t.TempDir(), "nope.json"))
		require.NoError(t, err)
		assert.Equal(t, wizard.DefaultRubric(), rubric)
	})

	t.Run("config overrides defaults", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "rubric.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"publishThreshold": 70}`), 0o644))

		rubric, err := wizard.LoadRubric(path)
		require.NoError(t, err)
		assert.Equal(t, 70, rubric.PublishThreshold)
		assert.Equal(t, 15, rubric.TitleWeight)
	})

	t.Run("weights must still sum to 100", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "rubric.json")
		broken, err := json.Marshal(map[string]int{"imagesWeight": 50})
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, broken, 0o644))

		_, err = wizard.LoadRubric(path)
		assert.Error(t, err)
	})
}
