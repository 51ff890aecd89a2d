package wizard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"consogab-me/models"
	"consogab-me/wizard"
)

func TestTotalSteps(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 9, wizard.TotalSteps(models.FlowProduct))
	assert.Equal(t, 4, wizard.TotalSteps(models.FlowCatalog))
}

func TestValidateProductSteps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		step     int
		state    models.WizardFormState
		wantErrs []string
	}{
		{
			name:     "category missing",
			step:     wizard.ProductStepCategory,
			state:    models.WizardFormState{},
			wantErrs: []string{"Veuillez sélectionner une catégorie"},
		},
		{
			name:  "category set",
			step:  wizard.ProductStepCategory,
			state: models.WizardFormState{Category: "vetements"},
		},
		{
			name:  "subcategory is optional",
			step:  wizard.ProductStepSubcategory,
			state: models.WizardFormState{},
		},
		{
			name:  "basic info both too short reports both",
			step:  wizard.ProductStepBasicInfo,
			state: models.WizardFormState{Title: "Court", Description: "Trop court"},
			wantErrs: []string{
				"Le titre doit contenir au moins 10 caractères",
				"La description doit contenir au moins 50 caractères",
			},
		},
		{
			name: "basic info valid",
			step: wizard.ProductStepBasicInfo,
			state: models.WizardFormState{
				Title:       "T-shirt coton bio",
				Description: "Une description suffisamment longue pour passer la validation du formulaire.",
			},
		},
		{
			name:     "images required",
			step:     wizard.ProductStepImages,
			state:    models.WizardFormState{},
			wantErrs: []string{"Ajoutez au moins une photo du produit"},
		},
		{
			name:  "one image is enough to advance",
			step:  wizard.ProductStepImages,
			state: models.WizardFormState{Images: []models.ImageRef{{ID: "1"}}},
		},
		{
			name:  "attributes missing both",
			step:  wizard.ProductStepAttributes,
			state: models.WizardFormState{},
			wantErrs: []string{
				"Veuillez indiquer l'état du produit",
				"Veuillez sélectionner la couleur principale",
			},
		},
		{
			name:     "unknown condition rejected",
			step:     wizard.ProductStepAttributes,
			state:    models.WizardFormState{Condition: "Cassé", MainColor: "blue"},
			wantErrs: []string{"L'état sélectionné n'est pas valide"},
		},
		{
			name:     "dimensions need length and width",
			step:     wizard.ProductStepDimensions,
			state:    models.WizardFormState{Dimensions: models.Dimensions{Length: "70 cm"}},
			wantErrs: []string{"Veuillez renseigner la largeur"},
		},
		{
			name:  "partial variants allowed while editing",
			step:  wizard.ProductStepVariants,
			state: models.WizardFormState{Variants: []models.Variant{{ColorCode: "blue"}}},
		},
		{
			name:  "logistics missing everything",
			step:  wizard.ProductStepLogistics,
			state: models.WizardFormState{},
			wantErrs: []string{
				"Veuillez indiquer la ville",
				"Veuillez indiquer le quartier",
				"Veuillez indiquer la disponibilité",
			},
		},
		{
			name:  "review step has no blocking checks",
			step:  wizard.ProductStepReview,
			state: models.WizardFormState{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := wizard.ValidateStep(models.FlowProduct, tt.step, &tt.state)
			assert.Equal(t, tt.wantErrs, got)
		})
	}
}

func TestValidateCatalogSteps(t *testing.T) {
	t.Parallel()

	state := models.WizardFormState{}
	assert.Equal(t, []string{"Veuillez donner un nom au catalogue"},
		wizard.ValidateStep(models.FlowCatalog, wizard.CatalogStepInfo, &state))
	assert.Equal(t, []string{"Ajoutez au moins 3 mots-clés"},
		wizard.ValidateStep(models.FlowCatalog, wizard.CatalogStepKeywords, &state))
	assert.Equal(t, []string{"Ajoutez au moins 4 images"},
		wizard.ValidateStep(models.FlowCatalog, wizard.CatalogStepImages, &state))
	assert.Empty(t, wizard.ValidateStep(models.FlowCatalog, wizard.CatalogStepConfirm, &state))

	filled := models.WizardFormState{
		Title:  "Catalogue été",
		Tags:   []string{"été", "plage", "soleil"},
		Images: []models.ImageRef{{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}},
	}
	assert.Empty(t, wizard.ValidateStep(models.FlowCatalog, wizard.CatalogStepInfo, &filled))
	assert.Empty(t, wizard.ValidateStep(models.FlowCatalog, wizard.CatalogStepKeywords, &filled))
	assert.Empty(t, wizard.ValidateStep(models.FlowCatalog, wizard.CatalogStepImages, &filled))
}

func TestValidateStepIsIdempotent(t *testing.T) {
	t.Parallel()

	state := models.WizardFormState{Title: "Court"}
	first := wizard.ValidateStep(models.FlowProduct, wizard.ProductStepBasicInfo, &state)
	second := wizard.ValidateStep(models.FlowProduct, wizard.ProductStepBasicInfo, &state)

	assert.Equal(t, first, second)
	assert.Equal(t, "Court", state.Title, "validation never mutates the state")
}
