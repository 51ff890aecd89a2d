package wizard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"consogab-me/models"
	"consogab-me/wizard"
)

func strPtr(s string) *string { return &s }

func TestApplyPatchScalars(t *testing.T) {
	t.Parallel()

	state := models.WizardFormState{
		Title:       "Ancien titre",
		Description: "Ancienne description",
	}

	got := wizard.ApplyPatch(state, models.WizardFormPatch{
		Title: strPtr("Nouveau titre"),
	})

	assert.Equal(t, "Nouveau titre", got.Title)
	assert.Equal(t, "Ancienne description", got.Description, "untouched fields survive")

	// An explicit empty string clears the field; a nil pointer does not.
	got = wizard.ApplyPatch(got, models.WizardFormPatch{Title: strPtr("")})
	assert.Equal(t, "", got.Title)
}

func TestApplyPatchNestedDimensions(t *testing.T) {
	t.Parallel()

	state := models.WizardFormState{
		Dimensions: models.Dimensions{Length: "70 cm", Width: "50 cm"},
	}

	// Setting only the height must not drop length or width.
	got := wizard.ApplyPatch(state, models.WizardFormPatch{
		Dimensions: &models.DimensionsPatch{Height: strPtr("2 cm")},
	})

	assert.Equal(t, "70 cm", got.Dimensions.Length)
	assert.Equal(t, "50 cm", got.Dimensions.Width)
	assert.Equal(t, "2 cm", got.Dimensions.Height)
}

func TestApplyPatchNestedLocation(t *testing.T) {
	t.Parallel()

	state := models.WizardFormState{
		PickupLocation: models.PickupLocation{City: "Libreville", District: "Glass"},
	}

	got := wizard.ApplyPatch(state, models.WizardFormPatch{
		PickupLocation: &models.PickupLocationPatch{District: strPtr("Nombakélé")},
	})

	assert.Equal(t, "Libreville", got.PickupLocation.City)
	assert.Equal(t, "Nombakélé", got.PickupLocation.District)
}

func TestApplyPatchListsReplacedWholesale(t *testing.T) {
	t.Parallel()

	state := models.WizardFormState{
		Tags:   []string{"coton", "bio"},
		Images: []models.ImageRef{{ID: "1"}, {ID: "2"}},
	}

	newTags := []string{"lin"}
	got := wizard.ApplyPatch(state, models.WizardFormPatch{Tags: &newTags})

	assert.Equal(t, []string{"lin"}, got.Tags)
	assert.Len(t, got.Images, 2, "images untouched by a tags-only patch")

	// Emptying a list is an explicit empty slice, not nil.
	empty := []models.ImageRef{}
	got = wizard.ApplyPatch(got, models.WizardFormPatch{Images: &empty})
	assert.Empty(t, got.Images)

	// The state holds its own copy of the patched slice.
	newTags[0] = "altered"
	assert.Equal(t, []string{"lin"}, got.Tags)
}

func TestCloneStateIsolation(t *testing.T) {
	t.Parallel()

	original := models.WizardFormState{
		Tags:     []string{"coton"},
		Images:   []models.ImageRef{{ID: "1"}},
		Variants: []models.Variant{{ColorCode: "blue", SizeCode: "M", Price: 5000}},
	}

	clone := wizard.CloneState(original)
	clone.Tags[0] = "altered"
	clone.Images[0].ID = "altered"
	clone.Variants[0].Price = 1

	assert.Equal(t, "coton", original.Tags[0])
	assert.Equal(t, "1", original.Images[0].ID)
	assert.Equal(t, int64(5000), original.Variants[0].Price)
}
