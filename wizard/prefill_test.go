package wizard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consogab-me/models"
	"consogab-me/wizard"
)

func TestStateFromProductRoundTrip(t *testing.T) {
	t.Parallel()

	original := fullProductState()
	original.Variants = []models.Variant{{ColorCode: "blue", SizeCode: "M", Price: 5000, Stock: 3}}
	original.Tags = []string{"coton", "homme"}

	payload, err := wizard.ToProductPayload(original, wizard.DefaultRubric(), 7, 0)
	require.NoError(t, err)

	product := &models.Product{
		Title:           payload.Title,
		Description:     payload.Description,
		Category:        payload.Category,
		Subcategory:     payload.Subcategory,
		Condition:       payload.Condition,
		MainColor:       payload.MainColor,
		SecondaryColors: payload.SecondaryColors,
		Brand:           payload.Brand,
		Manufacturer:    payload.Manufacturer,
		Tags:            payload.Tags,
		Images:          payload.Images,
		Variants:        payload.Variants,
		Dimensions:      payload.Dimensions,
		Availability:    payload.Availability,
		DeliveryZone:    payload.DeliveryZone,
		City:            payload.City,
		District:        payload.District,
		Address:         payload.Address,
	}

	restored := wizard.StateFromProduct(product)
	assert.Equal(t, original.Title, restored.Title)
	assert.Equal(t, original.Dimensions, restored.Dimensions)
	assert.Equal(t, original.PickupLocation, restored.PickupLocation)
	assert.Equal(t, original.Images, restored.Images)
	assert.Equal(t, original.Variants, restored.Variants)

	// A restored listing scores exactly what it scored at publication.
	assert.Equal(t, payload.QualityScore, wizard.DefaultRubric().Score(&restored))
}
