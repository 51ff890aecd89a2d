package wizard

import (
	"consogab-me/models"
)

// StateFromProduct builds a pre-filled form state from an existing product,
// used when a wizard session edits rather than creates. The inverse of
// ToProductPayload as far as the form fields go.
func StateFromProduct(p *models.Product) models.WizardFormState {
	return models.WizardFormState{
		Title:           p.Title,
		Description:     p.Description,
		Category:        p.Category,
		Subcategory:     p.Subcategory,
		Condition:       p.Condition,
		MainColor:       p.MainColor,
		Brand:           p.Brand,
		Manufacturer:    p.Manufacturer,
		SecondaryColors: append([]string(nil), p.SecondaryColors...),
		Tags:            append([]string(nil), p.Tags...),
		Images:          append([]models.ImageRef(nil), p.Images...),
		Variants:        append([]models.Variant(nil), p.Variants...),
		Dimensions:      p.Dimensions,
		Availability:    p.Availability,
		DeliveryZone:    p.DeliveryZone,
		PickupLocation: models.PickupLocation{
			Address:  p.Address,
			City:     p.City,
			District: p.District,
		},
	}
}
