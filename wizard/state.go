package wizard

import (
	"consogab-me/models"
)

// ApplyPatch merges a partial update into a form state and returns the result.
// Scalar fields are overwritten when present; nested records (dimensions,
// pickup location) are merged at their own level so setting one field never
// drops its siblings; list fields are replaced wholesale (callers read the
// full list, modify it and write it back).
func ApplyPatch(state models.WizardFormState, patch models.WizardFormPatch) models.WizardFormState {
	if patch.Title != nil {
		state.Title = *patch.Title
	}
	if patch.Description != nil {
		state.Description = *patch.Description
	}
	if patch.Category != nil {
		state.Category = *patch.Category
	}
	if patch.Subcategory != nil {
		state.Subcategory = *patch.Subcategory
	}
	if patch.Condition != nil {
		state.Condition = *patch.Condition
	}
	if patch.MainColor != nil {
		state.MainColor = *patch.MainColor
	}
	if patch.Brand != nil {
		state.Brand = *patch.Brand
	}
	if patch.Manufacturer != nil {
		state.Manufacturer = *patch.Manufacturer
	}
	if patch.Availability != nil {
		state.Availability = *patch.Availability
	}
	if patch.DeliveryZone != nil {
		state.DeliveryZone = *patch.DeliveryZone
	}

	if patch.SecondaryColors != nil {
		state.SecondaryColors = copyStrings(*patch.SecondaryColors)
	}
	if patch.Tags != nil {
		state.Tags = copyStrings(*patch.Tags)
	}
	if patch.Images != nil {
		state.Images = append([]models.ImageRef(nil), (*patch.Images)...)
	}
	if patch.Variants != nil {
		state.Variants = append([]models.Variant(nil), (*patch.Variants)...)
	}

	if patch.Dimensions != nil {
		d := patch.Dimensions
		if d.Length != nil {
			state.Dimensions.Length = *d.Length
		}
		if d.Width != nil {
			state.Dimensions.Width = *d.Width
		}
		if d.Height != nil {
			state.Dimensions.Height = *d.Height
		}
		if d.Weight != nil {
			state.Dimensions.Weight = *d.Weight
		}
	}

	if patch.PickupLocation != nil {
		l := patch.PickupLocation
		if l.Address != nil {
			state.PickupLocation.Address = *l.Address
		}
		if l.City != nil {
			state.PickupLocation.City = *l.City
		}
		if l.District != nil {
			state.PickupLocation.District = *l.District
		}
	}

	return state
}

// CloneState returns a deep copy of a form state. Slices are copied so the
// caller cannot alias session-held state.
func CloneState(s models.WizardFormState) models.WizardFormState {
	s.SecondaryColors = copyStrings(s.SecondaryColors)
	s.Tags = copyStrings(s.Tags)
	s.Images = append([]models.ImageRef(nil), s.Images...)
	s.Variants = append([]models.Variant(nil), s.Variants...)
	return s
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
