package wizard

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"consogab-me/models"
	"consogab-me/utils"
)

// Step counts per flow
const (
	ProductTotalSteps = 9
	CatalogTotalSteps = 4
)

// Product flow steps. One step number maps to exactly one screen.
const (
	ProductStepCategory    = 1
	ProductStepSubcategory = 2
	ProductStepBasicInfo   = 3
	ProductStepImages      = 4
	ProductStepAttributes  = 5
	ProductStepDimensions  = 6
	ProductStepVariants    = 7
	ProductStepLogistics   = 8
	ProductStepReview      = 9
)

// Catalog flow steps
const (
	CatalogStepInfo     = 1
	CatalogStepKeywords = 2
	CatalogStepImages   = 3
	CatalogStepConfirm  = 4
)

// Minimum counts for the catalog flow
const (
	CatalogMinKeywords = 3
	CatalogMinImages   = 4
)

// Minimum lengths for the product basic-info step
const (
	productMinTitleLen       = 10
	productMinDescriptionLen = 50
)

// TotalSteps returns the step count for a wizard flavor
func TotalSteps(flow models.WizardFlow) int {
	if flow == models.FlowCatalog {
		return CatalogTotalSteps
	}
	return ProductTotalSteps
}

// ValidateStep checks the required fields of one step and returns all failing
// checks together as user-facing French messages. An empty list means the step
// passes. The check is idempotent: it reads the state and never mutates it.
func ValidateStep(flow models.WizardFlow, step int, state *models.WizardFormState) []string {
	if flow == models.FlowCatalog {
		return validateCatalogStep(step, state)
	}
	return validateProductStep(step, state)
}

func validateProductStep(step int, state *models.WizardFormState) []string {
	var errs []string

	switch step {
	case ProductStepCategory:
		if strings.TrimSpace(state.Category) == "" {
			errs = append(errs, "Veuillez sélectionner une catégorie")
		}

	case ProductStepSubcategory:
		// Optional refinement, nothing blocks advancement.

	case ProductStepBasicInfo:
		if utf8.RuneCountInString(strings.TrimSpace(state.Title)) < productMinTitleLen {
			errs = append(errs, fmt.Sprintf("Le titre doit contenir au moins %d caractères", productMinTitleLen))
		}
		if utf8.RuneCountInString(strings.TrimSpace(state.Description)) < productMinDescriptionLen {
			errs = append(errs, fmt.Sprintf("La description doit contenir au moins %d caractères", productMinDescriptionLen))
		}

	case ProductStepImages:
		if len(state.Images) < 1 {
			errs = append(errs, "Ajoutez au moins une photo du produit")
		}

	case ProductStepAttributes:
		if strings.TrimSpace(state.Condition) == "" {
			errs = append(errs, "Veuillez indiquer l'état du produit")
		} else if !utils.IsValidCondition(state.Condition) {
			errs = append(errs, "L'état sélectionné n'est pas valide")
		}
		if strings.TrimSpace(state.MainColor) == "" {
			errs = append(errs, "Veuillez sélectionner la couleur principale")
		}

	case ProductStepDimensions:
		if strings.TrimSpace(state.Dimensions.Length) == "" {
			errs = append(errs, "Veuillez renseigner la longueur")
		}
		if strings.TrimSpace(state.Dimensions.Width) == "" {
			errs = append(errs, "Veuillez renseigner la largeur")
		}

	case ProductStepVariants:
		// Partial variants are permitted while editing; completeness is
		// enforced at publication.

	case ProductStepLogistics:
		if strings.TrimSpace(state.PickupLocation.City) == "" {
			errs = append(errs, "Veuillez indiquer la ville")
		}
		if strings.TrimSpace(state.PickupLocation.District) == "" {
			errs = append(errs, "Veuillez indiquer le quartier")
		}
		if strings.TrimSpace(state.Availability) == "" {
			errs = append(errs, "Veuillez indiquer la disponibilité")
		}

	case ProductStepReview:
		// Publication has its own gate (score threshold + complete variant).
	}

	return errs
}

func validateCatalogStep(step int, state *models.WizardFormState) []string {
	var errs []string

	switch step {
	case CatalogStepInfo:
		if strings.TrimSpace(state.Title) == "" {
			errs = append(errs, "Veuillez donner un nom au catalogue")
		}

	case CatalogStepKeywords:
		if len(state.Tags) < CatalogMinKeywords {
			errs = append(errs, fmt.Sprintf("Ajoutez au moins %d mots-clés", CatalogMinKeywords))
		}

	case CatalogStepImages:
		if len(state.Images) < CatalogMinImages {
			errs = append(errs, fmt.Sprintf("Ajoutez au moins %d images", CatalogMinImages))
		}

	case CatalogStepConfirm:
		// Confirmation screen, nothing required to reach it.
	}

	return errs
}
