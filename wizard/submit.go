package wizard

import (
	"errors"
	"strings"

	"consogab-me/models"
	"consogab-me/utils"
)

const errNoCompleteVariant = "Au moins une variante complète (couleur, taille, prix) est requise"

// ErrNoCompleteVariant is returned when a product is submitted without any
// variant carrying color, size and price all set. A listing without a priced
// variant is rejected rather than defaulting its price to zero.
var ErrNoCompleteVariant = errors.New(errNoCompleteVariant)

// CompleteVariants filters the variants that are meaningful for submission:
// colorCode, sizeCode and price must all be set. Partial variants are allowed
// while editing and silently dropped here.
func CompleteVariants(s *models.WizardFormState) []models.Variant {
	var out []models.Variant
	for _, v := range s.Variants {
		if v.ColorCode != "" && v.SizeCode != "" && v.Price > 0 {
			out = append(out, v)
		}
	}
	return out
}

// ToProductPayload maps the aggregate form state to the persistence payload
// for a product. Price comes from the first complete variant (the reference
// offer), stock is the sum of all complete variants' stock, and tags are the
// order-preserving union of explicit tags plus main color, condition and
// secondary colors.
func ToProductPayload(s *models.WizardFormState, rubric *Rubric, businessID, catalogID int64) (*models.ProductCreateRequest, error) {
	variants := CompleteVariants(s)
	if len(variants) == 0 {
		return nil, ErrNoCompleteVariant
	}

	stockTotal := 0
	for _, v := range variants {
		stockTotal += v.Stock
	}

	return &models.ProductCreateRequest{
		BusinessID:      businessID,
		CatalogID:       catalogID,
		Title:           strings.TrimSpace(s.Title),
		Description:     strings.TrimSpace(s.Description),
		Category:        s.Category,
		Subcategory:     s.Subcategory,
		Condition:       s.Condition,
		MainColor:       s.MainColor,
		SecondaryColors: append([]string(nil), s.SecondaryColors...),
		Brand:           strings.TrimSpace(s.Brand),
		Manufacturer:    strings.TrimSpace(s.Manufacturer),
		Tags:            buildProductTags(s),
		Price:           variants[0].Price,
		StockTotal:      stockTotal,
		Images:          append([]models.ImageRef(nil), s.Images...),
		Variants:        variants,
		Dimensions:      s.Dimensions,
		Availability:    utils.NormalizeAvailability(s.Availability),
		DeliveryZone:    s.DeliveryZone,
		City:            s.PickupLocation.City,
		District:        s.PickupLocation.District,
		Address:         s.PickupLocation.Address,
		QualityScore:    rubric.Score(s),
		IsPublished:     true,
	}, nil
}

// ToCatalogPayload maps the aggregate form state to the persistence payload
// for a catalog. The catalog flow reuses the shared form record: Title is the
// catalog name and Tags are the keywords.
func ToCatalogPayload(s *models.WizardFormState, businessID int64) (*models.CatalogCreateRequest, error) {
	name := strings.TrimSpace(s.Title)
	if name == "" {
		return nil, errors.New("Le nom du catalogue est requis")
	}

	return &models.CatalogCreateRequest{
		BusinessID:  businessID,
		Name:        name,
		Description: strings.TrimSpace(s.Description),
		Category:    s.Category,
		Keywords:    append([]string(nil), s.Tags...),
		Images:      append([]models.ImageRef(nil), s.Images...),
		IsPublic:    true,
	}, nil
}

// buildProductTags unions the explicit tags with the main color name, the
// condition and the secondary color names. Insertion order is preserved and
// duplicates dropped case-insensitively.
func buildProductTags(s *models.WizardFormState) []string {
	var out []string
	seen := make(map[string]bool)

	add := func(tag string) {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			return
		}
		key := strings.ToLower(tag)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, tag)
	}

	for _, tag := range s.Tags {
		add(tag)
	}
	if s.MainColor != "" {
		add(utils.MapColorToName(s.MainColor))
	}
	add(s.Condition)
	for _, color := range s.SecondaryColors {
		add(utils.MapColorToName(color))
	}

	return out
}
