package wizard

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"consogab-me/models"
	"consogab-me/utils"
)

// Rubric holds the completeness-scoring configuration. Weights must sum to
// 100; the score of a form state is the sum of the per-dimension points,
// capped at 100. Scoring is pure: no I/O, no side effects.
type Rubric struct {
	PublishThreshold int `json:"publishThreshold"`

	TitleWeight     int `json:"titleWeight"`
	TitleFullMinLen int `json:"titleFullMinLen"` // full band also requires the main color token in the title
	TitleMidMinLen  int `json:"titleMidMinLen"`
	TitleMidPoints  int `json:"titleMidPoints"`
	TitleLowMinLen  int `json:"titleLowMinLen"`
	TitleLowPoints  int `json:"titleLowPoints"`

	DescriptionWeight    int `json:"descriptionWeight"`
	DescriptionFullLen   int `json:"descriptionFullLen"`
	DescriptionMidLen    int `json:"descriptionMidLen"`
	DescriptionMidPoints int `json:"descriptionMidPoints"`
	DescriptionLowLen    int `json:"descriptionLowLen"`
	DescriptionLowPoints int `json:"descriptionLowPoints"`

	CategoryWeight     int `json:"categoryWeight"`
	CategoryOnlyPoints int `json:"categoryOnlyPoints"`

	ImagesWeight    int `json:"imagesWeight"`
	ImagesFullCount int `json:"imagesFullCount"`
	ImagesMidCount  int `json:"imagesMidCount"`
	ImagesMidPoints int `json:"imagesMidPoints"`
	ImagesLowCount  int `json:"imagesLowCount"`
	ImagesLowPoints int `json:"imagesLowPoints"`

	ConditionWeight int `json:"conditionWeight"`

	ColorsWeight         int `json:"colorsWeight"`
	ColorsMainOnlyPoints int `json:"colorsMainOnlyPoints"`

	DimensionsWeight int `json:"dimensionsWeight"`

	LocationWeight             int `json:"locationWeight"`
	LocationCityDistrictPoints int `json:"locationCityDistrictPoints"`
	LocationCityOnlyPoints     int `json:"locationCityOnlyPoints"`

	DeliveryWeight       int `json:"deliveryWeight"`
	DeliveryEitherPoints int `json:"deliveryEitherPoints"`
}

// DefaultRubric returns the built-in scoring configuration
func DefaultRubric() *Rubric {
	return &Rubric{
		PublishThreshold: 80,

		TitleWeight:     15,
		TitleFullMinLen: 15,
		TitleMidMinLen:  10,
		TitleMidPoints:  10,
		TitleLowMinLen:  5,
		TitleLowPoints:  5,

		DescriptionWeight:    15,
		DescriptionFullLen:   100,
		DescriptionMidLen:    50,
		DescriptionMidPoints: 10,
		DescriptionLowLen:    20,
		DescriptionLowPoints: 5,

		CategoryWeight:     10,
		CategoryOnlyPoints: 5,

		ImagesWeight:    20,
		ImagesFullCount: 5,
		ImagesMidCount:  3,
		ImagesMidPoints: 15,
		ImagesLowCount:  1,
		ImagesLowPoints: 8,

		ConditionWeight: 5,

		ColorsWeight:         10,
		ColorsMainOnlyPoints: 5,

		DimensionsWeight: 10,

		LocationWeight:             10,
		LocationCityDistrictPoints: 7,
		LocationCityOnlyPoints:     3,

		DeliveryWeight:       5,
		DeliveryEitherPoints: 2,
	}
}

// LoadRubric reads a scoring configuration from a JSON file.
// Missing file is not an error: the default rubric is returned so the wizard
// works without a config deployment.
func LoadRubric(configPath string) (*Rubric, error) {
	if !filepath.IsAbs(configPath) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		configPath = filepath.Join(wd, configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultRubric(), nil
		}
		return nil, fmt.Errorf("failed to read rubric config: %w", err)
	}

	rubric := DefaultRubric()
	if err := json.Unmarshal(data, rubric); err != nil {
		return nil, fmt.Errorf("failed to parse rubric config: %w", err)
	}

	if err := rubric.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rubric config: %w", err)
	}

	return rubric, nil
}

// Validate checks that the rubric weights sum to 100
func (r *Rubric) Validate() error {
	sum := r.TitleWeight + r.DescriptionWeight + r.CategoryWeight + r.ImagesWeight +
		r.ConditionWeight + r.ColorsWeight + r.DimensionsWeight + r.LocationWeight +
		r.DeliveryWeight
	if sum != 100 {
		return fmt.Errorf("rubric weights must sum to 100, got %d", sum)
	}
	if r.PublishThreshold < 0 || r.PublishThreshold > 100 {
		return fmt.Errorf("publish threshold must be in [0,100], got %d", r.PublishThreshold)
	}
	return nil
}

// DimensionScore is the points earned on one rubric dimension
type DimensionScore struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Points int    `json:"points"`
	Max    int    `json:"max"`
}

// Breakdown is a full scoring result
type Breakdown struct {
	Total      int              `json:"total"`
	Dimensions []DimensionScore `json:"dimensions"`
}

// Deficiencies lists the dimensions that did not earn full points, as
// user-facing French labels with their point standing.
func (b *Breakdown) Deficiencies() []string {
	var out []string
	for _, d := range b.Dimensions {
		if d.Points < d.Max {
			out = append(out, fmt.Sprintf("%s (%d/%d pts)", d.Label, d.Points, d.Max))
		}
	}
	return out
}

// Score computes the completeness score of a form state, in [0,100]
func (r *Rubric) Score(s *models.WizardFormState) int {
	return r.Evaluate(s).Total
}

// CanPublish reports whether the state clears the publish threshold
func (r *Rubric) CanPublish(s *models.WizardFormState) bool {
	return r.Score(s) >= r.PublishThreshold
}

// Evaluate computes the per-dimension breakdown of the completeness score
func (r *Rubric) Evaluate(s *models.WizardFormState) *Breakdown {
	dims := []DimensionScore{
		{Key: "title", Label: "Titre", Points: r.scoreTitle(s), Max: r.TitleWeight},
		{Key: "description", Label: "Description", Points: r.scoreDescription(s), Max: r.DescriptionWeight},
		{Key: "category", Label: "Catégorie", Points: r.scoreCategory(s), Max: r.CategoryWeight},
		{Key: "images", Label: "Photos", Points: r.scoreImages(s), Max: r.ImagesWeight},
		{Key: "condition", Label: "État", Points: r.scoreCondition(s), Max: r.ConditionWeight},
		{Key: "colors", Label: "Couleurs", Points: r.scoreColors(s), Max: r.ColorsWeight},
		{Key: "dimensions", Label: "Dimensions", Points: r.scoreDimensions(s), Max: r.DimensionsWeight},
		{Key: "location", Label: "Localisation", Points: r.scoreLocation(s), Max: r.LocationWeight},
		{Key: "delivery", Label: "Disponibilité et livraison", Points: r.scoreDelivery(s), Max: r.DeliveryWeight},
	}

	total := 0
	for _, d := range dims {
		total += d.Points
	}
	if total > 100 {
		total = 100
	}

	return &Breakdown{Total: total, Dimensions: dims}
}

func (r *Rubric) scoreTitle(s *models.WizardFormState) int {
	length := utf8.RuneCountInString(strings.TrimSpace(s.Title))
	switch {
	case length >= r.TitleFullMinLen && titleContainsMainColor(s):
		return r.TitleWeight
	case length >= r.TitleMidMinLen:
		return r.TitleMidPoints
	case length >= r.TitleLowMinLen:
		return r.TitleLowPoints
	default:
		return 0
	}
}

// titleContainsMainColor checks for the French name of the main color inside
// the title, e.g. mainColor "blue" matches "T-shirt bleu marine".
func titleContainsMainColor(s *models.WizardFormState) bool {
	if s.MainColor == "" {
		return false
	}
	colorName := utils.MapColorToName(s.MainColor)
	if colorName == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s.Title), colorName)
}

func (r *Rubric) scoreDescription(s *models.WizardFormState) int {
	length := utf8.RuneCountInString(strings.TrimSpace(s.Description))
	switch {
	case length >= r.DescriptionFullLen:
		return r.DescriptionWeight
	case length >= r.DescriptionMidLen:
		return r.DescriptionMidPoints
	case length >= r.DescriptionLowLen:
		return r.DescriptionLowPoints
	default:
		return 0
	}
}

func (r *Rubric) scoreCategory(s *models.WizardFormState) int {
	switch {
	case s.Category != "" && s.Subcategory != "":
		return r.CategoryWeight
	case s.Category != "":
		return r.CategoryOnlyPoints
	default:
		return 0
	}
}

func (r *Rubric) scoreImages(s *models.WizardFormState) int {
	count := len(s.Images)
	switch {
	case count >= r.ImagesFullCount:
		return r.ImagesWeight
	case count >= r.ImagesMidCount:
		return r.ImagesMidPoints
	case count >= r.ImagesLowCount:
		return r.ImagesLowPoints
	default:
		return 0
	}
}

func (r *Rubric) scoreCondition(s *models.WizardFormState) int {
	if s.Condition != "" {
		return r.ConditionWeight
	}
	return 0
}

func (r *Rubric) scoreColors(s *models.WizardFormState) int {
	switch {
	case s.MainColor != "" && len(s.SecondaryColors) > 0:
		return r.ColorsWeight
	case s.MainColor != "":
		return r.ColorsMainOnlyPoints
	default:
		return 0
	}
}

func (r *Rubric) scoreDimensions(s *models.WizardFormState) int {
	filled := 0
	for _, v := range []string{s.Dimensions.Length, s.Dimensions.Width, s.Dimensions.Height, s.Dimensions.Weight} {
		if strings.TrimSpace(v) != "" {
			filled++
		}
	}
	// Proportional credit: filled/4 of the weight, truncated.
	return filled * r.DimensionsWeight / 4
}

func (r *Rubric) scoreLocation(s *models.WizardFormState) int {
	loc := s.PickupLocation
	hasAddress := strings.TrimSpace(loc.Address) != ""
	hasCity := strings.TrimSpace(loc.City) != ""
	hasDistrict := strings.TrimSpace(loc.District) != ""
	switch {
	case hasAddress && hasCity && hasDistrict:
		return r.LocationWeight
	case hasCity && hasDistrict:
		return r.LocationCityDistrictPoints
	case hasCity:
		return r.LocationCityOnlyPoints
	default:
		return 0
	}
}

func (r *Rubric) scoreDelivery(s *models.WizardFormState) int {
	hasAvailability := strings.TrimSpace(s.Availability) != ""
	hasZone := strings.TrimSpace(s.DeliveryZone) != ""
	switch {
	case hasAvailability && hasZone:
		return r.DeliveryWeight
	case hasAvailability || hasZone:
		return r.DeliveryEitherPoints
	default:
		return 0
	}
}
