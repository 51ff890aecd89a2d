package models

// WizardFlow identifies which creation flow a wizard session drives
type WizardFlow string

const (
	FlowProduct WizardFlow = "product"
	FlowCatalog WizardFlow = "catalog"
)

// ImageRef references an uploaded image. Order is meaningful: index 0 in a
// WizardFormState.Images slice is the cover image.
type ImageRef struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Path string `json:"path"`
}

// Variant represents a sellable variation of a product (color + size + price).
// Partial variants are allowed while editing; submission requires colorCode,
// sizeCode and price to all be set.
type Variant struct {
	ColorCode string `json:"colorCode"`
	SizeCode  string `json:"sizeCode"`
	Price     int64  `json:"price"` // price in FCFA
	Stock     int    `json:"stock"`
	SKU       string `json:"sku"`
}

// Dimensions holds physical dimensions as free-form strings, all optional
type Dimensions struct {
	Length string `json:"length"`
	Width  string `json:"width"`
	Height string `json:"height"`
	Weight string `json:"weight"`
}

// PickupLocation is where the customer can collect the product
type PickupLocation struct {
	Address  string `json:"address"`
	City     string `json:"city"`
	District string `json:"district"`
}

// WizardFormState is the aggregate form record for one wizard session.
// It is mutated only through wizard.Apply; QualityScore is derived and is
// recomputed on every mutation, never set directly.
type WizardFormState struct {
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Category        string         `json:"category"`
	Subcategory     string         `json:"subcategory"`
	Condition       string         `json:"condition"`
	MainColor       string         `json:"mainColor"`
	Brand           string         `json:"brand"`
	Manufacturer    string         `json:"manufacturer"`
	SecondaryColors []string       `json:"secondaryColors"`
	Tags            []string       `json:"tags"`
	Images          []ImageRef     `json:"images"`
	Variants        []Variant      `json:"variants"`
	Dimensions      Dimensions     `json:"dimensions"`
	PickupLocation  PickupLocation `json:"pickupLocation"`
	Availability    string         `json:"availability"`
	DeliveryZone    string         `json:"deliveryZone"`
}

// WizardFormPatch is a partial update to a WizardFormState. Nil pointers mean
// "leave unchanged"; nested records carry their own patch type so setting one
// dimension never drops its siblings. List fields are replaced wholesale.
type WizardFormPatch struct {
	Title           *string              `json:"title,omitempty"`
	Description     *string              `json:"description,omitempty"`
	Category        *string              `json:"category,omitempty"`
	Subcategory     *string              `json:"subcategory,omitempty"`
	Condition       *string              `json:"condition,omitempty"`
	MainColor       *string              `json:"mainColor,omitempty"`
	Brand           *string              `json:"brand,omitempty"`
	Manufacturer    *string              `json:"manufacturer,omitempty"`
	SecondaryColors *[]string            `json:"secondaryColors,omitempty"`
	Tags            *[]string            `json:"tags,omitempty"`
	Images          *[]ImageRef          `json:"images,omitempty"`
	Variants        *[]Variant           `json:"variants,omitempty"`
	Dimensions      *DimensionsPatch     `json:"dimensions,omitempty"`
	PickupLocation  *PickupLocationPatch `json:"pickupLocation,omitempty"`
	Availability    *string              `json:"availability,omitempty"`
	DeliveryZone    *string              `json:"deliveryZone,omitempty"`
}

// DimensionsPatch is a partial update to Dimensions
type DimensionsPatch struct {
	Length *string `json:"length,omitempty"`
	Width  *string `json:"width,omitempty"`
	Height *string `json:"height,omitempty"`
	Weight *string `json:"weight,omitempty"`
}

// PickupLocationPatch is a partial update to PickupLocation
type PickupLocationPatch struct {
	Address  *string `json:"address,omitempty"`
	City     *string `json:"city,omitempty"`
	District *string `json:"district,omitempty"`
}

// StartSessionRequest represents the request body for creating a wizard session
// Example: {"flow": "product", "catalogId": 3}
type StartSessionRequest struct {
	Flow      WizardFlow `json:"flow"`
	CatalogID int64      `json:"catalogId,omitempty"`
	// ProductID pre-fills the form from an existing product (edit mode)
	ProductID int64 `json:"productId,omitempty"`
}

// SessionResponse represents the state of a wizard session as seen by clients
// Example response:
//
//	{
//	  "id": "1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed",
//	  "flow": "product",
//	  "step": 3,
//	  "totalSteps": 9,
//	  "qualityScore": 45,
//	  "canPublish": false,
//	  "deficiencies": ["Photos (3/5)", "Dimensions incomplètes"],
//	  "validationErrors": [],
//	  "form": { ... }
//	}
type SessionResponse struct {
	ID               string          `json:"id"`
	Flow             WizardFlow      `json:"flow"`
	Step             int             `json:"step"`
	TotalSteps       int             `json:"totalSteps"`
	QualityScore     int             `json:"qualityScore"`
	CanPublish       bool            `json:"canPublish"`
	Deficiencies     []string        `json:"deficiencies"`
	ValidationErrors []string        `json:"validationErrors"`
	Form             WizardFormState `json:"form"`
}

// PublishResponse represents the result of a confirm/publish action
type PublishResponse struct {
	ProductID int64 `json:"productId,omitempty"`
	CatalogID int64 `json:"catalogId,omitempty"`
	Score     int   `json:"score,omitempty"`
}
