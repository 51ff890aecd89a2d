package models

// Product represents a product in the database
type Product struct {
	ID              int64      `json:"id"`
	BusinessID      int64      `json:"businessId"`
	CatalogID       int64      `json:"catalogId,omitempty"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	Subcategory     string     `json:"subcategory,omitempty"`
	Condition       string     `json:"condition"`
	MainColor       string     `json:"mainColor"`
	SecondaryColors []string   `json:"secondaryColors,omitempty"`
	Brand           string     `json:"brand,omitempty"`
	Manufacturer    string     `json:"manufacturer,omitempty"`
	Tags            []string   `json:"tags,omitempty"`
	Price           int64      `json:"price"` // FCFA, taken from the first variant
	StockTotal      int        `json:"stockTotal"`
	StockReserved   int        `json:"stockReserved"`
	CoverURL        string     `json:"coverUrl,omitempty"`
	Images          []ImageRef `json:"images,omitempty"`
	Variants        []Variant  `json:"variants,omitempty"`
	QualityScore    int        `json:"qualityScore"`
	IsPublished     bool       `json:"isPublished"`
	Dimensions      Dimensions `json:"dimensions"`
	Availability    string     `json:"availability,omitempty"`
	DeliveryZone    string     `json:"deliveryZone,omitempty"`
	City            string     `json:"city,omitempty"`
	District        string     `json:"district,omitempty"`
	Address         string     `json:"address,omitempty"`
	CreatedAt       string     `json:"createdAt"`
}

// ProductCreateRequest is the persistence payload assembled by the wizard's
// submission adapter
type ProductCreateRequest struct {
	BusinessID      int64      `json:"businessId"`
	CatalogID       int64      `json:"catalogId,omitempty"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	Subcategory     string     `json:"subcategory"`
	Condition       string     `json:"condition"`
	MainColor       string     `json:"mainColor"`
	SecondaryColors []string   `json:"secondaryColors"`
	Brand           string     `json:"brand"`
	Manufacturer    string     `json:"manufacturer"`
	Tags            []string   `json:"tags"`
	Price           int64      `json:"price"`
	StockTotal      int        `json:"stockTotal"`
	Images          []ImageRef `json:"images"`
	Variants        []Variant  `json:"variants"`
	Dimensions      Dimensions `json:"dimensions"`
	Availability    string     `json:"availability"`
	DeliveryZone    string     `json:"deliveryZone"`
	City            string     `json:"city"`
	District        string     `json:"district"`
	Address         string     `json:"address"`
	QualityScore    int        `json:"qualityScore"`
	IsPublished     bool       `json:"isPublished"`
}

// ProductListResponse represents the response for listing products
type ProductListResponse struct {
	Products []Product `json:"products"`
}
