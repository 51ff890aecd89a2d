package models

// Catalog represents a product catalog in the database
type Catalog struct {
	ID          int64      `json:"id"`
	BusinessID  int64      `json:"businessId"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	Keywords    []string   `json:"keywords,omitempty"`
	CoverURL    string     `json:"coverUrl,omitempty"`
	Images      []ImageRef `json:"images,omitempty"`
	IsPublic    bool       `json:"isPublic"`
	CreatedAt   string     `json:"createdAt"`
}

// CatalogCreateRequest is the persistence payload assembled by the wizard's
// submission adapter for the catalog flow
type CatalogCreateRequest struct {
	BusinessID  int64      `json:"businessId"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Keywords    []string   `json:"keywords"`
	Images      []ImageRef `json:"images"`
	IsPublic    bool       `json:"isPublic"`
}

// CatalogListResponse represents the response for listing catalogs
type CatalogListResponse struct {
	Catalogs []Catalog `json:"catalogs"`
}

// CatalogExportItem is a single product cell on an exported catalog page
type CatalogExportItem struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	PriceLabel  string `json:"priceLabel"` // formatted, e.g. "12 500 FCFA"
	ColorName   string `json:"colorName"`
	Condition   string `json:"condition"`
	ImageURL    string `json:"imageUrl"`
	ImageBase64 string `json:"imageBase64"` // for PDF/PNG capture
}

// CatalogExportData is the data passed to the catalog export template
type CatalogExportData struct {
	Catalog *Catalog
	Pages   [][]CatalogExportItem
}
