package models

// Order statuses
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order represents a customer order in the database
type Order struct {
	ID           int64       `json:"id"`
	BusinessID   int64       `json:"businessId"`
	CustomerName string      `json:"customerName"`
	Phone        string      `json:"phone,omitempty"`
	Status       string      `json:"status"`
	Total        int64       `json:"total"` // FCFA
	Notes        string      `json:"notes,omitempty"`
	Lines        []OrderLine `json:"lines,omitempty"`
	CreatedAt    string      `json:"createdAt"`
}

// OrderLine represents a single product line within an order
type OrderLine struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"productId"`
	Title     string `json:"title,omitempty"`
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
	LineTotal int64  `json:"lineTotal"`
}

// CreateOrderRequest represents the request body for creating an order
// Example: {"customerName": "Awa Ndong", "phone": "+241 06 12 34 56",
//           "lines": [{"productId": 12, "qty": 2}]}
type CreateOrderRequest struct {
	CustomerName string                   `json:"customerName"`
	Phone        string                   `json:"phone"`
	Notes        string                   `json:"notes,omitempty"`
	Lines        []CreateOrderLineRequest `json:"lines"`
}

// CreateOrderLineRequest is one requested line in a new order
type CreateOrderLineRequest struct {
	ProductID int64 `json:"productId"`
	Qty       int   `json:"qty"`
}

// OrderListResponse represents the response for listing orders
type OrderListResponse struct {
	Orders []Order `json:"orders"`
}
