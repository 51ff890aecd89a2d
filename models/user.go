package models

// User roles
const (
	RoleVendor   = "vendor"
	RoleCustomer = "customer"
)

// UserContext identifies the caller of a request. It is resolved by the auth
// provider and passed into controllers; wizard logic never reads it globally.
type UserContext struct {
	UserID     string `json:"userId"`
	BusinessID int64  `json:"businessId"`
	Role       string `json:"role"`
}

// IsVendor reports whether the caller acts as a business owner
func (u *UserContext) IsVendor() bool {
	return u != nil && u.Role == RoleVendor
}
