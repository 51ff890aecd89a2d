package service

import (
	"fmt"
	"net/http"
	"strconv"

	"consogab-me/models"
)

// AuthProviderInterface resolves the caller of a request. It is injected into
// controllers so wizard logic can be tested with a stub instead of reading
// ambient globals.
type AuthProviderInterface interface {
	CurrentUser(r *http.Request) (*models.UserContext, error)
}

// HeaderAuthProvider resolves identity from trusted gateway headers:
// X-User-ID, X-Business-ID and X-Role. Role defaults to customer.
type HeaderAuthProvider struct{}

// NewHeaderAuthProvider creates a HeaderAuthProvider
func NewHeaderAuthProvider() *HeaderAuthProvider {
	return &HeaderAuthProvider{}
}

// Ensure HeaderAuthProvider implements AuthProviderInterface
var _ AuthProviderInterface = (*HeaderAuthProvider)(nil)

// CurrentUser resolves the caller from request headers
func (p *HeaderAuthProvider) CurrentUser(r *http.Request) (*models.UserContext, error) {
	userID := r.Header.Get("X-User-ID")
	if userID == "" {
		return nil, fmt.Errorf("missing X-User-ID header")
	}

	businessID := int64(0)
	if raw := r.Header.Get("X-Business-ID"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid X-Business-ID header: %w", err)
		}
		businessID = parsed
	}

	role := r.Header.Get("X-Role")
	if role != models.RoleVendor {
		role = models.RoleCustomer
	}

	return &models.UserContext{
		UserID:     userID,
		BusinessID: businessID,
		Role:       role,
	}, nil
}
