package controller

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"consogab-me/models"
	"consogab-me/repository"
	"consogab-me/service"
)

// ProductController handles HTTP requests for products
type ProductController struct {
	repository repository.ProductRepositoryInterface
	auth       service.AuthProviderInterface
}

// NewProductController creates a new ProductController
func NewProductController(repo repository.ProductRepositoryInterface, auth service.AuthProviderInterface) *ProductController {
	return &ProductController{
		repository: repo,
		auth:       auth,
	}
}

// List handles GET /api/products
// Vendors see all their products; customers only the published ones.
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	user, ok := resolveUser(c.auth, w, r)
	if !ok {
		return
	}

	onlyPublished := !user.IsVendor()
	if r.URL.Query().Get("published") == "true" {
		onlyPublished = true
	}

	products, err := c.repository.ListByBusiness(r.Context(), user.BusinessID, onlyPublished)
	if err != nil {
		log.Printf("❌ Product.List: %v", err)
		writeError(w, http.StatusInternalServerError, "Impossible de charger les produits")
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	writeJSON(w, http.StatusOK, models.ProductListResponse{Products: products})
}

// Dispatch routes /api/products/{id} and its action sub-paths
func (c *ProductController) Dispatch(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/products/")

	if strings.HasSuffix(path, "/publish") {
		c.setPublished(w, r, strings.TrimSuffix(path, "/publish"), true)
		return
	}
	if strings.HasSuffix(path, "/unpublish") {
		c.setPublished(w, r, strings.TrimSuffix(path, "/unpublish"), false)
		return
	}

	switch r.Method {
	case http.MethodGet:
		c.get(w, r, path)
	case http.MethodDelete:
		c.delete(w, r, path)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	return id, err == nil && id > 0
}

func (c *ProductController) get(w http.ResponseWriter, r *http.Request, rawID string) {
	user, ok := resolveUser(c.auth, w, r)
	if !ok {
		return
	}
	id, ok := parseID(rawID)
	if !ok {
		writeError(w, http.StatusBadRequest, "Identifiant de produit invalide")
		return
	}

	product, err := c.repository.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Produit introuvable")
		return
	}
	// Customers cannot see drafts of other businesses.
	if !product.IsPublished && (!user.IsVendor() || product.BusinessID != user.BusinessID) {
		writeError(w, http.StatusNotFound, "Produit introuvable")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (c *ProductController) setPublished(w http.ResponseWriter, r *http.Request, rawID string, published bool) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	user, ok := requireVendor(c.auth, w, r)
	if !ok {
		return
	}
	id, ok := parseID(rawID)
	if !ok {
		writeError(w, http.StatusBadRequest, "Identifiant de produit invalide")
		return
	}

	if err := c.repository.SetPublished(r.Context(), id, user.BusinessID, published); err != nil {
		log.Printf("❌ Product.SetPublished: %v", err)
		writeError(w, http.StatusNotFound, "Produit introuvable")
		return
	}

	product, err := c.repository.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Impossible de recharger le produit")
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (c *ProductController) delete(w http.ResponseWriter, r *http.Request, rawID string) {
	user, ok := requireVendor(c.auth, w, r)
	if !ok {
		return
	}
	id, ok := parseID(rawID)
	if !ok {
		writeError(w, http.StatusBadRequest, "Identifiant de produit invalide")
		return
	}

	if err := c.repository.Delete(r.Context(), id, user.BusinessID); err != nil {
		log.Printf("❌ Product.Delete: %v", err)
		writeError(w, http.StatusNotFound, "Produit introuvable")
		return
	}

	log.Printf("🗑️  Product.Delete: product %d removed (business=%d)", id, user.BusinessID)
	w.WriteHeader(http.StatusNoContent)
}
