package controller

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"consogab-me/models"
	"consogab-me/repository"
	"consogab-me/service"
)

// OrderController handles HTTP requests for customer orders
type OrderController struct {
	repository repository.OrderRepositoryInterface
	auth       service.AuthProviderInterface
}

// NewOrderController creates a new OrderController
func NewOrderController(repo repository.OrderRepositoryInterface, auth service.AuthProviderInterface) *OrderController {
	return &OrderController{
		repository: repo,
		auth:       auth,
	}
}

// Collection handles POST and GET on /api/orders
func (c *OrderController) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		c.create(w, r)
	case http.MethodGet:
		c.list(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (c *OrderController) create(w http.ResponseWriter, r *http.Request) {
	user, ok := resolveUser(c.auth, w, r)
	if !ok {
		return
	}

	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		writeError(w, http.StatusBadRequest, "Le nom du client est requis")
		return
	}
	if len(req.Lines) == 0 {
		writeError(w, http.StatusBadRequest, "La commande doit contenir au moins un produit")
		return
	}

	order, err := c.repository.Create(r.Context(), user.BusinessID, &req)
	if err != nil {
		log.Printf("❌ Order.Create: %v", err)
		writeError(w, http.StatusUnprocessableEntity, "Impossible de créer la commande")
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

func (c *OrderController) list(w http.ResponseWriter, r *http.Request) {
	user, ok := requireVendor(c.auth, w, r)
	if !ok {
		return
	}

	status := strings.TrimSpace(r.URL.Query().Get("status"))
	orders, err := c.repository.ListByBusiness(r.Context(), user.BusinessID, status)
	if err != nil {
		log.Printf("❌ Order.List: %v", err)
		writeError(w, http.StatusInternalServerError, "Impossible de charger les commandes")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	writeJSON(w, http.StatusOK, models.OrderListResponse{Orders: orders})
}

// Dispatch routes /api/orders/{id} and its status transition sub-paths
func (c *OrderController) Dispatch(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/orders/")

	if strings.HasSuffix(path, "/confirm") {
		c.transition(w, r, strings.TrimSuffix(path, "/confirm"), c.repository.Confirm)
		return
	}
	if strings.HasSuffix(path, "/cancel") {
		c.transition(w, r, strings.TrimSuffix(path, "/cancel"), c.repository.Cancel)
		return
	}
	if strings.HasSuffix(path, "/deliver") {
		c.transition(w, r, strings.TrimSuffix(path, "/deliver"), c.repository.Deliver)
		return
	}

	if r.Method == http.MethodGet {
		c.get(w, r, path)
		return
	}
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

func (c *OrderController) get(w http.ResponseWriter, r *http.Request, rawID string) {
	user, ok := requireVendor(c.auth, w, r)
	if !ok {
		return
	}
	id, ok := parseID(rawID)
	if !ok {
		writeError(w, http.StatusBadRequest, "Identifiant de commande invalide")
		return
	}

	order, err := c.repository.GetByID(r.Context(), id, user.BusinessID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Commande introuvable")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (c *OrderController) transition(w http.ResponseWriter, r *http.Request, rawID string,
	apply func(ctx context.Context, id int64, businessID int64) (*models.Order, error),
) {
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
		writeError(w, http.StatusBadRequest, "Identifiant de commande invalide")
		return
	}

	order, err := apply(r.Context(), id, user.BusinessID)
	if err != nil {
		log.Printf("❌ Order.Transition: %v", err)
		if strings.Contains(err.Error(), "does not exist") {
			writeError(w, http.StatusNotFound, "Commande introuvable")
			return
		}
		writeError(w, http.StatusConflict, "Transition de statut impossible")
		return
	}

	writeJSON(w, http.StatusOK, order)
}
