package controller

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"consogab-me/models"
	"consogab-me/repository"
	"consogab-me/service"
	"consogab-me/wizard"
)

// WizardController handles HTTP requests for wizard sessions: the guided
// product and catalog creation flows with completeness scoring.
type WizardController struct {
	manager     *wizard.Manager
	productRepo repository.ProductRepositoryInterface
	catalogRepo repository.CatalogRepositoryInterface
	auth        service.AuthProviderInterface
}

// NewWizardController creates a new WizardController
func NewWizardController(
	manager *wizard.Manager,
	productRepo repository.ProductRepositoryInterface,
	catalogRepo repository.CatalogRepositoryInterface,
	auth service.AuthProviderInterface,
) *WizardController {
	return &WizardController{
		manager:     manager,
		productRepo: productRepo,
		catalogRepo: catalogRepo,
		auth:        auth,
	}
}

// Start handles POST /api/wizard/sessions
// Creates a wizard session, empty or pre-filled from an existing product
func (c *WizardController) Start(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	user, ok := requireVendor(c.auth, w, r)
	if !ok {
		return
	}

	var req models.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}

	if req.Flow != models.FlowProduct && req.Flow != models.FlowCatalog {
		writeError(w, http.StatusBadRequest, "Le type d'assistant doit être 'product' ou 'catalog'")
		return
	}

	var prefill *models.WizardFormState
	if req.ProductID > 0 {
		product, err := c.productRepo.GetByID(r.Context(), req.ProductID)
		if err != nil {
			log.Printf("❌ Wizard.Start: failed to load product %d: %v", req.ProductID, err)
			writeError(w, http.StatusNotFound, "Produit introuvable")
			return
		}
		if product.BusinessID != user.BusinessID {
			writeError(w, http.StatusForbidden, "Ce produit appartient à une autre entreprise")
			return
		}
		state := wizard.StateFromProduct(product)
		prefill = &state
	}

	session := c.manager.Start(req.Flow, user.BusinessID, prefill)
	session.CatalogID = req.CatalogID
	session.ProductID = req.ProductID

	log.Printf("✅ Wizard.Start: session %s created (flow=%s, business=%d)", session.ID, req.Flow, user.BusinessID)
	writeJSON(w, http.StatusCreated, session.Snapshot())
}

// Dispatch routes /api/wizard/sessions/{id} and its action sub-paths
func (c *WizardController) Dispatch(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/wizard/sessions/")

	if strings.HasSuffix(path, "/next") {
		c.next(w, r, strings.TrimSuffix(path, "/next"))
		return
	}
	if strings.HasSuffix(path, "/previous") {
		c.previous(w, r, strings.TrimSuffix(path, "/previous"))
		return
	}
	if strings.HasSuffix(path, "/publish") {
		c.publish(w, r, strings.TrimSuffix(path, "/publish"))
		return
	}

	switch r.Method {
	case http.MethodGet:
		c.get(w, r, path)
	case http.MethodPatch:
		c.update(w, r, path)
	case http.MethodDelete:
		c.cancel(w, r, path)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// session fetches a session and checks ownership
func (c *WizardController) session(w http.ResponseWriter, r *http.Request, id string) (*wizard.Session, bool) {
	user, ok := requireVendor(c.auth, w, r)
	if !ok {
		return nil, false
	}
	session, ok := c.manager.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Session introuvable ou expirée")
		return nil, false
	}
	if session.BusinessID != user.BusinessID {
		writeError(w, http.StatusForbidden, "Cette session appartient à une autre entreprise")
		return nil, false
	}
	return session, true
}

func (c *WizardController) get(w http.ResponseWriter, r *http.Request, id string) {
	session, ok := c.session(w, r, id)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, session.Snapshot())
}

// update applies a partial form update and returns the refreshed snapshot.
// The quality score is recomputed on every mutation.
func (c *WizardController) update(w http.ResponseWriter, r *http.Request, id string) {
	session, ok := c.session(w, r, id)
	if !ok {
		return
	}

	var patch models.WizardFormPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "Corps de requête invalide")
		return
	}

	session.Apply(patch)
	writeJSON(w, http.StatusOK, session.Snapshot())
}

func (c *WizardController) cancel(w http.ResponseWriter, r *http.Request, id string) {
	if _, ok := c.session(w, r, id); !ok {
		return
	}
	c.manager.Delete(id)
	log.Printf("🗑️  Wizard.Cancel: session %s dropped", id)
	w.WriteHeader(http.StatusNoContent)
}

func (c *WizardController) next(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	session, ok := c.session(w, r, id)
	if !ok {
		return
	}

	if errs := session.Next(); len(errs) > 0 {
		writeErrors(w, http.StatusUnprocessableEntity, "Étape incomplète", errs)
		return
	}
	writeJSON(w, http.StatusOK, session.Snapshot())
}

func (c *WizardController) previous(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	session, ok := c.session(w, r, id)
	if !ok {
		return
	}
	session.Previous()
	writeJSON(w, http.StatusOK, session.Snapshot())
}

// publish handles the explicit confirm action at the end of a flow. On
// persistence failure the session is kept so the user can retry without
// re-entering anything.
func (c *WizardController) publish(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	session, ok := c.session(w, r, id)
	if !ok {
		return
	}

	if errs := session.PublishGate(); len(errs) > 0 {
		writeErrors(w, http.StatusUnprocessableEntity, "Publication impossible", errs)
		return
	}

	form := session.Form()

	if session.Flow == models.FlowCatalog {
		payload, err := wizard.ToCatalogPayload(&form, session.BusinessID)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		catalog, err := c.catalogRepo.Create(r.Context(), payload)
		if err != nil {
			log.Printf("❌ Wizard.Publish: catalog creation failed: %v", err)
			writeError(w, http.StatusBadGateway, "L'enregistrement a échoué, veuillez réessayer")
			return
		}
		c.manager.Delete(id)
		writeJSON(w, http.StatusCreated, models.PublishResponse{CatalogID: catalog.ID})
		return
	}

	payload, err := wizard.ToProductPayload(&form, c.manager.Rubric(), session.BusinessID, session.CatalogID)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	product, err := c.productRepo.Create(r.Context(), payload)
	if err != nil {
		log.Printf("❌ Wizard.Publish: product creation failed: %v", err)
		writeError(w, http.StatusBadGateway, "L'enregistrement a échoué, veuillez réessayer")
		return
	}

	c.manager.Delete(id)
	log.Printf("✅ Wizard.Publish: session %s published product %d (score=%d)", id, product.ID, payload.QualityScore)
	writeJSON(w, http.StatusCreated, models.PublishResponse{ProductID: product.ID, Score: payload.QualityScore})
}
