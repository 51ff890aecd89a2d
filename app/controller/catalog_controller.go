package controller

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"consogab-me/models"
	"consogab-me/repository"
	"consogab-me/service"
)

// validExportFormats is the set of accepted export formats
var validExportFormats = map[string]bool{
	"html": true,
	"pdf":  true,
	"png":  true,
}

// CatalogController handles HTTP requests for catalogs, including the
// shareable HTML/PDF/PNG exports
type CatalogController struct {
	repository    repository.CatalogRepositoryInterface
	exportService *service.ExportService
	auth          service.AuthProviderInterface

	// Temporary storage for generated PNG pages, keyed by export session
	pngStorage      map[string]map[int][]byte
	pngStorageMutex sync.RWMutex
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(
	repo repository.CatalogRepositoryInterface,
	exportService *service.ExportService,
	auth service.AuthProviderInterface,
) *CatalogController {
	return &CatalogController{
		repository:    repo,
		exportService: exportService,
		auth:          auth,
		pngStorage:    make(map[string]map[int][]byte),
	}
}

// List handles GET /api/catalogs
func (c *CatalogController) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	user, ok := resolveUser(c.auth, w, r)
	if !ok {
		return
	}

	catalogs, err := c.repository.ListByBusiness(r.Context(), user.BusinessID, !user.IsVendor())
	if err != nil {
		log.Printf("❌ Catalog.List: %v", err)
		writeError(w, http.StatusInternalServerError, "Impossible de charger les catalogues")
		return
	}
	if catalogs == nil {
		catalogs = []models.Catalog{}
	}

	writeJSON(w, http.StatusOK, models.CatalogListResponse{Catalogs: catalogs})
}

// Dispatch routes /api/catalogs/{id} and its render/export sub-paths
func (c *CatalogController) Dispatch(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/catalogs/")

	if path == "png-page" {
		c.downloadPNGPage(w, r)
		return
	}
	if strings.HasSuffix(path, "/render") {
		c.render(w, r, strings.TrimSuffix(path, "/render"))
		return
	}
	if strings.HasSuffix(path, "/export") {
		c.export(w, r, strings.TrimSuffix(path, "/export"))
		return
	}

	if r.Method == http.MethodGet {
		c.get(w, r, path)
		return
	}
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

func (c *CatalogController) get(w http.ResponseWriter, r *http.Request, rawID string) {
	if _, ok := resolveUser(c.auth, w, r); !ok {
		return
	}
	id, ok := parseID(rawID)
	if !ok {
		writeError(w, http.StatusBadRequest, "Identifiant de catalogue invalide")
		return
	}

	catalog, err := c.repository.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Catalogue introuvable")
		return
	}
	writeJSON(w, http.StatusOK, catalog)
}

// render handles GET /api/catalogs/{id}/render
// Serves the export HTML; also the page headless Chrome captures from.
func (c *CatalogController) render(w http.ResponseWriter, r *http.Request, rawID string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	id, ok := parseID(rawID)
	if !ok {
		writeError(w, http.StatusBadRequest, "Identifiant de catalogue invalide")
		return
	}

	html, err := c.exportService.RenderCatalogHTML(r.Context(), id, true)
	if err != nil {
		log.Printf("❌ Catalog.Render: %v", err)
		writeError(w, http.StatusNotFound, "Impossible de générer l'aperçu du catalogue")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		log.Printf("❌ Catalog.Render: error writing response: %v", err)
	}
}

// export handles GET /api/catalogs/{id}/export?format=html|pdf|png
func (c *CatalogController) export(w http.ResponseWriter, r *http.Request, rawID string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if _, ok := requireVendor(c.auth, w, r); !ok {
		return
	}
	id, ok := parseID(rawID)
	if !ok {
		writeError(w, http.StatusBadRequest, "Identifiant de catalogue invalide")
		return
	}

	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if !validExportFormats[format] {
		writeError(w, http.StatusBadRequest, "Format invalide. Formats acceptés : html, pdf, png")
		return
	}

	switch format {
	case "html":
		html, err := c.exportService.RenderCatalogHTML(r.Context(), id, false)
		if err != nil {
			log.Printf("❌ Catalog.Export: %v", err)
			writeError(w, http.StatusInternalServerError, "Échec de la génération du catalogue")
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(html))

	case "pdf":
		pdfData, err := c.exportService.GeneratePDF(r.Context(), id)
		if err != nil {
			log.Printf("❌ Catalog.Export: PDF generation failed: %v", err)
			writeError(w, http.StatusInternalServerError, "Échec de la génération du PDF")
			return
		}
		filename := fmt.Sprintf("catalogue_%d.pdf", id)
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		w.Write(pdfData)

	case "png":
		pngs, err := c.exportService.GeneratePNG(r.Context(), id)
		if err != nil {
			log.Printf("❌ Catalog.Export: PNG generation failed: %v", err)
			writeError(w, http.StatusInternalServerError, "Échec de la génération des images")
			return
		}

		sessionID := fmt.Sprintf("%d_%d", id, time.Now().UnixNano())
		c.pngStorageMutex.Lock()
		c.pngStorage[sessionID] = pngs
		c.pngStorageMutex.Unlock()

		// Pages are only held for a short window.
		go func() {
			time.Sleep(10 * time.Minute)
			c.pngStorageMutex.Lock()
			delete(c.pngStorage, sessionID)
			c.pngStorageMutex.Unlock()
		}()

		type pageLink struct {
			Page     int    `json:"page"`
			URL      string `json:"url"`
			Filename string `json:"filename"`
		}
		var pages []pageLink
		for i := 1; i <= len(pngs); i++ {
			if _, exists := pngs[i]; !exists {
				continue
			}
			pages = append(pages, pageLink{
				Page:     i,
				URL:      fmt.Sprintf("/api/catalogs/png-page?session=%s&page=%d", sessionID, i),
				Filename: fmt.Sprintf("catalogue_%d_page_%d.png", id, i),
			})
		}
		writeJSON(w, http.StatusOK, map[string]any{"session": sessionID, "pages": pages})
	}
}

// downloadPNGPage handles GET /api/catalogs/png-page?session=...&page=N
func (c *CatalogController) downloadPNGPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	sessionID := r.URL.Query().Get("session")
	pageNum, err := strconv.Atoi(r.URL.Query().Get("page"))
	if sessionID == "" || err != nil || pageNum < 1 {
		writeError(w, http.StatusBadRequest, "Paramètres session et page requis")
		return
	}

	c.pngStorageMutex.RLock()
	pages, ok := c.pngStorage[sessionID]
	var data []byte
	if ok {
		data, ok = pages[pageNum]
	}
	c.pngStorageMutex.RUnlock()

	if !ok {
		writeError(w, http.StatusNotFound, "Page expirée ou introuvable")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("page_%d.png", pageNum)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
