package controller

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"consogab-me/models"
	"consogab-me/repository"
	"consogab-me/service"
)

// maxUploadMemory bounds multipart parsing buffers
const maxUploadMemory = 32 << 20

// MediaController handles HTTP requests for the media library: direct uploads
// with per-batch progress and Google Drive folder imports.
type MediaController struct {
	storage       service.StorageServiceInterface
	tracker       *service.UploadTracker
	importService service.ImportServiceInterface
	mediaRepo     repository.MediaRepositoryInterface
	auth          service.AuthProviderInterface
}

// NewMediaController creates a new MediaController
func NewMediaController(
	storage service.StorageServiceInterface,
	tracker *service.UploadTracker,
	importService service.ImportServiceInterface,
	mediaRepo repository.MediaRepositoryInterface,
	auth service.AuthProviderInterface,
) *MediaController {
	return &MediaController{
		storage:       storage,
		tracker:       tracker,
		importService: importService,
		mediaRepo:     mediaRepo,
		auth:          auth,
	}
}

// Upload handles POST /api/media/upload (multipart form, field "files").
// Files are processed sequentially in the order selected; each gets its own
// progress entry. One failed file does not abort the rest of the batch.
func (c *MediaController) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	user, ok := requireVendor(c.auth, w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, "Formulaire multipart invalide")
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		writeError(w, http.StatusBadRequest, "Aucun fichier reçu")
		return
	}

	cfg := models.UploadConfig{
		Bucket: r.FormValue("bucket"),
		Folder: r.FormValue("folder"),
	}
	if cfg.Folder == "" {
		cfg.Folder = fmt.Sprintf("business_%d", user.BusinessID)
	}
	if raw := r.FormValue("maxSize"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			cfg.MaxSize = parsed
		}
	}
	if raw := r.FormValue("exactWidth"); raw != "" {
		cfg.ExactWidth, _ = strconv.Atoi(raw)
	}
	if raw := r.FormValue("exactHeight"); raw != "" {
		cfg.ExactHeight, _ = strconv.Atoi(raw)
	}

	names := make([]string, len(files))
	for i, fh := range files {
		names[i] = fh.Filename
	}
	batchID := c.tracker.NewBatch(names)

	log.Printf("📥 Media.Upload: batch %s with %d files (business=%d)", batchID, len(files), user.BusinessID)

	for i, fh := range files {
		c.tracker.StartEntry(batchID, i)

		file, err := fh.Open()
		if err != nil {
			log.Printf("❌ Media.Upload: failed to open %s: %v", fh.Filename, err)
			c.tracker.FailEntry(batchID, i, err)
			continue
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			log.Printf("❌ Media.Upload: failed to read %s: %v", fh.Filename, err)
			c.tracker.FailEntry(batchID, i, err)
			continue
		}

		result, err := c.storage.Upload(r.Context(), fh.Filename, data, cfg)
		if err != nil {
			log.Printf("❌ Media.Upload: failed to store %s: %v", fh.Filename, err)
			c.tracker.FailEntry(batchID, i, err)
			continue
		}

		asset := &models.MediaAsset{
			BusinessID: user.BusinessID,
			FileName:   fh.Filename,
			URL:        result.URL,
			Path:       result.Path,
			Status:     "uploaded",
		}
		if err := c.mediaRepo.Insert(r.Context(), asset); err != nil {
			log.Printf("❌ Media.Upload: failed to record %s: %v", fh.Filename, err)
			c.tracker.FailEntry(batchID, i, err)
			continue
		}

		c.tracker.FinishEntry(batchID, i, result)
	}

	c.tracker.CompleteBatch(batchID)

	snapshot, _ := c.tracker.Snapshot(batchID)
	writeJSON(w, http.StatusOK, snapshot)
}

// Progress handles GET /api/media/upload/{batchID}
func (c *MediaController) Progress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if _, ok := requireVendor(c.auth, w, r); !ok {
		return
	}

	batchID := strings.TrimPrefix(r.URL.Path, "/api/media/upload/")
	snapshot, ok := c.tracker.Snapshot(batchID)
	if !ok {
		writeError(w, http.StatusNotFound, "Lot de téléversement introuvable")
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

// Library handles GET /api/media
func (c *MediaController) Library(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	user, ok := requireVendor(c.auth, w, r)
	if !ok {
		return
	}

	assets, err := c.mediaRepo.ListByBusiness(r.Context(), user.BusinessID)
	if err != nil {
		log.Printf("❌ Media.Library: %v", err)
		writeError(w, http.StatusInternalServerError, "Impossible de charger la médiathèque")
		return
	}
	if assets == nil {
		assets = []models.MediaAsset{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"assets": assets})
}

// Dispatch routes /api/media/{id}/image
func (c *MediaController) Dispatch(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/media/")
	if strings.HasSuffix(path, "/image") {
		c.optimizedImage(w, r, strings.TrimSuffix(path, "/image"))
		return
	}
	writeError(w, http.StatusNotFound, "Not found")
}

// optimizedImage handles GET /api/media/{id}/image?size=thumb|medium
// Serves a resized JPEG rendition, cached on disk after the first request.
func (c *MediaController) optimizedImage(w http.ResponseWriter, r *http.Request, rawID string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	user, ok := resolveUser(c.auth, w, r)
	if !ok {
		return
	}
	id, ok := parseID(rawID)
	if !ok {
		writeError(w, http.StatusBadRequest, "Identifiant de média invalide")
		return
	}

	asset, err := c.mediaRepo.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Média introuvable")
		return
	}
	if asset.BusinessID != user.BusinessID {
		writeError(w, http.StatusNotFound, "Média introuvable")
		return
	}

	size := r.URL.Query().Get("size")
	if size == "" {
		size = "medium"
	}

	cachePath := service.GetCachePath(asset.ID, size)
	if service.CacheExists(cachePath) {
		data, err := service.ReadFromCache(cachePath)
		if err == nil {
			w.Header().Set("Content-Type", "image/jpeg")
			w.WriteHeader(http.StatusOK)
			w.Write(data)
			return
		}
		log.Printf("⚠️  Media.OptimizedImage: cache read failed for asset %d: %v", asset.ID, err)
	}

	original, err := os.ReadFile(filepath.Join(c.storage.Root(), asset.Path))
	if err != nil {
		log.Printf("❌ Media.OptimizedImage: failed to read asset %d: %v", asset.ID, err)
		writeError(w, http.StatusNotFound, "Fichier du média introuvable")
		return
	}

	optimized, err := service.OptimizeImage(original, size)
	if err != nil {
		log.Printf("❌ Media.OptimizedImage: optimization failed for asset %d: %v", asset.ID, err)
		writeError(w, http.StatusInternalServerError, "Échec de l'optimisation de l'image")
		return
	}

	if err := service.SaveToCache(cachePath, optimized); err != nil {
		log.Printf("⚠️  Media.OptimizedImage: cache write failed for asset %d: %v", asset.ID, err)
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.WriteHeader(http.StatusOK)
	w.Write(optimized)
}

// Import handles POST /admin/media/import?folderId=...
func (c *MediaController) Import(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	user, ok := requireVendor(c.auth, w, r)
	if !ok {
		return
	}
	if c.importService == nil {
		writeError(w, http.StatusServiceUnavailable, "L'import Google Drive n'est pas configuré")
		return
	}

	folderID := strings.TrimSpace(r.URL.Query().Get("folderId"))
	if folderID == "" {
		writeError(w, http.StatusBadRequest, "Le paramètre folderId est requis")
		return
	}

	stats, err := c.importService.ImportFolder(r.Context(), user.BusinessID, folderID)
	if err != nil {
		log.Printf("❌ Media.Import: %v", err)
		writeError(w, http.StatusBadGateway, "L'import depuis Google Drive a échoué")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
