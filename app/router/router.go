package router

import (
	"net/http"

	"consogab-me/app/controller"
)

type Controllers struct {
	Wizard  *controller.WizardController
	Product *controller.ProductController
	Catalog *controller.CatalogController
	Order   *controller.OrderController
	Media   *controller.MediaController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes registers all HTTP routes on the default mux.
// mediaRoot is the local directory served under /media/.
func SetupRoutes(controllers *Controllers, mediaRoot string) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Wizard sessions
	// Create session
	http.HandleFunc("/api/wizard/sessions", controllers.Wizard.Start)

	// Session by id - get, patch form, advance/previous step, publish, cancel
	http.HandleFunc("/api/wizard/sessions/", controllers.Wizard.Dispatch)

	// Products routes
	http.HandleFunc("/api/products", controllers.Product.List)

	// Product by id - handles get, publish/unpublish and delete
	http.HandleFunc("/api/products/", controllers.Product.Dispatch)

	// Catalogs routes
	http.HandleFunc("/api/catalogs", controllers.Catalog.List)

	// Catalog by id - handles get, render and export (html/pdf/png)
	http.HandleFunc("/api/catalogs/", controllers.Catalog.Dispatch)

	// Orders routes
	http.HandleFunc("/api/orders", controllers.Order.Collection)

	// Order by id - handles get and status transitions
	http.HandleFunc("/api/orders/", controllers.Order.Dispatch)

	// Media library
	http.HandleFunc("/api/media", controllers.Media.Library)

	// Optimized rendition of a library asset (the more specific upload
	// patterns below win over this one)
	http.HandleFunc("/api/media/", controllers.Media.Dispatch)

	// Batch upload (POST) and per-batch progress polling (GET /api/media/upload/{batchID})
	http.HandleFunc("/api/media/upload", controllers.Media.Upload)
	http.HandleFunc("/api/media/upload/", controllers.Media.Progress)

	// Import images from a Google Drive folder
	http.HandleFunc("/admin/media/import", controllers.Media.Import)

	// Serve uploaded files
	http.Handle("/media/", http.StripPrefix("/media/", http.FileServer(http.Dir(mediaRoot))))
}
