package app

import (
	"fmt"
	"log"
	"os"

	"consogab-me/app/controller"
	"consogab-me/app/router"
	"consogab-me/db"
	"consogab-me/repository"
	"consogab-me/service"
	"consogab-me/wizard"
)

// Initialize initializes the application
func Initialize() error {
	// Initialize database connection
	if err := db.InitDB(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Load the scoring rubric (falls back to the built-in one when no config file exists)
	rubric, err := wizard.LoadRubric(os.Getenv("RUBRIC_CONFIG"))
	if err != nil {
		return fmt.Errorf("failed to load scoring rubric: %w", err)
	}
	manager := wizard.NewManager(rubric, wizard.DefaultSessionTTL)

	// Initialize storage
	storageRoot := os.Getenv("STORAGE_ROOT")
	if storageRoot == "" {
		storageRoot = "storage"
	}
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	storageService, err := service.NewStorageService(storageRoot, baseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	if err := service.EnsureCacheDir(); err != nil {
		return err
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository()
	catalogRepo := repository.NewCatalogRepository()
	orderRepo := repository.NewOrderRepository()
	mediaRepo := repository.NewMediaRepository()

	// Drive import is optional: only wired when credentials are configured
	var importService service.ImportServiceInterface
	if credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credentialsPath != "" {
		driveService, err := service.NewDriveService(credentialsPath)
		if err != nil {
			return err
		}
		importService = service.NewImportService(driveService, mediaRepo, storageService)
	} else {
		log.Printf("⏭️ GOOGLE_APPLICATION_CREDENTIALS not set, Drive import disabled")
	}

	exportService := service.NewExportService(catalogRepo, baseURL)
	uploadTracker := service.NewUploadTracker()
	auth := service.NewHeaderAuthProvider()

	// Create controllers
	controllers := &router.Controllers{
		Wizard:  controller.NewWizardController(manager, productRepo, catalogRepo, auth),
		Product: controller.NewProductController(productRepo, auth),
		Catalog: controller.NewCatalogController(catalogRepo, exportService, auth),
		Order:   controller.NewOrderController(orderRepo, auth),
		Media:   controller.NewMediaController(storageService, uploadTracker, importService, mediaRepo, auth),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers, storageService.Root())

	return nil
}
