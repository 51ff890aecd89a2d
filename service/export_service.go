package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"consogab-me/models"
	"consogab-me/repository"
)

const exportItemsPerPage = 9

// ExportService renders a catalog's published products as shareable HTML and
// captures PDF/PNG versions through headless Chrome pointed at the render
// endpoint.
type ExportService struct {
	catalogRepo repository.CatalogRepositoryInterface
	baseURL     string // base URL for the render endpoint, e.g. "http://localhost:8080"
}

// NewExportService creates a new ExportService
func NewExportService(catalogRepo repository.CatalogRepositoryInterface, baseURL string) *ExportService {
	return &ExportService{
		catalogRepo: catalogRepo,
		baseURL:     baseURL,
	}
}

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// fetchImageAsBase64 fetches an image and converts it to base64 so the capture
// does not depend on the browser resolving image URLs
func (s *ExportService) fetchImageAsBase64(imageURL string) (string, error) {
	fullURL := imageURL
	if len(imageURL) > 0 && imageURL[0] == '/' {
		fullURL = s.baseURL + imageURL
	}

	resp, err := http.Get(fullURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image endpoint returned status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read image data: %w", err)
	}

	return base64.StdEncoding.EncodeToString(imageData), nil
}

func (s *ExportService) convertItemsToBase64(items []models.CatalogExportItem) {
	for i := range items {
		if items[i].ImageURL == "" {
			continue
		}
		b64, err := s.fetchImageAsBase64(items[i].ImageURL)
		if err != nil {
			log.Printf("⚠️  ExportService: failed to fetch image for item %d: %v", items[i].ID, err)
			continue
		}
		items[i].ImageBase64 = b64
	}
}

// paginateItems splits items into pages of exportItemsPerPage items each
func paginateItems(items []models.CatalogExportItem) [][]models.CatalogExportItem {
	var pages [][]models.CatalogExportItem
	for i := 0; i < len(items); i += exportItemsPerPage {
		end := i + exportItemsPerPage
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, items[i:end])
	}
	return pages
}

// RenderCatalogHTML renders the export template for a catalog.
// useBase64 inlines product images, required for PDF/PNG capture.
func (s *ExportService) RenderCatalogHTML(ctx context.Context, catalogID int64, useBase64 bool) (string, error) {
	catalog, err := s.catalogRepo.GetByID(ctx, catalogID)
	if err != nil {
		return "", fmt.Errorf("failed to get catalog: %w", err)
	}

	items, err := s.catalogRepo.GetExportItems(ctx, catalogID)
	if err != nil {
		return "", fmt.Errorf("failed to get export items: %w", err)
	}
	if len(items) == 0 {
		return "", fmt.Errorf("catalog %d has no published products to export", catalogID)
	}

	if useBase64 {
		s.convertItemsToBase64(items)
	}

	templateData := models.CatalogExportData{
		Catalog: catalog,
		Pages:   paginateItems(items),
	}

	templatePath := filepath.Join("templates", "catalog.html")
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// newChromeContext builds a chromedp context against the detected browser
func newChromeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // required in containers
	)
	if chromePath := detectChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	cancel := func() {
		chromedpCancel()
		allocCancel()
	}
	return chromedpCtx, cancel
}

// waitForAssets waits for fonts and images to finish loading in the page
var waitForAssets = chromedp.Evaluate(`
	(function() {
		return Promise.all([
			document.fonts.ready,
			Promise.all(Array.from(document.querySelectorAll('img')).map(img => {
				return new Promise((resolve) => {
					if (img.complete && img.naturalWidth > 0 && img.naturalHeight > 0) {
						resolve();
						return;
					}
					const timeout = setTimeout(() => resolve(), 5000);
					img.onload = () => { clearTimeout(timeout); resolve(); };
					img.onerror = () => { clearTimeout(timeout); resolve(); };
				});
			}))
		]);
	})();
`, nil)

// GeneratePDF captures the render endpoint as an A4 PDF
func (s *ExportService) GeneratePDF(ctx context.Context, catalogID int64) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	chromedpCtx, chromeCancel := newChromeContext(ctx)
	defer chromeCancel()

	renderURL := fmt.Sprintf("%s/api/catalogs/%d/render", s.baseURL, catalogID)

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 5000), // 210mm at 96 DPI, tall enough for all pages
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(2*time.Second),
		waitForAssets,
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: page breaks come from the template's CSS.
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}

// GeneratePNG captures each export page as a PNG.
// Returns a map of 1-based page number to PNG data.
func (s *ExportService) GeneratePNG(ctx context.Context, catalogID int64) (map[int][]byte, error) {
	items, err := s.catalogRepo.GetExportItems(ctx, catalogID)
	if err != nil {
		return nil, fmt.Errorf("failed to get export items: %w", err)
	}
	expectedPages := (len(items) + exportItemsPerPage - 1) / exportItemsPerPage
	if expectedPages == 0 {
		return nil, fmt.Errorf("catalog %d has no published products to export", catalogID)
	}

	// Screenshotting is per page; give big catalogs a bigger budget.
	timeout := time.Duration(30+expectedPages*10) * time.Second
	if timeout > 3*time.Minute {
		timeout = 3 * time.Minute
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	chromedpCtx, chromeCancel := newChromeContext(ctx)
	defer chromeCancel()

	renderURL := fmt.Sprintf("%s/api/catalogs/%d/render", s.baseURL, catalogID)

	err = chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 1123),
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(2*time.Second),
		waitForAssets,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load render page: %w", err)
	}

	pngs := make(map[int][]byte, expectedPages)
	for pageNum := 1; pageNum <= expectedPages; pageNum++ {
		var buf []byte
		sel := fmt.Sprintf(`.page:nth-of-type(%d)`, pageNum)
		if err := chromedp.Run(chromedpCtx,
			chromedp.ScrollIntoView(sel, chromedp.ByQuery),
			chromedp.Screenshot(sel, &buf, chromedp.NodeVisible, chromedp.ByQuery),
		); err != nil {
			return nil, fmt.Errorf("failed to capture page %d: %w", pageNum, err)
		}
		pngs[pageNum] = buf
	}

	log.Printf("✓ GeneratePNG: captured %d pages for catalog %d", len(pngs), catalogID)
	return pngs, nil
}
