// Package api exposes the site-content read path and the form submission
// endpoint over HTTP using chi.
package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/ybordev/site-content/pkg/sitecontent"
)

// EntriesResponse is the response body for a paginated entry listing.
type EntriesResponse struct {
	Items   []sitecontent.ProcessedEntry `json:"items"`
	Total   int                          `json:"total"`
	Skip    int                          `json:"skip"`
	Limit   int                          `json:"limit"`
	HasMore bool                         `json:"hasMore"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ContentHandler handles HTTP requests for processed site content.
type ContentHandler struct {
	service sitecontent.Service
}

// NewContentHandler creates a new content handler.
func NewContentHandler(service sitecontent.Service) *ContentHandler {
	return &ContentHandler{service: service}
}

// Routes returns the routes for content.
func (h *ContentHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/pages", h.GetPage)
	r.Get("/pages/*", h.GetPageByPath)
	r.Get("/navigation", h.GetNavigation)
	r.Get("/footer", h.GetFooter)
	r.Get("/products", h.ListProducts)
	r.Get("/products/{slug}", h.GetProduct)
	r.Get("/entries", h.ListEntries)

	return r
}

// GetPage returns the processed page for the given slug; without a slug it
// returns the homepage.
func (h *ContentHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")
	if slug == "" {
		slug = "/"
	}
	h.renderPage(w, r, slug)
}

// GetPageByPath is the path-style variant: the remainder of the URL after
// /pages is the slug, so nested slugs keep their slashes.
func (h *ContentHandler) GetPageByPath(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "/"+chi.URLParam(r, "*"))
}

func (h *ContentHandler) renderPage(w http.ResponseWriter, r *http.Request, slug string) {
	page, err := h.service.GetPageBySlug(r.Context(), slug)
	if err != nil {
		slog.Error("Failed to load page", "slug", slug, "error", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	if page == nil {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, ErrorResponse{Error: "page not found"})
		return
	}

	render.JSON(w, r, page)
}

// GetNavigation returns the site navigation.
func (h *ContentHandler) GetNavigation(w http.ResponseWriter, r *http.Request) {
	nav, err := h.service.GetNavigation(r.Context())
	if err != nil {
		slog.Error("Failed to load navigation", "error", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	if nav == nil {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, ErrorResponse{Error: "navigation not found"})
		return
	}

	render.JSON(w, r, nav)
}

// GetFooter returns the site footer.
func (h *ContentHandler) GetFooter(w http.ResponseWriter, r *http.Request) {
	footer, err := h.service.GetFooter(r.Context())
	if err != nil {
		slog.Error("Failed to load footer", "error", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	if footer == nil {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, ErrorResponse{Error: "footer not found"})
		return
	}

	render.JSON(w, r, footer)
}

// ListProducts returns every product in upstream order.
func (h *ContentHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetAllProducts(r.Context())
	if err != nil {
		slog.Error("Failed to load products", "error", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	if products == nil {
		products = []sitecontent.ProcessedComponent{}
	}

	render.JSON(w, r, products)
}

// GetProduct returns one product by slug.
func (h *ContentHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	product, err := h.service.GetProductBySlug(r.Context(), slug)
	if err != nil {
		slog.Error("Failed to load product", "slug", slug, "error", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	if product == nil {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, ErrorResponse{Error: "product not found"})
		return
	}

	render.JSON(w, r, product)
}

// ListEntries returns a paginated, normalized entry listing.
// Query parameters: contentType (required), limit, skip, order.
func (h *ContentHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	contentType := r.URL.Query().Get("contentType")
	if contentType == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "contentType is required"})
		return
	}

	q := sitecontent.EntryQuery{
		ContentType: contentType,
		Limit:       queryInt(r, "limit"),
		Skip:        queryInt(r, "skip"),
		Order:       r.URL.Query().Get("order"),
	}

	page, err := h.service.GetEntries(r.Context(), q)
	if err != nil {
		slog.Error("Failed to list entries", "content_type", contentType, "error", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	render.JSON(w, r, EntriesResponse{
		Items:   page.Items,
		Total:   page.Total,
		Skip:    page.Skip,
		Limit:   page.Limit,
		HasMore: page.HasMore,
	})
}

func queryInt(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
