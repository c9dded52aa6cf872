package sitecontent

import "context"

// Service defines the main interface for the site-content library: the
// read path from CMS query to render-ready objects.
//
// Missing content is not an error: lookups return a nil result (or false)
// and a nil error when nothing matches, and the caller decides fallback
// content. A non-nil error always means the upstream CMS call itself
// failed; it is never retried here.
type Service interface {
	// Page operations
	GetPageBySlug(ctx context.Context, slug string) (*ProcessedPage, error)
	GetHomepage(ctx context.Context) (*ProcessedPage, error)
	GetAllPages(ctx context.Context) ([]*ProcessedPage, error)
	GetAllPageSlugs(ctx context.Context) ([]string, error)
	PageExists(ctx context.Context, slug string) (bool, error)

	// Site chrome
	GetNavigation(ctx context.Context) (*ProcessedNavigation, error)
	GetFooter(ctx context.Context) (*ProcessedFooter, error)

	// Product operations
	GetAllProducts(ctx context.Context) ([]ProcessedComponent, error)
	GetProductBySlug(ctx context.Context, slug string) (*ProcessedComponent, error)

	// Generic entry listing with pagination
	GetEntries(ctx context.Context, q EntryQuery) (*EntryPage, error)
}
