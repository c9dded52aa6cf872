package sitecontent

import (
	"context"
	"fmt"
	"log/slog"
)

// Include depths mirroring the source content model: pages expand their
// whole section/item graph, site chrome and products only a few levels.
const (
	chromeLinkDepth  = 3
	productLinkDepth = 3
	defaultPageSize  = 10
)

// service implements the Service interface
type service struct {
	client       EntryClient
	normalizer   *Normalizer
	includeDepth int
	logger       *slog.Logger
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithEntryClient sets the CMS boundary client for the service
func WithEntryClient(client EntryClient) Option {
	return func(s *service) {
		s.client = client
	}
}

// WithNormalizer sets the entry normalizer for the service
func WithNormalizer(n *Normalizer) Option {
	return func(s *service) {
		s.normalizer = n
	}
}

// WithIncludeDepth sets the link-expansion depth used for page queries
func WithIncludeDepth(depth int) Option {
	return func(s *service) {
		s.includeDepth = depth
	}
}

// WithLogger sets the logger for the service
func WithLogger(logger *slog.Logger) Option {
	return func(s *service) {
		s.logger = logger
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{
		includeDepth: DefaultLinkDepth,
		logger:       slog.Default(),
	}

	for _, option := range options {
		option(s)
	}

	if s.client == nil {
		return nil, fmt.Errorf("entry client is required")
	}
	if s.normalizer == nil {
		s.normalizer = NewNormalizer(
			WithLinkDepth(s.includeDepth),
			WithNormalizerLogger(s.logger),
		)
	}

	return s, nil
}

// Page operations

func (s *service) GetPageBySlug(ctx context.Context, slug string) (*ProcessedPage, error) {
	result, err := s.client.GetEntries(ctx, EntryQuery{
		ContentType: TypePage,
		FieldEquals: map[string]string{"slug": slug},
		Include:     s.includeDepth,
		Limit:       1,
	})
	if err != nil {
		s.logger.Error("failed to fetch page", "slug", slug, "error", err)
		return nil, &QueryError{ContentType: TypePage, Op: "get_page", Err: err}
	}
	if len(result.Items) == 0 {
		s.logger.Warn("no page found", "slug", slug)
		return nil, nil
	}
	return s.normalizer.ProcessPage(result.Items[0]), nil
}

func (s *service) GetHomepage(ctx context.Context) (*ProcessedPage, error) {
	return s.GetPageBySlug(ctx, "/")
}

func (s *service) GetAllPages(ctx context.Context) ([]*ProcessedPage, error) {
	result, err := s.client.GetEntries(ctx, EntryQuery{
		ContentType: TypePage,
		Include:     s.includeDepth,
	})
	if err != nil {
		s.logger.Error("failed to fetch pages", "error", err)
		return nil, &QueryError{ContentType: TypePage, Op: "list_pages", Err: err}
	}

	pages := make([]*ProcessedPage, len(result.Items))
	for i, entry := range result.Items {
		pages[i] = s.normalizer.ProcessPage(entry)
	}
	return pages, nil
}

func (s *service) GetAllPageSlugs(ctx context.Context) ([]string, error) {
	result, err := s.client.GetEntries(ctx, EntryQuery{
		ContentType: TypePage,
		Select:      []string{"fields.slug"},
	})
	if err != nil {
		s.logger.Error("failed to fetch page slugs", "error", err)
		return nil, &QueryError{ContentType: TypePage, Op: "list_slugs", Err: err}
	}

	slugs := make([]string, 0, len(result.Items))
	for _, entry := range result.Items {
		if slug := s.normalizer.fieldString(entry, "slug"); slug != "" {
			slugs = append(slugs, slug)
		}
	}
	return slugs, nil
}

func (s *service) PageExists(ctx context.Context, slug string) (bool, error) {
	result, err := s.client.GetEntries(ctx, EntryQuery{
		ContentType: TypePage,
		FieldEquals: map[string]string{"slug": slug},
		Select:      []string{"fields.slug"},
		Limit:       1,
	})
	if err != nil {
		s.logger.Error("failed to check page existence", "slug", slug, "error", err)
		return false, &QueryError{ContentType: TypePage, Op: "page_exists", Err: err}
	}
	return result.Total > 0, nil
}

// Site chrome

func (s *service) GetNavigation(ctx context.Context) (*ProcessedNavigation, error) {
	entry, err := s.firstEntry(ctx, TypeNavigation, chromeLinkDepth)
	if err != nil || entry == nil {
		return nil, err
	}
	return s.normalizer.ProcessNavigation(entry), nil
}

func (s *service) GetFooter(ctx context.Context) (*ProcessedFooter, error) {
	entry, err := s.firstEntry(ctx, TypeFooter, chromeLinkDepth)
	if err != nil || entry == nil {
		return nil, err
	}
	return s.normalizer.ProcessFooter(entry), nil
}

// firstEntry fetches the single expected entry of a site-wide content type.
func (s *service) firstEntry(ctx context.Context, contentType string, include int) (*Entry, error) {
	result, err := s.client.GetEntries(ctx, EntryQuery{
		ContentType: contentType,
		Include:     include,
		Limit:       1,
	})
	if err != nil {
		s.logger.Error("failed to fetch entry", "content_type", contentType, "error", err)
		return nil, &QueryError{ContentType: contentType, Op: "get_first", Err: err}
	}
	if len(result.Items) == 0 {
		s.logger.Warn("no entry found", "content_type", contentType)
		return nil, nil
	}
	return result.Items[0], nil
}

// Product operations

func (s *service) GetAllProducts(ctx context.Context) ([]ProcessedComponent, error) {
	result, err := s.client.GetEntries(ctx, EntryQuery{
		ContentType: TypeProduct,
		Include:     productLinkDepth,
	})
	if err != nil {
		s.logger.Error("failed to fetch products", "error", err)
		return nil, &QueryError{ContentType: TypeProduct, Op: "list_products", Err: err}
	}

	products := make([]ProcessedComponent, len(result.Items))
	for i, entry := range result.Items {
		products[i] = s.normalizer.DispatchItem(entry)
	}
	return products, nil
}

func (s *service) GetProductBySlug(ctx context.Context, slug string) (*ProcessedComponent, error) {
	result, err := s.client.GetEntries(ctx, EntryQuery{
		ContentType: TypeProduct,
		FieldEquals: map[string]string{"slug": slug},
		Include:     productLinkDepth,
		Limit:       1,
	})
	if err != nil {
		s.logger.Error("failed to fetch product", "slug", slug, "error", err)
		return nil, &QueryError{ContentType: TypeProduct, Op: "get_product", Err: err}
	}
	if len(result.Items) == 0 {
		return nil, nil
	}
	product := s.normalizer.DispatchItem(result.Items[0])
	return &product, nil
}

// Generic entry listing

func (s *service) GetEntries(ctx context.Context, q EntryQuery) (*EntryPage, error) {
	if q.ContentType == "" {
		return nil, &QueryError{Op: "list_entries", Err: fmt.Errorf("content type is required")}
	}
	if q.Limit <= 0 {
		q.Limit = defaultPageSize
	}
	if q.Order == "" {
		q.Order = "-sys.createdAt"
	}

	result, err := s.client.GetEntries(ctx, q)
	if err != nil {
		s.logger.Error("failed to list entries", "content_type", q.ContentType, "error", err)
		return nil, &QueryError{ContentType: q.ContentType, Op: "list_entries", Err: err}
	}

	items := make([]ProcessedEntry, len(result.Items))
	for i, entry := range result.Items {
		items[i] = s.normalizer.Normalize(entry)
	}
	return &EntryPage{
		Items:   items,
		Total:   result.Total,
		Skip:    q.Skip,
		Limit:   q.Limit,
		HasMore: q.Skip+q.Limit < result.Total,
	}, nil
}
