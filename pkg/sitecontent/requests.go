package sitecontent

// Request/Response DTOs

// EntryQuery describes one CMS listing request.
type EntryQuery struct {
	ContentType string
	// FieldEquals adds field-equality filters, e.g. {"slug": "/products/ede"}.
	FieldEquals map[string]string
	// Include is the link-expansion depth forwarded to the CMS.
	Include int
	Limit   int
	Skip    int
	// Order is the sort key; a "-" prefix sorts descending.
	Order string
	// Select restricts the returned fields, e.g. ["fields.slug"].
	Select []string
}

// EntryResult is the raw response from the CMS boundary: matched entries
// with links already materialized up to the include depth, plus the total
// match count before pagination.
type EntryResult struct {
	Items []*Entry
	Total int
}
