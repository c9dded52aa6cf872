package sitecontent

import "context"

// EntryClient is the CMS query boundary. Implementations resolve link
// wrappers in field values into *Entry / *Asset up to the query's include
// depth; references beyond that depth stay as Link markers.
type EntryClient interface {
	// GetEntries executes a listing query.
	GetEntries(ctx context.Context, q EntryQuery) (*EntryResult, error)

	// GetEntry fetches a single entry by ID with the given link depth.
	// Returns ErrEntryNotFound (possibly wrapped) when the ID is unknown.
	GetEntry(ctx context.Context, id string, include int) (*Entry, error)
}

// AssetURLBuilder builds a fully-qualified URL from a protocol-relative
// CMS asset URL.
type AssetURLBuilder interface {
	URL(raw string) string
}
