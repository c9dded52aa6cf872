package sitecontent

import (
	"errors"
	"fmt"
)

// Error types
var (
	// ErrPageNotFound indicates no page matched the requested slug
	ErrPageNotFound = errors.New("page not found")

	// ErrEntryNotFound indicates a queried entry was not found
	ErrEntryNotFound = errors.New("entry not found")

	// ErrUpstream indicates the CMS request itself failed (network, auth,
	// rate limit). Never retried by this layer.
	ErrUpstream = errors.New("upstream request failed")

	// ErrRichTextRender indicates a rich-text document could not be
	// converted; the normalizer degrades the field to an empty string.
	ErrRichTextRender = errors.New("rich text render failed")
)

// EntryError represents an error related to a single entry operation
type EntryError struct {
	EntryID string
	Op      string
	Err     error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry operation %s failed for entry %s: %v", e.Op, e.EntryID, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// QueryError represents an error related to a CMS listing query
type QueryError struct {
	ContentType string
	Op          string
	Err         error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query operation %s failed for content type %q: %v", e.Op, e.ContentType, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
