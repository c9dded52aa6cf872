package sitecontent

import "time"

// Known content type discriminants (typed by convention as plain strings,
// since the set is defined by the CMS content model, not by this library).
const (
	TypePage        = "page"
	TypeSection     = "section"
	TypeComponent   = "component"
	TypeProduct     = "product"
	TypeTestimonial = "testimonial"
	TypeLink        = "link"
	TypeMenuItem    = "menuItem"
	TypeNavigation  = "navigation"
	TypeFooter      = "footer"
)

// TypeCard is the safe fallback discriminant emitted for section items whose
// content type has no registered processor.
const TypeCard = "card"

// Entry is a single CMS record. Fields holds raw values as decoded from the
// delivery API: scalars, locale maps (locale code -> value), resolved links
// (*Entry, *Asset), unresolved Link markers, rich-text documents, or arrays
// of any of those. ContentType determines which fields are semantically
// valid; ID is unique within a fetch session.
type Entry struct {
	ID          string         `json:"id"`
	ContentType string         `json:"contentType"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	Fields      map[string]any `json:"fields"`
}

// Asset is a CMS-managed binary resource descriptor. URL is
// protocol-relative as delivered by the CMS; it is immutable once fetched.
// Width and Height are only set for image assets.
type Asset struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	FileName    string `json:"fileName,omitempty"`
	ContentType string `json:"contentType,omitempty"`
	Size        int64  `json:"size,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
}

// Link is an unresolved reference to another entry or asset, left behind
// when the linked record was outside the fetch's include depth.
type Link struct {
	ID       string `json:"id"`
	LinkType string `json:"linkType"` // "Entry" or "Asset"
}

// ProcessedEntry is the normalized output of the generic entry normalizer: a
// flat mapping with all locale maps and link indirections resolved, plus
// "id", "createdAt" and "updatedAt" copied from the entry's system metadata.
// It is created per fetch, never cached and never mutated after construction.
type ProcessedEntry map[string]any

// ProcessedImage is a render-ready image reference.
type ProcessedImage struct {
	URL    string `json:"url"`
	Alt    string `json:"alt"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// ProcessedButton is a call-to-action rendered from paired text/url fields.
type ProcessedButton struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// ProcessedComponent is the common shape produced for every polymorphic
// section item. Type carries the discriminant; variant-specific extras
// (product features, testimonial author, ...) live in Metadata.
type ProcessedComponent struct {
	ID           string          `json:"id"`
	InternalName string          `json:"internalName,omitempty"`
	Type         string          `json:"type"`
	Title        string          `json:"title,omitempty"`
	Subtitle     string          `json:"subtitle,omitempty"`
	Description  string          `json:"description,omitempty"`
	Value        string          `json:"value,omitempty"`
	Icon         string          `json:"icon,omitempty"`
	Image        *ProcessedImage `json:"image,omitempty"`
	URL          string          `json:"url,omitempty"`
	Metadata     map[string]any  `json:"metadata,omitempty"`
}

// ProcessedSection is one block of a page, owning an ordered sequence of
// polymorphic items.
type ProcessedSection struct {
	ID              string               `json:"id"`
	InternalName    string               `json:"internalName,omitempty"`
	Type            string               `json:"type,omitempty"`
	Title           string               `json:"title,omitempty"`
	Headline        string               `json:"headline,omitempty"`
	Subtitle        string               `json:"subtitle,omitempty"`
	Description     string               `json:"description,omitempty"`
	PrimaryButton   *ProcessedButton     `json:"primaryButton,omitempty"`
	SecondaryButton *ProcessedButton     `json:"secondaryButton,omitempty"`
	BackgroundColor string               `json:"backgroundColor,omitempty"`
	Items           []ProcessedComponent `json:"items"`
	Media           *ProcessedImage      `json:"media,omitempty"`
	Metadata        map[string]any       `json:"metadata,omitempty"`
}

// ProcessedPage owns an ordered sequence of sections.
type ProcessedPage struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Slug            string             `json:"slug"`
	MetaDescription string             `json:"metaDescription,omitempty"`
	MetaImage       string             `json:"metaImage,omitempty"`
	Sections        []ProcessedSection `json:"sections"`
}

// ProcessedMenuItem is a navigation entry; DropdownItems recurse up to the
// fetch's link depth.
type ProcessedMenuItem struct {
	Label         string              `json:"label"`
	URL           string              `json:"url"`
	HasDropdown   bool                `json:"hasDropdown"`
	DropdownItems []ProcessedMenuItem `json:"dropdownItems"`
}

// ProcessedNavigation is the site-wide navigation bar.
type ProcessedNavigation struct {
	BrandName           string              `json:"brandName"`
	MenuItems           []ProcessedMenuItem `json:"menuItems"`
	PrimaryButtonText   string              `json:"primaryButtonText,omitempty"`
	SecondaryButtonText string              `json:"secondaryButtonText,omitempty"`
}

// ProcessedLink is a footer or social link.
type ProcessedLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Icon  string `json:"icon,omitempty"`
	Type  string `json:"type,omitempty"`
}

// ProcessedFooter is the site-wide footer.
type ProcessedFooter struct {
	CopyrightText       string          `json:"copyrightText,omitempty"`
	CompanyName         string          `json:"companyName,omitempty"`
	CompanyURL          string          `json:"companyUrl,omitempty"`
	FooterLinks         []ProcessedLink `json:"footerLinks"`
	SocialLinks         []ProcessedLink `json:"socialLinks"`
	CertificationImages []string        `json:"certificationImages"`
}

// EntryPage is one page of results from a generic entry listing.
type EntryPage struct {
	Items   []ProcessedEntry `json:"items"`
	Total   int              `json:"total"`
	Skip    int              `json:"skip"`
	Limit   int              `json:"limit"`
	HasMore bool             `json:"hasMore"`
}
