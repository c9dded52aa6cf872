// Package assets builds fully-qualified, optionally transformed URLs from
// the protocol-relative asset URLs the CMS delivers. All builders are pure;
// no I/O happens here.
package assets

import (
	"strconv"
	"strings"
)

// Image transform defaults applied when an option is left zero-valued.
const (
	DefaultQuality = 80
	DefaultFormat  = FormatWebP
	DefaultFit     = FitFill
)

// Output formats accepted by the CMS image API.
const (
	FormatWebP = "webp"
	FormatJPG  = "jpg"
	FormatPNG  = "png"
)

// Resize behaviors accepted by the CMS image API.
const (
	FitPad   = "pad"
	FitFill  = "fill"
	FitScale = "scale"
	FitCrop  = "crop"
	FitThumb = "thumb"
)

// ImageOptions selects an image transformation. Zero Width/Height omit the
// respective dimension; zero Quality and empty Format/Fit take the defaults.
type ImageOptions struct {
	Width   int
	Height  int
	Quality int
	Format  string
	Fit     string
}

// Builder produces absolute asset URLs. The zero scheme is "https:"; a
// different scheme can be set for test fixtures.
type Builder struct {
	scheme string
}

// Option configures a Builder.
type Option func(*Builder)

// WithScheme overrides the scheme prefixed to protocol-relative URLs.
func WithScheme(scheme string) Option {
	return func(b *Builder) {
		b.scheme = scheme
	}
}

// NewBuilder creates a Builder with the https scheme.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{scheme: "https:"}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// URL absolutizes a protocol-relative asset URL. Already-absolute URLs pass
// through unchanged.
func (b *Builder) URL(raw string) string {
	if strings.HasPrefix(raw, "//") {
		return b.scheme + raw
	}
	return raw
}

// ImageURL absolutizes the asset URL and appends the transform query
// parameters w, h, q, f and fit. Parameters keep that declared order rather
// than url.Values' sorted encoding, matching the URLs the CMS documents.
func (b *Builder) ImageURL(raw string, opts ImageOptions) string {
	quality := opts.Quality
	if quality <= 0 {
		quality = DefaultQuality
	}
	format := opts.Format
	if format == "" {
		format = DefaultFormat
	}
	fit := opts.Fit
	if fit == "" {
		fit = DefaultFit
	}

	var params []string
	if opts.Width > 0 {
		params = append(params, "w="+strconv.Itoa(opts.Width))
	}
	if opts.Height > 0 {
		params = append(params, "h="+strconv.Itoa(opts.Height))
	}
	params = append(params,
		"q="+strconv.Itoa(quality),
		"f="+format,
		"fit="+fit,
	)

	return b.URL(raw) + "?" + strings.Join(params, "&")
}
