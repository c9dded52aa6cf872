package sitecontent

import (
	"log/slog"

	"github.com/ybordev/site-content/pkg/sitecontent/assets"
)

// DefaultLinkDepth mirrors the CMS include parameter used for page fetches.
const DefaultLinkDepth = 10

// Normalizer walks fetched entries and produces flat, locale-resolved
// output. It carries the target locale, the link-depth bound, and the asset
// URL builder; it holds no per-entry state, so one Normalizer is safe for
// concurrent use across entries.
type Normalizer struct {
	locale        string
	defaultLocale string
	linkDepth     int
	assets        AssetURLBuilder
	logger        *slog.Logger
}

// NormalizerOption configures a Normalizer.
type NormalizerOption func(*Normalizer)

// WithLocale sets the target locale for field resolution.
func WithLocale(locale string) NormalizerOption {
	return func(n *Normalizer) {
		n.locale = locale
	}
}

// WithDefaultLocale sets the fallback locale.
func WithDefaultLocale(locale string) NormalizerOption {
	return func(n *Normalizer) {
		n.defaultLocale = locale
	}
}

// WithLinkDepth bounds recursion into linked entries. At zero remaining
// depth a linked entry degrades to an unresolved reference marker.
func WithLinkDepth(depth int) NormalizerOption {
	return func(n *Normalizer) {
		n.linkDepth = depth
	}
}

// WithAssetURLBuilder sets the builder used to absolutize asset URLs.
func WithAssetURLBuilder(b AssetURLBuilder) NormalizerOption {
	return func(n *Normalizer) {
		n.assets = b
	}
}

// WithNormalizerLogger sets the logger for degradation warnings.
func WithNormalizerLogger(logger *slog.Logger) NormalizerOption {
	return func(n *Normalizer) {
		n.logger = logger
	}
}

// NewNormalizer creates a Normalizer with en-US locales, the default link
// depth, and the plain asset URL builder.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{
		locale:        DefaultLocale,
		defaultLocale: DefaultLocale,
		linkDepth:     DefaultLinkDepth,
		assets:        assets.NewBuilder(),
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize converts an entry into its flat, render-ready representation.
// The output carries no remaining locale-map or link wrappers: locale maps
// are resolved, linked entries are normalized recursively (bounded by the
// link depth), assets become absolute URLs, rich-text documents become HTML
// strings (empty on render failure), and plain scalars pass through
// unchanged.
func (n *Normalizer) Normalize(entry *Entry) ProcessedEntry {
	return n.normalizeEntry(entry, n.linkDepth)
}

func (n *Normalizer) normalizeEntry(entry *Entry, depth int) ProcessedEntry {
	out := ProcessedEntry{
		"id":        entry.ID,
		"createdAt": entry.CreatedAt,
		"updatedAt": entry.UpdatedAt,
	}
	for name, raw := range entry.Fields {
		out[name] = n.normalizeValue(raw, depth)
	}
	return out
}

func (n *Normalizer) normalizeValue(v any, depth int) any {
	switch t := v.(type) {
	case map[string]any:
		if IsLocalized(t, n.locale, n.defaultLocale) {
			return n.normalizeValue(ResolveLocale(t, n.locale, n.defaultLocale), depth)
		}
		if IsRichTextDocument(t) {
			rendered, err := RenderRichText(t)
			if err != nil {
				n.logger.Warn("rich text render failed, substituting empty string", "error", err)
				return ""
			}
			return rendered
		}
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = n.normalizeValue(vv, depth)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = n.normalizeValue(vv, depth)
		}
		return out
	case []*Entry:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = n.normalizeValue(e, depth)
		}
		return out
	case *Entry:
		if depth <= 0 {
			return unresolvedRef(t.ID)
		}
		return n.normalizeEntry(t, depth-1)
	case *Asset:
		return n.assetURL(t)
	case Link:
		return unresolvedRef(t.ID)
	default:
		return v
	}
}

func (n *Normalizer) assetURL(a *Asset) string {
	return n.assets.URL(a.URL)
}

// unresolvedRef stands in for an entry beyond the link-depth bound.
func unresolvedRef(id string) map[string]any {
	return map[string]any{"id": id, "unresolved": true}
}

// Field accessors used by the typed processors. Each resolves the locale
// indirection first, then coerces; a missing or differently-typed field
// yields the zero value.

func (n *Normalizer) resolveField(entry *Entry, name string) any {
	v, ok := entry.Fields[name]
	if !ok {
		return nil
	}
	if m, ok := v.(map[string]any); ok && IsLocalized(m, n.locale, n.defaultLocale) {
		return ResolveLocale(m, n.locale, n.defaultLocale)
	}
	return v
}

func (n *Normalizer) fieldString(entry *Entry, name string) string {
	s, _ := n.resolveField(entry, name).(string)
	return s
}

func (n *Normalizer) fieldBool(entry *Entry, name string) bool {
	b, _ := n.resolveField(entry, name).(bool)
	return b
}

func (n *Normalizer) fieldFloat(entry *Entry, name string) float64 {
	f, _ := n.resolveField(entry, name).(float64)
	return f
}

func (n *Normalizer) fieldEntry(entry *Entry, name string) *Entry {
	e, _ := n.resolveField(entry, name).(*Entry)
	return e
}

func (n *Normalizer) fieldAsset(entry *Entry, name string) *Asset {
	a, _ := n.resolveField(entry, name).(*Asset)
	return a
}

func (n *Normalizer) fieldEntries(entry *Entry, name string) []*Entry {
	switch t := n.resolveField(entry, name).(type) {
	case []*Entry:
		return t
	case []any:
		out := make([]*Entry, 0, len(t))
		for _, v := range t {
			if e, ok := v.(*Entry); ok {
				out = append(out, e)
			}
		}
		return out
	default:
		return nil
	}
}

func (n *Normalizer) fieldAssets(entry *Entry, name string) []*Asset {
	switch t := n.resolveField(entry, name).(type) {
	case []*Asset:
		return t
	case []any:
		out := make([]*Asset, 0, len(t))
		for _, v := range t {
			if a, ok := v.(*Asset); ok {
				out = append(out, a)
			}
		}
		return out
	default:
		return nil
	}
}

// fieldAny returns the fully normalized value of one field, for open-ended
// payloads like a product's demo content.
func (n *Normalizer) fieldAny(entry *Entry, name string) any {
	v := entry.Fields[name]
	if v == nil {
		return nil
	}
	return n.normalizeValue(v, n.linkDepth)
}

// fieldMap returns a plain (non-localized) JSON object field, e.g. the
// free-form metadata bag on sections and components.
func (n *Normalizer) fieldMap(entry *Entry, name string) map[string]any {
	m, _ := n.resolveField(entry, name).(map[string]any)
	return m
}
