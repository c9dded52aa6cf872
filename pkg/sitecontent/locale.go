package sitecontent

import "sort"

// DefaultLocale is the fallback locale used when none is configured.
const DefaultLocale = "en-US"

// ResolveLocale selects the effective value for locale from a localized
// field (locale code -> value): the requested locale if present, else the
// default locale, else the value at the smallest key in sorted order so the
// fallback is deterministic.
//
// A field with zero keys is a contract violation by the upstream CMS;
// ResolveLocale returns nil in that case and callers are expected to guard
// with an existence check first.
func ResolveLocale(field map[string]any, locale, defaultLocale string) any {
	if v, ok := field[locale]; ok {
		return v
	}
	if v, ok := field[defaultLocale]; ok {
		return v
	}
	if len(field) == 0 {
		return nil
	}
	keys := make([]string, 0, len(field))
	for k := range field {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return field[keys[0]]
}

// IsLocalized reports whether a raw field value looks like a locale map,
// i.e. a map carrying the requested or default locale as a key. Plain
// object fields (rich text documents, JSON metadata bags) do not.
func IsLocalized(field map[string]any, locale, defaultLocale string) bool {
	if _, ok := field[locale]; ok {
		return true
	}
	_, ok := field[defaultLocale]
	return ok
}
