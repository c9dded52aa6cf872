// Package sitecontent provides a reusable library for turning a headless
// CMS's localized, linked-entry graph into flat, render-ready content
// objects, plus the supporting pieces a marketing site needs around it.
//
// It exposes a single Service interface that orchestrates fetching entries
// from the CMS boundary, resolving locale maps, flattening linked entries
// and assets, and dispatching polymorphic section items to their
// type-specific processors. Implementations of the CMS boundary (HTTP
// delivery API, in-memory fake) live under subpackages, as do the asset URL
// builder, outbound mail, form validation, configuration, and HTTP API.
//
// # Failure Policy
//
// Public read operations never panic on malformed CMS data. Missing content
// surfaces as a nil result with a nil error, upstream failures are logged
// once and returned wrapped (never retried), and a rich-text field that
// fails to render degrades to an empty string rather than aborting the
// surrounding normalization.
package sitecontent
