package sitecontent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ybordev/site-content/pkg/sitecontent"
)

func TestDispatchItemComponent(t *testing.T) {
	n := sitecontent.NewNormalizer()
	entry := testEntry("cmp-1", sitecontent.TypeComponent, map[string]any{
		"internalName": "Hero stat",
		"type":         "stat",
		"title":        map[string]any{"en-US": "99.9%"},
		"description":  "Uptime",
		"icon": &sitecontent.Asset{
			ID:  "icon-1",
			URL: "//images.example.com/icon.svg",
		},
	})

	got := n.DispatchItem(entry)

	assert.Equal(t, "cmp-1", got.ID)
	assert.Equal(t, "stat", got.Type)
	assert.Equal(t, "Hero stat", got.InternalName)
	assert.Equal(t, "99.9%", got.Title)
	assert.Equal(t, "Uptime", got.Description)
	assert.Equal(t, "https://images.example.com/icon.svg", got.Icon)
}

func TestDispatchItemProduct(t *testing.T) {
	n := sitecontent.NewNormalizer()
	featureA := testEntry("f-a", sitecontent.TypeComponent, map[string]any{"title": "Fast"})
	featureB := testEntry("f-b", sitecontent.TypeComponent, map[string]any{"title": "Safe"})
	entry := testEntry("prod-1", sitecontent.TypeProduct, map[string]any{
		"name":        "Widget API",
		"tagline":     "Widgets as a service",
		"description": "All the widgets.",
		"color":       "#336699",
		"slug":        "widget-api",
		"features":    []*sitecontent.Entry{featureA, featureB},
		"demoContent": map[string]any{"sample": "GET /v1/widgets"},
	})

	got := n.DispatchItem(entry)

	assert.Equal(t, sitecontent.TypeProduct, got.Type)
	assert.Equal(t, "Widget API", got.Title)
	assert.Equal(t, "Widgets as a service", got.Subtitle)
	assert.Equal(t, "#336699", got.Metadata["color"])
	assert.Equal(t, "widget-api", got.Metadata["slug"])

	features, ok := got.Metadata["features"].([]sitecontent.ProcessedComponent)
	require.True(t, ok)
	require.Len(t, features, 2)
	assert.Equal(t, "Fast", features[0].Title)
	assert.Equal(t, "Safe", features[1].Title)
}

func TestDispatchItemProductWithoutFeatures(t *testing.T) {
	n := sitecontent.NewNormalizer()
	entry := testEntry("prod-2", sitecontent.TypeProduct, map[string]any{
		"name": "Bare product",
	})

	got := n.DispatchItem(entry)

	features, ok := got.Metadata["features"].([]sitecontent.ProcessedComponent)
	require.True(t, ok)
	assert.NotNil(t, features)
	assert.Empty(t, features)
}

func TestDispatchItemTestimonial(t *testing.T) {
	n := sitecontent.NewNormalizer()
	entry := testEntry("tm-1", sitecontent.TypeTestimonial, map[string]any{
		"quote":         "Saved us weeks.",
		"authorName":    "Dana",
		"authorTitle":   "CTO",
		"authorCompany": "Acme",
		"rating":        float64(5),
		"authorImage": &sitecontent.Asset{
			ID:  "av-1",
			URL: "//images.example.com/dana.jpg",
		},
	})

	got := n.DispatchItem(entry)

	assert.Equal(t, sitecontent.TypeTestimonial, got.Type)
	assert.Equal(t, "Saved us weeks.", got.Description)
	assert.Equal(t, "Dana", got.Metadata["authorName"])
	assert.Equal(t, "CTO", got.Metadata["authorTitle"])
	assert.Equal(t, "Acme", got.Metadata["authorCompany"])
	assert.Equal(t, float64(5), got.Metadata["rating"])
	assert.Equal(t, "https://images.example.com/dana.jpg", got.Metadata["authorImage"])
}

func TestDispatchItemUnknownTypeFallsBackToCard(t *testing.T) {
	n := sitecontent.NewNormalizer()
	entry := testEntry("odd-1", "somethingNew", map[string]any{
		"title": "ignored",
	})

	got := n.DispatchItem(entry)

	assert.Equal(t, "odd-1", got.ID)
	assert.Equal(t, sitecontent.TypeCard, got.Type)
	assert.Empty(t, got.Title)
}
