package contentful_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ybordev/site-content/pkg/sitecontent"
	"github.com/ybordev/site-content/pkg/sitecontent/cms/contentful"
)

const listingFixture = `{
  "total": 1,
  "skip": 0,
  "limit": 100,
  "items": [
    {
      "sys": {
        "id": "page-1",
        "type": "Entry",
        "createdAt": "2024-03-01T00:00:00Z",
        "updatedAt": "2024-03-02T00:00:00Z",
        "contentType": {"sys": {"id": "page"}}
      },
      "fields": {
        "title": {"en-US": "Home"},
        "slug": "/",
        "hero": {"sys": {"type": "Link", "linkType": "Entry", "id": "cmp-1"}},
        "image": {"sys": {"type": "Link", "linkType": "Asset", "id": "asset-1"}},
        "orphan": {"sys": {"type": "Link", "linkType": "Entry", "id": "missing"}}
      }
    }
  ],
  "includes": {
    "Entry": [
      {
        "sys": {
          "id": "cmp-1",
          "type": "Entry",
          "contentType": {"sys": {"id": "component"}}
        },
        "fields": {
          "title": "Hero",
          "next": {"sys": {"type": "Link", "linkType": "Entry", "id": "cmp-1"}}
        }
      }
    ],
    "Asset": [
      {
        "sys": {"id": "asset-1", "type": "Asset"},
        "fields": {
          "title": "Hero image",
          "file": {
            "url": "//images.ctfassets.net/space/hero.png",
            "fileName": "hero.png",
            "contentType": "image/png",
            "details": {"size": 1024, "image": {"width": 800, "height": 400}}
          }
        }
      }
    ]
  }
}`

// newTestClient points a client at a fixture server. The server's base URL
// stands in for the delivery host.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*contentful.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := contentful.New(contentful.Config{
		SpaceID: "space-1",
		Token:   "token-1",
		Host:    srv.URL,
	})
	require.NoError(t, err)
	return c, srv
}

func TestNewFailsClosedOnMissingCredentials(t *testing.T) {
	_, err := contentful.New(contentful.Config{Token: "t"})
	assert.Error(t, err)

	_, err = contentful.New(contentful.Config{SpaceID: "s"})
	assert.Error(t, err)
}

func TestGetEntriesQueryParameters(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	var gotAuth string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total":0,"items":[]}`))
	})

	_, err := c.GetEntries(context.Background(), sitecontent.EntryQuery{
		ContentType: "page",
		FieldEquals: map[string]string{"slug": "/about"},
		Include:     10,
		Limit:       5,
		Skip:        10,
		Order:       "-sys.createdAt",
		Select:      []string{"fields.slug", "fields.title"},
	})
	require.NoError(t, err)

	assert.Equal(t, "/spaces/space-1/environments/master/entries", gotPath)
	assert.Equal(t, "Bearer token-1", gotAuth)
	assert.Equal(t, "page", gotQuery.Get("content_type"))
	assert.Equal(t, "/about", gotQuery.Get("fields.slug"))
	assert.Equal(t, "10", gotQuery.Get("include"))
	assert.Equal(t, "5", gotQuery.Get("limit"))
	assert.Equal(t, "10", gotQuery.Get("skip"))
	assert.Equal(t, "-sys.createdAt", gotQuery.Get("order"))
	assert.Equal(t, "fields.slug,fields.title", gotQuery.Get("select"))
}

func TestGetEntriesResolvesIncludes(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(listingFixture))
	})

	result, err := c.GetEntries(context.Background(), sitecontent.EntryQuery{
		ContentType: "page",
		Include:     3,
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 1, result.Total)

	entry := result.Items[0]
	assert.Equal(t, "page-1", entry.ID)
	assert.Equal(t, "page", entry.ContentType)
	assert.Equal(t, "/", entry.Fields["slug"])

	// Entry link resolved from includes.
	hero, ok := entry.Fields["hero"].(*sitecontent.Entry)
	require.True(t, ok)
	assert.Equal(t, "cmp-1", hero.ID)
	assert.Equal(t, "component", hero.ContentType)

	// Asset link resolved with file details.
	image, ok := entry.Fields["image"].(*sitecontent.Asset)
	require.True(t, ok)
	assert.Equal(t, "//images.ctfassets.net/space/hero.png", image.URL)
	assert.Equal(t, 800, image.Width)
	assert.Equal(t, 400, image.Height)

	// A link whose target is absent from includes stays a Link marker.
	orphan, ok := entry.Fields["orphan"].(sitecontent.Link)
	require.True(t, ok)
	assert.Equal(t, "missing", orphan.ID)
	assert.Equal(t, "Entry", orphan.LinkType)
}

func TestGetEntriesSelfReferenceTerminates(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(listingFixture))
	})

	// cmp-1 links to itself; resolution must bottom out at the include
	// depth with a Link marker instead of recursing forever.
	result, err := c.GetEntries(context.Background(), sitecontent.EntryQuery{
		ContentType: "page",
		Include:     2,
	})
	require.NoError(t, err)

	hero := result.Items[0].Fields["hero"].(*sitecontent.Entry)
	next, ok := hero.Fields["next"].(*sitecontent.Entry)
	require.True(t, ok)

	_, isLink := next.Fields["next"].(sitecontent.Link)
	assert.True(t, isLink)
}

func TestGetEntriesUpstreamError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	result, err := c.GetEntries(context.Background(), sitecontent.EntryQuery{ContentType: "page"})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, sitecontent.ErrUpstream)
}

func TestGetEntry(t *testing.T) {
	var gotQuery url.Values
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(listingFixture))
	})

	entry, err := c.GetEntry(context.Background(), "page-1", 3)
	require.NoError(t, err)
	assert.Equal(t, "page-1", entry.ID)
	assert.Equal(t, "page-1", gotQuery.Get("sys.id"))
	assert.Equal(t, "3", gotQuery.Get("include"))
}

func TestGetEntryNotFound(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total":0,"items":[]}`))
	})

	entry, err := c.GetEntry(context.Background(), "nope", 1)
	assert.Nil(t, entry)
	assert.ErrorIs(t, err, sitecontent.ErrEntryNotFound)
}
