package contentful

import (
	"time"

	"github.com/ybordev/site-content/pkg/sitecontent"
)

// Wire shapes of the delivery API response. Linked records referenced from
// item fields arrive separately in the includes block and are stitched back
// in by the resolver.

type envelope struct {
	Total    int        `json:"total"`
	Skip     int        `json:"skip"`
	Limit    int        `json:"limit"`
	Items    []rawEntry `json:"items"`
	Includes struct {
		Entry []rawEntry `json:"Entry"`
		Asset []rawAsset `json:"Asset"`
	} `json:"includes"`
}

type rawSys struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	LinkType    string    `json:"linkType"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	ContentType struct {
		Sys struct {
			ID string `json:"id"`
		} `json:"sys"`
	} `json:"contentType"`
}

type rawEntry struct {
	Sys    rawSys         `json:"sys"`
	Fields map[string]any `json:"fields"`
}

type rawAsset struct {
	Sys    rawSys `json:"sys"`
	Fields struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		File        struct {
			URL         string `json:"url"`
			FileName    string `json:"fileName"`
			ContentType string `json:"contentType"`
			Details     struct {
				Size  int64 `json:"size"`
				Image *struct {
					Width  int `json:"width"`
					Height int `json:"height"`
				} `json:"image"`
			} `json:"details"`
		} `json:"file"`
	} `json:"fields"`
}

// resolver materializes link wrappers against the fetch's includes. The
// depth counter bounds entry recursion, so mutually-referencing entries
// terminate; beyond it a link stays a Link marker.
type resolver struct {
	entries map[string]rawEntry
	assets  map[string]rawAsset
}

func newResolver(env *envelope, include int) *resolver {
	r := &resolver{
		entries: make(map[string]rawEntry, len(env.Includes.Entry)+len(env.Items)),
		assets:  make(map[string]rawAsset, len(env.Includes.Asset)),
	}
	for _, e := range env.Includes.Entry {
		r.entries[e.Sys.ID] = e
	}
	// Top-level items can link to each other as well.
	for _, e := range env.Items {
		r.entries[e.Sys.ID] = e
	}
	for _, a := range env.Includes.Asset {
		r.assets[a.Sys.ID] = a
	}
	return r
}

func (r *resolver) entry(raw rawEntry, depth int) *sitecontent.Entry {
	entry := &sitecontent.Entry{
		ID:          raw.Sys.ID,
		ContentType: raw.Sys.ContentType.Sys.ID,
		CreatedAt:   raw.Sys.CreatedAt,
		UpdatedAt:   raw.Sys.UpdatedAt,
		Fields:      make(map[string]any, len(raw.Fields)),
	}
	for name, value := range raw.Fields {
		entry.Fields[name] = r.value(value, depth)
	}
	return entry
}

func (r *resolver) value(v any, depth int) any {
	switch t := v.(type) {
	case map[string]any:
		if sys, ok := linkSys(t); ok {
			return r.link(sys, depth)
		}
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = r.value(vv, depth)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = r.value(vv, depth)
		}
		return out
	default:
		return v
	}
}

type linkInfo struct {
	id       string
	linkType string
}

// linkSys detects the {"sys": {"type": "Link", ...}} wrapper shape.
func linkSys(m map[string]any) (linkInfo, bool) {
	sys, ok := m["sys"].(map[string]any)
	if !ok {
		return linkInfo{}, false
	}
	if kind, _ := sys["type"].(string); kind != "Link" {
		return linkInfo{}, false
	}
	id, _ := sys["id"].(string)
	linkType, _ := sys["linkType"].(string)
	if id == "" || linkType == "" {
		return linkInfo{}, false
	}
	return linkInfo{id: id, linkType: linkType}, true
}

func (r *resolver) link(sys linkInfo, depth int) any {
	switch sys.linkType {
	case "Asset":
		if raw, ok := r.assets[sys.id]; ok {
			return toAsset(raw)
		}
	case "Entry":
		if depth <= 0 {
			break
		}
		if raw, ok := r.entries[sys.id]; ok {
			return r.entry(raw, depth-1)
		}
	}
	return sitecontent.Link{ID: sys.id, LinkType: sys.linkType}
}

func toAsset(raw rawAsset) *sitecontent.Asset {
	asset := &sitecontent.Asset{
		ID:          raw.Sys.ID,
		URL:         raw.Fields.File.URL,
		Title:       raw.Fields.Title,
		Description: raw.Fields.Description,
		FileName:    raw.Fields.File.FileName,
		ContentType: raw.Fields.File.ContentType,
		Size:        raw.Fields.File.Details.Size,
	}
	if img := raw.Fields.File.Details.Image; img != nil {
		asset.Width = img.Width
		asset.Height = img.Height
	}
	return asset
}
