// Package memory provides an in-memory implementation of the CMS query
// boundary for tests and local development without CMS credentials.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ybordev/site-content/pkg/sitecontent"
)

// Client is an in-memory EntryClient. Entries are matched by content type
// and field equality, ordered, and paginated the way the delivery API
// behaves; links are assumed to already be materialized as *Entry / *Asset
// values in the stored fields.
type Client struct {
	mu      sync.RWMutex
	entries []*sitecontent.Entry
	err     error
}

// New creates an in-memory client seeded with the given entries.
func New(entries ...*sitecontent.Entry) *Client {
	return &Client{entries: entries}
}

// Add appends entries to the store.
func (c *Client) Add(entries ...*sitecontent.Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, entries...)
}

// FailWith makes every subsequent call return err, for exercising upstream
// failure paths.
func (c *Client) FailWith(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
}

func (c *Client) GetEntries(_ context.Context, q sitecontent.EntryQuery) (*sitecontent.EntryResult, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.err != nil {
		return nil, c.err
	}

	matched := make([]*sitecontent.Entry, 0, len(c.entries))
	for _, entry := range c.entries {
		if q.ContentType != "" && entry.ContentType != q.ContentType {
			continue
		}
		if !matchesFields(entry, q.FieldEquals) {
			continue
		}
		matched = append(matched, entry)
	}
	orderEntries(matched, q.Order)

	total := len(matched)
	if q.Skip > 0 {
		if q.Skip >= len(matched) {
			matched = nil
		} else {
			matched = matched[q.Skip:]
		}
	}
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}

	return &sitecontent.EntryResult{Items: matched, Total: total}, nil
}

func (c *Client) GetEntry(_ context.Context, id string, _ int) (*sitecontent.Entry, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.err != nil {
		return nil, c.err
	}
	for _, entry := range c.entries {
		if entry.ID == id {
			return entry, nil
		}
	}
	return nil, &sitecontent.EntryError{EntryID: id, Op: "get", Err: sitecontent.ErrEntryNotFound}
}

func matchesFields(entry *sitecontent.Entry, filters map[string]string) bool {
	for name, want := range filters {
		if !fieldEquals(entry.Fields[strings.TrimPrefix(name, "fields.")], want) {
			return false
		}
	}
	return true
}

// fieldEquals compares against the raw value or, for localized fields, any
// locale's value.
func fieldEquals(raw any, want string) bool {
	switch t := raw.(type) {
	case string:
		return t == want
	case map[string]any:
		for _, v := range t {
			if s, ok := v.(string); ok && s == want {
				return true
			}
		}
		return false
	default:
		return fmt.Sprint(raw) == want && raw != nil
	}
}

func orderEntries(entries []*sitecontent.Entry, order string) {
	if order == "" {
		return
	}
	descending := strings.HasPrefix(order, "-")
	key := strings.TrimPrefix(order, "-")

	less := func(a, b *sitecontent.Entry) bool {
		switch key {
		case "sys.createdAt":
			return a.CreatedAt.Before(b.CreatedAt)
		case "sys.updatedAt":
			return a.UpdatedAt.Before(b.UpdatedAt)
		default:
			name := strings.TrimPrefix(key, "fields.")
			av, _ := a.Fields[name].(string)
			bv, _ := b.Fields[name].(string)
			return av < bv
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if descending {
			return less(entries[j], entries[i])
		}
		return less(entries[i], entries[j])
	})
}
