// Package contentful implements the CMS query boundary against the
// Contentful delivery/preview HTTP API.
package contentful

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ybordev/site-content/pkg/sitecontent"
)

// API hosts. The preview host serves draft content and is selected in
// development environments.
const (
	DeliveryHost = "cdn.contentful.com"
	PreviewHost  = "preview.contentful.com"
)

const (
	defaultEnvironment = "master"
	defaultTimeout     = 10 * time.Second
)

// Config holds the credentials and endpoint selection for one space.
// SpaceID and Token are opaque secrets passed through unmodified.
type Config struct {
	SpaceID     string
	Token       string
	Host        string // DeliveryHost or PreviewHost; defaults to DeliveryHost. May carry an explicit scheme for test servers.
	Environment string // defaults to "master"
	Timeout     time.Duration
}

// Client queries the delivery API and materializes linked entries and
// assets from the response's includes block.
type Client struct {
	http        *resty.Client
	spaceID     string
	environment string
}

// New creates a delivery API client. Missing credentials fail closed here
// rather than at the first request.
func New(cfg Config) (*Client, error) {
	if cfg.SpaceID == "" {
		return nil, fmt.Errorf("contentful: space ID is required")
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("contentful: access token is required")
	}
	host := cfg.Host
	if host == "" {
		host = DeliveryHost
	}
	baseURL := host
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}
	environment := cfg.Environment
	if environment == "" {
		environment = defaultEnvironment
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	http := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(cfg.Token).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http:        http,
		spaceID:     cfg.SpaceID,
		environment: environment,
	}, nil
}

// GetEntries executes a listing query and resolves links up to the query's
// include depth.
func (c *Client) GetEntries(ctx context.Context, q sitecontent.EntryQuery) (*sitecontent.EntryResult, error) {
	var env envelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(queryParams(q)).
		SetResult(&env).
		Get(c.entriesPath())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sitecontent.ErrUpstream, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", sitecontent.ErrUpstream, resp.StatusCode())
	}

	r := newResolver(&env, q.Include)
	items := make([]*sitecontent.Entry, len(env.Items))
	for i, raw := range env.Items {
		items[i] = r.entry(raw, q.Include)
	}
	return &sitecontent.EntryResult{Items: items, Total: env.Total}, nil
}

// GetEntry fetches a single entry by ID. The delivery API's single-entry
// endpoint returns no includes block, so this goes through the listing
// endpoint with a sys.id filter, the same way the vendor SDKs do.
func (c *Client) GetEntry(ctx context.Context, id string, include int) (*sitecontent.Entry, error) {
	var env envelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("sys.id", id).
		SetQueryParam("include", strconv.Itoa(include)).
		SetQueryParam("limit", "1").
		SetResult(&env).
		Get(c.entriesPath())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sitecontent.ErrUpstream, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", sitecontent.ErrUpstream, resp.StatusCode())
	}
	if len(env.Items) == 0 {
		return nil, &sitecontent.EntryError{EntryID: id, Op: "get", Err: sitecontent.ErrEntryNotFound}
	}

	r := newResolver(&env, include)
	return r.entry(env.Items[0], include), nil
}

func (c *Client) entriesPath() string {
	return fmt.Sprintf("/spaces/%s/environments/%s/entries", c.spaceID, c.environment)
}
