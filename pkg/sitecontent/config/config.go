// Package config assembles the site-content service and its mail sender
// from defaults, options, and environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ybordev/site-content/pkg/sitecontent"
	"github.com/ybordev/site-content/pkg/sitecontent/cms/contentful"
	"github.com/ybordev/site-content/pkg/sitecontent/mail"
)

// Option applies configuration to a ServerConfig instance.
type Option func(*ServerConfig) error

// Load constructs a ServerConfig by applying the supplied options on top of
// library defaults.
func Load(opts ...Option) (*ServerConfig, error) {
	cfg := defaults()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func defaults() ServerConfig {
	return ServerConfig{
		Port:           "8080",
		Environment:    "development",
		RequestTimeout: 30 * time.Second,
		Locale:         sitecontent.DefaultLocale,
		DefaultLocale:  sitecontent.DefaultLocale,
		IncludeDepth:   sitecontent.DefaultLinkDepth,
	}
}

// ServerConfig represents server configuration for the site-content service.
type ServerConfig struct {
	Port           string        `env:"PORT" env-default:"8080"`
	Environment    string        `env:"ENVIRONMENT" env-default:"development"` // development, production, testing
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" env-default:"30s"`

	// CMS configuration. The preview token is used instead of the delivery
	// token outside production, so draft content shows up in development.
	SpaceID        string `env:"CONTENTFUL_SPACE_ID"`
	DeliveryToken  string `env:"CONTENTFUL_DELIVERY_TOKEN"`
	PreviewToken   string `env:"CONTENTFUL_PREVIEW_TOKEN"`
	ContentfulHost string `env:"CONTENTFUL_HOST"`
	CMSEnvironment string `env:"CONTENTFUL_ENVIRONMENT" env-default:"master"`

	// Content processing
	Locale        string `env:"CONTENT_LOCALE" env-default:"en-US"`
	DefaultLocale string `env:"CONTENT_DEFAULT_LOCALE" env-default:"en-US"`
	IncludeDepth  int    `env:"CONTENT_INCLUDE_DEPTH" env-default:"10"`

	// Mail forwarding for form submissions
	MailEndpoint string `env:"MAIL_ENDPOINT"`
	MailAPIKey   string `env:"MAIL_API_KEY"`
	MailFrom     string `env:"MAIL_FROM"`
	MailTo       string `env:"MAIL_TO"`
}

// IsProduction reports whether the config targets production.
func (c *ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}

// Validate validates the server configuration. Production requires CMS
// credentials up front so a misconfigured deploy fails at boot, not at the
// first request.
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}
	if c.IncludeDepth < 0 {
		return errors.New("include depth must be non-negative")
	}
	if c.IsProduction() {
		if c.SpaceID == "" {
			return errors.New("CMS space ID is required in production")
		}
		if c.DeliveryToken == "" {
			return errors.New("CMS delivery token is required in production")
		}
	}
	return nil
}

// cmsToken picks the credential and host for the environment: the preview
// API with the preview token in development, the delivery API otherwise.
func (c *ServerConfig) cmsToken() (token, host string) {
	host = c.ContentfulHost
	if !c.IsProduction() && c.PreviewToken != "" {
		if host == "" {
			host = contentful.PreviewHost
		}
		return c.PreviewToken, host
	}
	return c.DeliveryToken, host
}

// BuildService creates a Service instance from the server configuration.
func (c *ServerConfig) BuildService() (sitecontent.Service, error) {
	token, host := c.cmsToken()

	client, err := contentful.New(contentful.Config{
		SpaceID:     c.SpaceID,
		Token:       token,
		Host:        host,
		Environment: c.CMSEnvironment,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build CMS client: %w", err)
	}

	normalizer := sitecontent.NewNormalizer(
		sitecontent.WithLocale(c.Locale),
		sitecontent.WithDefaultLocale(c.DefaultLocale),
		sitecontent.WithLinkDepth(c.IncludeDepth),
	)

	return sitecontent.New(
		sitecontent.WithEntryClient(client),
		sitecontent.WithNormalizer(normalizer),
		sitecontent.WithIncludeDepth(c.IncludeDepth),
	)
}

// BuildSender creates the mail sender for form forwarding. Returns nil
// without error when no mail endpoint is configured, which disables the
// submission endpoint.
func (c *ServerConfig) BuildSender() (mail.Sender, error) {
	if c.MailEndpoint == "" {
		return nil, nil
	}
	return mail.NewClient(mail.Config{
		Endpoint: c.MailEndpoint,
		APIKey:   c.MailAPIKey,
		Timeout:  10 * time.Second,
	})
}
