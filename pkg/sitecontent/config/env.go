package config

import "github.com/ilyakaznacheev/cleanenv"

// WithEnv applies environment variable overrides.
//
// Environment variable mapping:
//
// Server:
//
//	PORT - Server port (default: "8080")
//	ENVIRONMENT - Runtime environment (default: "development")
//	REQUEST_TIMEOUT - Per-request handler timeout (default: "30s")
//
// CMS:
//
//	CONTENTFUL_SPACE_ID - Space identifier
//	CONTENTFUL_DELIVERY_TOKEN - Delivery API token (published content)
//	CONTENTFUL_PREVIEW_TOKEN - Preview API token (draft content, non-production)
//	CONTENTFUL_HOST - API host override
//	CONTENTFUL_ENVIRONMENT - CMS environment (default: "master")
//
// Content processing:
//
//	CONTENT_LOCALE - Requested locale (default: "en-US")
//	CONTENT_DEFAULT_LOCALE - Fallback locale (default: "en-US")
//	CONTENT_INCLUDE_DEPTH - Link expansion depth (default: 10)
//
// Mail:
//
//	MAIL_ENDPOINT - Provider message-creation URL
//	MAIL_API_KEY - Provider credential
//	MAIL_FROM - Notification sender address
//	MAIL_TO - Notification recipient address
func WithEnv() Option {
	return func(c *ServerConfig) error {
		return cleanenv.ReadEnv(c)
	}
}
