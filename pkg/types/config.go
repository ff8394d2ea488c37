// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "citeref/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// MetadataConfig holds settings for the remote metadata service used to
// enrich incomplete catalog entries.
type MetadataConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// Endpoint is the base URL of the metadata service
	// (e.g. "http://docman.zhuof.wang").
	Endpoint string `json:"endpoint" yaml:"endpoint" mapstructure:"endpoint"`

	// RateLimit caps lookups per second. Zero means unlimited.
	RateLimit float64 `json:"rate_limit" yaml:"rate_limit" mapstructure:"rate_limit"`
}

// Config is the full citeref configuration as read from citeref.yaml and
// CITEREF_* environment variables.
type Config struct {
	Metadata MetadataConfig `json:"metadata" yaml:"metadata" mapstructure:"metadata"`

	// Verbose enables debug logging to stderr.
	Verbose bool `json:"verbose" yaml:"verbose" mapstructure:"verbose"`
}
