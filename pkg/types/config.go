package types

import "time"

// Default configuration values.
const (
	DefaultEndpoint    = "https://leetcode.com/graphql"
	DefaultReferer     = "https://leetcode.com"
	DefaultTimeout     = 15 * time.Second
	DefaultPageSize    = 10
	DefaultProblemHost = "leetcode.com"
	DefaultIcon        = "icon.png"

	// DefaultUserAgent is a desktop browser string; the catalog rejects
	// requests that look like bots.
	DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.114 Safari/537.36"
)

// HTTPConfig holds shared HTTP settings for outbound requests.
type HTTPConfig struct {
	// Timeout bounds each request; an expired request counts as failed.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with every request.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// Referer is sent as the Referer header when non-empty.
	Referer string `json:"referer,omitempty" yaml:"referer,omitempty" mapstructure:"referer"`
}

// CatalogConfig holds settings for the catalog GraphQL client.
type CatalogConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// Endpoint is the GraphQL URL that receives POSTed queries.
	Endpoint string `json:"endpoint" yaml:"endpoint" mapstructure:"endpoint"`
}

// SearchConfig holds settings for the search resolver.
type SearchConfig struct {
	// PageSize caps the number of records a single search returns (default 10).
	PageSize int `json:"page_size" yaml:"page_size" mapstructure:"page_size"`

	// IDLookup enables the full-catalog scan for all-digit queries before
	// falling back to keyword search.
	IDLookup bool `json:"id_lookup" yaml:"id_lookup" mapstructure:"id_lookup"`
}

// OutputConfig holds settings for the script filter output.
type OutputConfig struct {
	// ProblemHost is the host used to build problem URLs.
	ProblemHost string `json:"problem_host" yaml:"problem_host" mapstructure:"problem_host"`

	// Icon is the icon path attached to every item.
	Icon string `json:"icon" yaml:"icon" mapstructure:"icon"`
}

// Config groups all settings.
type Config struct {
	Catalog CatalogConfig `json:"catalog" yaml:"catalog" mapstructure:"catalog"`
	Search  SearchConfig  `json:"search" yaml:"search" mapstructure:"search"`
	Output  OutputConfig  `json:"output" yaml:"output" mapstructure:"output"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Catalog: CatalogConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   DefaultTimeout,
				UserAgent: DefaultUserAgent,
				Referer:   DefaultReferer,
			},
			Endpoint: DefaultEndpoint,
		},
		Search: SearchConfig{
			PageSize: DefaultPageSize,
			IDLookup: true,
		},
		Output: OutputConfig{
			ProblemHost: DefaultProblemHost,
			Icon:        DefaultIcon,
		},
	}
}

// Normalize replaces empty or non-positive values with their defaults.
func (c *Config) Normalize() {
	d := DefaultConfig()
	if c.Catalog.Endpoint == "" {
		c.Catalog.Endpoint = d.Catalog.Endpoint
	}
	if c.Catalog.Timeout <= 0 {
		c.Catalog.Timeout = d.Catalog.Timeout
	}
	if c.Catalog.UserAgent == "" {
		c.Catalog.UserAgent = d.Catalog.UserAgent
	}
	if c.Search.PageSize <= 0 {
		c.Search.PageSize = d.Search.PageSize
	}
	if c.Output.ProblemHost == "" {
		c.Output.ProblemHost = d.Output.ProblemHost
	}
	if c.Output.Icon == "" {
		c.Output.Icon = d.Output.Icon
	}
}
