package types

type ProviderID string

const (
	ProviderBrave  ProviderID = "brave"
	ProviderTavily ProviderID = "tavily"
)

// ProviderConfig represents search provider configuration.
type ProviderConfig struct {
	ID   ProviderID `json:"id" yaml:"id"`
	Name string     `json:"name" yaml:"name"`

	// API settings
	APIHost string `json:"api_host" yaml:"api_host"`
	APIKey  string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Optional settings
	Timeout    int `json:"timeout,omitempty" yaml:"timeout,omitempty"`         // seconds
	MaxRetries int `json:"max_retries,omitempty" yaml:"max_retries,omitempty"` // default: 3
}

// Validate validates the provider configuration.
func (c *ProviderConfig) Validate() error {
	if c.ID == "" {
		return ErrInvalidProviderID
	}
	if c.Name == "" {
		return ErrInvalidProviderName
	}
	if c.APIHost == "" {
		return ErrInvalidAPIHost
	}
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
