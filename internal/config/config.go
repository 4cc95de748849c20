package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"droplist/internal/domain"
)

// ItemConfig is one selectable option in the demo config file. Either
// Text (primitive) or Header (record) is set.
type ItemConfig struct {
	Text   string            `toml:"text,omitempty"`
	Header string            `toml:"header,omitempty"`
	Fields map[string]string `toml:"fields,omitempty"`
}

// Config represents the demo application configuration
type Config struct {
	Multiple       bool         `toml:"multiple"`
	Search         bool         `toml:"search"`
	Fuzzy          bool         `toml:"fuzzy"`
	Clearable      bool         `toml:"clearable"`
	HighlightFirst bool         `toml:"highlight_first"`
	MoveFocusOnTab bool         `toml:"move_focus_on_tab"`
	RTL            bool         `toml:"rtl"`
	Placeholder    string       `toml:"placeholder"`
	Items          []ItemConfig `toml:"items"`
}

// DefaultConfig returns a usable demo configuration
func DefaultConfig() *Config {
	return &Config{
		Search:      true,
		Clearable:   true,
		Placeholder: "Pick a fruit…",
		Items: []ItemConfig{
			{Text: "Apple"},
			{Text: "Banana"},
			{Text: "Cherry"},
			{Text: "Dragonfruit"},
			{Text: "Elderberry"},
		},
	}
}

// LoadFromPath loads configuration from a TOML file
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// SaveToPath writes the configuration as TOML
func SaveToPath(cfg *Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// DomainItems converts the configured options into engine items
func (c *Config) DomainItems() []domain.Item {
	items := make([]domain.Item, 0, len(c.Items))
	for _, ic := range c.Items {
		if ic.Header != "" {
			items = append(items, domain.NewRecord(ic.Header, ic.Fields))
		} else {
			items = append(items, domain.NewPrimitive(ic.Text))
		}
	}
	return items
}
