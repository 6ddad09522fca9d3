package config

import (
	"fmt"
	"maps"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/nyxb/conmitmoji/internal/i18n"
)

// Default values used when neither the environment nor the config file set a key.
const (
	DefaultModel       = "gpt-4-1106-preview"
	DefaultLanguage    = i18n.DefaultLocale
	DefaultPlaceholder = "$msg"
)

// Config maps keys to their validated values. Keys missing from the map are unset.
//
// A Config is resolved once per invocation by [Store.Load] and passed
// explicitly to the components that need it.
type Config map[Key]any

// Clone returns a shallow copy of c.
func (c Config) Clone() Config {
	out := make(Config, len(c))
	maps.Copy(out, c)
	return out
}

// Lookup returns the value for key and whether it is set.
func (c Config) Lookup(key Key) (any, bool) {
	v, ok := c[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Format renders the value for key as printed by "config get".
// Unset keys render as "undefined".
func (c Config) Format(key Key) string {
	v, ok := c.Lookup(key)
	if !ok {
		return "undefined"
	}
	return fmt.Sprint(v)
}

func (c Config) str(key Key) string {
	s, _ := c[key].(string)
	return s
}

// APIKey returns the configured OpenAI API key.
func (c Config) APIKey() string { return c.str(KeyAPIKey) }

// BasePath returns the custom API base URL, or "" for the provider default.
func (c Config) BasePath() string { return c.str(KeyBasePath) }

// Model returns the configured model id.
func (c Config) Model() string { return c.str(KeyModel) }

// Language returns the resolved locale id.
func (c Config) Language() string { return c.str(KeyLanguage) }

// Placeholder returns the message template placeholder, e.g. "$msg".
func (c Config) Placeholder() string { return c.str(KeyPlaceholder) }

// Description reports whether generated messages include a description.
func (c Config) Description() bool {
	b, _ := c[KeyDescription].(bool)
	return b
}

// MaxTokens returns the response token limit, or 0 when unset.
func (c Config) MaxTokens() int {
	switch v := c[KeyMaxTokens].(type) {
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

// FromEnv builds the default configuration from environment variables,
// filling the documented fallbacks for model, language and placeholder.
// Environment values are taken as given; only the config file is validated.
func FromEnv(getenv func(string) string) Config {
	cfg := Config{
		KeyDescription: getenv(string(KeyDescription)) == "true",
		KeyModel:       envOr(getenv, KeyModel, DefaultModel),
		KeyLanguage:    envOr(getenv, KeyLanguage, DefaultLanguage),
		KeyPlaceholder: envOr(getenv, KeyPlaceholder, DefaultPlaceholder),
	}
	if locale, ok := i18n.Resolve(cfg.Language()); ok {
		cfg[KeyLanguage] = locale
	}
	if v := getenv(string(KeyAPIKey)); v != "" {
		cfg[KeyAPIKey] = v
	}
	if v := getenv(string(KeyBasePath)); v != "" {
		cfg[KeyBasePath] = v
	}
	if v := getenv(string(KeyMaxTokens)); v != "" {
		if n, ok := parseLeadingInt(v); ok {
			cfg[KeyMaxTokens] = int(n)
		}
	}
	return cfg
}

func envOr(getenv func(string) string, key Key, fallback string) string {
	if v := getenv(string(key)); v != "" {
		return v
	}
	return fallback
}

// LoadDotEnv loads KEY=value pairs from a .env file into the process
// environment. Variables already set are not overridden and a missing file
// is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// isUnset reports whether a stored value means "not configured".
func isUnset(v any) bool {
	switch v := v.(type) {
	case nil:
		return true
	case string:
		return v == "" || strings.EqualFold(v, "null") || strings.EqualFold(v, "undefined")
	case bool:
		return !v
	case int64:
		return v == 0
	case int:
		return v == 0
	case float64:
		return v == 0
	}
	return false
}
