package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Key names a configuration entry. The set of keys is closed: every key has
// a validator in the validators table and nothing else may be persisted.
type Key string

const (
	KeyAPIKey      Key = "MOJI_OPENAI_API_KEY"
	KeyMaxTokens   Key = "MOJI_OPENAI_MAX_TOKENS"
	KeyBasePath    Key = "MOJI_OPENAI_BASE_PATH"
	KeyDescription Key = "MOJI_DESCRIPTION"
	KeyModel       Key = "MOJI_MODEL"
	KeyLanguage    Key = "MOJI_LANGUAGE"
	KeyPlaceholder Key = "MOJI_MESSAGE_TEMPLATE_PLACEHOLDER"
)

// Keys lists all supported keys in display order.
var Keys = []Key{
	KeyAPIKey,
	KeyMaxTokens,
	KeyBasePath,
	KeyDescription,
	KeyModel,
	KeyLanguage,
	KeyPlaceholder,
}

// ErrUnsupportedKey is returned for key names outside the closed key set.
var ErrUnsupportedKey = errors.New("unsupported config key")

// ParseKey returns the Key named s. Unknown names yield an error wrapping
// ErrUnsupportedKey, with a suggestion when a similar key exists.
func ParseKey(s string) (Key, error) {
	k := Key(s)
	if _, ok := validators[k]; ok {
		return k, nil
	}
	if hint := suggestKey(s); hint != "" {
		return "", fmt.Errorf("%w: %s (did you mean %s?)", ErrUnsupportedKey, s, hint)
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedKey, s)
}

// suggestKey finds the closest supported key for a mistyped name.
// "model" and "moji_model" both suggest MOJI_MODEL.
func suggestKey(s string) Key {
	if s == "" {
		return ""
	}
	upper := strings.ToUpper(s)
	if _, ok := validators[Key(upper)]; ok {
		return Key(upper)
	}
	if _, ok := validators[Key("MOJI_"+upper)]; ok {
		return Key("MOJI_" + upper)
	}

	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = string(k)
	}
	matches := fuzzy.Find(upper, names)
	if len(matches) == 0 {
		return ""
	}
	return Key(matches[0].Str)
}
