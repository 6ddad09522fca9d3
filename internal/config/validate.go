package config

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/nyxb/conmitmoji/internal/i18n"
)

// ValidationError reports a value rejected by a key's validator.
type ValidationError struct {
	Key Key
	Msg string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Key, e.Msg)
}

// Validator checks a raw value for one key and returns its validated form.
// cfg is the full configuration the value is validated against, for rules
// that depend on other keys.
type Validator func(value any, cfg Config) (any, error)

// SupportedModels is the closed list of model ids accepted for MOJI_MODEL.
var SupportedModels = []string{
	"gpt-3.5-turbo",
	"gpt-4",
	"gpt-3.5-turbo-16k",
	"gpt-3.5-turbo-0613",
	"ft:gpt-3.5-turbo-0613:nyxb::8HxpgD3D",
	"gpt-4-1106-preview",
}

// apiKeyLength is the length of a standard OpenAI secret key. Keys for
// custom base paths (proxies, compatible servers) are not length-checked.
const apiKeyLength = 51

var validators = map[Key]Validator{
	KeyAPIKey:      validateAPIKey,
	KeyMaxTokens:   validateMaxTokens,
	KeyBasePath:    validateBasePath,
	KeyDescription: validateDescription,
	KeyModel:       validateModel,
	KeyLanguage:    validateLanguage,
	KeyPlaceholder: validatePlaceholder,
}

// Validate runs the validator registered for key.
func Validate(key Key, value any, cfg Config) (any, error) {
	v, ok := validators[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKey, key)
	}
	return v(value, cfg)
}

func invalid(key Key, format string, args ...any) error {
	return &ValidationError{Key: key, Msg: fmt.Sprintf(format, args...)}
}

func validateAPIKey(value any, cfg Config) (any, error) {
	s, _ := value.(string)
	if s == "" {
		return nil, invalid(KeyAPIKey, "Cannot be empty")
	}
	if !strings.HasPrefix(s, "sk-") {
		return nil, invalid(KeyAPIKey, `Must start with "sk-"`)
	}
	if cfg.BasePath() == "" && len(s) != apiKeyLength {
		return nil, invalid(KeyAPIKey, "Must be %d characters long", apiKeyLength)
	}
	return s, nil
}

func validateMaxTokens(value any, _ Config) (any, error) {
	var n int64
	switch v := value.(type) {
	case string:
		parsed, ok := parseLeadingInt(v)
		if !ok {
			return nil, invalid(KeyMaxTokens, "Must be a number")
		}
		n = parsed
	case int:
		n = int64(v)
	case int64:
		n = v
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return nil, invalid(KeyMaxTokens, "Must be a whole number")
		}
		n = int64(v)
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return nil, invalid(KeyMaxTokens, "Must be a whole number")
		}
		n = i
	default:
		return nil, invalid(KeyMaxTokens, "Must be a number")
	}
	if n <= 0 {
		return nil, invalid(KeyMaxTokens, "Must be a positive number")
	}
	return int(n), nil
}

// parseLeadingInt parses the integer prefix of s the way a lenient
// string-to-int conversion does: leading whitespace and sign are accepted and
// trailing non-digits are ignored ("512 tokens" is 512).
func parseLeadingInt(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func validateBasePath(value any, _ Config) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, invalid(KeyBasePath, "Must be string")
	}
	return s, nil
}

func validateDescription(value any, _ Config) (any, error) {
	b, ok := value.(bool)
	if !ok {
		return nil, invalid(KeyDescription, "Must be true or false")
	}
	return b, nil
}

func validateModel(value any, _ Config) (any, error) {
	s, ok := value.(string)
	if !ok || !slices.Contains(SupportedModels, s) {
		return nil, invalid(KeyModel, "%v is not supported yet, use one of: %s", value, strings.Join(SupportedModels, ", "))
	}
	return s, nil
}

func validateLanguage(value any, _ Config) (any, error) {
	s, _ := value.(string)
	locale, ok := i18n.Resolve(s)
	if !ok {
		return nil, invalid(KeyLanguage, "%v is not supported yet", value)
	}
	return locale, nil
}

func validatePlaceholder(value any, _ Config) (any, error) {
	s, ok := value.(string)
	if !ok || !strings.HasPrefix(s, "$") {
		return nil, invalid(KeyPlaceholder, "%v must start with $, for example: '$msg'", value)
	}
	return s, nil
}

// parseValue interprets a raw command-line value as a JSON literal (number,
// boolean, quoted string, null). Anything that is not a single JSON literal
// is kept as the plain string.
func parseValue(raw string) any {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil || dec.More() {
		return raw
	}

	switch v := v.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return raw
	case map[string]any, []any:
		return raw
	default:
		return v
	}
}
