package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/nyxb/conmitmoji/internal/storage"
)

// FileName is the name of the persisted config file in the home directory.
const FileName = ".conmitmoji"

// PathEnvVar overrides the location of the persisted config file.
const PathEnvVar = "MOJI_CONFIG_PATH"

// KeyValue is one "config set" assignment.
type KeyValue struct {
	Key   string
	Value string
}

// ParseKeyValue splits "KEY=value" at the first '='.
func ParseKeyValue(arg string) (KeyValue, error) {
	key, value, ok := strings.Cut(arg, "=")
	if !ok || key == "" {
		return KeyValue{}, fmt.Errorf("invalid assignment %q: expected KEY=value", arg)
	}
	return KeyValue{Key: key, Value: value}, nil
}

// Store reads and writes the persisted configuration file.
type Store struct {
	// Path is the config file location.
	Path string
	// Getenv looks up environment defaults. Defaults to os.Getenv.
	Getenv func(string) string
}

// DefaultPath returns $MOJI_CONFIG_PATH or ~/.conmitmoji.
func DefaultPath() (string, error) {
	if p := os.Getenv(PathEnvVar); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, FileName), nil
}

// NewStore returns a Store for the default config path.
func NewStore() (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return &Store{Path: path, Getenv: os.Getenv}, nil
}

func (s *Store) getenv(key string) string {
	if s.Getenv == nil {
		return os.Getenv(key)
	}
	return s.Getenv(key)
}

// Load resolves the effective configuration: environment defaults overlaid
// with the validated entries of the config file.
//
// Without a config file the environment defaults are returned unchanged.
// An unknown key or a value its validator rejects is an error; callers treat
// it as fatal since no command can run on an invalid configuration.
func (s *Store) Load() (Config, error) {
	defaults := FromEnv(s.getenv)

	stored, err := s.loadFile(defaults)
	if err != nil {
		return nil, err
	}

	cfg := defaults.Clone()
	for k, v := range stored {
		cfg[k] = v
	}
	return cfg, nil
}

// loadFile reads and validates the config file. Entries holding an unset
// marker ("null", "undefined", empty or false-y) are dropped without
// validation so the corresponding default applies.
func (s *Store) loadFile(defaults Config) (Config, error) {
	raw, err := s.readRaw()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return nil, err
	}

	// Validators see the raw file values on top of the defaults, so the
	// API key rule can tell whether a base path is configured.
	view := defaults.Clone()
	entries := make(Config, len(raw))
	for name, v := range raw {
		key, err := ParseKey(name)
		if err != nil {
			return nil, fmt.Errorf("%w; fix %s manually", err, s.Path)
		}
		if isUnset(v) {
			continue
		}
		entries[key] = v
		view[key] = v
	}

	validated := make(Config, len(entries))
	for _, key := range Keys {
		v, ok := entries[key]
		if !ok {
			continue
		}
		valid, err := Validate(key, v, view)
		if err != nil {
			return nil, err
		}
		validated[key] = valid
	}
	return validated, nil
}

// readRaw decodes the config file into untyped values. The file is TOML;
// files that do not parse as TOML are read as INI-style KEY=value lines,
// the format earlier releases wrote.
func (s *Store) readRaw() (map[string]any, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	_, tomlErr := toml.Decode(string(data), &raw)
	if tomlErr == nil {
		return raw, nil
	}

	legacy, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.Path, tomlErr)
	}
	raw = make(map[string]any, len(legacy))
	for k, v := range legacy {
		raw[k] = parseValue(v)
	}
	return raw, nil
}

// Set validates each assignment and rewrites the config file with the result.
//
// Every key is checked before anything is written: an unsupported key or an
// invalid value leaves the file untouched. Values are parsed as JSON
// literals when possible ("500", "true") and kept as strings otherwise.
// The file is rewritten in full; concurrent writers are not coordinated and
// the last one wins.
func (s *Store) Set(pairs []KeyValue) error {
	defaults := FromEnv(s.getenv)
	stored, err := s.loadFile(defaults)
	if err != nil {
		return err
	}

	effective := defaults.Clone()
	for k, v := range stored {
		effective[k] = v
	}

	for _, kv := range pairs {
		key, err := ParseKey(kv.Key)
		if err != nil {
			return err
		}
		valid, err := Validate(key, parseValue(kv.Value), effective)
		if err != nil {
			return err
		}
		stored[key] = valid
		effective[key] = valid
	}

	out := make(map[string]any, len(stored))
	for k, v := range stored {
		out[string(k)] = v
	}
	if err := storage.SaveTOML(s.Path, out); err != nil {
		return fmt.Errorf("write %s: %w", s.Path, err)
	}
	return nil
}
