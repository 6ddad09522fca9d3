//go:build integration

package main

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/nyxb/conmitmoji/internal/config"
)

// TestConfigSetGet tests storing values and reading them back.
//
// Scenario: User runs `moji config set MOJI_LANGUAGE=deutsch MOJI_OPENAI_MAX_TOKENS=800`
// Expected: `moji config get` prints the validated values
func TestConfigSetGet(t *testing.T) {
	isolateConfig(t)
	ctx, out, _ := testContext(t)

	cmd := newConfigCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"set", "MOJI_LANGUAGE=deutsch", "MOJI_OPENAI_MAX_TOKENS=800"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config set failed: %v", err)
	}

	cmd = newConfigCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"get", "MOJI_LANGUAGE", "MOJI_OPENAI_MAX_TOKENS", "MOJI_OPENAI_BASE_PATH"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config get failed: %v", err)
	}

	want := "MOJI_LANGUAGE=de\nMOJI_OPENAI_MAX_TOKENS=800\nMOJI_OPENAI_BASE_PATH=undefined\n"
	if got := out.String(); got != want {
		t.Errorf("config get output = %q, want %q", got, want)
	}
}

// TestConfigGet_All tests printing every key.
//
// Scenario: User runs `moji config get` without a config file
// Expected: All keys are printed with their defaults
func TestConfigGet_All(t *testing.T) {
	isolateConfig(t)
	ctx, out, _ := testContext(t)

	cmd := newConfigCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"get"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config get failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(config.Keys) {
		t.Fatalf("config get printed %d lines, want %d:\n%s", len(lines), len(config.Keys), out.String())
	}
	for _, want := range []string{
		"MOJI_MODEL=" + config.DefaultModel,
		"MOJI_LANGUAGE=en",
		"MOJI_MESSAGE_TEMPLATE_PLACEHOLDER=$msg",
		"MOJI_DESCRIPTION=false",
		"MOJI_OPENAI_API_KEY=undefined",
	} {
		if !strings.Contains(out.String(), want+"\n") {
			t.Errorf("config get output missing %q:\n%s", want, out.String())
		}
	}
}

// TestConfigSet_InvalidWritesNothing tests that a rejected value leaves the
// config file untouched.
//
// Scenario: User runs `moji config set MOJI_MODEL=gpt-4 MOJI_OPENAI_API_KEY=abc`
// Expected: Validation error, no config file is created
func TestConfigSet_InvalidWritesNothing(t *testing.T) {
	path := isolateConfig(t)
	ctx, _, _ := testContext(t)

	cmd := newConfigCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"set", "MOJI_MODEL=gpt-4", "MOJI_OPENAI_API_KEY=abc"})

	err := cmd.Execute()
	var verr *config.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("config set error = %v, want ValidationError", err)
	}
	if verr.Key != config.KeyAPIKey {
		t.Errorf("ValidationError.Key = %s, want %s", verr.Key, config.KeyAPIKey)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("config file should not exist after a failed set, stat err = %v", err)
	}
}

// TestConfig_UnknownKey tests unknown keys for both get and set.
//
// Scenario: User runs `moji config get model` / `moji config set FOO=bar`
// Expected: ErrUnsupportedKey with a suggestion for the typo
func TestConfig_UnknownKey(t *testing.T) {
	isolateConfig(t)
	ctx, _, _ := testContext(t)

	tests := []struct {
		name     string
		args     []string
		wantHint string
	}{
		{"get lowercase name", []string{"get", "model"}, "MOJI_MODEL"},
		{"get partial name", []string{"get", "LANG"}, "MOJI_LANGUAGE"},
		{"set unknown", []string{"set", "FOO=bar"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newConfigCmd()
			cmd.SetContext(ctx)
			cmd.SetArgs(tt.args)
			err := cmd.Execute()
			if !errors.Is(err, config.ErrUnsupportedKey) {
				t.Fatalf("error = %v, want ErrUnsupportedKey", err)
			}
			if tt.wantHint != "" && !strings.Contains(err.Error(), tt.wantHint) {
				t.Errorf("error %q should suggest %s", err, tt.wantHint)
			}
		})
	}
}

// TestConfigSet_MissingEquals tests argument parsing.
//
// Scenario: User runs `moji config set MOJI_MODEL`
// Expected: Error explaining the KEY=value format
func TestConfigSet_MissingEquals(t *testing.T) {
	isolateConfig(t)
	ctx, _, _ := testContext(t)

	cmd := newConfigCmd()
	cmd.SetContext(ctx)
	cmd.SetArgs([]string{"set", "MOJI_MODEL"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("config set without '=' should fail")
	}
}
