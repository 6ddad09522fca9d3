// Package config resolves, validates and persists moji's configuration.
//
// Configuration is a closed set of keys ([Keys]). Values come from two
// layers: environment variables provide defaults, and the persisted file
// (~/.conmitmoji, or $MOJI_CONFIG_PATH) overrides them.
//
// # Key Settings
//
//   - MOJI_OPENAI_API_KEY: "sk-" key, 51 characters unless a base path is set
//   - MOJI_OPENAI_MAX_TOKENS: positive response token limit
//   - MOJI_OPENAI_BASE_PATH: custom OpenAI-compatible endpoint
//   - MOJI_DESCRIPTION: add a short description below the message (bool)
//   - MOJI_MODEL: one of [SupportedModels] (default "gpt-4-1106-preview")
//   - MOJI_LANGUAGE: message language, stored as the resolved locale (default "en")
//   - MOJI_MESSAGE_TEMPLATE_PLACEHOLDER: placeholder replaced in message templates (default "$msg")
//
// # File Format
//
// The file is flat TOML:
//
//	MOJI_MODEL = "gpt-4"
//	MOJI_DESCRIPTION = true
//	MOJI_OPENAI_MAX_TOKENS = 500
//
// INI-style files without quoting (MOJI_MODEL=gpt-4) are still read.
// [Store.Set] always rewrites the file as TOML.
//
// # Validation
//
// Every key has a [Validator] in a dispatch table. Validators receive the
// full configuration so cross-key rules (the API key length check depends on
// MOJI_OPENAI_BASE_PATH) can be expressed. Failures are [*ValidationError]
// values rendering as "KEY: reason".
package config
