package main

import (
	"github.com/spf13/cobra"

	"github.com/nyxb/conmitmoji/internal/config"
	"github.com/nyxb/conmitmoji/internal/log"
	"github.com/nyxb/conmitmoji/internal/output"
	"github.com/nyxb/conmitmoji/internal/ui/styles"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Read and write moji configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupSetup,
		Long: `Read and write moji configuration.

Values are stored in ~/.conmitmoji (override with MOJI_CONFIG_PATH).
Environment variables of the same name provide the defaults.

Keys:
  MOJI_OPENAI_API_KEY                 OpenAI API key (sk-...)
  MOJI_OPENAI_MAX_TOKENS              Reply token limit
  MOJI_OPENAI_BASE_PATH               Alternative OpenAI-compatible endpoint
  MOJI_DESCRIPTION                    Add a short description (true/false)
  MOJI_MODEL                          Model name
  MOJI_LANGUAGE                       Commit message language
  MOJI_MESSAGE_TEMPLATE_PLACEHOLDER   Template placeholder (default $msg)`,
		Example: `  moji config set MOJI_OPENAI_API_KEY=sk-...
  moji config set MOJI_LANGUAGE=de MOJI_DESCRIPTION=true
  moji config get MOJI_MODEL MOJI_LANGUAGE
  moji config get`,
	}

	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())

	return cmd
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [KEY...]",
		Short: "Print configuration values",
		Long: `Print configuration values as KEY=value lines.

Without arguments all keys are printed. Unset keys print as KEY=undefined.`,
		ValidArgs: keyNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := config.Keys
			if len(args) > 0 {
				keys = make([]config.Key, 0, len(args))
				for _, arg := range args {
					key, err := config.ParseKey(arg)
					if err != nil {
						return err
					}
					keys = append(keys, key)
				}
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			out := output.FromContext(cmd.Context())
			for _, key := range keys {
				out.KeyValue(string(key), cfg.Format(key))
			}
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY=value...",
		Short: "Validate and store configuration values",
		Long: `Validate and store configuration values.

Values are read as JSON literals where possible (numbers, true/false), and
as plain strings otherwise. Nothing is written unless every value is valid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs := make([]config.KeyValue, 0, len(args))
			for _, arg := range args {
				kv, err := config.ParseKeyValue(arg)
				if err != nil {
					return err
				}
				pairs = append(pairs, kv)
			}

			store, err := config.NewStore()
			if err != nil {
				return err
			}
			if err := store.Set(pairs); err != nil {
				return err
			}

			log.FromContext(cmd.Context()).Println(styles.Done("Config successfully set"))
			return nil
		},
	}
}

func keyNames() []string {
	names := make([]string, len(config.Keys))
	for i, k := range config.Keys {
		names[i] = string(k)
	}
	return names
}
