package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/nyxb/conmitmoji/internal/config"
	"github.com/nyxb/conmitmoji/internal/git"
	"github.com/nyxb/conmitmoji/internal/log"
	"github.com/nyxb/conmitmoji/internal/output"
	"github.com/nyxb/conmitmoji/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Shared state injected into commands
	workDir string

	// errOut is stderr wrapped to match the terminal's color support.
	errOut io.Writer = os.Stderr
)

// Command group IDs for organizing help output
const (
	GroupSetup = "setup"
)

// rootCmd generates a commit message for the staged changes and commits.
var rootCmd = &cobra.Command{
	Use:   "moji [template words...]",
	Short: "Generate emoji commit messages for your staged changes with AI",
	Long: `moji writes Conventional Emoji Commit messages for your staged changes.

It sends the staged diff to an OpenAI-compatible model, shows the proposed
message and commits it after you confirm.

Any arguments form a message template. If the template contains the
placeholder (MOJI_MESSAGE_TEMPLATE_PLACEHOLDER, default $msg), the generated
message is inserted there:

  moji '$msg #205'`,
	Example: `  moji                 # Generate and commit staged changes
  moji -a              # Stage all changes first
  moji -y              # Commit without confirmation
  moji --dry-run       # Print the message, don't commit
  moji 'WIP: $msg'     # Wrap the message in a template`,
	Args:                       cobra.ArbitraryArgs,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Flags are parsed now, so the logger sees -v/-q.
		ctx := log.WithLogger(cmd.Context(), log.New(errOut, verbose, quiet))
		cmd.SetContext(ctx)

		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}

		if err := config.LoadDotEnv(".env"); err != nil {
			return err
		}

		return git.CheckGit()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommit(cmd.Context(), workDir, commitFlags, args)
	},
}

// Execute runs the CLI with args and exits non-zero on failure.
func Execute(args []string) {
	errOut = colorprofile.NewWriter(os.Stderr, os.Environ())

	var err error
	workDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(errOut, "moji: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(errOut, styles.Failed(err.Error()))
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Generate flags
	rootCmd.Flags().BoolVarP(&commitFlags.all, "all", "a", false, "Stage all modified and untracked files first")
	rootCmd.Flags().BoolVarP(&commitFlags.yes, "yes", "y", false, "Commit without asking for confirmation")
	rootCmd.Flags().BoolVarP(&commitFlags.copy, "copy", "c", false, "Copy the message to the clipboard")
	rootCmd.Flags().BoolVarP(&commitFlags.dryRun, "dry-run", "n", false, "Print the message to stdout without committing")
	rootCmd.MarkFlagsMutuallyExclusive("yes", "dry-run")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupSetup, Title: "Setup Commands:"},
	)

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newHookCmd())
	rootCmd.AddCommand(newPrepareCommitMsgCmd())
}
