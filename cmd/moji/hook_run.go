package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nyxb/conmitmoji/internal/commitmsg"
	"github.com/nyxb/conmitmoji/internal/config"
	"github.com/nyxb/conmitmoji/internal/githook"
	"github.com/nyxb/conmitmoji/internal/log"
	"github.com/nyxb/conmitmoji/internal/ui/styles"
)

// newPrepareCommitMsgCmd is the entry point git reaches through the hook
// symlink: prepare-commit-msg <message-file> [<source> [<sha>]].
func newPrepareCommitMsgCmd() *cobra.Command {
	return &cobra.Command{
		Use:                githook.HookName + " <message-file> [source] [sha]",
		Short:              "Run as git's prepare-commit-msg hook",
		Hidden:             true,
		DisableFlagParsing: true,
		Args:               cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrepareCommitMsg(cmd.Context(), workDir, args)
		},
	}
}

func runPrepareCommitMsg(ctx context.Context, dir string, args []string) error {
	l := log.FromContext(ctx)

	if len(args) == 0 || args[0] == "" {
		return errors.New(`commit message file path is missing, this command is meant to be called from the "` + githook.HookName + `" git hook`)
	}
	msgFile := args[0]
	if !filepath.IsAbs(msgFile) && dir != "" {
		msgFile = filepath.Join(dir, msgFile)
	}

	// A source means the message already comes from -m, a template, a merge
	// or an amend; leave it alone.
	if len(args) > 1 && args[1] != "" {
		l.Debug("commit message provided, skipping", "source", args[1])
		return nil
	}

	files, err := stagedFiles(ctx, dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return nil
	}

	l.Println(styles.Intro("moji"))

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.APIKey() == "" {
		return fmt.Errorf("no %s set, run `moji config set %s=<key>`", config.KeyAPIKey, config.KeyAPIKey)
	}

	diff, err := stagedDiff(ctx, dir, files)
	if errors.Is(err, commitmsg.ErrNoStagedFiles) {
		return nil
	}
	if err != nil {
		return err
	}

	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}
	msg, err := generate(ctx, gen, diff)
	if err != nil {
		return err
	}
	msg = commitmsg.AddIssueKey(msg, issueKey(ctx, dir))

	return commitmsg.PrependToFile(msgFile, msg)
}
