package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"

	"github.com/nyxb/conmitmoji/internal/commitmsg"
	"github.com/nyxb/conmitmoji/internal/config"
	"github.com/nyxb/conmitmoji/internal/git"
	"github.com/nyxb/conmitmoji/internal/ignore"
	"github.com/nyxb/conmitmoji/internal/llm"
	"github.com/nyxb/conmitmoji/internal/log"
	"github.com/nyxb/conmitmoji/internal/output"
	"github.com/nyxb/conmitmoji/internal/prompts"
	"github.com/nyxb/conmitmoji/internal/ui/progress"
	"github.com/nyxb/conmitmoji/internal/ui/prompt"
	"github.com/nyxb/conmitmoji/internal/ui/styles"
)

type commitOptions struct {
	all    bool
	yes    bool
	copy   bool
	dryRun bool
}

var commitFlags commitOptions

// errNoChanges is returned by --all when the working tree is clean.
var errNoChanges = errors.New("no changes detected, write some code and run `moji` again")

// runCommit generates a message for the staged changes in dir and commits
// it. args form the optional message template.
func runCommit(ctx context.Context, dir string, opts commitOptions, args []string) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	if err := git.AssertRepo(ctx, dir); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	l.Println(styles.Intro("moji"))

	if opts.all {
		changed, err := git.ChangedFiles(ctx, dir)
		if err != nil {
			return err
		}
		if len(changed) == 0 {
			return errNoChanges
		}
		if err := git.Add(ctx, dir, changed); err != nil {
			return err
		}
	}

	files, err := stagedFiles(ctx, dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: stage them with `git add` or run `moji --all`", commitmsg.ErrNoStagedFiles)
	}

	l.Println(styles.Done(fmt.Sprintf("%d staged %s:", len(files), plural(len(files), "file", "files"))))
	l.Println(styles.FileList(files))
	if excluded := git.ExcludedFromDiff(files); len(excluded) > 0 {
		l.Println(styles.Note("Skipped in the diff (lock files and images):"))
		l.Println(styles.FileList(excluded))
	}

	diff, err := stagedDiff(ctx, dir, files)
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

	msg = commitmsg.ApplyTemplate(strings.Join(args, " "), cfg.Placeholder(), msg)
	msg = commitmsg.AddIssueKey(msg, issueKey(ctx, dir))

	if opts.dryRun {
		out.Message(msg)
		return nil
	}

	l.Println("Commit message:")
	l.Println(styles.Message(msg))

	if opts.copy {
		if err := clipboard.WriteAll(msg); err != nil {
			l.Println(styles.Note(fmt.Sprintf("Could not copy to clipboard: %v", err)))
		} else {
			l.Println(styles.Done("Copied to clipboard"))
		}
	}

	if !opts.yes {
		if !isInteractive() {
			return errors.New("cannot ask for confirmation without a terminal, pass --yes to commit or --dry-run to print")
		}
		res, err := prompt.Confirm(ctx, "Confirm the commit message?", true)
		if err != nil {
			return err
		}
		if res.Cancelled || !res.Confirmed {
			l.Println(styles.Note("Commit cancelled"))
			return nil
		}
	}

	if err := git.Commit(ctx, dir, msg); err != nil {
		return err
	}
	l.Println(styles.Done("Successfully committed"))
	return nil
}

// stagedFiles lists the staged files of dir that .conmitmojiignore does not
// exclude.
func stagedFiles(ctx context.Context, dir string) ([]string, error) {
	files, err := git.StagedFiles(ctx, dir)
	if err != nil {
		return nil, err
	}
	matcher, err := ignore.Load(dir)
	if err != nil {
		return nil, err
	}
	return matcher.Filter(files), nil
}

// stagedDiff returns the diff of files, failing with ErrNoStagedFiles when
// only lock files and images are staged.
func stagedDiff(ctx context.Context, dir string, files []string) (string, error) {
	diff, err := git.StagedDiff(ctx, dir, files)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(diff) == "" {
		return "", fmt.Errorf("%w: only lock files and images are staged", commitmsg.ErrNoStagedFiles)
	}
	return diff, nil
}

func loadConfig() (config.Config, error) {
	store, err := config.NewStore()
	if err != nil {
		return nil, err
	}
	return store.Load()
}

func newGenerator(cfg config.Config) (*commitmsg.Generator, error) {
	client, err := llm.NewOpenAI(llm.Options{
		APIKey:    cfg.APIKey(),
		BaseURL:   cfg.BasePath(),
		Model:     cfg.Model(),
		MaxTokens: cfg.MaxTokens(),
	})
	if err != nil {
		return nil, err
	}
	return &commitmsg.Generator{
		Client: client,
		Prompt: prompts.Options{
			Locale:      cfg.Language(),
			Description: cfg.Description(),
		},
		MaxTokens: cfg.MaxTokens(),
	}, nil
}

// generate runs gen with a spinner on interactive terminals.
func generate(ctx context.Context, gen *commitmsg.Generator, diff string) (string, error) {
	const title = "Generating the commit message"
	l := log.FromContext(ctx)

	if quiet || !isatty.IsTerminal(os.Stderr.Fd()) {
		return gen.Generate(ctx, diff)
	}

	spin := progress.NewSpinner(title)
	gen.Progress = func(current, total int) {
		spin.UpdateMessage(fmt.Sprintf("%s (%d/%d)", title, current, total))
	}
	spin.Start()
	msg, err := gen.Generate(ctx, diff)
	spin.Stop()
	if err != nil {
		return "", err
	}
	l.Println(styles.Done("Commit message generated"))
	return msg, nil
}

// issueKey returns the tracker key at the end of the current branch name.
func issueKey(ctx context.Context, dir string) string {
	branch, err := git.CurrentBranch(ctx, dir)
	if err != nil {
		log.FromContext(ctx).Debug("no current branch", "err", err)
		return ""
	}
	return git.IssueKeyFromBranch(branch)
}

// isInteractive reports whether a user can answer prompts.
func isInteractive() bool {
	isTTY := func(f *os.File) bool {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return isTTY(os.Stdin) && isTTY(os.Stderr)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
