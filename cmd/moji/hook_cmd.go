package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nyxb/conmitmoji/internal/githook"
	"github.com/nyxb/conmitmoji/internal/log"
	"github.com/nyxb/conmitmoji/internal/ui/styles"
)

func newHookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hook",
		Short:   "Install or remove moji as the prepare-commit-msg hook",
		GroupID: GroupSetup,
		Long: `Install or remove moji as the prepare-commit-msg git hook.

With the hook set, a plain 'git commit' opens the editor with a generated
message already filled in. The hook honours core.hooksPath. An existing
hook that is not moji is never overwritten or removed.`,
		Example: `  moji hook set     # Install the hook in the current repository
  moji hook unset   # Remove it again`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set",
		Short: "Install the hook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHookSet(cmd.Context(), workDir, "")
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "unset",
		Short: "Remove the hook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHookUnset(cmd.Context(), workDir, "")
		},
	})

	return cmd
}

// newHookManager returns a manager for dir. An empty executable means the
// running binary.
func newHookManager(dir, executable string) (*githook.Manager, error) {
	if executable != "" {
		return &githook.Manager{Dir: dir, Executable: executable}, nil
	}
	return githook.NewManager(dir)
}

func runHookSet(ctx context.Context, dir, executable string) error {
	l := log.FromContext(ctx)

	m, err := newHookManager(dir, executable)
	if err != nil {
		return err
	}
	if path, err := m.Path(ctx); err == nil {
		l.Println(styles.Intro(fmt.Sprintf("setting moji as '%s' hook at %s", githook.HookName, path)))
	}

	res, err := m.Set(ctx)
	if err != nil {
		return err
	}
	if res == githook.ResultAlreadySet {
		l.Println(styles.Note(res.Message()))
		return nil
	}
	l.Println(styles.Done(res.Message()))
	return nil
}

func runHookUnset(ctx context.Context, dir, executable string) error {
	l := log.FromContext(ctx)

	m, err := newHookManager(dir, executable)
	if err != nil {
		return err
	}
	if path, err := m.Path(ctx); err == nil {
		l.Println(styles.Intro(fmt.Sprintf("unsetting moji as '%s' hook from %s", githook.HookName, path)))
	}

	res, err := m.Unset(ctx)
	if err != nil {
		return err
	}
	if res == githook.ResultRemoved {
		l.Println(styles.Done(res.Message()))
		return nil
	}
	l.Println(styles.Note(res.Message()))
	return nil
}
