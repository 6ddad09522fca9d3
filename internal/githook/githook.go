// Package githook installs and removes moji as the repository's
// prepare-commit-msg hook.
//
// The hook is a symlink to the moji executable. When git runs it, moji sees
// its own name as the hook name and switches to the hook flow (see
// [IsHookInvocation]). A hook file that is not our symlink is never
// overwritten or removed.
package githook

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nyxb/conmitmoji/internal/git"
	"github.com/nyxb/conmitmoji/internal/log"
)

// HookName is the git hook moji binds to.
const HookName = "prepare-commit-msg"

var (
	// ErrForeignHook is returned by Set when another hook already occupies
	// the hook path.
	ErrForeignHook = errors.New("different " + HookName + " hook is already set, remove it before setting moji as the hook")

	// ErrNotGitRepo is returned when the manager's directory is not inside
	// a git repository.
	ErrNotGitRepo = errors.New("not a git repository")
)

// State describes what currently occupies the hook path.
type State int

const (
	StateNone    State = iota // nothing at the hook path
	StateOurs                 // symlink resolving to the moji executable
	StateForeign              // anything else, including dangling symlinks
)

func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateOurs:
		return "ours"
	case StateForeign:
		return "foreign"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Result reports what Set or Unset did.
type Result int

const (
	ResultInstalled       Result = iota // symlink created
	ResultAlreadySet                    // our symlink was already in place
	ResultRemoved                       // our symlink was removed
	ResultNothingToRemove               // no hook was present
	ResultForeignKept                   // a foreign hook was present and left alone
)

// Message returns the user-facing sentence for r.
func (r Result) Message() string {
	switch r {
	case ResultInstalled:
		return "Hook set"
	case ResultAlreadySet:
		return "moji is already set as '" + HookName + "'"
	case ResultRemoved:
		return "Hook is removed"
	case ResultNothingToRemove:
		return "moji wasn't previously set as '" + HookName + "' hook, nothing to remove"
	case ResultForeignKept:
		return "moji wasn't previously set as '" + HookName + "' hook, but a different hook was. If you want to remove it, do it manually"
	default:
		return ""
	}
}

// IsHookInvocation reports whether the process was started through the hook
// symlink, judging by the program name in arg0.
func IsHookInvocation(arg0 string) bool {
	return filepath.Base(arg0) == HookName
}

// Manager binds the moji executable to the hook of the repository
// containing Dir.
type Manager struct {
	// Dir is any directory inside the repository. Empty means the working
	// directory.
	Dir string

	// Executable is the path the hook symlink points to.
	Executable string
}

// NewManager returns a Manager for dir pointing at the running executable.
func NewManager(dir string) (*Manager, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return &Manager{Dir: dir, Executable: exe}, nil
}

// Path returns the hook file location. core.hooksPath wins when set
// (relative values are taken from the working tree root), then the common
// git directory's hooks folder, then .git/hooks.
func (m *Manager) Path(ctx context.Context) (string, error) {
	l := log.FromContext(ctx)

	if hooksPath, err := git.CoreHooksPath(ctx, m.Dir); err == nil {
		if !filepath.IsAbs(hooksPath) {
			top, err := git.TopLevel(ctx, m.Dir)
			if err != nil {
				return "", fmt.Errorf("resolve hook path: %w", err)
			}
			hooksPath = filepath.Join(top, hooksPath)
		}
		l.Debug("using core.hooksPath", "path", hooksPath)
		return filepath.Join(hooksPath, HookName), nil
	}

	if common, err := git.CommonDir(ctx, m.Dir); err == nil {
		return filepath.Join(common, "hooks", HookName), nil
	}

	return filepath.Join(m.Dir, ".git", "hooks", HookName), nil
}

// State inspects hookPath. Identity is decided on fully resolved paths so
// symlinked temp dirs and installs behind symlinks compare equal.
func (m *Manager) State(hookPath string) (State, error) {
	if _, err := os.Lstat(hookPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return StateNone, nil
		}
		return StateNone, fmt.Errorf("inspect hook: %w", err)
	}

	target, err := filepath.EvalSymlinks(hookPath)
	if err != nil {
		return StateForeign, nil
	}
	exe := m.Executable
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	if target == exe {
		return StateOurs, nil
	}
	return StateForeign, nil
}

// Set installs the hook symlink. Installing twice is a no-op.
func (m *Manager) Set(ctx context.Context) (Result, error) {
	hookPath, err := m.prepare(ctx)
	if err != nil {
		return 0, err
	}

	state, err := m.State(hookPath)
	if err != nil {
		return 0, err
	}
	switch state {
	case StateOurs:
		return ResultAlreadySet, nil
	case StateForeign:
		return 0, fmt.Errorf("%w: %s", ErrForeignHook, hookPath)
	}

	if err := os.MkdirAll(filepath.Dir(hookPath), 0755); err != nil {
		return 0, fmt.Errorf("create hooks directory: %w", err)
	}
	if err := os.Symlink(m.Executable, hookPath); err != nil {
		return 0, fmt.Errorf("create hook symlink: %w", err)
	}
	if err := ensureExecutable(m.Executable); err != nil {
		return 0, err
	}

	log.FromContext(ctx).Debug("hook installed", "path", hookPath, "target", m.Executable)
	return ResultInstalled, nil
}

// Unset removes the hook symlink if it is ours. A foreign hook is kept.
func (m *Manager) Unset(ctx context.Context) (Result, error) {
	hookPath, err := m.prepare(ctx)
	if err != nil {
		return 0, err
	}

	state, err := m.State(hookPath)
	if err != nil {
		return 0, err
	}
	switch state {
	case StateNone:
		return ResultNothingToRemove, nil
	case StateForeign:
		return ResultForeignKept, nil
	}

	if err := os.Remove(hookPath); err != nil {
		return 0, fmt.Errorf("remove hook: %w", err)
	}
	log.FromContext(ctx).Debug("hook removed", "path", hookPath)
	return ResultRemoved, nil
}

func (m *Manager) prepare(ctx context.Context) (string, error) {
	if err := git.AssertRepo(ctx, m.Dir); err != nil {
		if errors.Is(err, git.ErrNotRepo) {
			return "", ErrNotGitRepo
		}
		return "", err
	}
	hookPath, err := m.Path(ctx)
	if err != nil {
		return "", err
	}
	return hookPath, nil
}

// ensureExecutable adds exec bits to path when they are missing. Binaries
// that are already executable are not touched, so read-only installs work.
func ensureExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat executable: %w", err)
	}
	if info.Mode().Perm()&0111 == 0111 {
		return nil
	}
	if err := os.Chmod(path, info.Mode().Perm()|0755); err != nil {
		return fmt.Errorf("make hook executable: %w", err)
	}
	return nil
}
