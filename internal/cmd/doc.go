// Package cmd provides helpers for executing external commands with proper error handling.
//
// Commands run through [RunContext] and [OutputContext] capture stderr and use
// it as the error message, so a failing git invocation surfaces git's own
// explanation to the user. Both helpers log the command line through the
// context logger when verbose output is enabled.
//
// # Usage
//
//	out, err := cmd.OutputContext(ctx, repoDir, "git", "diff", "--staged")
//	if err != nil {
//	    // err contains git's stderr if available
//	    return fmt.Errorf("git diff: %w", err)
//	}
//
// # Design Notes
//
// moji shells out to the git CLI rather than linking a git library. This keeps
// behavior identical to what the user's git does (hooks path, aliases,
// credential helpers, attributes).
package cmd
