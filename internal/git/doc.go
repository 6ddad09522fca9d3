// Package git provides git operations via shell commands.
//
// All operations call the git CLI through [github.com/nyxb/conmitmoji/internal/cmd]
// rather than a Go git library, so hooks paths, worktrees and user config
// behave exactly as they do for the user's own git. Every function takes a
// directory; an empty directory means the process working directory.
//
// # Repository Queries
//
//   - [AssertRepo], [IsInsideRepo]: repository detection
//   - [TopLevel], [CommonDir]: working tree root and shared git directory
//   - [CoreHooksPath]: the core.hooksPath setting
//   - [CurrentBranch], [IssueKeyFromBranch]: branch name and tracker key
//
// # Changes
//
//   - [StagedFiles], [ChangedFiles]: what is staged, what could be staged
//   - [StagedDiff]: staged diff without lock files
//   - [Add], [Commit]: stage files and record the commit
package git
