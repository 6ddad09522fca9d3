// Package commitmsg turns a staged diff into a commit message.
//
// # Token Budget
//
// A request must fit the model context: the prompt, the diff and the reply
// share [ContextLimit] tokens. Diffs that do not fit are split per file, and
// files that still do not fit are split per hunk. Each chunk gets its own
// message and the messages are joined with blank lines.
//
// # Post-processing
//
//   - [ApplyTemplate]: wrap the message in a user template around a placeholder
//   - [AddIssueKey]: append a "Refs: KEY" trailer derived from the branch name
//   - [PrependToFile]: write the message in front of git's prepared message file
package commitmsg
