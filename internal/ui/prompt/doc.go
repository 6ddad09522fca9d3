// Package prompt provides interactive prompts on the terminal.
//
// Available prompts:
//   - [Confirm]: Yes/No confirmation prompt
package prompt
