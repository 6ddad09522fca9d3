package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/nyxb/conmitmoji/internal/githook"
)

// Version information - set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	args := os.Args[1:]
	// Installed as a hook, git runs us as .git/hooks/prepare-commit-msg.
	if githook.IsHookInvocation(os.Args[0]) {
		args = append([]string{githook.HookName}, args...)
	}
	Execute(args)
}

// versionString returns the version string.
func versionString() string {
	return fmt.Sprintf("moji %s (%s, %s, %s)", version, commit[:min(7, len(commit))], date, runtime.Version())
}
