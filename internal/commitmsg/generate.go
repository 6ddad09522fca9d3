package commitmsg

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nyxb/conmitmoji/internal/llm"
	"github.com/nyxb/conmitmoji/internal/log"
	"github.com/nyxb/conmitmoji/internal/prompts"
)

// ContextLimit is the token window shared by prompt, diff and reply.
const ContextLimit = 4096

var (
	// ErrNoStagedFiles is returned when there is nothing to describe.
	ErrNoStagedFiles = errors.New("no files are staged")

	// ErrEmptyMessage is returned when the model replies with nothing.
	ErrEmptyMessage = errors.New("model returned an empty commit message")
)

// Generator writes commit messages with an LLM.
type Generator struct {
	Client llm.Client
	Prompt prompts.Options

	// MaxTokens is the reply budget. Zero means llm.DefaultMaxTokens.
	MaxTokens int

	// Progress, when set, is called before each request of a split diff.
	Progress func(current, total int)
}

// Generate returns a commit message for diff.
func (g *Generator) Generate(ctx context.Context, diff string) (string, error) {
	if strings.TrimSpace(diff) == "" {
		return "", ErrNoStagedFiles
	}

	budget, err := g.diffBudget()
	if err != nil {
		return "", err
	}

	chunks := []string{diff}
	if EstimateTokens(diff) > budget {
		chunks = SplitDiff(diff, budget)
		log.FromContext(ctx).Debug("diff exceeds token budget", "budget", budget, "chunks", len(chunks))
	}

	messages := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		if g.Progress != nil && len(chunks) > 1 {
			g.Progress(i+1, len(chunks))
		}
		msg, err := g.Client.Complete(ctx, prompts.Commit(g.Prompt, chunk))
		if err != nil {
			return "", err
		}
		if msg = strings.TrimSpace(msg); msg != "" {
			messages = append(messages, msg)
		}
	}
	if len(messages) == 0 {
		return "", ErrEmptyMessage
	}
	return strings.Join(messages, "\n\n"), nil
}

// diffBudget returns how many tokens a diff may use in one request.
func (g *Generator) diffBudget() (int, error) {
	maxTokens := g.MaxTokens
	if maxTokens <= 0 {
		maxTokens = llm.DefaultMaxTokens
	}

	promptTokens := 0
	for _, m := range prompts.Commit(g.Prompt, "") {
		promptTokens += EstimateTokens(m.Content)
	}

	budget := ContextLimit - maxTokens - promptTokens
	if budget <= 0 {
		return 0, fmt.Errorf("MOJI_OPENAI_MAX_TOKENS=%d leaves no room for the diff in a %d token context", maxTokens, ContextLimit)
	}
	return budget, nil
}

// EstimateTokens approximates the token count of s at four bytes per token,
// rounded up.
func EstimateTokens(s string) int {
	return (len(s) + 3) / 4
}
