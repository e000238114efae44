// Package llm abstracts the external completion service behind a single
// interface. Both implementations sample at temperature 0 and request one
// completion; callers make exactly one attempt and recover by falling back
// to the rule-based extractors, so nothing here retries.
package llm

import "context"

// Completer produces a single deterministic completion for a prompt.
// Implementations fail with an error on transport, auth, or rate-limit
// problems; they never retry internally.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
