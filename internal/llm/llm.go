// Package llm defines the text-generation boundary of the service.
package llm

import "context"

// Generator produces text from a single prompt. Implementations make
// exactly one attempt per call; there is no retry, backoff, or circuit
// breaking at this layer or above it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
