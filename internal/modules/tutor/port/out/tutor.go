package out

import "context"

// Generator sends one question to a language model and returns its text.
// An empty string means the model produced nothing.
type Generator interface {
	Generate(ctx context.Context, systemInstruction, question string) (string, error)
}
