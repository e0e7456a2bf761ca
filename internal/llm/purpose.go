package llm

import "context"

// Purpose labels a model call in the event log.
type Purpose string

const (
	PurposeExplain Purpose = "explain"
	PurposeQuiz    Purpose = "quiz"
	PurposeChat    Purpose = "chat"
	PurposeUnknown Purpose = "unknown"
)

type purposeKey struct{}

// WithPurpose tags ctx so the logging decorator can record why a call was made.
func WithPurpose(ctx context.Context, p Purpose) context.Context {
	return context.WithValue(ctx, purposeKey{}, p)
}

// PurposeFrom returns the purpose attached to ctx, or PurposeUnknown.
func PurposeFrom(ctx context.Context) Purpose {
	if p, ok := ctx.Value(purposeKey{}).(Purpose); ok {
		return p
	}
	return PurposeUnknown
}
