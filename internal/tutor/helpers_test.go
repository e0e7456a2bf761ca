package tutor

import (
	"context"

	"github.com/abhisek/cloudquest/internal/store"
)

type purposeRecorder struct {
	purposes []string
}

func (r *purposeRecorder) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.purposes = append(r.purposes, data.Purpose)
	return nil
}
