package service

import (
	"context"
	"errors"
)

// ErrEmptyDocument is returned when a question arrives before any
// answerable document text is available.
var ErrEmptyDocument = errors.New("no document uploaded")

type QuestionService interface {
	Ask(ctx context.Context, message string) (string, error)
}
