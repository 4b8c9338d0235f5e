package errors

import (
	"context"
	"testing"

	"serviceability/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestCanceled_KeepsContextError(t *testing.T) {
	err := Canceled(errors.Wrap(context.Canceled, "lock merchant 3"))

	assert.ErrorIs(t, err, ErrRequestCanceled)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrInternalError)
	assert.False(t, IsRetryable(err))

	var appErr AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, StatusClientClosedRequest, appErr.HTTPCode())
	assert.Equal(t, "lock merchant 3: context canceled", appErr.Details())
}

func TestWithDetails_DropsCause(t *testing.T) {
	withCause := ErrRequestCanceled.WithCause(context.DeadlineExceeded)
	assert.ErrorIs(t, withCause, context.DeadlineExceeded)

	plain := withCause.WithDetails("retry later")
	assert.NotErrorIs(t, plain, context.DeadlineExceeded)
}
