package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundFormatsIdentifier(t *testing.T) {
	err := NotFound(ML201, "42")

	assert.Equal(t, "Customer [42] not exist", err.Error())
	assert.Equal(t, "ML-201", err.Code)
	assert.Equal(t, KindNotFound, err.Kind)
}

func TestMessageWithoutArgsIsKeptVerbatim(t *testing.T) {
	assert.Equal(t, "Unauthorized", Unauthorized().Error())
	assert.Equal(t, "Invalid request", Validation(ML001).Error())
}

func TestIsKindThroughWrapping(t *testing.T) {
	base := UpdateNotAllowed(ML102, "CANCELED")
	wrapped := fmt.Errorf("update book: %w", base)

	assert.True(t, IsKind(wrapped, KindUpdateNotAllowed))
	assert.False(t, IsNotFound(wrapped))
	assert.False(t, IsKind(errors.New("plain"), KindUpdateNotAllowed))

	got, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "Cannot update Book with status [CANCELED].", got.Message)
}

func TestWrapKeepsClassification(t *testing.T) {
	cause := errors.New("token expired")
	err := Unauthorized().Wrap(cause)

	assert.ErrorIs(t, err, cause)
	assert.True(t, IsKind(err, KindUnauthorized))
	assert.Equal(t, "Unauthorized: token expired", err.Error())
}
