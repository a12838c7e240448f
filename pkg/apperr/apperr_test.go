package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("end date must be after start date")))
	assert.Equal(t, KindConflict, KindOf(Conflict("already approved")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("submission not found")))
	assert.Equal(t, KindAuthorization, KindOf(Authorization("outside your scope")))
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("raising flag: %w", Conflict("submission already has an active flag"))
	assert.True(t, IsConflict(err))
	assert.False(t, IsNotFound(err))
}

func TestMessagesJoined(t *testing.T) {
	err := Validation("content is required", "content must be at most 2000 characters")
	assert.Equal(t, "content is required; content must be at most 2000 characters", err.Error())
}

func TestEmptyMessages(t *testing.T) {
	assert.Equal(t, "operation failed", Conflict().Error())
}
