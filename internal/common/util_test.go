package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte("s3cret")
	WipeByteArray(buf)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not wiped: %v", i, b)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

func TestValidationError_IsValidation(t *testing.T) {
	var err error = NewValidationError("Errors", map[string]string{"username": "User field is empty"})
	wrapped := fmt.Errorf("register: %w", err)

	assert.True(t, errors.Is(wrapped, ErrorValidation))
	assert.False(t, errors.Is(wrapped, ErrorNotFound))

	var ve *ValidationError
	assert.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, "Errors", ve.Error())
}

func TestValidationError_FirstField(t *testing.T) {
	ve := NewValidationError("Errors", map[string]string{
		"username": "User field is empty",
		"email":    "Email field is empty",
	})
	assert.Equal(t, "Email field is empty", ve.FirstField())

	assert.Equal(t, "Errors", NewValidationError("Errors", nil).FirstField())
}

func TestNotFoundVariants(t *testing.T) {
	assert.True(t, errors.Is(ErrQuestionNotFound, ErrorNotFound))
	assert.True(t, errors.Is(ErrResponseNotFound, ErrorNotFound))
	assert.Equal(t, "Question not found", ErrQuestionNotFound.Error())
	assert.Equal(t, "Response not found", ErrResponseNotFound.Error())
}
