package graph

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/qaboard/internal/common"
	"github.com/dmitrijs2005/qaboard/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToAPIError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantMsg  string
	}{
		{"validation", common.NewValidationError("Errors", map[string]string{"username": "User field is empty"}), CodeBadUserInput, "Errors"},
		{"missing auth", common.ErrMissingAuth, CodeUnauthenticated, "Token or authentication header do not exist"},
		{"invalid token", fmt.Errorf("%w: expired", common.ErrInvalidToken), CodeUnauthenticated, "Token is invalid"},
		{"forbidden", common.ErrorForbidden, CodeForbidden, "Action not allowed"},
		{"question not found", common.ErrQuestionNotFound, CodeNotFound, "Question not found"},
		{"unexpected", errors.New("db error: connection refused"), CodeInternal, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toAPIError(context.Background(), logging.NewNopLogger(), tt.err)

			var ae *apiError
			require.True(t, errors.As(got, &ae))
			assert.Equal(t, tt.wantMsg, ae.Error())
			assert.Equal(t, tt.wantCode, ae.Extensions()["code"])
		})
	}
}

func TestAPIError_ValidationCarriesFields(t *testing.T) {
	fields := map[string]string{"general": "Credentials are wrong"}
	got := toAPIError(context.Background(), logging.NewNopLogger(),
		common.NewValidationError("Please check your username or password", fields))

	ext := got.(*apiError).Extensions()
	assert.Equal(t, fields, ext["errors"])
}
