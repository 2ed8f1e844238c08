package graph

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/qaboard/internal/common"
	"github.com/dmitrijs2005/qaboard/internal/logging"
)

const (
	CodeBadUserInput    = "BAD_USER_INPUT"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeInternal        = "INTERNAL_SERVER_ERROR"
)

// apiError is what resolvers hand back to the executor. Extensions ends
// up in the "extensions" member of the GraphQL error.
type apiError struct {
	message string
	code    string
	fields  map[string]string
}

func (e *apiError) Error() string { return e.message }

func (e *apiError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.code}
	if e.fields != nil {
		ext["errors"] = e.fields
	}
	return ext
}

// toAPIError maps a service error onto the error taxonomy. Errors outside
// the taxonomy are logged and hidden behind a generic message.
func toAPIError(ctx context.Context, logger logging.Logger, err error) error {
	var ve *common.ValidationError

	switch {
	case errors.As(err, &ve):
		return &apiError{message: ve.Message, code: CodeBadUserInput, fields: ve.Fields}
	case errors.Is(err, common.ErrMissingAuth):
		return &apiError{message: common.ErrMissingAuth.Error(), code: CodeUnauthenticated}
	case errors.Is(err, common.ErrInvalidToken):
		return &apiError{message: common.ErrInvalidToken.Error(), code: CodeUnauthenticated}
	case errors.Is(err, common.ErrorForbidden):
		return &apiError{message: common.ErrorForbidden.Error(), code: CodeForbidden}
	case errors.Is(err, common.ErrorNotFound):
		return &apiError{message: err.Error(), code: CodeNotFound}
	default:
		logger.Error(ctx, "resolver failed", "error", err)
		return &apiError{message: common.ErrorInternal.Error(), code: CodeInternal}
	}
}
