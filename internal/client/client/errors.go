package client

import (
	"errors"

	"github.com/dmitrijs2005/qaboard/internal/common"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// GraphQL extension codes set by the server.
const (
	codeBadUserInput    = "BAD_USER_INPUT"
	codeUnauthenticated = "UNAUTHENTICATED"
	codeForbidden       = "FORBIDDEN"
	codeNotFound        = "NOT_FOUND"
)

// APIError is a GraphQL error other than a validation failure.
type APIError struct {
	Message string
	Code    string
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Is(target error) bool {
	switch e.Code {
	case codeNotFound:
		return target == common.ErrorNotFound
	case codeForbidden:
		return target == common.ErrorForbidden
	case codeUnauthenticated:
		return target == ErrUnauthorized
	}
	return false
}

func mapError(e gqlError) error {
	if e.Extensions.Code == codeBadUserInput {
		return common.NewValidationError(e.Message, e.Extensions.Errors)
	}
	return &APIError{Message: e.Message, Code: e.Extensions.Code}
}
