// Package validation checks registration and login input before any store
// access happens.
package validation

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Result maps field names to messages. Valid is true when Errors is empty.
type Result struct {
	Errors map[string]string
	Valid  bool
}

// ValidateRegistration requires username, email and password, and that
// confirmPassword equals password. The confirmation is only compared when
// a password was given. Username and email are trimmed before the check.
func ValidateRegistration(username, email, password, confirmPassword string) Result {
	errs := validation.Errors{
		"username": validation.Validate(strings.TrimSpace(username),
			validation.Required.Error("User field is empty")),
		"email": validation.Validate(strings.TrimSpace(email),
			validation.Required.Error("Email field is empty")),
		"password": validation.Validate(password,
			validation.Required.Error("Password field is empty")),
	}

	if password != "" {
		errs["confirmPassword"] = validation.Validate(confirmPassword,
			validation.By(stringEquals(password, "Your passwords do not match with each other")))
	}

	return newResult(errs)
}

// ValidateLogin requires a username and a password, both trimmed.
func ValidateLogin(username, password string) Result {
	errs := validation.Errors{
		"username": validation.Validate(strings.TrimSpace(username),
			validation.Required.Error("Username field is empty.")),
		"password": validation.Validate(strings.TrimSpace(password),
			validation.Required.Error("Password field is empty.")),
	}

	return newResult(errs)
}

func stringEquals(str, msg string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s != str {
			return errors.New(msg)
		}
		return nil
	}
}

func newResult(errs validation.Errors) Result {
	r := Result{Errors: map[string]string{}}
	if err := errs.Filter(); err != nil {
		for field, fieldErr := range err.(validation.Errors) {
			r.Errors[field] = fieldErr.Error()
		}
	}
	r.Valid = len(r.Errors) == 0
	return r
}
