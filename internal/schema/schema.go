// Package schema validates every value crossing the AI-service boundary.
// The same rules are applied symmetrically: outbound flow inputs before a
// prompt is rendered, and inbound model output after it is decoded.
// Model responses are untrusted free-form text until proven otherwise.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError enumerates the fields of a value that failed
// validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for: %s", strings.Join(e.Fields, ", "))
}

// Validate checks v against its struct tags. The returned error, when
// non-nil, is a *ValidationError listing the violated fields.
func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Namespace())
	}
	return &ValidationError{Fields: fields}
}

// Decode unmarshals raw model output into out and validates the result.
// A decode or validation failure means the model broke the declared
// output contract; callers decide whether that is fatal per flow.
func Decode(data []byte, out interface{}) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode model output: %w", err)
	}
	if err := Validate(out); err != nil {
		return fmt.Errorf("model output rejected: %w", err)
	}
	return nil
}

// IsValidationError reports whether err is (or wraps) a schema
// validation failure, as opposed to a transport or provider error.
func IsValidationError(err error) bool {
	for err != nil {
		if _, ok := err.(*ValidationError); ok {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
