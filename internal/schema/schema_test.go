package schema

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testInput struct {
	Name     string  `json:"name" validate:"required"`
	Quantity float64 `json:"quantity" validate:"required,gt=0"`
}

func TestValidate(t *testing.T) {
	err := Validate(&testInput{Name: "Tomato", Quantity: 2})
	assert.NoError(t, err)
}

func TestValidateReportsFields(t *testing.T) {
	err := Validate(&testInput{Quantity: -1})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Len(t, verr.Fields, 2)
	assert.Contains(t, err.Error(), "Name")
	assert.Contains(t, err.Error(), "Quantity")
}

func TestDecode(t *testing.T) {
	var out testInput
	err := Decode([]byte(`{"name":"Onion","quantity":3}`), &out)
	require.NoError(t, err)
	assert.Equal(t, "Onion", out.Name)
	assert.Equal(t, 3.0, out.Quantity)
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	var out testInput
	err := Decode([]byte(`{"name": "Onion"`), &out)
	assert.Error(t, err)
	assert.False(t, IsValidationError(err))
}

func TestDecodeRejectsInvalidPayload(t *testing.T) {
	var out testInput
	err := Decode([]byte(`{"name":"","quantity":0}`), &out)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestIsValidationErrorUnwraps(t *testing.T) {
	inner := &ValidationError{Fields: []string{"Name"}}
	wrapped := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", inner))
	assert.True(t, IsValidationError(wrapped))
	assert.False(t, IsValidationError(fmt.Errorf("plain failure")))
}
