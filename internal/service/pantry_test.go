package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/moramnavadeep/FreshNCook/internal/gateway"
	"github.com/moramnavadeep/FreshNCook/internal/schema"
	"github.com/moramnavadeep/FreshNCook/internal/testhelpers"
	"github.com/moramnavadeep/FreshNCook/internal/types"
)

func testImageURI() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("fake image"))
}

func TestExtractIngredients(t *testing.T) {
	fake := &testhelpers.FakeGenerator{
		Response: &gateway.Response{
			Text: `{"ingredients":[{"name":"Tomato","quantity":3,"expirationDate":"2026-09-05"},{"name":"Rice","quantity":1}]}`,
		},
	}
	svc := NewPantryService(fake, zap.NewNop())

	out, err := svc.ExtractIngredients(context.Background(), &types.ExtractIngredientsInput{
		ReceiptDataURI: testImageURI(),
	})
	require.NoError(t, err)
	require.Len(t, out.Ingredients, 2)
	assert.Equal(t, "Tomato", out.Ingredients[0].Name)
	assert.Equal(t, 3.0, out.Ingredients[0].Quantity)
	assert.Equal(t, "2026-09-05", out.Ingredients[0].ExpirationDate)

	require.Equal(t, 1, fake.CallCount())
	req := fake.Requests[0]
	assert.True(t, req.JSONResponse)
	require.Len(t, req.Media, 1)
	assert.Equal(t, "image/png", req.Media[0].MIMEType)
}

func TestExtractIngredientsInjectsCurrentDate(t *testing.T) {
	fake := &testhelpers.FakeGenerator{
		Response: &gateway.Response{Text: `{"ingredients":[]}`},
	}
	svc := NewPantryService(fake, zap.NewNop())
	svc.now = func() time.Time {
		return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	}

	_, err := svc.ExtractIngredients(context.Background(), &types.ExtractIngredientsInput{
		ReceiptDataURI: testImageURI(),
	})
	require.NoError(t, err)
	require.Equal(t, 1, fake.CallCount())
	assert.Contains(t, fake.Requests[0].Prompt, "2026-08-31")
}

func TestExtractIngredientsEmptyAnswer(t *testing.T) {
	fake := &testhelpers.FakeGenerator{
		Response: &gateway.Response{Text: `{"ingredients":[]}`},
	}
	svc := NewPantryService(fake, zap.NewNop())

	out, err := svc.ExtractIngredients(context.Background(), &types.ExtractIngredientsInput{
		ReceiptDataURI: testImageURI(),
	})
	require.NoError(t, err)
	assert.NotNil(t, out.Ingredients)
	assert.Empty(t, out.Ingredients)
}

func TestExtractIngredientsRejectsBadInputBeforeCalling(t *testing.T) {
	fake := &testhelpers.FakeGenerator{}
	svc := NewPantryService(fake, zap.NewNop())

	_, err := svc.ExtractIngredients(context.Background(), &types.ExtractIngredientsInput{
		ReceiptDataURI: "https://example.com/receipt.png",
	})
	require.Error(t, err)
	assert.True(t, schema.IsValidationError(err))
	assert.Zero(t, fake.CallCount())
}

func TestExtractIngredientsRejectsInvalidModelOutput(t *testing.T) {
	fake := &testhelpers.FakeGenerator{
		Response: &gateway.Response{
			Text: `{"ingredients":[{"name":"Tomato","quantity":0}]}`,
		},
	}
	svc := NewPantryService(fake, zap.NewNop())

	_, err := svc.ExtractIngredients(context.Background(), &types.ExtractIngredientsInput{
		ReceiptDataURI: testImageURI(),
	})
	require.Error(t, err)
	assert.True(t, schema.IsValidationError(err))
}

func TestExtractIngredientsPropagatesGatewayError(t *testing.T) {
	fake := &testhelpers.FakeGenerator{Err: errors.New("upstream overloaded")}
	svc := NewPantryService(fake, zap.NewNop())

	_, err := svc.ExtractIngredients(context.Background(), &types.ExtractIngredientsInput{
		ReceiptDataURI: testImageURI(),
	})
	require.Error(t, err)
	assert.False(t, schema.IsValidationError(err))
}
