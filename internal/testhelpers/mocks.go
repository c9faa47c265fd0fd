package testhelpers

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/moramnavadeep/FreshNCook/internal/gateway"
	"github.com/moramnavadeep/FreshNCook/internal/types"
)

// FakeGenerator is a scriptable stand-in for the AI gateway. Each flow
// test wires the responses it wants and inspects the captured requests.
type FakeGenerator struct {
	mu       sync.Mutex
	Requests []*gateway.Request

	// Respond computes the reply for a request. When nil, Response and
	// Err are returned for every call.
	Respond  func(req *gateway.Request) (*gateway.Response, error)
	Response *gateway.Response
	Err      error
}

func (f *FakeGenerator) Generate(ctx context.Context, req *gateway.Request) (*gateway.Response, error) {
	f.mu.Lock()
	f.Requests = append(f.Requests, req)
	f.mu.Unlock()

	if f.Respond != nil {
		return f.Respond(req)
	}
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Response, nil
}

// CallCount returns how many generation requests were made.
func (f *FakeGenerator) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Requests)
}

// MockRecipeService is a mock implementation of the IRecipeService
// interface for handler tests.
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) SuggestRecipes(ctx context.Context, input *types.SuggestRecipesInput) (*types.SuggestRecipesOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.SuggestRecipesOutput), args.Error(1)
}

func (m *MockRecipeService) GenerateRecipePlan(ctx context.Context, recipeName string) (*types.RecipePlan, error) {
	args := m.Called(ctx, recipeName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecipePlan), args.Error(1)
}

func (m *MockRecipeService) TranslateRecipe(ctx context.Context, input *types.TranslateRecipeInput) (*types.TranslateRecipeOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TranslateRecipeOutput), args.Error(1)
}

func (m *MockRecipeService) GenerateRecipeAudio(ctx context.Context, input *types.GenerateAudioInput) (*types.GenerateAudioOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.GenerateAudioOutput), args.Error(1)
}

func (m *MockRecipeService) GenerateRecipeImage(ctx context.Context, recipeName string) (*types.GenerateImageOutput, error) {
	args := m.Called(ctx, recipeName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.GenerateImageOutput), args.Error(1)
}

func (m *MockRecipeService) BackfillRecipeImage(ctx context.Context, sessionID, recipeID string) (*types.GenerateImageOutput, error) {
	args := m.Called(ctx, sessionID, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.GenerateImageOutput), args.Error(1)
}

// MockPantryService is a mock implementation of the IPantryService
// interface.
type MockPantryService struct {
	mock.Mock
}

func (m *MockPantryService) ExtractIngredients(ctx context.Context, input *types.ExtractIngredientsInput) (*types.ExtractIngredientsOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ExtractIngredientsOutput), args.Error(1)
}

// MockAlertService is a mock implementation of the IAlertService
// interface.
type MockAlertService struct {
	mock.Mock
}

func (m *MockAlertService) SendExpirationAlerts(ctx context.Context, input *types.ExpirationAlertInput) (*types.ExpirationAlertResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ExpirationAlertResult), args.Error(1)
}

// MockSMSSender records messages instead of sending them.
type MockSMSSender struct {
	mock.Mock
}

func (m *MockSMSSender) Send(ctx context.Context, to, body string) error {
	args := m.Called(ctx, to, body)
	return args.Error(0)
}
