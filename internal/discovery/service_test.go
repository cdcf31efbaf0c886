package discovery

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockFinder is a mock implementation of the Finder interface
type MockFinder struct {
	mock.Mock
}

func (m *MockFinder) Find(ctx context.Context, lat, lng float64) (*Result, error) {
	args := m.Called(ctx, lat, lng)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Result), args.Error(1)
}

func TestNearbyReturnsGroundedResources(t *testing.T) {
	mockFinder := new(MockFinder)
	mockFinder.On("Find", mock.Anything, 51.5, -0.1).Return(&Result{
		Text: "Two centers found.",
		Resources: []MapResource{
			{Title: "Hackney Recycling Centre", URI: "https://maps.example/1", Type: "Map Resource"},
		},
	}, nil)

	service := NewService(mockFinder, zap.NewNop())
	result := service.Nearby(context.Background(), 51.5, -0.1)

	assert.Equal(t, "Two centers found.", result.Text)
	assert.Len(t, result.Resources, 1)
	mockFinder.AssertExpectations(t)
}

func TestNearbyDegradesGracefully(t *testing.T) {
	mockFinder := new(MockFinder)
	mockFinder.On("Find", mock.Anything, 51.5, -0.1).
		Return(nil, errors.New("grounding unavailable"))

	service := NewService(mockFinder, zap.NewNop())
	result := service.Nearby(context.Background(), 51.5, -0.1)

	assert.Equal(t, "Could not fetch local resources.", result.Text)
	assert.Empty(t, result.Resources)
	assert.NotNil(t, result.Resources)
}

func TestNearbyNormalizesNilResources(t *testing.T) {
	mockFinder := new(MockFinder)
	mockFinder.On("Find", mock.Anything, 0.0, 0.0).Return(&Result{Text: "Nothing nearby."}, nil)

	service := NewService(mockFinder, zap.NewNop())
	result := service.Nearby(context.Background(), 0, 0)

	assert.NotNil(t, result.Resources)
	assert.Empty(t, result.Resources)
}
