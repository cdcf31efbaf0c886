package discovery

import (
	"context"

	"go.uber.org/zap"
)

// MapResource is a nearby sustainability service surfaced through maps
// grounding.
type MapResource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
	Type  string `json:"type"`
}

// Result pairs the narrative text with the grounded resource list.
type Result struct {
	Text      string        `json:"text"`
	Resources []MapResource `json:"resources"`
}

// Finder performs the grounded lookup. Implementations own transport.
type Finder interface {
	Find(ctx context.Context, lat, lng float64) (*Result, error)
}

// Service wraps a Finder with graceful degradation: lookup failures are
// logged and replaced with a fallback result, never surfaced as errors.
type Service struct {
	finder Finder
	logger *zap.Logger
}

func NewService(finder Finder, logger *zap.Logger) *Service {
	return &Service{finder: finder, logger: logger}
}

// Nearby returns sustainability resources close to the given coordinates.
// It never fails; a degraded lookup yields the fallback text and an
// empty resource list.
func (s *Service) Nearby(ctx context.Context, lat, lng float64) *Result {
	result, err := s.finder.Find(ctx, lat, lng)
	if err != nil {
		s.logger.Warn("Resource discovery degraded",
			zap.Float64("lat", lat),
			zap.Float64("lng", lng),
			zap.Error(err))
		return &Result{Text: "Could not fetch local resources.", Resources: []MapResource{}}
	}
	if result.Resources == nil {
		result.Resources = []MapResource{}
	}
	return result
}
