package branding

import (
	"fmt"

	"go.uber.org/zap"

	"ecotrack/audit-portal/audit-portal-backend/internal/storage"
)

// WhiteLabelConfig controls the partner-facing appearance of the portal
// and its exported reports.
type WhiteLabelConfig struct {
	CompanyName    string `json:"companyName"`
	PrimaryColor   string `json:"primaryColor"`
	AccentColor    string `json:"accentColor"`
	LogoMode       string `json:"logoMode"`
	ConsultantName string `json:"consultantName"`
}

// Defaults returns the stock EcoTrack appearance used until a partner
// saves their own.
func Defaults() *WhiteLabelConfig {
	return &WhiteLabelConfig{
		CompanyName:    "EcoTrack AI",
		PrimaryColor:   "#059669",
		AccentColor:    "#10b981",
		LogoMode:       "default",
		ConsultantName: "Sustainability Consultant",
	}
}

// Service reads and writes the white-label configuration.
type Service struct {
	store  storage.Store
	logger *zap.Logger
}

func NewService(store storage.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Get returns the saved configuration, or the defaults when none has
// been saved yet.
func (s *Service) Get() (*WhiteLabelConfig, error) {
	var cfg WhiteLabelConfig
	ok, err := s.store.Get(storage.KeyBranding, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load branding: %w", err)
	}
	if !ok {
		return Defaults(), nil
	}
	return &cfg, nil
}

// Save replaces the stored configuration wholesale.
func (s *Service) Save(cfg *WhiteLabelConfig) error {
	if err := s.store.Set(storage.KeyBranding, cfg); err != nil {
		return fmt.Errorf("failed to persist branding: %w", err)
	}
	s.logger.Info("Branding updated", zap.String("company", cfg.CompanyName))
	return nil
}
