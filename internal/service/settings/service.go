package settings

import (
	"context"
	"fmt"

	"github.com/attendly/attendance-gateway-go/internal/domain/settings"
)

const themeKey = "theme"

type SettingsServiceImpl struct {
	settings.SettingsRepository
}

func NewSettingsService(repo settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{SettingsRepository: repo}
}

// GetTheme implements settings.SettingsService. An unset theme defaults
// to light.
func (s *SettingsServiceImpl) GetTheme(ctx context.Context) (settings.Theme, error) {
	value, ok, err := s.SettingsRepository.Get(ctx, themeKey)
	if err != nil {
		return settings.Theme{}, fmt.Errorf("failed to read theme: %w", err)
	}
	if !ok {
		return settings.Theme{Dark: false}, nil
	}

	return settings.Theme{Dark: value == "dark"}, nil
}

// SetTheme implements settings.SettingsService.
func (s *SettingsServiceImpl) SetTheme(ctx context.Context, theme settings.Theme) error {
	value := "light"
	if theme.Dark {
		value = "dark"
	}

	if err := s.SettingsRepository.Set(ctx, themeKey, value); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}

	return nil
}
