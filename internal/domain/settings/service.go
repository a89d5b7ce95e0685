package settings

import "context"

// SettingsService persists display preferences in the local store.
type SettingsService interface {
	GetTheme(ctx context.Context) (Theme, error)
	SetTheme(ctx context.Context, theme Theme) error
}
