package factory

import (
	"context"
	"fmt"

	"lingualink/internal/config"
	"lingualink/pkg/translation"
	"lingualink/pkg/translation/google"
)

// NewTranslationProvider decides once which live provider to use.
// translation.ErrProviderUnavailable means run on the fallback table only.
func NewTranslationProvider(ctx context.Context, cfg config.TranslateConfig) (translation.Provider, error) {
	switch cfg.Provider {
	case "none", "mock", "off":
		return nil, translation.ErrProviderUnavailable
	case "google", "":
		if cfg.APIKey != "" {
			return google.NewAPIKeyProvider(cfg.APIKey, cfg.BaseURL), nil
		}
		if cfg.ProjectID == "" {
			return nil, fmt.Errorf("%w: set GOOGLE_TRANSLATE_API_KEY or GOOGLE_CLOUD_PROJECT", translation.ErrProviderUnavailable)
		}
		p, err := google.NewProjectProvider(ctx, cfg.ProjectID, cfg.Location, cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", translation.ErrProviderUnavailable, err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unsupported translation provider: %s", cfg.Provider)
	}
}
