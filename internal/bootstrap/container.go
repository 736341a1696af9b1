package bootstrap

import (
	"context"
	"errors"
	"time"

	"lingualink/internal/config"
	"lingualink/internal/pkg/logger"
	"lingualink/internal/repository/memory"
	"lingualink/internal/repository/unitofwork"
	"lingualink/internal/seed"
	"lingualink/internal/service"
	"lingualink/pkg/translation"
	"lingualink/pkg/translation/factory"

	"gorm.io/gorm"
)

type Container struct {
	UserService        service.IUserService
	GlossaryService    service.IGlossaryService
	TranslationService service.ITranslationService
	SessionService     service.ISessionService

	Seeder  *seed.Seeder
	Gateway *translation.Gateway
}

func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, sysLogger logger.ILogger) *Container {
	uowFactory := unitofwork.NewRepositoryFactory(db)

	gateway := NewTranslationGateway(ctx, cfg.Translate, sysLogger)

	glossaryService := service.NewGlossaryService(uowFactory, sysLogger)

	return &Container{
		UserService:        service.NewUserService(uowFactory, sysLogger),
		GlossaryService:    glossaryService,
		TranslationService: service.NewTranslationService(uowFactory, glossaryService, gateway, sysLogger),
		SessionService:     service.NewSessionService(uowFactory, sysLogger),
		Seeder:             seed.NewSeeder(uowFactory, sysLogger),
		Gateway:            gateway,
	}
}

// NewTranslationGateway resolves the live provider once. Without one the
// gateway answers from the fallback table for its whole lifetime.
func NewTranslationGateway(ctx context.Context, cfg config.TranslateConfig, sysLogger logger.ILogger) *translation.Gateway {
	provider, err := factory.NewTranslationProvider(ctx, cfg)
	if err != nil {
		details := map[string]interface{}{"error": err.Error()}
		if errors.Is(err, translation.ErrProviderUnavailable) {
			sysLogger.Info("Bootstrap", "No live translation provider, using fallback table", details)
		} else {
			sysLogger.Warn("Bootstrap", "Translation provider misconfigured, using fallback table", details)
		}
		return translation.NewGateway(nil, nil, sysLogger)
	}

	cache := memory.NewTranslationCache(time.Hour, cfg.CacheSize)
	sysLogger.Debug("Bootstrap", "Translation provider ready", map[string]interface{}{
		"provider": provider.Name(),
	})
	return translation.NewGateway(provider, cache, sysLogger)
}
