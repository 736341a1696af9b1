package translation

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"lingualink/internal/pkg/logger"
	"lingualink/internal/tracer"
)

// Cache memoizes raw provider output.
type Cache interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

type Gateway struct {
	provider Provider
	cache    Cache
	logger   logger.ILogger
}

// NewGateway builds a gateway around an optional live provider. A nil
// provider means every call goes straight to the fallback table; a nil
// cache disables memoization.
func NewGateway(provider Provider, cache Cache, log logger.ILogger) *Gateway {
	return &Gateway{
		provider: provider,
		cache:    cache,
		logger:   log,
	}
}

func (g *Gateway) Available() bool {
	return g.provider != nil
}

// ProviderName reports the live provider, or "fallback" when there is none.
func (g *Gateway) ProviderName() string {
	if g.provider == nil {
		return "fallback"
	}
	return g.provider.Name()
}

// Translate never fails. Provider errors are logged and answered from the
// fallback table; glossary terms only touch live results.
func (g *Gateway) Translate(ctx context.Context, text, sourceLang, targetLang string, terms []Term) string {
	if g.provider == nil {
		return Fallback(text, sourceLang, targetLang)
	}

	translated, err := g.live(ctx, text, sourceLang, targetLang)
	if err != nil {
		g.logger.Warn("TranslationGateway", "Provider failed, using fallback table", map[string]interface{}{
			"provider": g.provider.Name(),
			"source":   sourceLang,
			"target":   targetLang,
			"error":    err.Error(),
		})
		return Fallback(text, sourceLang, targetLang)
	}

	return ApplyGlossary(text, translated, terms)
}

func (g *Gateway) live(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	key := cacheKey(text, sourceLang, targetLang)
	if g.cache != nil {
		if cached, ok := g.cache.Get(key); ok {
			g.logger.Debug("TranslationGateway", "Cache hit", map[string]interface{}{
				"source": sourceLang,
				"target": targetLang,
			})
			return cached, nil
		}
	}

	ctx, span := tracer.Tracer("lingualink/translation").Start(ctx, "translation.provider")
	defer span.End()
	span.SetAttributes(
		attribute.String("translation.provider", g.provider.Name()),
		attribute.String("translation.source", sourceLang),
		attribute.String("translation.target", targetLang),
	)

	translated, err := g.provider.Translate(ctx, text, sourceLang, targetLang)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	if g.cache != nil {
		g.cache.Set(key, translated)
	}
	return translated, nil
}

func cacheKey(text, sourceLang, targetLang string) string {
	return strings.Join([]string{sourceLang, targetLang, text}, "\x00")
}
