package translation

import (
	"context"
	"errors"
	"testing"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"

	"lingualink/internal/pkg/logger"
	"lingualink/internal/repository/memory"
)

type stubProvider struct {
	out   string
	err   error
	calls int
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	p.calls++
	return p.out, p.err
}

func TestGateway_NoProviderUsesFallback(t *testing.T) {
	g := NewGateway(nil, nil, logger.NewNopLogger())

	assert.False(t, g.Available())
	assert.Equal(t, "fallback", g.ProviderName())
	assert.Equal(t, "bonjour", g.Translate(context.Background(), "Hello", "en", "fr", nil))
	assert.Equal(t, "[de translation of: good morning]", g.Translate(context.Background(), "good morning", "en", "de", nil))
}

func TestGateway_FallbackIgnoresGlossary(t *testing.T) {
	g := NewGateway(nil, nil, logger.NewNopLogger())
	terms := []Term{{Source: "hello", Target: "salut"}, {Source: "bonjour", Target: "salut"}}

	assert.Equal(t, "bonjour", g.Translate(context.Background(), "hello", "en", "fr", terms))
}

func TestGateway_LiveAppliesGlossary(t *testing.T) {
	p := &stubProvider{out: "Le patient a besoin d'une heart surgery"}
	g := NewGateway(p, nil, logger.NewNopLogger())
	terms := []Term{{Source: "heart", Target: "cœur"}, {Source: "surgery", Target: "chirurgie"}, {Source: "diagnosis", Target: "diagnostic"}}

	out := g.Translate(context.Background(), "The patient needs heart surgery", "en", "fr", terms)

	assert.True(t, g.Available())
	assert.Equal(t, "Le patient a besoin d'une cœur chirurgie", out)
	assert.Equal(t, 1, p.calls)
}

func TestGateway_ProviderErrorFallsBack(t *testing.T) {
	p := &stubProvider{err: errors.New("quota exceeded")}
	g := NewGateway(p, nil, logger.NewNopLogger())
	terms := []Term{{Source: "engine", Target: "motor"}}

	assert.Equal(t, "análisis de diseño del motor", g.Translate(context.Background(), "Engine design analysis", "en", "es", terms))
	assert.Equal(t, "[es translation of: unknown]", g.Translate(context.Background(), "unknown", "en", "es", terms))
	assert.Equal(t, 2, p.calls)
}

func TestGateway_CachesLiveResults(t *testing.T) {
	p := &stubProvider{out: "hola"}
	c := memory.NewTranslationCache(cache.NoExpiration, 0)
	g := NewGateway(p, c, logger.NewNopLogger())

	first := g.Translate(context.Background(), "hello", "en", "es", nil)
	second := g.Translate(context.Background(), "hello", "en", "es", []Term{{Source: "hello", Target: "ignored"}})
	_ = g.Translate(context.Background(), "hello", "en", "fr", nil)

	assert.Equal(t, "hola", first)
	// Cached raw output still goes through substitution, but "hola" has no "hello" in it.
	assert.Equal(t, "hola", second)
	assert.Equal(t, 2, p.calls)
	assert.Equal(t, 2, c.Len())
}

func TestGateway_ErrorsAreNotCached(t *testing.T) {
	p := &stubProvider{err: errors.New("boom")}
	c := memory.NewTranslationCache(cache.NoExpiration, 0)
	g := NewGateway(p, c, logger.NewNopLogger())

	g.Translate(context.Background(), "hello", "en", "fr", nil)
	g.Translate(context.Background(), "hello", "en", "fr", nil)

	assert.Equal(t, 2, p.calls)
	assert.Equal(t, 0, c.Len())
}
