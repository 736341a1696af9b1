package translation

import (
	"context"
	"errors"
)

// ErrProviderUnavailable is returned by the factory when no live provider
// can be configured (no credentials, or explicitly disabled).
var ErrProviderUnavailable = errors.New("translation provider unavailable")

// Provider defines the contract for a live machine translation backend.
type Provider interface {
	Name() string
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// Term is one glossary entry, applied to live provider output.
type Term struct {
	Source string
	Target string
}
