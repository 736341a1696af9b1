package contract

import (
	"context"

	"lingualink/internal/entity"
	"lingualink/internal/repository/specification"
)

// TranslationRepository is append-only: there is no Update or Delete.
type TranslationRepository interface {
	Create(ctx context.Context, translation *entity.Translation) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Translation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Translation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
