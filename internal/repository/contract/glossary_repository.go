package contract

import (
	"context"

	"lingualink/internal/entity"
	"lingualink/internal/repository/specification"
)

type GlossaryRepository interface {
	Create(ctx context.Context, glossary *entity.Glossary) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Glossary, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Glossary, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Terms
	CreateTerms(ctx context.Context, terms []*entity.GlossaryTerm) error
	FindTerms(ctx context.Context, specs ...specification.Specification) ([]*entity.GlossaryTerm, error)
	CountTermsByGlossary(ctx context.Context) (map[uint]int64, error)
}
