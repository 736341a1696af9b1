package implementation

import (
	"context"
	"errors"

	"lingualink/internal/entity"
	"lingualink/internal/mapper"
	"lingualink/internal/model"
	"lingualink/internal/repository/contract"
	"lingualink/internal/repository/scope"
	"lingualink/internal/repository/specification"

	"gorm.io/gorm"
)

type GlossaryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GlossaryMapper
}

func NewGlossaryRepository(db *gorm.DB) contract.GlossaryRepository {
	return &GlossaryRepositoryImpl{
		db:     db,
		mapper: mapper.NewGlossaryMapper(),
	}
}

func (r *GlossaryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *GlossaryRepositoryImpl) Create(ctx context.Context, glossary *entity.Glossary) error {
	m := r.mapper.ToModel(glossary)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*glossary = *r.mapper.ToEntity(m)
	return nil
}

func (r *GlossaryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Glossary, error) {
	var m model.Glossary
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *GlossaryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Glossary, error) {
	var models []*model.Glossary
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *GlossaryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Glossary{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GlossaryRepositoryImpl) CreateTerms(ctx context.Context, terms []*entity.GlossaryTerm) error {
	if len(terms) == 0 {
		return nil
	}

	models := make([]*model.GlossaryTerm, 0, len(terms))
	for _, t := range terms {
		models = append(models, r.mapper.TermToModel(t))
	}

	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}

	for i, m := range models {
		*terms[i] = *r.mapper.TermToEntity(m)
	}
	return nil
}

// FindTerms returns terms in insertion order.
func (r *GlossaryRepositoryImpl) FindTerms(ctx context.Context, specs ...specification.Specification) ([]*entity.GlossaryTerm, error) {
	var models []*model.GlossaryTerm
	query := r.applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByIDAsc), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.TermsToEntities(models), nil
}

func (r *GlossaryRepositoryImpl) CountTermsByGlossary(ctx context.Context) (map[uint]int64, error) {
	var rows []struct {
		GlossaryId uint
		Total      int64
	}

	err := r.db.WithContext(ctx).Model(&model.GlossaryTerm{}).
		Select("glossary_id, COUNT(*) AS total").
		Group("glossary_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.GlossaryId] = row.Total
	}
	return counts, nil
}
