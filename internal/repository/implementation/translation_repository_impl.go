package implementation

import (
	"context"
	"errors"

	"lingualink/internal/entity"
	"lingualink/internal/mapper"
	"lingualink/internal/model"
	"lingualink/internal/repository/contract"
	"lingualink/internal/repository/specification"

	"gorm.io/gorm"
)

type TranslationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TranslationMapper
}

func NewTranslationRepository(db *gorm.DB) contract.TranslationRepository {
	return &TranslationRepositoryImpl{
		db:     db,
		mapper: mapper.NewTranslationMapper(),
	}
}

func (r *TranslationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TranslationRepositoryImpl) Create(ctx context.Context, translation *entity.Translation) error {
	m := r.mapper.ToModel(translation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*translation = *r.mapper.ToEntity(m)
	return nil
}

func (r *TranslationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Translation, error) {
	var m model.Translation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *TranslationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Translation, error) {
	var models []*model.Translation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *TranslationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Translation{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
