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

type SessionParticipantRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionMapper
}

func NewSessionParticipantRepository(db *gorm.DB) contract.SessionParticipantRepository {
	return &SessionParticipantRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionMapper(),
	}
}

func (r *SessionParticipantRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SessionParticipantRepositoryImpl) Create(ctx context.Context, participant *entity.SessionParticipant) error {
	m := r.mapper.ParticipantToModel(participant)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*participant = *r.mapper.ParticipantToEntity(m)
	return nil
}

func (r *SessionParticipantRepositoryImpl) CreateBulk(ctx context.Context, participants []*entity.SessionParticipant) error {
	if len(participants) == 0 {
		return nil
	}

	models := make([]*model.SessionParticipant, 0, len(participants))
	for _, p := range participants {
		models = append(models, r.mapper.ParticipantToModel(p))
	}

	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}

	for i, m := range models {
		*participants[i] = *r.mapper.ParticipantToEntity(m)
	}
	return nil
}

func (r *SessionParticipantRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SessionParticipant, error) {
	var m model.SessionParticipant
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ParticipantToEntity(&m), nil
}

func (r *SessionParticipantRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionParticipant, error) {
	var models []*model.SessionParticipant
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ParticipantsToEntities(models), nil
}

func (r *SessionParticipantRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.SessionParticipant{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
