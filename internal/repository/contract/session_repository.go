package contract

import (
	"context"

	"lingualink/internal/entity"
	"lingualink/internal/repository/specification"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Session, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Session, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type SessionParticipantRepository interface {
	Create(ctx context.Context, participant *entity.SessionParticipant) error
	CreateBulk(ctx context.Context, participants []*entity.SessionParticipant) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SessionParticipant, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionParticipant, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
