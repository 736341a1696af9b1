package unitofwork

import (
	"context"

	"lingualink/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	GlossaryRepository() contract.GlossaryRepository
	SessionRepository() contract.SessionRepository
	SessionParticipantRepository() contract.SessionParticipantRepository
	TranslationRepository() contract.TranslationRepository
}
