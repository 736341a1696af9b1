package service

import (
	"context"
	"fmt"

	"lingualink/internal/dto"
	"lingualink/internal/entity"
	"lingualink/internal/pkg/logger"
	"lingualink/internal/repository/specification"
	"lingualink/internal/repository/unitofwork"
)

type ISessionService interface {
	Create(ctx context.Context, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	Join(ctx context.Context, req *dto.JoinSessionRequest) (*dto.JoinSessionResponse, error)
}

type sessionService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewSessionService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ISessionService {
	return &sessionService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

// Create writes the session and, if the creator exists, the creator's
// participant row in one transaction. A missing creator does not fail the
// call; the session is created without participants.
func (s *sessionService) Create(ctx context.Context, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	session := &entity.Session{
		Name:     req.Name,
		UserId:   req.UserId,
		IsActive: true,
	}
	if err := uow.SessionRepository().Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	creator, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.UserId})
	if err != nil {
		return nil, fmt.Errorf("find session creator: %w", err)
	}

	joined := false
	if creator != nil {
		participant := &entity.SessionParticipant{
			SessionId: session.Id,
			UserId:    creator.Id,
			Language:  creator.PrimaryLanguage,
		}
		if err := uow.SessionParticipantRepository().Create(ctx, participant); err != nil {
			return nil, fmt.Errorf("add session creator: %w", err)
		}
		joined = true
	} else {
		s.logger.Warn("SessionService", "Session creator not found, no participant added", map[string]interface{}{
			"session_id": session.Id,
			"user_id":    req.UserId,
		})
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.logger.Info("SessionService", "Session created", map[string]interface{}{
		"session_id": session.Id,
		"user_id":    req.UserId,
	})

	return &dto.CreateSessionResponse{
		Id:            session.Id,
		Name:          session.Name,
		CreatorJoined: joined,
	}, nil
}

// Join checks, in order, that the session is active, that the user exists
// and that the user has not joined yet. Any failed check leaves the store
// untouched.
func (s *sessionService) Join(ctx context.Context, req *dto.JoinSessionRequest) (*dto.JoinSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: req.SessionId},
		specification.ActiveSessions{},
	)
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.UserId})
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	existing, err := uow.SessionParticipantRepository().FindOne(ctx,
		specification.BySessionID{SessionID: session.Id},
		specification.UserOwnedBy{UserID: user.Id},
	)
	if err != nil {
		return nil, fmt.Errorf("find participant: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyParticipant
	}

	participant := &entity.SessionParticipant{
		SessionId: session.Id,
		UserId:    user.Id,
		Language:  user.PrimaryLanguage,
	}
	if err := uow.SessionParticipantRepository().Create(ctx, participant); err != nil {
		return nil, fmt.Errorf("join session: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("join session: %w", err)
	}

	s.logger.Info("SessionService", "User joined session", map[string]interface{}{
		"session_id": session.Id,
		"user_id":    user.Id,
		"language":   participant.Language,
	})

	return &dto.JoinSessionResponse{
		SessionName: session.Name,
		UserName:    user.Name,
		Language:    participant.Language,
	}, nil
}
