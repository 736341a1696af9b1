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

type IUserService interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	Get(ctx context.Context, userId uint) (*dto.UserResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IUserService {
	return &userService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

// Create inserts a user. A duplicate email is reported as the store's own
// constraint error, wrapped.
func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	user := &entity.User{
		Name:            req.Name,
		Email:           req.Email,
		PrimaryLanguage: req.PrimaryLanguage,
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("UserService", "User created", map[string]interface{}{
		"user_id":  user.Id,
		"language": user.PrimaryLanguage,
	})

	return toUserResponse(user), nil
}

func (s *userService) Get(ctx context.Context, userId uint) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return toUserResponse(user), nil
}

func toUserResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:              user.Id,
		Name:            user.Name,
		Email:           user.Email,
		PrimaryLanguage: user.PrimaryLanguage,
	}
}
