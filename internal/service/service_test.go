package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"lingualink/internal/dto"
	"lingualink/internal/pkg/logger"
	"lingualink/internal/repository/unitofwork"
	"lingualink/internal/testutil"
)

func newFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()
	return unitofwork.NewRepositoryFactory(testutil.NewTestDB(t))
}

func createUser(t *testing.T, factory unitofwork.RepositoryFactory, name, email, language string) *dto.UserResponse {
	t.Helper()
	user, err := NewUserService(factory, logger.NewNopLogger()).Create(context.Background(), &dto.CreateUserRequest{
		Name:            name,
		Email:           email,
		PrimaryLanguage: language,
	})
	require.NoError(t, err)
	return user
}
