package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingualink/internal/dto"
	"lingualink/internal/pkg/logger"
	"lingualink/internal/repository/specification"
	"lingualink/internal/repository/unitofwork"
	"lingualink/internal/testutil"
)

func TestSessionService_CreateAddsCreator(t *testing.T) {
	factory := newFactory(t)
	svc := NewSessionService(factory, logger.NewNopLogger())
	ctx := context.Background()

	creator := createUser(t, factory, "Bob", "bob@example.com", "fr")

	res, err := svc.Create(ctx, &dto.CreateSessionRequest{Name: "Kickoff", UserId: creator.Id})
	require.NoError(t, err)
	assert.NotZero(t, res.Id)
	assert.True(t, res.CreatorJoined)

	participants, err := factory.NewUnitOfWork(ctx).SessionParticipantRepository().FindAll(ctx, specification.BySessionID{SessionID: res.Id})
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, creator.Id, participants[0].UserId)
	assert.Equal(t, "fr", participants[0].Language)
}

func TestSessionService_CreateWithMissingCreator(t *testing.T) {
	factory := newFactory(t)
	svc := NewSessionService(factory, logger.NewNopLogger())
	ctx := context.Background()

	res, err := svc.Create(ctx, &dto.CreateSessionRequest{Name: "Orphan", UserId: 404})
	require.NoError(t, err)
	assert.NotZero(t, res.Id)
	assert.False(t, res.CreatorJoined)

	uow := factory.NewUnitOfWork(ctx)
	session, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: res.Id})
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.True(t, session.IsActive)

	count, err := uow.SessionParticipantRepository().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSessionService_Join(t *testing.T) {
	factory := newFactory(t)
	svc := NewSessionService(factory, logger.NewNopLogger())
	ctx := context.Background()

	alice := createUser(t, factory, "Alice", "alice@example.com", "en")
	carlos := createUser(t, factory, "Carlos", "carlos@example.com", "es")
	session, err := svc.Create(ctx, &dto.CreateSessionRequest{Name: "Review", UserId: alice.Id})
	require.NoError(t, err)

	joined, err := svc.Join(ctx, &dto.JoinSessionRequest{SessionId: session.Id, UserId: carlos.Id})
	require.NoError(t, err)
	assert.Equal(t, "Review", joined.SessionName)
	assert.Equal(t, "Carlos", joined.UserName)
	assert.Equal(t, "es", joined.Language)

	countParticipants := func() int64 {
		n, err := factory.NewUnitOfWork(ctx).SessionParticipantRepository().Count(ctx, specification.BySessionID{SessionID: session.Id})
		require.NoError(t, err)
		return n
	}
	assert.Equal(t, int64(2), countParticipants())

	_, err = svc.Join(ctx, &dto.JoinSessionRequest{SessionId: session.Id, UserId: carlos.Id})
	assert.ErrorIs(t, err, ErrAlreadyParticipant)
	assert.Equal(t, int64(2), countParticipants())

	_, err = svc.Join(ctx, &dto.JoinSessionRequest{SessionId: session.Id, UserId: alice.Id})
	assert.ErrorIs(t, err, ErrAlreadyParticipant)
}

func TestSessionService_JoinNotFound(t *testing.T) {
	factory := newFactory(t)
	svc := NewSessionService(factory, logger.NewNopLogger())
	ctx := context.Background()

	user := createUser(t, factory, "Eve", "eve@example.com", "de")
	session, err := svc.Create(ctx, &dto.CreateSessionRequest{Name: "Solo", UserId: user.Id})
	require.NoError(t, err)

	_, err = svc.Join(ctx, &dto.JoinSessionRequest{SessionId: 999, UserId: user.Id})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.Join(ctx, &dto.JoinSessionRequest{SessionId: session.Id, UserId: 999})
	assert.ErrorIs(t, err, ErrUserNotFound)

	count, err := factory.NewUnitOfWork(ctx).SessionParticipantRepository().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSessionService_JoinInactive(t *testing.T) {
	db := testutil.NewTestDB(t)
	factory := unitofwork.NewRepositoryFactory(db)
	svc := NewSessionService(factory, logger.NewNopLogger())
	ctx := context.Background()

	user := createUser(t, factory, "Finn", "finn@example.com", "en")
	session, err := svc.Create(ctx, &dto.CreateSessionRequest{Name: "Closed", UserId: user.Id})
	require.NoError(t, err)

	// No command deactivates sessions, so flip the flag directly.
	require.NoError(t, db.Exec("UPDATE sessions SET is_active = ? WHERE id = ?", false, session.Id).Error)

	other := createUser(t, factory, "Gia", "gia@example.com", "it")
	_, err = svc.Join(ctx, &dto.JoinSessionRequest{SessionId: session.Id, UserId: other.Id})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
