package unitofwork

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingualink/internal/entity"
	"lingualink/internal/repository/specification"
	"lingualink/internal/testutil"
)

func TestUnitOfWork_CommitAssignsIds(t *testing.T) {
	ctx := context.Background()
	factory := NewRepositoryFactory(testutil.NewTestDB(t))

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))

	industry := "legal"
	glossary := &entity.Glossary{Name: "Legal", Industry: &industry, SourceLanguage: "en", TargetLanguage: "de"}
	require.NoError(t, uow.GlossaryRepository().Create(ctx, glossary))
	assert.NotZero(t, glossary.Id)
	assert.False(t, glossary.CreatedAt.IsZero())

	terms := []*entity.GlossaryTerm{
		{GlossaryId: glossary.Id, SourceTerm: "contract", TargetTranslation: "Vertrag"},
		{GlossaryId: glossary.Id, SourceTerm: "court", TargetTranslation: "Gericht"},
	}
	require.NoError(t, uow.GlossaryRepository().CreateTerms(ctx, terms))
	assert.NotZero(t, terms[0].Id)
	assert.NotZero(t, terms[1].Id)

	require.NoError(t, uow.Commit())
	assert.NoError(t, uow.Rollback(), "rollback after commit is a no-op")

	read := factory.NewUnitOfWork(ctx)
	found, err := read.GlossaryRepository().FindTerms(ctx, specification.ByGlossaryID{GlossaryID: glossary.Id})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "contract", found[0].SourceTerm)
	assert.Equal(t, "court", found[1].SourceTerm)

	counts, err := read.GlossaryRepository().CountTermsByGlossary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[glossary.Id])
}

func TestUnitOfWork_RollbackDiscards(t *testing.T) {
	ctx := context.Background()
	factory := NewRepositoryFactory(testutil.NewTestDB(t))

	uow := factory.NewUnitOfWork(ctx)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.UserRepository().Create(ctx, &entity.User{Name: "Temp", Email: "temp@example.com", PrimaryLanguage: "en"}))
	require.NoError(t, uow.Rollback())

	count, err := factory.NewUnitOfWork(ctx).UserRepository().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestUnitOfWork_BeginTwice(t *testing.T) {
	ctx := context.Background()
	uow := NewRepositoryFactory(testutil.NewTestDB(t)).NewUnitOfWork(ctx)

	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback()

	assert.Error(t, uow.Begin(ctx))
}

func TestUnitOfWork_CommitWithoutBegin(t *testing.T) {
	uow := NewRepositoryFactory(testutil.NewTestDB(t)).NewUnitOfWork(context.Background())

	assert.Error(t, uow.Commit())
}

func TestUserRepository_UniqueEmail(t *testing.T) {
	ctx := context.Background()
	uow := NewRepositoryFactory(testutil.NewTestDB(t)).NewUnitOfWork(ctx)

	require.NoError(t, uow.UserRepository().Create(ctx, &entity.User{Name: "A", Email: "dup@example.com", PrimaryLanguage: "en"}))
	err := uow.UserRepository().Create(ctx, &entity.User{Name: "B", Email: "dup@example.com", PrimaryLanguage: "fr"})
	assert.Error(t, err)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: "dup@example.com"})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "A", user.Name)

	missing, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: 999})
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSessionRepositories(t *testing.T) {
	ctx := context.Background()
	uow := NewRepositoryFactory(testutil.NewTestDB(t)).NewUnitOfWork(ctx)

	user := &entity.User{Name: "Alice", Email: "alice@example.com", PrimaryLanguage: "en"}
	require.NoError(t, uow.UserRepository().Create(ctx, user))

	session := &entity.Session{Name: "Standup", UserId: user.Id, IsActive: true}
	require.NoError(t, uow.SessionRepository().Create(ctx, session))
	assert.True(t, session.IsActive)

	active, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: session.Id}, specification.ActiveSessions{})
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "Standup", active.Name)

	participants := []*entity.SessionParticipant{
		{SessionId: session.Id, UserId: user.Id, Language: "en"},
	}
	require.NoError(t, uow.SessionParticipantRepository().CreateBulk(ctx, participants))
	assert.NotZero(t, participants[0].Id)

	found, err := uow.SessionParticipantRepository().FindOne(ctx,
		specification.BySessionID{SessionID: session.Id},
		specification.UserOwnedBy{UserID: user.Id},
	)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "en", found.Language)

	count, err := uow.SessionParticipantRepository().Count(ctx, specification.BySessionID{SessionID: session.Id})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestTranslationRepository_NewestFirst(t *testing.T) {
	ctx := context.Background()
	uow := NewRepositoryFactory(testutil.NewTestDB(t)).NewUnitOfWork(ctx)

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rows := []*entity.Translation{
		{UserId: 1, SourceText: "old", SourceLanguage: "en", TargetLanguage: "fr", TranslatedText: "vieux", CreatedAt: base},
		{UserId: 1, SourceText: "new", SourceLanguage: "en", TargetLanguage: "fr", TranslatedText: "neuf", CreatedAt: base.Add(time.Hour)},
		{UserId: 1, SourceText: "same tick", SourceLanguage: "en", TargetLanguage: "fr", TranslatedText: "x", CreatedAt: base.Add(time.Hour)},
		{UserId: 2, SourceText: "other user", SourceLanguage: "en", TargetLanguage: "es", TranslatedText: "y", CreatedAt: base.Add(2 * time.Hour)},
	}
	for _, r := range rows {
		require.NoError(t, uow.TranslationRepository().Create(ctx, r))
	}

	history, err := uow.TranslationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: 1},
		specification.Newest{},
	)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "same tick", history[0].SourceText)
	assert.Equal(t, "new", history[1].SourceText)
	assert.Equal(t, "old", history[2].SourceText)
	assert.Nil(t, history[0].GlossaryId)

	page, err := uow.TranslationRepository().FindAll(ctx,
		specification.Newest{},
		specification.Pagination{Limit: 1, Offset: 1},
	)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "same tick", page[0].SourceText)
}
