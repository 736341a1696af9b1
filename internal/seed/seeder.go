package seed

import (
	"context"
	"fmt"

	"lingualink/internal/entity"
	"lingualink/internal/pkg/logger"
	"lingualink/internal/repository/unitofwork"
)

type userFixture struct {
	Name     string
	Email    string
	Language string
}

type glossaryFixture struct {
	Name     string
	Industry string
	Source   string
	Target   string
	Terms    [][2]string
}

var users = []userFixture{
	{Name: "Alice Johnson", Email: "alice@example.com", Language: "en"},
	{Name: "Bob Smith", Email: "bob@example.com", Language: "fr"},
	{Name: "Carlos Rodriguez", Email: "carlos@example.com", Language: "es"},
}

var glossaries = []glossaryFixture{
	{
		Name:     "Medical Terms EN-FR",
		Industry: "medical",
		Source:   "en",
		Target:   "fr",
		Terms: [][2]string{
			{"heart", "cœur"},
			{"surgery", "chirurgie"},
			{"diagnosis", "diagnostic"},
		},
	},
	{
		Name:     "Engineering Terms EN-ES",
		Industry: "engineering",
		Source:   "en",
		Target:   "es",
		Terms: [][2]string{
			{"engine", "motor"},
			{"design", "diseño"},
			{"analysis", "análisis"},
		},
	},
}

const sessionName = "Quarterly Review Meeting"

type Seeder struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewSeeder(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) *Seeder {
	return &Seeder{
		uowFactory: uowFactory,
		logger:     log,
	}
}

// Run inserts the demo dataset in a single transaction. It is not
// idempotent: a second run fails on the unique user email and rolls back
// everything it wrote.
func (s *Seeder) Run(ctx context.Context) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	createdUsers := make([]*entity.User, 0, len(users))
	for _, u := range users {
		user := &entity.User{Name: u.Name, Email: u.Email, PrimaryLanguage: u.Language}
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
		createdUsers = append(createdUsers, user)
	}

	createdGlossaries := make([]*entity.Glossary, 0, len(glossaries))
	for _, g := range glossaries {
		industry := g.Industry
		glossary := &entity.Glossary{
			Name:           g.Name,
			Industry:       &industry,
			SourceLanguage: g.Source,
			TargetLanguage: g.Target,
		}
		if err := uow.GlossaryRepository().Create(ctx, glossary); err != nil {
			return fmt.Errorf("seed glossary %s: %w", g.Name, err)
		}

		terms := make([]*entity.GlossaryTerm, 0, len(g.Terms))
		for _, t := range g.Terms {
			terms = append(terms, &entity.GlossaryTerm{
				GlossaryId:        glossary.Id,
				SourceTerm:        t[0],
				TargetTranslation: t[1],
			})
		}
		if err := uow.GlossaryRepository().CreateTerms(ctx, terms); err != nil {
			return fmt.Errorf("seed glossary terms %s: %w", g.Name, err)
		}
		createdGlossaries = append(createdGlossaries, glossary)
	}

	alice := createdUsers[0]
	session := &entity.Session{Name: sessionName, UserId: alice.Id, IsActive: true}
	if err := uow.SessionRepository().Create(ctx, session); err != nil {
		return fmt.Errorf("seed session: %w", err)
	}

	participants := make([]*entity.SessionParticipant, 0, len(createdUsers))
	for _, u := range createdUsers {
		participants = append(participants, &entity.SessionParticipant{
			SessionId: session.Id,
			UserId:    u.Id,
			Language:  u.PrimaryLanguage,
		})
	}
	if err := uow.SessionParticipantRepository().CreateBulk(ctx, participants); err != nil {
		return fmt.Errorf("seed session participants: %w", err)
	}

	medical, engineering := createdGlossaries[0].Id, createdGlossaries[1].Id
	translations := []*entity.Translation{
		{
			UserId:         alice.Id,
			SourceText:     "The patient needs heart surgery",
			SourceLanguage: "en",
			TargetLanguage: "fr",
			TranslatedText: "Le patient a besoin d'une chirurgie cardiaque",
			GlossaryId:     &medical,
		},
		{
			UserId:         alice.Id,
			SourceText:     "Engine design analysis",
			SourceLanguage: "en",
			TargetLanguage: "es",
			TranslatedText: "Análisis de diseño del motor",
			GlossaryId:     &engineering,
		},
	}
	for _, t := range translations {
		if err := uow.TranslationRepository().Create(ctx, t); err != nil {
			return fmt.Errorf("seed translation: %w", err)
		}
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	s.logger.Info("Seeder", "Sample data loaded", map[string]interface{}{
		"users":        len(createdUsers),
		"glossaries":   len(createdGlossaries),
		"session_id":   session.Id,
		"translations": len(translations),
	})
	return nil
}
