package service

import (
	"context"
	"fmt"

	"lingualink/internal/dto"
	"lingualink/internal/entity"
	"lingualink/internal/pkg/logger"
	"lingualink/internal/repository/specification"
	"lingualink/internal/repository/unitofwork"
	"lingualink/pkg/translation"
)

// Translator is the part of the translation gateway the service needs.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string, terms []translation.Term) string
	ProviderName() string
}

type ITranslationService interface {
	Translate(ctx context.Context, req *dto.TranslateRequest) (*dto.TranslateResponse, error)
	History(ctx context.Context, userId uint) ([]*dto.HistoryEntry, error)
}

type translationService struct {
	uowFactory      unitofwork.RepositoryFactory
	glossaryService IGlossaryService
	translator      Translator
	logger          logger.ILogger
}

func NewTranslationService(
	uowFactory unitofwork.RepositoryFactory,
	glossaryService IGlossaryService,
	translator Translator,
	log logger.ILogger,
) ITranslationService {
	return &translationService{
		uowFactory:      uowFactory,
		glossaryService: glossaryService,
		translator:      translator,
		logger:          log,
	}
}

// Translate records the translation even when the glossary id does not
// resolve; the id is stored as given.
func (s *translationService) Translate(ctx context.Context, req *dto.TranslateRequest) (*dto.TranslateResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	var (
		terms        []translation.Term
		glossaryName string
		glossaryId   *uint
	)
	if req.GlossaryId != 0 {
		id := req.GlossaryId
		glossaryId = &id

		glossary, glossaryTerms, err := s.glossaryService.Terms(ctx, id)
		if err != nil {
			return nil, err
		}
		if glossary != nil {
			glossaryName = glossary.Name
			terms = glossaryTerms
		}
	}

	translated := s.translator.Translate(ctx, req.Text, req.SourceLanguage, req.TargetLanguage, terms)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	record := &entity.Translation{
		UserId:         req.UserId,
		SourceText:     req.Text,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
		TranslatedText: translated,
		GlossaryId:     glossaryId,
	}
	if err := uow.TranslationRepository().Create(ctx, record); err != nil {
		return nil, fmt.Errorf("save translation: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("save translation: %w", err)
	}

	s.logger.Info("TranslationService", "Translation saved", map[string]interface{}{
		"translation_id": record.Id,
		"user_id":        record.UserId,
		"pair":           record.SourceLanguage + "->" + record.TargetLanguage,
		"provider":       s.translator.ProviderName(),
		"glossary_terms": len(terms),
	})

	return &dto.TranslateResponse{
		Id:             record.Id,
		TranslatedText: translated,
		GlossaryName:   glossaryName,
		Provider:       s.translator.ProviderName(),
	}, nil
}

// History lists a user's translations newest first.
func (s *translationService) History(ctx context.Context, userId uint) ([]*dto.HistoryEntry, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	records, err := uow.TranslationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.Newest{},
	)
	if err != nil {
		return nil, fmt.Errorf("load translation history: %w", err)
	}

	names := make(map[uint]string)
	result := make([]*dto.HistoryEntry, 0, len(records))
	for _, r := range records {
		entry := &dto.HistoryEntry{
			Id:             r.Id,
			SourceText:     r.SourceText,
			SourceLanguage: r.SourceLanguage,
			TargetLanguage: r.TargetLanguage,
			TranslatedText: r.TranslatedText,
			GlossaryId:     r.GlossaryId,
			CreatedAt:      r.CreatedAt,
		}

		if r.GlossaryId != nil && *r.GlossaryId != 0 {
			name, seen := names[*r.GlossaryId]
			if !seen {
				glossary, err := uow.GlossaryRepository().FindOne(ctx, specification.ByID{ID: *r.GlossaryId})
				if err != nil {
					return nil, fmt.Errorf("find glossary: %w", err)
				}
				if glossary != nil {
					name = glossary.Name
				}
				names[*r.GlossaryId] = name
			}
			entry.GlossaryName = name
		}

		result = append(result, entry)
	}

	return result, nil
}
