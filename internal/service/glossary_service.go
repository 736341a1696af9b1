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

type IGlossaryService interface {
	Create(ctx context.Context, req *dto.CreateGlossaryRequest) (*dto.GlossaryResponse, error)
	List(ctx context.Context) ([]*dto.GlossaryResponse, error)
	// Terms returns the glossary and its terms, or (nil, nil, nil) when the
	// glossary does not exist.
	Terms(ctx context.Context, glossaryId uint) (*dto.GlossaryResponse, []translation.Term, error)
}

type glossaryService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewGlossaryService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IGlossaryService {
	return &glossaryService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *glossaryService) Create(ctx context.Context, req *dto.CreateGlossaryRequest) (*dto.GlossaryResponse, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	glossary := &entity.Glossary{
		Name:           req.Name,
		Industry:       req.Industry,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
	}
	if err := uow.GlossaryRepository().Create(ctx, glossary); err != nil {
		return nil, fmt.Errorf("create glossary: %w", err)
	}

	terms := make([]*entity.GlossaryTerm, 0, len(req.Terms))
	for _, t := range req.Terms {
		terms = append(terms, &entity.GlossaryTerm{
			GlossaryId:        glossary.Id,
			SourceTerm:        t.SourceTerm,
			TargetTranslation: t.TargetTranslation,
		})
	}
	if err := uow.GlossaryRepository().CreateTerms(ctx, terms); err != nil {
		return nil, fmt.Errorf("create glossary terms: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("create glossary: %w", err)
	}

	s.logger.Info("GlossaryService", "Glossary created", map[string]interface{}{
		"glossary_id": glossary.Id,
		"terms":       len(terms),
	})

	return toGlossaryResponse(glossary, int64(len(terms))), nil
}

func (s *glossaryService) List(ctx context.Context) ([]*dto.GlossaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	glossaries, err := uow.GlossaryRepository().FindAll(ctx, specification.OrderBy{Field: "id"})
	if err != nil {
		return nil, fmt.Errorf("list glossaries: %w", err)
	}
	if len(glossaries) == 0 {
		return []*dto.GlossaryResponse{}, nil
	}

	counts, err := uow.GlossaryRepository().CountTermsByGlossary(ctx)
	if err != nil {
		return nil, fmt.Errorf("count glossary terms: %w", err)
	}

	result := make([]*dto.GlossaryResponse, 0, len(glossaries))
	for _, g := range glossaries {
		result = append(result, toGlossaryResponse(g, counts[g.Id]))
	}
	return result, nil
}

func (s *glossaryService) Terms(ctx context.Context, glossaryId uint) (*dto.GlossaryResponse, []translation.Term, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	glossary, err := uow.GlossaryRepository().FindOne(ctx, specification.ByID{ID: glossaryId})
	if err != nil {
		return nil, nil, fmt.Errorf("find glossary: %w", err)
	}
	if glossary == nil {
		return nil, nil, nil
	}

	rows, err := uow.GlossaryRepository().FindTerms(ctx, specification.ByGlossaryID{GlossaryID: glossaryId})
	if err != nil {
		return nil, nil, fmt.Errorf("find glossary terms: %w", err)
	}

	terms := make([]translation.Term, 0, len(rows))
	for _, row := range rows {
		terms = append(terms, translation.Term{Source: row.SourceTerm, Target: row.TargetTranslation})
	}

	return toGlossaryResponse(glossary, int64(len(terms))), terms, nil
}

func toGlossaryResponse(g *entity.Glossary, termCount int64) *dto.GlossaryResponse {
	return &dto.GlossaryResponse{
		Id:             g.Id,
		Name:           g.Name,
		Industry:       g.Industry,
		SourceLanguage: g.SourceLanguage,
		TargetLanguage: g.TargetLanguage,
		TermCount:      termCount,
	}
}
