package mapper

import (
	"lingualink/internal/entity"
	"lingualink/internal/model"
)

type GlossaryMapper struct{}

func NewGlossaryMapper() *GlossaryMapper {
	return &GlossaryMapper{}
}

func (m *GlossaryMapper) ToEntity(g *model.Glossary) *entity.Glossary {
	if g == nil {
		return nil
	}
	return &entity.Glossary{
		Id:             g.Id,
		Name:           g.Name,
		Industry:       g.Industry,
		SourceLanguage: g.SourceLanguage,
		TargetLanguage: g.TargetLanguage,
		CreatedAt:      g.CreatedAt,
	}
}

// ToModel does not carry Terms; they are inserted separately so the
// glossary id is known first.
func (m *GlossaryMapper) ToModel(g *entity.Glossary) *model.Glossary {
	if g == nil {
		return nil
	}
	return &model.Glossary{
		Id:             g.Id,
		Name:           g.Name,
		Industry:       g.Industry,
		SourceLanguage: g.SourceLanguage,
		TargetLanguage: g.TargetLanguage,
		CreatedAt:      g.CreatedAt,
	}
}

func (m *GlossaryMapper) ToEntities(glossaries []*model.Glossary) []*entity.Glossary {
	entities := make([]*entity.Glossary, len(glossaries))
	for i, g := range glossaries {
		entities[i] = m.ToEntity(g)
	}
	return entities
}

func (m *GlossaryMapper) TermToEntity(t *model.GlossaryTerm) *entity.GlossaryTerm {
	if t == nil {
		return nil
	}
	return &entity.GlossaryTerm{
		Id:                t.Id,
		GlossaryId:        t.GlossaryId,
		SourceTerm:        t.SourceTerm,
		TargetTranslation: t.TargetTranslation,
	}
}

func (m *GlossaryMapper) TermToModel(t *entity.GlossaryTerm) *model.GlossaryTerm {
	if t == nil {
		return nil
	}
	return &model.GlossaryTerm{
		Id:                t.Id,
		GlossaryId:        t.GlossaryId,
		SourceTerm:        t.SourceTerm,
		TargetTranslation: t.TargetTranslation,
	}
}

func (m *GlossaryMapper) TermsToEntities(terms []*model.GlossaryTerm) []*entity.GlossaryTerm {
	entities := make([]*entity.GlossaryTerm, len(terms))
	for i, t := range terms {
		entities[i] = m.TermToEntity(t)
	}
	return entities
}
