package mapper

import (
	"lingualink/internal/entity"
	"lingualink/internal/model"
)

type TranslationMapper struct{}

func NewTranslationMapper() *TranslationMapper {
	return &TranslationMapper{}
}

func (m *TranslationMapper) ToEntity(t *model.Translation) *entity.Translation {
	if t == nil {
		return nil
	}
	return &entity.Translation{
		Id:             t.Id,
		UserId:         t.UserId,
		SourceText:     t.SourceText,
		SourceLanguage: t.SourceLanguage,
		TargetLanguage: t.TargetLanguage,
		TranslatedText: t.TranslatedText,
		GlossaryId:     t.GlossaryId,
		CreatedAt:      t.CreatedAt,
	}
}

func (m *TranslationMapper) ToModel(t *entity.Translation) *model.Translation {
	if t == nil {
		return nil
	}
	return &model.Translation{
		Id:             t.Id,
		UserId:         t.UserId,
		SourceText:     t.SourceText,
		SourceLanguage: t.SourceLanguage,
		TargetLanguage: t.TargetLanguage,
		TranslatedText: t.TranslatedText,
		GlossaryId:     t.GlossaryId,
		CreatedAt:      t.CreatedAt,
	}
}

func (m *TranslationMapper) ToEntities(translations []*model.Translation) []*entity.Translation {
	entities := make([]*entity.Translation, len(translations))
	for i, t := range translations {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
