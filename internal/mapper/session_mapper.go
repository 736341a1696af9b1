package mapper

import (
	"lingualink/internal/entity"
	"lingualink/internal/model"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToEntity(s *model.Session) *entity.Session {
	if s == nil {
		return nil
	}
	return &entity.Session{
		Id:        s.Id,
		Name:      s.Name,
		UserId:    s.UserId,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
	}
}

func (m *SessionMapper) ToModel(s *entity.Session) *model.Session {
	if s == nil {
		return nil
	}
	return &model.Session{
		Id:        s.Id,
		Name:      s.Name,
		UserId:    s.UserId,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
	}
}

func (m *SessionMapper) ParticipantToEntity(p *model.SessionParticipant) *entity.SessionParticipant {
	if p == nil {
		return nil
	}
	return &entity.SessionParticipant{
		Id:        p.Id,
		SessionId: p.SessionId,
		UserId:    p.UserId,
		Language:  p.Language,
	}
}

func (m *SessionMapper) ParticipantToModel(p *entity.SessionParticipant) *model.SessionParticipant {
	if p == nil {
		return nil
	}
	return &model.SessionParticipant{
		Id:        p.Id,
		SessionId: p.SessionId,
		UserId:    p.UserId,
		Language:  p.Language,
	}
}

func (m *SessionMapper) ParticipantsToEntities(participants []*model.SessionParticipant) []*entity.SessionParticipant {
	entities := make([]*entity.SessionParticipant, len(participants))
	for i, p := range participants {
		entities[i] = m.ParticipantToEntity(p)
	}
	return entities
}

func (m *SessionMapper) ToEntities(sessions []*model.Session) []*entity.Session {
	entities := make([]*entity.Session, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
