package model

import "time"

type Session struct {
	Id           uint                 `gorm:"primaryKey;autoIncrement"`
	Name         string               `gorm:"type:varchar(100);not null"`
	UserId       uint                 `gorm:"not null;index"`
	CreatedAt    time.Time            `gorm:"autoCreateTime"`
	IsActive     bool                 `gorm:"not null;default:true"`
	User         *User                `gorm:"foreignKey:UserId"`
	Participants []SessionParticipant `gorm:"foreignKey:SessionId"`
}

func (Session) TableName() string {
	return "sessions"
}

// SessionParticipant has no unique index on (session_id, user_id); the
// session service checks for an existing row before inserting.
type SessionParticipant struct {
	Id        uint   `gorm:"primaryKey;autoIncrement"`
	SessionId uint   `gorm:"not null;index"`
	UserId    uint   `gorm:"not null;index"`
	Language  string `gorm:"type:varchar(10);not null"`
	User      *User  `gorm:"foreignKey:UserId"`
}

func (SessionParticipant) TableName() string {
	return "session_participants"
}
