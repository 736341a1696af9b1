package entity

import "time"

// Session is a collaborative translation session.
type Session struct {
	Id        uint
	Name      string
	UserId    uint // creator
	IsActive  bool
	CreatedAt time.Time
}

// SessionParticipant links a user to a session with the language they work in.
// Language is copied from the user at join time and never resynced.
type SessionParticipant struct {
	Id        uint
	SessionId uint
	UserId    uint
	Language  string
}
