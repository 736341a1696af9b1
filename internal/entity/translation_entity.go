package entity

import "time"

// Translation is an append-only history record.
type Translation struct {
	Id             uint
	UserId         uint
	SourceText     string
	SourceLanguage string
	TargetLanguage string
	TranslatedText string
	GlossaryId     *uint
	CreatedAt      time.Time
}
