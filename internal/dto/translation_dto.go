package dto

import "time"

type TranslateRequest struct {
	UserId         uint   `validate:"required"`
	Text           string `validate:"required"`
	SourceLanguage string `validate:"required,max=10,langtag"`
	TargetLanguage string `validate:"required,max=10,langtag"`
	// GlossaryId is optional; zero means none.
	GlossaryId uint
}

type TranslateResponse struct {
	Id             uint
	TranslatedText string
	// GlossaryName is empty when no glossary was found for the request.
	GlossaryName string
	Provider     string
}

type HistoryEntry struct {
	Id             uint
	SourceText     string
	SourceLanguage string
	TargetLanguage string
	TranslatedText string
	GlossaryId     *uint
	// GlossaryName is empty when the referenced glossary no longer exists.
	GlossaryName string
	CreatedAt    time.Time
}
