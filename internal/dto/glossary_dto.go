package dto

type GlossaryTermRequest struct {
	SourceTerm        string `validate:"required,max=200"`
	TargetTranslation string `validate:"required,max=200"`
}

type CreateGlossaryRequest struct {
	Name           string                `validate:"required,max=100"`
	Industry       *string               `validate:"omitempty,max=50"`
	SourceLanguage string                `validate:"required,max=10,langtag"`
	TargetLanguage string                `validate:"required,max=10,langtag"`
	Terms          []GlossaryTermRequest `validate:"dive"`
}

type GlossaryResponse struct {
	Id             uint
	Name           string
	Industry       *string
	SourceLanguage string
	TargetLanguage string
	TermCount      int64
}
