package entity

import "time"

// Glossary is a named set of term translations for one language pair.
type Glossary struct {
	Id             uint
	Name           string
	Industry       *string
	SourceLanguage string
	TargetLanguage string
	CreatedAt      time.Time
}

type GlossaryTerm struct {
	Id                uint
	GlossaryId        uint
	SourceTerm        string
	TargetTranslation string
}

// GlossarySummary is a glossary together with the number of terms it owns.
type GlossarySummary struct {
	Glossary
	TermCount int64
}
