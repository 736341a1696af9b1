package model

import "time"

type Glossary struct {
	Id             uint           `gorm:"primaryKey;autoIncrement"`
	Name           string         `gorm:"type:varchar(100);not null"`
	Industry       *string        `gorm:"type:varchar(50)"`
	SourceLanguage string         `gorm:"type:varchar(10);not null"`
	TargetLanguage string         `gorm:"type:varchar(10);not null"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	Terms          []GlossaryTerm `gorm:"foreignKey:GlossaryId"`
	Users          []User         `gorm:"many2many:user_glossary;"`
}

func (Glossary) TableName() string {
	return "glossaries"
}

type GlossaryTerm struct {
	Id                uint   `gorm:"primaryKey;autoIncrement"`
	GlossaryId        uint   `gorm:"not null;index"`
	SourceTerm        string `gorm:"type:varchar(200);not null"`
	TargetTranslation string `gorm:"type:varchar(200);not null"`
}

func (GlossaryTerm) TableName() string {
	return "glossary_terms"
}
