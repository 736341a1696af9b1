package model

import "time"

type Translation struct {
	Id             uint      `gorm:"primaryKey;autoIncrement"`
	UserId         uint      `gorm:"not null;index"`
	SourceText     string    `gorm:"type:text;not null"`
	SourceLanguage string    `gorm:"type:varchar(10);not null"`
	TargetLanguage string    `gorm:"type:varchar(10);not null"`
	TranslatedText string    `gorm:"type:text;not null"`
	GlossaryId     *uint     `gorm:"index"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index"`
	User           *User     `gorm:"foreignKey:UserId"`
	Glossary       *Glossary `gorm:"foreignKey:GlossaryId"`
}

func (Translation) TableName() string {
	return "translations"
}
