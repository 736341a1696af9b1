package model

import "time"

type User struct {
	Id              uint       `gorm:"primaryKey;autoIncrement"`
	Name            string     `gorm:"type:varchar(100);not null"`
	Email           string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	PrimaryLanguage string     `gorm:"type:varchar(10);not null"`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
	Glossaries      []Glossary `gorm:"many2many:user_glossary;"`
}

func (User) TableName() string {
	return "users"
}
