package entity

import "time"

type User struct {
	Id              uint
	Name            string
	Email           string
	PrimaryLanguage string
	CreatedAt       time.Time
}
