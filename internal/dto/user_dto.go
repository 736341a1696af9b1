package dto

type CreateUserRequest struct {
	Name            string `validate:"required,max=100"`
	Email           string `validate:"required,email,max=100"`
	PrimaryLanguage string `validate:"required,max=10,langtag"`
}

type UserResponse struct {
	Id              uint
	Name            string
	Email           string
	PrimaryLanguage string
}
