package dto

type CreateSessionRequest struct {
	Name   string `validate:"required,max=100"`
	UserId uint
}

type CreateSessionResponse struct {
	Id   uint
	Name string
	// CreatorJoined is false when the creator does not exist and no
	// founding participant was written.
	CreatorJoined bool
}

type JoinSessionRequest struct {
	SessionId uint
	UserId    uint
}

type JoinSessionResponse struct {
	SessionName string
	UserName    string
	Language    string
}
