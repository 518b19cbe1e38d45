package dto

type ForgotPasswordInput struct {
	Email string `json:"email"`
}

type ForgotPasswordOutput struct {
	Status string `json:"status"`
	Email  string `json:"email"`
}

type ResetPasswordInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Token    string `json:"-"`
}
