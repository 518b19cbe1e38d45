package dto

type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type RegisterOutput struct {
	Username     string      `json:"username"`
	Email        string      `json:"email"`
	Status       string      `json:"status"`
	AccessToken  TokenOutput `json:"access_token"`
	RefreshToken TokenOutput `json:"refresh_token"`
}
