package dto

// LoginInput's Username field accepts either a username or an email; the
// service classifies it before choosing a lookup.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginOutput struct {
	Username     string      `json:"username"`
	Status       string      `json:"status"`
	AccessToken  TokenOutput `json:"access_token"`
	RefreshToken TokenOutput `json:"refresh_token"`
}
