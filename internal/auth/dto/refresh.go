package dto

type RefreshInput struct {
	Username     string `json:"username"`
	RefreshToken string `json:"-"`
}

type RefreshOutput struct {
	Username    string      `json:"username"`
	Status      string      `json:"status"`
	AccessToken TokenOutput `json:"access_token"`
}
