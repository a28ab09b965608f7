package auth

// LoginDTO mirrors the OAuth2 password form: username is the email.
type LoginDTO struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type SeedAdminDTO struct {
	Email    string `form:"email"    binding:"required"`
	Password string `form:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
