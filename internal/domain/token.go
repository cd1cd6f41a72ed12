package domain

// DefaultTokenType is the token type reported when none is set
const DefaultTokenType = "Bearer"

// TokenResponse is returned to clients after a successful authentication
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// NewTokenResponse creates a bearer token response expiring in expiresIn seconds
func NewTokenResponse(accessToken string, expiresIn int64) *TokenResponse {
	return &TokenResponse{
		AccessToken: accessToken,
		TokenType:   DefaultTokenType,
		ExpiresIn:   expiresIn,
	}
}
