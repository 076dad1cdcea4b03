package auth

import "github.com/golang-jwt/jwt/v5"

// AccessTokenClaims is the typed JWT issued to the admin dashboard. The only
// application claim is the username; there is no session id because tokens
// are validated statelessly (signature + expiry).
type AccessTokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
