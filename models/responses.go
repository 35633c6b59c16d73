package models

// TokenResponse is the body returned by a successful login. The client
// presents the token as a bearer credential on subsequent requests.
type TokenResponse struct {
	// Token is the compact JWS serialization of the issued JWT.
	Token string `json:"token"`
}
