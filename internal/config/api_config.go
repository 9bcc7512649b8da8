package config

import "strings"

const (
	apiBaseURLVar = "API_BASE_URL"
	oidcIssuerVar = "OIDC_ISSUER"
)

type API struct{}

var _ APIConfig = API{}

// GetAPIBaseURL returns the root of the boarding house API, without a trailing slash
func (API) GetAPIBaseURL() string {
	return strings.TrimRight(GetEnv(apiBaseURLVar, "http://localhost:8000/api"), "/")
}

// GetTokenPath is the credential exchange endpoint relative to the API base URL
func (API) GetTokenPath() string {
	return "/token"
}

// GetOIDCIssuer returns the issuer used to verify tokens. Empty disables verification.
func (API) GetOIDCIssuer() string {
	return GetEnv(oidcIssuerVar, "")
}
