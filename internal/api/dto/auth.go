package dto

// CredentialsRequest is the body of register and login.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenPairResponse is returned by login.
type TokenPairResponse struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
}

// RefreshRequest exchanges a refresh token for a new access token.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// AccessTokenResponse is returned by refresh.
type AccessTokenResponse struct {
	Access string `json:"access"`
}

// MeResponse describes the authenticated user.
type MeResponse struct {
	Email string `json:"email"`
	ID    uint   `json:"id"`
	IsPro bool   `json:"isPro"`
}

// UpgradeResponse is returned by upgrade-to-pro.
type UpgradeResponse struct {
	Detail string `json:"detail"`
	IsPro  bool   `json:"isPro"`
}
