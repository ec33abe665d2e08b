package model

// LoginRequest carries user credentials for the token exchange.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the backend's answer to a successful login.
type LoginResponse struct {
	JwtToken string `json:"jwtToken"`
}

// RegisterRequest creates a base user account.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Ime      string `json:"ime"`
	Prezime  string `json:"prezime"`
}

// RegisterSellerRequest upgrades the authenticated account with a seller
// profile.
type RegisterSellerRequest struct {
	Bio         string `json:"bio"`
	ImeFirme    string `json:"imeFirme"`
	Mesto       string `json:"mesto,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	PfpURL      string `json:"pfpUrl,omitempty"`
}

// ChangePasswordRequest rotates the account password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
