package model

// Role is a named permission tier assigned by the backend.
//
// The known set is closed today, but the backend may introduce new roles
// without a client release, so Role stays an open string rather than a
// sealed enum.
type Role string

const (
	RoleUser   Role = "User"
	RoleSeller Role = "Seller"
	RoleAdmin  Role = "Admin"
)

// User represents a marketplace account profile. Seller accounts are the
// same record with the company fields populated; there is no separate type
// on the wire, membership of RoleSeller in Roles is the discriminator.
type User struct {
	ID                string `json:"id"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	Ime               string `json:"ime"`
	Prezime           string `json:"prezime"`
	DatumRegistracije string `json:"datumRegistracije"`
	PhoneNumber       string `json:"phoneNumber,omitempty"`
	IsFirstLogin      bool   `json:"isFirstLogin"`
	Roles             []Role `json:"roles"`

	// Seller-only fields.
	ImeFirme   string  `json:"imeFirme,omitempty"`
	Bio        string  `json:"bio,omitempty"`
	PfpURL     string  `json:"pfpUrl,omitempty"`
	Ocena      float64 `json:"ocena,omitempty"`
	IsVerified bool    `json:"isVerified,omitempty"`
}

// HasRole reports whether the user carries the given role.
func (u User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsSeller reports whether the profile is a seller profile.
func (u User) IsSeller() bool {
	return u.HasRole(RoleSeller) || u.ImeFirme != ""
}
