package model

// CredentialStore defines durable storage for the three credential entries
// written at login: bearer token, user id and the role list. Each entry
// expires independently, an expired entry reads back as absent.
type CredentialStore interface {
	Token() (string, bool)
	SetToken(token string) error

	UserID() (string, bool)
	SetUserID(id string) error

	Roles() []Role
	SetRoles(roles []Role) error

	// Clear removes all three entries.
	Clear() error
}
