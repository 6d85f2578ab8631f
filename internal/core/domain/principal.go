package domain

// Principal is an authenticated identity with its resolved role. It is
// produced by the auth service and never persisted by the core.
type Principal struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// UserRecord is the stored credential shape a directory resolves an email
// address to. Secret holds either a bcrypt hash or, for the seeded demo
// accounts, the plaintext password.
type UserRecord struct {
	ID     string
	Name   string
	Email  string
	Secret string
	Role   Role
}
