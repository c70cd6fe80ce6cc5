package models

// Member represents a registered account used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type Member struct {
	// ID is the store-generated identifier of the member.
	ID int64 `json:"id"`

	// Nama is the display name of the member.
	Nama string `json:"nama"`

	// Email is the unique login identifier of the member.
	Email string `json:"email"`

	// Password holds the bcrypt hash of the member's password, never the
	// plaintext. It is never serialized.
	Password string `json:"-"`
}

// TableName returns the name of the database table
// associated with the Member model.
func (m Member) TableName() string {
	return "members"
}

// Info returns the public projection of the member returned after login.
func (m Member) Info() MemberInfo {
	return MemberInfo{ID: m.ID, Email: m.Email}
}

// MemberInfo is the public part of a member embedded in a login result.
type MemberInfo struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// LoginResult is the payload returned by a successful login.
type LoginResult struct {
	// Token is the compact signed token the client presents on later requests.
	Token string `json:"token"`

	// User identifies the member the token was issued for.
	User MemberInfo `json:"user"`
}

// RegistrasiRequest is the body of POST /member/registrasi.
type RegistrasiRequest struct {
	Nama     string `json:"nama"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /member/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
