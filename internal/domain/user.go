package domain

// User is an account allowed to obtain API tokens.
// UserID is the login name; the password is only ever held as a bcrypt hash.
type User struct {
	UserID         string
	HashedPassword string `json:"-"`
}
