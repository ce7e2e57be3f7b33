package domain

// User represents an account that can sign in to the application.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}

// Identity is the authenticated principal attached to a session.
type Identity struct {
	UserID   int64
	Username string
}

// Identity returns the session identity for the user.
func (u *User) Identity() Identity {
	return Identity{UserID: u.ID, Username: u.Username}
}
