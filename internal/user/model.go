package user

// User is a registered account stored in the users collection.
type User struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// Session is the current-user record. It is persisted verbatim under
// its own key so a restart stays logged in.
type Session struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
