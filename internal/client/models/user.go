package models

// User is the authenticated principal. Its JSON form is the persisted
// session record.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Token is the opaque bearer token sent as the Authorization header.
	Token string `json:"token"`
}

// Valid reports whether every field of u is populated.
func (u *User) Valid() bool {
	if u == nil {
		return false
	}
	return u.ID > 0 &&
		u.Email != "" &&
		u.Username != "" &&
		u.FirstName != "" &&
		u.LastName != "" &&
		u.Token != ""
}

// Clone returns a copy of u, or nil for nil.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
