package entity

// User is a credential record kept in the users collection.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"` // bcrypt hash; omitted from the session record.
}

// Session is what a successful login hands back to the client.
type Session struct {
	User        User   `json:"user"`
	AccessToken string `json:"accessToken"`
}
