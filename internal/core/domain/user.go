package domain

// User is a login belonging to a single client.
type User struct {
	UserID       string `json:"userID"`
	ClientID     string `json:"clientID"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	IsActive     bool   `json:"isActive"`
	Timestamps
}
