package models

// User is a row of the users table.
type User struct {
	UserID       string `db:"id"`
	ClientID     string `db:"client_id"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	IsActive     bool   `db:"active"`
	Timestamps
}
