package models

// Client is a row of the clients table.
type Client struct {
	ClientID string  `db:"id"`
	Name     string  `db:"name"`
	Email    string  `db:"email"`
	Phone    *string `db:"phone"`
	Address  *string `db:"address"`
	IsActive bool    `db:"active"`
	Timestamps
}
