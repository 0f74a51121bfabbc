package domain

// Client is a tenant. Every account and transaction is owned by exactly one client.
type Client struct {
	ClientID string `json:"clientID"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	IsActive bool   `json:"isActive"`
	Timestamps
}
