package dto

import (
	"time"

	"github.com/SscSPs/ledger_app/internal/core/domain"
)

// RegisterRequest creates a tenant and its first user.
type RegisterRequest struct {
	CompanyName string `json:"companyName" binding:"required,max=255"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
	FirstName   string `json:"firstName" binding:"required,max=100"`
	LastName    string `json:"lastName" binding:"required,max=100"`
	Phone       string `json:"phone" binding:"max=50"`
	Address     string `json:"address" binding:"max=500"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse defines the user data returned by auth endpoints.
type UserResponse struct {
	UserID    string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// ClientResponse defines the tenant data returned by auth endpoints.
type ClientResponse struct {
	ClientID string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
	User      UserResponse   `json:"user"`
	Client    ClientResponse `json:"client"`
}

// MeResponse is returned for the authenticated principal.
type MeResponse struct {
	User   UserResponse   `json:"user"`
	Client ClientResponse `json:"client"`
}

// ToUserResponse converts a domain.User.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{UserID: u.UserID, Email: u.Email, FirstName: u.FirstName, LastName: u.LastName}
}

// ToClientResponse converts a domain.Client.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{ClientID: c.ClientID, Name: c.Name, Email: c.Email, Phone: c.Phone, Address: c.Address}
}
