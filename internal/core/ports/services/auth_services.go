package services

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_app/internal/core/domain"
	"github.com/SscSPs/ledger_app/internal/dto"
)

// AuthResult is the outcome of a successful register or login.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
	Client    *domain.Client
}

// AuthSvcFacade defines tenant registration, login and principal lookup.
type AuthSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req dto.LoginRequest) (*AuthResult, error)
	Me(ctx context.Context, userID string) (*domain.User, *domain.Client, error)
}
