package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ledger_app/internal/apperrors"
	"github.com/SscSPs/ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_app/internal/dto"
	"github.com/SscSPs/ledger_app/internal/platform/config"
	"github.com/SscSPs/ledger_app/internal/utils"
	"github.com/google/uuid"
)

var errInvalidCredentials = fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)

// authService registers tenants and issues access tokens.
type authService struct {
	BaseService
	cfg        *config.Config
	clientRepo portsrepo.ClientRepositoryFacade
	userRepo   portsrepo.UserReader
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, clientRepo portsrepo.ClientRepositoryFacade, userRepo portsrepo.UserReader) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, clientRepo: clientRepo, userRepo: userRepo}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Register creates a client and its first user together, then logs the user in.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*portssvc.AuthResult, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	email := strings.ToLower(strings.TrimSpace(req.Email))
	client := domain.Client{
		ClientID:   uuid.NewString(),
		Name:       strings.TrimSpace(req.CompanyName),
		Email:      email,
		Phone:      req.Phone,
		Address:    req.Address,
		IsActive:   true,
		Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	user := domain.User{
		UserID:       uuid.NewString(),
		ClientID:     client.ClientID,
		Email:        email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		IsActive:     true,
		Timestamps:   domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.clientRepo.SaveClientWithUser(ctx, client, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogWarn(ctx, "Registration rejected, email already registered", slog.String("email", email))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to register client")
		return nil, err
	}

	s.LogInfo(ctx, "Client registered", slog.String("client_id", client.ClientID), slog.String("user_id", user.UserID))
	return s.issue(&user, &client)
}

// Login verifies credentials. Unknown email, wrong password and inactive principals
// all fail the same way.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*portssvc.AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, err
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogWarn(ctx, "Login failed", slog.String("user_id", user.UserID))
		return nil, errInvalidCredentials
	}
	if !user.IsActive {
		s.LogWarn(ctx, "Login attempt for inactive user", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("%w: user is inactive", apperrors.ErrUnauthorized)
	}

	client, err := s.clientRepo.FindClientByID(ctx, user.ClientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load client for login", slog.String("client_id", user.ClientID))
		return nil, err
	}
	if !client.IsActive {
		s.LogWarn(ctx, "Login attempt for inactive client", slog.String("client_id", client.ClientID))
		return nil, fmt.Errorf("%w: client is inactive", apperrors.ErrUnauthorized)
	}

	return s.issue(user, client)
}

// Me returns the authenticated user and the client it belongs to.
func (s *authService) Me(ctx context.Context, userID string) (*domain.User, *domain.Client, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	client, err := s.clientRepo.FindClientByID(ctx, user.ClientID)
	if err != nil {
		return nil, nil, err
	}
	return user, client, nil
}

func (s *authService) issue(user *domain.User, client *domain.Client) (*portssvc.AuthResult, error) {
	token, expiresAt, err := utils.GenerateJWT(user.UserID, client.ClientID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	return &portssvc.AuthResult{Token: token, ExpiresAt: expiresAt, User: user, Client: client}, nil
}
