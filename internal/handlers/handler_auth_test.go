package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/ledger_app/internal/apperrors"
	"github.com/SscSPs/ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) principal() (*domain.User, *domain.Client) {
	client := &domain.Client{ClientID: suite.clientID, Name: "Demo Company", Email: "owner@demo.test", IsActive: true}
	user := &domain.User{UserID: suite.userID, ClientID: suite.clientID, Email: "owner@demo.test", FirstName: "Dana", LastName: "Owner", IsActive: true}
	return user, client
}

func (suite *HandlerTestSuite) TestRegister_Success() {
	user, client := suite.principal()
	req := dto.RegisterRequest{
		CompanyName: "Demo Company",
		Email:       "owner@demo.test",
		Password:    "password123",
		FirstName:   "Dana",
		LastName:    "Owner",
	}
	suite.mockAuthService.On("Register", mock.Anything, req).Return(&portssvc.AuthResult{
		Token: "signed", ExpiresAt: time.Now().Add(time.Hour), User: user, Client: client,
	}, nil).Once()

	w := suite.performAnonymous(http.MethodPost, "/auth/register", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AuthResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed", resp.Token)
	suite.Equal(suite.clientID, resp.Client.ClientID)
	suite.Equal(suite.userID, resp.User.UserID)
}

func (suite *HandlerTestSuite) TestRegister_DuplicateEmail() {
	suite.mockAuthService.On("Register", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewAppError(http.StatusConflict, "email already registered", apperrors.ErrDuplicate)).Once()

	w := suite.performAnonymous(http.MethodPost, "/auth/register", dto.RegisterRequest{
		CompanyName: "Demo Company", Email: "owner@demo.test", Password: "password123", FirstName: "Dana", LastName: "Owner",
	})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestRegister_ShortPassword() {
	w := suite.performAnonymous(http.MethodPost, "/auth/register", dto.RegisterRequest{
		CompanyName: "Demo Company", Email: "owner@demo.test", Password: "short", FirstName: "Dana", LastName: "Owner",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestLogin_InvalidCredentials() {
	suite.mockAuthService.On("Login", mock.Anything, dto.LoginRequest{Email: "owner@demo.test", Password: "wrong"}).
		Return(nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)).Once()

	w := suite.performAnonymous(http.MethodPost, "/auth/login", dto.LoginRequest{Email: "owner@demo.test", Password: "wrong"})

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestLogin_Success() {
	user, client := suite.principal()
	suite.mockAuthService.On("Login", mock.Anything, mock.Anything).Return(&portssvc.AuthResult{
		Token: "signed", ExpiresAt: time.Now().Add(time.Hour), User: user, Client: client,
	}, nil).Once()

	w := suite.performAnonymous(http.MethodPost, "/auth/login", dto.LoginRequest{Email: "owner@demo.test", Password: "password123"})

	suite.Equal(http.StatusOK, w.Code)
	suite.NotEmpty(w.Header().Get("X-RateLimit-Limit"))
}

func (suite *HandlerTestSuite) TestMe() {
	user, client := suite.principal()
	suite.mockAuthService.On("Me", mock.Anything, suite.userID).Return(user, client, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/auth/me", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.MeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Demo Company", resp.Client.Name)
	suite.Equal("Dana", resp.User.FirstName)
}
