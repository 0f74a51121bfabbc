package handlers_test

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/SscSPs/ledger_app/internal/apperrors"
	"github.com/SscSPs/ledger_app/internal/core/domain"
	"github.com/SscSPs/ledger_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) account(code, name string, t domain.AccountType) *domain.Account {
	now := time.Now().UTC()
	return &domain.Account{
		AccountID:   uuid.NewString(),
		ClientID:    suite.clientID,
		Code:        code,
		Name:        name,
		AccountType: t,
		IsActive:    true,
		Timestamps:  domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
}

func (suite *HandlerTestSuite) TestCreateAccount_Success() {
	created := suite.account("1000", "Cash", domain.Asset)
	expectedReq := dto.CreateAccountRequest{Code: "1000", Name: "Cash", AccountType: domain.Asset}
	suite.mockAccountService.On("CreateAccount", mock.Anything, suite.clientID, expectedReq).Return(created, nil).Once()

	w := suite.perform(http.MethodPost, "/api/v1/accounts", map[string]string{"code": "1000", "name": "Cash", "type": "ASSET"})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.AccountID, resp.AccountID)
	suite.Equal(domain.Asset, resp.AccountType)
	suite.True(resp.IsActive)
}

func (suite *HandlerTestSuite) TestCreateAccount_DuplicateCode() {
	suite.mockAccountService.On("CreateAccount", mock.Anything, suite.clientID, mock.AnythingOfType("dto.CreateAccountRequest")).
		Return(nil, apperrors.NewAppError(http.StatusConflict, "account code already exists", apperrors.ErrDuplicate)).Once()

	w := suite.perform(http.MethodPost, "/api/v1/accounts", map[string]string{"code": "1000", "name": "Cash", "type": "ASSET"})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("DUPLICATE", suite.decodeError(w).Kind)
}

func (suite *HandlerTestSuite) TestCreateAccount_BindingFailures() {
	cases := map[string]any{
		"bad code":     map[string]string{"code": "10 00!", "name": "Cash", "type": "ASSET"},
		"long code":    map[string]string{"code": "123456789012345678901", "name": "Cash", "type": "ASSET"},
		"unknown type": map[string]string{"code": "1000", "name": "Cash", "type": "INCOME"},
		"missing name": map[string]string{"code": "1000", "type": "ASSET"},
		"malformed":    `{"code":`,
	}
	for name, body := range cases {
		suite.Run(name, func() {
			w := suite.perform(http.MethodPost, "/api/v1/accounts", body)
			suite.Equal(http.StatusBadRequest, w.Code)
			suite.Equal("VALIDATION", suite.decodeError(w).Kind)
		})
	}
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetAccount_NotFound() {
	accountID := uuid.NewString()
	suite.mockAccountService.On("GetAccountByID", mock.Anything, suite.clientID, accountID).
		Return(nil, apperrors.NewNotFoundError("account")).Once()

	w := suite.perform(http.MethodGet, "/api/v1/accounts/"+accountID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("NOT_FOUND", suite.decodeError(w).Kind)
}

func (suite *HandlerTestSuite) TestListAccounts_PassesFilters() {
	accounts := []domain.Account{*suite.account("1000", "Cash", domain.Asset), *suite.account("1100", "Bank", domain.Asset)}
	suite.mockAccountService.On("ListAccounts", mock.Anything, suite.clientID, mock.MatchedBy(func(p dto.ListAccountsParams) bool {
		return p.Type == "ASSET" && p.Active != nil && *p.Active
	})).Return(accounts, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/accounts?type=ASSET&active=true", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListAccountsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Accounts, 2)
	suite.Equal("1000", resp.Accounts[0].Code)
	suite.Equal("1100", resp.Accounts[1].Code)
}

func (suite *HandlerTestSuite) TestListAccounts_InvalidType() {
	w := suite.perform(http.MethodGet, "/api/v1/accounts?type=INCOME", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateAccount_Deactivate() {
	acc := suite.account("1000", "Cash", domain.Asset)
	acc.IsActive = false
	suite.mockAccountService.On("UpdateAccount", mock.Anything, suite.clientID, acc.AccountID, mock.MatchedBy(func(r dto.UpdateAccountRequest) bool {
		return r.IsActive != nil && !*r.IsActive && r.Name == nil
	})).Return(acc, nil).Once()

	w := suite.perform(http.MethodPut, "/api/v1/accounts/"+acc.AccountID, map[string]bool{"active": false})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.IsActive)
}

func (suite *HandlerTestSuite) TestGetAccountBalance() {
	accountID := uuid.NewString()
	suite.mockReportService.On("AccountBalance", mock.Anything, suite.clientID, accountID).Return(&domain.AccountBalance{
		AccountID:   accountID,
		AccountCode: "1000",
		AccountName: "Cash",
		AccountType: domain.Asset,
		Balance:     decimal.RequireFromString("9800"),
	}, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/accounts/"+accountID+"/balance", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("9800.00", resp.Balance)
	suite.Equal("1000", resp.AccountCode)
}
