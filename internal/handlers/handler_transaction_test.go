package handlers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/ledger_app/internal/apperrors"
	"github.com/SscSPs/ledger_app/internal/core/domain"
	"github.com/SscSPs/ledger_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func cashSaleBody(cashID, salesID string) map[string]any {
	return map[string]any{
		"date":        "2025-01-15",
		"description": "Cash sale",
		"entries": []map[string]any{
			{"accountId": cashID, "amount": "100.00", "side": "DEBIT"},
			{"accountId": salesID, "amount": "100.00", "side": "CREDIT"},
		},
	}
}

func (suite *HandlerTestSuite) TestCreateTransaction_Success() {
	cashID, salesID := uuid.NewString(), uuid.NewString()
	txnID := uuid.NewString()
	posted := &domain.Transaction{
		TransactionID: txnID,
		ClientID:      suite.clientID,
		Date:          time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Description:   "Cash sale",
		CreatedAt:     time.Now().UTC(),
		Entries: []domain.LedgerEntry{
			{EntryID: uuid.NewString(), TransactionID: txnID, AccountID: cashID, Amount: decimal.NewFromInt(100), Side: domain.Debit,
				Account: &domain.AccountRef{Code: "1000", Name: "Cash", AccountType: domain.Asset}},
			{EntryID: uuid.NewString(), TransactionID: txnID, AccountID: salesID, Amount: decimal.NewFromInt(100), Side: domain.Credit,
				Account: &domain.AccountRef{Code: "4000", Name: "Sales", AccountType: domain.Revenue}},
		},
	}
	suite.mockTxnService.On("CreateTransaction", mock.Anything, suite.clientID, mock.MatchedBy(func(r dto.CreateTransactionRequest) bool {
		return r.Date == "2025-01-15" && len(r.Entries) == 2 &&
			r.Entries[0].AccountID == cashID && r.Entries[0].Amount.Equal(decimal.NewFromInt(100)) && r.Entries[0].Side == "DEBIT"
	})).Return(posted, nil).Once()

	w := suite.perform(http.MethodPost, "/api/v1/transactions", cashSaleBody(cashID, salesID))

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(txnID, resp.TransactionID)
	suite.Equal("2025-01-15", resp.Date)
	suite.Require().Len(resp.Entries, 2)
	suite.Equal("100.00", resp.Entries[0].Amount)
	suite.Require().NotNil(resp.Entries[1].Account)
	suite.Equal("Sales", resp.Entries[1].Account.Name)
}

func (suite *HandlerTestSuite) TestCreateTransaction_Rejections() {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{"invalid structure", fmt.Errorf("%w: at least two entries are required", apperrors.ErrInvalidStructure), http.StatusBadRequest, "INVALID_STRUCTURE"},
		{"unknown account", fmt.Errorf("%w: %s", apperrors.ErrUnknownAccount, "acc"), http.StatusBadRequest, "UNKNOWN_ACCOUNT"},
		{"write failure", fmt.Errorf("%w: %w", apperrors.ErrWriteFailure, errors.New("conn reset")), http.StatusInternalServerError, "WRITE_FAILURE"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.mockTxnService.On("CreateTransaction", mock.Anything, suite.clientID, mock.Anything).Return(nil, tt.err).Once()

			w := suite.perform(http.MethodPost, "/api/v1/transactions", cashSaleBody(uuid.NewString(), uuid.NewString()))

			suite.Equal(tt.wantStatus, w.Code)
			suite.Equal(tt.wantKind, suite.decodeError(w).Kind)
		})
	}
}

func (suite *HandlerTestSuite) TestCreateTransaction_UnbalancedReportsTotals() {
	suite.mockTxnService.On("CreateTransaction", mock.Anything, suite.clientID, mock.Anything).Return(nil, &apperrors.UnbalancedError{
		Debits:  decimal.RequireFromString("100"),
		Credits: decimal.RequireFromString("90"),
	}).Once()

	w := suite.perform(http.MethodPost, "/api/v1/transactions", cashSaleBody(uuid.NewString(), uuid.NewString()))

	suite.Equal(http.StatusBadRequest, w.Code)
	body := suite.decodeError(w)
	suite.Equal("UNBALANCED", body.Kind)
	suite.Equal("100.00", body.Debits)
	suite.Equal("90.00", body.Credits)
}

func (suite *HandlerTestSuite) TestCreateTransaction_WriteFailureHidesCause() {
	suite.mockTxnService.On("CreateTransaction", mock.Anything, suite.clientID, mock.Anything).
		Return(nil, fmt.Errorf("%w: %w", apperrors.ErrWriteFailure, errors.New("pq: relation missing"))).Once()

	w := suite.perform(http.MethodPost, "/api/v1/transactions", cashSaleBody(uuid.NewString(), uuid.NewString()))

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to record transaction", suite.decodeError(w).Error)
}

func (suite *HandlerTestSuite) TestCreateTransaction_MissingDescription() {
	w := suite.perform(http.MethodPost, "/api/v1/transactions", map[string]any{"date": "2025-01-15"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTxnService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListTransactions_PassesParams() {
	next := "bmV4dA=="
	suite.mockTxnService.On("ListTransactions", mock.Anything, suite.clientID, mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
		return p.Limit == 10 && p.StartDate == "2025-01-01" && p.EndDate == "" && p.NextToken == nil
	})).Return(&dto.ListTransactionsResponse{Transactions: []dto.TransactionResponse{}, NextToken: &next}, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/transactions?limit=10&startDate=2025-01-01", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)
}

func (suite *HandlerTestSuite) TestListTransactions_DefaultLimit() {
	suite.mockTxnService.On("ListTransactions", mock.Anything, suite.clientID, mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
		return p.Limit == 50
	})).Return(&dto.ListTransactionsResponse{Transactions: []dto.TransactionResponse{}}, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/transactions", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestListTransactions_LimitOutOfRange() {
	w := suite.perform(http.MethodGet, "/api/v1/transactions?limit=500", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetTransaction_NotFound() {
	txnID := uuid.NewString()
	suite.mockTxnService.On("GetTransactionByID", mock.Anything, suite.clientID, txnID).Return(nil, apperrors.NewNotFoundError("transaction")).Once()

	w := suite.perform(http.MethodGet, "/api/v1/transactions/"+txnID, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteTransaction() {
	txnID := uuid.NewString()
	suite.mockTxnService.On("DeleteTransaction", mock.Anything, suite.clientID, txnID).Return(nil).Once()
	suite.mockTxnService.On("DeleteTransaction", mock.Anything, suite.clientID, txnID).Return(apperrors.NewNotFoundError("transaction")).Once()

	w := suite.perform(http.MethodDelete, "/api/v1/transactions/"+txnID, nil)
	suite.Equal(http.StatusNoContent, w.Code)
	suite.Empty(w.Body.String())

	w = suite.perform(http.MethodDelete, "/api/v1/transactions/"+txnID, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}
