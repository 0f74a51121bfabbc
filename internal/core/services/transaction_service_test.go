package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/ledger_app/internal/apperrors"
	"github.com/SscSPs/ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_app/internal/core/services"
	"github.com/SscSPs/ledger_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.TransactionSvcFacade
	ctx             context.Context
	clientID        string
	cashID          string
	revenueID       string
	accounts        map[string]domain.Account
	fixedNow        time.Time
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 123456789, time.UTC)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockAccountRepo,
		services.WithTransactionClock(func() time.Time { return suite.fixedNow }))
	suite.ctx = context.Background()

	suite.clientID = uuid.NewString()
	suite.cashID = uuid.NewString()
	suite.revenueID = uuid.NewString()
	suite.accounts = map[string]domain.Account{
		suite.cashID:    {AccountID: suite.cashID, ClientID: suite.clientID, Code: "1000", Name: "Cash", AccountType: domain.Asset, IsActive: true},
		suite.revenueID: {AccountID: suite.revenueID, ClientID: suite.clientID, Code: "4000", Name: "Sales", AccountType: domain.Revenue, IsActive: true},
	}
}

func (suite *TransactionServiceTestSuite) request(entries ...dto.CreateEntryRequest) dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{Date: "2025-02-15", Description: "Cash sale", Entries: entries}
}

func line(accountID, amount, side string) dto.CreateEntryRequest {
	return dto.CreateEntryRequest{AccountID: accountID, Amount: decimal.RequireFromString(amount), Side: side}
}

func (suite *TransactionServiceTestSuite) assertNothingWritten() {
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	req := suite.request(line(suite.cashID, "150.00", "DEBIT"), line(suite.revenueID, "150.00", "CREDIT"))

	suite.mockAccountRepo.On("FindAccountsByIDs", suite.ctx, suite.clientID, []string{suite.cashID, suite.revenueID}).
		Return(suite.accounts, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", suite.ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.ClientID == suite.clientID && len(txn.Entries) == 2 && txn.Entries[0].TransactionID == txn.TransactionID
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, suite.clientID, req)

	suite.Require().NoError(err)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC), txn.Date)
	suite.Equal(suite.fixedNow.Truncate(time.Microsecond), txn.CreatedAt)
	suite.Require().Len(txn.Entries, 2)
	suite.Equal(domain.Debit, txn.Entries[0].Side)
	suite.True(txn.Entries[0].Amount.Equal(decimal.NewFromInt(150)))
	suite.Require().NotNil(txn.Entries[1].Account)
	suite.Equal("Sales", txn.Entries[1].Account.Name)
	suite.NotEqual(txn.Entries[0].EntryID, txn.Entries[1].EntryID)
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InvalidStructure() {
	cases := map[string]dto.CreateTransactionRequest{
		"single entry":    suite.request(line(suite.cashID, "10.00", "DEBIT")),
		"zero amount":     suite.request(line(suite.cashID, "0", "DEBIT"), line(suite.revenueID, "0", "CREDIT")),
		"negative amount": suite.request(line(suite.cashID, "-5", "DEBIT"), line(suite.revenueID, "-5", "CREDIT")),
		"three decimals":  suite.request(line(suite.cashID, "1.005", "DEBIT"), line(suite.revenueID, "1.005", "CREDIT")),
		"bad side":        suite.request(line(suite.cashID, "1", "LEFT"), line(suite.revenueID, "1", "CREDIT")),
		"missing account": suite.request(line("", "1", "DEBIT"), line(suite.revenueID, "1", "CREDIT")),
	}
	for name, req := range cases {
		suite.Run(name, func() {
			_, err := suite.service.CreateTransaction(suite.ctx, suite.clientID, req)
			suite.ErrorIs(err, apperrors.ErrInvalidStructure)
			suite.Equal("INVALID_STRUCTURE", apperrors.Kind(err))
		})
	}
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountsByIDs", mock.Anything, mock.Anything, mock.Anything)
	suite.assertNothingWritten()
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InvalidDate() {
	req := suite.request(line(suite.cashID, "1", "DEBIT"), line(suite.revenueID, "1", "CREDIT"))
	req.Date = "15/02/2025"

	_, err := suite.service.CreateTransaction(suite.ctx, suite.clientID, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.assertNothingWritten()
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnknownAccount() {
	missing := uuid.NewString()
	req := suite.request(line(suite.cashID, "10", "DEBIT"), line(missing, "10", "CREDIT"))

	suite.mockAccountRepo.On("FindAccountsByIDs", suite.ctx, suite.clientID, []string{suite.cashID, missing}).
		Return(map[string]domain.Account{suite.cashID: suite.accounts[suite.cashID]}, nil).Once()

	_, err := suite.service.CreateTransaction(suite.ctx, suite.clientID, req)

	suite.ErrorIs(err, apperrors.ErrUnknownAccount)
	suite.Equal("UNKNOWN_ACCOUNT", apperrors.Kind(err))
	suite.assertNothingWritten()
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ForeignAccountIsUnknown() {
	foreign := domain.Account{AccountID: suite.revenueID, ClientID: uuid.NewString(), AccountType: domain.Revenue}
	req := suite.request(line(suite.cashID, "10", "DEBIT"), line(suite.revenueID, "10", "CREDIT"))

	suite.mockAccountRepo.On("FindAccountsByIDs", suite.ctx, suite.clientID, []string{suite.cashID, suite.revenueID}).
		Return(map[string]domain.Account{suite.cashID: suite.accounts[suite.cashID], suite.revenueID: foreign}, nil).Once()

	_, err := suite.service.CreateTransaction(suite.ctx, suite.clientID, req)

	suite.ErrorIs(err, apperrors.ErrUnknownAccount)
	suite.assertNothingWritten()
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_AccountsCheckedBeforeBalance() {
	missing := uuid.NewString()
	req := suite.request(line(suite.cashID, "10", "DEBIT"), line(missing, "9", "CREDIT"))

	suite.mockAccountRepo.On("FindAccountsByIDs", suite.ctx, suite.clientID, []string{suite.cashID, missing}).
		Return(map[string]domain.Account{suite.cashID: suite.accounts[suite.cashID]}, nil).Once()

	_, err := suite.service.CreateTransaction(suite.ctx, suite.clientID, req)

	suite.Equal("UNKNOWN_ACCOUNT", apperrors.Kind(err))
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Unbalanced() {
	req := suite.request(line(suite.cashID, "100.00", "DEBIT"), line(suite.revenueID, "90.00", "CREDIT"))

	suite.mockAccountRepo.On("FindAccountsByIDs", suite.ctx, suite.clientID, []string{suite.cashID, suite.revenueID}).
		Return(suite.accounts, nil).Once()

	_, err := suite.service.CreateTransaction(suite.ctx, suite.clientID, req)

	var ue *apperrors.UnbalancedError
	suite.Require().ErrorAs(err, &ue)
	suite.Equal("100.00", ue.Debits.StringFixed(2))
	suite.Equal("90.00", ue.Credits.StringFixed(2))
	suite.Equal("UNBALANCED", apperrors.Kind(err))
	suite.assertNothingWritten()
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_SameAccountTwice() {
	req := suite.request(
		line(suite.cashID, "60", "DEBIT"),
		line(suite.cashID, "40", "DEBIT"),
		line(suite.revenueID, "100", "CREDIT"),
	)

	suite.mockAccountRepo.On("FindAccountsByIDs", suite.ctx, suite.clientID, []string{suite.cashID, suite.revenueID}).
		Return(suite.accounts, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", suite.ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, suite.clientID, req)

	suite.Require().NoError(err)
	suite.Len(txn.Entries, 3)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_WriteFailure() {
	req := suite.request(line(suite.cashID, "10", "DEBIT"), line(suite.revenueID, "10", "CREDIT"))

	suite.mockAccountRepo.On("FindAccountsByIDs", suite.ctx, suite.clientID, []string{suite.cashID, suite.revenueID}).
		Return(suite.accounts, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", suite.ctx, mock.AnythingOfType("domain.Transaction")).
		Return(errors.New("connection reset")).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, suite.clientID, req)

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrWriteFailure)
	suite.Equal("WRITE_FAILURE", apperrors.Kind(err))
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_NotFound() {
	id := uuid.NewString()
	suite.mockTxnRepo.On("FindTransactionByID", suite.ctx, suite.clientID, id).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.GetTransactionByID(suite.ctx, suite.clientID, id)

	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_DefaultsAndFilter() {
	token := "next"
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	page := []domain.Transaction{{TransactionID: "t1", ClientID: suite.clientID, Date: start}}

	suite.mockTxnRepo.On("ListTransactions", suite.ctx, suite.clientID, domain.TransactionFilter{StartDate: &start}, 50, (*string)(nil)).
		Return(page, &token, nil).Once()

	res, err := suite.service.ListTransactions(suite.ctx, suite.clientID, dto.ListTransactionsParams{StartDate: "2025-01-01"})

	suite.Require().NoError(err)
	suite.Require().Len(res.Transactions, 1)
	suite.Equal("t1", res.Transactions[0].TransactionID)
	suite.Equal(&token, res.NextToken)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_InvertedRange() {
	_, err := suite.service.ListTransactions(suite.ctx, suite.clientID, dto.ListTransactionsParams{StartDate: "2025-02-01", EndDate: "2025-01-01"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction() {
	id := uuid.NewString()
	suite.mockTxnRepo.On("DeleteTransaction", suite.ctx, suite.clientID, id).Return(nil).Once()
	suite.mockTxnRepo.On("DeleteTransaction", suite.ctx, suite.clientID, id).Return(apperrors.ErrNotFound).Once()

	suite.NoError(suite.service.DeleteTransaction(suite.ctx, suite.clientID, id))
	suite.ErrorIs(suite.service.DeleteTransaction(suite.ctx, suite.clientID, id), apperrors.ErrNotFound)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
