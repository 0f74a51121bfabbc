// Package seed loads a company, its first user, a chart of accounts and opening
// transactions from YAML and posts them through the regular services.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_app/internal/dto"
	"github.com/SscSPs/ledger_app/internal/middleware"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demoYAML []byte

// File is the seed document.
type File struct {
	Client       Client        `yaml:"client"`
	User         User          `yaml:"user"`
	Accounts     []Account     `yaml:"accounts"`
	Transactions []Transaction `yaml:"transactions"`
}

// Client describes the company to register.
type Client struct {
	Name    string `yaml:"name"`
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone,omitempty"`
	Address string `yaml:"address,omitempty"`
}

// User is the company's first login.
type User struct {
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
}

// Account is one chart-of-accounts line.
type Account struct {
	Code        string `yaml:"code"`
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description,omitempty"`
}

// Transaction is an opening transaction. Entries refer to accounts by code.
type Transaction struct {
	Date        string  `yaml:"date"`
	Description string  `yaml:"description"`
	Reference   string  `yaml:"reference,omitempty"`
	Entries     []Entry `yaml:"entries"`
}

// Entry is one posting line. Amount is a decimal string such as "10000.00".
type Entry struct {
	Account string `yaml:"account"`
	Amount  string `yaml:"amount"`
	Side    string `yaml:"side"`
}

// Result summarises what Apply created.
type Result struct {
	ClientID     string
	UserID       string
	Accounts     int
	Transactions int
}

// Parse decodes a seed document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	return &f, nil
}

// Load reads a seed document from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return Parse(data)
}

// Demo returns the built-in demo company.
func Demo() (*File, error) {
	return Parse(demoYAML)
}

// Apply registers the company and posts every account and transaction through
// svc, so each transaction passes the normal admission checks.
func Apply(ctx context.Context, svc *portssvc.ServiceContainer, f *File) (*Result, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	auth, err := svc.Auth.Register(ctx, dto.RegisterRequest{
		CompanyName: f.Client.Name,
		Email:       f.User.Email,
		Password:    f.User.Password,
		FirstName:   f.User.FirstName,
		LastName:    f.User.LastName,
		Phone:       f.Client.Phone,
		Address:     f.Client.Address,
	})
	if err != nil {
		return nil, fmt.Errorf("registering %q: %w", f.Client.Name, err)
	}
	clientID := auth.Client.ClientID
	res := &Result{ClientID: clientID, UserID: auth.User.UserID}
	logger.Info("Seeded client", slog.String("client_id", clientID), slog.String("email", auth.User.Email))

	byCode := make(map[string]string, len(f.Accounts))
	for _, a := range f.Accounts {
		acc, err := svc.Account.CreateAccount(ctx, clientID, dto.CreateAccountRequest{
			Code:        a.Code,
			Name:        a.Name,
			AccountType: domain.AccountType(a.Type),
			Description: a.Description,
		})
		if err != nil {
			return res, fmt.Errorf("creating account %s: %w", a.Code, err)
		}
		byCode[acc.Code] = acc.AccountID
		res.Accounts++
	}

	for i, t := range f.Transactions {
		req, err := t.toRequest(byCode)
		if err != nil {
			return res, fmt.Errorf("transaction %d: %w", i+1, err)
		}
		txn, err := svc.Transaction.CreateTransaction(ctx, clientID, req)
		if err != nil {
			return res, fmt.Errorf("posting transaction %d (%s): %w", i+1, t.Description, err)
		}
		logger.Info("Seeded transaction", slog.String("transaction_id", txn.TransactionID), slog.String("description", t.Description))
		res.Transactions++
	}
	return res, nil
}

func (t Transaction) toRequest(byCode map[string]string) (dto.CreateTransactionRequest, error) {
	req := dto.CreateTransactionRequest{
		Date:        t.Date,
		Description: t.Description,
		Entries:     make([]dto.CreateEntryRequest, len(t.Entries)),
	}
	if t.Reference != "" {
		ref := t.Reference
		req.Reference = &ref
	}
	for i, e := range t.Entries {
		accountID, ok := byCode[e.Account]
		if !ok {
			return req, fmt.Errorf("entry %d refers to unknown account code %q", i+1, e.Account)
		}
		amount, err := decimal.NewFromString(e.Amount)
		if err != nil {
			return req, fmt.Errorf("entry %d has invalid amount %q: %w", i+1, e.Amount, err)
		}
		req.Entries[i] = dto.CreateEntryRequest{AccountID: accountID, Amount: amount, Side: e.Side}
	}
	return req, nil
}
