package services

import (
	portsrepo "github.com/SscSPs/ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:     NewAccountService(repos.AccountRepo),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.AccountRepo),
		Reporting:   NewReportingService(repos.ReportingRepo),
		Auth:        NewAuthService(cfg, repos.ClientRepo, repos.UserRepo),
	}
}
