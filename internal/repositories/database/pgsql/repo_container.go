package pgsql

import (
	portsrepo "github.com/SscSPs/ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		ReportingRepo:   newReportingRepository(dbPool),
		ClientRepo:      newPgxClientRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
