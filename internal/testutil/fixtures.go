package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// TestPassword is the plaintext password of every seeded user.
const TestPassword = "password123"

// SeedClient inserts an active client with one user and returns both IDs.
func SeedClient(t *testing.T, pool *pgxpool.Pool, name string) (clientID, userID string) {
	t.Helper()
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	clientID = uuid.NewString()
	userID = uuid.NewString()
	email := name + "-" + clientID[:8] + "@example.test"

	_, err = pool.Exec(ctx,
		`INSERT INTO clients (id, name, email) VALUES ($1, $2, $3)`,
		clientID, name, email,
	)
	if err != nil {
		t.Fatalf("seed client: %v", err)
	}
	_, err = pool.Exec(ctx,
		`INSERT INTO users (id, client_id, email, password_hash, first_name, last_name)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		userID, clientID, email, string(hash), "Test", "User",
	)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return clientID, userID
}

// SeedAccount inserts an active account for clientID and returns its ID.
func SeedAccount(t *testing.T, pool *pgxpool.Pool, clientID, code, name, accountType string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO accounts (id, client_id, code, name, type) VALUES ($1, $2, $3, $4, $5::account_type)`,
		id, clientID, code, name, accountType,
	)
	if err != nil {
		t.Fatalf("seed account %s: %v", code, err)
	}
	return id
}
