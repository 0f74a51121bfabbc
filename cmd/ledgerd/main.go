package main

import (
	"os"

	"github.com/SscSPs/ledger_app/internal/commands"
)

// @title Ledger API
// @version 1.0
// @description Multi-tenant double-entry ledger.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
