package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/autotoc/internal/logfields"
)

// envFiles are loaded in order; a variable already set is never overwritten.
var envFiles = []string{".env", ".env.local"}

// loadEnvFile loads .env/.env.local from the working directory so the config
// file can reference their variables. Missing files are skipped.
func loadEnvFile() {
	for _, name := range envFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			slog.Warn("Could not load environment file", logfields.File(name), logfields.Error(err))
			continue
		}
		slog.Debug("Loaded environment variables", logfields.File(name))
	}
}
