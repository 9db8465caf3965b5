package dotenv

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Load читает .env и применяет флаги командной строки поверх окружения.
func Load() error {
	err := godotenv.Load()
	if err != nil {
		return err
	}

	return ApplyFlags(os.Args[1:])
}

// ApplyFlags --port переопределяет PORT, --migrate включает POSTGRES_AUTO_MIGRATE.
func ApplyFlags(args []string) error {
	flags := pflag.NewFlagSet("fastfeet", pflag.ContinueOnError)
	portFlag := flags.String("port", "", "Server port (overrides PORT environment variable)")
	migrateFlag := flags.Bool("migrate", false, "Apply database migrations on start")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	if *portFlag != "" {
		if err := os.Setenv("PORT", *portFlag); err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	if *migrateFlag {
		if err := os.Setenv("POSTGRES_AUTO_MIGRATE", "true"); err != nil {
			return fmt.Errorf("failed to set POSTGRES_AUTO_MIGRATE environment variable: %w", err)
		}
	}
	return nil
}
