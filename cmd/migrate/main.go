package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "github.com/lib/pq"
	"github.com/rentals/backend/internal/infrastructure/config"
	"github.com/rentals/backend/internal/infrastructure/logger"
	"github.com/rentals/backend/internal/infrastructure/migration"
	"go.uber.org/zap"
)

func main() {
	var (
		migrationsPath string
		logLevel       string
		envFile        string
	)
	flag.StringVar(&migrationsPath, "path", "", "Path to migrations directory (default: ./migrations)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&envFile, "env-file", ".env", "Optional .env file with database settings")
	flag.Usage = printUsage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(2)
	}

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	if err := run(log, resolvePath(migrationsPath), envFile, args); err != nil {
		var usage usageError
		if errors.As(err, &usage) {
			log.Error(usage.Error())
			printUsage()
			os.Exit(2)
		}
		log.Fatal("Migration command failed", zap.String("command", args[0]), zap.Error(err))
	}
}

type usageError string

func (e usageError) Error() string { return string(e) }

func run(log *zap.Logger, migrationsPath, envFile string, args []string) error {
	command := args[0]
	log.Info("Migration CLI started",
		zap.String("command", command),
		zap.String("migrations_path", migrationsPath),
	)

	switch command {
	case "create":
		if len(args) < 2 {
			return usageError("migration name required: migrate create <name> [description]")
		}
		description := ""
		if len(args) > 2 {
			description = args[2]
		}
		mf, err := migration.CreateMigration(migrationsPath, args[1], description)
		if err != nil {
			return err
		}
		log.Info("Migration created",
			zap.String("version", mf.Version),
			zap.String("up_file", mf.UpPath),
			zap.String("down_file", mf.DownPath),
		)
		return nil

	case "list":
		migrations, err := migration.ListMigrations(migrationsPath)
		if err != nil {
			return err
		}
		log.Info("Available migrations", zap.Int("count", len(migrations)))
		for _, m := range migrations {
			fmt.Println("  -", m)
		}
		return nil
	}

	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	m, err := migration.New(db, migrationsPath, log)
	if err != nil {
		return err
	}
	defer m.Close()

	switch command {
	case "up":
		return m.Up()
	case "down":
		return m.Down()
	case "step":
		if len(args) < 2 {
			return usageError("step count required: migrate step <n>")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return usageError(fmt.Sprintf("invalid step count %q", args[1]))
		}
		return m.Steps(n)
	case "goto":
		if len(args) < 2 {
			return usageError("version required: migrate goto <version>")
		}
		version, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			return usageError(fmt.Sprintf("invalid version %q", args[1]))
		}
		return m.GoTo(uint(version))
	case "version":
		status, err := m.Status()
		if err != nil {
			return err
		}
		if status.Version == 0 {
			log.Info("No migrations applied")
			return nil
		}
		log.Info("Current migration version",
			zap.Uint("version", status.Version),
			zap.Bool("dirty", status.Dirty),
		)
		return nil
	case "force":
		if len(args) < 2 {
			return usageError("version required: migrate force <version>")
		}
		version, err := strconv.Atoi(args[1])
		if err != nil {
			return usageError(fmt.Sprintf("invalid version %q", args[1]))
		}
		return m.Force(version)
	case "drop":
		if !hasFlag(args[1:], "-confirm", "--confirm") {
			return usageError("drop removes every rentals table; rerun as 'migrate drop -confirm'")
		}
		return m.Drop()
	default:
		return usageError(fmt.Sprintf("unknown command %q", command))
	}
}

// resolvePath finds the migrations directory from the working directory or
// next to the binary
func resolvePath(path string) string {
	if path == "" {
		path = migration.DefaultPath
		if _, err := os.Stat(path); err != nil {
			if exe, err := os.Executable(); err == nil {
				candidate := filepath.Join(filepath.Dir(exe), "..", "..", migration.DefaultPath)
				if _, err := os.Stat(candidate); err == nil {
					path = candidate
				}
			}
		}
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

func hasFlag(args []string, names ...string) bool {
	for _, arg := range args {
		for _, name := range names {
			if arg == name {
				return true
			}
		}
	}
	return false
}

func printUsage() {
	fmt.Println(`Rentals schema migration tool

Usage:
  migrate [flags] <command> [arguments]

Commands:
  up                    Apply all pending migrations
  down                  Roll back all migrations
  step <n>              Apply n migrations (negative rolls back)
  goto <version>        Migrate to a specific version
  version               Show the current schema version
  force <version>       Set the version without migrating (clears a dirty state)
  drop -confirm         Drop every table
  create <name> [desc]  Create the next numbered migration pair
  list                  List available migrations

Flags:
  -path string          Path to migrations directory (default: ./migrations)
  -log-level string     Log level: debug, info, warn, error (default: info)
  -env-file string      .env file to read (default: .env)

Environment Variables:
  RENTALS_DATABASE_URL       postgres:// or jdbc:postgresql:// URL
  RENTALS_DATABASE_USER      user name
  RENTALS_DATABASE_PASSWORD  password
  SUPABASE_DB_URL, SUPABASE_DB_USER, SUPABASE_DB_PASSWORD are accepted as aliases

Examples:
  migrate up
  migrate step -1
  migrate create add_payment_notes "Free text notes on pagos"`)
}
