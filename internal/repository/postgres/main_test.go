//go:build integration

package postgres

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/YusovID/review-dashboard/internal/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	testDB *sqlx.DB
	logger *slog.Logger
)

func TestMain(m *testing.M) {
	os.Exit(runWithContainer(m))
}

// runWithContainer starts Postgres, connects through NewDB with the same
// config the dashboard uses and applies the render cache migrations the way
// cmd/migrator does.
func runWithContainer(m *testing.M) int {
	ctx := context.Background()
	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg := config.Postgres{
		Username:     "dashboard",
		Password:     "dashboard",
		Database:     "render_cache",
		MaxOpenConns: 4,
		MaxIdleConns: 2,
	}

	container, err := postgres.Run(ctx, "postgres:17",
		postgres.WithDatabase(cfg.Database),
		postgres.WithUsername(cfg.Username),
		postgres.WithPassword(cfg.Password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("could not start postgres container: %s", err)
	}
	defer func() {
		if err := container.Terminate(ctx); err != nil {
			log.Printf("could not stop postgres container: %s", err)
		}
	}()

	if cfg.Host, err = container.Host(ctx); err != nil {
		log.Fatalf("failed to get container host: %s", err)
	}

	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		log.Fatalf("failed to get container port: %s", err)
	}

	cfg.Port = port.Port()

	pg, err := NewDB(cfg, logger)
	if err != nil {
		log.Fatalf("failed to connect to test postgres: %s", err)
	}
	defer pg.Close()

	testDB = pg.DB()

	_, file, _, _ := runtime.Caller(0)
	source := "file://" + filepath.ToSlash(filepath.Join(filepath.Dir(file), "../../../migrations"))

	migrator, err := migrate.New(source, fmt.Sprintf("%s&x-migrations-table=schema_migrations", cfg.DSN()))
	if err != nil {
		log.Fatalf("failed to create migrator for %s: %s", source, err)
	}

	if err := migrator.Up(); err != nil {
		log.Fatalf("failed to run migrations: %s", err)
	}

	return m.Run()
}

func truncateTables(t *testing.T, db *sqlx.DB) {
	t.Helper()

	if _, err := db.Exec("TRUNCATE TABLE rendered_documents"); err != nil {
		t.Fatalf("failed to truncate rendered_documents: %v", err)
	}
}
