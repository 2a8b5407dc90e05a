// Command setup creates the mirror tables for the configured
// environment. Safe to re-run; everything is IF NOT EXISTS.
package main

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"drivehub/internal/config"
	"drivehub/internal/repository/postgres"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if err := runSchema(ctx, pool, tables, cfg.TablePrefix); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	log.Printf("Schema ready (prefix %q)", cfg.TablePrefix)
}

func runSchema(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames, tablePrefix string) error {
	// Drive IDs come from the remote provider, so they are TEXT keys
	// rather than generated UUIDs.
	createDrives := `
		CREATE TABLE IF NOT EXISTS ` + tables.SharedDrives + ` (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			hidden BOOLEAN NOT NULL DEFAULT FALSE,
			restrictions JSONB,
			capabilities JSONB,
			created_time TIMESTAMPTZ,
			created_by_frontend BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createDrives); err != nil {
		return err
	}

	// No foreign key from parent_id: a folder can be mirrored before
	// its ancestors, and the tree builder tolerates dangling parents.
	createFolders := `
		CREATE TABLE IF NOT EXISTS ` + tables.Folders + ` (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			parent_id TEXT,
			drive_id TEXT NOT NULL,
			full_path TEXT NOT NULL,
			created_by_frontend BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createFolders); err != nil {
		return err
	}

	createManagers := `
		CREATE TABLE IF NOT EXISTS ` + tables.DriveManagers + ` (
			id UUID PRIMARY KEY,
			drive_id TEXT NOT NULL REFERENCES ` + tables.SharedDrives + `(id) ON DELETE CASCADE,
			drive_name TEXT NOT NULL,
			email TEXT NOT NULL,
			role TEXT NOT NULL,
			type TEXT NOT NULL,
			permission_id TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createManagers); err != nil {
		return err
	}

	createSyncHistory := `
		CREATE TABLE IF NOT EXISTS ` + tables.SyncHistory + ` (
			id TEXT PRIMARY KEY,
			sync_date TIMESTAMPTZ NOT NULL,
			drive_count INTEGER NOT NULL DEFAULT 0,
			folder_count INTEGER NOT NULL DEFAULT 0,
			status TEXT NOT NULL,
			error_message TEXT,
			duration_ms BIGINT NOT NULL DEFAULT 0
		)
	`
	if _, err := pool.Exec(ctx, createSyncHistory); err != nil {
		return err
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `folders_drive_path ON ` + tables.Folders + `(drive_id, full_path)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `folders_drive_parent ON ` + tables.Folders + `(drive_id, parent_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `drive_managers_drive ON ` + tables.DriveManagers + `(drive_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `sync_history_date ON ` + tables.SyncHistory + `(sync_date DESC)`,
	}
	for _, idx := range indexes {
		if _, err := pool.Exec(ctx, idx); err != nil {
			return err
		}
	}

	return nil
}
