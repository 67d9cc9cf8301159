package sqlite

import (
	"database/sql"
	"fmt"
)

// SchemaVersion is the latest schema version supported by the migrator.
const SchemaVersion = 1

var schemaStatements = []struct {
	name string
	sql  string
}{
	{
		name: "create sessions table",
		sql: `CREATE TABLE IF NOT EXISTS sessions (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			description TEXT,
			status      TEXT NOT NULL DEFAULT 'active',
			created_at  INTEGER NOT NULL,
			updated_at  INTEGER NOT NULL
		);`,
	},
	{
		name: "create thoughts table",
		sql: `CREATE TABLE IF NOT EXISTS thoughts (
			id                  INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id          TEXT NOT NULL REFERENCES sessions(id),
			thought_number      INTEGER NOT NULL,
			thought             TEXT NOT NULL,
			type                TEXT NOT NULL DEFAULT 'thought',
			branch_id           TEXT,
			is_revision         INTEGER NOT NULL DEFAULT 0,
			revises_thought     INTEGER,
			branch_from_thought INTEGER,
			created_at          INTEGER NOT NULL,
			UNIQUE(session_id, thought_number)
		);`,
	},
	{
		name: "create idx_thoughts_session_branch",
		sql:  `CREATE INDEX IF NOT EXISTS idx_thoughts_session_branch ON thoughts(session_id, branch_id);`,
	},
	{
		name: "create idx_thoughts_type",
		sql:  `CREATE INDEX IF NOT EXISTS idx_thoughts_type ON thoughts(session_id, type);`,
	},
	{
		name: "create branches table",
		sql: `CREATE TABLE IF NOT EXISTS branches (
			id             TEXT NOT NULL,
			session_id     TEXT NOT NULL REFERENCES sessions(id),
			origin_thought INTEGER NOT NULL,
			status         TEXT NOT NULL DEFAULT 'active',
			conclusion     TEXT,
			merge_strategy TEXT,
			created_at     INTEGER NOT NULL,
			closed_at      INTEGER,
			merged_at      INTEGER,
			PRIMARY KEY (session_id, id)
		);`,
	},
	{
		name: "create tags table",
		sql: `CREATE TABLE IF NOT EXISTS tags (
			session_id     TEXT NOT NULL,
			thought_number INTEGER NOT NULL,
			tag            TEXT NOT NULL,
			PRIMARY KEY (session_id, thought_number, tag)
		);`,
	},
	{
		name: "create idx_tags_tag",
		sql:  `CREATE INDEX IF NOT EXISTS idx_tags_tag ON tags(tag);`,
	},
	{
		name: "create idx_sessions_updated_at",
		sql:  `CREATE INDEX IF NOT EXISTS idx_sessions_updated_at ON sessions(status, updated_at);`,
	},
}

// Migrate ensures the SQLite schema exists and is upgraded to SchemaVersion.
func Migrate(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("migrate: db is nil")
	}

	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (version INTEGER PRIMARY KEY);`)
	if err != nil {
		return fmt.Errorf("migrate: create schema_migrations: %w", err)
	}

	var current int
	err = db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations;`).Scan(&current)
	if err != nil {
		return fmt.Errorf("migrate: read current version: %w", err)
	}

	if current > SchemaVersion {
		return fmt.Errorf("migrate: unsupported schema version %d (current %d)", current, SchemaVersion)
	}
	if current == SchemaVersion {
		return nil
	}

	transaction, err := db.Begin()
	if err != nil {
		return fmt.Errorf("migrate: begin transaction: %w", err)
	}
	defer func() {
		_ = transaction.Rollback()
	}()

	for _, statement := range schemaStatements {
		if _, err := transaction.Exec(statement.sql); err != nil {
			return fmt.Errorf("migrate: %s: %w", statement.name, err)
		}
	}

	_, err = transaction.Exec(`INSERT INTO schema_migrations(version) VALUES (?);`, SchemaVersion)
	if err != nil {
		return fmt.Errorf("migrate: record schema version: %w", err)
	}

	if err := transaction.Commit(); err != nil {
		return fmt.Errorf("migrate: commit transaction: %w", err)
	}

	return nil
}
