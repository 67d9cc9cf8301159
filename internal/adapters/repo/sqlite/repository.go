package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/maxential-thinking/internal/domain"
	"github.com/bnema/maxential-thinking/internal/ports"
	_ "modernc.org/sqlite"
)

const (
	driverName = "sqlite"
	memoryPath = ":memory:"
	dbDirMode  = 0o755
)

type Repository struct {
	db   *sql.DB
	path string
}

var _ ports.SessionRepository = (*Repository)(nil)

// Open creates or opens the database at path and applies migrations.
func Open(path string) (*Repository, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("sqlite path is empty")
	}

	if path != memoryPath {
		if err := os.MkdirAll(filepath.Dir(path), dbDirMode); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// A single connection keeps :memory: databases alive and serializes writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := applyPragmas(db, path != memoryPath); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repository{db: db, path: path}, nil
}

func applyPragmas(db *sql.DB, onDisk bool) error {
	pragmas := []string{
		"PRAGMA busy_timeout = 5000;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA synchronous = NORMAL;",
	}
	if onDisk {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL;")
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("apply %q: %w", pragma, err)
		}
	}
	return nil
}

func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *Repository) CreateSession(ctx context.Context, meta domain.SessionMetadata) error {
	if err := meta.Validate(); err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, name, description, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?);`,
		string(meta.ID), meta.Name, nullString(meta.Description), string(meta.Status),
		toMillis(meta.CreatedAt), toMillis(meta.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("create session %s: %w", meta.ID, err)
	}
	return nil
}

func (r *Repository) GetSession(ctx context.Context, id domain.SessionID) (domain.SessionMetadata, error) {
	row := r.db.QueryRowContext(ctx, sessionSelect+` WHERE s.id = ?;`, string(id))
	meta, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.SessionMetadata{}, domain.ErrSessionNotFound
	}
	if err != nil {
		return domain.SessionMetadata{}, fmt.Errorf("get session %s: %w", id, err)
	}
	return meta, nil
}

func (r *Repository) UpdateSessionDetails(ctx context.Context, id domain.SessionID, name, description string, at time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET name = ?, description = ?, updated_at = ? WHERE id = ?;`,
		name, nullString(description), toMillis(at), string(id),
	)
	if err != nil {
		return fmt.Errorf("update session %s: %w", id, err)
	}
	return requireAffected(result, domain.ErrSessionNotFound)
}

func (r *Repository) UpdateSessionStatus(ctx context.Context, id domain.SessionID, status domain.SessionStatus, at time.Time) error {
	if !status.Valid() {
		return domain.Validationf("unsupported session status %q", status)
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET status = ?, updated_at = ? WHERE id = ?;`,
		string(status), toMillis(at), string(id),
	)
	if err != nil {
		return fmt.Errorf("update session %s status: %w", id, err)
	}
	return requireAffected(result, domain.ErrSessionNotFound)
}

func (r *Repository) ListSessions(ctx context.Context, filter domain.SessionFilter) ([]domain.SessionMetadata, error) {
	filter = filter.Normalize()

	query := sessionSelect
	args := make([]any, 0, 3)
	if filter.Status != "" {
		query += ` WHERE s.status = ?`
		args = append(args, string(filter.Status))
	}
	query += ` ORDER BY s.updated_at DESC, s.rowid DESC LIMIT ? OFFSET ?;`
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]domain.SessionMetadata, 0, filter.Limit)
	for rows.Next() {
		meta, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		sessions = append(sessions, meta)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	return sessions, nil
}

func (r *Repository) CountSessions(ctx context.Context, status domain.SessionStatus) (int, error) {
	query := `SELECT COUNT(*) FROM sessions`
	args := []any{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, string(status))
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query+";", args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return count, nil
}

func (r *Repository) InsertThought(ctx context.Context, id domain.SessionID, thought domain.Thought) error {
	kind := thought.Kind
	if kind == "" {
		kind = domain.ClassifyKind(thought)
	}

	return r.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO thoughts (session_id, thought_number, thought, type, branch_id, is_revision, revises_thought, branch_from_thought, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`,
			string(id), thought.Number, thought.Text, string(kind), nullString(string(thought.BranchID)),
			boolToInt(thought.IsRevision), nullInt(thought.RevisesThought), nullInt(thought.BranchFromThought),
			toMillis(thought.CreatedAt),
		)
		if err != nil {
			return fmt.Errorf("insert thought %d: %w", thought.Number, err)
		}

		if tags := domain.NormalizeTags(thought.Tags); len(tags) > 0 {
			if err := insertTags(ctx, tx, id, thought.Number, tags); err != nil {
				return err
			}
		}

		return touchSession(ctx, tx, id, thought.CreatedAt)
	})
}

func (r *Repository) InsertBranch(ctx context.Context, id domain.SessionID, branch domain.Branch) error {
	status := branch.Status
	if status == "" {
		status = domain.BranchActive
	}

	return r.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO branches (id, session_id, origin_thought, status, conclusion, merge_strategy, created_at, closed_at, merged_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`,
			string(branch.ID), string(id), branch.OriginThought, string(status), nullString(branch.Conclusion),
			nullString(string(branch.MergeStrategy)), toMillis(branch.CreatedAt),
			nullTime(branch.ClosedAt), nullTime(branch.MergedAt),
		)
		if err != nil {
			return fmt.Errorf("insert branch %s: %w", branch.ID, err)
		}
		return touchSession(ctx, tx, id, branch.CreatedAt)
	})
}

func (r *Repository) CloseBranch(ctx context.Context, id domain.SessionID, branchID domain.BranchID, conclusion string, closedAt time.Time) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE branches SET status = ?, conclusion = COALESCE(?, conclusion), closed_at = ? WHERE session_id = ? AND id = ?;`,
			string(domain.BranchClosed), nullString(conclusion), toMillis(closedAt), string(id), string(branchID),
		)
		if err != nil {
			return fmt.Errorf("close branch %s: %w", branchID, err)
		}
		if err := requireAffected(result, domain.NotFoundf("branch %s not found", branchID)); err != nil {
			return err
		}
		return touchSession(ctx, tx, id, closedAt)
	})
}

func (r *Repository) MergeBranch(ctx context.Context, id domain.SessionID, branchID domain.BranchID, strategy domain.MergeStrategy, mergedAt time.Time) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE branches SET status = ?, merge_strategy = ?, merged_at = ? WHERE session_id = ? AND id = ?;`,
			string(domain.BranchMerged), string(strategy), toMillis(mergedAt), string(id), string(branchID),
		)
		if err != nil {
			return fmt.Errorf("merge branch %s: %w", branchID, err)
		}
		if err := requireAffected(result, domain.NotFoundf("branch %s not found", branchID)); err != nil {
			return err
		}
		return touchSession(ctx, tx, id, mergedAt)
	})
}

// SetTags replaces the full tag set of one thought.
func (r *Repository) SetTags(ctx context.Context, id domain.SessionID, thoughtNumber int, tags []string, at time.Time) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`DELETE FROM tags WHERE session_id = ? AND thought_number = ?;`,
			string(id), thoughtNumber,
		)
		if err != nil {
			return fmt.Errorf("clear tags for thought %d: %w", thoughtNumber, err)
		}

		if err := insertTags(ctx, tx, id, thoughtNumber, domain.NormalizeTags(tags)); err != nil {
			return err
		}
		return touchSession(ctx, tx, id, at)
	})
}

func (r *Repository) LoadSession(ctx context.Context, id domain.SessionID) (domain.SessionSnapshot, error) {
	meta, err := r.GetSession(ctx, id)
	if err != nil {
		return domain.SessionSnapshot{}, err
	}

	thoughts, err := r.loadThoughts(ctx, id)
	if err != nil {
		return domain.SessionSnapshot{}, err
	}

	branches, err := r.loadBranches(ctx, id)
	if err != nil {
		return domain.SessionSnapshot{}, err
	}

	tags, err := r.loadTags(ctx, id)
	if err != nil {
		return domain.SessionSnapshot{}, err
	}

	return domain.AssembleSnapshot(meta, thoughts, branches, tags), nil
}

func (r *Repository) loadThoughts(ctx context.Context, id domain.SessionID) ([]domain.Thought, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT thought_number, thought, type, branch_id, is_revision, revises_thought, branch_from_thought, created_at
		 FROM thoughts WHERE session_id = ? ORDER BY thought_number ASC;`,
		string(id),
	)
	if err != nil {
		return nil, fmt.Errorf("load thoughts: %w", err)
	}
	defer rows.Close()

	var thoughts []domain.Thought
	for rows.Next() {
		var (
			thought        domain.Thought
			kind           string
			branchID       sql.NullString
			isRevision     int
			revisesThought sql.NullInt64
			branchFrom     sql.NullInt64
			createdAt      int64
		)
		if err := rows.Scan(&thought.Number, &thought.Text, &kind, &branchID, &isRevision, &revisesThought, &branchFrom, &createdAt); err != nil {
			return nil, fmt.Errorf("scan thought row: %w", err)
		}

		thought.Kind = domain.ThoughtKind(kind)
		thought.BranchID = domain.BranchID(branchID.String)
		thought.IsRevision = isRevision != 0
		thought.RevisesThought = int(revisesThought.Int64)
		thought.BranchFromThought = int(branchFrom.Int64)
		thought.CreatedAt = fromMillis(createdAt)
		thoughts = append(thoughts, thought)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate thoughts: %w", err)
	}

	return thoughts, nil
}

func (r *Repository) loadBranches(ctx context.Context, id domain.SessionID) ([]domain.Branch, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, origin_thought, status, conclusion, merge_strategy, created_at, closed_at, merged_at
		 FROM branches WHERE session_id = ? ORDER BY created_at ASC, rowid ASC;`,
		string(id),
	)
	if err != nil {
		return nil, fmt.Errorf("load branches: %w", err)
	}
	defer rows.Close()

	var branches []domain.Branch
	for rows.Next() {
		var (
			branch     domain.Branch
			branchID   string
			status     string
			conclusion sql.NullString
			strategy   sql.NullString
			createdAt  int64
			closedAt   sql.NullInt64
			mergedAt   sql.NullInt64
		)
		if err := rows.Scan(&branchID, &branch.OriginThought, &status, &conclusion, &strategy, &createdAt, &closedAt, &mergedAt); err != nil {
			return nil, fmt.Errorf("scan branch row: %w", err)
		}

		branch.ID = domain.BranchID(branchID)
		branch.Status = domain.BranchStatus(status)
		branch.Conclusion = conclusion.String
		branch.MergeStrategy = domain.MergeStrategy(strategy.String)
		branch.CreatedAt = fromMillis(createdAt)
		branch.ClosedAt = fromNullMillis(closedAt)
		branch.MergedAt = fromNullMillis(mergedAt)
		branches = append(branches, branch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate branches: %w", err)
	}

	return branches, nil
}

func (r *Repository) loadTags(ctx context.Context, id domain.SessionID) (map[int][]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT thought_number, tag FROM tags WHERE session_id = ?;`,
		string(id),
	)
	if err != nil {
		return nil, fmt.Errorf("load tags: %w", err)
	}
	defer rows.Close()

	tags := map[int][]string{}
	for rows.Next() {
		var (
			number int
			tag    string
		)
		if err := rows.Scan(&number, &tag); err != nil {
			return nil, fmt.Errorf("scan tag row: %w", err)
		}
		tags[number] = append(tags[number], tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}

	return tags, nil
}

func (r *Repository) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func insertTags(ctx context.Context, tx *sql.Tx, id domain.SessionID, thoughtNumber int, tags []string) error {
	for _, tag := range tags {
		_, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO tags (session_id, thought_number, tag) VALUES (?, ?, ?);`,
			string(id), thoughtNumber, tag,
		)
		if err != nil {
			return fmt.Errorf("insert tag %q for thought %d: %w", tag, thoughtNumber, err)
		}
	}
	return nil
}

func touchSession(ctx context.Context, tx *sql.Tx, id domain.SessionID, at time.Time) error {
	result, err := tx.ExecContext(ctx,
		`UPDATE sessions SET updated_at = ? WHERE id = ?;`,
		toMillis(at), string(id),
	)
	if err != nil {
		return fmt.Errorf("touch session %s: %w", id, err)
	}
	return requireAffected(result, domain.ErrSessionNotFound)
}

func requireAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
