package sqlite

import (
	"database/sql"
	"time"

	"github.com/bnema/maxential-thinking/internal/domain"
)

const sessionSelect = `SELECT s.id, s.name, s.description, s.status, s.created_at, s.updated_at,
	(SELECT COUNT(*) FROM thoughts t WHERE t.session_id = s.id),
	(SELECT COUNT(*) FROM branches b WHERE b.session_id = s.id)
	FROM sessions s`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (domain.SessionMetadata, error) {
	var (
		meta        domain.SessionMetadata
		id          string
		description sql.NullString
		status      string
		createdAt   int64
		updatedAt   int64
	)
	if err := row.Scan(&id, &meta.Name, &description, &status, &createdAt, &updatedAt, &meta.ThoughtCount, &meta.BranchCount); err != nil {
		return domain.SessionMetadata{}, err
	}

	meta.ID = domain.SessionID(id)
	meta.Description = description.String
	meta.Status = domain.SessionStatus(status)
	meta.CreatedAt = fromMillis(createdAt)
	meta.UpdatedAt = fromMillis(updatedAt)
	return meta, nil
}

func toMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func fromNullMillis(ms sql.NullInt64) *time.Time {
	if !ms.Valid {
		return nil
	}
	t := fromMillis(ms.Int64)
	return &t
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return toMillis(*t)
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// nullInt maps the zero value to NULL; thought numbers start at 1.
func nullInt(n int) any {
	if n <= 0 {
		return nil
	}
	return n
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
