package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/bnema/maxential-thinking/internal/domain"
	"github.com/bnema/maxential-thinking/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	storagePathKey     = "storage.path"
	sessionsFileMode   = 0o600
	sessionsDirMode    = 0o700
	sessionsConfigDir  = ".maxential"
	sessionsConfigFile = "sessions.toml"
	tempFilePattern    = ".sessions-*.toml.tmp"
)

// Repository keeps every session in one TOML document. Each write rewrites the
// whole file through a temp file and rename.
type Repository struct {
	sessionsPath string
	mu           *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SessionRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}
	cfg.SetDefault(storagePathKey, filepath.Join(workDir, sessionsConfigDir, sessionsConfigFile))

	sessionsPath := cfg.GetString(storagePathKey)
	if sessionsPath == "" {
		return nil, errors.New("sessions path is empty")
	}
	sessionsPath, err = normalizeSessionsPath(sessionsPath)
	if err != nil {
		return nil, err
	}

	return &Repository{sessionsPath: sessionsPath, mu: lockForPath(sessionsPath)}, nil
}

func (r *Repository) Path() string {
	return r.sessionsPath
}

func (r *Repository) Close() error {
	return nil
}

func (r *Repository) CreateSession(ctx context.Context, meta domain.SessionMetadata) error {
	if err := meta.Validate(); err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	return r.update(ctx, func(file *fileSchema) error {
		if file.find(string(meta.ID)) != nil {
			return domain.Conflictf("session %s already exists", meta.ID)
		}
		file.Sessions = append(file.Sessions, sessionSchema{
			ID:          string(meta.ID),
			Name:        meta.Name,
			Description: meta.Description,
			Status:      string(meta.Status),
			CreatedAt:   meta.CreatedAt.UnixMilli(),
			UpdatedAt:   meta.UpdatedAt.UnixMilli(),
		})
		return nil
	})
}

func (r *Repository) GetSession(ctx context.Context, id domain.SessionID) (domain.SessionMetadata, error) {
	var meta domain.SessionMetadata
	err := r.view(ctx, func(file fileSchema) error {
		session := file.find(string(id))
		if session == nil {
			return domain.ErrSessionNotFound
		}
		meta = toMetadata(*session)
		return nil
	})
	return meta, err
}

func (r *Repository) UpdateSessionDetails(ctx context.Context, id domain.SessionID, name, description string, at time.Time) error {
	return r.updateSession(ctx, id, at, func(session *sessionSchema) error {
		session.Name = name
		session.Description = description
		return nil
	})
}

func (r *Repository) UpdateSessionStatus(ctx context.Context, id domain.SessionID, status domain.SessionStatus, at time.Time) error {
	if !status.Valid() {
		return domain.Validationf("unsupported session status %q", status)
	}
	return r.updateSession(ctx, id, at, func(session *sessionSchema) error {
		session.Status = string(status)
		return nil
	})
}

func (r *Repository) ListSessions(ctx context.Context, filter domain.SessionFilter) ([]domain.SessionMetadata, error) {
	filter = filter.Normalize()

	var sessions []domain.SessionMetadata
	err := r.view(ctx, func(file fileSchema) error {
		matched := make([]domain.SessionMetadata, 0, len(file.Sessions))
		for i := len(file.Sessions) - 1; i >= 0; i-- {
			entry := file.Sessions[i]
			if filter.Status != "" && entry.Status != string(filter.Status) {
				continue
			}
			matched = append(matched, toMetadata(entry))
		}
		// Walking backwards first makes later inserts win updated_at ties.
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].UpdatedAt.After(matched[j].UpdatedAt)
		})

		if filter.Offset >= len(matched) {
			sessions = []domain.SessionMetadata{}
			return nil
		}
		end := filter.Offset + filter.Limit
		if end > len(matched) {
			end = len(matched)
		}
		sessions = matched[filter.Offset:end]
		return nil
	})
	return sessions, err
}

func (r *Repository) CountSessions(ctx context.Context, status domain.SessionStatus) (int, error) {
	count := 0
	err := r.view(ctx, func(file fileSchema) error {
		for _, entry := range file.Sessions {
			if status == "" || entry.Status == string(status) {
				count++
			}
		}
		return nil
	})
	return count, err
}

func (r *Repository) InsertThought(ctx context.Context, id domain.SessionID, thought domain.Thought) error {
	kind := thought.Kind
	if kind == "" {
		kind = domain.ClassifyKind(thought)
	}

	return r.updateSession(ctx, id, thought.CreatedAt, func(session *sessionSchema) error {
		if session.findThought(thought.Number) != nil {
			return domain.Conflictf("thought %d already stored", thought.Number)
		}
		session.Thoughts = append(session.Thoughts, thoughtSchema{
			Number:            thought.Number,
			Text:              thought.Text,
			Type:              string(kind),
			BranchID:          string(thought.BranchID),
			IsRevision:        thought.IsRevision,
			RevisesThought:    thought.RevisesThought,
			BranchFromThought: thought.BranchFromThought,
			Tags:              domain.NormalizeTags(thought.Tags),
			CreatedAt:         thought.CreatedAt.UnixMilli(),
		})
		return nil
	})
}

func (r *Repository) InsertBranch(ctx context.Context, id domain.SessionID, branch domain.Branch) error {
	status := branch.Status
	if status == "" {
		status = domain.BranchActive
	}

	return r.updateSession(ctx, id, branch.CreatedAt, func(session *sessionSchema) error {
		if session.findBranch(string(branch.ID)) != nil {
			return domain.Conflictf("branch %s already stored", branch.ID)
		}
		session.Branches = append(session.Branches, branchSchema{
			ID:            string(branch.ID),
			OriginThought: branch.OriginThought,
			Status:        string(status),
			Conclusion:    branch.Conclusion,
			MergeStrategy: string(branch.MergeStrategy),
			CreatedAt:     branch.CreatedAt.UnixMilli(),
			ClosedAt:      optionalMillis(branch.ClosedAt),
			MergedAt:      optionalMillis(branch.MergedAt),
		})
		return nil
	})
}

func (r *Repository) CloseBranch(ctx context.Context, id domain.SessionID, branchID domain.BranchID, conclusion string, closedAt time.Time) error {
	return r.updateSession(ctx, id, closedAt, func(session *sessionSchema) error {
		branch := session.findBranch(string(branchID))
		if branch == nil {
			return domain.NotFoundf("branch %s not found", branchID)
		}
		branch.Status = string(domain.BranchClosed)
		branch.ClosedAt = closedAt.UnixMilli()
		if conclusion != "" {
			branch.Conclusion = conclusion
		}
		return nil
	})
}

func (r *Repository) MergeBranch(ctx context.Context, id domain.SessionID, branchID domain.BranchID, strategy domain.MergeStrategy, mergedAt time.Time) error {
	return r.updateSession(ctx, id, mergedAt, func(session *sessionSchema) error {
		branch := session.findBranch(string(branchID))
		if branch == nil {
			return domain.NotFoundf("branch %s not found", branchID)
		}
		branch.Status = string(domain.BranchMerged)
		branch.MergeStrategy = string(strategy)
		branch.MergedAt = mergedAt.UnixMilli()
		return nil
	})
}

func (r *Repository) SetTags(ctx context.Context, id domain.SessionID, thoughtNumber int, tags []string, at time.Time) error {
	return r.updateSession(ctx, id, at, func(session *sessionSchema) error {
		thought := session.findThought(thoughtNumber)
		if thought == nil {
			return domain.NotFoundf("thought %d not found", thoughtNumber)
		}
		thought.Tags = domain.NormalizeTags(tags)
		return nil
	})
}

func (r *Repository) LoadSession(ctx context.Context, id domain.SessionID) (domain.SessionSnapshot, error) {
	var snapshot domain.SessionSnapshot
	err := r.view(ctx, func(file fileSchema) error {
		session := file.find(string(id))
		if session == nil {
			return domain.ErrSessionNotFound
		}

		thoughts := make([]domain.Thought, 0, len(session.Thoughts))
		tags := make(map[int][]string, len(session.Thoughts))
		for _, entry := range session.Thoughts {
			thoughts = append(thoughts, fromThoughtSchema(entry))
			if len(entry.Tags) > 0 {
				tags[entry.Number] = entry.Tags
			}
		}

		branches := make([]domain.Branch, 0, len(session.Branches))
		for _, entry := range session.Branches {
			branches = append(branches, fromBranchSchema(entry))
		}

		snapshot = domain.AssembleSnapshot(toMetadata(*session), thoughts, branches, tags)
		return nil
	})
	return snapshot, err
}

func (r *Repository) view(ctx context.Context, fn func(file fileSchema) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}
	return fn(file)
}

func (r *Repository) update(ctx context.Context, fn func(file *fileSchema) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	if err := fn(&file); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) updateSession(ctx context.Context, id domain.SessionID, at time.Time, fn func(session *sessionSchema) error) error {
	return r.update(ctx, func(file *fileSchema) error {
		session := file.find(string(id))
		if session == nil {
			return domain.ErrSessionNotFound
		}
		if err := fn(session); err != nil {
			return err
		}
		session.UpdatedAt = at.UnixMilli()
		return nil
	})
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.sessionsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read sessions file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode sessions file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeSessionsPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve sessions path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.sessionsPath), sessionsDirMode); err != nil {
		return fmt.Errorf("create sessions directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode sessions file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.sessionsPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp sessions file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp sessions file: %w", err)
	}

	if err := tempFile.Chmod(sessionsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp sessions file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp sessions file: %w", err)
	}

	if err := os.Rename(tempName, r.sessionsPath); err != nil {
		return fmt.Errorf("replace sessions file: %w", err)
	}

	cleanup = false
	return nil
}

func toMetadata(session sessionSchema) domain.SessionMetadata {
	return domain.SessionMetadata{
		ID:           domain.SessionID(session.ID),
		Name:         session.Name,
		Description:  session.Description,
		Status:       domain.SessionStatus(session.Status),
		CreatedAt:    fromMillis(session.CreatedAt),
		UpdatedAt:    fromMillis(session.UpdatedAt),
		ThoughtCount: len(session.Thoughts),
		BranchCount:  len(session.Branches),
	}
}

func fromThoughtSchema(entry thoughtSchema) domain.Thought {
	return domain.Thought{
		Number:            entry.Number,
		Text:              entry.Text,
		Kind:              domain.ThoughtKind(entry.Type),
		BranchID:          domain.BranchID(entry.BranchID),
		IsRevision:        entry.IsRevision,
		RevisesThought:    entry.RevisesThought,
		BranchFromThought: entry.BranchFromThought,
		CreatedAt:         fromMillis(entry.CreatedAt),
	}
}

func fromBranchSchema(entry branchSchema) domain.Branch {
	return domain.Branch{
		ID:            domain.BranchID(entry.ID),
		OriginThought: entry.OriginThought,
		Status:        domain.BranchStatus(entry.Status),
		Conclusion:    entry.Conclusion,
		MergeStrategy: domain.MergeStrategy(entry.MergeStrategy),
		CreatedAt:     fromMillis(entry.CreatedAt),
		ClosedAt:      optionalTime(entry.ClosedAt),
		MergedAt:      optionalTime(entry.MergedAt),
	}
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func optionalMillis(t *time.Time) int64 {
	if t == nil {
		return 0
	}
	return t.UnixMilli()
}

func optionalTime(ms int64) *time.Time {
	if ms == 0 {
		return nil
	}
	t := fromMillis(ms)
	return &t
}
