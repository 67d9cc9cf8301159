package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/bnema/maxential-thinking/internal/adapters/render/chain"
	sessionsrender "github.com/bnema/maxential-thinking/internal/adapters/render/sessions"
	"github.com/bnema/maxential-thinking/internal/adapters/repo/sqlite"
	tomlrepo "github.com/bnema/maxential-thinking/internal/adapters/repo/toml"
	"github.com/bnema/maxential-thinking/internal/adapters/tools"
	"github.com/bnema/maxential-thinking/internal/application"
	"github.com/bnema/maxential-thinking/internal/config"
	"github.com/bnema/maxential-thinking/internal/logging"
	"github.com/bnema/maxential-thinking/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type wireFunc func() (*app, error)

type sessionStore interface {
	ports.SessionRepository
	Path() string
	Close() error
}

type app struct {
	cfg            config.Config
	logger         *zap.Logger
	store          sessionStore
	engine         *application.Engine
	dispatcher     *tools.Dispatcher
	sessionsRender func(application.SessionListResult, sessionsrender.RenderOptions) (string, error)
	now            func() time.Time
}

func wireApp() (*app, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, err
	}

	v := config.New(paths)
	cfg, err := config.Load(v, paths)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logging.Config{File: cfg.LogFile, Debug: cfg.Debug})
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	a := &app{
		cfg:            cfg,
		logger:         logger,
		sessionsRender: sessionsrender.Render,
		now:            time.Now,
	}

	opts := []application.Option{
		application.WithLogger(logger),
		application.WithEchoThoughts(cfg.EchoThoughts),
	}
	if cfg.ThoughtLogging {
		opts = append(opts, application.WithThoughtSink(chain.NewThoughtBoxes(os.Stderr)))
	}

	var repo ports.SessionRepository
	store, err := openStore(v, cfg)
	if err != nil {
		logger.Warn("session storage unavailable, continuing in memory",
			zap.String("path", cfg.StoragePath),
			zap.String("backend", string(cfg.Backend)),
			zap.Error(err),
		)
	} else {
		a.store = store
		repo = store
	}

	a.engine = application.NewEngine(repo, ports.SystemClock{}, ports.UUIDGenerator{}, opts...)
	a.dispatcher = tools.NewDispatcher(a.engine, logger)
	return a, nil
}

func openStore(v *viper.Viper, cfg config.Config) (sessionStore, error) {
	if cfg.InMemory() || cfg.Backend == config.BackendSQLite {
		repo, err := sqlite.Open(cfg.StoragePath)
		if err != nil {
			return nil, err
		}
		return repo, nil
	}

	v.Set(config.KeyStoragePath, cfg.StoragePath)
	repo, err := tomlrepo.NewRepository(v)
	if err != nil {
		return nil, err
	}
	return repo, nil
}

func (a *app) Close() error {
	var errs []error
	if a.store != nil {
		errs = append(errs, a.store.Close())
	}
	// Syncing stderr fails on some platforms; only a file sink can report a real error.
	if err := a.logger.Sync(); err != nil && a.cfg.LogFile != "" {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func withApp(wire wireFunc, run func(app *app) error) (err error) {
	a, err := wire()
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, a.Close())
	}()
	return run(a)
}
