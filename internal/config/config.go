// Package config resolves runtime settings from flags, environment and an optional
// config.toml, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	KeyStoragePath    = "storage.path"
	KeyStorageBackend = "storage.backend"
	KeyLogFile        = "log.file"
	KeyLogDebug       = "log.debug"
	KeyEchoThoughts   = "thoughts.echo"
	KeyThoughtLogging = "thoughts.logging"

	keyDisableThoughtLogging = "thoughts.disable_logging"
)

// MemoryPath keeps every session in memory for the life of the process.
const MemoryPath = ":memory:"

const (
	dataDir         = ".maxential"
	sqliteFileName  = "thinking.db"
	tomlFileName    = "sessions.toml"
	configFileName  = "config"
	configFileType  = "toml"
	configEnvPrefix = "MAXENTIAL"
)

type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendTOML   Backend = "toml"
)

type Config struct {
	StoragePath    string
	Backend        Backend
	LogFile        string
	Debug          bool
	EchoThoughts   bool
	ThoughtLogging bool
}

func (c Config) InMemory() bool {
	return c.StoragePath == MemoryPath
}

// Paths anchors relative and default locations.
type Paths struct {
	Home    string
	WorkDir string
}

func DefaultPaths() (Paths, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return Paths{}, fmt.Errorf("resolve working directory: %w", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("resolve home directory: %w", err)
	}
	return Paths{Home: home, WorkDir: workDir}, nil
}

// New returns a viper instance with defaults, environment bindings and config
// search paths registered. Nothing is read yet.
func New(paths Paths) *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyStorageBackend, string(BackendSQLite))
	v.SetDefault(KeyLogDebug, false)
	v.SetDefault(KeyEchoThoughts, false)
	v.SetDefault(KeyThoughtLogging, true)

	v.SetEnvPrefix(configEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	_ = v.BindEnv(KeyStoragePath, "MAXENTIAL_DB_PATH")
	_ = v.BindEnv(KeyStorageBackend, "MAXENTIAL_STORAGE_BACKEND")
	_ = v.BindEnv(KeyLogFile, "MAXENTIAL_LOG_FILE")
	_ = v.BindEnv(KeyLogDebug, "MAXENTIAL_DEBUG")
	_ = v.BindEnv(KeyEchoThoughts, "MAXENTIAL_ECHO_THOUGHTS")
	_ = v.BindEnv(keyDisableThoughtLogging, "DISABLE_THOUGHT_LOGGING")

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	if paths.WorkDir != "" {
		v.AddConfigPath(filepath.Join(paths.WorkDir, dataDir))
	}
	if paths.Home != "" {
		v.AddConfigPath(filepath.Join(paths.Home, dataDir))
	}

	return v
}

// Load reads the optional config file and resolves every setting. A missing
// config file is not an error.
func Load(v *viper.Viper, paths Paths) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	backend := Backend(strings.ToLower(strings.TrimSpace(v.GetString(KeyStorageBackend))))
	switch backend {
	case BackendSQLite, BackendTOML:
	default:
		return Config{}, fmt.Errorf("unsupported storage backend %q: must be sqlite or toml", backend)
	}

	storagePath, err := ResolveStoragePath(v.GetString(KeyStoragePath), backend, paths)
	if err != nil {
		return Config{}, err
	}

	logFile := strings.TrimSpace(v.GetString(KeyLogFile))
	if logFile != "" {
		logFile, err = ResolvePath(logFile, paths)
		if err != nil {
			return Config{}, err
		}
	}

	return Config{
		StoragePath:    storagePath,
		Backend:        backend,
		LogFile:        logFile,
		Debug:          v.GetBool(KeyLogDebug),
		EchoThoughts:   v.GetBool(KeyEchoThoughts),
		ThoughtLogging: v.GetBool(KeyThoughtLogging) && !v.GetBool(keyDisableThoughtLogging),
	}, nil
}

// ResolveStoragePath passes ":memory:" through, expands a leading "~" and makes
// relative paths absolute. An empty value selects the per-backend default under
// <workdir>/.maxential.
func ResolveStoragePath(raw string, backend Backend, paths Paths) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == MemoryPath {
		return MemoryPath, nil
	}
	if raw == "" {
		name := sqliteFileName
		if backend == BackendTOML {
			name = tomlFileName
		}
		raw = filepath.Join(paths.WorkDir, dataDir, name)
	}
	return ResolvePath(raw, paths)
}

func ResolvePath(raw string, paths Paths) (string, error) {
	if raw == "~" || strings.HasPrefix(raw, "~/") {
		if paths.Home == "" {
			return "", errors.New("cannot expand ~ without a home directory")
		}
		raw = filepath.Join(paths.Home, strings.TrimPrefix(raw, "~"))
	}
	if !filepath.IsAbs(raw) {
		raw = filepath.Join(paths.WorkDir, raw)
	}
	return filepath.Clean(raw), nil
}
