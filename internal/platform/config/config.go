package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

type Config struct {
	DataDir     string
	StateDir    string
	Storage     string
	DBPath      string
	ReportDir   string
	CatalogPath string
	LogMode     string
	LogPath     string
}

// New builds the configuration rooted at dataDir. Values from <dataDir>/.env
// and the process environment override the defaults.
func New(dataDir string) (Config, error) {
	if strings.TrimSpace(dataDir) == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	_ = godotenv.Load(filepath.Join(dataDir, ".env"))

	stateDir := filepath.Join(dataDir, ".roadmap")
	cfg := Config{
		DataDir:     dataDir,
		StateDir:    stateDir,
		Storage:     getEnv("ROADMAP_STORAGE", StorageFile),
		DBPath:      filepath.Join(stateDir, "roadmap.db"),
		ReportDir:   filepath.Join(dataDir, "reports"),
		CatalogPath: getEnv("ROADMAP_CATALOG", ""),
		LogMode:     getEnv("ROADMAP_LOG_MODE", "development"),
		LogPath:     getEnv("ROADMAP_LOG_PATH", "stderr"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Storage {
	case StorageFile, StorageSQLite:
		return nil
	default:
		return fmt.Errorf("unsupported storage backend %q", c.Storage)
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}
