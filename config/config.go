package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the typed configuration for the inventory application.
// Bootstrap code loads it once and registers it in the service container.
type Config struct {
	App     AppConfig
	DB      DBConfig
	Backup  BackupConfig
	Company CompanyConfig
}

type AppConfig struct {
	Name  string
	Env   string // local | production | testing
	Debug bool
	Port  string
}

type DBConfig struct {
	Driver string
	Path   string
}

type BackupConfig struct {
	Dir  string
	Keep int // rotated copies to retain
}

// CompanyConfig feeds tickets and report headers.
type CompanyConfig struct {
	Name    string
	TaxID   string
	Address string
	Phone   string
}

// Load reads .env (if present) and populates a Config from environment
// variables. Call once at bootstrap: cfg := config.Load()
func Load(envFiles ...string) *Config {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)

	return &Config{
		App: AppConfig{
			Name:  env("APP_NAME", "Copypoint"),
			Env:   env("APP_ENV", "local"),
			Debug: envBool("APP_DEBUG", true),
			Port:  env("APP_PORT", "8000"),
		},
		DB: DBConfig{
			Driver: env("DB_DRIVER", "sqlite"),
			Path:   env("DB_PATH", "inventario.db"),
		},
		Backup: BackupConfig{
			Dir:  env("BACKUP_DIR", "backups"),
			Keep: envInt("BACKUP_KEEP", 7),
		},
		Company: CompanyConfig{
			Name:    env("COMPANY_NAME", "Copy Point S.A."),
			TaxID:   env("COMPANY_TAX_ID", ""),
			Address: env("COMPANY_ADDRESS", ""),
			Phone:   env("COMPANY_PHONE", ""),
		},
	}
}

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	return env(key, defaultVal)
}

// GetInt returns an int env value.
func GetInt(key string, defaultVal int) int {
	return envInt(key, defaultVal)
}

// GetBool returns a bool env value.
func GetBool(key string, defaultVal bool) bool {
	return envBool(key, defaultVal)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
