// internal/config/config.go
//
// This package handles configuration and the .afrofeast directory structure.
// The terminal creates .afrofeast/ in the directory it is started from.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

const (
	// EstateDir is the name of the directory we create next to the terminal
	EstateDir = ".afrofeast"

	// EnvStaffHash overrides staff.access_hash.
	EnvStaffHash = "AFROFEAST_STAFF_HASH"
	// EnvTable overrides estate.table_number.
	EnvTable = "AFROFEAST_TABLE"

	defaultTableNumber     = "08"
	defaultCurrency        = "FCFA"
	defaultProcessingDelay = 2500 * time.Millisecond
	defaultSessionTTL      = 8 * time.Hour
	defaultRefreshInterval = time.Second
)

const defaultEstateConfigYAML = `# afrofeast estate configuration
version: 1

estate:
  name: AfroFeast
  # Table this terminal is installed at. Delivery orders ignore it.
  table_number: "08"
  currency: FCFA
  receipt_base_url: https://afrofeast.example/orders

ordering:
  # Simulated payment processing time.
  processing_delay: 2500ms
  # Seed the kitchen with a demo order on start.
  demo_seed: true
  # Rewards handed out at random with each order. Leave empty for the house list.
  gifts: []

staff:
  # bcrypt hash of the staff access code. Generate one with: staffhash <code>
  # Can also be set with AFROFEAST_STAFF_HASH.
  access_hash: ""
  session_ttl: 8h

catalog:
  # Optional YAML catalog. Relative paths resolve from the project directory.
  path: ""

board:
  refresh_interval: 1s
`

// EstateConfig describes the estate and this terminal's place in it.
type EstateConfig struct {
	Name           string `yaml:"name"`
	TableNumber    string `yaml:"table_number"`
	Currency       string `yaml:"currency"`
	ReceiptBaseURL string `yaml:"receipt_base_url"`
}

// OrderingConfig tunes the ordering flow.
type OrderingConfig struct {
	ProcessingDelay time.Duration `yaml:"processing_delay"`
	DemoSeed        bool          `yaml:"demo_seed"`
	Gifts           []string      `yaml:"gifts,omitempty"`
}

// StaffConfig holds the staff gate credentials.
type StaffConfig struct {
	AccessHash string        `yaml:"access_hash"`
	SessionTTL time.Duration `yaml:"session_ttl"`
}

// CatalogConfig points at an optional catalog file.
type CatalogConfig struct {
	Path string `yaml:"path,omitempty"`
}

// BoardConfig tunes the live views.
type BoardConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

// EstateFile models .afrofeast/config.yaml.
type EstateFile struct {
	Version  int            `yaml:"version"`
	Estate   EstateConfig   `yaml:"estate"`
	Ordering OrderingConfig `yaml:"ordering"`
	Staff    StaffConfig    `yaml:"staff"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Board    BoardConfig    `yaml:"board"`
}

// Config holds the runtime configuration for the terminal.
type Config struct {
	// ProjectDir is the directory the terminal was started from
	ProjectDir string

	// EstateProjectDir is ProjectDir/.afrofeast
	EstateProjectDir string

	Estate EstateFile
}

// InitEstateDir creates the .afrofeast directory structure in the given
// project directory and writes a default config.yaml if none exists.
//
// Structure created:
// .afrofeast/
// ├── config.yaml
// └── logs/         <- Order journal
func InitEstateDir(projectDir string) error {
	estateDir := filepath.Join(projectDir, EstateDir)
	if err := os.MkdirAll(filepath.Join(estateDir, "logs"), 0o755); err != nil {
		return err
	}
	return ensureEstateConfig(filepath.Join(estateDir, "config.yaml"))
}

// NewConfig loads .env and .afrofeast/config.yaml from projectDir.
func NewConfig(projectDir string) (*Config, error) {
	envPath := filepath.Join(projectDir, ".env")
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load %s: %w", envPath, err)
	}

	cfg := &Config{
		ProjectDir:       projectDir,
		EstateProjectDir: filepath.Join(projectDir, EstateDir),
		Estate:           defaultEstateFile(),
	}
	if err := cfg.loadEstateConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogsDir returns the path to the logs directory
func (c *Config) LogsDir() string {
	return filepath.Join(c.EstateProjectDir, "logs")
}

// JournalPath returns the order journal file.
func (c *Config) JournalPath() string {
	return filepath.Join(c.LogsDir(), "journal.log")
}

// EstateConfigPath returns the on-disk location for the config file.
func (c *Config) EstateConfigPath() string {
	return filepath.Join(c.EstateProjectDir, "config.yaml")
}

func (c *Config) loadEstateConfig() error {
	path := c.EstateConfigPath()
	parsed := defaultEstateFile()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		parsed = EstateFile{}
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return fmt.Errorf("config: parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize(c.ProjectDir)
	parsed.applyEnv()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Estate = parsed
	return nil
}

func defaultEstateFile() EstateFile {
	ef := EstateFile{Ordering: OrderingConfig{DemoSeed: true}}
	ef.applyDefaults()
	return ef
}

func (ef *EstateFile) applyDefaults() {
	if ef.Version == 0 {
		ef.Version = 1
	}
	if ef.Estate.Name == "" {
		ef.Estate.Name = "AfroFeast"
	}
	if ef.Estate.TableNumber == "" {
		ef.Estate.TableNumber = defaultTableNumber
	}
	if ef.Estate.Currency == "" {
		ef.Estate.Currency = defaultCurrency
	}
	if ef.Ordering.ProcessingDelay == 0 {
		ef.Ordering.ProcessingDelay = defaultProcessingDelay
	}
	if ef.Staff.SessionTTL == 0 {
		ef.Staff.SessionTTL = defaultSessionTTL
	}
	if ef.Board.RefreshInterval == 0 {
		ef.Board.RefreshInterval = defaultRefreshInterval
	}
}

func (ef *EstateFile) normalize(base string) {
	ef.Estate.Name = strings.TrimSpace(ef.Estate.Name)
	ef.Estate.TableNumber = strings.TrimSpace(ef.Estate.TableNumber)
	ef.Estate.Currency = strings.ToUpper(strings.TrimSpace(ef.Estate.Currency))
	ef.Estate.ReceiptBaseURL = strings.TrimSpace(ef.Estate.ReceiptBaseURL)
	ef.Staff.AccessHash = strings.TrimSpace(ef.Staff.AccessHash)
	ef.Catalog.Path = resolvePath(base, ef.Catalog.Path)
	gifts := ef.Ordering.Gifts[:0]
	for _, gift := range ef.Ordering.Gifts {
		if gift = strings.TrimSpace(gift); gift != "" {
			gifts = append(gifts, gift)
		}
	}
	ef.Ordering.Gifts = gifts
}

func (ef *EstateFile) applyEnv() {
	if hash := strings.TrimSpace(os.Getenv(EnvStaffHash)); hash != "" {
		ef.Staff.AccessHash = hash
	}
	if table := strings.TrimSpace(os.Getenv(EnvTable)); table != "" {
		ef.Estate.TableNumber = table
	}
}

func (ef *EstateFile) validate() error {
	if ef.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if ef.Estate.TableNumber == "" {
		return fmt.Errorf("estate.table_number is required")
	}
	if ef.Ordering.ProcessingDelay < 0 {
		return fmt.Errorf("ordering.processing_delay must be >= 0")
	}
	if ef.Staff.SessionTTL < 0 {
		return fmt.Errorf("staff.session_ttl must be >= 0")
	}
	if ef.Board.RefreshInterval < 0 {
		return fmt.Errorf("board.refresh_interval must be >= 0")
	}
	if ef.Staff.AccessHash != "" {
		if _, err := bcrypt.Cost([]byte(ef.Staff.AccessHash)); err != nil {
			return fmt.Errorf("staff.access_hash is not a bcrypt hash: %w", err)
		}
	}
	return nil
}

func ensureEstateConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultEstateConfigYAML), 0o644)
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}
