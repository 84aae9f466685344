package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Keys
const (
	KeyDataDir      = "data_dir"
	KeySaveDelay    = "save_delay"
	KeyStatusTTL    = "status_ttl"
	KeySavePolicy   = "save_policy"
	KeyCorrelation  = "correlation"
	KeyLogFile      = "log_file"
	KeyLogLevel     = "log_level"
	KeyGPGRecipient = "gpg_recipient"
	KeyIndex        = "index"
	KeyBackend      = "backend"
)

const (
	DefaultDataDir = "~/.offjournal"
	configName     = "offjournal"
	envPrefix      = "OFFJOURNAL"
)

// Config is the resolved application configuration
type Config struct {
	DataDir      string
	SaveDelay    time.Duration
	StatusTTL    time.Duration
	SavePolicy   string
	Correlation  string
	LogFile      string
	LogLevel     string
	GPGRecipient string
	Index        bool
	// Backend is a command speaking the stdio bridge; empty runs in-process
	Backend string
}

// New returns a viper instance with defaults, config file search paths
// and OFFJOURNAL_* environment overrides set up
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyDataDir, DefaultDataDir)
	v.SetDefault(KeySaveDelay, 1500*time.Millisecond)
	v.SetDefault(KeyStatusTTL, 3*time.Second)
	v.SetDefault(KeySavePolicy, "optimistic")
	v.SetDefault(KeyCorrelation, "last-wins")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyGPGRecipient, "")
	v.SetDefault(KeyIndex, true)
	v.SetDefault(KeyBackend, "")

	v.SetConfigName(configName) // .yaml is implicit
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if override := os.Getenv(envPrefix + "_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", configName))
	}
	v.AddConfigPath(".")

	return v
}

// Load reads the config file if one exists and resolves every key
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	dataDir, err := homedir.Expand(v.GetString(KeyDataDir))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", KeyDataDir, err)
	}
	logFile, err := homedir.Expand(v.GetString(KeyLogFile))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", KeyLogFile, err)
	}
	if logFile == "" {
		logFile = filepath.Join(dataDir, "offjournal.log")
	}

	cfg := &Config{
		DataDir:      dataDir,
		SaveDelay:    v.GetDuration(KeySaveDelay),
		StatusTTL:    v.GetDuration(KeyStatusTTL),
		SavePolicy:   v.GetString(KeySavePolicy),
		Correlation:  v.GetString(KeyCorrelation),
		LogFile:      logFile,
		LogLevel:     v.GetString(KeyLogLevel),
		GPGRecipient: v.GetString(KeyGPGRecipient),
		Index:        v.GetBool(KeyIndex),
		Backend:      v.GetString(KeyBackend),
	}

	if cfg.SaveDelay <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %s", KeySaveDelay, cfg.SaveDelay)
	}
	if cfg.StatusTTL <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %s", KeyStatusTTL, cfg.StatusTTL)
	}
	return cfg, nil
}

// IndexPath is where the sqlite search index lives
func (c *Config) IndexPath() string {
	return filepath.Join(c.DataDir, "index.db")
}
