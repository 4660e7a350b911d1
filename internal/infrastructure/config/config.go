// Package config loads the application configuration from YAML and
// environment variables.
package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "inqboard/internal/shared/config"
)

type Config struct {
	Server      sharedConfig.ServerConfig      `mapstructure:"server"`
	Database    sharedConfig.DatabaseConfig    `mapstructure:"database"`
	Logger      sharedConfig.LoggerConfig      `mapstructure:"logger"`
	Auth        sharedConfig.AuthConfig        `mapstructure:"auth"`
	Vault       sharedConfig.VaultConfig       `mapstructure:"vault"`
	Analysis    sharedConfig.AnalysisConfig    `mapstructure:"analysis"`
	Telegram    sharedConfig.TelegramConfig    `mapstructure:"telegram"`
	Triage      sharedConfig.TriageConfig      `mapstructure:"triage"`
	Diagnostics sharedConfig.DiagnosticsConfig `mapstructure:"diagnostics"`
	Upload      sharedConfig.UploadConfig      `mapstructure:"upload"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables.
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("INQBOARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")

	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "inqboard_dev")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	viper.SetDefault("auth.password.bcrypt_cost", 12)
	viper.SetDefault("auth.jwt.secret", "change-me-in-production")
	viper.SetDefault("auth.jwt.access_exp_minutes", 720)

	viper.SetDefault("vault.key", "")

	viper.SetDefault("analysis.api_key", "")
	viper.SetDefault("analysis.base_url", "")
	viper.SetDefault("analysis.model", "gpt-4o-mini")

	viper.SetDefault("telegram.bot_token", "")
	viper.SetDefault("telegram.chat_id", "")

	viper.SetDefault("triage.interval_seconds", 60)
	viper.SetDefault("triage.batch_size", 5)
	viper.SetDefault("triage.pause_seconds", 2)
	viper.SetDefault("triage.max_attempts", 10)
	viper.SetDefault("triage.lock_file", "")

	viper.SetDefault("diagnostics.connect_timeout_seconds", 10)
	viper.SetDefault("diagnostics.probe_timeout_seconds", 15)

	viper.SetDefault("upload.dir", "./uploads")
	viper.SetDefault("upload.max_size_mb", 10)
	viper.SetDefault("upload.allowed_exts", []string{
		"jpg", "jpeg", "png", "gif", "webp", "mp4", "webm", "pdf", "doc", "docx",
	})
}
