package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type AuthConfig struct {
	Password PasswordConfig `mapstructure:"password"`
	JWT      JWTConfig      `mapstructure:"jwt"`
}

// VaultConfig holds the key used to encrypt server credentials at rest.
type VaultConfig struct {
	Key string `mapstructure:"key"`
}

// AnalysisConfig configures the external reasoning service client.
type AnalysisConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   string `mapstructure:"chat_id"`
}

func (t *TelegramConfig) Enabled() bool {
	return t.BotToken != "" && t.ChatID != ""
}

// TriageConfig controls the automated triage worker.
type TriageConfig struct {
	IntervalSeconds int    `mapstructure:"interval_seconds"`
	BatchSize       int    `mapstructure:"batch_size"`
	PauseSeconds    int    `mapstructure:"pause_seconds"`
	MaxAttempts     int    `mapstructure:"max_attempts"`
	LockFile        string `mapstructure:"lock_file"`
}

// DiagnosticsConfig controls the SSH probe battery.
type DiagnosticsConfig struct {
	ConnectTimeoutSeconds int `mapstructure:"connect_timeout_seconds"`
	ProbeTimeoutSeconds   int `mapstructure:"probe_timeout_seconds"`
}

type UploadConfig struct {
	Dir         string   `mapstructure:"dir"`
	MaxSizeMB   int      `mapstructure:"max_size_mb"`
	AllowedExts []string `mapstructure:"allowed_exts"`
}
