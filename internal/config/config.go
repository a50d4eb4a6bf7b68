package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env               string        `mapstructure:"env"`                 // current application environment (local, dev, prod etc)
	TelegramAPIToken  string        `mapstructure:"-"`                   // Telegram API token loaded from environment
	Sponsors          []string      `mapstructure:"-"`                   // sponsor channel URLs/handles, empty disables gating
	AdminChatID       int64         `mapstructure:"-"`                   // chat notified about new /start events, 0 disables
	QuestionsJSONPath string        `mapstructure:"questions_json_path"` // path to JSON file with categorized questions
	AuditLogPath      string        `mapstructure:"audit_log_path"`      // path to the append-only start log
	AutoAdvanceDelay  time.Duration `mapstructure:"auto_advance_delay"`  // reveal-to-next delay, 0 disables auto-advance
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("questions_json_path", "assets/data/questions.json")
	v.SetDefault("audit_log_path", "bot_starts.log")
	v.SetDefault("auto_advance_delay", "2s")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("sponsors", "SPONSORS")
	_ = v.BindEnv("admin_chat_id", "ADMIN_CHAT_ID")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	cfg.Sponsors = splitSponsors(v.GetString("sponsors"))
	cfg.AdminChatID = v.GetInt64("admin_chat_id")

	return &cfg, nil
}

// splitSponsors parses the comma-separated SPONSORS value. An empty value
// means gating is disabled.
func splitSponsors(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var sponsors []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			sponsors = append(sponsors, s)
		}
	}
	return sponsors
}
