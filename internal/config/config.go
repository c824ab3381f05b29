package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	Pipeline            Pipeline            `mapstructure:",squash"`
	Dashboard           Dashboard           `mapstructure:",squash"`
	Auth                Auth                `mapstructure:",squash"`
	Cors                Cors                `mapstructure:",squash"`
	RunHistoryRetention RunHistoryRetention `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	Enabled  bool   `mapstructure:"database_enabled"`
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Pipeline points at the external analysis service that runs the block audit,
// builds the AI summary and emails it.
type Pipeline struct {
	URL     string        `mapstructure:"pipeline_url"`
	APIKey  string        `mapstructure:"pipeline_api_key"`
	Timeout time.Duration `mapstructure:"pipeline_timeout"`
}

// Dashboard holds the values pre-filled in the sidebar form.
type Dashboard struct {
	Title                 string   `mapstructure:"dashboard_title"`
	DefaultAppIDs         []string `mapstructure:"default_app_ids"`
	DefaultRecipientEmail string   `mapstructure:"default_recipient_email"`
	DefaultSenderEmail    string   `mapstructure:"default_sender_email"`
	User                  string   `mapstructure:"dashboard_user"`
	PasswordHash          string   `mapstructure:"dashboard_password_hash"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type RunHistoryRetention struct {
	CronSchedule string `mapstructure:"run_history_retention_cron"`
	Days         int    `mapstructure:"run_history_retention_days"`
	Enabled      bool   `mapstructure:"run_history_retention_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/block_audit?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("PIPELINE_URL", "http://localhost:8501")
	viper.SetDefault("PIPELINE_API_KEY", "")
	viper.SetDefault("PIPELINE_TIMEOUT", "15m") // AI summary + email can take several minutes

	viper.SetDefault("DASHBOARD_TITLE", "Liftoff VX – Block / Unblock AI Audit")
	viper.SetDefault("DEFAULT_APP_IDS", "632cc7810ca02c6344d51822,632cc70d35cc2d93ebf3b2d5,5b2abc08c4867b46785c2206,650363ddd38855ef54aae568")
	viper.SetDefault("DEFAULT_RECIPIENT_EMAIL", "ssai@liftoff.io")
	viper.SetDefault("DEFAULT_SENDER_EMAIL", "ssai@liftoff.io")
	viper.SetDefault("DASHBOARD_USER", "")
	viper.SetDefault("DASHBOARD_PASSWORD_HASH", "")

	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("RUN_HISTORY_RETENTION_CRON", "0 2 * * *") // every day at 02:00
	viper.SetDefault("RUN_HISTORY_RETENTION_DAYS", 90)
	viper.SetDefault("RUN_HISTORY_RETENTION_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("config: using environment loaded by godotenv (viper could not read .env): ", err)
	} else {
		logrus.Info("config: .env read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	if c.Pipeline.URL == "" {
		return fmt.Errorf("config: PIPELINE_URL is required")
	}

	if c.Pipeline.Timeout < 0 {
		return fmt.Errorf("config: PIPELINE_TIMEOUT must not be negative")
	}

	if c.RunHistoryRetention.Enabled && !c.Database.Enabled {
		return fmt.Errorf("config: RUN_HISTORY_RETENTION_ENABLED requires DATABASE_ENABLED")
	}

	if c.RunHistoryRetention.Days <= 0 {
		return fmt.Errorf("config: RUN_HISTORY_RETENTION_DAYS must be positive")
	}

	if (c.Dashboard.User == "") != (c.Dashboard.PasswordHash == "") {
		return fmt.Errorf("config: DASHBOARD_USER and DASHBOARD_PASSWORD_HASH must be set together")
	}

	return nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("config: could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("config: .env loaded from ", location)
			return
		}
	}

	logrus.Debug("config: no .env file found, relying on process environment")
}
