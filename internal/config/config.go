package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/DanRulev/vocadeck/pkg/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env        string           `mapstructure:"env" validate:"oneof=development production staging"`
	BotToken   string           `mapstructure:"bot_token"`
	HTTP       HTTPConfig       `mapstructure:"http"`
	DB         DBConfig         `mapstructure:"db"`
	Translator TranslatorConfig `mapstructure:"translator"`
	Tokenizer  TokenizerConfig  `mapstructure:"tokenizer"`
	Quiz       QuizConfig       `mapstructure:"quiz"`
	Speech     SpeechConfig     `mapstructure:"speech"`
}

type HTTPConfig struct {
	Addr         string        `mapstructure:"addr" validate:"required"`
	AllowOrigins []string      `mapstructure:"allow_origins"`
	MaxUpload    int64         `mapstructure:"max_upload" validate:"min=1"`
	Timeout      time.Duration `mapstructure:"timeout" validate:"min=0"`
}

type DBConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=sqlite3 postgres"`
	Path   string `mapstructure:"path" validate:"required_if=Driver sqlite3"`
	Conn   DBConn `mapstructure:"conn"`
	Cfg    DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSL      string `mapstructure:"ssl" validate:"omitempty,oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

type TranslatorConfig struct {
	Provider    string        `mapstructure:"provider" validate:"oneof=mymemory gemini"`
	Target      string        `mapstructure:"target" validate:"required"`
	Workers     int           `mapstructure:"workers" validate:"min=1,max=16"`
	Timeout     time.Duration `mapstructure:"timeout" validate:"min=0"`
	CacheSize   int           `mapstructure:"cache_size" validate:"min=0"`
	BaseURL     string        `mapstructure:"base_url" validate:"omitempty,url"`
	Email       string        `mapstructure:"email" validate:"omitempty,email"`
	GeminiKey   string        `mapstructure:"gemini_key" validate:"required_if=Provider gemini"`
	GeminiModel string        `mapstructure:"gemini_model"`
}

type TokenizerConfig struct {
	ChineseDict string `mapstructure:"chinese_dict"`
}

type QuizConfig struct {
	DefaultQuestions int  `mapstructure:"default_questions" validate:"min=1,max=100"`
	UniquePrompts    bool `mapstructure:"unique_prompts"`
}

type SpeechConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	CredentialsFile string `mapstructure:"credentials_file" validate:"required_if=Enabled true"`
}

// DSN builds the driver-specific connection string.
func (c DBConfig) DSN() string {
	if c.Driver == "postgres" {
		return fmt.Sprintf("host=%v port=%v dbname=%v user=%v password=%v sslmode=%v",
			c.Conn.Host, c.Conn.Port, c.Conn.Name, c.Conn.User, c.Conn.Password, c.Conn.SSL)
	}
	return fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on", c.Path)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.allow_origins", []string{"http://localhost:5173"})
	v.SetDefault("http.max_upload", 20<<20)
	v.SetDefault("http.timeout", 2*time.Minute)

	v.SetDefault("db.driver", "sqlite3")
	v.SetDefault("db.path", "learning_history.db")
	v.SetDefault("db.conn.ssl", "disable")
	v.SetDefault("db.cfg.max_open_conns", 1)
	v.SetDefault("db.cfg.max_idle_conns", 1)

	v.SetDefault("translator.provider", "mymemory")
	v.SetDefault("translator.target", "vi")
	v.SetDefault("translator.workers", 1)
	v.SetDefault("translator.timeout", 10*time.Second)
	v.SetDefault("translator.cache_size", 5000)
	v.SetDefault("translator.gemini_model", "gemini-2.0-flash")

	v.SetDefault("quiz.default_questions", 20)
	v.SetDefault("quiz.unique_prompts", false)
}

func Init() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.AddConfigPath(".")
	v.SetConfigName(configName)

	bindings := map[string]string{
		"bot_token":               "BOT_TOKEN",
		"db.driver":               "DB_DRIVER",
		"db.path":                 "DB_PATH",
		"db.conn.host":            "DB_HOST",
		"db.conn.port":            "DB_PORT",
		"db.conn.user":            "DB_USER",
		"db.conn.password":        "DB_PASSWORD",
		"db.conn.name":            "DB_NAME",
		"db.conn.ssl":             "DB_SSL",
		"translator.gemini_key":   "GEMINI_API_KEY",
		"speech.credentials_file": "GOOGLE_CREDENTIALS_JSON",
		"tokenizer.chinese_dict":  "CHINESE_DICT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
