package bootstrap

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Env struct {
	AppEnv                string `mapstructure:"APP_ENV"`
	ServerAddress         string `mapstructure:"SERVER_ADDRESS"`
	ContextTimeout        int    `mapstructure:"CONTEXT_TIMEOUT"`
	DBURI                 string `mapstructure:"DB_URI"`
	DBName                string `mapstructure:"DB_NAME"`
	AccessTokenSecret     string `mapstructure:"ACCESS_TOKEN_SECRET"`
	AccessTokenExpiryHour int    `mapstructure:"ACCESS_TOKEN_EXPIRY_HOUR"`
	OpenAIEndpoint        string `mapstructure:"OPENAI_ENDPOINT"`
	OpenAIAPIKey          string `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel           string `mapstructure:"OPENAI_MODEL"`
	OpenAITimeout         int    `mapstructure:"OPENAI_TIMEOUT"`
	SiteURL               string `mapstructure:"SITE_URL"`
	SettingsCacheTTL      int    `mapstructure:"SETTINGS_CACHE_TTL"`
	GenerateRatePerMinute int    `mapstructure:"GENERATE_RATE_PER_MINUTE"`
	LogLevel              string `mapstructure:"LOG_LEVEL"`
}

var envDefaults = map[string]interface{}{
	"APP_ENV":                  "production",
	"SERVER_ADDRESS":           ":8080",
	"CONTEXT_TIMEOUT":          10,
	"DB_URI":                   "mongodb://localhost:27017",
	"DB_NAME":                  "oppa_blog",
	"ACCESS_TOKEN_SECRET":      "",
	"ACCESS_TOKEN_EXPIRY_HOUR": 2,
	"OPENAI_ENDPOINT":          "https://api.openai.com/v1/chat/completions",
	"OPENAI_API_KEY":           "",
	"OPENAI_MODEL":             "gpt-4",
	"OPENAI_TIMEOUT":           120,
	"SITE_URL":                 "https://blogsmanhwa-oppa.vercel.app",
	"SETTINGS_CACHE_TTL":       3600,
	"GENERATE_RATE_PER_MINUTE": 5,
	"LOG_LEVEL":                "info",
}

// NewEnv reads configFile when it exists, then lets process environment
// variables override it. An empty configFile means ".env".
func NewEnv(configFile string) (*Env, error) {
	if configFile == "" {
		configFile = ".env"
	}

	v := viper.New()
	for key, value := range envDefaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if _, err := os.Stat(configFile); err == nil {
		v.SetConfigFile(configFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", configFile, err)
		}
	}

	env := Env{}
	if err := v.Unmarshal(&env); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}
	return &env, nil
}

func (e *Env) IsDevelopment() bool {
	return e.AppEnv == "development"
}

func (e *Env) Timeout() time.Duration {
	if e.ContextTimeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(e.ContextTimeout) * time.Second
}

// ValidateServer checks what the HTTP server needs on top of the store.
func (e *Env) ValidateServer() error {
	if e.AccessTokenSecret == "" {
		return errors.New("ACCESS_TOKEN_SECRET must be set")
	}
	if e.AccessTokenExpiryHour <= 0 {
		return errors.New("ACCESS_TOKEN_EXPIRY_HOUR must be positive")
	}
	return nil
}
