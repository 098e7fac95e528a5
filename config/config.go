package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Quickwit   QuickwitConfig
	AIAnalyzer AIAnalyzerConfig
	RateLimit  RateLimitConfig
	LogLevel   string
}

type ServerConfig struct {
	Port string
}

type QuickwitConfig struct {
	BaseURL        string
	IndexID        string
	Username       string
	Password       string
	Timeout        time.Duration // Deadline for every search call
	ConnectMaxWait time.Duration // Budget for the startup connectivity probe
	HealthSchedule string        // Cron spec (with seconds) for the liveness probe
}

type AIAnalyzerConfig struct {
	BaseURL  string
	APIKey   string
	Model    string
	Timeout  time.Duration
	CacheTTL time.Duration // How long a trace analysis is reused; 0 disables caching
}

type RateLimitConfig struct {
	RequestsPerSecond float64 // 0 disables limiting
	Burst             int
}

func NewConfig() (*Config, error) {
	// Configure Viper to read .env file
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Enable automatic environment variable loading
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("QUICKWIT_BASE_URL", "http://localhost:7280")
	viper.SetDefault("QUICKWIT_INDEX_ID", "logs")
	viper.SetDefault("QUICKWIT_USERNAME", "")
	viper.SetDefault("QUICKWIT_PASSWORD", "")
	viper.SetDefault("QUICKWIT_TIMEOUT", "30s")
	viper.SetDefault("QUICKWIT_CONNECT_MAX_WAIT", "20s")
	viper.SetDefault("QUICKWIT_HEALTH_SCHEDULE", "*/30 * * * * *") // Every 30 seconds
	viper.SetDefault("AI_ANALYZER_BASE_URL", "https://api.openai.com")
	viper.SetDefault("AI_ANALYZER_API_KEY", "")
	viper.SetDefault("AI_ANALYZER_MODEL", "gpt-4o-mini")
	viper.SetDefault("AI_ANALYZER_TIMEOUT", "180s")
	viper.SetDefault("AI_ANALYZER_CACHE_TTL", "10m")
	viper.SetDefault("RATE_LIMIT_RPS", 0)
	viper.SetDefault("RATE_LIMIT_BURST", 0)
	viper.SetDefault("LOG_LEVEL", "info")

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config
	config.Server.Port = viper.GetString("SERVER_PORT")

	// --- Quickwit ---
	config.Quickwit.BaseURL = strings.TrimRight(viper.GetString("QUICKWIT_BASE_URL"), "/")
	config.Quickwit.IndexID = viper.GetString("QUICKWIT_INDEX_ID")
	config.Quickwit.Username = viper.GetString("QUICKWIT_USERNAME")
	config.Quickwit.Password = viper.GetString("QUICKWIT_PASSWORD")
	config.Quickwit.Timeout = viper.GetDuration("QUICKWIT_TIMEOUT")
	config.Quickwit.ConnectMaxWait = viper.GetDuration("QUICKWIT_CONNECT_MAX_WAIT")
	config.Quickwit.HealthSchedule = viper.GetString("QUICKWIT_HEALTH_SCHEDULE")

	// --- AI analyzer ---
	config.AIAnalyzer.BaseURL = viper.GetString("AI_ANALYZER_BASE_URL")
	config.AIAnalyzer.APIKey = viper.GetString("AI_ANALYZER_API_KEY")
	config.AIAnalyzer.Model = viper.GetString("AI_ANALYZER_MODEL")
	config.AIAnalyzer.Timeout = viper.GetDuration("AI_ANALYZER_TIMEOUT")
	config.AIAnalyzer.CacheTTL = viper.GetDuration("AI_ANALYZER_CACHE_TTL")

	// --- Rate limiting ---
	config.RateLimit.RequestsPerSecond = viper.GetFloat64("RATE_LIMIT_RPS")
	config.RateLimit.Burst = viper.GetInt("RATE_LIMIT_BURST")

	config.LogLevel = viper.GetString("LOG_LEVEL")

	log.Info().Interface("config", config.Redacted()).Msg("Config loaded")
	return &config, nil
}

// Redacted returns a copy safe to log.
func (c Config) Redacted() Config {
	if c.Quickwit.Password != "" {
		c.Quickwit.Password = "****"
	}
	if key := c.AIAnalyzer.APIKey; key != "" {
		if len(key) > 4 {
			c.AIAnalyzer.APIKey = "****" + key[len(key)-4:]
		} else {
			c.AIAnalyzer.APIKey = "****"
		}
	}
	return c
}
