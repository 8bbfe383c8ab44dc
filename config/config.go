// Package config loads the gateway configuration from the environment.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Translator backend selectors.
const (
	TranslatorShakespeare = "shakespeare"
	TranslatorOpenAI      = "openai"
)

// Config holds the gateway configuration.
// Every field is read from a POKESPEARE_-prefixed environment variable.
type Config struct {
	Port               int    // POKESPEARE_PORT
	PokeAPIEndpoint    string // POKESPEARE_POKEAPI_ENDPOINT
	TranslatorEndpoint string // POKESPEARE_TRANSLATOR_ENDPOINT
	CacheSize          int    // POKESPEARE_CACHE_SIZE (0 disables caching)
	Translator         string // POKESPEARE_TRANSLATOR (shakespeare|openai)
	OpenAIKey          string // POKESPEARE_OPENAI_KEY
	OpenAIModel        string // POKESPEARE_OPENAI_MODEL
	RedisURL           string // POKESPEARE_REDIS_URL (set to use Redis instead of the in-memory LRU)
	RedisTTL           int    // POKESPEARE_REDIS_TTL in seconds
	TranslatorRPM      int    // POKESPEARE_TRANSLATOR_RPM (0 disables pacing)
	LogLevel           string // POKESPEARE_LOG_LEVEL
	LogFormat          string // POKESPEARE_LOG_FORMAT (json|console)
}

// Load reads the configuration from the environment, applying defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("pokespeare")
	v.AutomaticEnv()

	v.SetDefault("port", 8080)
	v.SetDefault("pokeapi_endpoint", "https://pokeapi.co/api/v2")
	v.SetDefault("translator_endpoint", "https://api.funtranslations.com")
	v.SetDefault("cache_size", 100)
	v.SetDefault("translator", TranslatorShakespeare)
	v.SetDefault("openai_key", "")
	v.SetDefault("openai_model", "")
	v.SetDefault("redis_url", "")
	v.SetDefault("redis_ttl", 0)
	v.SetDefault("translator_rpm", 0)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	cfg := &Config{
		Port:               v.GetInt("port"),
		PokeAPIEndpoint:    v.GetString("pokeapi_endpoint"),
		TranslatorEndpoint: v.GetString("translator_endpoint"),
		CacheSize:          v.GetInt("cache_size"),
		Translator:         v.GetString("translator"),
		OpenAIKey:          v.GetString("openai_key"),
		OpenAIModel:        v.GetString("openai_model"),
		RedisURL:           v.GetString("redis_url"),
		RedisTTL:           v.GetInt("redis_ttl"),
		TranslatorRPM:      v.GetInt("translator_rpm"),
		LogLevel:           v.GetString("log_level"),
		LogFormat:          v.GetString("log_format"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("invalid cache size: %d", c.CacheSize)
	}
	switch c.Translator {
	case TranslatorShakespeare:
	case TranslatorOpenAI:
		if c.OpenAIKey == "" {
			return fmt.Errorf("POKESPEARE_OPENAI_KEY is required when the openai translator is selected")
		}
	default:
		return fmt.Errorf("unknown translator: %q", c.Translator)
	}
	return nil
}
