package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.PokeAPIEndpoint != "https://pokeapi.co/api/v2" {
		t.Errorf("PokeAPIEndpoint = %q", cfg.PokeAPIEndpoint)
	}
	if cfg.TranslatorEndpoint != "https://api.funtranslations.com" {
		t.Errorf("TranslatorEndpoint = %q", cfg.TranslatorEndpoint)
	}
	if cfg.CacheSize != 100 {
		t.Errorf("CacheSize = %d, want 100", cfg.CacheSize)
	}
	if cfg.Translator != TranslatorShakespeare {
		t.Errorf("Translator = %q, want %q", cfg.Translator, TranslatorShakespeare)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("POKESPEARE_PORT", "9090")
	t.Setenv("POKESPEARE_POKEAPI_ENDPOINT", "http://localhost:9000")
	t.Setenv("POKESPEARE_CACHE_SIZE", "5")
	t.Setenv("POKESPEARE_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.PokeAPIEndpoint != "http://localhost:9000" {
		t.Errorf("PokeAPIEndpoint = %q", cfg.PokeAPIEndpoint)
	}
	if cfg.CacheSize != 5 {
		t.Errorf("CacheSize = %d, want 5", cfg.CacheSize)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_ZeroCacheSizeAllowed(t *testing.T) {
	t.Setenv("POKESPEARE_CACHE_SIZE", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CacheSize != 0 {
		t.Errorf("CacheSize = %d, want 0", cfg.CacheSize)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("POKESPEARE_PORT", "-1")

	if _, err := Load(); err == nil {
		t.Error("expected error for invalid port")
	}
}

func TestLoad_UnknownTranslator(t *testing.T) {
	t.Setenv("POKESPEARE_TRANSLATOR", "piglatin")

	if _, err := Load(); err == nil {
		t.Error("expected error for unknown translator")
	}
}

func TestLoad_OpenAIRequiresKey(t *testing.T) {
	t.Setenv("POKESPEARE_TRANSLATOR", "openai")

	if _, err := Load(); err == nil {
		t.Error("expected error when openai is selected without a key")
	}

	t.Setenv("POKESPEARE_OPENAI_KEY", "sk-test")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Translator != TranslatorOpenAI {
		t.Errorf("Translator = %q, want %q", cfg.Translator, TranslatorOpenAI)
	}
}
