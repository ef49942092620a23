package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath       = "config.yaml"
	defaultLLMProvider      = "gemini"
	defaultGeminiModel      = "gemini-1.5-flash"
	defaultGroqModel        = "llama-3.3-70b-versatile"
	defaultMinContentSlides = 4
	defaultMaxContentSlides = 6
	defaultParallelism      = 4
	defaultOutputDir        = "./output"
	defaultExportFormat     = "pptx"
	defaultServerAddr       = ":8080"
	defaultRatePerMinute    = 10
	defaultRateBurst        = 3
	defaultGCSExportDir     = "exports"
)

type Config struct {
	GeminiAPIKey      string
	GroqAPIKey        string
	UnsplashAccessKey string
	GCSBucket         string

	PromptsPath string `yaml:"prompts_path"`

	LLM     LLMConfig     `yaml:"llm"`
	Content ContentConfig `yaml:"content"`
	Images  ImagesConfig  `yaml:"images"`
	Export  ExportConfig  `yaml:"export"`
	Server  ServerConfig  `yaml:"server"`
	GCS     GCSConfig     `yaml:"gcs"`
}

type LLMConfig struct {
	Provider    string `yaml:"provider"` // "gemini" or "groq"
	GeminiModel string `yaml:"gemini_model"`
	GroqModel   string `yaml:"groq_model"`
}

type ContentConfig struct {
	MinContentSlides int `yaml:"min_content_slides"`
	MaxContentSlides int `yaml:"max_content_slides"`
}

type ImagesConfig struct {
	Parallelism int `yaml:"parallelism"`
}

type ExportConfig struct {
	OutputDir     string `yaml:"output_dir"`
	DefaultFormat string `yaml:"default_format"` // "pptx" or "pdf"
}

type ServerConfig struct {
	Addr          string `yaml:"addr"`
	RatePerMinute int    `yaml:"rate_per_minute"`
	RateBurst     int    `yaml:"rate_burst"`
}

type GCSConfig struct {
	Enabled   bool   `yaml:"enabled"`
	ExportDir string `yaml:"export_dir"`
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GroqAPIKey:        os.Getenv("GROQ_API_KEY"),
		UnsplashAccessKey: os.Getenv("UNSPLASH_ACCESS_KEY"),
		GCSBucket:         os.Getenv("GCS_BUCKET"),
	}

	loadYAMLConfig(cfg, defaultConfigPath)
	applyDefaults(cfg)

	return cfg
}

func loadYAMLConfig(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("No config.yaml found, using defaults")
		return
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		slog.Error("Failed to parse config.yaml", "error", err)
	}
}

func applyDefaults(cfg *Config) {
	applyLLMDefaults(cfg)
	applyContentDefaults(cfg)
	applyImagesDefaults(cfg)
	applyExportDefaults(cfg)
	applyServerDefaults(cfg)
	applyGCSDefaults(cfg)
}

func applyLLMDefaults(cfg *Config) {
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = defaultLLMProvider
	}
	if cfg.LLM.GeminiModel == "" {
		cfg.LLM.GeminiModel = defaultGeminiModel
	}
	if cfg.LLM.GroqModel == "" {
		cfg.LLM.GroqModel = defaultGroqModel
	}
}

func applyContentDefaults(cfg *Config) {
	if cfg.Content.MinContentSlides == 0 {
		cfg.Content.MinContentSlides = defaultMinContentSlides
	}
	if cfg.Content.MaxContentSlides == 0 {
		cfg.Content.MaxContentSlides = defaultMaxContentSlides
	}
}

func applyImagesDefaults(cfg *Config) {
	if cfg.Images.Parallelism == 0 {
		cfg.Images.Parallelism = defaultParallelism
	}
}

func applyExportDefaults(cfg *Config) {
	if cfg.Export.OutputDir == "" {
		cfg.Export.OutputDir = defaultOutputDir
	}
	if cfg.Export.DefaultFormat == "" {
		cfg.Export.DefaultFormat = defaultExportFormat
	}
}

func applyServerDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = defaultServerAddr
	}
	if cfg.Server.RatePerMinute == 0 {
		cfg.Server.RatePerMinute = defaultRatePerMinute
	}
	if cfg.Server.RateBurst == 0 {
		cfg.Server.RateBurst = defaultRateBurst
	}
}

func applyGCSDefaults(cfg *Config) {
	if cfg.GCS.ExportDir == "" {
		cfg.GCS.ExportDir = defaultGCSExportDir
	}
}
