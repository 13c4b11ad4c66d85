package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Log    LogConfig
	Model  ModelConfig
	Fetch  FetchConfig
	S3     S3Config
	Export ExportConfig
	CORS   CORSConfig
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ModelConfig holds settings for the generative model provider.
type ModelConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
	// Endpoint overrides the provider URL; empty uses the public API.
	Endpoint string `mapstructure:"endpoint"`
}

// FetchConfig holds image retrieval settings.
type FetchConfig struct {
	TimeoutSecs int   `mapstructure:"timeout_secs"`
	MaxImageMB  int64 `mapstructure:"max_image_mb"`
}

// MaxImageBytes returns the configured image size limit in bytes.
func (f *FetchConfig) MaxImageBytes() int64 {
	return f.MaxImageMB << 20
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// S3Config holds AWS S3 settings used for s3:// image references and exports.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// ExportConfig holds settings for storing exported field sheets.
type ExportConfig struct {
	// Bucket receives stored exports; empty disables storing.
	Bucket string `mapstructure:"bucket"`
	Prefix string `mapstructure:"prefix"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the DOCASSIST_ prefix.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("DOCASSIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "150s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Model defaults
	v.SetDefault("model.provider", "gemini")
	v.SetDefault("model.api_key", "")
	v.SetDefault("model.default_model", "gemini-2.0-flash-exp")
	v.SetDefault("model.timeout_secs", 120)
	v.SetDefault("model.endpoint", "")

	// Fetch defaults
	v.SetDefault("fetch.timeout_secs", 30)
	v.SetDefault("fetch.max_image_mb", 20)

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 3600)

	// Export defaults
	v.SetDefault("export.bucket", "")
	v.SetDefault("export.prefix", "exports")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	envBindings := map[string]string{
		"server.port":          "DOCASSIST_SERVER_PORT",
		"server.read_timeout":  "DOCASSIST_SERVER_READ_TIMEOUT",
		"server.write_timeout": "DOCASSIST_SERVER_WRITE_TIMEOUT",
		"server.environment":   "DOCASSIST_SERVER_ENVIRONMENT",
		"log.level":            "DOCASSIST_LOG_LEVEL",
		"log.format":           "DOCASSIST_LOG_FORMAT",
		"model.provider":       "DOCASSIST_MODEL_PROVIDER",
		"model.api_key":        "DOCASSIST_MODEL_API_KEY",
		"model.default_model":  "DOCASSIST_MODEL_DEFAULT_MODEL",
		"model.timeout_secs":   "DOCASSIST_MODEL_TIMEOUT_SECS",
		"model.endpoint":       "DOCASSIST_MODEL_ENDPOINT",
		"fetch.timeout_secs":   "DOCASSIST_FETCH_TIMEOUT_SECS",
		"fetch.max_image_mb":   "DOCASSIST_FETCH_MAX_IMAGE_MB",
		"s3.region":            "DOCASSIST_S3_REGION",
		"s3.endpoint":          "DOCASSIST_S3_ENDPOINT",
		"s3.access_key":        "DOCASSIST_S3_ACCESS_KEY",
		"s3.secret_key":        "DOCASSIST_S3_SECRET_KEY",
		"s3.presign_expiry":    "DOCASSIST_S3_PRESIGN_EXPIRY",
		"export.bucket":        "DOCASSIST_EXPORT_BUCKET",
		"export.prefix":        "DOCASSIST_EXPORT_PREFIX",
		"cors.allowed_origins": "DOCASSIST_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Cloud Run and friends set PORT. Use it if DOCASSIST_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("DOCASSIST_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// GEMINI_API_KEY is what the functions deployment already provisions.
	apiKey := v.GetString("model.api_key")
	if apiKey == "" && v.GetString("model.provider") == "gemini" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	cfg.Model = ModelConfig{
		Provider:     v.GetString("model.provider"),
		APIKey:       apiKey,
		DefaultModel: v.GetString("model.default_model"),
		TimeoutSecs:  v.GetInt("model.timeout_secs"),
		Endpoint:     v.GetString("model.endpoint"),
	}
	cfg.Fetch = FetchConfig{
		TimeoutSecs: v.GetInt("fetch.timeout_secs"),
		MaxImageMB:  v.GetInt64("fetch.max_image_mb"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Export = ExportConfig{
		Bucket: v.GetString("export.bucket"),
		Prefix: v.GetString("export.prefix"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
