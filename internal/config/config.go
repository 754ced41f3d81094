package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Log        LogConfig
	CORS       CORSConfig
	Auth       AuthConfig
	LLM        LLMConfig
	DataJud    DataJudConfig
	Extraction ExtractionConfig
	Analysis   AnalysisConfig
	Cache      CacheConfig
	DB         DBConfig
	Storage    StorageConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Environment     string        `mapstructure:"environment"`
	LegacyRoutes    bool          `mapstructure:"legacy_routes"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuthConfig holds bearer token settings. An empty secret disables auth.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	Issuer    string `mapstructure:"issuer"`
	Audience  string `mapstructure:"audience"`
}

// Enabled reports whether requests must carry a valid bearer token.
func (a *AuthConfig) Enabled() bool {
	return a.JWTSecret != ""
}

// LLMConfig holds settings for the text-generation provider.
type LLMConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	Endpoint     string `mapstructure:"endpoint"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
	ProjectID    string `mapstructure:"project_id"`
	Location     string `mapstructure:"location"`
}

// Timeout returns the per-call timeout, defaulting to 60s.
func (l *LLMConfig) Timeout() time.Duration {
	if l.TimeoutSecs <= 0 {
		return 60 * time.Second
	}
	return time.Duration(l.TimeoutSecs) * time.Second
}

// HasCredentials reports whether the configured provider can authenticate.
// Vertex AI uses application default credentials keyed by project.
func (l *LLMConfig) HasCredentials() bool {
	if l.Provider == "vertex" {
		return l.ProjectID != ""
	}
	return l.APIKey != ""
}

// DataJudConfig holds settings for the public precedent search API.
type DataJudConfig struct {
	BaseURL      string `mapstructure:"base_url"`
	APIKey       string `mapstructure:"api_key"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	DefaultCourt string `mapstructure:"default_court"`
	DefaultSize  int    `mapstructure:"default_size"`
	MaxSize      int    `mapstructure:"max_size"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// HasCredentials reports whether search credentials are present.
func (d *DataJudConfig) HasCredentials() bool {
	return d.APIKey != "" || d.Username != ""
}

// Timeout returns the per-call timeout, defaulting to 30s.
func (d *DataJudConfig) Timeout() time.Duration {
	if d.TimeoutSecs <= 0 {
		return 30 * time.Second
	}
	return time.Duration(d.TimeoutSecs) * time.Second
}

// ExtractionConfig holds document extraction limits.
type ExtractionConfig struct {
	MaxDocumentMB int64 `mapstructure:"max_document_mb"`
}

// MaxBytes returns the document size limit in bytes.
func (e *ExtractionConfig) MaxBytes() int64 {
	return e.MaxDocumentMB * 1024 * 1024
}

// AnalysisConfig holds analysis prompt settings.
type AnalysisConfig struct {
	MaxChars int `mapstructure:"max_chars"`
}

// CacheConfig selects the extraction cache backend: none, memory, redis, or postgres.
type CacheConfig struct {
	Provider string        `mapstructure:"provider"`
	TTL      time.Duration `mapstructure:"ttl"`
	RedisURL string        `mapstructure:"redis_url"`
}

// DBConfig holds PostgreSQL connection settings for the postgres cache backend.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// StorageConfig selects the document store read by extraction: none, s3, or gcs.
type StorageConfig struct {
	Provider    string `mapstructure:"provider"`
	Bucket      string `mapstructure:"bucket"`
	Region      string `mapstructure:"region"`
	Endpoint    string `mapstructure:"endpoint"`
	AccessKey   string `mapstructure:"access_key"`
	SecretKey   string `mapstructure:"secret_key"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// Configured reports whether a document store backend is selected.
func (s *StorageConfig) Configured() bool {
	return s.Provider != "" && s.Provider != "none"
}

// Timeout returns the per-call timeout, defaulting to 30s.
func (s *StorageConfig) Timeout() time.Duration {
	if s.TimeoutSecs <= 0 {
		return 30 * time.Second
	}
	return time.Duration(s.TimeoutSecs) * time.Second
}

// Load reads configuration from environment variables with the JURIS_ prefix.
// A .env file in the working directory is applied first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("JURIS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":5000")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "15s")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.legacy_routes", true)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("cors.allowed_origins", "http://localhost:5678,http://localhost:3000")

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "")
	v.SetDefault("auth.audience", "")

	// LLM defaults
	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.default_model", "")
	v.SetDefault("llm.endpoint", "")
	v.SetDefault("llm.timeout_secs", 60)
	v.SetDefault("llm.project_id", "")
	v.SetDefault("llm.location", "us-central1")

	// DataJud defaults
	v.SetDefault("datajud.base_url", "https://api-publica.datajud.cnj.jus.br")
	v.SetDefault("datajud.api_key", "")
	v.SetDefault("datajud.username", "")
	v.SetDefault("datajud.password", "")
	v.SetDefault("datajud.default_court", "tjsp")
	v.SetDefault("datajud.default_size", 50)
	v.SetDefault("datajud.max_size", 100)
	v.SetDefault("datajud.timeout_secs", 30)

	v.SetDefault("extraction.max_document_mb", 25)
	v.SetDefault("analysis.max_chars", 3000)

	// Cache defaults
	v.SetDefault("cache.provider", "memory")
	v.SetDefault("cache.ttl", "1h")
	v.SetDefault("cache.redis_url", "redis://localhost:6379/0")

	// DB defaults (postgres cache backend only)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "jurisflow")
	v.SetDefault("db.password", "jurisflow_secret")
	v.SetDefault("db.name", "jurisflow")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 10)
	v.SetDefault("db.max_idle", 5)

	// Storage defaults
	v.SetDefault("storage.provider", "none")
	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.timeout_secs", 30)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                "JURIS_SERVER_PORT",
		"server.read_timeout":        "JURIS_SERVER_READ_TIMEOUT",
		"server.write_timeout":       "JURIS_SERVER_WRITE_TIMEOUT",
		"server.shutdown_timeout":    "JURIS_SERVER_SHUTDOWN_TIMEOUT",
		"server.environment":         "JURIS_SERVER_ENVIRONMENT",
		"server.legacy_routes":       "JURIS_SERVER_LEGACY_ROUTES",
		"log.level":                  "JURIS_LOG_LEVEL",
		"log.format":                 "JURIS_LOG_FORMAT",
		"cors.allowed_origins":       "JURIS_CORS_ALLOWED_ORIGINS",
		"auth.jwt_secret":            "JURIS_AUTH_JWT_SECRET",
		"auth.issuer":                "JURIS_AUTH_ISSUER",
		"auth.audience":              "JURIS_AUTH_AUDIENCE",
		"llm.provider":               "JURIS_LLM_PROVIDER",
		"llm.api_key":                "JURIS_LLM_API_KEY",
		"llm.default_model":          "JURIS_LLM_DEFAULT_MODEL",
		"llm.endpoint":               "JURIS_LLM_ENDPOINT",
		"llm.timeout_secs":           "JURIS_LLM_TIMEOUT_SECS",
		"llm.project_id":             "JURIS_LLM_PROJECT_ID",
		"llm.location":               "JURIS_LLM_LOCATION",
		"datajud.base_url":           "JURIS_DATAJUD_BASE_URL",
		"datajud.api_key":            "JURIS_DATAJUD_API_KEY",
		"datajud.username":           "JURIS_DATAJUD_USERNAME",
		"datajud.password":           "JURIS_DATAJUD_PASSWORD",
		"datajud.default_court":      "JURIS_DATAJUD_DEFAULT_COURT",
		"datajud.default_size":       "JURIS_DATAJUD_DEFAULT_SIZE",
		"datajud.max_size":           "JURIS_DATAJUD_MAX_SIZE",
		"datajud.timeout_secs":       "JURIS_DATAJUD_TIMEOUT_SECS",
		"extraction.max_document_mb": "JURIS_EXTRACTION_MAX_DOCUMENT_MB",
		"analysis.max_chars":         "JURIS_ANALYSIS_MAX_CHARS",
		"cache.provider":             "JURIS_CACHE_PROVIDER",
		"cache.ttl":                  "JURIS_CACHE_TTL",
		"cache.redis_url":            "JURIS_CACHE_REDIS_URL",
		"db.host":                    "JURIS_DB_HOST",
		"db.port":                    "JURIS_DB_PORT",
		"db.user":                    "JURIS_DB_USER",
		"db.password":                "JURIS_DB_PASSWORD",
		"db.name":                    "JURIS_DB_NAME",
		"db.sslmode":                 "JURIS_DB_SSLMODE",
		"db.max_open":                "JURIS_DB_MAX_OPEN",
		"db.max_idle":                "JURIS_DB_MAX_IDLE",
		"storage.provider":           "JURIS_STORAGE_PROVIDER",
		"storage.bucket":             "JURIS_STORAGE_BUCKET",
		"storage.region":             "JURIS_STORAGE_REGION",
		"storage.endpoint":           "JURIS_STORAGE_ENDPOINT",
		"storage.access_key":         "JURIS_STORAGE_ACCESS_KEY",
		"storage.secret_key":         "JURIS_STORAGE_SECRET_KEY",
		"storage.timeout_secs":       "JURIS_STORAGE_TIMEOUT_SECS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Container platforms set PORT. Use it if JURIS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("JURIS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:            serverPort,
		ReadTimeout:     v.GetDuration("server.read_timeout"),
		WriteTimeout:    v.GetDuration("server.write_timeout"),
		ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		Environment:     v.GetString("server.environment"),
		LegacyRoutes:    v.GetBool("server.legacy_routes"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}
	cfg.Auth = AuthConfig{
		JWTSecret: v.GetString("auth.jwt_secret"),
		Issuer:    v.GetString("auth.issuer"),
		Audience:  v.GetString("auth.audience"),
	}
	cfg.LLM = LLMConfig{
		Provider:     v.GetString("llm.provider"),
		APIKey:       v.GetString("llm.api_key"),
		DefaultModel: v.GetString("llm.default_model"),
		Endpoint:     v.GetString("llm.endpoint"),
		TimeoutSecs:  v.GetInt("llm.timeout_secs"),
		ProjectID:    v.GetString("llm.project_id"),
		Location:     v.GetString("llm.location"),
	}
	cfg.DataJud = DataJudConfig{
		BaseURL:      strings.TrimRight(v.GetString("datajud.base_url"), "/"),
		APIKey:       v.GetString("datajud.api_key"),
		Username:     v.GetString("datajud.username"),
		Password:     v.GetString("datajud.password"),
		DefaultCourt: v.GetString("datajud.default_court"),
		DefaultSize:  v.GetInt("datajud.default_size"),
		MaxSize:      v.GetInt("datajud.max_size"),
		TimeoutSecs:  v.GetInt("datajud.timeout_secs"),
	}
	cfg.Extraction = ExtractionConfig{
		MaxDocumentMB: v.GetInt64("extraction.max_document_mb"),
	}
	cfg.Analysis = AnalysisConfig{
		MaxChars: v.GetInt("analysis.max_chars"),
	}
	cfg.Cache = CacheConfig{
		Provider: v.GetString("cache.provider"),
		TTL:      v.GetDuration("cache.ttl"),
		RedisURL: v.GetString("cache.redis_url"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Storage = StorageConfig{
		Provider:    v.GetString("storage.provider"),
		Bucket:      v.GetString("storage.bucket"),
		Region:      v.GetString("storage.region"),
		Endpoint:    v.GetString("storage.endpoint"),
		AccessKey:   v.GetString("storage.access_key"),
		SecretKey:   v.GetString("storage.secret_key"),
		TimeoutSecs: v.GetInt("storage.timeout_secs"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints that defaults cannot express.
func (c *Config) Validate() error {
	switch c.Cache.Provider {
	case "none", "memory", "redis", "postgres":
	default:
		return fmt.Errorf("unknown cache provider: %s", c.Cache.Provider)
	}
	if c.Cache.Provider != "none" && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive when cache.provider is %s", c.Cache.Provider)
	}
	switch c.Storage.Provider {
	case "", "none", "s3", "gcs":
	default:
		return fmt.Errorf("unknown storage provider: %s", c.Storage.Provider)
	}
	if c.Storage.Configured() && c.Storage.Bucket == "" {
		return fmt.Errorf("storage.bucket is required when storage.provider is %s", c.Storage.Provider)
	}
	if c.DataJud.DefaultSize <= 0 || c.DataJud.MaxSize < c.DataJud.DefaultSize {
		return fmt.Errorf("datajud sizes invalid: default %d, max %d", c.DataJud.DefaultSize, c.DataJud.MaxSize)
	}
	if c.Analysis.MaxChars <= 0 {
		return fmt.Errorf("analysis.max_chars must be positive")
	}
	if c.Extraction.MaxDocumentMB <= 0 {
		return fmt.Errorf("extraction.max_document_mb must be positive")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
