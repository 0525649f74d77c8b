package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	Log    LogConfig
	CORS   CORSConfig
	AI     AIConfig
	Drafts DraftsConfig
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AIProviderConfig holds settings for a single chat-completion provider.
type AIProviderConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Endpoint    string  `mapstructure:"endpoint"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	TopP        float64 `mapstructure:"top_p"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// AIConfig holds the AI form-fill settings.
type AIConfig struct {
	// Provider is the process-wide default provider identifier. It is read
	// once at startup and handed to the resolver.
	Provider           string           `mapstructure:"provider"`
	TimeoutSecs        int              `mapstructure:"timeout_secs"`
	ValidateVocabulary bool             `mapstructure:"validate_vocabulary"`
	Timezone           string           `mapstructure:"timezone"`
	Zhipu              AIProviderConfig `mapstructure:"zhipu"`
	Bailian            AIProviderConfig `mapstructure:"bailian"`
}

// Timeout returns the HTTP ceiling for a single extraction call.
func (a *AIConfig) Timeout() time.Duration {
	if a.TimeoutSecs <= 0 {
		return 30 * time.Second
	}
	return time.Duration(a.TimeoutSecs) * time.Second
}

// Location returns the time zone used to compute "today" for relative birthdays.
// Unknown zone names fall back to UTC.
func (a *AIConfig) Location() *time.Location {
	if a.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DraftsConfig holds settings for open cat form sessions.
type DraftsConfig struct {
	MaxOpen int `mapstructure:"max_open"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
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

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds object storage settings for cat images.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PublicBaseURL string `mapstructure:"public_base_url"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the CATTERY_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CATTERY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "cattery")
	v.SetDefault("db.password", "cattery_secret")
	v.SetDefault("db.name", "cattery_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "cattery")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "cattery-images")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.public_base_url", "")
	v.SetDefault("s3.max_file_size_mb", 10)
	v.SetDefault("s3.presign_expiry", 604800)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	v.SetDefault("cors.allowed_origins", "http://localhost:5173,http://127.0.0.1:5173,http://localhost:3000,http://127.0.0.1:3000")

	// AI defaults
	v.SetDefault("ai.provider", "zhipu")
	v.SetDefault("ai.timeout_secs", 30)
	v.SetDefault("ai.validate_vocabulary", true)
	v.SetDefault("ai.timezone", "Asia/Shanghai")
	v.SetDefault("ai.zhipu.api_key", "")
	v.SetDefault("ai.zhipu.endpoint", "https://open.bigmodel.cn/api/paas/v4/chat/completions")
	v.SetDefault("ai.zhipu.model", "glm-4.7-flash")
	v.SetDefault("ai.zhipu.temperature", 0.3)
	v.SetDefault("ai.zhipu.top_p", 0.7)
	v.SetDefault("ai.zhipu.max_tokens", 1024)
	v.SetDefault("ai.bailian.api_key", "")
	v.SetDefault("ai.bailian.endpoint", "https://dashscope.aliyuncs.com/compatible-mode/v1/chat/completions")
	v.SetDefault("ai.bailian.model", "qwen-turbo-latest")
	v.SetDefault("ai.bailian.temperature", 0.3)
	v.SetDefault("ai.bailian.top_p", 0.7)
	v.SetDefault("ai.bailian.max_tokens", 1024)

	v.SetDefault("drafts.max_open", 256)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":            "CATTERY_SERVER_PORT",
		"server.read_timeout":    "CATTERY_SERVER_READ_TIMEOUT",
		"server.write_timeout":   "CATTERY_SERVER_WRITE_TIMEOUT",
		"server.environment":     "CATTERY_SERVER_ENVIRONMENT",
		"db.host":                "CATTERY_DB_HOST",
		"db.port":                "CATTERY_DB_PORT",
		"db.user":                "CATTERY_DB_USER",
		"db.password":            "CATTERY_DB_PASSWORD",
		"db.name":                "CATTERY_DB_NAME",
		"db.sslmode":             "CATTERY_DB_SSLMODE",
		"db.max_open":            "CATTERY_DB_MAX_OPEN",
		"db.max_idle":            "CATTERY_DB_MAX_IDLE",
		"jwt.secret":             "CATTERY_JWT_SECRET",
		"jwt.access_expiry":      "CATTERY_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":     "CATTERY_JWT_REFRESH_EXPIRY",
		"jwt.issuer":             "CATTERY_JWT_ISSUER",
		"s3.region":              "CATTERY_S3_REGION",
		"s3.bucket":              "CATTERY_S3_BUCKET",
		"s3.endpoint":            "CATTERY_S3_ENDPOINT",
		"s3.access_key":          "CATTERY_S3_ACCESS_KEY",
		"s3.secret_key":          "CATTERY_S3_SECRET_KEY",
		"s3.public_base_url":     "CATTERY_S3_PUBLIC_BASE_URL",
		"s3.max_file_size_mb":    "CATTERY_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":      "CATTERY_S3_PRESIGN_EXPIRY",
		"log.level":              "CATTERY_LOG_LEVEL",
		"log.format":             "CATTERY_LOG_FORMAT",
		"cors.allowed_origins":   "CATTERY_CORS_ALLOWED_ORIGINS",
		"ai.provider":            "CATTERY_AI_PROVIDER",
		"ai.timeout_secs":        "CATTERY_AI_TIMEOUT_SECS",
		"ai.validate_vocabulary": "CATTERY_AI_VALIDATE_VOCABULARY",
		"ai.timezone":            "CATTERY_AI_TIMEZONE",
		"ai.zhipu.api_key":       "CATTERY_AI_ZHIPU_API_KEY",
		"ai.zhipu.endpoint":      "CATTERY_AI_ZHIPU_ENDPOINT",
		"ai.zhipu.model":         "CATTERY_AI_ZHIPU_MODEL",
		"ai.zhipu.temperature":   "CATTERY_AI_ZHIPU_TEMPERATURE",
		"ai.zhipu.top_p":         "CATTERY_AI_ZHIPU_TOP_P",
		"ai.zhipu.max_tokens":    "CATTERY_AI_ZHIPU_MAX_TOKENS",
		"ai.bailian.api_key":     "CATTERY_AI_BAILIAN_API_KEY",
		"ai.bailian.endpoint":    "CATTERY_AI_BAILIAN_ENDPOINT",
		"ai.bailian.model":       "CATTERY_AI_BAILIAN_MODEL",
		"ai.bailian.temperature": "CATTERY_AI_BAILIAN_TEMPERATURE",
		"ai.bailian.top_p":       "CATTERY_AI_BAILIAN_TOP_P",
		"ai.bailian.max_tokens":  "CATTERY_AI_BAILIAN_MAX_TOKENS",
		"drafts.max_open":        "CATTERY_DRAFTS_MAX_OPEN",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if CATTERY_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("CATTERY_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
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
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PublicBaseURL: v.GetString("s3.public_base_url"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}
	cfg.AI = AIConfig{
		Provider:           v.GetString("ai.provider"),
		TimeoutSecs:        v.GetInt("ai.timeout_secs"),
		ValidateVocabulary: v.GetBool("ai.validate_vocabulary"),
		Timezone:           v.GetString("ai.timezone"),
		Zhipu:              providerConfig(v, "ai.zhipu"),
		Bailian:            providerConfig(v, "ai.bailian"),
	}
	cfg.Drafts = DraftsConfig{
		MaxOpen: v.GetInt("drafts.max_open"),
	}

	return cfg, nil
}

func providerConfig(v *viper.Viper, prefix string) AIProviderConfig {
	return AIProviderConfig{
		APIKey:      v.GetString(prefix + ".api_key"),
		Endpoint:    v.GetString(prefix + ".endpoint"),
		Model:       v.GetString(prefix + ".model"),
		Temperature: v.GetFloat64(prefix + ".temperature"),
		TopP:        v.GetFloat64(prefix + ".top_p"),
		MaxTokens:   v.GetInt(prefix + ".max_tokens"),
	}
}

// splitList parses a comma-separated string, dropping blanks.
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
