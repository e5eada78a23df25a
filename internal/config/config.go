package config

import (
	"time"
)

// Config is the server configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Auth    AuthConfig    `yaml:"auth"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	CORS    CORSConfig    `yaml:"cors"`
}

// ClientConfig is the CLI configuration: sync and AI settings only, no
// server secrets.
type ClientConfig struct {
	Sync SyncConfig `yaml:"sync"`
	AI   AIConfig   `yaml:"ai"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"PORT"                    env-default:"3000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"2097152"`
}

// AuthConfig holds session and credential settings. FallbackUsername and
// FallbackPasswordHash configure the env-sourced credential used when no
// credential file exists yet; the file always takes precedence.
type AuthConfig struct {
	JWTSecret            string        `yaml:"jwt_secret"             env:"JWT_SECRET"             env-required:"true"`
	JWTIssuer            string        `yaml:"jwt_issuer"             env:"JWT_ISSUER"             env-default:"ignis"`
	SessionTTL           time.Duration `yaml:"session_ttl"            env:"AUTH_SESSION_TTL"       env-default:"720h"`
	CookieSecure         bool          `yaml:"cookie_secure"          env:"COOKIE_SECURE"          env-default:"false"`
	PasswordHashCost     int           `yaml:"password_hash_cost"     env:"AUTH_PASSWORD_HASH_COST" env-default:"10"`
	FallbackUsername     string        `yaml:"fallback_username"      env:"AUTH_USERNAME"          env-default:"admin"`
	FallbackPasswordHash string        `yaml:"fallback_password_hash" env:"AUTH_PASSWORD_HASH"`
}

// StorageConfig holds the server-side persistence settings. Both the data
// document and the credential file live in DataDir and are written via
// temp-file plus atomic rename.
type StorageConfig struct {
	DataDir string `yaml:"data_dir" env:"DATA_DIR" env-default:"./data"`
}

// SyncConfig holds client-side sync settings.
type SyncConfig struct {
	ServerURL      string        `yaml:"server_url"      env:"SYNC_SERVER_URL"      env-default:"http://localhost:3000"`
	Debounce       time.Duration `yaml:"debounce"        env:"SYNC_DEBOUNCE"        env-default:"2s"`
	LocalStore     string        `yaml:"local_store"     env:"SYNC_LOCAL_STORE"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"SYNC_REQUEST_TIMEOUT" env-default:"15s"`
}

// AIConfig holds keys for the external generative and transcription services.
// Empty keys disable the corresponding helper; callers get fallback results.
type AIConfig struct {
	APIKey           string `yaml:"api_key"           env:"AI_API_KEY"`
	Model            string `yaml:"model"             env:"AI_MODEL"             env-default:"claude-sonnet-4-20250514"`
	TranscriptionKey string `yaml:"transcription_key" env:"TRANSCRIPTION_API_KEY"`
	TranscriptionURL string `yaml:"transcription_url" env:"TRANSCRIPTION_API_URL" env-default:"https://api.openai.com"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
