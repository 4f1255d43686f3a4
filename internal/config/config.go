package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Addr is the address the HTTP server binds to.
	Addr string `env:"APP_ADDR" envDefault:":8080" validate:"required"`

	// AppBaseURL is used for absolute links (e.g. redirects after logout).
	AppBaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080" validate:"required,url"`

	// SessionSecret signs the cookie store used for flashes and the
	// per-browser roster snapshot id.
	SessionSecret string `env:"SESSION_SECRET" envDefault:"dev-session-secret-change-me-please" validate:"required,min=16"`

	// StaticDir is served under /static and must contain the default profile image.
	StaticDir string `env:"STATIC_DIR" envDefault:"web/static" validate:"required"`

	Backend BackendConfig `envPrefix:"BACKEND_"`
	Photos  PhotoConfig   `envPrefix:"PHOTO_"`
	Roster  RosterConfig  `envPrefix:"ROSTER_"`
	Log     LogConfig     `envPrefix:"LOG_"`
	Tracing TracingConfig `envPrefix:"PUBSUB_TRACING_"`
}

// BackendConfig points at the clinic API that owns profiles and photos.
type BackendConfig struct {
	URL     string        `env:"URL" envDefault:"http://localhost:8000/api" validate:"required,url"`
	Token   string        `env:"TOKEN"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s" validate:"gte=0"`
}

// PhotoConfig holds the two fallback targets of photo resolution.
type PhotoConfig struct {
	// BucketBase is prefixed to profile_photo_path to build a direct, unsigned URL.
	BucketBase string `env:"BUCKET_BASE" envDefault:"https://storage.googleapis.com/psyclinic-profile-photos/" validate:"required,url"`
	// DefaultPath is the local asset used when no photo can be resolved.
	DefaultPath string `env:"DEFAULT_PATH" envDefault:"/static/img/default-profile.svg" validate:"required,startswith=/"`
}

// RosterConfig tunes the per-session roster snapshot store.
type RosterConfig struct {
	SnapshotTTL time.Duration `env:"SNAPSHOT_TTL" envDefault:"30m" validate:"gt=0"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Format string `env:"FORMAT" envDefault:"text" validate:"oneof=text json"`
	Level  string `env:"LEVEL" envDefault:"debug" validate:"oneof=debug info warn error"`
}

// TracingConfig controls the optional Zipkin exporter for the diagnostics bus.
type TracingConfig struct {
	Enabled     bool   `env:"ENABLED" envDefault:"false"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"psyclinic"`
	ZipkinURL   string `env:"ZIPKIN_URL" envDefault:"http://localhost:9411/api/v2/spans" validate:"omitempty,url"`
}

// Load reads the optional .env file, parses the environment and validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("load .env file: %w", err)
		}
		log.Println("No .env file found, relying on environment variables")
	}
	return Parse(env.Options{})
}

// Parse builds a Config from the process environment, or from opts.Environment
// when it is set. It does not touch .env files, which keeps it usable from tests.
func Parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.sanitize()

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// New loads configuration and exits the process when it is unusable.
func New() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

func (c *Config) sanitize() {
	c.Backend.URL = strings.TrimSuffix(strings.TrimSpace(c.Backend.URL), "/")
	if c.Photos.BucketBase != "" && !strings.HasSuffix(c.Photos.BucketBase, "/") {
		c.Photos.BucketBase += "/"
	}
	c.Log.Format = strings.ToLower(c.Log.Format)
	c.Log.Level = strings.ToLower(c.Log.Level)
}
