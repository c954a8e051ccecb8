package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"github.com/ougggg/pai-picture/client"
)

// Mode selects how share links are built.
type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeProduction  Mode = "production"
)

// Prefix is the environment variable prefix, e.g. PICTURE_BASE_URL.
const Prefix = "PICTURE"

// Config holds the settings of picturectl and other SDK consumers.
// Environment variables are parsed from the PICTURE_ prefix.
type Config struct {
	Mode Mode `envconfig:"MODE" default:"development" validate:"oneof=development production"`

	// BaseURL is the backend origin API paths are resolved against.
	BaseURL         string        `envconfig:"BASE_URL" default:"" validate:"omitempty,url"`
	Timeout         time.Duration `envconfig:"TIMEOUT" default:"60s" validate:"gt=0"`
	SendCredentials bool          `envconfig:"SEND_CREDENTIALS" default:"true"`

	// Share-link origins. Not used for API calls.
	DevOrigin  string `envconfig:"DEV_ORIGIN" default:"http://localhost:5173" validate:"omitempty,url"`
	PageOrigin string `envconfig:"PAGE_ORIGIN" default:"" validate:"omitempty,url"`

	Debug    bool   `envconfig:"DEBUG" default:"false"`
	StateDir string `envconfig:"STATE_DIR" default:""`
}

// New parses the environment and validates the result.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		var msgs []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsProduction reports whether Mode is production.
func (c *Config) IsProduction() bool { return c.Mode == ModeProduction }

// ServerURL is the origin share links point at: the dev server in
// development and the page origin in production.
func (c *Config) ServerURL() string {
	if c.IsProduction() {
		return strings.TrimSuffix(c.PageOrigin, "/")
	}
	return strings.TrimSuffix(c.DevOrigin, "/")
}

// ShareLink returns the page URL of a picture.
func (c *Config) ShareLink(pictureID client.ID) string {
	return c.ServerURL() + "/picture/" + string(pictureID)
}

// ClientOptions maps the configuration onto client construction options.
func (c *Config) ClientOptions(log zerolog.Logger) []client.Option {
	return []client.Option{
		client.WithHTTPTimeout(c.Timeout),
		client.WithCredentials(c.SendCredentials),
		client.WithDebugLogging(c.Debug),
		client.WithLogger(log),
	}
}

// Log writes a one-line summary of the configuration at debug level.
func (c *Config) Log(log zerolog.Logger) {
	log.Debug().
		Str("mode", string(c.Mode)).
		Str("base_url", c.BaseURL).
		Dur("timeout", c.Timeout).
		Bool("send_credentials", c.SendCredentials).
		Str("server_url", c.ServerURL()).
		Bool("debug", c.Debug).
		Msg("Configuration loaded")
}
