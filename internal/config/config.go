package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type Config struct {
	Endpoint      string
	ProjectID     string
	Timeout       time.Duration
	WritePolicy   string
	DefaultLocale string
	LogLevel      string

	// Discord host; Token is optional.
	Token   string
	GuildID string
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when the variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{
		Endpoint:      os.Getenv("CMS_ENDPOINT"),
		ProjectID:     os.Getenv("CMS_PROJECT_ID"),
		WritePolicy:   os.Getenv("CMS_WRITE_POLICY"),
		DefaultLocale: os.Getenv("DEFAULT_LOCALE"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		Token:         os.Getenv("TOKEN"),
		GuildID:       os.Getenv("GUILD_ID"),
	}

	if raw := strings.TrimSpace(os.Getenv("CMS_TIMEOUT")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("config: CMS_TIMEOUT invalid (%q): %w", raw, err)
		}
		cfg.Timeout = d
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies the rules on the loaded configuration and fills defaults.
func (c *Config) validate() error {
	c.Endpoint = strings.TrimSpace(c.Endpoint)
	if c.Endpoint == "" {
		return fmt.Errorf("config: CMS_ENDPOINT is required")
	}
	parsed, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("config: CMS_ENDPOINT invalid (%q): %w", c.Endpoint, err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("config: CMS_ENDPOINT invalid (%q): http(s) scheme and host required", c.Endpoint)
	}

	if strings.TrimSpace(c.ProjectID) == "" {
		return fmt.Errorf("config: CMS_PROJECT_ID is required")
	}

	if c.Timeout < 0 {
		return fmt.Errorf("config: CMS_TIMEOUT must not be negative")
	}
	if c.Timeout == 0 {
		c.Timeout = 10 * time.Second
	}

	switch c.WritePolicy {
	case "":
		c.WritePolicy = "best-effort"
	case "best-effort", "all-or-nothing":
	default:
		return fmt.Errorf("config: CMS_WRITE_POLICY must be best-effort or all-or-nothing, got %q", c.WritePolicy)
	}

	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = "en"
	}
	if _, err := language.Parse(c.DefaultLocale); err != nil {
		return fmt.Errorf("config: DEFAULT_LOCALE invalid (%q): %w", c.DefaultLocale, err)
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	return nil
}
