package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces every environment variable read by Load,
// e.g. EVENTIFY_STORE_DRIVER for store.driver.
const EnvPrefix = "EVENTIFY"

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Store   StoreConfig   `mapstructure:"store"`
	Render  RenderConfig  `mapstructure:"render"`
	CSRF    CSRFConfig    `mapstructure:"csrf"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port" validate:"min=1,max=65535"`
}

type StoreConfig struct {
	Driver      string        `mapstructure:"driver" validate:"oneof=memory sqlite postgres"`
	Path        string        `mapstructure:"path" validate:"required_if=Driver sqlite"`
	DatabaseURL string        `mapstructure:"database_url" validate:"required_if=Driver postgres"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl" validate:"min=0"`
}

type RenderConfig struct {
	// EscapeHTML escapes user-supplied text in pages. Off by default: text is
	// inserted into markup as typed.
	EscapeHTML bool   `mapstructure:"escape_html"`
	Locale     string `mapstructure:"locale" validate:"oneof=en fr"`
	Timezone   string `mapstructure:"timezone"`
}

type CSRFConfig struct {
	Key    string `mapstructure:"key" validate:"omitempty,len=32"`
	Secure bool   `mapstructure:"secure"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.path", "data/eventify.db")
	v.SetDefault("store.database_url", "")
	v.SetDefault("store.cache_ttl", time.Duration(0))
	v.SetDefault("render.escape_html", false)
	v.SetDefault("render.locale", "en")
	v.SetDefault("render.timezone", "")
	v.SetDefault("csrf.key", "")
	v.SetDefault("csrf.secure", false)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// Load reads configuration from defaults, an optional config file at path
// and EVENTIFY_* environment variables (a .env file is loaded first when
// present), then validates it.
func Load(path string) (*Config, error) {
	// .env is optional when variables come from the environment.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate applies field rules and the checks tags cannot express.
func (c *Config) validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if c.Store.Driver == "postgres" {
		parsed, err := url.Parse(c.Store.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: store.database_url is invalid (%q): %w", c.Store.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: store.database_url (%q) is missing a scheme or host", c.Store.DatabaseURL)
		}
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
