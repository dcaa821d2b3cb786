// Package config loads service settings from defaults overlaid with
// STOREAPI_* environment variables.
package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const EnvPrefix = "STOREAPI_"

type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Timeout   TimeoutConfig   `koanf:"timeout"`
	Log       LogConfig       `koanf:"log"`
	App       AppConfig       `koanf:"app"`
	Metrics   MetricsConfig   `koanf:"metrics"`
	RateLimit RateLimitConfig `koanf:"ratelimit"`
	CORS      CORSConfig      `koanf:"cors"`
}

type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port" validate:"min=1,max=65535"`
}

type TimeoutConfig struct {
	ReadHeader time.Duration `koanf:"readheader" validate:"gt=0"`
	Read       time.Duration `koanf:"read" validate:"gte=0"`
	Write      time.Duration `koanf:"write" validate:"gte=0"`
	Idle       time.Duration `koanf:"idle" validate:"gte=0"`
	Shutdown   time.Duration `koanf:"shutdown" validate:"gt=0"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
}

// AppConfig is what /info reports.
type AppConfig struct {
	Name    string `koanf:"name" validate:"required"`
	Version string `koanf:"version" validate:"required"`
}

type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Token   string `koanf:"token" validate:"required_if=Enabled true"`
}

// RateLimitConfig: Limit 0 turns limiting off.
type RateLimitConfig struct {
	Limit  int           `koanf:"limit" validate:"gte=0"`
	Window time.Duration `koanf:"window" validate:"required_unless=Limit 0"`
}

type CORSConfig struct {
	Origins []string `koanf:"origins" validate:"dive,required"`
}

func Defaults() map[string]any {
	return map[string]any{
		"server.host":        "",
		"server.port":        8080,
		"timeout.readheader": "5s",
		"timeout.read":       "15s",
		"timeout.write":      "15s",
		"timeout.idle":       "60s",
		"timeout.shutdown":   "10s",
		"log.level":          "info",
		"app.name":           "TestDotnetApi",
		"app.version":        "1.0.0",
		"metrics.enabled":    false,
		"metrics.token":      "",
		"ratelimit.limit":    0,
		"ratelimit.window":   "1m",
		"cors.origins":       []string{"*"},
	}
}

// Load reads defaults and the process environment.
func Load() (*Config, error) {
	return LoadFrom(env.Provider(EnvPrefix, ".", envKey))
}

// LoadFrom overlays p on the defaults; tests pass a confmap provider.
func LoadFrom(p koanf.Provider) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if err := k.Load(p, nil); err != nil {
		return nil, fmt.Errorf("load overrides: %w", err)
	}

	var cfg Config
	err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			WeaklyTypedInput: true,
			Result:           &cfg,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// envKey maps STOREAPI_TIMEOUT_READHEADER to timeout.readheader.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}

func (c *Config) Validate() error {
	return validator.New(validator.WithRequiredStructEnabled()).Struct(c)
}

func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

func (c *Config) String() string {
	var b strings.Builder

	b.WriteString("\n--- Server ---\n")
	fmt.Fprintf(&b, "  server.addr: %s\n", c.Addr())
	fmt.Fprintf(&b, "  timeout.readheader: %v\n", c.Timeout.ReadHeader)
	fmt.Fprintf(&b, "  timeout.read: %v\n", c.Timeout.Read)
	fmt.Fprintf(&b, "  timeout.write: %v\n", c.Timeout.Write)
	fmt.Fprintf(&b, "  timeout.idle: %v\n", c.Timeout.Idle)
	fmt.Fprintf(&b, "  timeout.shutdown: %v\n", c.Timeout.Shutdown)

	b.WriteString("\n--- Application ---\n")
	fmt.Fprintf(&b, "  app.name: %s\n", c.App.Name)
	fmt.Fprintf(&b, "  app.version: %s\n", c.App.Version)
	fmt.Fprintf(&b, "  cors.origins: %s\n", strings.Join(c.CORS.Origins, ","))
	fmt.Fprintf(&b, "  ratelimit.limit: %d\n", c.RateLimit.Limit)
	fmt.Fprintf(&b, "  ratelimit.window: %v\n", c.RateLimit.Window)

	b.WriteString("\n--- Observability ---\n")
	fmt.Fprintf(&b, "  log.level: %s\n", c.Log.Level)
	fmt.Fprintf(&b, "  metrics.enabled: %t\n", c.Metrics.Enabled)
	fmt.Fprintf(&b, "  metrics.token: %s\n", maskSecret(c.Metrics.Token))

	return b.String()
}

func maskSecret(s string) string {
	if s == "" {
		return "<not configured>"
	}
	return "****"
}
