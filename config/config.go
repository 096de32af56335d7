package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "config/config.yaml"
	DefaultEnvFile    = ".env"

	DefaultWeatherBaseURL = "https://api.openweathermap.org"
)

// Config is read once at startup. Precedence: environment, then .env, then YAML file, then defaults.
type Config struct {
	App     AppConfig     `yaml:"app"`
	Server  ServerConfig  `yaml:"server"`
	Weather WeatherConfig `yaml:"weather"`
	Assets  AssetsConfig  `yaml:"assets"`
	Log     LogConfig     `yaml:"log"`
	Sentry  SentryConfig  `yaml:"sentry"`
}

type AppConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Env     string `yaml:"env"`
}

type ServerConfig struct {
	Port         string        `yaml:"port" envconfig:"PORT"`
	ReadTimeout  time.Duration `yaml:"read_timeout" split_words:"true"`
	WriteTimeout time.Duration `yaml:"write_timeout" split_words:"true"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" split_words:"true"`
}

type WeatherConfig struct {
	BaseURL string `yaml:"base_url" split_words:"true"`
	// APIKey is read from WEATHER_API_KEY, then API_KEY, then OPENWEATHER_API_KEY.
	APIKey string `yaml:"api_key,omitempty" envconfig:"API_KEY"`
	// Timeout of zero leaves the transport default in place.
	Timeout        time.Duration `yaml:"timeout"`
	RateLimitRPS   float64       `yaml:"rate_limit_rps" split_words:"true"`
	RateLimitBurst int           `yaml:"rate_limit_burst" split_words:"true"`
}

type AssetsConfig struct {
	// Dir overrides the embedded icon set when set.
	Dir string `yaml:"dir"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn"`
	Debug bool   `yaml:"debug"`
}

type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

type FileConfigProvider struct {
	path     string
	envFiles []string
}

func NewFileConfigProvider(path string, envFiles ...string) *FileConfigProvider {
	return &FileConfigProvider{
		path:     path,
		envFiles: envFiles,
	}
}

func NewConfig() (*Config, error) {
	return NewConfigWithProvider(NewFileConfigProvider(DefaultConfigPath, DefaultEnvFile))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cnf, nil
}

func (p *FileConfigProvider) Load() (*Config, error) {
	var cnf Config

	if err := p.loadEnvFiles(); err != nil {
		return nil, err
	}

	// Read from YAML file first
	if err := p.loadFromFile(&cnf); err != nil {
		return nil, err
	}

	// Override with environment variables
	if err := envconfig.Process("", &cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	if cnf.Weather.APIKey == "" {
		cnf.Weather.APIKey = os.Getenv("OPENWEATHER_API_KEY")
	}

	applyDefaults(&cnf)

	return &cnf, nil
}

// loadEnvFiles never overrides variables already present in the process environment.
func (p *FileConfigProvider) loadEnvFiles() error {
	for _, file := range p.envFiles {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load env file %s: %w", file, err)
		}
	}
	return nil
}

func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}

	return nil
}

func applyDefaults(cnf *Config) {
	setDefault(&cnf.App.Name, "weather-forecast")
	setDefault(&cnf.App.Version, "1.0.0")
	setDefault(&cnf.App.Env, "development")
	setDefault(&cnf.Server.Port, "8080")
	setDefault(&cnf.Weather.BaseURL, DefaultWeatherBaseURL)
	setDefault(&cnf.Log.Level, "info")
	setDefault(&cnf.Log.Format, "json")

	if cnf.Server.ReadTimeout == 0 {
		cnf.Server.ReadTimeout = 10 * time.Second
	}
	if cnf.Server.WriteTimeout == 0 {
		cnf.Server.WriteTimeout = 10 * time.Second
	}
	if cnf.Server.IdleTimeout == 0 {
		cnf.Server.IdleTimeout = 120 * time.Second
	}
	if cnf.Weather.RateLimitRPS > 0 && cnf.Weather.RateLimitBurst == 0 {
		cnf.Weather.RateLimitBurst = 1
	}
}

func setDefault(field *string, value string) {
	if strings.TrimSpace(*field) == "" {
		*field = value
	}
}

func (p *FileConfigProvider) Validate(cnf *Config) error {
	var errs []error

	if cnf.App.Name == "" {
		errs = append(errs, errors.New("app.name is required"))
	}
	if cnf.Server.Port == "" {
		errs = append(errs, errors.New("server.port is required"))
	}
	if cnf.Server.ReadTimeout <= 0 || cnf.Server.WriteTimeout <= 0 || cnf.Server.IdleTimeout <= 0 {
		errs = append(errs, errors.New("server timeouts must be positive"))
	}
	if strings.TrimSpace(cnf.Weather.APIKey) == "" {
		errs = append(errs, errors.New("weather.api_key is required (set API_KEY)"))
	}
	if cnf.Weather.BaseURL == "" {
		errs = append(errs, errors.New("weather.base_url is required"))
	}
	if cnf.Weather.Timeout < 0 {
		errs = append(errs, errors.New("weather.timeout must not be negative"))
	}
	if cnf.Weather.RateLimitRPS < 0 || cnf.Weather.RateLimitBurst < 0 {
		errs = append(errs, errors.New("weather rate limit must not be negative"))
	}

	switch strings.ToLower(cnf.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", cnf.Log.Level))
	}
	switch strings.ToLower(cnf.Log.Format) {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("log.format %q is not one of json, console", cnf.Log.Format))
	}

	return errors.Join(errs...)
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
