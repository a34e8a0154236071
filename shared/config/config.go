package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	LogLevel     string        `yaml:"log_level" validate:"required,oneof=debug info warn warning error"`
	LogFormat    string        `yaml:"log_format" validate:"required,oneof=text json pretty"`
	QueryTimeout time.Duration `yaml:"query_timeout" validate:"required"` // deadline for a single store operation
	Api          Api           `yaml:"api"`
	Frontend     Frontend      `yaml:"frontend"`
	CacheTTL     time.Duration `yaml:"cache_ttl"` // zero disables the board cache even if redis is configured
}

type Api struct {
	Addr            string        `yaml:"addr" validate:"required"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"required"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"required"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"required"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	SecureHeaders   bool          `yaml:"secure_headers"`     // adds HSTS, enable behind https only
	WriteRateLimit  float64       `yaml:"write_rate_limit"`   // POST/DELETE per second per IP, 0 disables
	WriteRateBurst  int           `yaml:"write_rate_burst"`
}

type Frontend struct {
	Addr       string        `yaml:"addr" validate:"required"`
	ApiBaseURL string        `yaml:"api_base_url" validate:"required,url"`
	ApiTimeout time.Duration `yaml:"api_timeout" validate:"required"`
}

type Private struct {
	Pg    Pg    `yaml:"pg"`
	Redis Redis `yaml:"redis"`
}

type Pg struct {
	URL      string `yaml:"url"` // overrides the fields below, also read from DATABASE_URL
	Host     string `yaml:"host" validate:"required_without=URL"`
	Port     int    `yaml:"port" validate:"required_without=URL"`
	User     string `yaml:"user" validate:"required_without=URL"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname" validate:"required_without=URL"`
}

// ConnString returns a lib/pq connection string.
func (p Pg) ConnString() string {
	if p.URL != "" {
		return p.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.Dbname)
}

type Redis struct {
	Addr     string `yaml:"addr"` // empty disables the board cache
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic(fmt.Sprintf("can't unmarshal config file %s: %s", configPath, err))
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	if url := os.Getenv("DATABASE_URL"); url != "" {
		private.Pg.URL = url
	}

	cfg := &Config{Public: public, Private: private}
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		panic("config validation failed: " + err.Error())
	}
	return cfg
}
