package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Storage    Storage    `yaml:"storage"`
	HTTPServer HttpServer `yaml:"http_server" env-required:"true"`
	Auth       Auth       `yaml:"auth"`
	Security   Security   `yaml:"security"`
}

type Storage struct {
	DSN string `yaml:"dsn" env:"DATABASE_URL" env-required:"true"`
}

type HttpServer struct {
	Address      string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env-default:"10s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Auth struct {
	AdminSecret string `yaml:"admin_secret" env:"ADMIN_JWT_SECRET" env-required:"true"`
	UserSecret  string `yaml:"user_secret" env:"USER_JWT_SECRET" env-required:"true"`
}

type Security struct {
	BcryptCost int `yaml:"bcrypt_cost" env:"BCRYPT_COST" env-default:"10"`
}

// MustLoad panics if config can not be found.
func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is required")
	}

	cfg, err := Load(configPath)
	if err != nil {
		panic(err.Error())
	}

	return cfg
}

// Load reads the yaml file at configPath, environment variables take precedence over it.
func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return &cfg, nil
}

// fetchConfigPath fetches config path from cmd flag or environment variable.
// flag > env > default.
// default = "".
func fetchConfigPath() string {
	var path string

	flag.StringVar(&path, "config", "", "Path to the configuration file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	return path
}
