package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App        AppConfig        `yaml:"app"`
	Server     ServerConfig     `yaml:"server"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type MonitoringConfig struct {
	PrometheusEnabled bool   `yaml:"prometheus_enabled"`
	MetricsPath       string `yaml:"metrics_path"`
}

type LoggingConfig struct {
	// Output is "stderr", "stdout" or "file".
	Output   string `yaml:"output"`
	FilePath string `yaml:"file_path"`
	Access   bool   `yaml:"access"`
}

func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:        "calorie-calculator",
			Environment: "development",
			Version:     "0.1.0",
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			RequestTimeout:  5 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Monitoring: MonitoringConfig{
			PrometheusEnabled: true,
			MetricsPath:       "/metrics",
		},
		Logging: LoggingConfig{
			Output: "stderr",
			Access: true,
		},
	}
}

// Load reads a YAML config on top of the defaults. Environment variables in
// the file are expanded after an optional .env file is loaded. An empty
// path returns the defaults.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if configPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := []byte(os.ExpandEnv(string(data)))
	if err := yaml.Unmarshal(expanded, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("config: server.addr is required")
	}
	switch c.Logging.Output {
	case "", "stderr", "stdout":
	case "file":
		if c.Logging.FilePath == "" {
			return errors.New("config: logging.file_path is required for file output")
		}
	default:
		return fmt.Errorf("config: unknown logging.output %q", c.Logging.Output)
	}
	if c.Monitoring.PrometheusEnabled && c.Monitoring.MetricsPath == "" {
		c.Monitoring.MetricsPath = "/metrics"
	}
	return nil
}
