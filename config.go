package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Worfje/home-assistant-ultimaker/sensor"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Printer PrinterConfig `yaml:"printer"`
	Sensors SensorsConfig `yaml:"sensors"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type PrinterConfig struct {
	// Host is the printer's IP or hostname.
	Host string `yaml:"host"`
	// Name prefixes every sensor's display name.
	Name string `yaml:"name"`
	// PollInterval is the minimum number of seconds between status polls.
	PollInterval int `yaml:"poll_interval"`
}

type SensorsConfig struct {
	// Decimals is the number of decimal places for numeric sensor values.
	Decimals int `yaml:"decimals"`
	// Enabled lists the sensor keys to expose; empty means all of them.
	Enabled []string `yaml:"enabled"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8090,
		},
		Printer: PrinterConfig{
			Name:         "Ultimaker",
			PollInterval: 10,
		},
		Sensors: SensorsConfig{
			Decimals: 2,
			Enabled:  sensor.Keys(),
		},
	}
}

func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Printer.Host == "" {
		return fmt.Errorf("printer host is required")
	}
	if c.Printer.PollInterval <= 0 {
		c.Printer.PollInterval = DefaultConfig().Printer.PollInterval
	}
	if c.Sensors.Decimals < 0 {
		return fmt.Errorf("sensor decimals must not be negative, got %d", c.Sensors.Decimals)
	}
	if len(c.Sensors.Enabled) == 0 {
		c.Sensors.Enabled = sensor.Keys()
	}
	for _, key := range c.Sensors.Enabled {
		if !sensor.IsValid(key) {
			return fmt.Errorf("unknown sensor key %q in config", key)
		}
	}
	return nil
}

func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Printer.PollInterval) * time.Second
}

func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
