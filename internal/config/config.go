package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Grpc struct {
	Address string `yaml:"address"`
	Port    string `yaml:"port"`
}

type Log struct {
	Path  string `yaml:"path"`
	Name  string `yaml:"name"`
	Debug bool   `yaml:"debug"`
}

type Metrics struct {
	Enabled bool   `yaml:"enabled"`
	Address string `yaml:"address"`
	Port    string `yaml:"port"`
}

type Global struct {
	Grpc    Grpc    `yaml:"grpc"`
	Log     Log     `yaml:"log"`
	Metrics Metrics `yaml:"metrics"`
}

type Config struct {
	Global Global `yaml:"global"`
}

// Default values applied before the file is decoded
func Default() Config {
	return Config{
		Global: Global{
			Grpc: Grpc{
				Address: "127.0.0.1",
				Port:    "50052",
			},
			Log: Log{
				Path: "/var/log/ucdd/",
				Name: "ucdd.log",
			},
			Metrics: Metrics{
				Address: "127.0.0.1",
				Port:    "9102",
			},
		},
	}
}

func ReadConfigFile(configFile string) (Config, error) {
	c := Default()

	f, err := os.Open(configFile)
	if err != nil {
		return c, err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&c); err != nil {
		return c, fmt.Errorf("failed to decode %s: %w", configFile, err)
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.Global.Grpc.Port == "" {
		return fmt.Errorf("global.grpc.port is required")
	}
	if c.Global.Metrics.Enabled && c.Global.Metrics.Port == "" {
		return fmt.Errorf("global.metrics.port is required when metrics are enabled")
	}
	if c.Global.Log.Name == "" {
		return fmt.Errorf("global.log.name is required")
	}
	return nil
}
