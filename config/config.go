package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "config/config.yaml"

type Config struct {
	AppName    string           `envconfig:"APP_NAME" default:"solar-api"`
	AppVersion string           `envconfig:"APP_VERSION" default:"1.0.0"`
	AppEnv     string           `envconfig:"APP_ENV" default:"development"`
	Port       string           `envconfig:"PORT" default:"8080"`
	SentryDSN  string           `envconfig:"SENTRY_DSN"`
	NRELAPIKey string           `envconfig:"NREL_API_KEY"`
	SolarAPIs  []SolarAPIConfig `yaml:"solar_apis"`
}

type SolarAPIConfig struct {
	Name     string `yaml:"name"`
	BaseURL  string `yaml:"base_url"`
	Endpoint string `yaml:"endpoint"`
	Timeout  int    `yaml:"timeout"`
	// The credential comes from the environment only, never from the file.
	APIKey string `yaml:"-"`
}

func NewConfig() *Config {
	return newConfigFromFile(defaultConfigPath)
}

func newConfigFromFile(path string) *Config {
	var cnf Config

	// Read from YAML file first
	if yamlData, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(yamlData, &cnf); err != nil {
			panic(fmt.Sprintf("failed to parse YAML config: %v", err))
		}
	}

	// Override with environment variables
	if err := envconfig.Process("", &cnf); err != nil {
		panic(fmt.Errorf("error environment variable parsing: %w", err))
	}

	// Attach the environment-sourced credential to its provider entry.
	for i := range cnf.SolarAPIs {
		if cnf.SolarAPIs[i].Name == "nrel" {
			cnf.SolarAPIs[i].APIKey = cnf.NRELAPIKey
		}
	}

	return &cnf
}
