package shell

import (
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Prompt   string `yaml:"prompt"`
	LogLevel string `yaml:"logLevel"`
	LogFile  string `yaml:"logFile"`
}

func DefaultConfig() *Config {
	return &Config{
		Prompt:   "queue> ",
		LogLevel: "info",
	}
}

// LoadConfig reads a yaml config file, substituting environment
// variables in the file body before parsing.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	confContent := []byte(os.ExpandEnv(string(data)))

	config := DefaultConfig()
	if err := yaml.Unmarshal(confContent, config); err != nil {
		return nil, err
	}

	return config, nil
}
