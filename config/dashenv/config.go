// Package dashenv resolves the dashadm runtime configuration from command
// line flags, environment variables, and the user config file, in that order
// of precedence.
package dashenv

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variable names
const (
	APIKeyEnvKey    = "DASHADM_API_KEY"
	BaseURLEnvKey   = "DASHADM_BASE_URL"
	TimeoutEnvKey   = "DASHADM_TIMEOUT"
	LogFormatEnvKey = "DASHADM_LOG_FORMAT"
)

// Config file location under the user home directory
const (
	ConfigDirName  = ".dashadm"
	ConfigFileName = "config.yml"
)

const defaultLogFormat = "human"

// Config holds the resolved runtime configuration. All fields are read-only
// after Resolve returns.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration // zero means the API client default
}

// Options carries flag-supplied values into Resolve. Empty/zero fields fall
// through to the environment, then the config file.
type Options struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	ConfigPath string // overrides the default config file location, may name a missing file
}

// configFile represents the structure of ~/.dashadm/config.yml.
type configFile struct {
	APIKey         string `yaml:"apiKey,omitempty"`
	BaseURL        string `yaml:"baseUrl,omitempty"`
	TimeoutSeconds int    `yaml:"timeoutSeconds,omitempty"`
	Logging        struct {
		Format string `yaml:"format,omitempty"`
	} `yaml:"logging,omitempty"`
}

// Resolve merges opts with environment variables and the config file.
// The API key and base URL are required; anything else has a default.
func Resolve(opts Options) (*Config, error) {
	file, err := loadConfigFile(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		APIKey:  firstNonEmpty(opts.APIKey, os.Getenv(APIKeyEnvKey), file.APIKey),
		BaseURL: firstNonEmpty(opts.BaseURL, os.Getenv(BaseURLEnvKey), file.BaseURL),
	}

	cfg.Timeout = opts.Timeout
	if cfg.Timeout == 0 {
		if v := os.Getenv(TimeoutEnvKey); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return nil, fmt.Errorf("parsing %s: %w", TimeoutEnvKey, err)
			}
			cfg.Timeout = d
		} else if file.TimeoutSeconds > 0 {
			cfg.Timeout = time.Duration(file.TimeoutSeconds) * time.Second
		}
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key not configured (--api-key flag, %s, or apiKey in config file)", APIKeyEnvKey)
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("API base URL not configured (--base-url flag, %s, or baseUrl in config file)", BaseURLEnvKey)
	}
	return cfg, nil
}

// ResolveLogFormat resolves just the log format, usable before the full
// configuration (API key, base URL) is required. Precedence matches Resolve:
// flag > environment > config file > default.
func ResolveLogFormat(flagValue, configPath string) (string, error) {
	file, err := loadConfigFile(configPath)
	if err != nil {
		return "", err
	}
	return firstNonEmpty(flagValue, os.Getenv(LogFormatEnvKey), file.Logging.Format, defaultLogFormat), nil
}

// loadConfigFile reads the config file if it exists. A missing file is not
// an error; a malformed one is.
func loadConfigFile(path string) (*configFile, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &configFile{}, nil
		}
		path = filepath.Join(home, ConfigDirName, ConfigFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &configFile{}, nil
		}
		return nil, fmt.Errorf("reading config file %q: %w", path, err)
	}

	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing config file %q: %w", path, err)
	}
	return &file, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
