// File: config.go
// Title: Configuration Loading
// Description: Implements the Config type used by the command-line
//              tool: TOML or YAML files, environment variable
//              overrides and typed accessors with defaults.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	lterror "github.com/tlforge/ltlspec/core/error"
)

// EnvPrefix is the prefix of environment variables that override
// configuration keys
const EnvPrefix = "LTLSPEC"

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config holds configuration data loaded from a file, overridable by
// environment variables. Nested tables are addressed with dot notation
// ("log.level").
type Config struct {
	data     map[string]interface{}
	filePath string
	format   Format
}

// Default returns an empty configuration: every lookup falls back to
// the environment or the caller's default value
func Default() *Config {
	return &Config{data: map[string]interface{}{}, format: FormatTOML}
}

// Load loads configuration from a file, detecting the format from the
// file extension
func Load(filePath string) (*Config, error) {
	return LoadWithFormat(filePath, FormatAuto)
}

// LoadWithFormat loads configuration from a file in an explicit format
func LoadWithFormat(filePath string, format Format) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, lterror.New("config file path cannot be empty").
			WithCode(lterror.CodeConfig).
			WithOperation("config.Load")
	}

	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, lterror.Wrap(err, "failed to read config file").
			WithCode(lterror.CodeConfig).
			WithOperation("config.Load").
			WithDetail("filePath", filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		if lerr, ok := err.(*lterror.Error); ok {
			return nil, lerr.WithDetail("filePath", filePath)
		}
		return nil, err
	}

	return &Config{data: data, filePath: filePath, format: format}, nil
}

// LoadFromString loads configuration from a string in the given format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, err
	}
	return &Config{data: data, format: format}, nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	var data map[string]interface{}

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, lterror.Wrap(err, "TOML parse error").
				WithCode(lterror.CodeConfig).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, lterror.Wrap(err, "YAML parse error").
				WithCode(lterror.CodeConfig).
				WithOperation("config.parseContent")
		}
	default:
		return nil, lterror.Newf("unsupported format: %s", format).
			WithCode(lterror.CodeConfig).
			WithOperation("config.parseContent")
	}

	if data == nil {
		data = map[string]interface{}{}
	}
	return data, nil
}

// FilePath returns the path the configuration was loaded from, empty
// for defaults and strings
func (c *Config) FilePath() string {
	return c.filePath
}

// Has reports whether key is present in the configuration file or the
// environment
func (c *Config) Has(key string) bool {
	if c.getEnvValue(key) != "" {
		return true
	}
	return c.getValue(key) != nil
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	if envValue := c.getEnvValue(key); envValue != "" {
		return envValue
	}

	value := c.getValue(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	if envValue := c.getEnvValue(key); envValue != "" {
		if intVal, err := strconv.Atoi(envValue); err == nil {
			return intVal
		}
	}

	switch v := c.getValue(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	if envValue := c.getEnvValue(key); envValue != "" {
		if boolVal, err := strconv.ParseBool(envValue); err == nil {
			return boolVal
		}
	}

	switch v := c.getValue(key).(type) {
	case bool:
		return v
	case string:
		if boolVal, err := strconv.ParseBool(v); err == nil {
			return boolVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// getValue resolves a dot-notation key against the nested data maps
func (c *Config) getValue(key string) interface{} {
	parts := strings.Split(key, ".")

	var current interface{} = c.data
	for _, part := range parts {
		switch m := current.(type) {
		case map[string]interface{}:
			current = m[part]
		case map[interface{}]interface{}:
			current = m[part]
		default:
			return nil
		}
	}
	return current
}

// getEnvValue looks up the environment override for key:
// "log.level" is overridden by LTLSPEC_LOG_LEVEL
func (c *Config) getEnvValue(key string) string {
	envKey := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return os.Getenv(envKey)
}
