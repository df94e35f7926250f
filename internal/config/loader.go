package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigDirName is the directory under the home directory.
	ConfigDirName = ".rtfwriter"
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "config.yaml"
)

// ErrExists is returned by Init when the file is already there.
var ErrExists = errors.New("config file already exists")

// envVarPattern matches ${VAR_NAME} patterns.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// fileHeader is written above the YAML body by Save.
const fileHeader = "# rtfwriter configuration. Lengths are in points.\n" +
	"# ${VAR} references are expanded when the file is loaded.\n"

// Loader reads and writes one configuration file.
type Loader struct {
	path string
}

// DefaultPath returns ~/.rtfwriter/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ConfigDirName, ConfigFileName), nil
}

// NewLoader creates a loader for DefaultPath.
func NewLoader() (*Loader, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return &Loader{path: path}, nil
}

// NewLoaderWithPath creates a loader for configPath.
func NewLoaderWithPath(configPath string) *Loader {
	return &Loader{path: configPath}
}

// ConfigPath returns the configuration file path.
func (l *Loader) ConfigPath() string {
	return l.path
}

// Load reads the file with ${VAR} references expanded. A missing file
// yields DefaultConfig; keys missing from the file keep their defaults.
func (l *Loader) Load() (*Config, error) {
	return l.read(expandEnvVars)
}

// LoadRaw is like Load but leaves ${VAR} references as written, so that
// they survive a Save.
func (l *Loader) LoadRaw() (*Config, error) {
	return l.read(nil)
}

func (l *Loader) read(expand func(string) string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if expand != nil {
		data = []byte(expand(string(data)))
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", l.path, err)
	}
	return cfg, nil
}

// Save writes cfg, creating the directory if needed.
func (l *Loader) Save(cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	body, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(l.path, append([]byte(fileHeader), body...), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Exists checks if the configuration file exists.
func (l *Loader) Exists() bool {
	_, err := os.Stat(l.path)
	return err == nil
}

// Init writes DefaultConfig. An existing file is kept and ErrExists
// returned unless force is set.
func (l *Loader) Init(force bool) error {
	if !force && l.Exists() {
		return fmt.Errorf("%w: %s", ErrExists, l.path)
	}
	return l.Save(DefaultConfig())
}

// expandEnvVars replaces ${VAR_NAME} with the variable's value, or with
// nothing when it is unset.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})
}

// GetEnvOrDefault returns the environment variable value or a default.
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvBool returns true if the environment variable is set to "true",
// "1" or "yes", in any case.
func GetEnvBool(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "true", "1", "yes":
		return true
	}
	return false
}
