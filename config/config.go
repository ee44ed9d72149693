package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultManifestPath is the manifest file checked when none is configured.
	DefaultManifestPath = "versions.json"
	// DefaultLabel is the label applied to pull requests with a major bump.
	DefaultLabel = "major-bump"
)

// Config is the top-level configuration for bumpwatch.
type Config struct {
	Provider     ProviderConfig `yaml:"provider"`
	ManifestPath string         `yaml:"manifest_path"`
	Report       ReportConfig   `yaml:"report"`
}

// ProviderConfig describes the Git hosting provider to talk to.
type ProviderConfig struct {
	Type  string `yaml:"type"`  // "github" or "gitlab"
	Token string `yaml:"token"` // Inline, ${ENV_VAR}, or file path
}

// ReportConfig controls the PR-facing side effects of a check.
type ReportConfig struct {
	Comment bool   `yaml:"comment"` // post a summary comment when bumps are found
	Label   string `yaml:"label"`   // label to apply/remove; empty disables labeling
}

// Default returns the configuration used when no config file exists:
// comment and label reporting on, manifest at the repository root.
func Default() *Config {
	return &Config{
		ManifestPath: DefaultManifestPath,
		Report: ReportConfig{
			Comment: true,
			Label:   DefaultLabel,
		},
	}
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Load reads and parses a configuration file, expanding environment
// variables, resolving token file paths, and filling defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	cfg := Default()
	if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	cfg.Provider.Token = ResolveToken(cfg.Provider.Token)
	if cfg.ManifestPath == "" {
		cfg.ManifestPath = DefaultManifestPath
	}

	if validateErr := validate(cfg); validateErr != nil {
		return nil, validateErr
	}

	return cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".bumpwatch.yaml",
		".bumpwatch.yml",
		"bumpwatch.yaml",
		"bumpwatch.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ResolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func ResolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	// Expand ${ENV_VAR} references
	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	// If the resolved value is a path to an existing file, read the token from it
	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

// validate checks for required configuration values. The token is not
// required here: hosted commands fall back to environment tokens and the
// local mode needs none at all.
func validate(cfg *Config) error {
	if cfg.Provider.Type != "" &&
		cfg.Provider.Type != "github" && cfg.Provider.Type != "gitlab" {
		return fmt.Errorf("provider.type must be \"github\" or \"gitlab\", got %q", cfg.Provider.Type)
	}

	if strings.ContainsAny(cfg.Report.Label, ",\n") {
		return fmt.Errorf("report.label must be a single label name, got %q", cfg.Report.Label)
	}

	return nil
}
