package cmd

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/bumpwatch/config"
)

const (
	providerGitHub = "github"
	providerGitLab = "gitlab"
)

// tokenEnvVars maps a provider type to the environment variable its hosting
// platform conventionally exposes.
var tokenEnvVars = map[string]string{
	providerGitHub: "GITHUB_TOKEN",
	providerGitLab: "GITLAB_TOKEN",
}

// loadSettings resolves the configuration for a command invocation: the
// --config flag wins, then the standard file locations, then built-in
// defaults when no file exists at all.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		found, err := config.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			return config.Default(), nil
		}
		path = found
	}

	logger.Infof("Using config file: %s", path)
	return config.Load(path)
}

// resolveAuthToken picks the auth token: --token flag, then the config
// file, then the provider's conventional environment variable.
func resolveAuthToken(cmd *cobra.Command, cfg *config.Config, providerType string) string {
	if token, _ := cmd.Flags().GetString("token"); token != "" {
		return token
	}
	if cfg.Provider.Token != "" {
		return cfg.Provider.Token
	}
	if envVar, ok := tokenEnvVars[providerType]; ok {
		return os.Getenv(envVar)
	}
	return ""
}
