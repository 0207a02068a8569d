package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rizome-dev/openaigo/internal/logging"
	"github.com/rizome-dev/openaigo/pkg/openai"
)

// settings is the merged view of flags, OPENAI_* environment variables and
// the optional config file, in that order of precedence
type settings struct {
	BaseURL    string        `mapstructure:"base_url"`
	APIVersion string        `mapstructure:"api_version"`
	Token      string        `mapstructure:"token"`
	Output     string        `mapstructure:"output"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Debug      bool          `mapstructure:"debug"`
}

// app is shared by all subcommands once the root pre-run has completed
type app struct {
	v        *viper.Viper
	settings settings
	client   openai.API
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:           "openai-cli",
		Short:         "openai-cli talks to the OpenAI models, completions, edits and images endpoints",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "config file (yaml or json)")
	flags.String("base-url", openai.DefaultBaseURL, "API base URL")
	flags.String("api-version", openai.DefaultVersion, "API version path segment")
	flags.String("token", "", "access token (defaults to $"+openai.TokenEnvVar+")")
	flags.StringP("output", "o", "json", "output format: json or yaml")
	flags.Duration("timeout", openai.DefaultTimeout, "HTTP timeout")
	flags.Bool("debug", false, "enable debug logging")

	for key, flag := range map[string]string{
		"config":      "config",
		"base_url":    "base-url",
		"api_version": "api-version",
		"token":       "token",
		"output":      "output",
		"timeout":     "timeout",
		"debug":       "debug",
	} {
		// Lookup never fails for flags defined above
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	cmd.AddCommand(modelsCmd(a))
	cmd.AddCommand(completeCmd(a))
	cmd.AddCommand(editCmd(a))
	cmd.AddCommand(imageCmd(a))

	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	a.v.SetEnvPrefix("OPENAI")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}

	if err := a.v.Unmarshal(&a.settings); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	switch a.settings.Output {
	case "json", "yaml":
	default:
		return fmt.Errorf("unsupported output format %q", a.settings.Output)
	}

	config := openai.CreateConfig(a.settings.BaseURL, a.settings.APIVersion, a.settings.Token).
		WithTimeout(a.settings.Timeout)

	logger := logging.New(cmd.ErrOrStderr(), a.settings.Debug)
	a.client = openai.NewClient(config, openai.WithLogger(logger))

	return nil
}
