package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/gigshift/gigshift/internal/app"
)

// configFile is the on-disk TOML layout of app.Config.
type configFile struct {
	LogLevel    string      `toml:"log_level" comment:"debug, info, warn or error"`
	LogFormat   string      `toml:"log_format" comment:"text or json"`
	LogExporter string      `toml:"log_exporter,omitempty" comment:"stdout, otlp-http or otlp-grpc; empty disables export"`
	Output      string      `toml:"output" comment:"text or json"`
	API         apiSection  `toml:"api"`
	Auth        authSection `toml:"auth"`
}

type apiSection struct {
	BaseURL   string `toml:"base_url" comment:"Backend origin, e.g. https://api.example.com"`
	Timeout   string `toml:"timeout" comment:"Per-request timeout"`
	UserAgent string `toml:"user_agent"`
}

type authSection struct {
	Storage     string `toml:"storage" comment:"keyring, file or env"`
	File        string `toml:"file,omitempty"`
	EnvKey      string `toml:"env_key,omitempty"`
	KeyringUser string `toml:"keyring_user,omitempty"`
}

func toConfigFile(cfg *app.Config) configFile {
	return configFile{
		LogLevel:    strings.ToLower(cfg.LogLevel.String()),
		LogFormat:   string(cfg.LogFormat),
		LogExporter: cfg.LogExporter,
		Output:      string(cfg.Output),
		API: apiSection{
			BaseURL:   cfg.API.BaseURL,
			Timeout:   cfg.API.Timeout.String(),
			UserAgent: cfg.API.UserAgent,
		},
		Auth: authSection{
			Storage:     string(cfg.Auth.Storage),
			File:        cfg.Auth.File,
			EnvKey:      cfg.Auth.EnvKey,
			KeyringUser: cfg.Auth.KeyringUser,
		},
	}
}

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "manage the configuration file",
		Commands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "write a config file with defaults",
				ArgsUsage: "[PATH]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "base-url", Usage: "backend base URL to write (--force keeps the existing one unless given)", Value: "http://localhost:8000"},
					&cli.BoolFlag{Name: "force", Usage: "overwrite an existing file"},
				},
				Action: configInitAction,
			},
			{
				Name:  "show",
				Usage: "print the effective configuration",
				Action: func(_ context.Context, cmd *cli.Command) error {
					cfg, err := loadConfig(cmd.String("config"), cmd.String("env-file"), cmd, os.Environ)
					if err != nil {
						return fmt.Errorf("failed to load config: %w", err)
					}
					if cfg.Output == app.OutputJSON {
						return (&printer{w: cmd.Root().Writer}).json(cfg)
					}
					data, err := toml.Marshal(toConfigFile(cfg))
					if err != nil {
						return fmt.Errorf("marshal config: %w", err)
					}
					_, err = cmd.Root().Writer.Write(data)
					return err
				},
			},
		},
	}
}

func configInitAction(_ context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		var err error
		if path, err = defaultConfigPath(); err != nil {
			return fmt.Errorf("resolve config path: %w", err)
		}
	}

	baseURL := cmd.String("base-url")

	existing, err := os.ReadFile(path)
	switch {
	case err == nil && !cmd.Bool("force"):
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	case err == nil && !cmd.IsSet("base-url"):
		// Overwriting keeps the backend the file already points at.
		var prev configFile
		if err := toml.Unmarshal(existing, &prev); err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if prev.API.BaseURL != "" {
			baseURL = prev.API.BaseURL
		}
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("read %s: %w", path, err)
	}

	cfg := &app.Config{
		API:  app.APIConfig{BaseURL: baseURL},
		Auth: app.AuthConfig{Storage: app.DefaultConfigAuthStorage},
	}
	if err := cfg.ApplyDefaults(); err != nil {
		return fmt.Errorf("applying defaults: %w", err)
	}

	data, err := toml.Marshal(toConfigFile(cfg))
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Fprintln(cmd.Root().Writer, okStyle.Render("Wrote "+path))
	return nil
}
