package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/gigshift/gigshift/internal/api"
	"github.com/gigshift/gigshift/internal/app"
	"github.com/gigshift/gigshift/internal/observability"
)

// Execute runs the root command with the given context and arguments.
func Execute(ctx context.Context, args []string) error {
	return newRootCommand(os.Stdin, os.Stdout, os.Stderr).Run(ctx, args)
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "gigshift",
		Usage:     "Shift marketplace client for workers and venues",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		// Errors are printed once by the caller.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "dotenv file with GIGSHIFT_* variables (default .env if present)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug|info|warn|error)",
				Value: slog.LevelInfo.String(),
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log format (text|json)",
				Value: string(app.DefaultConfigLogFormat),
			},
			&cli.StringFlag{
				Name:  "log-exporter",
				Usage: "also export logs via OpenTelemetry (stdout|otlp-http|otlp-grpc)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output format (text|json)",
				Value:   string(app.DefaultConfigOutput),
			},
			&cli.StringFlag{
				Name:  "api--base-url",
				Usage: "backend base URL",
			},
			&cli.DurationFlag{
				Name:  "api--timeout",
				Usage: "per-request timeout",
				Value: app.DefaultConfigAPITimeout,
			},
			&cli.StringFlag{
				Name:  "auth--storage",
				Usage: "where the session token is kept (keyring|file|env)",
				Value: string(app.DefaultConfigAuthStorage),
			},
			&cli.StringFlag{
				Name:  "auth--file",
				Usage: "token file path for file storage",
			},
			&cli.BoolFlag{
				Name:  "print-metrics",
				Usage: "print request metrics to stderr when the command finishes",
			},
		},
		Commands: []*cli.Command{
			registerCommand(),
			loginCommand(),
			logoutCommand(),
			whoamiCommand(),
			shiftsCommand(),
			applicationsCommand(),
			chatCommand(),
			notificationsCommand(),
			referralsCommand(),
			ratingsCommand(),
			disputesCommand(),
			venuesCommand(),
			profileCommand(),
			matchesCommand(),
			availabilityCommand(),
			uploadCommand(),
			dashboardCommand(),
			callCommand(),
			endpointsCommand(),
			configCommand(),
		},
	}
}

// session is what an API command needs: effective config, the wired app and an output printer.
type session struct {
	cfg *app.Config
	app *app.App
	out *printer
}

func (s *session) client() *api.Client {
	return s.app.Client()
}

type sessionAction func(ctx context.Context, cmd *cli.Command, s *session) error

// withSession loads config, sets up logging and builds the app before running fn.
func withSession(fn sessionAction) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := loadConfig(cmd.String("config"), cmd.String("env-file"), cmd, os.Environ)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		opts := cfg.ObservabilityOptions()
		opts.Writer = cmd.Root().ErrWriter
		shutdown, err := observability.Instrument(ctx, opts)
		if err != nil {
			return fmt.Errorf("failed to set up observability layer: %w", err)
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()
			if err := shutdown(flushCtx); err != nil {
				slog.WarnContext(flushCtx, "flushing telemetry failed", "error", err)
			}
		}()

		application, err := app.New(cfg)
		if err != nil {
			return fmt.Errorf("failed to create app: %w", err)
		}

		s := &session{
			cfg: cfg,
			app: application,
			out: &printer{w: cmd.Root().Writer, format: cfg.Output},
		}

		runErr := fn(ctx, cmd, s)

		if cmd.Bool("print-metrics") {
			if err := application.WriteMetrics(cmd.Root().ErrWriter); err != nil {
				slog.WarnContext(ctx, "writing metrics failed", "error", err)
			}
		}

		return runErr
	}
}

// argID parses the positional argument at index i as a numeric ID.
func argID(cmd *cli.Command, i int, name string) (int64, error) {
	raw := strings.TrimSpace(cmd.Args().Get(i))
	if raw == "" {
		return 0, fmt.Errorf("missing %s argument", name)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive number", name, raw)
	}
	return v, nil
}

// optional returns a pointer to the flag's value when the flag was given.
func optional(cmd *cli.Command, name string) *string {
	if !cmd.IsSet(name) {
		return nil
	}
	v := cmd.String(name)
	return &v
}
