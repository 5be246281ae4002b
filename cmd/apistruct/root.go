package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kbukum/apistruct/config"
	"github.com/kbukum/apistruct/endpoint"
	"github.com/kbukum/apistruct/logger"
	"github.com/kbukum/apistruct/observability"
	"github.com/kbukum/apistruct/version"
)

const serviceName = "apistruct"

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configFile string
	envFile    string
	output     string
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "apistruct",
		Short: "Send requests to configured REST endpoints",
		Long: `apistruct resolves a configured endpoint name into a URL, sends the
request and prints the decoded JSON response.

Endpoints are read from config.yml (or --config) under "endpoints":

  endpoints:
    users:
      root: https://api.example.com/users
      params: {lang: en}`,
		Version:      version.Get().String(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return validateOutput(opts.output)
		},
	}
	cmd.SetOut(out)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "config file path")
	flags.StringVar(&opts.envFile, "env-file", "", ".env file path")
	flags.StringVarP(&opts.output, "output", "o", outputJSON, "output format: json or yaml")

	cmd.AddCommand(newEndpointsCmd(opts), newVersionCmd(opts))
	for _, verb := range verbs {
		cmd.AddCommand(newVerbCmd(opts, verb))
	}
	return cmd
}

// app is the loaded configuration and the resources built from it.
type app struct {
	cfg      config.Config
	registry *endpoint.Registry
	log      *logger.Logger
	metrics  *observability.RequestMetrics
	shutdown []func(context.Context) error
}

func loadApp(ctx context.Context, opts *rootOptions) (*app, error) {
	var loadOpts []config.LoaderOption
	if opts.configFile != "" {
		loadOpts = append(loadOpts, config.WithConfigFile(opts.configFile))
	}
	if opts.envFile != "" {
		loadOpts = append(loadOpts, config.WithEnvFile(opts.envFile))
	}

	a := &app{}
	if err := config.Load(serviceName, &a.cfg, loadOpts...); err != nil {
		return nil, err
	}
	if a.cfg.Version == "" {
		a.cfg.Version = version.Version
	}
	a.cfg.ApplyDefaults()
	if err := a.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	registry, err := a.cfg.Registry()
	if err != nil {
		return nil, err
	}
	a.registry = registry
	a.log = logger.New(&a.cfg.Logging, a.cfg.Name)

	if err := a.initTelemetry(ctx); err != nil {
		_ = a.close(ctx)
		return nil, err
	}
	return a, nil
}

func (a *app) initTelemetry(ctx context.Context) error {
	if a.cfg.Tracing != nil {
		tp, err := observability.InitTracer(ctx, *a.cfg.Tracing)
		if err != nil {
			return fmt.Errorf("init tracer: %w", err)
		}
		a.shutdown = append(a.shutdown, tp.Shutdown)
	}
	if a.cfg.Metrics != nil {
		mp, err := observability.InitMeter(ctx, *a.cfg.Metrics)
		if err != nil {
			return fmt.Errorf("init meter: %w", err)
		}
		a.shutdown = append(a.shutdown, mp.Shutdown)

		metrics, err := observability.NewRequestMetrics(observability.Meter(observability.InstrumentationName))
		if err != nil {
			return fmt.Errorf("create request metrics: %w", err)
		}
		a.metrics = metrics
	}
	return nil
}

func (a *app) close(ctx context.Context) error {
	var errs []error
	for i := len(a.shutdown) - 1; i >= 0; i-- {
		errs = append(errs, a.shutdown[i](ctx))
	}
	return errors.Join(errs...)
}
