package main

import (
	"context"

	"github.com/Gobusters/ectologger"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Ramsey-B/clover/config"
	"github.com/Ramsey-B/clover/pkg/catalog"
	appctx "github.com/Ramsey-B/clover/pkg/context"
	"github.com/Ramsey-B/clover/pkg/fixture"
	"github.com/Ramsey-B/clover/pkg/logging"
	"github.com/Ramsey-B/clover/pkg/tracing"
)

// app holds what every command needs once the root pre-run has finished
type app struct {
	cfg      *config.Config
	logger   ectologger.Logger
	envFiles []string
	shutdown func(ctx context.Context) error
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "clover",
		Short:        "Inspect account hierarchies, sales reps and market segments",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.shutdown == nil {
				return nil
			}
			return a.shutdown(cmd.Context())
		},
	}
	root.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "env files to load before reading the environment (default .env)")

	root.AddCommand(newTreeCmd(a), newSegmentsCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.envFiles...)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.AppName, cfg.LogLevel, cfg.PrettyLogs)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	if cfg.TracingEnabled {
		a.shutdown = tracing.Setup(logger)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = appctx.SetRunID(ctx, uuid.NewString())
	ctx = appctx.SetCommand(ctx, cmd.Name())
	cmd.SetContext(ctx)
	return nil
}

// load reads the fixture named by args, or the configured default, and builds its graph
func (a *app) load(cmd *cobra.Command, args []string) (*fixture.Graph, error) {
	path := a.cfg.FixturePath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return nil, errors.New("no fixture given: pass a file or set FIXTURE_PATH")
	}

	ctx := appctx.SetSource(cmd.Context(), path)
	ctx, span := tracing.StartSpan(ctx, "cli."+cmd.Name())
	defer span.End()

	a.logger.WithContext(ctx).WithFields(appctx.Fields(ctx)).Debug("Loading fixture")

	doc, err := fixture.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	graph, err := fixture.NewBuilder(catalog.New(a.logger), a.logger).Build(ctx, doc)
	if err != nil {
		return nil, err
	}
	return graph, nil
}
