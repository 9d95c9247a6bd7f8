package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/beka-birhanu/vinom-pathfinder/api"
	api_i "github.com/beka-birhanu/vinom-pathfinder/api/i"
	searchapi "github.com/beka-birhanu/vinom-pathfinder/api/search"
	"github.com/beka-birhanu/vinom-pathfinder/config"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/metrics"
	"github.com/beka-birhanu/vinom-pathfinder/service"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the search API and its metrics over HTTP.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runServe(cmd)
		},
	}

	flags := cmd.Flags()
	flags.String("host", "0.0.0.0", "address to listen on")
	flags.Int("port", 8080, "port to listen on")
	flags.String("gin-mode", "release", "gin mode: release, debug or test")

	bindFlag(a.v, "server.host", flags.Lookup("host"))
	bindFlag(a.v, "server.port", flags.Lookup("port"))
	bindFlag(a.v, "server.gin_mode", flags.Lookup("gin-mode"))

	return cmd
}

func (a *app) runServe(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	solverLogger, err := a.newLogger("SOLVER", config.ColorCyan, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("creating solver logger: %w", err)
	}
	httpLogger, err := a.newLogger("HTTP", config.ColorBlue, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("creating http logger: %w", err)
	}

	recorder := metrics.NewSearchRecorder()
	solver, err := service.NewSolver(solverLogger, recorder, &service.Options{
		DefaultPolicy: a.cfg.Solve.Policy,
		MaxSize:       a.cfg.Solve.MaxSize,
		MaxSteps:      a.cfg.Solve.MaxSteps,
	})
	if err != nil {
		return err
	}
	a.appLogger.Info("Solver initialized")

	searchController, err := searchapi.NewSearchController(solver, searchapi.Defaults{
		Size:     a.cfg.Solve.Size,
		Density:  a.cfg.Solve.Density,
		Policy:   a.cfg.Solve.Policy,
		MaxSteps: a.cfg.Server.MaxSteps,
		Timeout:  a.cfg.Server.SolveTimeout,
	})
	if err != nil {
		return fmt.Errorf("creating search controller: %w", err)
	}
	a.appLogger.Info("Search controller initialized")

	router, err := api.NewRouter(api.Config{
		Addr:           a.cfg.Server.Addr(),
		BaseURL:        a.cfg.Server.BaseURL,
		GinMode:        a.cfg.Server.GinMode,
		Controllers:    []api_i.Controller{searchController},
		MetricsHandler: recorder.Handler(),
		Logger:         httpLogger,
	})
	if err != nil {
		return fmt.Errorf("creating router: %w", err)
	}
	a.appLogger.Info("Router initialized")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return router.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		a.appLogger.Info("Received shutdown signal")
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}
