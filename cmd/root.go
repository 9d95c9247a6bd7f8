package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/beka-birhanu/vinom-pathfinder/config"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/logger"
	"github.com/beka-birhanu/vinom-pathfinder/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v         *viper.Viper
	cfgFile   string
	cfg       config.Config
	logFile   io.WriteCloser
	appLogger *logger.Logger
}

// NewRootCommand builds the command tree with a fresh configuration.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "vinom-pathfinder",
		Short:         "Generate mazes and watch search agents solve them.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./config.yaml)")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-format", "console", "log format: console or json")
	flags.String("log-file", "", "also write JSON logs to this rotating file")

	bindFlag(a.v, "log.level", flags.Lookup("log-level"))
	bindFlag(a.v, "log.format", flags.Lookup("log-format"))
	bindFlag(a.v, "log.file", flags.Lookup("log-file"))

	rootCmd.AddCommand(
		newSolveCommand(a),
		newServeCommand(a),
		newPoliciesCommand(a),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initialize reads the configuration and creates the application logger.
func (a *app) initialize(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.Log.File != "" {
		a.logFile = logger.NewRotatingFile(cfg.Log)
	}

	a.appLogger, err = a.newLogger("APP", config.ColorGreen, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("creating app logger: %w", err)
	}
	a.appLogger.Debug(fmt.Sprintf("Configuration loaded: %s", a.v.ConfigFileUsed()))
	return nil
}

// newLogger creates a component logger honoring the log configuration.
func (a *app) newLogger(name, color string, w io.Writer) (*logger.Logger, error) {
	opts := []logger.Option{
		logger.WithLevel(a.cfg.Log.Level),
		logger.WithFormat(a.cfg.Log.Format),
	}
	if a.logFile != nil {
		opts = append(opts, logger.WithFile(a.logFile))
	}
	if !render.IsTerminal(w) {
		color = ""
	}
	return logger.New(name, color, w, opts...)
}

func (a *app) close() error {
	if a.appLogger != nil {
		_ = a.appLogger.Sync()
	}
	if a.logFile != nil {
		return a.logFile.Close()
	}
	return nil
}
