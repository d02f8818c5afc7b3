package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajitpratap0/arrays/pkg/config"
	"github.com/ajitpratap0/arrays/pkg/errors"
	"github.com/ajitpratap0/arrays/pkg/logger"
	"github.com/ajitpratap0/arrays/pkg/metrics"
)

var version = "0.1.0"

// app holds the state shared by every command of one invocation.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	metrics *metrics.Collector
	out     io.Writer

	configPath string
	logLevel   string
	kind       string
	indent     bool
	seed       uint64
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	root, _ := newRootCmd(os.Stdout)
	if err := root.Execute(); err != nil {
		logger.Error("command failed", logger.ErrorFields(err)...)
		_ = logger.Sync()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	_ = logger.Sync()
}

func newRootCmd(out io.Writer) (*cobra.Command, *app) {
	a := &app{out: out}

	root := &cobra.Command{
		Use:   "arrays",
		Short: "Inspect and combine fixed-size typed arrays",
		Long: `arrays reads JSON or YAML documents describing fixed-size containers and
runs container operations on them. A document is either a bare list, read
with the --kind element type, or an object {"kind": "int32", "values": [...]}.
Kinds are object, bool, int8, int16, int32, int64, float32, float64, char and
uint8; a leading * (for example *int32) reads a boxed array whose slots may be
null.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.summary(cmd.Name())
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Path to YAML configuration file")
	flags.StringVar(&a.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.StringVar(&a.kind, "kind", "object", "Element kind for bare list input")
	flags.BoolVar(&a.indent, "indent", false, "Pretty-print JSON output")
	flags.Uint64Var(&a.seed, "seed", 0, "Shuffle seed (0 picks a random seed)")

	root.AddCommand(
		a.newEvalCmd(),
		a.newConcatCmd(),
		a.newEqualCmd(),
		a.newConvertCmd(),
		newVersionCmd(),
	)
	return root, a
}

// setup loads configuration, applies explicitly set flags on top of it and
// builds the logger and metrics collector.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		if err := config.Load(a.configPath, cfg); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if flags.Changed("kind") {
		cfg.Render.Kind = a.kind
	}
	if flags.Changed("indent") {
		cfg.Render.Indent = a.indent
	}
	if flags.Changed("seed") {
		cfg.Render.Seed = a.seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		Encoding:    cfg.Logging.Encoding,
		OutputPaths: cfg.Logging.OutputPaths,
	})
	if err != nil {
		return err
	}
	logger.Set(log)
	a.log = log.With(zap.String("component", "arrays-cli"), zap.String("command", cmd.Name()))

	if cfg.Metrics.Enabled {
		a.metrics = metrics.NewCollector("arrays")
	}

	a.log.Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.String("kind", cfg.Render.Kind),
		zap.Bool("indent", cfg.Render.Indent))
	return nil
}

// observe records one operation when metrics are enabled.
func (a *app) observe(timer *metrics.Timer, n int, err error) {
	if a.metrics == nil {
		return
	}
	a.metrics.Observe(timer.Name(), n, timer.Stop(), err)
}

func (a *app) summary(command string) {
	if a.cfg == nil || a.metrics == nil || !a.cfg.Metrics.Summary {
		return
	}
	a.log.Info("operation summary",
		zap.String("command", command),
		zap.Any("operations", a.metrics.Snapshot()),
		zap.Duration("elapsed", time.Since(a.metrics.StartTime())))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "arrays v%s\n", version)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// usageError reports bad command arguments as validation errors.
func usageError(format string, args ...interface{}) error {
	return errors.Newf(errors.ErrorTypeValidation, format, args...)
}
