// Package app assembles the fretmap CLI: command tree, configuration
// loading, and logging setup.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fretmap/fretmap/pkg/logging"
	"github.com/fretmap/fretmap/pkg/resolver"
	"github.com/fretmap/fretmap/pkg/validation"
)

// App is the assembled CLI application.
type App struct {
	root   *cobra.Command
	logger *zerolog.Logger
}

// settings is the file- and environment-backed configuration surface.
type settings struct {
	Resolver resolver.Config       `mapstructure:"resolver"`
	Rules    validation.RuleConfig `mapstructure:"rules"`
}

// New creates the application with its full command tree.
func New(version, commit, date string) (*App, error) {
	// A missing .env file is fine; a present one feeds viper's env binding.
	_ = godotenv.Load()

	logger := logging.NewConsole()
	a := &App{logger: &logger}

	root := &cobra.Command{
		Use:           "fretmap",
		Short:         "Guitar registry submission pipeline",
		Long:          "fretmap validates, resolves, and commits guitar registry submissions.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "config file (default fretmap.yaml in the working directory)")
	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			l := logging.NewConsole().Level(zerolog.DebugLevel)
			a.logger = &l
		}
		cfgFile, _ := cmd.Flags().GetString("config")
		return a.loadConfig(cfgFile)
	}

	root.AddCommand(
		a.newSubmitCommand(),
		a.newValidateCommand(),
		newVersionCommand(version, commit, date),
	)
	a.root = root
	return a, nil
}

// Execute runs the command tree with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.root.ExecuteContext(logging.WithLogger(ctx, a.logger))
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// loadConfig wires viper: defaults, optional config file, and FRETMAP_*
// environment overrides.
func (a *App) loadConfig(cfgFile string) error {
	viper.SetEnvPrefix("FRETMAP")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("fretmap")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	a.logger.Debug().Str("file", viper.ConfigFileUsed()).Msg("config loaded")
	return nil
}

// config returns the effective settings: defaults overlaid with whatever the
// config file and environment provide.
func (a *App) config() (*settings, error) {
	s := &settings{
		Resolver: resolver.DefaultConfig(),
		Rules:    validation.DefaultRuleConfig(),
	}
	if err := viper.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return s, nil
}

// ContextWithSignals returns a context canceled on SIGINT or SIGTERM.
func ContextWithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// ExitOnError prints the error to stderr and exits non-zero.
func ExitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
