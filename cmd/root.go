package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/olivierh59500/particle-field-go/internal/config"
	"github.com/olivierh59500/particle-field-go/internal/observability"
	"github.com/olivierh59500/particle-field-go/internal/screen"
)

// app carries what every command needs once PersistentPreRunE has run.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger
}

// NewRootCmd builds the command tree around a fresh viper instance.
func NewRootCmd() *cobra.Command {
	root, _ := newRootCmd()
	return root
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{v: viper.New()}
	config.SetDefaults(a.v)

	root := &cobra.Command{
		Use:           "particle-field",
		Short:         "An animated field of linked particles that shy away from the pointer.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.log.Sync()
			return screen.Run(a.cfg, a.log)
		},
	}
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./particle-field.yaml)")
	pf.Int64("seed", 0, "random seed, 0 picks one from the clock")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	a.bind("seed", pf.Lookup("seed"))
	a.bind("logger.level", pf.Lookup("log-level"))

	f := root.Flags()
	f.Int("width", 1280, "initial window width")
	f.Int("height", 720, "initial window height")
	f.Int("tps", 60, "simulation ticks per second")
	a.bind("window.width", f.Lookup("width"))
	a.bind("window.height", f.Lookup("height"))
	a.bind("window.tps", f.Lookup("tps"))

	root.AddCommand(newTermCmd(a), newSnapshotCmd(a), newVersionCmd())
	return root, a
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bind ties a config key to a flag so that an explicit flag wins over env and file.
func (a *app) bind(key string, flag *pflag.Flag) {
	// Flags are registered just above; a failure here is a programming error.
	if err := a.v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// load reads the config file and environment, then builds the logger.
func (a *app) load() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigName("particle-field")
		a.v.SetConfigType("yaml")
	}
	a.v.SetEnvPrefix("PARTICLE_FIELD")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	// Only the implicit ./particle-field.yaml may be missing.
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = observability.NewStdoutLogger(cfg.Logger)
	a.log.Debug("Configuration loaded", zap.String("file", a.v.ConfigFileUsed()), zap.Int64("seed", cfg.Seed))
	return nil
}
