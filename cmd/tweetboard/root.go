package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vovakirdan/tweetboard/internal/config"
	"github.com/vovakirdan/tweetboard/internal/log"
)

// session carries what every subcommand needs once flags are parsed.
type session struct {
	configPath string
	overrides  config.Config

	cfg    config.Config
	logger *zerolog.Logger
}

func newRootCmd() *cobra.Command {
	rt := &session{}

	root := &cobra.Command{
		Use:           "tweetboard",
		Short:         "Post, list and delete messages on a tweet service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.load()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&rt.configPath, "config", "", "path to config.yaml")
	flags.StringVar(&rt.overrides.BaseURL, "base-url", "", "message service base URL")
	flags.StringVar(&rt.overrides.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.DurationVar(&rt.overrides.RequestTimeout, "request-timeout", 0, "timeout of each remote call, 0 for none")

	root.AddCommand(
		newTermCmd(rt),
		newWebCmd(rt),
		newBackendCmd(rt),
		newListCmd(rt),
		newPostCmd(rt),
		newDeleteCmd(rt),
	)
	return root
}

// load resolves configuration: defaults < config file < env < flags.
func (rt *session) load() error {
	bootstrap := log.New(rt.overrides.LogLevel)

	cfg, path, err := config.Load(bootstrap, rt.configPath)
	if err != nil {
		return err
	}
	cfg.UpdateFrom(rt.overrides)

	rt.cfg = cfg
	rt.logger = log.New(cfg.LogLevel)
	rt.logger.Debug().Str("config", path).Str("base_url", cfg.BaseURL).Msg("configuration loaded")
	return nil
}

// serverFlags registers listen flags writing into target.
func serverFlags(fs *pflag.FlagSet, target *config.ServerConfig) {
	fs.StringVar(&target.Addr, "addr", "", "HTTP listen address")
	fs.DurationVar(&target.ReadHeaderTimeout, "read-header-timeout", 0, "HTTP read header timeout")
	fs.DurationVar(&target.ShutdownTimeout, "shutdown-timeout", 0, "graceful shutdown timeout")
}
