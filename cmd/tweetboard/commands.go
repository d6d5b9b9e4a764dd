package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tweetboard/internal/app"
	"github.com/vovakirdan/tweetboard/internal/tweet"
	"github.com/vovakirdan/tweetboard/internal/ui/term"
	"github.com/vovakirdan/tweetboard/internal/view"
)

func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
}

func newTermCmd(rt *session) *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Interactive terminal client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signalContext(cmd)
			defer stop()

			opts := []term.Option{term.WithPrompt("> ")}
			if isatty.IsTerminal(os.Stdout.Fd()) {
				opts = append(opts, term.WithColor())
			}
			surface := term.NewSurface(cmd.OutOrStdout(), opts...)
			ctrl := view.Init(ctx, surface, app.NewClient(&rt.cfg), rt.logger)

			return term.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), ctrl, surface)
		},
	}
}

func newWebCmd(rt *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "web",
		Short: "Serve the message page over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signalContext(cmd)
			defer stop()

			application, err := app.NewWeb(ctx, &rt.cfg, rt.logger)
			if err != nil {
				return err
			}
			rt.logger.Info().Str("addr", application.Addr()).Str("base_url", rt.cfg.BaseURL).Msg("starting web surface")
			return application.Run(ctx)
		},
	}
	serverFlags(cmd.Flags(), &rt.overrides.Web)
	return cmd
}

func newBackendCmd(rt *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backend",
		Short: "Run the development message service on SQLite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signalContext(cmd)
			defer stop()

			application, err := app.NewBackend(&rt.cfg, rt.logger)
			if err != nil {
				return err
			}
			rt.logger.Info().Str("addr", application.Addr()).Msg("starting message service")
			return application.Run(ctx)
		},
	}
	serverFlags(cmd.Flags(), &rt.overrides.Backend.ServerConfig)
	cmd.Flags().StringVar(&rt.overrides.Backend.DatabasePath, "db", "", "SQLite database path")
	return cmd
}

// oneShot renders to stdout without prompt or colour.
func oneShot(cmd *cobra.Command, rt *session) *view.Controller {
	surface := term.NewSurface(cmd.OutOrStdout())
	return view.New(surface, app.NewClient(&rt.cfg), rt.logger)
}

func newListCmd(rt *session) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print all messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			oneShot(cmd, rt).RefreshList(cmd.Context())
			return nil
		},
	}
}

func newPostCmd(rt *session) *cobra.Command {
	return &cobra.Command{
		Use:   "post TEXT...",
		Short: "Post a message, then print all messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			oneShot(cmd, rt).SubmitMessage(cmd.Context(), strings.Join(args, " "))
			return nil
		},
	}
}

func newDeleteCmd(rt *session) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a message by id, then print all messages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			oneShot(cmd, rt).RemoveMessage(cmd.Context(), tweet.ID(args[0]))
			return nil
		},
	}
}
