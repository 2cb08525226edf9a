// Command siocat connects to a socket.io style server and pipes
// events: inbound events for the chosen name print to stdout, stdin
// lines are emitted outbound, optionally requesting an
// acknowledgement per line.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	sioclient "github.com/mdevan/socketio-client"
	"github.com/mdevan/socketio-client/transport"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "siocat",
		Short:         "pipe events to and from a socket.io style server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().String("url", "ws://127.0.0.1:8000/socket.io", "websocket url of the server")
	cmd.Flags().String("namespace", "", "namespace to attach to")
	cmd.Flags().String("event", "chat message", "event name to listen for and emit")
	cmd.Flags().Bool("ack", false, "request an acknowledgement for every emitted line")
	cmd.Flags().Bool("verbose", false, "debug logging")

	return cmd
}

func run(ctx context.Context, cfg config) error {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !cfg.Verbose {
		log = log.Level(zerolog.InfoLevel)
	}

	c := sioclient.New(transport.NewWebsocket(cfg.URL), sioclient.WithLogger(log))
	if err := c.Connect(ctx); err != nil {
		return err
	}
	defer c.Close()

	if cfg.Namespace != "" {
		c.Of(cfg.Namespace)
	}

	c.On(cfg.Event, func(args ...interface{}) {
		for _, arg := range args {
			fmt.Fprintln(os.Stdout, arg)
		}
	})

	log.Info().Str("url", cfg.URL).Str("event", cfg.Event).Msg("connected")

	grp, _ := errgroup.WithContext(ctx)

	grp.Go(c.Listen)

	grp.Go(func() error {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			line := sc.Text()

			var err error
			if cfg.Ack {
				err = c.EmitWithAck(cfg.Event, func(response interface{}) {
					log.Info().Interface("response", response).Msg("ack")
				}, line)
			} else {
				err = c.Emit(cfg.Event, line)
			}
			if err != nil {
				return err
			}
		}

		// stdin drained: closing the session makes Listen return
		return c.Close()
	})

	err := grp.Wait()
	log.Info().Err(err).Msg("session ended")
	return err
}
