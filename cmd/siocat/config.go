package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config resolution order: flags, then SIOCAT_* environment, then an
// optional siocat.yaml in the working directory, then defaults.
type config struct {
	URL       string
	Namespace string
	Event     string
	Ack       bool
	Verbose   bool
}

func loadConfig(cmd *cobra.Command) (config, error) {
	v := viper.New()
	v.SetConfigName("siocat")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SIOCAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("url", "ws://127.0.0.1:8000/socket.io")
	v.SetDefault("namespace", "")
	v.SetDefault("event", "chat message")
	v.SetDefault("ack", false)
	v.SetDefault("verbose", false)

	// config file is optional, env or flags alone are fine
	_ = v.ReadInConfig()

	for _, name := range []string{"url", "namespace", "event", "ack", "verbose"} {
		if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
			return config{}, err
		}
	}

	return config{
		URL:       v.GetString("url"),
		Namespace: v.GetString("namespace"),
		Event:     v.GetString("event"),
		Ack:       v.GetBool("ack"),
		Verbose:   v.GetBool("verbose"),
	}, nil
}
