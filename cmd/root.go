package cmd

import (
	"boardgames/config"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func Root() *cobra.Command {
	cfg := &config.Config{}

	root := &cobra.Command{
		Use:   "boardgames",
		Short: "Board game rules and alpha-beta players",
		Long: heredoc.Doc(`boardgames plays two-player board games between computer
			players and measures them against each other.

			Settings are read from $XDG_CONFIG_HOME/boardgames/config.yaml
			when it exists, or from the file given with --config.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := load(cmd)
			if err != nil {
				return err
			}
			*cfg = *loaded

			if cmd.Flag("log-level").Changed {
				cfg.LogLevel = cmd.Flag("log-level").Value.String()
				if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
					return errors.Wrap(err, "invalid --log-level")
				}
			}
			zerolog.SetGlobalLevel(cfg.Level())
			return nil
		},
	}

	// global flags
	root.PersistentFlags().String("config", "", "Read settings from this file")
	root.PersistentFlags().String("log-level", "info", "Log level (trace, debug, info, warn, error)")

	root.AddCommand(Games())
	root.AddCommand(Play(cfg))
	root.AddCommand(Arena(cfg))
	root.AddCommand(Config(cfg))

	return root
}

func load(cmd *cobra.Command) (*config.Config, error) {
	if path := cmd.Flag("config").Value.String(); path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
