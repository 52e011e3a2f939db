package cmd

import (
	"fmt"

	"boardgames/agent"
	"boardgames/catalog"
	"boardgames/config"
	"boardgames/engine"
	"boardgames/experiments"
	"boardgames/experiments/metrics"
	"boardgames/game"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func Play(cfg *config.Config) *cobra.Command {
	play := &cobra.Command{
		Use:   "play game",
		Short: "Play one game between two computer players",
		Long: heredoc.Doc(`play runs a single game and prints every move and the
			final position.

			Each side is either an alpha-beta "search" player using the
			configured depth for the game, or a "random" player.`),
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := catalog.Lookup(args[0])
			if err != nil {
				return err
			}
			first, err := sideConfig(cmd, cfg, entry, "first")
			if err != nil {
				return err
			}
			second, err := sideConfig(cmd, cfg, entry, "second")
			if err != nil {
				return err
			}

			agents := []agent.Agent{
				experiments.NewAgent(entry, first, 0),
				experiments.NewAgent(entry, second, 1),
			}
			l := engine.LocalEngine(entry.Name, entry.New(), agents, engine.WithMaxTurns(cfg.Arena.MaxTurns))
			winner, gameMetric, moveMetrics := l.Run()

			out := cmd.OutOrStdout()
			for _, m := range moveMetrics {
				fmt.Fprintf(out, "%3d. %-6s %-16s nodes=%d score=%.2f\n", m.Step, m.Player, m.Move, m.Nodes, m.Score)
			}
			if s, ok := l.State().(fmt.Stringer); ok {
				fmt.Fprintln(out, s.String())
			}
			fmt.Fprintf(out, "result: %s after %d moves in %s\n", describe(winner), gameMetric.TotalMoves, gameMetric.Duration)
			return nil
		},
	}

	play.Flags().String("first", experiments.KindSearch, "Player for the first side (search or random)")
	play.Flags().String("second", experiments.KindSearch, "Player for the second side (search or random)")
	play.Flags().Int("depth", 0, "Search depth, overriding the configured one")
	play.Flags().Uint64("seed", 0, "Seed for random players and search tie-breaking")

	return play
}

func describe(winner game.Player) string {
	switch winner {
	case game.First, game.Second:
		return winner.String() + " wins"
	case game.Draw:
		return "draw"
	default:
		return "unfinished"
	}
}

// sideConfig builds the agent config of one side from the config file and
// the command's flags.
func sideConfig(cmd *cobra.Command, cfg *config.Config, entry catalog.Entry, side string) (metrics.AgentConfig, error) {
	kind := cmd.Flag(side).Value.String()
	if kind != experiments.KindSearch && kind != experiments.KindRandom {
		return metrics.AgentConfig{}, errors.Errorf("--%s must be %q or %q, got %q", side, experiments.KindSearch, experiments.KindRandom, kind)
	}
	return agentConfig(cmd, cfg, entry, kind)
}

func agentConfig(cmd *cobra.Command, cfg *config.Config, entry catalog.Entry, kind string) (metrics.AgentConfig, error) {
	ai := cfg.AIFor(entry)
	ac := metrics.AgentConfig{
		Kind:       kind,
		Goroutines: ai.Goroutines,
		Depth:      ai.Depth,
		Prescan:    ai.Prescan,
	}
	if ai.Seed != nil {
		ac.Seed = *ai.Seed
	}

	depth, err := cmd.Flags().GetInt("depth")
	if err != nil {
		return ac, err
	}
	if depth < 0 {
		return ac, errors.Errorf("--depth must not be negative, got %d", depth)
	}
	if depth > 0 {
		ac.Depth = depth
	}
	if cmd.Flag("seed").Changed {
		ac.Seed, err = cmd.Flags().GetUint64("seed")
		if err != nil {
			return ac, err
		}
	}
	return ac, nil
}
