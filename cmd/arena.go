package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"boardgames/catalog"
	"boardgames/config"
	"boardgames/experiments"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const spin = 14

func Arena(cfg *config.Config) *cobra.Command {
	arena := &cobra.Command{
		Use:   "arena game",
		Short: "Run an experiment of many games between computer players",
		Long: heredoc.Doc(`arena plays a number of games for every match-up of an
			experiment, alternating the opening side, and writes the agent
			configs, game records, move records and per-agent summaries as
			CSV files under the configured output directory.

			Experiments:
			  match     --first against --second
			  depth     a random player against search depths 1 up to the
			            configured depth
			  parallel  sequential search against 2, 4 and 8 goroutines`),
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := catalog.Lookup(args[0])
			if err != nil {
				return err
			}

			settings := experiments.Settings{
				Games:     cfg.Arena.Games,
				MaxTurns:  cfg.Arena.MaxTurns,
				OutputDir: cfg.Arena.OutputDir,
			}
			if cmd.Flag("games").Changed {
				if settings.Games, err = cmd.Flags().GetInt("games"); err != nil {
					return err
				}
			}

			s := spinner.New(spinner.CharSets[spin], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
			settings.Progress = func(done, total int) {
				s.Lock()
				s.Suffix = fmt.Sprintf(" game %d of %d", done, total)
				s.Unlock()
			}
			s.Start()
			result, err := runArena(cmd, cfg, entry, settings)
			s.Stop()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "AGENT\tGAMES\tWINS\tLOSSES\tDRAWS\tMEAN NODES\tMEDIAN TIME")
			for _, sum := range result.Summaries {
				fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%.0f\t%s\n", sum.Agent, sum.Games, sum.Wins, sum.Losses, sum.Draws, sum.MeanNodes, sum.MedianDuration)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "records written to %s\n", result.Dir)
			return nil
		},
	}

	arena.Flags().StringP("experiment", "e", "match", "Experiment to run (match, depth or parallel)")
	arena.Flags().IntP("games", "n", 0, "Games per match-up, overriding the configured number")
	arena.Flags().String("first", experiments.KindSearch, "First player of a match (search or random)")
	arena.Flags().String("second", experiments.KindRandom, "Second player of a match (search or random)")
	arena.Flags().Int("depth", 0, "Search depth, overriding the configured one")
	arena.Flags().Uint64("seed", 0, "Seed for random players and search tie-breaking")

	return arena
}

func runArena(cmd *cobra.Command, cfg *config.Config, entry catalog.Entry, settings experiments.Settings) (*experiments.Result, error) {
	switch experiment := cmd.Flag("experiment").Value.String(); experiment {
	case "match":
		first, err := sideConfig(cmd, cfg, entry, "first")
		if err != nil {
			return nil, err
		}
		second, err := sideConfig(cmd, cfg, entry, "second")
		if err != nil {
			return nil, err
		}
		return experiments.RunMatch(entry, first, second, settings)
	case "depth":
		ai, err := agentConfig(cmd, cfg, entry, experiments.KindSearch)
		if err != nil {
			return nil, err
		}
		return experiments.RunDepthExperiment(entry, ai, settings)
	case "parallel":
		ai, err := agentConfig(cmd, cfg, entry, experiments.KindSearch)
		if err != nil {
			return nil, err
		}
		return experiments.RunParallelizationExperiment(entry, ai, settings)
	default:
		return nil, errors.Errorf("unknown experiment %q", experiment)
	}
}
