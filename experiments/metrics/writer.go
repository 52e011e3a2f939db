package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// AgentConfig describes one contestant of an experiment.
type AgentConfig struct {
	ID         int
	Kind       string // "search" or "random"
	Goroutines int
	Depth      int
	Seed       uint64
	Prescan    bool
}

type GameRecord struct {
	Agent1 int // AgentConfig.ID playing First
	Agent2 int // AgentConfig.ID playing Second
	GameMetric
}

type MoveRecord struct {
	Game  uuid.UUID // GameMetric.ID
	Agent int       // AgentConfig.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates dir/name/<timestamp> to hold the experiment's files.
func NewWriter(dir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create directory")
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Goroutines),
			strconv.Itoa(config.Depth),
			strconv.FormatUint(config.Seed, 10),
			strconv.FormatBool(config.Prescan),
		})
	}
	header := []string{"id", "kind", "goroutines", "depth", "seed", "prescan"}
	return errors.WithMessage(w.write("agent_configs.csv", header, rows), "agent configs")
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID.String(),
			record.Game,
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.StartingPlayer.String(),
			record.Winner.String(),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	header := []string{"id", "game", "agent1", "agent2", "starting_player", "winner", "start_time", "end_time", "duration", "total_moves"}
	return errors.WithMessage(w.write("game_records.csv", header, rows), "game records")
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Game.String(),
			strconv.Itoa(record.Agent),
			strconv.Itoa(record.Step),
			record.Player.String(),
			record.Move,
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Cutoffs),
			strconv.Itoa(record.Extensions),
			strconv.FormatFloat(record.Score, 'f', -1, 64),
		})
	}
	header := []string{"game", "agent", "step", "player", "move", "duration", "nodes", "cutoffs", "extensions", "score"}
	return errors.WithMessage(w.write("move_records.csv", header, rows), "move records")
}

func (w *Writer) WriteSummaries(summaries []Summary) error {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			strconv.Itoa(s.Agent),
			strconv.Itoa(s.Games),
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Losses),
			strconv.Itoa(s.Draws),
			strconv.FormatFloat(s.MeanNodes, 'f', 2, 64),
			strconv.FormatFloat(s.StdNodes, 'f', 2, 64),
			s.MeanDuration.String(),
			s.MedianDuration.String(),
		})
	}
	header := []string{"agent", "games", "wins", "losses", "draws", "mean_nodes", "std_nodes", "mean_duration", "median_duration"}
	return errors.WithMessage(w.write("summaries.csv", header, rows), "summaries")
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return errors.Wrap(err, "failed to write rows")
	}
	return nil
}
