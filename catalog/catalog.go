package catalog

import (
	"sort"

	"boardgames/game"
	"boardgames/game/capture"
	"boardgames/game/checkers"
	"boardgames/game/chess"
	"boardgames/game/connectfour"
	"boardgames/game/honeycomb"
	"boardgames/game/mancala"
	"boardgames/game/reversi"

	"github.com/pkg/errors"
)

var ErrUnknownGame = errors.New("unknown game")

// Entry describes one playable game.
type Entry struct {
	Name        string
	Description string
	New         func() game.State
	Evaluate    game.Evaluate
	// Depth is a search depth that answers within a second or so on a laptop
	Depth int
	// Prescan plays immediate wins and blocks before searching
	Prescan bool
}

var entries = []Entry{
	{
		Name:        "capture",
		Description: "Go-like placement game, the first capture wins",
		New:         func() game.State { return capture.New(capture.DefaultSize, capture.DefaultGoal) },
		Evaluate:    capture.Evaluate,
		Depth:       3,
	},
	{
		Name:        "checkers",
		Description: "8x8 draughts with forced and chained captures",
		New:         func() game.State { return checkers.New(checkers.DefaultSize) },
		Evaluate:    checkers.Evaluate,
		Depth:       6,
	},
	{
		Name:        "chess",
		Description: "Chess without castling or en passant, promotion to queen",
		New:         func() game.State { return chess.New() },
		Evaluate:    chess.Evaluate,
		Depth:       3,
	},
	{
		Name:        "connectfour",
		Description: "Drop discs in a 6x7 grid, four in a row wins",
		New:         func() game.State { return connectfour.New() },
		Evaluate:    connectfour.Evaluate,
		Depth:       6,
		Prescan:     true,
	},
	{
		Name:        "honeycomb",
		Description: "Hex board, four in a row wins and exactly three loses",
		New:         func() game.State { return honeycomb.New(honeycomb.DefaultRadius) },
		Evaluate:    honeycomb.Evaluate,
		Depth:       3,
	},
	{
		Name:        "mancala",
		Description: "Kalah with six pits of four seeds",
		New:         func() game.State { return mancala.New(mancala.DefaultPits, mancala.DefaultSeeds) },
		Evaluate:    mancala.Evaluate,
		Depth:       6,
	},
	{
		Name:        "reversi",
		Description: "8x8 Othello",
		New:         func() game.State { return reversi.New() },
		Evaluate:    reversi.Evaluate,
		Depth:       4,
	},
}

// All returns every game ordered by name.
func All() []Entry {
	all := append([]Entry(nil), entries...)
	sort.Slice(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	})
	return all
}

func Names() []string {
	var names []string
	for _, e := range All() {
		names = append(names, e.Name)
	}
	return names
}

func Lookup(name string) (Entry, error) {
	for _, e := range entries {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, errors.Wrapf(ErrUnknownGame, "%q", name)
}
