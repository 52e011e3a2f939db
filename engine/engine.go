package engine

import (
	"sync"

	"boardgames/game"

	"github.com/pkg/errors"
)

var (
	ErrGameOver    = errors.New("game is over")
	ErrNotYourTurn = errors.New("not your turn")
	ErrIllegalMove = errors.New("illegal move")
)

// Update is published for every move an Engine accepts.
type Update struct {
	Step  int
	Move  game.Move
	State game.State
	Hash  game.StateHash
}

// UpdateGetter returns the next update not yet seen by its caller, or false
// when there is none yet.
type UpdateGetter func() (Update, bool)

// Validate reports whether sender may play move in state: the game must
// still be running, sender must be the side to move, and move must be one of
// sender's legal moves.
func Validate(state game.State, sender game.Player, move game.Move) error {
	if state.Winner() != game.Nobody {
		return ErrGameOver
	}
	if !sender.IsSide() || sender != state.Player() {
		return errors.Wrapf(ErrNotYourTurn, "%s sent a move while %s is to move", sender, state.Player())
	}
	if move == nil || !game.Contains(state.LegalMoves(sender), move) {
		return errors.Wrapf(ErrIllegalMove, "%v", move)
	}
	return nil
}

// Engine owns one game instance and applies the moves sent to it one at a
// time.
type Engine struct {
	mu      sync.Mutex
	state   game.State
	updates []Update
}

func NewEngine(state game.State) *Engine {
	return &Engine{state: state}
}

func (e *Engine) State() game.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Play validates move and applies it for sender.
func (e *Engine) Play(sender game.Player, move game.Move) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := Validate(e.state, sender, move); err != nil {
		return err
	}
	e.state = e.state.Play(move)
	e.updates = append(e.updates, Update{
		Step:  len(e.updates) + 1,
		Move:  move,
		State: e.state,
		Hash:  e.state.Hash(),
	})
	return nil
}

// Follow returns a getter that walks the accepted moves in order, starting
// with the first one.
func (e *Engine) Follow() UpdateGetter {
	next := 0
	return func() (Update, bool) {
		e.mu.Lock()
		defer e.mu.Unlock()
		if next >= len(e.updates) {
			return Update{}, false
		}
		next++
		return e.updates[next-1], true
	}
}
