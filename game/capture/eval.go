package capture

import "boardgames/game"

const (
	captureWeight   = 100
	atariWeight     = 30
	selfAtariWeight = 40
	libertyWeight   = 2
)

// Evaluate scores captures, enemy groups in atari, own groups in atari and
// the liberty difference from p's point of view.
func Evaluate(gs game.State, p game.Player) float64 {
	s, ok := gs.(*State)
	if !ok {
		panic("unexpected state type")
	}

	score := captureWeight * (s.Captured(p) - s.Captured(p.Other()))
	for _, g := range s.Groups() {
		libs := len(g.Liberties)
		if g.Owner == p {
			score += libertyWeight * libs
			if libs == 1 {
				score -= selfAtariWeight
			}
		} else {
			score -= libertyWeight * libs
			if libs == 1 {
				score += atariWeight
			}
		}
	}
	return float64(score)
}
