package honeycomb

import "boardgames/game"

const (
	pairWeight   = 3
	threatWeight = 12
	poisonWeight = 2
	centreWeight = 1
	windowLength = winRun
)

// Evaluate scores 4-cell windows along the axes, cells where a side would
// complete an exact three (and so cannot safely play), and stone
// centrality, from p's point of view.
func Evaluate(gs game.State, p game.Player) float64 {
	s, ok := gs.(*State)
	if !ok {
		panic("unexpected state type")
	}

	score := 0
	for q := -s.radius; q <= s.radius; q++ {
		for r := -s.radius; r <= s.radius; r++ {
			h := Hex{q, r}
			if !s.Inside(h) {
				continue
			}
			for _, axis := range axes {
				score += s.window(h, axis, p)
			}
			switch s.At(h) {
			case p:
				score += centreWeight * (s.radius - h.distance())
			case p.Other():
				score -= centreWeight * (s.radius - h.distance())
			default:
				if outcome(s, h, p) == loss {
					score -= poisonWeight
				}
				if outcome(s, h, p.Other()) == loss {
					score += poisonWeight
				}
			}
		}
	}
	return float64(score)
}

// window scores the cells starting at h along axis. Mixed windows and
// windows leaving the board are worth nothing.
func (s *State) window(h, axis Hex, p game.Player) int {
	own, other := 0, 0
	for i := 0; i < windowLength; i++ {
		c := Hex{h.Q + i*axis.Q, h.R + i*axis.R}
		if !s.Inside(c) {
			return 0
		}
		switch s.At(c) {
		case p:
			own++
		case p.Other():
			other++
		}
	}
	switch {
	case own > 0 && other > 0:
		return 0
	case own == 3:
		return threatWeight
	case own == 2:
		return pairWeight
	case other == 3:
		return -threatWeight
	case other == 2:
		return -pairWeight
	default:
		return 0
	}
}
