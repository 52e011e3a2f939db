package game

// Player identifies a side. Nobody and Draw only appear as winners.
type Player int8

const (
	Nobody Player = iota
	First
	Second
	Draw
)

// Other returns the opponent of p. Nobody and Draw have no opponent.
func (p Player) Other() Player {
	switch p {
	case First:
		return Second
	case Second:
		return First
	default:
		return p
	}
}

func (p Player) String() string {
	switch p {
	case First:
		return "first"
	case Second:
		return "second"
	case Draw:
		return "draw"
	default:
		return "nobody"
	}
}

// IsSide reports whether p is one of the two sides.
func (p Player) IsSide() bool {
	return p == First || p == Second
}
