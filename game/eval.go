package game

// Sign returns 1 when owner is p, -1 when owner is p's opponent and 0
// otherwise.
func Sign(p, owner Player) float64 {
	switch {
	case !owner.IsSide():
		return 0
	case owner == p:
		return 1
	default:
		return -1
	}
}
