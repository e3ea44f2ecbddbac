package model

// BaseStats are the unscaled stats for an enemy kind. Wave plans hand
// out per-wave multipliers that the spawner applies on top of these.
type BaseStats struct {
	HP     int
	Damage int
	Speed  float64
	Size   float64
}

// Stats returns the base stat line for a kind.
func Stats(k Kind) BaseStats {
	switch k {
	case Zombie:
		return BaseStats{HP: 50, Damage: 10, Speed: 18.0, Size: 1.2}
	case Boss:
		return BaseStats{HP: 100, Damage: 50, Speed: 12.0, Size: 1.8}
	default:
		return BaseStats{HP: 30, Damage: 5, Speed: 24.0, Size: 0.8}
	}
}
