package rules

// WaveEnv is the expression environment for When scopes. Fields and
// methods are addressable from compiled conditions, e.g.
// `Wave % 7 == 0 && Wave > 20` or `Boss && BossIndex >= 3`.
type WaveEnv struct {
	// Wave is the 1-based wave number being planned.
	Wave int
	// Boss reports whether the wave lands on the boss cadence, before
	// any override has had a say.
	Boss bool
	// BossIndex is wave / boss cadence (0 when there is no cadence).
	BossIndex int
}

// Every reports whether the wave lands on an every-n cadence.
func (e WaveEnv) Every(n int) bool {
	return n > 0 && e.Wave%n == 0
}

// Between reports whether the wave is inside the inclusive range.
func (e WaveEnv) Between(lo, hi int) bool {
	return e.Wave >= lo && e.Wave <= hi
}
