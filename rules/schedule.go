package rules

import "github.com/bulwark-td/bulwark-core/config"

// Schedule holds precomputed plans for waves 1..N, letting balancing
// tools and UI inspect an entire run up front. Plans[i] is wave i+1.
type Schedule struct {
	Plans []*WavePlan
}

// Precompute evaluates every wave in 1..=maxWaves with the given seed.
func Precompute(maxWaves int, r *WaveRules, tun *config.Tunables, seed uint64) *Schedule {
	plans := make([]*WavePlan, 0, maxWaves)
	for w := 1; w <= maxWaves; w++ {
		plans = append(plans, r.Plan(w, tun, seed))
	}
	return &Schedule{Plans: plans}
}
