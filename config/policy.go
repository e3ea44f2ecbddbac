package config

// RandomizationPolicy centralizes which systems run seeded
// (reproducible) versus from fresh entropy each run.
type RandomizationPolicy struct {
	// Whether wave composition (mix and order of enemies) is seeded.
	WaveCompositionSeeded bool
}

// DefaultPolicy seeds everything, giving fully reproducible runs.
func DefaultPolicy() RandomizationPolicy {
	return RandomizationPolicy{WaveCompositionSeeded: true}
}
