// Package config holds the runtime tuning surface for the wave engine.
// Tunables are owned by the larger game configuration; the wave systems
// only ever read them.
package config

// DefaultWorldSeed is the reference seed for deterministic runs.
const DefaultWorldSeed uint64 = 0xC0FFEE

// Tunables control wave pacing and sizing without touching system code.
type Tunables struct {
	// Seconds before the first wave begins.
	WaveInitialDelaySecs float64
	// Seconds between waves after the first.
	WaveIntermissionSecs float64
	// Seconds between enemy spawns while a wave is active.
	EnemySpawnIntervalSecs float64
	// Base number of enemies spawned during the first wave.
	WaveBaseEnemyCount int
	// Additional enemies added per wave.
	WaveEnemyIncrement int
	// Deterministic world seed for procedural content.
	WorldSeed uint64
}

// Default returns the reference tuning values.
func Default() *Tunables {
	return &Tunables{
		WaveInitialDelaySecs:   20.0,
		WaveIntermissionSecs:   3.0,
		EnemySpawnIntervalSecs: 1.0,
		WaveBaseEnemyCount:     10,
		WaveEnemyIncrement:     2,
		WorldSeed:              DefaultWorldSeed,
	}
}
