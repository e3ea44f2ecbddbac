package progression

import (
	"slices"

	"github.com/bulwark-td/bulwark-core/config"
	"github.com/bulwark-td/bulwark-core/model"
	"github.com/bulwark-td/bulwark-core/rules"
)

// Phase is the wave progression phase.
type Phase int

const (
	Intermission Phase = iota
	Spawning
)

func (p Phase) String() string {
	if p == Spawning {
		return "spawning"
	}
	return "intermission"
}

// WaveState is the live progression state for one run. It is created
// once at game start and mutated in place on wave transitions; a full
// restart is the only reset mechanism. Single writer (the controller),
// read by the spawn collaborator each tick.
type WaveState struct {
	CurrentWave int
	Phase       Phase

	IntermissionTimer *Timer
	SpawnTimer        *Timer

	EnemiesToSpawn int
	EnemiesSpawned int
	SpawnQueue     []model.Kind

	// Plan is the active wave's evaluated plan, kept for multiplier
	// lookup by whoever instantiates enemies.
	Plan *rules.WavePlan
}

// New starts in intermission before wave 1, counting down the initial
// delay.
func New(tun *config.Tunables) *WaveState {
	return &WaveState{
		CurrentWave:       0,
		Phase:             Intermission,
		IntermissionTimer: NewTimer(tun.WaveInitialDelaySecs, Once),
		SpawnTimer:        NewTimer(tun.EnemySpawnIntervalSecs, Repeating),
	}
}

// StartNextWave advances to the next wave: evaluates a fresh plan,
// replaces the spawn queue with its enemy list, and restarts the spawn
// timer. When seeded is false the plan uses fresh entropy.
func (s *WaveState) StartNextWave(r *rules.WaveRules, tun *config.Tunables, seed uint64, seeded bool) *rules.WavePlan {
	s.CurrentWave++
	s.Phase = Spawning

	var plan *rules.WavePlan
	if seeded {
		plan = r.Plan(s.CurrentWave, tun, seed)
	} else {
		plan = r.PlanUnseeded(s.CurrentWave, tun)
	}
	s.Plan = plan
	s.SpawnQueue = slices.Clone(plan.Enemies)
	s.EnemiesToSpawn = len(plan.Enemies)
	s.EnemiesSpawned = 0

	s.SpawnTimer.SetDuration(tun.EnemySpawnIntervalSecs)
	s.SpawnTimer.Reset()
	return plan
}

// StartIntermission switches back to the countdown phase with the
// given duration.
func (s *WaveState) StartIntermission(durationSecs float64) {
	s.Phase = Intermission
	s.IntermissionTimer.SetDuration(durationSecs)
	s.IntermissionTimer.Reset()
}

// DequeueSpawn pops the next kind to instantiate. The contract for the
// spawn collaborator: dequeue front, spawn, repeat until false. The
// spawned count tracks dequeues, so len(SpawnQueue) always equals
// EnemiesToSpawn - EnemiesSpawned.
func (s *WaveState) DequeueSpawn() (model.Kind, bool) {
	if len(s.SpawnQueue) == 0 {
		return 0, false
	}
	kind := s.SpawnQueue[0]
	s.SpawnQueue = s.SpawnQueue[1:]
	s.EnemiesSpawned++
	return kind, true
}

// UpcomingWaveNumber is what the HUD shows: during intermission the
// wave about to start, during spawning the wave in flight.
func (s *WaveState) UpcomingWaveNumber() int {
	if s.Phase == Intermission {
		return s.CurrentWave + 1
	}
	if s.CurrentWave < 1 {
		return 1
	}
	return s.CurrentWave
}

// RemainingIntermissionSecs returns the countdown left before the next
// wave starts.
func (s *WaveState) RemainingIntermissionSecs() float64 {
	return s.IntermissionTimer.Remaining()
}
