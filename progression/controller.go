package progression

import (
	"log/slog"

	"github.com/bulwark-td/bulwark-core/config"
	"github.com/bulwark-td/bulwark-core/model"
	"github.com/bulwark-td/bulwark-core/rules"
)

// SpawnOrder tells the spawn collaborator what to instantiate: the
// kind plus the active plan's stat multipliers for this wave.
type SpawnOrder struct {
	Kind        model.Kind
	Multipliers rules.Multipliers
}

// TickResult reports what one controller tick decided.
type TickResult struct {
	// WaveStarted is set on the tick a new wave begins; WaveNumber and
	// BossWave describe it.
	WaveStarted bool
	WaveNumber  int
	BossWave    bool

	// Spawns are the enemies due this tick, in queue order.
	Spawns []SpawnOrder

	// WaveCleared is set on the tick the run returns to intermission.
	WaveCleared bool
}

// Controller drives WaveState from frame deltas. It is the single
// writer of the state; collaborators act on the returned TickResult.
type Controller struct {
	Rules    *rules.WaveRules
	Tunables *config.Tunables
	Policy   config.RandomizationPolicy
	State    *WaveState
}

func NewController(r *rules.WaveRules, tun *config.Tunables, policy config.RandomizationPolicy) *Controller {
	return &Controller{
		Rules:    r,
		Tunables: tun,
		Policy:   policy,
		State:    New(tun),
	}
}

// Tick advances progression by dt seconds. aliveEnemies is the live
// enemy entity count reported by the combat collaborator; a wave only
// clears when every enemy has been dispatched from the queue AND the
// field is empty.
func (c *Controller) Tick(dt float64, aliveEnemies int) TickResult {
	var res TickResult
	s := c.State

	switch s.Phase {
	case Intermission:
		target := c.Tunables.WaveIntermissionSecs
		if s.CurrentWave == 0 {
			target = c.Tunables.WaveInitialDelaySecs
		}
		if s.IntermissionTimer.Duration() != target {
			s.IntermissionTimer.SetDuration(target)
		}

		s.IntermissionTimer.Tick(dt)
		if s.IntermissionTimer.JustFinished() {
			plan := s.StartNextWave(c.Rules, c.Tunables, c.Tunables.WorldSeed, c.Policy.WaveCompositionSeeded)
			res.WaveStarted = true
			res.WaveNumber = s.CurrentWave
			res.BossWave = plan.IsBoss
			slog.Info("wave started",
				"wave", s.CurrentWave,
				"enemies", s.EnemiesToSpawn,
				"boss", plan.IsBoss,
			)
		}

	case Spawning:
		if s.EnemiesSpawned < s.EnemiesToSpawn {
			s.SpawnTimer.Tick(dt)
			for i := 0; i < s.SpawnTimer.Completions(); i++ {
				kind, ok := s.DequeueSpawn()
				if !ok {
					break
				}
				res.Spawns = append(res.Spawns, SpawnOrder{
					Kind:        kind,
					Multipliers: s.Plan.Multipliers[kind],
				})
			}
		} else if aliveEnemies == 0 {
			s.StartIntermission(c.Tunables.WaveIntermissionSecs)
			res.WaveCleared = true
			slog.Info("wave cleared", "wave", s.CurrentWave)
		}
	}

	return res
}
