package progression

import (
	"testing"

	"github.com/bulwark-td/bulwark-core/config"
	"github.com/bulwark-td/bulwark-core/model"
	"github.com/bulwark-td/bulwark-core/rules"
)

func testTunables() *config.Tunables {
	tun := config.Default()
	tun.WaveInitialDelaySecs = 1.0
	tun.WaveIntermissionSecs = 0.5
	tun.EnemySpawnIntervalSecs = 0.2
	return tun
}

// tickUntilWaveStarted advances the controller with no alive enemies
// until a wave begins, failing the test if none does within maxTicks.
func tickUntilWaveStarted(t *testing.T, ctrl *Controller, dt float64, maxTicks int) (TickResult, int) {
	t.Helper()
	for i := 1; i <= maxTicks; i++ {
		if res := ctrl.Tick(dt, 0); res.WaveStarted {
			return res, i
		}
	}
	t.Fatalf("no wave started within %d ticks", maxTicks)
	return TickResult{}, 0
}

func TestInitialDelayThenWave1(t *testing.T) {
	tun := testTunables()
	ctrl := NewController(rules.Default(), tun, config.DefaultPolicy())

	res, ticks := tickUntilWaveStarted(t, ctrl, 0.1, 100)
	if res.WaveNumber != 1 {
		t.Errorf("first wave = %d, want 1", res.WaveNumber)
	}
	if res.BossWave {
		t.Error("wave 1 should not be a boss wave")
	}
	// 1.0s initial delay at 0.1s ticks.
	if ticks != 10 {
		t.Errorf("wave 1 started after %d ticks, want 10", ticks)
	}
	if ctrl.State.Phase != Spawning {
		t.Error("controller should be spawning after the wave starts")
	}
}

func TestSpawnCadenceAndMultipliers(t *testing.T) {
	tun := testTunables()
	ruleSet, err := rules.NewBuilder().
		Wave(1, rules.NewEdit().MulDamage(2.0)).
		Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	ctrl := NewController(ruleSet, tun, config.DefaultPolicy())
	tickUntilWaveStarted(t, ctrl, 0.1, 100)

	var spawned []SpawnOrder
	for i := 0; i < 100 && len(spawned) < ctrl.State.EnemiesToSpawn; i++ {
		res := ctrl.Tick(0.1, 1)
		spawned = append(spawned, res.Spawns...)
	}
	if len(spawned) != 10 {
		t.Fatalf("spawned %d enemies, want 10", len(spawned))
	}
	for _, order := range spawned {
		if order.Multipliers.Dmg != 2.0 {
			t.Errorf("%s spawn dmg mul = %v, want 2.0", order.Kind, order.Multipliers.Dmg)
		}
	}
}

func TestWaveClearsOnlyWhenFieldEmpty(t *testing.T) {
	tun := testTunables()
	ctrl := NewController(rules.Default(), tun, config.DefaultPolicy())
	tickUntilWaveStarted(t, ctrl, 0.1, 100)

	// Drain the queue while enemies stay alive on the field.
	for i := 0; i < 200 && ctrl.State.EnemiesSpawned < ctrl.State.EnemiesToSpawn; i++ {
		if res := ctrl.Tick(0.1, 1); res.WaveCleared {
			t.Fatal("wave cleared before the queue drained")
		}
	}
	if ctrl.State.EnemiesSpawned != ctrl.State.EnemiesToSpawn {
		t.Fatal("queue never drained")
	}

	// Queue drained but enemies still alive: no clear.
	if res := ctrl.Tick(0.1, 3); res.WaveCleared {
		t.Error("wave must not clear while enemies are alive")
	}

	res := ctrl.Tick(0.1, 0)
	if !res.WaveCleared {
		t.Fatal("wave should clear once the field is empty")
	}
	if ctrl.State.Phase != Intermission {
		t.Error("controller should be back in intermission")
	}
}

func TestIntermissionBetweenWavesUsesShortDelay(t *testing.T) {
	tun := testTunables()
	ctrl := NewController(rules.Default(), tun, config.DefaultPolicy())
	tickUntilWaveStarted(t, ctrl, 0.1, 100)

	// Let the whole wave play out with nothing surviving.
	for i := 0; i < 500; i++ {
		if res := ctrl.Tick(0.1, 0); res.WaveCleared {
			break
		}
	}

	res, ticks := tickUntilWaveStarted(t, ctrl, 0.1, 100)
	if res.WaveNumber != 2 {
		t.Errorf("next wave = %d, want 2", res.WaveNumber)
	}
	// 0.5s intermission at 0.1s ticks, not the 1.0s initial delay.
	if ticks != 5 {
		t.Errorf("wave 2 started after %d ticks, want 5", ticks)
	}
}

func TestBossWaveAnnouncement(t *testing.T) {
	tun := testTunables()
	ctrl := NewController(rules.Default(), tun, config.DefaultPolicy())

	for wave := 1; wave <= 10; wave++ {
		res, _ := tickUntilWaveStarted(t, ctrl, 0.1, 1000)
		if res.WaveNumber != wave {
			t.Fatalf("started wave %d, want %d", res.WaveNumber, wave)
		}
		if wantBoss := wave == 10; res.BossWave != wantBoss {
			t.Errorf("wave %d boss flag = %v, want %v", wave, res.BossWave, wantBoss)
		}
		for i := 0; i < 2000; i++ {
			if ctrl.Tick(0.1, 0).WaveCleared {
				break
			}
		}
	}

	// The final spawn of the boss wave was the boss itself.
	if last := ctrl.State.Plan.Enemies[len(ctrl.State.Plan.Enemies)-1]; last != model.Boss {
		t.Errorf("wave 10 final spawn = %s, want boss", last)
	}
}
