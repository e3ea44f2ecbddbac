package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/bulwark-td/bulwark-core/config"
	"github.com/bulwark-td/bulwark-core/model"
	"github.com/bulwark-td/bulwark-core/progression"
	"github.com/bulwark-td/bulwark-core/rules"
)

const banner = `
██████╗ ██╗   ██╗██╗     ██╗    ██╗ █████╗ ██████╗ ██╗  ██╗
██╔══██╗██║   ██║██║     ██║    ██║██╔══██╗██╔══██╗██║ ██╔╝
██████╔╝██║   ██║██║     ██║ █╗ ██║███████║██████╔╝█████╔╝
██╔══██╗██║   ██║██║     ██║███╗██║██╔══██║██╔══██╗██╔═██╗
██████╔╝╚██████╔╝███████╗╚███╔███╔╝██║  ██║██║  ██║██║  ██╗
╚═════╝  ╚═════╝ ╚══════╝ ╚══╝╚══╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝

Deterministic Wave Planning`

// The simulation stands in for the combat collaborator: every spawned
// enemy simply lives for a fixed time, which is enough to exercise the
// queue-drained-and-field-empty clear condition.
const (
	tickSecs          = 0.1
	enemyLifetimeSecs = 2.0
)

func main() {
	waves := flag.Int("waves", 12, "number of waves to simulate")
	seed := flag.Uint64("seed", config.DefaultWorldSeed, "world seed")
	unseeded := flag.Bool("unseeded", false, "plan wave composition from fresh entropy")
	verbose := flag.Bool("v", false, "log individual spawns")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	fmt.Println(banner)

	ruleSet, err := demoRules()
	if err != nil {
		slog.Error("failed to build wave rules", "error", err)
		os.Exit(1)
	}

	tun := config.Default()
	// Short pacing so the sim is quick to read.
	tun.WaveInitialDelaySecs = 1.0
	tun.WaveIntermissionSecs = 0.5
	tun.EnemySpawnIntervalSecs = 0.2
	tun.WorldSeed = *seed

	printSchedule(ruleSet, tun, *seed, *waves)

	policy := config.DefaultPolicy()
	policy.WaveCompositionSeeded = !*unseeded
	run(progression.NewController(ruleSet, tun, policy), *waves)
}

// demoRules layers one override of each scope kind on top of the
// reference defaults.
func demoRules() (*rules.WaveRules, error) {
	return rules.NewBuilder().
		Health(rules.Exp{FactorPerWave: 1.05}).
		Damage(rules.Linear{Start: 1.0, PerWave: 0.02}).
		PerKind(model.Zombie, rules.KindRule{Health: rules.Exp{FactorPerWave: 1.07}}).
		Range(11, 20, rules.NewEdit().MulDamage(1.1)).
		Wave(17, rules.NewEdit().
			MulSpeed(1.8).
			WithComposition(rules.NewWeights().
				Set(model.Minion, 0.2).
				Set(model.Zombie, 0.8))).
		NthBoss(3, rules.NewEdit().MulHealth(1.5)).
		When("Wave % 7 == 0 && Wave > 20", rules.NewEdit().MulSpeed(1.15)).
		Build()
}

func printSchedule(r *rules.WaveRules, tun *config.Tunables, seed uint64, waves int) {
	schedule := rules.Precompute(waves, r, tun, seed)
	for i, plan := range schedule.Plans {
		mix := make(map[model.Kind]int)
		for _, k := range plan.Enemies {
			mix[k]++
		}
		slog.Info("scheduled wave",
			"wave", i+1,
			"enemies", len(plan.Enemies),
			"minions", mix[model.Minion],
			"zombies", mix[model.Zombie],
			"boss", plan.IsBoss,
			"zombieHP", fmt.Sprintf("%.2f", plan.Multipliers[model.Zombie].HP),
		)
	}
}

func run(ctrl *progression.Controller, waves int) {
	// Remaining lifetimes of the fake alive enemies.
	var alive []float64

	for {
		next := alive[:0]
		for _, t := range alive {
			if t -= tickSecs; t > 0 {
				next = append(next, t)
			}
		}
		alive = next

		res := ctrl.Tick(tickSecs, len(alive))
		for _, order := range res.Spawns {
			alive = append(alive, enemyLifetimeSecs)
			slog.Debug("spawned",
				"kind", order.Kind.String(),
				"hpMul", fmt.Sprintf("%.2f", order.Multipliers.HP),
				"dmgMul", fmt.Sprintf("%.2f", order.Multipliers.Dmg),
			)
		}
		if res.WaveCleared && ctrl.State.CurrentWave >= waves {
			slog.Info("simulation complete", "waves", ctrl.State.CurrentWave)
			return
		}
	}
}
