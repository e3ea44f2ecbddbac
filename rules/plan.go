package rules

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/expr-lang/expr/vm"

	"github.com/bulwark-td/bulwark-core/config"
	"github.com/bulwark-td/bulwark-core/model"
)

// waveSeedStride decorrelates the per-wave random streams drawn from a
// single world seed (golden-ratio increment).
const waveSeedStride uint64 = 0x9E3779B97F4A7C15

// Fallback composition when a weight map carries no entry for a
// regular kind.
const (
	defaultMinionWeight = 0.6
	defaultZombieWeight = 0.4
	minWeightSum        = 1e-4
)

// WavePlan is the evaluated spawn decision set for one wave: the
// ordered (pre-shuffled) spawn queue, the per-kind stat multipliers,
// and the boss flag. The caller owns it.
type WavePlan struct {
	Enemies     []model.Kind
	Multipliers map[model.Kind]Multipliers
	IsBoss      bool
}

// Plan evaluates the rule set for a 1-based wave number. The shuffle
// is driven by a stream derived from seed and the wave number, so
// identical (rules, wave, seed) inputs yield identical plans.
func (r *WaveRules) Plan(wave int, tun *config.Tunables, seed uint64) *WavePlan {
	rng := rand.New(rand.NewSource(int64(seed ^ uint64(wave)*waveSeedStride)))
	return r.plan(wave, tun, rng)
}

// PlanUnseeded evaluates with fresh entropy: two calls for the same
// wave will generally order enemies differently. This is the path the
// randomization policy picks for non-deterministic play sessions.
func (r *WaveRules) PlanUnseeded(wave int, tun *config.Tunables) *WavePlan {
	return r.plan(wave, tun, nil)
}

func (r *WaveRules) plan(wave int, tun *config.Tunables, rng *rand.Rand) *WavePlan {
	isBoss := r.bossEvery > 0 && wave%r.bossEvery == 0

	// Fold matching scopes into one accumulated edit, in precedence
	// order: every, range, exact, when, then nth-boss.
	acc := NewEdit()
	for _, n := range r.every {
		if n.n != 0 && wave%n.n == 0 {
			acc.merge(n.edit)
		}
	}
	for _, n := range r.ranges {
		if wave >= n.lo && wave <= n.hi {
			acc.merge(n.edit)
		}
	}
	for _, n := range r.exact {
		if n.wave == wave {
			acc.merge(n.edit)
		}
	}

	bossIndex := 0
	if r.bossEvery > 0 {
		bossIndex = wave / r.bossEvery
	}
	if len(r.when) > 0 {
		env := WaveEnv{Wave: wave, Boss: isBoss, BossIndex: bossIndex}
		for _, n := range r.when {
			out, err := vm.Run(n.program, env)
			if err != nil {
				slog.Warn("wave condition error", "condition", n.src, "error", err)
				continue
			}
			if match, ok := out.(bool); ok && match {
				acc.merge(n.edit)
			}
		}
	}

	// Nth-boss scopes only ever apply to waves already on the boss
	// cadence; an edit may still cancel the boss for this wave.
	if isBoss {
		if acc.Boss != nil {
			isBoss = *acc.Boss
		}
		for _, n := range r.nthBoss {
			if bossIndex > 0 && n.index == bossIndex {
				acc.merge(n.edit)
			}
		}
	}

	// Per-kind multipliers: per-kind curve (global as fallback) scaled
	// by the accumulated edit, uniformly across kinds.
	multipliers := make(map[model.Kind]Multipliers, len(model.Kinds()))
	for _, kind := range model.Kinds() {
		rule, ok := r.perKind[kind]
		if !ok {
			rule = r.global
		}
		base := rule.Evaluate(wave)
		multipliers[kind] = Multipliers{
			HP:  base.HP * acc.HealthMul,
			Dmg: base.Dmg * acc.DamageMul,
			Spd: base.Spd * acc.SpeedMul,
		}
	}

	// Non-boss enemy count for the wave.
	curve := r.count
	if curve.isZero() && tun != nil {
		curve = CountCurve{Start: tun.WaveBaseEnemyCount, PerWave: tun.WaveEnemyIncrement}
	}
	count := curve.Evaluate(wave)
	if count < 0 {
		count = 0
	}

	// Split the count between the regular kinds. The first takes the
	// floored share, the second the remainder, keeping totals exact.
	// The share clamps to [0, count] so degenerate weights (negative,
	// or unnormalizable sums) degrade to a single-kind wave instead of
	// inflating the list.
	weights := r.composition
	if acc.Composition != nil {
		weights = acc.Composition
	}
	regular := model.Regular()
	norm := weights.Normalized()
	wFirst, ok := norm[regular[0]]
	if !ok {
		wFirst = defaultMinionWeight
	}
	wSecond, ok := norm[regular[1]]
	if !ok {
		wSecond = defaultZombieWeight
	}
	sum := math.Max(wFirst+wSecond, minWeightSum)
	first := int(math.Floor(wFirst / sum * float64(count)))
	if first < 0 {
		first = 0
	}
	if first > count {
		first = count
	}
	second := count - first

	enemies := make([]model.Kind, 0, count+1)
	for i := 0; i < first; i++ {
		enemies = append(enemies, regular[0])
	}
	for i := 0; i < second; i++ {
		enemies = append(enemies, regular[1])
	}

	swap := func(i, j int) { enemies[i], enemies[j] = enemies[j], enemies[i] }
	if rng != nil {
		rng.Shuffle(len(enemies), swap)
	} else {
		rand.Shuffle(len(enemies), swap)
	}

	// The boss always enters last, after the regular queue drains.
	if isBoss {
		enemies = append(enemies, model.Boss)
	}

	return &WavePlan{Enemies: enemies, Multipliers: multipliers, IsBoss: isBoss}
}
