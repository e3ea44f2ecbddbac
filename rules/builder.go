package rules

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/bulwark-td/bulwark-core/model"
)

// pendingWhen holds a When scope until Build compiles its condition.
type pendingWhen struct {
	src  string
	edit Edit
}

// Builder assembles a WaveRules value. Methods chain; Build compiles
// any When conditions into expr bytecode and returns the finished,
// immutable rule set. The builder starts from the reference defaults
// and must not be reused after Build.
type Builder struct {
	rules WaveRules
	when  []pendingWhen
}

func NewBuilder() *Builder {
	return &Builder{
		rules: WaveRules{
			perKind: make(map[model.Kind]KindRule),
			composition: NewWeights().
				Set(model.Minion, defaultMinionWeight).
				Set(model.Zombie, defaultZombieWeight),
			bossEvery: 10,
		},
	}
}

// CountLinear sets the base enemy count curve: start + perWave*(wave-1).
func (b *Builder) CountLinear(start, perWave int) *Builder {
	b.rules.count = CountCurve{Start: start, PerWave: perWave}
	return b
}

// Scales sets all three global stat curves at once.
func (b *Builder) Scales(health, damage, speed StatScale) *Builder {
	b.rules.global = KindRule{Health: health, Damage: damage, Speed: speed}
	return b
}

func (b *Builder) Health(s StatScale) *Builder {
	b.rules.global.Health = s
	return b
}

func (b *Builder) Damage(s StatScale) *Builder {
	b.rules.global.Damage = s
	return b
}

func (b *Builder) Speed(s StatScale) *Builder {
	b.rules.global.Speed = s
	return b
}

// Composition sets the default composition weights, normalized at plan
// time.
func (b *Builder) Composition(w Weights) *Builder {
	b.rules.composition = w
	return b
}

// BossEvery sets the boss cadence. Zero (or negative) disables boss
// waves entirely.
func (b *Builder) BossEvery(n int) *Builder {
	if n < 0 {
		n = 0
	}
	b.rules.bossEvery = n
	return b
}

// PerKind overrides the global stat curves for one kind on all waves.
func (b *Builder) PerKind(kind model.Kind, rule KindRule) *Builder {
	b.rules.perKind[kind] = rule
	return b
}

// Every applies the edit on every wave divisible by n.
func (b *Builder) Every(n int, edit Edit) *Builder {
	b.rules.every = append(b.rules.every, everyNode{n: n, edit: edit})
	return b
}

// Range applies the edit on all waves in [lo, hi].
func (b *Builder) Range(lo, hi int, edit Edit) *Builder {
	b.rules.ranges = append(b.rules.ranges, rangeNode{lo: lo, hi: hi, edit: edit})
	return b
}

// Wave applies the edit on exactly that wave.
func (b *Builder) Wave(n int, edit Edit) *Builder {
	b.rules.exact = append(b.rules.exact, exactNode{wave: n, edit: edit})
	return b
}

// NthBoss applies the edit to the n-th boss wave (1-based boss
// ordinal). It never matches waves off the boss cadence.
func (b *Builder) NthBoss(n int, edit Edit) *Builder {
	b.rules.nthBoss = append(b.rules.nthBoss, nthBossNode{index: n, edit: edit})
	return b
}

// When applies the edit on waves where the condition evaluates true.
// The condition is an expression over WaveEnv, compiled by Build.
func (b *Builder) When(condition string, edit Edit) *Builder {
	b.when = append(b.when, pendingWhen{src: condition, edit: edit})
	return b
}

// Build compiles conditions and returns the rule set. The only failure
// mode is a condition that does not compile.
func (b *Builder) Build() (*WaveRules, error) {
	for _, w := range b.when {
		program, err := expr.Compile(w.src, expr.Env(WaveEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile wave condition %q: %w", w.src, err)
		}
		b.rules.when = append(b.rules.when, whenNode{src: w.src, program: program, edit: w.edit})
	}
	return &b.rules, nil
}
