// Package rules implements the declarative wave rule engine: an
// immutable description of how enemy count, composition, and stat
// multipliers scale over waves, with layered scoped overrides that
// evaluate in a fixed precedence order. Planning is a pure function of
// (rules, wave, seed), so the same world seed always reproduces the
// same waves.
package rules

import (
	"github.com/expr-lang/expr/vm"

	"github.com/bulwark-td/bulwark-core/model"
)

// The scoped override nodes. Each pairs a match condition with an Edit;
// Plan applies matching nodes in every, range, exact, when, then
// nth-boss order.
type everyNode struct {
	n    int
	edit Edit
}

type rangeNode struct {
	lo, hi int // inclusive
	edit   Edit
}

type exactNode struct {
	wave int
	edit Edit
}

type nthBossNode struct {
	index int // 1-based boss ordinal (wave / bossEvery)
	edit  Edit
}

type whenNode struct {
	src     string
	program *vm.Program
	edit    Edit
}

// WaveRules is the immutable, declarative rule set. Build one through
// Builder at startup; afterwards it is safe for concurrent reads from
// any system.
type WaveRules struct {
	count       CountCurve
	global      KindRule
	perKind     map[model.Kind]KindRule
	composition Weights
	bossEvery   int // 0 means no boss waves

	every   []everyNode
	ranges  []rangeNode
	exact   []exactNode
	nthBoss []nthBossNode
	when    []whenNode
}

// BossEvery returns the boss cadence (0 when boss waves are disabled).
func (r *WaveRules) BossEvery() int { return r.bossEvery }

// Default returns the reference rule set: tunables-driven linear
// count, flat stat scaling, a 60/40 minion/zombie mix, and a boss
// every 10th wave.
func Default() *WaveRules {
	r, _ := NewBuilder().Build() // nothing to compile, cannot fail
	return r
}
