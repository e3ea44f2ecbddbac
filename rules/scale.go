package rules

import (
	"math"

	"github.com/bulwark-td/bulwark-core/model"
)

// StatScale is a scalar curve over the 1-based wave number.
type StatScale interface {
	Evaluate(wave int) float64
}

// Const always evaluates to its value.
type Const float64

func (c Const) Evaluate(int) float64 { return float64(c) }

// Linear evaluates to Start + PerWave*(wave-1).
type Linear struct {
	Start   float64
	PerWave float64
}

func (l Linear) Evaluate(wave int) float64 {
	return l.Start + l.PerWave*float64(stepsFrom(wave))
}

// Exp evaluates to FactorPerWave^(wave-1). Wave 1 is exactly 1.0 for
// any factor; compounding starts at wave 2.
type Exp struct {
	FactorPerWave float64
}

func (e Exp) Evaluate(wave int) float64 {
	return math.Pow(e.FactorPerWave, float64(stepsFrom(wave)))
}

// stepsFrom maps a wave number to completed scaling steps. Wave 1 is
// step 0; wave 0 is never planned but clamps to 0 rather than going
// negative if a curve is probed with it.
func stepsFrom(wave int) int {
	if wave <= 1 {
		return 0
	}
	return wave - 1
}

// Multipliers is the evaluated per-stat scaling for one kind at one wave.
type Multipliers struct {
	HP  float64
	Dmg float64
	Spd float64
}

// KindRule bundles the three stat curves for a kind. A nil curve
// behaves as Const(1), so the zero value is the identity rule.
type KindRule struct {
	Health StatScale
	Damage StatScale
	Speed  StatScale
}

// Evaluate resolves the rule's curves at a wave.
func (r KindRule) Evaluate(wave int) Multipliers {
	return Multipliers{
		HP:  scaleOrOne(r.Health, wave),
		Dmg: scaleOrOne(r.Damage, wave),
		Spd: scaleOrOne(r.Speed, wave),
	}
}

func scaleOrOne(s StatScale, wave int) float64 {
	if s == nil {
		return 1.0
	}
	return s.Evaluate(wave)
}

// CountCurve gives the base (non-boss) enemy count for a wave:
// Start + PerWave*(wave-1). The zero value defers to the Tunables
// wave count settings at plan time.
type CountCurve struct {
	Start   int
	PerWave int
}

func (c CountCurve) Evaluate(wave int) int {
	return c.Start + c.PerWave*stepsFrom(wave)
}

func (c CountCurve) isZero() bool {
	return c.Start == 0 && c.PerWave == 0
}

// Weights maps enemy kinds to unnormalized composition weights.
type Weights map[model.Kind]float64

// NewWeights returns an empty weight map; chain Set to populate it.
func NewWeights() Weights { return Weights{} }

// Set assigns a weight and returns the map for chaining.
func (w Weights) Set(k model.Kind, weight float64) Weights {
	w[k] = weight
	return w
}

// Normalized divides each weight by the total. A zero or negative
// total returns the weights untouched; the composition split tolerates
// weights that do not sum to 1.
func (w Weights) Normalized() Weights {
	sum := 0.0
	for _, v := range w {
		sum += v
	}
	if sum <= 0 {
		return w
	}
	out := make(Weights, len(w))
	for k, v := range w {
		out[k] = v / sum
	}
	return out
}
