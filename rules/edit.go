package rules

import "math"

// Edit is an override fragment applied by matching rule scopes. The
// scalar factors are multiplicative with identity 1; Boss and
// Composition are last-write-wins when several scopes match one wave.
// The zero value is not the identity (its factors multiply by 0);
// always start from NewEdit.
type Edit struct {
	Boss        *bool
	HealthMul   float64
	DamageMul   float64
	SpeedMul    float64
	Composition Weights
}

// NewEdit returns the identity edit. Chain the Mul/Set methods to
// describe an override.
func NewEdit() Edit {
	return Edit{HealthMul: 1.0, DamageMul: 1.0, SpeedMul: 1.0}
}

func (e Edit) MulHealth(f float64) Edit {
	e.HealthMul *= f
	return e
}

func (e Edit) MulDamage(f float64) Edit {
	e.DamageMul *= f
	return e
}

func (e Edit) MulSpeed(f float64) Edit {
	e.SpeedMul *= f
	return e
}

// SetBoss forces the boss flag for waves the scope matches. Only boss
// cadence waves consult it, so it can cancel a scheduled boss but not
// conjure one on an off-cadence wave.
func (e Edit) SetBoss(b bool) Edit {
	e.Boss = &b
	return e
}

// WithComposition replaces the wave's composition weights.
func (e Edit) WithComposition(w Weights) Edit {
	e.Composition = w
	return e
}

// merge folds another edit into the accumulator. Factors multiply and
// are clamped at zero so a negative multiplier can never flip a stat's
// sign.
func (e *Edit) merge(o Edit) {
	e.HealthMul *= math.Max(o.HealthMul, 0)
	e.DamageMul *= math.Max(o.DamageMul, 0)
	e.SpeedMul *= math.Max(o.SpeedMul, 0)
	if o.Boss != nil {
		b := *o.Boss
		e.Boss = &b
	}
	if o.Composition != nil {
		e.Composition = o.Composition
	}
}
