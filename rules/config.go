package rules

import (
	"encoding/json"
	"fmt"

	"github.com/bulwark-td/bulwark-core/model"
)

// Config is the JSON authoring surface for WaveRules. It maps directly
// onto the Builder: a defaults block plus a list of scoped overrides.
//
//	{
//	  "defaults": {
//	    "count": {"start": 10, "per_wave": 2},
//	    "health": {"exp": 1.05},
//	    "damage": {"linear": {"start": 1.0, "per_wave": 0.02}},
//	    "composition": {"minion": 0.6, "zombie": 0.4},
//	    "boss_every": 10
//	  },
//	  "per_kind": {"zombie": {"health": {"exp": 1.07}}},
//	  "overrides": [
//	    {"range": [11, 20], "damage_mul": 1.1},
//	    {"wave": 17, "speed_mul": 1.8, "composition": {"minion": 0.2, "zombie": 0.8}},
//	    {"nth_boss": 3, "health_mul": 1.5},
//	    {"when": "Wave % 7 == 0 && Wave > 20", "speed_mul": 1.15}
//	  ]
//	}
type Config struct {
	Defaults  DefaultsConfig                `json:"defaults"`
	PerKind   map[model.Kind]KindRuleConfig `json:"per_kind,omitempty"`
	Overrides []OverrideConfig              `json:"overrides,omitempty"`
}

type DefaultsConfig struct {
	Count       *CountConfig           `json:"count,omitempty"`
	Health      *ScaleConfig           `json:"health,omitempty"`
	Damage      *ScaleConfig           `json:"damage,omitempty"`
	Speed       *ScaleConfig           `json:"speed,omitempty"`
	Composition map[model.Kind]float64 `json:"composition,omitempty"`
	BossEvery   *int                   `json:"boss_every,omitempty"`
}

type CountConfig struct {
	Start   int `json:"start"`
	PerWave int `json:"per_wave"`
}

// ScaleConfig encodes a StatScale as exactly one of its variants.
type ScaleConfig struct {
	Const  *float64      `json:"const,omitempty"`
	Linear *LinearConfig `json:"linear,omitempty"`
	Exp    *float64      `json:"exp,omitempty"`
}

type LinearConfig struct {
	Start   float64 `json:"start"`
	PerWave float64 `json:"per_wave"`
}

type KindRuleConfig struct {
	Health *ScaleConfig `json:"health,omitempty"`
	Damage *ScaleConfig `json:"damage,omitempty"`
	Speed  *ScaleConfig `json:"speed,omitempty"`
}

// OverrideConfig is one scoped override: exactly one selector
// (every/range/wave/nth_boss/when) plus the edit payload.
type OverrideConfig struct {
	Every   *int    `json:"every,omitempty"`
	Range   *[2]int `json:"range,omitempty"`
	Wave    *int    `json:"wave,omitempty"`
	NthBoss *int    `json:"nth_boss,omitempty"`
	When    string  `json:"when,omitempty"`

	Boss        *bool                  `json:"boss,omitempty"`
	HealthMul   *float64               `json:"health_mul,omitempty"`
	DamageMul   *float64               `json:"damage_mul,omitempty"`
	SpeedMul    *float64               `json:"speed_mul,omitempty"`
	Composition map[model.Kind]float64 `json:"composition,omitempty"`
}

// FromJSON parses a serialized Config and compiles it into a rule set.
func FromJSON(data []byte) (*WaveRules, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse wave rules config: %w", err)
	}
	return FromConfig(cfg)
}

// FromConfig maps a Config onto the Builder and builds the rule set.
func FromConfig(cfg Config) (*WaveRules, error) {
	b := NewBuilder()

	d := cfg.Defaults
	if d.Count != nil {
		b.CountLinear(d.Count.Start, d.Count.PerWave)
	}
	if s, err := optionalScale(d.Health, "defaults.health"); err != nil {
		return nil, err
	} else if s != nil {
		b.Health(s)
	}
	if s, err := optionalScale(d.Damage, "defaults.damage"); err != nil {
		return nil, err
	} else if s != nil {
		b.Damage(s)
	}
	if s, err := optionalScale(d.Speed, "defaults.speed"); err != nil {
		return nil, err
	} else if s != nil {
		b.Speed(s)
	}
	if d.Composition != nil {
		b.Composition(Weights(d.Composition))
	}
	if d.BossEvery != nil {
		b.BossEvery(*d.BossEvery)
	}

	for kind, kc := range cfg.PerKind {
		rule, err := kc.toKindRule(fmt.Sprintf("per_kind.%s", kind))
		if err != nil {
			return nil, err
		}
		b.PerKind(kind, rule)
	}

	for i, o := range cfg.Overrides {
		edit := o.toEdit()
		switch {
		case o.selectorCount() != 1:
			return nil, fmt.Errorf("override %d: need exactly one of every/range/wave/nth_boss/when", i)
		case o.Every != nil:
			b.Every(*o.Every, edit)
		case o.Range != nil:
			b.Range(o.Range[0], o.Range[1], edit)
		case o.Wave != nil:
			b.Wave(*o.Wave, edit)
		case o.NthBoss != nil:
			b.NthBoss(*o.NthBoss, edit)
		case o.When != "":
			b.When(o.When, edit)
		}
	}

	return b.Build()
}

func (o OverrideConfig) selectorCount() int {
	n := 0
	if o.Every != nil {
		n++
	}
	if o.Range != nil {
		n++
	}
	if o.Wave != nil {
		n++
	}
	if o.NthBoss != nil {
		n++
	}
	if o.When != "" {
		n++
	}
	return n
}

func (o OverrideConfig) toEdit() Edit {
	e := NewEdit()
	if o.HealthMul != nil {
		e = e.MulHealth(*o.HealthMul)
	}
	if o.DamageMul != nil {
		e = e.MulDamage(*o.DamageMul)
	}
	if o.SpeedMul != nil {
		e = e.MulSpeed(*o.SpeedMul)
	}
	if o.Boss != nil {
		e = e.SetBoss(*o.Boss)
	}
	if o.Composition != nil {
		e = e.WithComposition(Weights(o.Composition))
	}
	return e
}

func (kc KindRuleConfig) toKindRule(path string) (KindRule, error) {
	var rule KindRule
	var err error
	if rule.Health, err = optionalScale(kc.Health, path+".health"); err != nil {
		return rule, err
	}
	if rule.Damage, err = optionalScale(kc.Damage, path+".damage"); err != nil {
		return rule, err
	}
	if rule.Speed, err = optionalScale(kc.Speed, path+".speed"); err != nil {
		return rule, err
	}
	return rule, nil
}

// optionalScale resolves a ScaleConfig, insisting on exactly one
// variant. A nil config yields a nil scale (identity).
func optionalScale(sc *ScaleConfig, path string) (StatScale, error) {
	if sc == nil {
		return nil, nil
	}
	set := 0
	var out StatScale
	if sc.Const != nil {
		set++
		out = Const(*sc.Const)
	}
	if sc.Linear != nil {
		set++
		out = Linear{Start: sc.Linear.Start, PerWave: sc.Linear.PerWave}
	}
	if sc.Exp != nil {
		set++
		out = Exp{FactorPerWave: *sc.Exp}
	}
	if set != 1 {
		return nil, fmt.Errorf("%s: set exactly one of const/linear/exp", path)
	}
	return out, nil
}
