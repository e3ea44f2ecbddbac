package rules

import (
	"testing"

	"github.com/bulwark-td/bulwark-core/model"
)

func TestNewEditIsIdentity(t *testing.T) {
	e := NewEdit()
	if e.HealthMul != 1.0 || e.DamageMul != 1.0 || e.SpeedMul != 1.0 {
		t.Errorf("identity edit = %+v, want all factors 1.0", e)
	}
	if e.Boss != nil || e.Composition != nil {
		t.Error("identity edit should leave boss and composition unset")
	}
}

func TestMergeAccumulatesFactors(t *testing.T) {
	acc := NewEdit()
	acc.merge(NewEdit().MulHealth(2.0))
	acc.merge(NewEdit().MulHealth(1.5).MulSpeed(0.5))

	if acc.HealthMul != 3.0 {
		t.Errorf("health = %v, want 3.0", acc.HealthMul)
	}
	if acc.SpeedMul != 0.5 {
		t.Errorf("speed = %v, want 0.5", acc.SpeedMul)
	}
	if acc.DamageMul != 1.0 {
		t.Errorf("damage = %v, want untouched 1.0", acc.DamageMul)
	}
}

func TestMergeLastWriteWins(t *testing.T) {
	acc := NewEdit()
	acc.merge(NewEdit().SetBoss(true).WithComposition(NewWeights().Set(model.Minion, 1)))
	acc.merge(NewEdit().SetBoss(false).WithComposition(NewWeights().Set(model.Zombie, 1)))

	if acc.Boss == nil || *acc.Boss {
		t.Error("boss flag should take the later scope's value")
	}
	if _, ok := acc.Composition[model.Zombie]; !ok {
		t.Error("composition should take the later scope's weights")
	}

	// An edit without an opinion leaves the earlier values standing.
	acc.merge(NewEdit())
	if acc.Boss == nil || acc.Composition == nil {
		t.Error("a neutral edit must not clear boss or composition")
	}
}
