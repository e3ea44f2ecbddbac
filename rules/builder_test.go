package rules

import (
	"strings"
	"testing"

	"github.com/bulwark-td/bulwark-core/config"
	"github.com/bulwark-td/bulwark-core/model"
)

func TestBuilderDefaults(t *testing.T) {
	r := mustBuild(t, NewBuilder())
	if r.BossEvery() != 10 {
		t.Errorf("default boss cadence = %d, want 10", r.BossEvery())
	}

	tun := config.Default()
	plan := r.Plan(1, tun, 1)
	counts := kindCounts(plan.Enemies)
	// 10 enemies at the default 60/40 mix.
	if counts[model.Minion] != 6 || counts[model.Zombie] != 4 {
		t.Errorf("wave 1 mix = %v, want 6 minions / 4 zombies", counts)
	}
	for _, kind := range model.Kinds() {
		m := plan.Multipliers[kind]
		if m.HP != 1.0 || m.Dmg != 1.0 || m.Spd != 1.0 {
			t.Errorf("%s multipliers = %+v, want identity", kind, m)
		}
	}
}

func TestBuilderNegativeBossCadenceDisables(t *testing.T) {
	r := mustBuild(t, NewBuilder().BossEvery(-5))
	if r.BossEvery() != 0 {
		t.Errorf("BossEvery(-5) stored %d, want 0", r.BossEvery())
	}
}

func TestBuildRejectsBadCondition(t *testing.T) {
	_, err := NewBuilder().When("Wave ++ 2", NewEdit()).Build()
	if err == nil {
		t.Fatal("expected a compile error for a malformed condition")
	}
	if !strings.Contains(err.Error(), "compile wave condition") {
		t.Errorf("error %q should name the failing condition", err)
	}
}

func TestBuildRejectsNonBoolCondition(t *testing.T) {
	if _, err := NewBuilder().When("Wave + 1", NewEdit()).Build(); err == nil {
		t.Fatal("expected a compile error for a non-boolean condition")
	}
}
