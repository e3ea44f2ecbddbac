package model

import "fmt"

// Kind identifies an enemy archetype. The set is closed: rule maps and
// wave plans enumerate kinds explicitly instead of discovering them at
// runtime.
type Kind int

const (
	Minion Kind = iota
	Zombie
	Boss
)

// Kinds returns every known enemy kind.
func Kinds() []Kind {
	return []Kind{Minion, Zombie, Boss}
}

// Regular returns the non-boss kinds in composition split order: the
// first takes the floored weight share of a wave, the second the
// remainder.
func Regular() []Kind {
	return []Kind{Minion, Zombie}
}

func (k Kind) String() string {
	switch k {
	case Minion:
		return "minion"
	case Zombie:
		return "zombie"
	case Boss:
		return "boss"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText lets rule-set config files key composition weights and
// per-kind overrides by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "minion":
		*k = Minion
	case "zombie":
		*k = Zombie
	case "boss":
		*k = Boss
	default:
		return fmt.Errorf("unknown enemy kind %q", text)
	}
	return nil
}
