package gamedata

import (
	"github.com/samdwyer/keywordfight/internal/entity"
)

// EffectivenessDef is the serialized form of entity.Effectiveness.
type EffectivenessDef struct {
	Block         int `json:"block,omitempty" yaml:"block,omitempty"`
	Repulse       int `json:"repulse,omitempty" yaml:"repulse,omitempty"`
	Dodge         int `json:"dodge,omitempty" yaml:"dodge,omitempty"`
	Capture       int `json:"capture,omitempty" yaml:"capture,omitempty"`
	Counterattack int `json:"counterattack,omitempty" yaml:"counterattack,omitempty"`
}

// Effectiveness converts the definition.
func (e EffectivenessDef) Effectiveness() entity.Effectiveness {
	return entity.Effectiveness{
		Block:         e.Block,
		Repulse:       e.Repulse,
		Dodge:         e.Dodge,
		Capture:       e.Capture,
		Counterattack: e.Counterattack,
	}
}

// AttackDef defines the offensive face of a fight card.
type AttackDef struct {
	Name           string           `json:"name" yaml:"name"`
	Description    string           `json:"description" yaml:"description"`
	HitDescription string           `json:"hitDescription,omitempty" yaml:"hitDescription,omitempty"` // Narrated when the attack lands
	Target         string           `json:"target" yaml:"target"`                                     // "torso", "hands", "legs" or "head"
	Advantage      PowerDef         `json:"advantage" yaml:"advantage"`                               // Added to the wielded weapon's power
	Effectiveness  EffectivenessDef `json:"effectiveness" yaml:"effectiveness"`
	Damage         float64          `json:"damage,omitempty" yaml:"damage,omitempty"`
	Stun           int              `json:"stun,omitempty" yaml:"stun,omitempty"`

	CounterattackResistance int     `json:"counterattackResistance,omitempty" yaml:"counterattackResistance,omitempty"`
	Strengthen              int     `json:"strengthen,omitempty" yaml:"strengthen,omitempty"`
	Healing                 float64 `json:"healing,omitempty" yaml:"healing,omitempty"`
}

// DefenseDef defines the defensive face of a fight card.
type DefenseDef struct {
	Name          string           `json:"name" yaml:"name"`
	Description   string           `json:"description" yaml:"description"`
	Effectiveness EffectivenessDef `json:"effectiveness" yaml:"effectiveness"`
}

// FightCardDef pairs an attack with a defense.
type FightCardDef struct {
	Attack  AttackDef  `json:"attack" yaml:"attack"`
	Defense DefenseDef `json:"defense" yaml:"defense"`
}

// FightCard converts the definition.
func (d FightCardDef) FightCard() *entity.FightCard {
	a := d.Attack
	return &entity.FightCard{
		Attack: entity.AttackFace{
			Name:                    a.Name,
			Description:             a.Description,
			HitDescription:          a.HitDescription,
			Target:                  entity.ParseTarget(a.Target),
			Advantage:               a.Advantage.Power(),
			Effectiveness:           a.Effectiveness.Effectiveness(),
			Damage:                  a.Damage,
			Stun:                    a.Stun,
			CounterattackResistance: a.CounterattackResistance,
			Strengthen:              a.Strengthen,
			Healing:                 a.Healing,
		},
		Defense: entity.DefenseFace{
			Name:          d.Defense.Name,
			Description:   d.Defense.Description,
			Effectiveness: d.Defense.Effectiveness.Effectiveness(),
		},
	}
}
