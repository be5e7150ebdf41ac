package combat

import (
	"fmt"
	"math"

	"github.com/samdwyer/keywordfight/internal/entity"
)

// Outcome is the result of one attack/defense pairing. The variants are
// *SuccessfulAttack and *FailedAttack; callers switch over them exhaustively.
type Outcome interface {
	// Faces returns the attack and defense that produced the outcome.
	Faces() (*entity.AttackFace, *entity.DefenseFace)
	isOutcome()
}

// SuccessfulAttack is produced when the attack dominates the defense.
type SuccessfulAttack struct {
	Attack  *entity.AttackFace
	Defense *entity.DefenseFace

	Damage                  entity.Damage
	Stun                    int
	CounterattackResistance int
	Strengthening           int
	Healing                 entity.Damage
}

// Faces implements Outcome.
func (o *SuccessfulAttack) Faces() (*entity.AttackFace, *entity.DefenseFace) {
	return o.Attack, o.Defense
}

func (*SuccessfulAttack) isOutcome() {}

// Scale multiplies every numeric field. Integer fields are rounded up, with
// epsilon absorbing floating point error at exact boundaries.
func (o *SuccessfulAttack) Scale(multiplier float64) *SuccessfulAttack {
	scaled := *o
	scaled.Damage = o.Damage.Scale(multiplier)
	scaled.Stun = ceilCount(float64(o.Stun) * multiplier)
	scaled.CounterattackResistance = ceilCount(float64(o.CounterattackResistance) * multiplier)
	scaled.Strengthening = ceilCount(float64(o.Strengthening) * multiplier)
	scaled.Healing = o.Healing.Scale(multiplier)
	return &scaled
}

// String renders the numeric fields for diagnostics.
func (o *SuccessfulAttack) String() string {
	return fmt.Sprintf("SuccessfulAttack{attack=%q defense=%q damage=%v stun=%d resistance=%d strengthening=%d healing=%v}",
		o.Attack.Name, o.Defense.Name, float64(o.Damage), o.Stun, o.CounterattackResistance, o.Strengthening, float64(o.Healing))
}

// FailedAttack is produced when the defense holds.
type FailedAttack struct {
	Attack  *entity.AttackFace
	Defense *entity.DefenseFace

	InitiativeCaptured  bool
	CounterattackDamage entity.Damage
}

// Faces implements Outcome.
func (o *FailedAttack) Faces() (*entity.AttackFace, *entity.DefenseFace) {
	return o.Attack, o.Defense
}

func (*FailedAttack) isOutcome() {}

// Scale multiplies the counterattack damage.
func (o *FailedAttack) Scale(multiplier float64) *FailedAttack {
	scaled := *o
	scaled.CounterattackDamage = o.CounterattackDamage.Scale(multiplier)
	return &scaled
}

// String renders the numeric fields for diagnostics.
func (o *FailedAttack) String() string {
	return fmt.Sprintf("FailedAttack{attack=%q defense=%q initiative_captured=%t counterattack_damage=%v}",
		o.Attack.Name, o.Defense.Name, o.InitiativeCaptured, float64(o.CounterattackDamage))
}

func ceilCount(v float64) int {
	return int(math.Ceil(v - epsilon))
}
