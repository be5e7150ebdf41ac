// Package combat resolves a single attack/defense exchange between two
// combatants and applies the result.
package combat

import (
	"math"

	"github.com/samdwyer/keywordfight/internal/entity"
)

// epsilon compensates floating point error at exact integer boundaries.
const epsilon = 0.000001

// AttackMultiplier returns 2^floor(max(weapon + advantage - armor) + ε).
// Every point by which the best axis beats the armor doubles the effect.
func AttackMultiplier(weapon *entity.Equipment, advantage entity.Power, armor *entity.Equipment) float64 {
	diff := weapon.Power.Add(advantage).Sub(armor.Power)
	return math.Pow(2, math.Floor(diff.Max()+epsilon))
}

// CounterattackMultiplier returns 2^floor(counter - min(armor) + ε) where
// counter is the weapon's counterattack power, or its weakest axis when it
// has none.
func CounterattackMultiplier(weapon *entity.Equipment, armor *entity.Equipment) float64 {
	counter := weapon.Power.CounterattackOr(weapon.Power.Min())
	return math.Pow(2, math.Floor(counter-armor.Power.Min()+epsilon))
}

// Resolve computes the outcome of attack against defense. It has no side
// effects: neither combatant is mutated.
//
// The sign of the keyword dot product decides the branch:
//   - positive: the defense dominates; initiative is captured and the defender
//     counterattacks with its counterattack keyword scaled by the dot product.
//   - negative: the attack lands; every field scales by the dot product and
//     doubles again while the attacker is strengthened.
//   - zero: a tie; only a shield-bearing defender captures initiative.
func Resolve(attacker, defender *entity.Combatant, attack *entity.AttackFace, defense *entity.DefenseFace) Outcome {
	attackMultiplier := AttackMultiplier(attacker.Gear.Weapon, attack.Advantage, defender.Gear.ArmorFor(attack.Target))
	counterMultiplier := CounterattackMultiplier(defender.Gear.Weapon, attacker.Gear.Armor)

	dot := attack.Effectiveness.Dot(defense.Effectiveness)
	switch {
	case dot > 0:
		failed := &FailedAttack{
			Attack:              attack,
			Defense:             defense,
			InitiativeCaptured:  true,
			CounterattackDamage: entity.Damage(defense.Effectiveness.Counterattack),
		}
		return failed.Scale(float64(dot) * counterMultiplier)

	case dot < 0:
		success := &SuccessfulAttack{
			Attack:                  attack,
			Defense:                 defense,
			Damage:                  entity.Damage(attackMultiplier * attack.Damage),
			Stun:                    ceilCount(attackMultiplier * float64(attack.Stun)),
			CounterattackResistance: attack.CounterattackResistance,
			Strengthening:           attack.Strengthen,
			Healing:                 entity.Damage(attack.Healing),
		}
		scale := float64(-dot)
		if attacker.Strengthened > 0 {
			scale *= 2
		}
		return success.Scale(scale)

	default:
		return &FailedAttack{
			Attack:             attack,
			Defense:            defense,
			InitiativeCaptured: defender.Gear.Shield != nil,
		}
	}
}
