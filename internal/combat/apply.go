package combat

import (
	"fmt"

	"github.com/samdwyer/keywordfight/internal/entity"
)

// Apply mutates both combatants according to outcome and returns the outcome
// as it was actually applied (stun converted to damage, captures cancelled by
// a shaken-off stun, counterattacks absorbed by resistance, healing capped by
// the wounds held).
//
// The returned error only reports an outcome variant Apply does not know; in
// that case nothing has been mutated.
func Apply(outcome Outcome, attacker, defender *entity.Combatant, deck *entity.Deck[*entity.FightCard]) (Outcome, error) {
	switch o := outcome.(type) {
	case *SuccessfulAttack:
		applied := absorbHit(o, defender, deck)
		return grantAttacker(applied, attacker), nil
	case *FailedAttack:
		if !o.InitiativeCaptured {
			return o, nil
		}
		applied := holdGround(o, defender)
		return punishAttacker(applied, attacker, deck), nil
	default:
		return nil, fmt.Errorf("apply outcome: unsupported variant %T", outcome)
	}
}

// absorbHit applies damage and stun to the defender. A stun beyond the first
// point, or any stun against an already stunned defender, becomes flat damage.
func absorbHit(o *SuccessfulAttack, defender *entity.Combatant, deck *entity.Deck[*entity.FightCard]) *SuccessfulAttack {
	applied := *o
	stunned := defender.IsStunned()

	kept := 0
	if o.Stun > 0 && !stunned {
		kept = 1
	}
	if extra := o.Stun - kept; extra > 0 {
		applied.Damage += entity.Damage(extra)
	}
	applied.Stun = kept

	if applied.Stun > 0 {
		defender.Hand.AddStun()
	}
	defender.TakeDamage(applied.Damage, deck)
	return &applied
}

// grantAttacker applies the attacker's self-grants. The new grant both extends
// the buff and consumes this turn's tick of decay.
func grantAttacker(o *SuccessfulAttack, attacker *entity.Combatant) *SuccessfulAttack {
	applied := *o
	attacker.Strengthened = max(0, attacker.Strengthened+o.Strengthening-1)
	attacker.CounterattackResistance = max(0, attacker.CounterattackResistance+o.CounterattackResistance-1)
	applied.Healing = attacker.Hand.Heal(o.Healing)
	return &applied
}

// holdGround lets a stunned defender spend its stun card instead of taking
// the initiative.
func holdGround(o *FailedAttack, defender *entity.Combatant) *FailedAttack {
	applied := *o
	if defender.Hand.TryRemoveStun() {
		applied.InitiativeCaptured = false
		applied.CounterattackDamage = 0
		return &applied
	}
	defender.HasInitiative = true
	return &applied
}

// punishAttacker applies counterattack damage and the loss of initiative.
// Losing initiative clears the buffs; otherwise they decay by one.
func punishAttacker(o *FailedAttack, attacker *entity.Combatant, deck *entity.Deck[*entity.FightCard]) *FailedAttack {
	applied := *o
	if attacker.CounterattackResistance > 0 {
		applied.CounterattackDamage = 0
	}
	attacker.TakeDamage(applied.CounterattackDamage, deck)

	if applied.InitiativeCaptured {
		attacker.HasInitiative = false
		attacker.Strengthened = 0
		attacker.CounterattackResistance = 0
		return &applied
	}
	attacker.Strengthened = max(0, attacker.Strengthened-1)
	attacker.CounterattackResistance = max(0, attacker.CounterattackResistance-1)
	return &applied
}
