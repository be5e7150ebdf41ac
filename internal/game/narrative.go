package game

import (
	"strings"

	"golang.org/x/text/message"

	"github.com/samdwyer/keywordfight/internal/combat"
	"github.com/samdwyer/keywordfight/internal/entity"
)

// =============================================================================
// Descriptions
// =============================================================================

func targetName(p *message.Printer, t entity.Target) string {
	switch t {
	case entity.TargetHands:
		return p.Sprintf("hands")
	case entity.TargetLegs:
		return p.Sprintf("legs")
	case entity.TargetHead:
		return p.Sprintf("head")
	default:
		return p.Sprintf("torso")
	}
}

func damageTypeName(p *message.Printer, t entity.DamageType) string {
	switch t {
	case entity.DamageBludgeoning:
		return p.Sprintf("bludgeoning")
	case entity.DamagePiercing:
		return p.Sprintf("piercing")
	case entity.DamageSlashing:
		return p.Sprintf("slashing")
	case entity.DamageCounterattack:
		return p.Sprintf("counterattack")
	default:
		return "*"
	}
}

func damageTypeNames(p *message.Printer, types []entity.DamageType) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = damageTypeName(p, t)
	}
	return names
}

func equipmentName(p *message.Printer, e *entity.Equipment) string {
	switch e {
	case entity.BareHands:
		return p.Sprintf("Bare hands")
	case entity.NoArmor, entity.NoHelmet, entity.NoBracers, entity.NoGreaves:
		return p.Sprintf("Nothing")
	default:
		return e.Name
	}
}

// describeEquipment renders "Name (min, advantages)".
func describeEquipment(p *message.Printer, e *entity.Equipment) string {
	desc := p.Sprintf("%s (%v", equipmentName(p, e), e.Power.Min())
	if adv := e.Power.Advantages(); len(adv) > 0 {
		desc += ", " + strings.Join(damageTypeNames(p, adv), ", ")
	}
	return desc + ")"
}

func describeItems(p *message.Printer, items []*entity.Equipment) string {
	if len(items) == 0 {
		return p.Sprintf("nothing")
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = describeEquipment(p, item)
	}
	return strings.Join(parts, ", ")
}

// describeAttack renders "Name: Description (target, advantages [glyphs]: results)".
func describeAttack(p *message.Printer, a *entity.AttackFace) string {
	var b strings.Builder
	b.WriteString(a.Name + ": " + a.Description + " (" + targetName(p, a.Target))
	if adv := a.Advantage.Advantages(); len(adv) > 0 {
		b.WriteString(", " + strings.Join(damageTypeNames(p, adv), "/"))
	}
	b.WriteString(" [" + a.Effectiveness.Glyphs(false) + "]: ")

	var results []string
	if a.Damage > 0 {
		results = append(results, p.Sprintf("%v damage", a.Damage))
	}
	if a.Stun > 0 {
		results = append(results, p.Sprintf("stun"))
	}
	if a.CounterattackResistance > 0 {
		results = append(results, p.Sprintf("no counterattack next turn"))
	}
	if a.Strengthen > 0 {
		results = append(results, p.Sprintf("damage x2 next turn"))
	}
	if a.Healing > 0 {
		results = append(results, p.Sprintf("+%v HP", a.Healing))
	}
	b.WriteString(strings.Join(results, ", ") + ")")
	return b.String()
}

// describeAttackAgainst appends the live multiplier against the defender's
// armor at the attack's target.
func describeAttackAgainst(p *message.Printer, a *entity.AttackFace, attacker, defender *entity.Combatant) string {
	multiplier := combat.AttackMultiplier(attacker.Gear.Weapon, a.Advantage, defender.Gear.ArmorFor(a.Target))
	return describeAttack(p, a) + p.Sprintf(" [x%v]", multiplier)
}

func describeDefense(d *entity.DefenseFace) string {
	return d.Name + ": " + d.Description + " [" + d.Effectiveness.Glyphs(true) + "]"
}

// describeCombatant renders the status line: initiative marker, health and
// active conditions.
func describeCombatant(p *message.Printer, c *entity.Combatant) string {
	marker := "   "
	if c.HasInitiative {
		marker = "=> "
	}
	desc := marker + p.Sprintf("%s, %v/%d HP", c.Name, c.Health(), c.HandSize)
	if c.IsStunned() {
		desc += p.Sprintf(", stunned")
	}
	if c.CounterattackResistance > 0 {
		desc += p.Sprintf(", counterattack resistant")
	}
	if c.Strengthened > 0 {
		desc += p.Sprintf(", damage x2")
	}
	return desc
}

func describeCombatantFull(p *message.Printer, c *entity.Combatant) string {
	return describeCombatant(p, c) + ", " + describeItems(p, c.Gear.Items())
}

// =============================================================================
// Narration
// =============================================================================

func introduction(p *message.Printer, playerHasInitiative bool) string {
	intro := p.Sprintf("You and your opponent slowly close in, circling the square you find yourselves on. You raise and lower your weapons in turn, measuring each other with wary eyes.")
	if playerHasInitiative {
		return intro + " " + p.Sprintf("At last you are close enough to strike. You seize the moment that offers the most and charge at the enemy.")
	}
	return intro + " " + p.Sprintf("You do not have to wait long. The opponent leaps at you at once.")
}

func woundsPhrase(p *message.Printer, d entity.Damage) string {
	phrase := p.Sprintf("%d serious wounds", d.SeriousWounds())
	if d.LightWounds() > 0 {
		phrase += p.Sprintf(" and %d light", d.LightWounds())
	}
	return phrase
}

// narrateOutcome describes an exchange from the resolved outcome and the
// outcome as it was applied.
func narrateOutcome(p *message.Printer, attacker, defender *entity.Combatant, resolved, applied combat.Outcome) string {
	attack, defense := applied.Faces()
	parts := []string{p.Sprintf("%s attacks with %s. %s defends with %s.", attacker.Name, attack.Name, defender.Name, defense.Name)}

	switch o := applied.(type) {
	case *combat.SuccessfulAttack:
		parts = append(parts, narrateHit(p, o)...)
	case *combat.FailedAttack:
		wasCaptured := false
		if r, ok := resolved.(*combat.FailedAttack); ok {
			wasCaptured = r.InitiativeCaptured
		}
		parts = append(parts, narrateMiss(p, o, wasCaptured))
	}
	return strings.Join(parts, " ")
}

func narrateHit(p *message.Printer, o *combat.SuccessfulAttack) []string {
	var parts []string
	switch {
	case !o.Damage.IsZero():
		if o.Attack.HitDescription != "" {
			parts = append(parts, o.Attack.HitDescription)
		}
		sentence := p.Sprintf("The attack hits, dealing %s", woundsPhrase(p, o.Damage))
		if o.Stun > 0 {
			sentence += p.Sprintf(" and stunning the opponent")
		}
		parts = append(parts, sentence+".")
	case o.Stun > 0:
		parts = append(parts, p.Sprintf("The attack stunned the opponent."))
	}

	switch {
	case o.Strengthening > 0 && o.CounterattackResistance > 0:
		parts = append(parts, p.Sprintf("The next %d attacks deal double damage and resist counterattacks.", o.Strengthening))
	case o.Strengthening > 0:
		parts = append(parts, p.Sprintf("The next %d attacks deal double damage.", o.Strengthening))
	case o.CounterattackResistance > 0:
		parts = append(parts, p.Sprintf("The next %d attacks resist counterattacks.", o.CounterattackResistance))
	}

	if !o.Healing.IsZero() {
		parts = append(parts, p.Sprintf("A moment to breathe lets the attacker ignore %s until the end of the fight.", woundsPhrase(p, o.Healing)))
	}

	if len(parts) == 0 {
		parts = append(parts, p.Sprintf("The attack lands without effect."))
	}
	return parts
}

func narrateMiss(p *message.Printer, o *combat.FailedAttack, wasCaptured bool) string {
	switch {
	case !wasCaptured:
		return p.Sprintf("The attack could not break the defense, but the attacker keeps the initiative.")
	case !o.InitiativeCaptured:
		return p.Sprintf("The defender avoided the blows and shook off the stun.")
	}
	sentence := p.Sprintf("The defender avoided all harm and seized the initiative.")
	if !o.CounterattackDamage.IsZero() {
		sentence += " " + p.Sprintf("The counterattack dealt %s.", woundsPhrase(p, o.CounterattackDamage))
	}
	return sentence
}
