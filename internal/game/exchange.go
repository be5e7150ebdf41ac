package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/keywordfight/internal/combat"
	"github.com/samdwyer/keywordfight/internal/entity"
)

// applyFunc mutates the combatants for a resolved outcome.
type applyFunc func(combat.Outcome, *entity.Combatant, *entity.Combatant, *entity.Deck[*entity.FightCard]) (combat.Outcome, error)

// snapshot is the match state an exchange may touch.
type snapshot struct {
	player, enemy *entity.Combatant
	deck          *entity.Deck[*entity.FightCard]
	turn          int
}

func (m *Match) snapshot() snapshot {
	return snapshot{
		player: m.Player.Clone(),
		enemy:  m.Enemy.Clone(),
		deck:   m.deck.Clone(),
		turn:   m.turn,
	}
}

func (m *Match) restore(s snapshot) {
	m.Player, m.Enemy, m.deck, m.turn = s.player, s.enemy, s.deck, s.turn
}

// exchange plays the player's card at index against the enemy's committed
// card. Either everything the exchange does is kept, or the match is rolled
// back and ErrExchangeFault is returned.
func (m *Match) exchange(ctx context.Context, index int) (err error) {
	ctx, span := m.tracer.Start(ctx, "match.exchange", trace.WithAttributes(
		attribute.Int("turn", m.turn+1),
	))
	defer span.End()

	playerCard := m.Player.Hand.Fights()[index]
	enemyCard := entity.CommittedCard(m.Enemy)
	if enemyCard == nil {
		span.SetStatus(codes.Error, ErrNoCommittedCard.Error())
		return ErrNoCommittedCard
	}

	saved := m.snapshot()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrExchangeFault, r)
		}
		if err != nil {
			m.restore(saved)
			span.RecordError(err)
			span.SetStatus(codes.Error, "exchange rolled back")
		}
	}()

	attacker, defender := m.Player, m.Enemy
	attackCard, defenseCard := playerCard, enemyCard
	if !m.Player.HasInitiative {
		attacker, defender = m.Enemy, m.Player
		attackCard, defenseCard = enemyCard, playerCard
	}

	m.Player.Discard(playerCard, m.deck)
	m.Enemy.Discard(enemyCard, m.deck)

	resolved := combat.Resolve(attacker, defender, &attackCard.Attack, &defenseCard.Defense)
	applied, err := m.apply()(resolved, attacker, defender, m.deck)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExchangeFault, err)
	}
	m.turn++

	span.SetAttributes(
		attribute.String("attacker", attacker.Role.String()),
		attribute.String("attack", attackCard.Attack.Name),
		attribute.String("defense", defenseCard.Defense.Name),
		attribute.Int("dot", attackCard.Attack.Effectiveness.Dot(defenseCard.Defense.Effectiveness)),
	)
	switch o := applied.(type) {
	case *combat.SuccessfulAttack:
		span.SetAttributes(
			attribute.String("outcome", "successful_attack"),
			attribute.Float64("damage", float64(o.Damage)),
			attribute.Int("stun", o.Stun),
		)
	case *combat.FailedAttack:
		span.SetAttributes(
			attribute.String("outcome", "failed_attack"),
			attribute.Bool("initiative_captured", o.InitiativeCaptured),
			attribute.Float64("counterattack_damage", float64(o.CounterattackDamage)),
		)
	}

	m.lastAction = narrateOutcome(m.p, attacker, defender, resolved, applied)
	m.Player.DrawCards(m.deck)
	m.Enemy.DrawCards(m.deck)
	m.updateNextAction(ctx)
	return nil
}

func (m *Match) apply() applyFunc {
	if m.applyOutcome != nil {
		return m.applyOutcome
	}
	return combat.Apply
}

// updateNextAction checks for a conclusion, then rebuilds the menu for
// whichever side holds the initiative.
func (m *Match) updateNextAction(ctx context.Context) {
	switch {
	case !m.Player.IsConscious():
		m.nextAction = m.p.Sprintf("The fight is over. You are unconscious!")
		m.conclude(ctx, ResultLost)
		return
	case !m.Enemy.IsConscious():
		m.nextAction = m.p.Sprintf("The fight is over. The enemy has been defeated!")
		m.conclude(ctx, ResultWon)
		return
	}

	fights := m.Player.Hand.Fights()
	m.actions = make([]string, len(fights))
	if m.Player.HasInitiative {
		m.choice = ChoiceAttack
		m.nextAction = m.p.Sprintf("Choose your attack:")
		for i, card := range fights {
			m.actions[i] = describeAttackAgainst(m.p, &card.Attack, m.Player, m.Enemy)
		}
		return
	}

	m.choice = ChoiceDefense
	incoming := "?"
	if committed := entity.CommittedCard(m.Enemy); committed != nil {
		incoming = describeAttackAgainst(m.p, &committed.Attack, m.Enemy, m.Player)
	}
	m.nextAction = m.p.Sprintf("Enemy attacks: %s\n\nChoose your defense:", incoming)
	for i, card := range fights {
		m.actions[i] = describeDefense(&card.Defense)
	}
}
