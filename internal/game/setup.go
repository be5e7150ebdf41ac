package game

import (
	"context"
	"math"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/keywordfight/internal/entity"
	"github.com/samdwyer/keywordfight/internal/loadout"
)

// wealthGold maps a wealth option to the player's budget. Option 0 fights
// unarmed; option i buys 25*2^(i-3) gold.
func wealthGold(index int) float64 {
	if index == 0 {
		return 0
	}
	return 25 * math.Pow(2, float64(index-3))
}

// difficultyGold scales the player's budget into the enemy's: half at the
// easiest option, equal in the middle, double at the hardest.
func difficultyGold(playerGold float64, index int) float64 {
	return playerGold * math.Pow(2, float64(index)/2-1)
}

func (m *Match) offerWealth() {
	m.lastAction = m.p.Sprintf("Welcome, warrior!")
	m.nextAction = m.p.Sprintf("Before your unforgettable adventure begins, choose your equipment! How wealthy are you?")
	m.actions = []string{
		m.p.Sprintf("Fight without equipment"),
		m.p.Sprintf("Peasant: %v gold", 6),
		m.p.Sprintf("Burgher: %v gold", 12),
		m.p.Sprintf("Seasoned warrior: %v gold", 25),
		m.p.Sprintf("Rich knight: %v gold", 50),
		m.p.Sprintf("Magnate: %v gold", 100),
	}
}

func (m *Match) setup(ctx context.Context, index int) {
	ctx, span := m.tracer.Start(ctx, "match.setup", trace.WithAttributes(
		attribute.String("step", m.step.String()),
		attribute.Int("index", index),
	))
	defer span.End()

	switch m.step {
	case StepWealth:
		m.chooseWealth(ctx, index)
	case StepDifficulty:
		m.chooseDifficulty(ctx, index)
	case StepLoadout:
		m.chooseLoadout(ctx, index)
	}
}

func (m *Match) chooseWealth(ctx context.Context, index int) {
	gold := wealthGold(index)
	m.Player.SetGold(gold)
	if gold == 0 {
		m.Enemy.SetGold(0)
		m.finishSetup(ctx, m.p.Sprintf("You have no gold. The fight will be unarmed."))
		return
	}

	m.step = StepDifficulty
	m.lastAction = m.p.Sprintf("You have %v gold.", gold)
	m.nextAction = m.p.Sprintf("How hard should the fight be?")
	m.actions = []string{
		m.p.Sprintf("Training against a weaker opponent"),
		m.p.Sprintf("Easy"),
		m.p.Sprintf("Even"),
		m.p.Sprintf("Demanding"),
		m.p.Sprintf("Challenge against a stronger opponent"),
	}
}

func (m *Match) chooseDifficulty(ctx context.Context, index int) {
	playerGold, _ := m.Player.Gold()
	enemyGold := difficultyGold(playerGold, index)
	m.Enemy.SetGold(enemyGold)
	m.Enemy.Gear.Equip(m.generator.Generate(ctx, enemyGold)...)

	m.proposals = make([][]*entity.Equipment, proposalCount)
	m.actions = make([]string, proposalCount)
	for i := range m.proposals {
		set := loadout.ByKind(m.generator.Generate(ctx, playerGold))
		m.proposals[i] = set
		m.actions[i] = m.p.Sprintf("%s worth %v gold.", describeItems(m.p, set), entity.TotalCost(set))
	}

	enemyItems := m.Enemy.Gear.Items()
	m.step = StepLoadout
	m.lastAction = m.p.Sprintf("The enemy has %s worth %v gold.", describeItems(m.p, enemyItems), entity.TotalCost(enemyItems))
	m.nextAction = m.p.Sprintf("Which equipment set do you want?")
}

func (m *Match) chooseLoadout(ctx context.Context, index int) {
	m.Player.Gear.Equip(m.proposals[index]...)
	m.proposals = nil
	m.finishSetup(ctx, m.p.Sprintf("The player has %s worth %v gold.", describeItems(m.p, m.Player.Gear.Items()), entity.TotalCost(m.Player.Gear.Items()))+
		"\n"+m.p.Sprintf("The enemy has %s worth %v gold.", describeItems(m.p, m.Enemy.Gear.Items()), entity.TotalCost(m.Enemy.Gear.Items())))
}

// finishSetup freezes the equipment and runs the introduction straight away;
// StateAwaitingIntroduction is never observed between choices.
func (m *Match) finishSetup(ctx context.Context, summary string) {
	m.state = StateAwaitingIntroduction
	m.armed = true
	m.introduce(ctx, summary)
}

// introduce hands out initiative, deals both hands and opens the first menu.
func (m *Match) introduce(ctx context.Context, summary string) {
	_, span := m.tracer.Start(ctx, "match.introduce")
	defer span.End()

	if m.Player.HasInitiative == m.Enemy.HasInitiative {
		m.Player.HasInitiative = m.rng.Intn(2) == 0
		m.Enemy.HasInitiative = !m.Player.HasInitiative
	}
	playerFirst := m.Player.HasInitiative

	m.lastAction = summary + "\n\n" + introduction(m.p, playerFirst)
	m.Player.DrawCards(m.deck)
	m.Enemy.DrawCards(m.deck)

	span.SetAttributes(
		attribute.Bool("player_initiative", playerFirst),
		attribute.Int("deck", m.deck.Size()),
	)
	m.state = StateAwaitingChoice
	m.updateNextAction(ctx)
}
