package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/message"

	"github.com/samdwyer/keywordfight/internal/entity"
	"github.com/samdwyer/keywordfight/internal/gamedata"
	"github.com/samdwyer/keywordfight/internal/loadout"
	"github.com/samdwyer/keywordfight/internal/telemetry"
)

var (
	// ErrInvalidChoice is returned for an index outside the offered actions.
	// The match does not change.
	ErrInvalidChoice = errors.New("invalid choice")
	// ErrMatchConcluded is returned for a choice made after the match ended.
	ErrMatchConcluded = errors.New("match concluded")
	// ErrNoCommittedCard is returned when the enemy holds no fight card to
	// answer with. The match does not change.
	ErrNoCommittedCard = errors.New("enemy has no committed card")
	// ErrExchangeFault is returned when resolving an exchange failed. Both
	// combatants and the deck are back at their pre-exchange state.
	ErrExchangeFault = errors.New("exchange fault")
)

// proposalCount is how many loadouts the player chooses from.
const proposalCount = 4

// Match is one duel from setup to conclusion. It is not safe for concurrent
// use; callers serialize choices.
type Match struct {
	Player *entity.Combatant
	Enemy  *entity.Combatant

	catalog   *gamedata.Catalog
	deck      *entity.Deck[*entity.FightCard]
	generator *loadout.Generator
	rng       *rand.Rand
	p         *message.Printer
	tracer    trace.Tracer

	// applyOutcome replaces combat.Apply when set.
	applyOutcome applyFunc

	state     State
	step      SetupStep
	choice    ChoiceKind
	result    Result
	turn      int
	proposals [][]*entity.Equipment

	// armed is set once equipment is final.
	armed bool

	lastAction string
	nextAction string
	actions    []string
}

// View is what a frontend shows after every accepted choice.
type View struct {
	State  State
	Step   SetupStep
	Choice ChoiceKind
	Result Result
	Turn   int

	// Status holds one line per combatant once setup is over.
	Status     []string
	LastAction string
	NextAction string
	Actions    []string

	Finished  bool
	Won       bool
	Cancelled bool
}

// NewMatch creates a match over catalog and opens the setup dialogue. All
// randomness comes from rng.
func NewMatch(catalog *gamedata.Catalog, rng *rand.Rand, cfg Config) *Match {
	m := &Match{
		Player:    entity.NewCombatant(cfg.playerName(), entity.RolePlayer, rng),
		Enemy:     entity.NewCombatant(cfg.enemyName(), entity.RoleEnemy, rng),
		catalog:   catalog,
		deck:      entity.NewDeck(catalog.FightCards, rng),
		generator: loadout.NewGenerator(catalog.Equipment, rng),
		rng:       rng,
		p:         cfg.printer(),
		tracer:    telemetry.Tracer("match"),
		state:     StateAwaitingInitialization,
		step:      StepWealth,
	}
	m.offerWealth()
	return m
}

// State returns the current match state.
func (m *Match) State() State { return m.state }

// View returns a snapshot of the presentation fields.
func (m *Match) View() View {
	v := View{
		State:      m.state,
		Step:       m.step,
		Choice:     m.choice,
		Result:     m.result,
		Turn:       m.turn,
		LastAction: m.lastAction,
		NextAction: m.nextAction,
		Actions:    slices.Clone(m.actions),
		Finished:   m.state == StateConcluded,
		Won:        m.result == ResultWon,
		Cancelled:  m.result == ResultCancelled,
	}
	if m.armed {
		v.Status = []string{
			describeCombatantFull(m.p, m.Player),
			describeCombatantFull(m.p, m.Enemy),
		}
	}
	return v
}

// Choose submits the index of one of the offered actions.
//
// A cancelled ctx concludes the match as cancelled; cancellation is only
// observed here, between exchanges. An out-of-range index returns
// ErrInvalidChoice and leaves the match untouched.
func (m *Match) Choose(ctx context.Context, index int) error {
	if m.state == StateConcluded {
		return ErrMatchConcluded
	}
	if ctx.Err() != nil {
		m.cancel(context.WithoutCancel(ctx))
		return nil
	}
	if index < 0 || index >= len(m.actions) {
		trace.SpanFromContext(ctx).AddEvent("match.rejected", trace.WithAttributes(
			attribute.String("state", m.state.String()),
			attribute.Int("index", index),
			attribute.Int("actions", len(m.actions)),
		))
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidChoice, index, len(m.actions))
	}

	switch m.state {
	case StateAwaitingInitialization:
		m.setup(ctx, index)
		return nil
	case StateAwaitingChoice:
		return m.exchange(ctx, index)
	default:
		return fmt.Errorf("%w: no choice expected in state %s", ErrInvalidChoice, m.state)
	}
}

func (m *Match) cancel(ctx context.Context) {
	if m.state == StateAwaitingInitialization {
		m.lastAction = m.p.Sprintf("Preparation cancelled.")
	} else {
		m.lastAction = m.p.Sprintf("Fight cancelled.")
	}
	m.nextAction = ""
	m.conclude(ctx, ResultCancelled)
}

func (m *Match) conclude(ctx context.Context, result Result) {
	_, span := m.tracer.Start(ctx, "match.conclude")
	defer span.End()
	span.SetAttributes(
		attribute.String("result", result.String()),
		attribute.Int("turns", m.turn),
	)

	m.state = StateConcluded
	m.result = result
	m.actions = nil
}
