package game

import (
	"context"
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/samdwyer/keywordfight/internal/combat"
	"github.com/samdwyer/keywordfight/internal/entity"
	"github.com/samdwyer/keywordfight/internal/gamedata"
)

func newTestMatch(t *testing.T, seed int64) *Match {
	t.Helper()
	return NewMatch(gamedata.MustLoadCatalog(), rand.New(rand.NewSource(seed)), Config{})
}

// mustChoose submits each index in turn and fails on the first error.
func mustChoose(t *testing.T, m *Match, indices ...int) {
	t.Helper()
	for _, index := range indices {
		if err := m.Choose(context.Background(), index); err != nil {
			t.Fatalf("Choose(%d) error = %v", index, err)
		}
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateAwaitingInitialization, "awaiting_initialization"},
		{StateAwaitingIntroduction, "awaiting_introduction"},
		{StateAwaitingChoice, "awaiting_choice"},
		{StateConcluded, "concluded"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestResultString(t *testing.T) {
	tests := []struct {
		result   Result
		expected string
	}{
		{ResultNone, "none"},
		{ResultWon, "won"},
		{ResultLost, "lost"},
		{ResultCancelled, "cancelled"},
		{Result(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.result.String(); got != tt.expected {
			t.Errorf("Result(%d).String() = %q, want %q", tt.result, got, tt.expected)
		}
	}
}

func TestSetupGold(t *testing.T) {
	wealth := []float64{0, 6.25, 12.5, 25, 50, 100}
	for i, want := range wealth {
		if got := wealthGold(i); got != want {
			t.Errorf("wealthGold(%d) = %v, want %v", i, got, want)
		}
	}

	difficulty := []float64{12.5, 25 / 1.4142135623730951, 25, 25 * 1.4142135623730951, 50}
	for i, want := range difficulty {
		got := difficultyGold(25, i)
		if diff := got - want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("difficultyGold(25, %d) = %v, want %v", i, got, want)
		}
	}
}

func TestNewMatchOffersWealth(t *testing.T) {
	m := newTestMatch(t, 12345)
	v := m.View()

	if v.State != StateAwaitingInitialization {
		t.Errorf("State = %v, want %v", v.State, StateAwaitingInitialization)
	}
	if v.Step != StepWealth {
		t.Errorf("Step = %v, want %v", v.Step, StepWealth)
	}
	if len(v.Actions) != 6 {
		t.Errorf("len(Actions) = %d, want 6", len(v.Actions))
	}
	if v.LastAction != "Welcome, warrior!" {
		t.Errorf("LastAction = %q, want %q", v.LastAction, "Welcome, warrior!")
	}
	if v.Status != nil {
		t.Errorf("Status = %q, want nil before setup ends", v.Status)
	}
	if m.Player.Name != "Player" || m.Enemy.Name != "Enemy" {
		t.Errorf("names = %q, %q, want Player, Enemy", m.Player.Name, m.Enemy.Name)
	}
}

func TestMatchUnarmedStart(t *testing.T) {
	m := newTestMatch(t, 12345)
	mustChoose(t, m, 0)

	v := m.View()
	if v.State != StateAwaitingChoice {
		t.Fatalf("State = %v, want %v", v.State, StateAwaitingChoice)
	}
	if m.Player.HasInitiative == m.Enemy.HasInitiative {
		t.Errorf("initiative: player %v, enemy %v, want exactly one", m.Player.HasInitiative, m.Enemy.HasInitiative)
	}
	wantChoice := ChoiceDefense
	if m.Player.HasInitiative {
		wantChoice = ChoiceAttack
	}
	if v.Choice != wantChoice {
		t.Errorf("Choice = %v, want %v", v.Choice, wantChoice)
	}
	for _, c := range []*entity.Combatant{m.Player, m.Enemy} {
		if got := c.Hand.FightsCount(); got != entity.DefaultHandSize {
			t.Errorf("%s fights = %d, want %d", c.Name, got, entity.DefaultHandSize)
		}
		if gold, ok := c.Gold(); !ok || gold != 0 {
			t.Errorf("%s Gold() = %v, %v, want 0, true", c.Name, gold, ok)
		}
		if items := c.Gear.Items(); len(items) != 0 {
			t.Errorf("%s items = %v, want none", c.Name, items)
		}
	}
	if len(v.Actions) != entity.DefaultHandSize {
		t.Errorf("len(Actions) = %d, want %d", len(v.Actions), entity.DefaultHandSize)
	}
	if len(v.Status) != 2 {
		t.Errorf("len(Status) = %d, want 2", len(v.Status))
	}
}

func TestMatchSetupFlow(t *testing.T) {
	m := newTestMatch(t, 12345)

	mustChoose(t, m, 3)
	if v := m.View(); v.Step != StepDifficulty || len(v.Actions) != 5 {
		t.Fatalf("after wealth: step %v with %d actions, want difficulty with 5", v.Step, len(v.Actions))
	}
	if gold, _ := m.Player.Gold(); gold != 25 {
		t.Errorf("player gold = %v, want 25", gold)
	}

	mustChoose(t, m, 4)
	if v := m.View(); v.Step != StepLoadout || len(v.Actions) != proposalCount {
		t.Fatalf("after difficulty: step %v with %d actions, want loadout with %d", v.Step, len(v.Actions), proposalCount)
	}
	if gold, _ := m.Enemy.Gold(); gold != 50 {
		t.Errorf("enemy gold = %v, want 50", gold)
	}
	if cost := entity.TotalCost(m.Enemy.Gear.Items()); cost > 50 {
		t.Errorf("enemy gear cost = %v, want at most 50", cost)
	}
	for i, set := range m.proposals {
		if cost := entity.TotalCost(set); cost > 25 {
			t.Errorf("proposal %d costs %v, want at most 25", i, cost)
		}
	}

	proposal := m.proposals[1]
	mustChoose(t, m, 1)
	if m.State() != StateAwaitingChoice {
		t.Fatalf("State = %v, want %v", m.State(), StateAwaitingChoice)
	}
	if got := m.Player.Gear.Items(); len(got) != len(proposal) {
		t.Errorf("player items = %d, want the %d chosen", len(got), len(proposal))
	}
}

func TestMatchInvalidChoice(t *testing.T) {
	m := newTestMatch(t, 12345)
	before := m.View()

	for _, index := range []int{-1, 6, 100} {
		err := m.Choose(context.Background(), index)
		if !errors.Is(err, ErrInvalidChoice) {
			t.Errorf("Choose(%d) error = %v, want ErrInvalidChoice", index, err)
		}
	}
	if after := m.View(); !reflect.DeepEqual(before, after) {
		t.Errorf("invalid choices changed the view:\n%+v\n%+v", before, after)
	}
}

func TestMatchPlaysToConclusion(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 12345} {
		m := newTestMatch(t, seed)
		mustChoose(t, m, 3, 2, 0)

		for i := 0; i < 1000 && m.State() != StateConcluded; i++ {
			mustChoose(t, m, i%len(m.View().Actions))

			if m.State() == StateConcluded {
				break
			}
			if m.Player.HasInitiative == m.Enemy.HasInitiative {
				t.Fatalf("seed %d turn %d: initiative not exclusive", seed, m.turn)
			}
			if m.Player.Hand.Count() != m.Player.HandSize || m.Enemy.Hand.Count() != m.Enemy.HandSize {
				t.Fatalf("seed %d turn %d: hands not refilled", seed, m.turn)
			}
		}

		v := m.View()
		if !v.Finished {
			t.Fatalf("seed %d: match did not conclude", seed)
		}
		switch v.Result {
		case ResultWon:
			if m.Enemy.IsConscious() {
				t.Errorf("seed %d: won with a conscious enemy", seed)
			}
		case ResultLost:
			if m.Player.IsConscious() {
				t.Errorf("seed %d: lost while conscious", seed)
			}
		default:
			t.Errorf("seed %d: Result = %v, want won or lost", seed, v.Result)
		}
		if len(v.Actions) != 0 {
			t.Errorf("seed %d: %d actions offered after conclusion", seed, len(v.Actions))
		}
		if err := m.Choose(context.Background(), 0); !errors.Is(err, ErrMatchConcluded) {
			t.Errorf("seed %d: Choose() after conclusion error = %v, want ErrMatchConcluded", seed, err)
		}
	}
}

func TestMatchIsDeterministic(t *testing.T) {
	a := newTestMatch(t, 777)
	b := newTestMatch(t, 777)
	choices := []int{4, 3, 2, 0, 1, 2, 3, 0, 0, 1, 0, 2, 0, 0, 0, 1}

	for i, index := range choices {
		errA := a.Choose(context.Background(), index)
		errB := b.Choose(context.Background(), index)
		if (errA == nil) != (errB == nil) {
			t.Fatalf("step %d: errors differ: %v vs %v", i, errA, errB)
		}
		if va, vb := a.View(), b.View(); !reflect.DeepEqual(va, vb) {
			t.Fatalf("step %d: views differ:\n%+v\n%+v", i, va, vb)
		}
	}
}

func TestMatchCancel(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name  string
		setup []int
		want  string
	}{
		{"during setup", []int{3}, "Preparation cancelled."},
		{"during fight", []int{0}, "Fight cancelled."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMatch(t, 12345)
			mustChoose(t, m, tt.setup...)

			if err := m.Choose(cancelled, 0); err != nil {
				t.Fatalf("Choose() on a cancelled context error = %v, want nil", err)
			}
			v := m.View()
			if !v.Finished || !v.Cancelled || v.Result != ResultCancelled {
				t.Errorf("view = %+v, want a cancelled conclusion", v)
			}
			if v.LastAction != tt.want {
				t.Errorf("LastAction = %q, want %q", v.LastAction, tt.want)
			}
			if err := m.Choose(context.Background(), 0); !errors.Is(err, ErrMatchConcluded) {
				t.Errorf("Choose() after cancel error = %v, want ErrMatchConcluded", err)
			}
		})
	}
}

func TestMatchExchangeFaultRestores(t *testing.T) {
	tests := []struct {
		name  string
		apply applyFunc
	}{
		{"panic", func(combat.Outcome, *entity.Combatant, *entity.Combatant, *entity.Deck[*entity.FightCard]) (combat.Outcome, error) {
			panic("boom")
		}},
		{"error", func(combat.Outcome, *entity.Combatant, *entity.Combatant, *entity.Deck[*entity.FightCard]) (combat.Outcome, error) {
			return nil, errors.New("boom")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMatch(t, 12345)
			mustChoose(t, m, 0)

			before := m.View()
			fights := m.Player.Hand.Fights()
			deckSize, discarded := m.deck.Size(), m.deck.Discarded()

			m.applyOutcome = tt.apply
			err := m.Choose(context.Background(), 0)
			if !errors.Is(err, ErrExchangeFault) {
				t.Fatalf("Choose() error = %v, want ErrExchangeFault", err)
			}

			if after := m.View(); !reflect.DeepEqual(before, after) {
				t.Errorf("fault changed the view:\n%+v\n%+v", before, after)
			}
			if got := m.Player.Hand.Fights(); !reflect.DeepEqual(got, fights) {
				t.Errorf("player fights not restored")
			}
			if m.deck.Size() != deckSize || m.deck.Discarded() != discarded {
				t.Errorf("deck = %d/%d, want %d/%d", m.deck.Size(), m.deck.Discarded(), deckSize, discarded)
			}

			m.applyOutcome = nil
			mustChoose(t, m, 0)
			if m.turn != 1 {
				t.Errorf("turn = %d after recovery, want 1", m.turn)
			}
		})
	}
}

func TestMatchNoCommittedCard(t *testing.T) {
	card := &entity.FightCard{
		Attack:  entity.AttackFace{Name: "Thrust", Damage: 1},
		Defense: entity.DefenseFace{Name: "Parry"},
	}
	catalog := &gamedata.Catalog{
		FightCards: []*entity.FightCard{card},
		Equipment:  gamedata.NewEquipmentRegistry(nil),
	}
	m := NewMatch(catalog, rand.New(rand.NewSource(12345)), Config{})
	mustChoose(t, m, 0)

	if m.Enemy.Hand.FightsCount() != 0 {
		t.Fatalf("enemy holds %d fight cards, want 0", m.Enemy.Hand.FightsCount())
	}
	before := m.View()
	if err := m.Choose(context.Background(), 0); !errors.Is(err, ErrNoCommittedCard) {
		t.Fatalf("Choose() error = %v, want ErrNoCommittedCard", err)
	}
	if after := m.View(); !reflect.DeepEqual(before, after) {
		t.Errorf("view changed:\n%+v\n%+v", before, after)
	}
}
