// Package game drives a duel from equipment setup to its conclusion and hosts
// matches on a frontend.
package game

// State represents the current match state.
type State int

const (
	// StateAwaitingInitialization - the setup dialogue is choosing equipment.
	StateAwaitingInitialization State = iota
	// StateAwaitingIntroduction - equipment is final; initiative and hands are
	// dealt before the first exchange.
	StateAwaitingIntroduction
	// StateAwaitingChoice - waiting for the player's attack or defense.
	StateAwaitingChoice
	// StateConcluded - won, lost or cancelled. No further choices are taken.
	StateConcluded
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateAwaitingInitialization:
		return "awaiting_initialization"
	case StateAwaitingIntroduction:
		return "awaiting_introduction"
	case StateAwaitingChoice:
		return "awaiting_choice"
	case StateConcluded:
		return "concluded"
	default:
		return "unknown"
	}
}

// SetupStep is the position in the setup dialogue.
type SetupStep int

const (
	StepWealth SetupStep = iota
	StepDifficulty
	StepLoadout
)

// String returns a human-readable step name.
func (s SetupStep) String() string {
	switch s {
	case StepWealth:
		return "wealth"
	case StepDifficulty:
		return "difficulty"
	case StepLoadout:
		return "loadout"
	default:
		return "unknown"
	}
}

// ChoiceKind tells whether the pending menu lists attacks or defenses.
type ChoiceKind int

const (
	ChoiceAttack ChoiceKind = iota
	ChoiceDefense
)

// String returns a human-readable choice kind.
func (c ChoiceKind) String() string {
	switch c {
	case ChoiceAttack:
		return "attack"
	case ChoiceDefense:
		return "defense"
	default:
		return "unknown"
	}
}

// Result is the terminal outcome of a match.
type Result int

const (
	ResultNone Result = iota
	ResultWon
	ResultLost
	ResultCancelled
)

// String returns a human-readable result.
func (r Result) String() string {
	switch r {
	case ResultNone:
		return "none"
	case ResultWon:
		return "won"
	case ResultLost:
		return "lost"
	case ResultCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
