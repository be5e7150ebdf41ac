package game

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/samdwyer/keywordfight/internal/gamedata"
)

// scriptedFrontend replays choices, then always picks the first option.
type scriptedFrontend struct {
	choices  []int
	errs     map[int]error
	answers  []bool
	calls    int
	views    []View
	asked    []string
	notices  []string
	closed   bool
	finished []View
}

func (f *scriptedFrontend) Choose(ctx context.Context, view View) (int, error) {
	call := f.calls
	f.calls++
	f.views = append(f.views, view)
	if err, ok := f.errs[call]; ok {
		return 0, err
	}
	if call < len(f.choices) {
		return f.choices[call], nil
	}
	return 0, nil
}

func (f *scriptedFrontend) Confirm(ctx context.Context, view View, question string) (bool, error) {
	f.finished = append(f.finished, view)
	f.asked = append(f.asked, question)
	if len(f.answers) == 0 {
		return false, nil
	}
	answer := f.answers[0]
	f.answers = f.answers[1:]
	return answer, nil
}

func (f *scriptedFrontend) Notify(msg string) { f.notices = append(f.notices, msg) }

func (f *scriptedFrontend) Close() { f.closed = true }

func TestGameRunPlaysOneMatch(t *testing.T) {
	frontend := &scriptedFrontend{choices: []int{9, 0}}
	g := New(frontend, gamedata.MustLoadCatalog(), Config{Seed: 12345})

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !frontend.closed {
		t.Error("Run() did not close the frontend")
	}
	if len(frontend.finished) != 1 {
		t.Fatalf("Confirm() called %d times, want 1", len(frontend.finished))
	}
	final := frontend.finished[0]
	if !final.Finished || (final.Result != ResultWon && final.Result != ResultLost) {
		t.Errorf("final view = %+v, want a won or lost match", final)
	}
	if frontend.asked[0] != "Play again? [y/n]" {
		t.Errorf("question = %q, want %q", frontend.asked[0], "Play again? [y/n]")
	}
	if !slices.Contains(frontend.notices, "[Error] Invalid action. Enter the number of the chosen action!") {
		t.Errorf("notices = %q, want the invalid action notice", frontend.notices)
	}
	if last := frontend.notices[len(frontend.notices)-1]; last != "Game over. See you later!" {
		t.Errorf("last notice = %q, want the farewell", last)
	}
}

func TestGameRunCancelAndPlayAgain(t *testing.T) {
	frontend := &scriptedFrontend{
		errs:    map[int]error{1: ErrCancelled},
		answers: []bool{true},
	}
	g := New(frontend, gamedata.MustLoadCatalog(), Config{Seed: 12345})

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(frontend.finished) != 2 {
		t.Fatalf("Confirm() called %d times, want 2", len(frontend.finished))
	}
	first := frontend.finished[0]
	if !first.Cancelled || first.LastAction != "Fight cancelled." {
		t.Errorf("first match = %+v, want it cancelled during the fight", first)
	}
	if !strings.HasPrefix(frontend.asked[0], "Game interrupted. ") {
		t.Errorf("question = %q, want the interrupted prefix", frontend.asked[0])
	}
	if frontend.finished[1].Cancelled {
		t.Error("second match was cancelled, want it played out")
	}
}

func TestGameRunFrontendError(t *testing.T) {
	broken := errors.New("terminal gone")
	frontend := &scriptedFrontend{errs: map[int]error{0: broken}}
	g := New(frontend, gamedata.MustLoadCatalog(), Config{Seed: 12345})

	if err := g.Run(context.Background()); !errors.Is(err, broken) {
		t.Errorf("Run() error = %v, want %v", err, broken)
	}
	if !frontend.closed {
		t.Error("Run() did not close the frontend")
	}
}

func TestIsYes(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y", true},
		{" Yes ", true},
		{"t", true},
		{"TAK", true},
		{"n", false},
		{"", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		if got := isYes(tt.answer); got != tt.want {
			t.Errorf("isYes(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}
