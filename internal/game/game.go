package game

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/keywordfight/internal/gamedata"
	"github.com/samdwyer/keywordfight/internal/random"
	"github.com/samdwyer/keywordfight/internal/telemetry"
)

// ErrCancelled is returned by a Frontend when the user asks to leave.
var ErrCancelled = errors.New("cancelled by user")

// Frontend shows views and collects choices.
type Frontend interface {
	// Choose shows view and returns the 0-based index picked. Input that is
	// not an option may be returned as an out-of-range index.
	Choose(ctx context.Context, view View) (int, error)
	// Confirm shows view with a yes/no question.
	Confirm(ctx context.Context, view View, question string) (bool, error)
	// Notify shows a message until the next view.
	Notify(msg string)
	Close()
}

// Game hosts matches one after another on a frontend.
type Game struct {
	frontend Frontend
	catalog  *gamedata.Catalog
	cfg      Config
}

// New creates a host for matches over catalog.
func New(frontend Frontend, catalog *gamedata.Catalog, cfg Config) *Game {
	return &Game{frontend: frontend, catalog: catalog, cfg: cfg}
}

// Run plays matches until the user declines another one or ctx ends.
func (g *Game) Run(ctx context.Context) error {
	defer g.frontend.Close()
	p := g.cfg.printer()

	for {
		view, err := g.play(ctx)
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return nil
		}

		question := p.Sprintf("Play again? [y/n]")
		if view.Cancelled {
			question = p.Sprintf("Game interrupted. ") + question
		}
		again, err := g.frontend.Confirm(ctx, view, question)
		if err != nil && !errors.Is(err, ErrCancelled) && !errors.Is(err, context.Canceled) {
			return err
		}
		if err != nil || !again {
			g.frontend.Notify(p.Sprintf("Game over. See you later!"))
			return nil
		}
	}
}

// play runs one match to its conclusion and returns the final view. An
// interrupt signal or ErrCancelled from the frontend cancels the match.
func (g *Game) play(ctx context.Context) (View, error) {
	rng, seed, err := random.New(g.cfg.Seed)
	if err != nil {
		return View{}, fmt.Errorf("seed match: %w", err)
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.match")
	defer span.End()
	span.SetAttributes(attribute.Int64("seed", seed))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := g.cfg.printer()
	m := NewMatch(g.catalog, rng, g.cfg)
	for m.State() != StateConcluded {
		index, err := g.frontend.Choose(ctx, m.View())
		switch {
		case errors.Is(err, ErrCancelled), errors.Is(err, context.Canceled):
			cancel()
			index = 0
		case err != nil:
			return View{}, err
		}

		err = m.Choose(ctx, index)
		switch {
		case errors.Is(err, ErrInvalidChoice):
			g.frontend.Notify(p.Sprintf("[Error] Invalid action. Enter the number of the chosen action!"))
		case errors.Is(err, ErrExchangeFault):
			span.RecordError(err)
			g.frontend.Notify(p.Sprintf("[Error] The exchange failed and was undone. Choose again."))
		case errors.Is(err, ErrNoCommittedCard):
			span.RecordError(err)
			g.frontend.Notify(p.Sprintf("[Error] The enemy has no cards left."))
			cancel()
		case err != nil:
			return View{}, err
		}
	}

	view := m.View()
	span.SetAttributes(
		attribute.String("result", view.Result.String()),
		attribute.Int("turns", view.Turn),
	)
	return view, nil
}
