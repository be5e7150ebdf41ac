package entity

import (
	"iter"
	"math/rand"
)

// Deck is a reshuffling supply of reusable cards of one kind.
type Deck[T any] struct {
	queue     []T
	discarded []T
	rng       *rand.Rand
}

// NewDeck copies the catalog, shuffles it and enqueues it.
func NewDeck[T any](catalog []T, rng *rand.Rand) *Deck[T] {
	queue := make([]T, len(catalog))
	copy(queue, catalog)
	rng.Shuffle(len(queue), func(i, j int) { queue[i], queue[j] = queue[j], queue[i] })
	return &Deck[T]{queue: queue, rng: rng}
}

// Size returns the number of cards waiting in the draw queue.
func (d *Deck[T]) Size() int { return len(d.queue) }

// Discarded returns the number of cards in the discard pile.
func (d *Deck[T]) Discarded() int { return len(d.discarded) }

// Draw yields at most n cards. Cards are pulled lazily, one per iteration
// step. When the queue runs dry the discard pile is shuffled and becomes the
// new queue; when both are empty the sequence ends early.
func (d *Deck[T]) Draw(n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for ; n > 0; n-- {
			card, ok := d.next()
			if !ok {
				return
			}
			if !yield(card) {
				return
			}
		}
	}
}

// Discard puts a card on the discard pile. The pile is only shuffled when it
// is moved back into the queue.
func (d *Deck[T]) Discard(card T) {
	d.discarded = append(d.discarded, card)
}

func (d *Deck[T]) next() (T, bool) {
	if len(d.queue) == 0 && len(d.discarded) > 0 {
		refill := d.discarded
		d.rng.Shuffle(len(refill), func(i, j int) { refill[i], refill[j] = refill[j], refill[i] })
		d.queue = refill
		d.discarded = nil
	}

	var zero T
	if len(d.queue) == 0 {
		return zero, false
	}
	card := d.queue[0]
	d.queue[0] = zero
	d.queue = d.queue[1:]
	return card, true
}

// Clone returns an independent copy sharing the random source.
func (d *Deck[T]) Clone() *Deck[T] {
	return &Deck[T]{
		queue:     append([]T(nil), d.queue...),
		discarded: append([]T(nil), d.discarded...),
		rng:       d.rng,
	}
}
