package entity

import (
	"math"
	"strings"
)

// epsilon absorbs floating point error at exact integer and equality boundaries.
const epsilon = 0.000001

// DamageType names one axis of a Power vector.
type DamageType int

const (
	DamageBludgeoning DamageType = iota
	DamagePiercing
	DamageSlashing
	DamageCounterattack
)

// String returns the damage type name.
func (t DamageType) String() string {
	switch t {
	case DamageBludgeoning:
		return "bludgeoning"
	case DamagePiercing:
		return "piercing"
	case DamageSlashing:
		return "slashing"
	case DamageCounterattack:
		return "counterattack"
	default:
		return "*"
	}
}

// Power describes the strength of a piece of equipment or the bonus an attack
// adds on top of the wielded weapon.
type Power struct {
	Bludgeoning float64
	Piercing    float64
	Slashing    float64
	// Counterattack is nil when the item has no distinct counterattack value.
	Counterattack *float64
}

// ZeroPower is the power of default (absent) armor pieces.
var ZeroPower = Power{}

// NewPower builds a Power without a counterattack component.
func NewPower(bludgeoning, piercing, slashing float64) Power {
	return Power{Bludgeoning: bludgeoning, Piercing: piercing, Slashing: slashing}
}

// WithCounterattack returns a copy of p with the counterattack component set.
func (p Power) WithCounterattack(counterattack float64) Power {
	p.Counterattack = &counterattack
	return p
}

// CounterattackOr returns the counterattack component, or fallback when absent.
func (p Power) CounterattackOr(fallback float64) float64 {
	if p.Counterattack == nil {
		return fallback
	}
	return *p.Counterattack
}

// Add returns the component-wise sum. Missing components act as zero.
func (p Power) Add(o Power) Power {
	return Power{
		Bludgeoning:   p.Bludgeoning + o.Bludgeoning,
		Piercing:      p.Piercing + o.Piercing,
		Slashing:      p.Slashing + o.Slashing,
		Counterattack: combineCounter(p.Counterattack, o.Counterattack, 1),
	}
}

// Sub returns the component-wise difference. Missing components act as zero.
func (p Power) Sub(o Power) Power {
	return Power{
		Bludgeoning:   p.Bludgeoning - o.Bludgeoning,
		Piercing:      p.Piercing - o.Piercing,
		Slashing:      p.Slashing - o.Slashing,
		Counterattack: combineCounter(p.Counterattack, o.Counterattack, -1),
	}
}

func combineCounter(a, b *float64, sign float64) *float64 {
	if a == nil && b == nil {
		return nil
	}
	var x, y float64
	if a != nil {
		x = *a
	}
	if b != nil {
		y = *b
	}
	v := x + sign*y
	return &v
}

// Max returns the largest of the three primary magnitudes.
func (p Power) Max() float64 {
	return math.Max(p.Bludgeoning, math.Max(p.Piercing, p.Slashing))
}

// Min returns the smallest of the three primary magnitudes.
func (p Power) Min() float64 {
	return math.Min(p.Bludgeoning, math.Min(p.Piercing, p.Slashing))
}

// Advantages lists the axes exceeding Min. Used for display only.
func (p Power) Advantages() []DamageType {
	min := p.Min()
	if math.Abs(p.Max()-min) < epsilon {
		if p.Counterattack != nil && *p.Counterattack > min+epsilon {
			return []DamageType{DamageCounterattack}
		}
		return nil
	}

	var out []DamageType
	if p.Bludgeoning > min+epsilon {
		out = append(out, DamageBludgeoning)
	}
	if p.Piercing > min+epsilon {
		out = append(out, DamagePiercing)
	}
	if p.Slashing > min+epsilon {
		out = append(out, DamageSlashing)
	}
	if p.Counterattack != nil && *p.Counterattack > min+epsilon {
		out = append(out, DamageCounterattack)
	}
	return out
}

// JoinDamageTypes renders damage types as "a/b/c".
func JoinDamageTypes(types []DamageType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return strings.Join(names, "/")
}

// Effectiveness holds the keyword commitments of an attack or defense face.
// A positive defense value answers the keyword; a negative attack value
// exploits its absence.
type Effectiveness struct {
	Block         int
	Repulse       int
	Dodge         int
	Capture       int
	Counterattack int
}

// Dot combines an attack and a defense commitment into the signed exchange
// result. Positive favors the defender, negative the attacker.
func (e Effectiveness) Dot(o Effectiveness) int {
	return e.Block*o.Block +
		e.Repulse*o.Repulse +
		e.Dodge*o.Dodge +
		e.Capture*o.Capture +
		e.Counterattack*o.Counterattack
}

// Glyphs renders the five keywords as a compact string: "D" for a positive
// value, "!" for a negative one and "_" otherwise. Defense faces flip the
// counterattack sign so that "D" always reads as favourable to the holder.
func (e Effectiveness) Glyphs(isDefense bool) string {
	counter := e.Counterattack
	if isDefense {
		counter = -counter
	}
	var b strings.Builder
	for _, v := range []int{e.Block, e.Repulse, e.Dodge, e.Capture, counter} {
		switch {
		case v < 0:
			b.WriteByte('!')
		case v > 0:
			b.WriteByte('D')
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Damage is a wound count. The integer part counts serious wounds and any
// remaining fraction counts as one light wound.
type Damage float64

// SeriousWounds returns the integer part of the count.
func (d Damage) SeriousWounds() int {
	return int(d)
}

// LightWounds returns 1 when a fractional part remains, 0 otherwise.
func (d Damage) LightWounds() int {
	if float64(d)-float64(d.SeriousWounds()) > 0 {
		return 1
	}
	return 0
}

// Scale multiplies the count.
func (d Damage) Scale(multiplier float64) Damage {
	return Damage(float64(d) * multiplier)
}

// IsZero reports whether the count is zero within epsilon.
func (d Damage) IsZero() bool {
	return math.Abs(float64(d)) < epsilon
}
