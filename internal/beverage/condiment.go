package beverage

import (
	apperr "github.com/KirkDiggler/headfirst-patterns/internal/errors"
)

// CondimentKind identifies an add-on
type CondimentKind string

const (
	CondimentMilk  CondimentKind = "milk"
	CondimentMocha CondimentKind = "mocha"
	CondimentSoy   CondimentKind = "soy"
	CondimentWhip  CondimentKind = "whip"
)

var condiments = map[CondimentKind]pricing{
	CondimentMilk:  {label: "milk", price: 0.25, perTier: 0.05},
	CondimentMocha: {label: "mocha", price: 0.99, perTier: 0.15},
	CondimentSoy:   {label: "soy", price: 0.45, perTier: 0.10},
	CondimentWhip:  {label: "whip", price: 0.15, perTier: 0.05},
}

// Condiment decorates a beverage with an add-on. It owns the wrapped
// beverage and never changes after construction, so its size always matches
// the size it captured from the wrapped beverage.
type Condiment struct {
	beverage Beverage
	kind     CondimentKind
	size     Size
}

func newCondiment(kind CondimentKind, b Beverage) *Condiment {
	c := &Condiment{beverage: b, kind: kind}
	if b != nil {
		c.size = b.Size()
	}
	return c
}

func NewMilk(b Beverage) *Condiment  { return newCondiment(CondimentMilk, b) }
func NewMocha(b Beverage) *Condiment { return newCondiment(CondimentMocha, b) }
func NewSoy(b Beverage) *Condiment   { return newCondiment(CondimentSoy, b) }
func NewWhip(b Beverage) *Condiment  { return newCondiment(CondimentWhip, b) }

func (c *Condiment) Kind() CondimentKind { return c.kind }
func (c *Condiment) Size() Size          { return c.size }

// Unwrap returns the decorated beverage
func (c *Condiment) Unwrap() Beverage { return c.beverage }

// Describe appends this condiment's label to the wrapped description.
// It does not modify the wrapped beverage, so repeated calls agree.
func (c *Condiment) Describe() (string, error) {
	p, err := c.check()
	if err != nil {
		return "", err
	}

	inner, err := c.beverage.Describe()
	if err != nil {
		return "", err
	}

	return inner + " + " + p.label, nil
}

// Cost adds this condiment's price and size surcharge to the wrapped cost
func (c *Condiment) Cost() (Money, error) {
	p, err := c.check()
	if err != nil {
		return 0, err
	}

	idx, err := c.size.Index()
	if err != nil {
		return 0, err
	}

	inner, err := c.beverage.Cost()
	if err != nil {
		return 0, err
	}

	return inner + p.price + p.perTier*Money(idx), nil
}

func (c *Condiment) check() (pricing, error) {
	if c == nil || c.beverage == nil {
		return pricing{}, apperr.InvalidComposition("condiment has no beverage to decorate")
	}

	p, ok := condiments[c.kind]
	if !ok {
		return pricing{}, apperr.InvalidCompositionf("unrecognized condiment %q", c.kind).WithMeta("condiment", string(c.kind))
	}
	return p, nil
}
