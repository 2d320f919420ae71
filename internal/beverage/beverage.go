package beverage

//go:generate mockgen -destination=mock/mock_beverage.go -package=mockbeverage -source=beverage.go

import (
	apperr "github.com/KirkDiggler/headfirst-patterns/internal/errors"
)

// Beverage is anything on the menu that can be priced and described: a
// coffee on its own, or a coffee wrapped in any number of condiments
type Beverage interface {
	// Describe returns the full description, base first then each condiment
	Describe() (string, error)

	// Cost returns the price including every condiment and size surcharge
	Cost() (Money, error)

	// Size returns the cup size
	Size() Size
}

// Kind identifies a base coffee
type Kind string

const (
	KindHouseBlend Kind = "house_blend"
	KindDarkRoast  Kind = "dark_roast"
	KindEspresso   Kind = "espresso"
	KindDecaf      Kind = "decaf"
)

type pricing struct {
	label   string
	price   Money
	perTier Money
}

var coffees = map[Kind]pricing{
	KindHouseBlend: {label: "House blend coffee", price: 1.10, perTier: 0.10},
	KindDarkRoast:  {label: "Dark Roast coffee", price: 0.75, perTier: 0.05},
	KindEspresso:   {label: "Espresso coffee", price: 2.10, perTier: 0.20},
	KindDecaf:      {label: "Decaf coffee", price: 1.25, perTier: 0.15},
}

// Coffee is a base beverage with a fixed price and description
type Coffee struct {
	kind Kind
	size Size
}

func NewHouseBlend(size Size) *Coffee { return &Coffee{kind: KindHouseBlend, size: size} }
func NewDarkRoast(size Size) *Coffee  { return &Coffee{kind: KindDarkRoast, size: size} }
func NewEspresso(size Size) *Coffee   { return &Coffee{kind: KindEspresso, size: size} }
func NewDecaf(size Size) *Coffee      { return &Coffee{kind: KindDecaf, size: size} }

func (c *Coffee) Kind() Kind { return c.kind }
func (c *Coffee) Size() Size { return c.size }

// Describe returns the coffee's menu description
func (c *Coffee) Describe() (string, error) {
	p, err := c.pricing()
	if err != nil {
		return "", err
	}
	return p.label, nil
}

// Cost returns the base price plus the size surcharge
func (c *Coffee) Cost() (Money, error) {
	p, err := c.pricing()
	if err != nil {
		return 0, err
	}

	idx, err := c.size.Index()
	if err != nil {
		return 0, err
	}

	return p.price + p.perTier*Money(idx), nil
}

func (c *Coffee) pricing() (pricing, error) {
	p, ok := coffees[c.kind]
	if !ok {
		return pricing{}, apperr.InvalidCompositionf("unrecognized coffee %q", c.kind).WithMeta("kind", string(c.kind))
	}
	return p, nil
}
