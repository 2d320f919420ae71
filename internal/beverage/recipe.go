package beverage

import (
	"fmt"
	"strings"

	apperr "github.com/KirkDiggler/headfirst-patterns/internal/errors"
)

// Recipe is an order written down before it is assembled
type Recipe struct {
	Base       Kind
	Size       Size
	Condiments []CondimentKind
}

// ParseRecipe reads an order such as "venti house_blend mocha whip".
// The size is optional and falls back to defaultSize; condiments are applied
// left to right, so the last one listed ends up outermost.
func ParseRecipe(order string, defaultSize Size) (*Recipe, error) {
	tokens := strings.FieldsFunc(order, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(tokens) == 0 {
		return nil, apperr.InvalidComposition("order is empty")
	}

	recipe := &Recipe{Size: defaultSize}
	if size, err := ParseSize(tokens[0]); err == nil {
		recipe.Size = size
		tokens = tokens[1:]
	}
	if len(tokens) == 0 {
		return nil, apperr.InvalidCompositionf("order %q names no coffee", order)
	}

	base, err := ParseKind(tokens[0])
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to parse order %q", order)
	}
	recipe.Base = base

	for _, token := range tokens[1:] {
		kind, err := ParseCondiment(token)
		if err != nil {
			return nil, apperr.Wrapf(err, "failed to parse order %q", order)
		}
		recipe.Condiments = append(recipe.Condiments, kind)
	}

	return recipe, nil
}

// Build assembles the beverage the recipe describes
func (r *Recipe) Build() (Beverage, error) {
	b, err := Construct(r.Base, r.Size)
	if err != nil {
		return nil, err
	}
	return Chain(b, r.Condiments...)
}

// Receipt renders one line with description and rounded cost
func Receipt(b Beverage, currency string) (string, error) {
	description, err := b.Describe()
	if err != nil {
		return "", err
	}

	cost, err := b.Cost()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s %s", description, cost.Format(currency)), nil
}
