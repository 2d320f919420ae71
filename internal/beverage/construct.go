package beverage

import (
	"sort"
	"strings"

	apperr "github.com/KirkDiggler/headfirst-patterns/internal/errors"
)

// Construct builds a base coffee of the given kind and size
func Construct(kind Kind, size Size) (Beverage, error) {
	if _, ok := coffees[kind]; !ok {
		return nil, apperr.InvalidCompositionf("unrecognized coffee %q", kind).WithMeta("kind", string(kind))
	}
	if !size.Valid() {
		return nil, apperr.InvalidCompositionf("unrecognized size tier %d", int(size))
	}
	return &Coffee{kind: kind, size: size}, nil
}

// Wrap decorates b with one condiment
func Wrap(b Beverage, kind CondimentKind) (Beverage, error) {
	if b == nil {
		return nil, apperr.InvalidCompositionf("cannot add %s to a missing beverage", kind)
	}
	if _, ok := condiments[kind]; !ok {
		return nil, apperr.InvalidCompositionf("unrecognized condiment %q", kind).WithMeta("condiment", string(kind))
	}
	return newCondiment(kind, b), nil
}

// Chain wraps b with each condiment in order, so the last one is outermost
func Chain(b Beverage, kinds ...CondimentKind) (Beverage, error) {
	var err error
	for _, kind := range kinds {
		b, err = Wrap(b, kind)
		if err != nil {
			return nil, err
		}
	}
	return b, nil
}

// ParseKind looks up a coffee by name; spaces and dashes are treated as underscores
func ParseKind(name string) (Kind, error) {
	kind := Kind(normalize(name))
	if _, ok := coffees[kind]; !ok {
		return "", apperr.InvalidCompositionf("unrecognized coffee %q", name).WithMeta("kind", name)
	}
	return kind, nil
}

// ParseCondiment looks up a condiment by name
func ParseCondiment(name string) (CondimentKind, error) {
	kind := CondimentKind(normalize(name))
	if _, ok := condiments[kind]; !ok {
		return "", apperr.InvalidCompositionf("unrecognized condiment %q", name).WithMeta("condiment", name)
	}
	return kind, nil
}

// Kinds lists every coffee on the menu
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(coffees))
	for k := range coffees {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Condiments lists every condiment on the menu
func Condiments() []CondimentKind {
	kinds := make([]CondimentKind, 0, len(condiments))
	for k := range condiments {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(name)
}
