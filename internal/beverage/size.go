package beverage

import (
	"fmt"
	"strings"

	apperr "github.com/KirkDiggler/headfirst-patterns/internal/errors"
)

// Size is the cup size tier. Each tier above Tall adds the item's per-tier
// surcharge once, so costs scale with Index().
type Size int

const (
	SizeTall Size = iota
	SizeGrande
	SizeVenti
)

// Generic names for the same tiers
const (
	SizeSmall  = SizeTall
	SizeMedium = SizeGrande
	SizeLarge  = SizeVenti
)

var sizeNames = map[string]Size{
	"tall":   SizeTall,
	"small":  SizeTall,
	"grande": SizeGrande,
	"medium": SizeGrande,
	"venti":  SizeVenti,
	"large":  SizeVenti,
}

// Valid reports whether s is one of the known tiers
func (s Size) Valid() bool {
	return s >= SizeTall && s <= SizeVenti
}

// Index returns the tier multiplier used for surcharges
func (s Size) Index() (int, error) {
	if !s.Valid() {
		return 0, apperr.InvalidCompositionf("unrecognized size tier %d", int(s))
	}
	return int(s), nil
}

func (s Size) String() string {
	switch s {
	case SizeTall:
		return "TALL"
	case SizeGrande:
		return "GRANDE"
	case SizeVenti:
		return "VENTI"
	default:
		return fmt.Sprintf("Size(%d)", int(s))
	}
}

// ParseSize looks up a size by name, accepting both the menu names
// (tall, grande, venti) and small/medium/large
func ParseSize(name string) (Size, error) {
	size, ok := sizeNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, apperr.InvalidCompositionf("unrecognized size %q", name).WithMeta("size", name)
	}
	return size, nil
}
