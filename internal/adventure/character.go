package adventure

import (
	"log"

	apperr "github.com/KirkDiggler/headfirst-patterns/internal/errors"
	"github.com/KirkDiggler/headfirst-patterns/internal/uuid"
)

// Kind names the type of character
type Kind string

const (
	KindQueen  Kind = "queen"
	KindKing   Kind = "king"
	KindTroll  Kind = "troll"
	KindKnight Kind = "knight"
)

// Character is anyone who can fight
type Character struct {
	ID     string
	Kind   Kind
	weapon WeaponBehavior
}

// NewCharacter creates a character of the given kind holding weapon
func NewCharacter(ids uuid.Generator, kind Kind, weapon WeaponBehavior) *Character {
	return &Character{
		ID:     ids.New(),
		Kind:   kind,
		weapon: weapon,
	}
}

func NewQueen(ids uuid.Generator) *Character  { return NewCharacter(ids, KindQueen, KnifeBehavior{}) }
func NewKing(ids uuid.Generator) *Character   { return NewCharacter(ids, KindKing, BowAndArrowBehavior{}) }
func NewTroll(ids uuid.Generator) *Character  { return NewCharacter(ids, KindTroll, AxeBehavior{}) }
func NewKnight(ids uuid.Generator) *Character { return NewCharacter(ids, KindKnight, SwordBehavior{}) }

// Weapon returns the current weapon behavior
func (c *Character) Weapon() WeaponBehavior { return c.weapon }

// SetWeapon swaps the weapon behavior
func (c *Character) SetWeapon(weapon WeaponBehavior) {
	c.weapon = weapon
	log.Printf("Character: %s %s changed weapon to %T", c.Kind, c.ID, weapon)
}

// Fight uses the current weapon
func (c *Character) Fight() (string, error) {
	if c.weapon == nil {
		return "", apperr.InvalidCompositionf("%s %s has no weapon", c.Kind, c.ID).WithMeta("character_id", c.ID)
	}
	return c.weapon.UseWeapon(), nil
}
