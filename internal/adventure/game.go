package adventure

import (
	"fmt"
	"io"

	"github.com/KirkDiggler/headfirst-patterns/internal/uuid"
)

// Game plays the short action scene: a king and a troll fight, then the
// king picks up a sword and fights again
type Game struct {
	ids uuid.Generator
	out io.Writer
}

// NewGame creates a game writing to out
func NewGame(ids uuid.Generator, out io.Writer) *Game {
	return &Game{ids: ids, out: out}
}

// Run plays the scene
func (g *Game) Run() error {
	king := NewKing(g.ids)
	troll := NewTroll(g.ids)

	if err := g.fight(king); err != nil {
		return err
	}
	if err := g.fight(troll); err != nil {
		return err
	}

	king.SetWeapon(SwordBehavior{})
	return g.fight(king)
}

func (g *Game) fight(c *Character) error {
	result, err := c.Fight()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(g.out, result)
	return err
}
