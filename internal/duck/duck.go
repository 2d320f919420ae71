package duck

import (
	"log"

	apperr "github.com/KirkDiggler/headfirst-patterns/internal/errors"
)

// Duck delegates flying and quacking to swappable behaviors
type Duck struct {
	Name  string
	looks string
	fly   FlyBehavior
	quack QuackBehavior
}

// New creates a duck; looks is what Display returns
func New(name, looks string, fly FlyBehavior, quack QuackBehavior) *Duck {
	return &Duck{
		Name:  name,
		looks: looks,
		fly:   fly,
		quack: quack,
	}
}

func NewMallard() *Duck {
	return New("mallard", "I'm a real mallard duck!", FlyWithWings{}, Quack{})
}

func NewModel() *Duck {
	return New("model", "I'm a model duck.", FlyNoWay{}, Quack{})
}

func NewRubber() *Duck {
	return New("rubber", "I'm a rubber duckie.", FlyNoWay{}, Squeak{})
}

func NewDecoy() *Duck {
	return New("decoy", "I'm a duck decoy.", FlyNoWay{}, MuteQuack{})
}

// Display describes the duck
func (d *Duck) Display() string { return d.looks }

func (d *Duck) PerformFly() (string, error) {
	if d.fly == nil {
		return "", apperr.InvalidCompositionf("%s duck has no fly behavior", d.Name)
	}
	return d.fly.Fly(), nil
}

func (d *Duck) PerformQuack() (string, error) {
	if d.quack == nil {
		return "", apperr.InvalidCompositionf("%s duck has no quack behavior", d.Name)
	}
	return d.quack.Quack(), nil
}

func (d *Duck) SetFlyBehavior(fly FlyBehavior) {
	d.fly = fly
	log.Printf("Duck: %s now flies with %T", d.Name, fly)
}

func (d *Duck) SetQuackBehavior(quack QuackBehavior) {
	d.quack = quack
	log.Printf("Duck: %s now quacks with %T", d.Name, quack)
}

// Call is a hunter's duck call. It isn't a duck but it can still quack.
type Call struct {
	quack QuackBehavior
}

func NewCall() *Call {
	return &Call{quack: Quack{}}
}

func (c *Call) Quack() (string, error) {
	if c.quack == nil {
		return "", apperr.InvalidComposition("duck call has no quack behavior")
	}
	return c.quack.Quack(), nil
}
