package duck

import (
	"fmt"
	"io"
)

// Simulator runs the mini duck simulation
type Simulator struct {
	out io.Writer
}

func NewSimulator(out io.Writer) *Simulator {
	return &Simulator{out: out}
}

// Run shows a mallard, then gives a grounded model duck a rocket
func (s *Simulator) Run() error {
	mallard := NewMallard()
	lines := []string{mallard.Display()}

	quack, err := mallard.PerformQuack()
	if err != nil {
		return err
	}
	fly, err := mallard.PerformFly()
	if err != nil {
		return err
	}
	lines = append(lines, quack, fly)

	model := NewModel()
	grounded, err := model.PerformFly()
	if err != nil {
		return err
	}
	model.SetFlyBehavior(FlyRocketPowered{})
	rocket, err := model.PerformFly()
	if err != nil {
		return err
	}
	lines = append(lines, grounded, rocket)

	for _, line := range lines {
		if _, err := fmt.Fprintln(s.out, line); err != nil {
			return err
		}
	}
	return nil
}
