package duck

// FlyBehavior is how a duck flies, or doesn't
type FlyBehavior interface {
	Fly() string
}

// QuackBehavior is the sound a duck makes
type QuackBehavior interface {
	Quack() string
}

type FlyWithWings struct{}

func (FlyWithWings) Fly() string { return "I'm flying!" }

type FlyNoWay struct{}

func (FlyNoWay) Fly() string { return "I can't fly..." }

type FlyRocketPowered struct{}

func (FlyRocketPowered) Fly() string { return "I'm flying with a rocket!" }

type Quack struct{}

func (Quack) Quack() string { return "Quack!" }

type MuteQuack struct{}

func (MuteQuack) Quack() string { return "<<silence>>" }

type Squeak struct{}

func (Squeak) Quack() string { return "Squeak!" }
