package adventure

//go:generate mockgen -destination=mock/mock_weapon.go -package=mockadventure -source=weapon.go

// WeaponBehavior is how a character fights. Characters hold one and can
// swap it at any time with SetWeapon.
type WeaponBehavior interface {
	UseWeapon() string
}

type KnifeBehavior struct{}

func (KnifeBehavior) UseWeapon() string { return "Stabbing!" }

type BowAndArrowBehavior struct{}

func (BowAndArrowBehavior) UseWeapon() string { return "Shooting!" }

type AxeBehavior struct{}

func (AxeBehavior) UseWeapon() string { return "Chopping!" }

type SwordBehavior struct{}

func (SwordBehavior) UseWeapon() string { return "Cutting!" }
