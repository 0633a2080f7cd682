package proximity

import (
	"time"

	"glyph-motion/ease"
	"glyph-motion/palette"
)

// Kind selects a tunable set.
type Kind string

const (
	KindTitle    Kind = "title"
	KindSubtitle Kind = "subtitle"
)

// Defaults returns the built-in tunables for kind. Titles get a tighter
// falloff and stronger scale and lift than subtitles.
func Defaults(kind Kind) (Params, bool) {
	p := Params{
		MaxShadow:     0.15,
		Neutral:       palette.Neutral,
		AccentA:       palette.AccentA,
		AccentB:       palette.AccentB,
		AccentBlend:   1,
		NeutralBlend:  0.9,
		Hover:         Motion{Duration: 250 * time.Millisecond, Ease: ease.Power2Out},
		Leave:         Motion{Duration: 350 * time.Millisecond, Ease: ease.Power1InOut},
		Lift:          Motion{Duration: 300 * time.Millisecond, Ease: ease.Power1Out},
		Drop:          Motion{Duration: 300 * time.Millisecond, Ease: ease.Power1InOut},
		ContainerLift: -1,
		EnterStagger:  15 * time.Millisecond,
		LeaveStagger:  20 * time.Millisecond,
	}
	switch kind {
	case KindTitle:
		p.Falloff = 12000
		p.MinWeight, p.MaxWeight, p.BaseWeight = 400, 900, 400
		p.MaxScale = 1.25
		p.MaxLift = -6
	case KindSubtitle:
		p.Falloff = 18000
		p.MinWeight, p.MaxWeight, p.BaseWeight = 100, 400, 100
		p.MaxScale = 1.15
		p.MaxLift = -4
	default:
		return Params{}, false
	}
	return p, true
}
