package timeline

import (
	"math/rand/v2"
	"time"

	"github.com/samber/lo"

	"glyph-motion/anim"
	"glyph-motion/ease"
)

// Sweep is the timing of a one-step sweep across a block.
type Sweep struct {
	Duration time.Duration
	Ease     ease.Func
	Stagger  time.Duration
}

// EnterSweep animates every glyph of b, in index order, toward target(i).
func EnterSweep(s *anim.Scheduler, b *anim.Block, set anim.Group, target func(i int) anim.Props, sw Sweep) *Sequence {
	return Build(s, b, []Step{{
		Indices:  b.Indices(),
		Target:   target,
		Set:      set,
		Duration: sw.Duration,
		Ease:     sw.Ease,
		Stagger:  sw.Stagger,
	}})
}

// LeaveSweep returns every glyph of b to rest, last glyph first.
func LeaveSweep(s *anim.Scheduler, b *anim.Block, set anim.Group, rest anim.Props, sw Sweep) *Sequence {
	return Build(s, b, []Step{{
		Indices:  lo.Reverse(b.Indices()),
		To:       rest,
		Set:      set,
		Duration: sw.Duration,
		Ease:     sw.Ease,
		Stagger:  sw.Stagger,
	}})
}

// RevealParams times the one-shot reveal.
type RevealParams struct {
	In          Sweep
	FromX       float64
	RightOffset time.Duration
	Hold        time.Duration
	Out         Sweep
	Drift       float64
	BaseWeight  float64
}

// DefaultReveal slides glyphs in from the left, holds, then fades them out
// with a small downward drift.
func DefaultReveal(baseWeight float64) RevealParams {
	return RevealParams{
		In:          Sweep{Duration: 600 * time.Millisecond, Ease: ease.Power3Out, Stagger: 60 * time.Millisecond},
		FromX:       -40,
		RightOffset: -200 * time.Millisecond,
		Hold:        800 * time.Millisecond,
		Out:         Sweep{Duration: 500 * time.Millisecond, Ease: ease.Power1In, Stagger: 40 * time.Millisecond},
		Drift:       8,
		BaseWeight:  baseWeight,
	}
}

// RevealSweep plays the reveal on b with the glyphs in left and right as the
// two groups. Each group is shuffled independently from seed. The right
// group starts before the left group ends. After a hold every glyph fades
// out in index order.
func RevealSweep(s *anim.Scheduler, b *anim.Block, left, right []int, seed uint64, p RevealParams) *Sequence {
	left = shuffle(left, seed)
	right = shuffle(right, seed+1)

	hidden := anim.Props{Scale: 1, X: p.FromX, Opacity: 0}
	shown := anim.Props{Scale: 1, Opacity: 1}
	in := anim.GroupTransform | anim.GroupOpacity
	return Build(s, b, []Step{
		{
			Indices: left, To: shown, Set: in,
			Duration: p.In.Duration, Ease: p.In.Ease, Stagger: p.In.Stagger,
			From: hidden, FromSet: in,
		},
		{
			Indices: right, To: shown, Set: in,
			Duration: p.In.Duration, Ease: p.In.Ease, Stagger: p.In.Stagger,
			Place: Offset(p.RightOffset),
			From:  hidden, FromSet: in,
		},
		{
			Indices:  b.Indices(),
			To:       anim.Props{Weight: p.BaseWeight, Scale: 1, Y: p.Drift, Opacity: 0},
			Set:      in | anim.GroupWeight,
			Duration: p.Out.Duration, Ease: p.Out.Ease, Stagger: p.Out.Stagger,
			Place: Offset(p.Hold),
		},
	})
}

// Permute returns a permutation of 0..n-1 that depends only on seed.
func Permute(n int, seed uint64) []int {
	if n <= 0 {
		return nil
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return r.Perm(n)
}

func shuffle(indices []int, seed uint64) []int {
	return lo.Map(Permute(len(indices), seed), func(p, _ int) int { return indices[p] })
}
