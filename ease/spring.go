package ease

import "github.com/charmbracelet/harmonica"

// Spring builds a curve from a damped spring released at 0 toward 1.
// frequency is the angular frequency in radians per normalized duration;
// damping below 1 overshoots. The final sample is pinned to 1.
func Spring(frequency, damping float64) Func {
	s := harmonica.NewSpring(1.0/lutSize, frequency, damping)
	samples := make([]float64, lutSize+1)
	var pos, vel float64
	for i := 1; i <= lutSize; i++ {
		pos, vel = s.Update(pos, vel, 1)
		samples[i] = pos
	}
	samples[lutSize] = 1
	return table(samples)
}
