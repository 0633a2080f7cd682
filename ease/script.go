package ease

import (
	"github.com/pkg/errors"
	"go.starlark.net/starlark"
)

// lutSize is the number of samples taken from scripted and spring curves.
const lutSize = 256

// FromStarlark compiles a script that defines `ease(t)` and samples it into a
// lookup table. The script runs once, at compile time; it is never called from
// the frame loop.
func FromStarlark(name, script string) (Func, error) {
	thread := &starlark.Thread{Name: name}
	globals, err := starlark.ExecFile(thread, name, script, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "easing %q", name)
	}
	fn, ok := globals["ease"].(starlark.Callable)
	if !ok {
		return nil, errors.Errorf("easing %q: script must define ease(t)", name)
	}

	samples := make([]float64, lutSize+1)
	for i := range samples {
		t := float64(i) / lutSize
		v, err := starlark.Call(thread, fn, starlark.Tuple{starlark.Float(t)}, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "easing %q at t=%.3f", name, t)
		}
		f, ok := starlark.AsFloat(v)
		if !ok {
			return nil, errors.Errorf("easing %q: ease(%.3f) returned %s, want a number", name, t, v.Type())
		}
		samples[i] = f
	}
	samples[0], samples[lutSize] = 0, 1
	return table(samples), nil
}

// table linearly interpolates between evenly spaced samples over [0,1].
func table(samples []float64) Func {
	n := len(samples) - 1
	return func(t float64) float64 {
		if t <= 0 {
			return samples[0]
		}
		if t >= 1 {
			return samples[n]
		}
		pos := t * float64(n)
		i := int(pos)
		frac := pos - float64(i)
		return samples[i] + (samples[i+1]-samples[i])*frac
	}
}
