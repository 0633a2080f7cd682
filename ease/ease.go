// Package ease provides the easing curves used by the animation scheduler.
//
// Curves are addressed by name ("power2.out", "power1.inOut", ...) so that
// scene files can refer to them. Custom curves can be registered from
// Starlark scripts or built from a damped spring.
package ease

import (
	"math"
	"sort"
	"strings"
)

// Func maps linear progress t in [0,1] to eased progress.
// Eased values may leave [0,1] (overshoot) but must satisfy f(0)=0 and f(1)=1.
type Func func(t float64) float64

func Linear(t float64) float64 { return t }

// powerIn returns t^(n+1), matching the usual power0..power4 family.
func powerIn(n int) Func {
	e := float64(n + 1)
	return func(t float64) float64 { return math.Pow(t, e) }
}

func powerOut(n int) Func {
	in := powerIn(n)
	return func(t float64) float64 { return 1 - in(1-t) }
}

func powerInOut(n int) Func {
	in := powerIn(n)
	return func(t float64) float64 {
		if t < 0.5 {
			return in(t*2) / 2
		}
		return 1 - in((1-t)*2)/2
	}
}

var (
	Power1In    = powerIn(1)
	Power1Out   = powerOut(1)
	Power1InOut = powerInOut(1)
	Power2In    = powerIn(2)
	Power2Out   = powerOut(2)
	Power2InOut = powerInOut(2)
	Power3In    = powerIn(3)
	Power3Out   = powerOut(3)
	Power3InOut = powerInOut(3)
)

// Registry resolves curve names.
type Registry struct {
	curves map[string]Func
}

// NewRegistry returns a registry preloaded with the built-in curves.
func NewRegistry() *Registry {
	r := &Registry{curves: map[string]Func{
		"linear":       Linear,
		"none":         Linear,
		"power1.in":    Power1In,
		"power1.out":   Power1Out,
		"power1.inout": Power1InOut,
		"power2.in":    Power2In,
		"power2.out":   Power2Out,
		"power2.inout": Power2InOut,
		"power3.in":    Power3In,
		"power3.out":   Power3Out,
		"power3.inout": Power3InOut,
	}}
	return r
}

// Register adds or replaces a named curve.
func (r *Registry) Register(name string, f Func) {
	r.curves[strings.ToLower(name)] = f
}

// Lookup finds a curve by case-insensitive name.
func (r *Registry) Lookup(name string) (Func, bool) {
	f, ok := r.curves[strings.ToLower(name)]
	return f, ok
}

// Get is like Lookup but falls back to Linear.
func (r *Registry) Get(name string) Func {
	if f, ok := r.Lookup(name); ok {
		return f
	}
	return Linear
}

// Names lists registered curves in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.curves))
	for k := range r.curves {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Default is the registry of built-in curves.
var Default = NewRegistry()
