// Package scene describes the page: window, palette, text blocks, reveal
// settings, navigation and named easing curves. Scenes are YAML files.
package scene

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"glyph-motion/palette"
)

type Window struct {
	Title      string  `yaml:"title"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	PageHeight float64 `yaml:"page_height"`
}

// Palette holds #rrggbb colors.
type Palette struct {
	Neutral    string `yaml:"neutral"`
	AccentA    string `yaml:"accent_a"`
	AccentB    string `yaml:"accent_b"`
	Ink        string `yaml:"ink"`
	Muted      string `yaml:"muted"`
	Background string `yaml:"background"`
}

type Blend struct {
	Accent  float64 `yaml:"accent"`
	Neutral float64 `yaml:"neutral"`
}

type Motion struct {
	Duration time.Duration `yaml:"duration"`
	Ease     string        `yaml:"ease"`
}

// Kind overrides the built-in tunables of one text kind. Unset fields keep
// their defaults.
type Kind struct {
	Falloff       *float64       `yaml:"falloff,omitempty"`
	MinWeight     *float64       `yaml:"min_weight,omitempty"`
	MaxWeight     *float64       `yaml:"max_weight,omitempty"`
	BaseWeight    *float64       `yaml:"base_weight,omitempty"`
	MaxScale      *float64       `yaml:"max_scale,omitempty"`
	MaxLift       *float64       `yaml:"max_lift,omitempty"`
	MaxShadow     *float64       `yaml:"max_shadow,omitempty"`
	ContainerLift *float64       `yaml:"container_lift,omitempty"`
	Hover         *Motion        `yaml:"hover,omitempty"`
	Leave         *Motion        `yaml:"leave,omitempty"`
	EnterStagger  *time.Duration `yaml:"enter_stagger,omitempty"`
	LeaveStagger  *time.Duration `yaml:"leave_stagger,omitempty"`
}

// Block is one text block on the page.
type Block struct {
	ID         string  `yaml:"id"`
	Text       string  `yaml:"text"`
	Kind       string  `yaml:"kind"`
	BaseWeight float64 `yaml:"base_weight"`
	Size       float64 `yaml:"size"`
	Italic     bool    `yaml:"italic"`
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Hover      bool    `yaml:"hover"`
	Reveal     bool    `yaml:"reveal"`
}

type Reveal struct {
	Threshold   float64       `yaml:"threshold"`
	Seed        uint64        `yaml:"seed"`
	FromX       float64       `yaml:"from_x"`
	In          Motion        `yaml:"in"`
	InStagger   time.Duration `yaml:"in_stagger"`
	RightOffset time.Duration `yaml:"right_offset"`
	Hold        time.Duration `yaml:"hold"`
	Out         Motion        `yaml:"out"`
	OutStagger  time.Duration `yaml:"out_stagger"`
	Drift       float64       `yaml:"drift"`
}

type Link struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

type Icon struct {
	ID  int    `yaml:"id"`
	Img string `yaml:"img"`
}

type Nav struct {
	Title string `yaml:"title"`
	Links []Link `yaml:"links"`
	Icons []Icon `yaml:"icons"`
}

type Clock struct {
	Interval time.Duration `yaml:"interval"`
}

// Scene is the whole page description.
type Scene struct {
	Window  Window          `yaml:"window"`
	Palette Palette         `yaml:"palette"`
	Blend   Blend           `yaml:"blend"`
	Kinds   map[string]Kind `yaml:"kinds,omitempty"`
	Blocks  []Block         `yaml:"blocks"`
	Reveal  Reveal          `yaml:"reveal"`
	Nav     Nav             `yaml:"nav"`
	Clock   Clock           `yaml:"clock"`
	// Easings maps curve names to Starlark scripts defining ease(t).
	Easings map[string]string `yaml:"easings,omitempty"`
}

// Default is the built-in page.
func Default() *Scene {
	return &Scene{
		Window: Window{Title: "glyph-motion", Width: 1024, Height: 768, PageHeight: 1700},
		Palette: Palette{
			Neutral:    palette.ToHex(palette.Neutral),
			AccentA:    palette.ToHex(palette.AccentA),
			AccentB:    palette.ToHex(palette.AccentB),
			Ink:        palette.ToHex(palette.Ink),
			Muted:      "#6b6b6b",
			Background: palette.ToHex(palette.Background),
		},
		Blend: Blend{Accent: 1, Neutral: 0.9},
		Blocks: []Block{
			{ID: "subtitle", Text: "hey, I'm Badre! Welcome to my", Kind: "subtitle", BaseWeight: 100, Size: 30, X: 160, Y: 260, Hover: true},
			{ID: "title", Text: "portfolio", Kind: "title", BaseWeight: 400, Size: 96, Italic: true, X: 300, Y: 330, Hover: true},
			{ID: "hire", Text: "Hire me", Kind: "title", BaseWeight: 400, Size: 72, X: 360, Y: 1250, Reveal: true},
		},
		Reveal: Reveal{
			Threshold:   0.85,
			Seed:        1,
			FromX:       -40,
			In:          Motion{Duration: 600 * time.Millisecond, Ease: "power3.out"},
			InStagger:   60 * time.Millisecond,
			RightOffset: -200 * time.Millisecond,
			Hold:        800 * time.Millisecond,
			Out:         Motion{Duration: 500 * time.Millisecond, Ease: "power1.in"},
			OutStagger:  40 * time.Millisecond,
			Drift:       8,
		},
		Nav: Nav{
			Title: "Badre's Portfolio",
			Links: []Link{{ID: 1, Name: "Projects"}, {ID: 2, Name: "Contact"}, {ID: 3, Name: "Resume"}},
			Icons: []Icon{{ID: 1, Img: "wifi"}, {ID: 2, Img: "search"}, {ID: 3, Img: "user"}, {ID: 4, Img: "mode"}},
		},
		Clock: Clock{Interval: time.Second},
	}
}

// Parse decodes a scene. Fields the document leaves out keep the values of
// Default.
func Parse(data []byte) (*Scene, error) {
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, errors.Wrap(err, "decode scene")
	}
	return s, nil
}

// Load reads and decodes the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read scene %s", path)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return s, nil
}

// Save writes s to path as YAML.
func Save(s *Scene, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()
	return errors.Wrapf(Write(f, s), "save %s", path)
}

// Write encodes s as YAML to w.
func Write(w io.Writer, s *Scene) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return errors.Wrap(err, "encode scene")
	}
	return enc.Close()
}
