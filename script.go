package region

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoSteps is returned for a script without steps.
	ErrNoSteps = errors.New("no steps")
	// ErrUnknownOp is returned for a step whose op is not recognized.
	ErrUnknownOp = errors.New("unknown op")
	// ErrBadRect is returned when a rectangle is not four integers.
	ErrBadRect = errors.New("rectangle must be [x, y, width, height]")
)

// editStep is a single action in an edit script.
type editStep struct {
	Op    string  `yaml:"op"`
	Label string  `yaml:"label,omitempty"`
	Rect  []int32 `yaml:"rect,flow,omitempty"`
	DX    int32   `yaml:"dx,omitempty"`
	DY    int32   `yaml:"dy,omitempty"`

	// Expectations, checked by "expect" steps.
	Area       *int64    `yaml:"area,omitempty"`
	Size       *int      `yaml:"size,omitempty"`
	Bounds     []int32   `yaml:"bounds,flow,omitempty"`
	Contains   [][]int32 `yaml:"contains,omitempty"`
	Excludes   [][]int32 `yaml:"excludes,omitempty"`
	Intersects [][]int32 `yaml:"intersects,omitempty"`
	Disjoint   [][]int32 `yaml:"disjoint,omitempty"`
	Points     [][]int32 `yaml:"points,omitempty"`
	Holes      [][]int32 `yaml:"holes,omitempty"`

	rect Rectangle
}

// editScript is the top-level YAML structure for an edit script.
type editScript struct {
	Name   string     `yaml:"name"`
	Region [][]int32  `yaml:"region"`
	Steps  []editStep `yaml:"steps"`
}

// EditScript replays a recorded sequence of region edits and checks
// expectations along the way. Scripts are YAML (JSON is accepted too):
//
//	name: punch a hole
//	region: [[0, 0, 30, 30]]
//	steps:
//	  - {op: subtract, rect: [10, 10, 10, 10]}
//	  - {op: expect, size: 4, area: 800, disjoint: [[10, 10, 10, 10]]}
//
// Ops are add, subtract, xor, intersect, move (dx, dy), clear and expect.
type EditScript struct {
	name    string
	initial []Rectangle
	steps   []editStep
}

// ExpectationError reports the first failed expectation of a script.
type ExpectationError struct {
	Script string
	Step   int
	Label  string
	Detail string
}

func (e *ExpectationError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("script %q step %d (%s): %s", e.Script, e.Step, e.Label, e.Detail)
	}
	return fmt.Sprintf("script %q step %d: %s", e.Script, e.Step, e.Detail)
}

// LoadEditScript parses a single edit script.
func LoadEditScript(data []byte) (*EditScript, error) {
	var raw editScript
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse edit script: %w", err)
	}
	return compileScript(raw)
}

// LoadEditScripts parses a multi-document YAML stream, one script per
// document.
func LoadEditScripts(data []byte) ([]*EditScript, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out []*EditScript
	for {
		var raw editScript
		err := dec.Decode(&raw)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse edit script %d: %w", len(out)+1, err)
		}
		s, err := compileScript(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("parse edit scripts: %w", ErrNoSteps)
	}
	return out, nil
}

func compileScript(raw editScript) (*EditScript, error) {
	if len(raw.Steps) == 0 {
		return nil, fmt.Errorf("parse edit script %q: %w", raw.Name, ErrNoSteps)
	}
	initial, err := parseRects(raw.Region)
	if err != nil {
		return nil, fmt.Errorf("parse edit script %q: region: %w", raw.Name, err)
	}
	for i := range raw.Steps {
		st := &raw.Steps[i]
		switch st.Op {
		case "add", "subtract", "xor", "intersect":
			if st.rect, err = parseRect(st.Rect); err != nil {
				return nil, fmt.Errorf("parse edit script %q: step %d: %w", raw.Name, i+1, err)
			}
		case "move", "clear":
		case "expect":
			if err := checkExpectShapes(st); err != nil {
				return nil, fmt.Errorf("parse edit script %q: step %d: %w", raw.Name, i+1, err)
			}
		default:
			return nil, fmt.Errorf("parse edit script %q: step %d: %w %q", raw.Name, i+1, ErrUnknownOp, st.Op)
		}
	}
	return &EditScript{name: raw.Name, initial: initial, steps: raw.Steps}, nil
}

func checkExpectShapes(st *editStep) error {
	if st.Bounds != nil {
		if _, err := parseRect(st.Bounds); err != nil {
			return fmt.Errorf("bounds: %w", err)
		}
	}
	for _, list := range [][][]int32{st.Contains, st.Excludes, st.Intersects, st.Disjoint} {
		if _, err := parseRects(list); err != nil {
			return err
		}
	}
	for _, list := range [][][]int32{st.Points, st.Holes} {
		for _, p := range list {
			if len(p) != 2 {
				return fmt.Errorf("point %v: want [x, y]", p)
			}
		}
	}
	return nil
}

func parseRect(v []int32) (Rectangle, error) {
	if len(v) != 4 {
		return Rectangle{}, fmt.Errorf("%v: %w", v, ErrBadRect)
	}
	return Rectangle{X: v[0], Y: v[1], Width: v[2], Height: v[3]}, nil
}

func parseRects(list [][]int32) ([]Rectangle, error) {
	out := make([]Rectangle, 0, len(list))
	for _, v := range list {
		r, err := parseRect(v)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// Name returns the script's name.
func (s *EditScript) Name() string {
	return s.name
}

// Initial returns the rectangles the script starts from.
func (s *EditScript) Initial() []Rectangle {
	return s.initial
}

// Run builds the script's initial region and applies every step to it.
// The region is returned even when an expectation fails.
func (s *EditScript) Run() (*Region, error) {
	reg := NewRegion(s.initial)
	return reg, s.Apply(reg)
}

// Apply runs the steps against reg and stops at the first failed
// expectation, returned as an *ExpectationError.
func (s *EditScript) Apply(reg *Region) error {
	for i := range s.steps {
		st := &s.steps[i]
		switch st.Op {
		case "add":
			reg.Add(st.rect)
		case "subtract":
			reg.Subtract(st.rect)
		case "xor":
			reg.Xor(st.rect)
		case "intersect":
			reg.Intersect(st.rect)
		case "move":
			reg.Move(st.DX, st.DY)
		case "clear":
			reg.Clear()
		case "expect":
			if detail := st.check(reg); detail != "" {
				return &ExpectationError{Script: s.name, Step: i + 1, Label: st.Label, Detail: detail}
			}
		}
	}
	return nil
}

// check returns a description of the first unmet expectation, or "".
// Shapes were validated by compileScript.
func (st *editStep) check(reg *Region) string {
	if st.Size != nil && reg.Size() != *st.Size {
		return fmt.Sprintf("size = %d, want %d", reg.Size(), *st.Size)
	}
	if st.Area != nil && reg.Area() != *st.Area {
		return fmt.Sprintf("area = %d, want %d", reg.Area(), *st.Area)
	}
	if st.Bounds != nil {
		want, _ := parseRect(st.Bounds)
		if got := reg.Bounds(); got != want {
			return fmt.Sprintf("bounds = %v, want %v", got, want)
		}
	}
	for _, v := range st.Contains {
		if r, _ := parseRect(v); !reg.Contains(r) {
			return fmt.Sprintf("does not contain %v", r)
		}
	}
	for _, v := range st.Excludes {
		if r, _ := parseRect(v); reg.Contains(r) {
			return fmt.Sprintf("contains %v", r)
		}
	}
	for _, v := range st.Intersects {
		if r, _ := parseRect(v); !reg.Intersects(r) {
			return fmt.Sprintf("does not intersect %v", r)
		}
	}
	for _, v := range st.Disjoint {
		if r, _ := parseRect(v); reg.Intersects(r) {
			return fmt.Sprintf("intersects %v", r)
		}
	}
	for _, p := range st.Points {
		if !reg.ContainsPoint(p[0], p[1]) {
			return fmt.Sprintf("point (%d, %d) not covered", p[0], p[1])
		}
	}
	for _, p := range st.Holes {
		if reg.ContainsPoint(p[0], p[1]) {
			return fmt.Sprintf("point (%d, %d) covered", p[0], p[1])
		}
	}
	return ""
}
