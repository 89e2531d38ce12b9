package hovertip

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// testScript is the top-level structure for a test script.
type testScript struct {
	Steps []testStep `yaml:"steps"`
}

// Snapshot records the tooltip state at a "snapshot" step.
type Snapshot struct {
	Label   string
	Hovered string // name of the hovered node, empty if none
	Showing bool
	Text    string
	Style   Style
}

// TestRunner sequences synthetic cursor actions across frames for automated
// testing. Attach to a Scene via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool

	pointer   *SyntheticCursor
	snapshots []Snapshot
}

// LoadTestScript parses a YAML (or JSON) test script and returns a TestRunner
// ready to be attached to a Scene via SetTestRunner.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "move", "hide", "show", "wait", "snapshot":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{
		steps:   script.Steps,
		pointer: NewSyntheticCursor(0, 0),
	}, nil
}

// SetTestRunner attaches a TestRunner to the scene and routes the scene's
// cursor through it. The runner is stepped from Scene.Update before input is
// processed each frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
	if runner != nil {
		s.SetCursor(runner.pointer)
	}
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Cursor returns the synthetic cursor the runner drives.
func (r *TestRunner) Cursor() *SyntheticCursor {
	return r.pointer
}

// Snapshots returns the states recorded so far.
func (r *TestRunner) Snapshots() []Snapshot {
	return r.snapshots
}

// step advances the test runner by one frame. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		if r.waitCount == 0 && r.cursor >= len(r.steps) {
			r.done = true
		}
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "move":
		r.pointer.MoveTo(st.X, st.Y)
	case "hide":
		r.pointer.Hide()
	case "show":
		r.pointer.Show()
	case "snapshot":
		r.snapshots = append(r.snapshots, s.snapshot(st.Label))
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

// snapshot captures the tooltip state as of the previous frame.
func (s *Scene) snapshot(label string) Snapshot {
	snap := Snapshot{Label: label}
	if h := s.tooltips.Hovered(); h != nil {
		snap.Hovered = h.Name
	}
	if tt := s.tooltips.Active(); tt.IsValid() {
		snap.Showing = true
		snap.Text = tt.Text()
		snap.Style = tt.Style
	}
	return snap
}
