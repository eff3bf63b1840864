package stage

import (
	"encoding/json"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rotisserie/eris"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string     `json:"action"`
	Label  string     `json:"label,omitempty"`
	Key    ebiten.Key `json:"key,omitempty"`
	X      float64    `json:"x,omitempty"`
	Y      float64    `json:"y,omitempty"`
	Frames int        `json:"frames,omitempty"`
	Path   string     `json:"path,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input, screenshots, and saves across frames
// for automated testing. Attach to a World via SetTestRunner.
//
// Supported actions: "key" (press and release Key), "click" (at X, Y),
// "wait" (Frames), "screenshot" (Label), "save" (Path).
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	err       error
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a World via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, eris.Wrap(err, "parse test script")
	}
	if len(script.Steps) == 0 {
		return nil, eris.New("parse test script: no steps")
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the world. The runner advances once
// per frame from the game loop, before injected input is delivered.
func (w *World) SetTestRunner(runner *TestRunner) {
	w.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Err returns the first error raised by a "save" step, if any.
func (r *TestRunner) Err() error {
	return r.err
}

// step advances the test runner by one frame.
func (r *TestRunner) step(w *World) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(w.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		w.Screenshot(st.Label)
	case "key":
		w.InjectKey(st.Key)
	case "click":
		w.InjectClick(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "save":
		if err := w.Save(st.Path); err != nil && r.err == nil {
			r.err = err
		}
	default:
		w.log.Warn("unknown test step", "action", st.Action, "index", r.cursor-1)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(w.injectQueue) == 0 {
		r.done = true
	}
}
