package stage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "key", "key": "Space"},
			{"action": "wait", "frames": 3},
			{"action": "save", "path": "out.xml"}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "click" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "key" || runner.steps[2].Key != ebiten.KeySpace {
		t.Errorf("step 2 key = %v, want Space", runner.steps[2].Key)
	}
	if runner.steps[3].Action != "wait" || runner.steps[3].Frames != 3 {
		t.Error("step 3 mismatch")
	}
	if runner.steps[4].Path != "out.xml" {
		t.Error("step 4 mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	if _, err := LoadTestScript([]byte(`not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadTestScript_Empty(t *testing.T) {
	if _, err := LoadTestScript([]byte(`{"steps": []}`)); err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestRunnerStep_Click(t *testing.T) {
	w := NewWorld()
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "click", "x": 50, "y": 50}]}`))
	if err != nil {
		t.Fatal(err)
	}
	w.SetTestRunner(runner)

	// Click queues press+release.
	runner.step(w)
	if w.PendingInjected() != 2 {
		t.Fatalf("expected 2 queued events, got %d", w.PendingInjected())
	}
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	w.deliverInjected()
	w.deliverInjected()

	runner.step(w)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	w := NewWorld()
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "done"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	// Frame 1: execute wait (waitCount becomes 2).
	runner.step(w)
	// Frames 2 and 3: count down.
	runner.step(w)
	runner.step(w)
	if runner.Done() {
		t.Error("should not be done, screenshot step not yet executed")
	}

	// Frame 4: execute screenshot step, runner finishes.
	runner.step(w)
	if !runner.Done() {
		t.Error("runner should be done after screenshot step")
	}
	if len(w.screenshotQueue) != 1 || w.screenshotQueue[0] != "done" {
		t.Errorf("expected screenshot 'done', got %v", w.screenshotQueue)
	}
}

func TestRunnerStep_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.xml")
	w := testWorld()
	w.AddActor(newTestActor())
	w.Update()

	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "save", "path": ` + quoteJSON(path) + `}]}`))
	if err != nil {
		t.Fatal(err)
	}
	runner.step(w)
	if !runner.Done() || runner.Err() != nil {
		t.Fatalf("Done = %v, Err = %v", runner.Done(), runner.Err())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("save step wrote nothing: %v", err)
	}
}

func TestRunnerStep_SaveErrorRecorded(t *testing.T) {
	w := testWorld()
	bad := filepath.Join(t.TempDir(), "missing", "dir", "x.xml")
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "save", "path": ` + quoteJSON(bad) + `}]}`))
	if err != nil {
		t.Fatal(err)
	}
	runner.step(w)
	if runner.Err() == nil {
		t.Error("save failure not recorded")
	}
}

func TestRunnerDrivenByStep(t *testing.T) {
	w := NewWorld()
	kw := &keyWatcher{world: w}
	w.AddTickable(kw)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "key", "key": "Enter"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	w.SetTestRunner(runner)

	for i := 0; i < 5 && !runner.Done(); i++ {
		w.Step(0)
	}
	if !runner.Done() {
		t.Fatal("runner not done after 5 frames")
	}
	if kw.seen != 1 {
		t.Errorf("scripted key seen %d times, want 1", kw.seen)
	}
}

func quoteJSON(s string) string {
	b := []byte{'"'}
	for _, r := range filepath.ToSlash(s) {
		if r == '"' || r == '\\' {
			b = append(b, '\\')
		}
		b = append(b, string(r)...)
	}
	return string(append(b, '"'))
}
