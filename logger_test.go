package stage

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	l.Debug("d", "k", 1)
	l.Info("i")
	l.Warn("w")
	l.Error("e")

	out := buf.String()
	for _, want := range []string{"msg=d", "k=1", "msg=i", "msg=w", "msg=e", "component=stage"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWorldLogsSkippedTypes(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	w := NewWorld(WithLogger(l))

	if err := w.LoadFrom(strings.NewReader(`<Actors><Actor type="ghost"/></Actors>`)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "type=ghost") {
		t.Errorf("skip not logged:\n%s", buf.String())
	}
}

func TestWorldDebugLogsFrame(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	w := NewWorld(WithLogger(l))
	w.SetDebugMode(true)
	w.AddActor(newTestActor())
	w.AddRenderable(&fakeRenderable{})
	w.Update()
	w.Render(&recordTarget{})

	out := buf.String()
	if !strings.Contains(out, "commit actors") || !strings.Contains(out, "msg=render") {
		t.Errorf("debug output missing frame lines:\n%s", out)
	}
}
