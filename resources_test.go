package stage

import (
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestParseAtlasHash(t *testing.T) {
	data := []byte(`{
		"frames": {
			"hero": {"frame": {"x": 0, "y": 0, "w": 32, "h": 48}},
			"tree": {"frame": {"x": 32, "y": 0, "w": 64, "h": 64}, "rotated": true}
		}
	}`)
	atlas, err := ParseAtlas(data, nil)
	if err != nil {
		t.Fatalf("ParseAtlas: %v", err)
	}
	if atlas.Len() != 2 {
		t.Fatalf("Len = %d, want 2", atlas.Len())
	}
	r, ok := atlas.Region("tree")
	if !ok {
		t.Fatal("tree region missing")
	}
	want := Region{Page: 0, X: 32, Y: 0, Width: 64, Height: 64, Rotated: true}
	if r != want {
		t.Errorf("tree = %+v, want %+v", r, want)
	}
}

func TestParseAtlasArray(t *testing.T) {
	data := []byte(`{
		"textures": [
			{"frames": {"a": {"frame": {"x": 1, "y": 2, "w": 3, "h": 4}}}},
			{"frames": {"b": {"frame": {"x": 5, "y": 6, "w": 7, "h": 8}}}}
		]
	}`)
	atlas, err := ParseAtlas(data, nil)
	if err != nil {
		t.Fatalf("ParseAtlas: %v", err)
	}
	if r, _ := atlas.Region("b"); r.Page != 1 || r.Width != 7 {
		t.Errorf("b = %+v, want page 1 width 7", r)
	}
	if _, ok := atlas.Region("missing"); ok {
		t.Error("Region found a missing name")
	}
}

func TestParseAtlasErrors(t *testing.T) {
	for _, data := range []string{`not json`, `{}`, `{"frames": []}`} {
		if _, err := ParseAtlas([]byte(data), nil); err == nil {
			t.Errorf("ParseAtlas(%s) succeeded, want error", data)
		}
	}
}

func TestResourcesImageCache(t *testing.T) {
	r := NewResources()
	img := ebiten.NewImage(4, 4)
	r.SetImage("box", img)

	got, ok := r.Image("box")
	if !ok || got != img {
		t.Error("Image did not return the cached image")
	}
	// A cached name is served without touching the file system.
	if got, err := r.LoadImage("box"); err != nil || got != img {
		t.Errorf("LoadImage(cached) = (%v, %v)", got, err)
	}

	r.Release()
	if _, ok := r.Image("box"); ok {
		t.Error("Release kept the image")
	}
}

func TestResourcesLoadImageMissing(t *testing.T) {
	r := NewResourcesFS(fstest.MapFS{})
	if _, err := r.LoadImage("nope.png"); err == nil {
		t.Error("expected error for a missing image")
	}
}

func TestResourcesAtlas(t *testing.T) {
	r := NewResources()
	data := []byte(`{"frames": {"a": {"frame": {"x": 0, "y": 0, "w": 1, "h": 1}}}}`)
	atlas, err := r.LoadAtlas("ui", data, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := r.Atlas("ui"); !ok || got != atlas {
		t.Error("Atlas did not return the cached atlas")
	}
	if _, ok := r.Atlas("other"); ok {
		t.Error("Atlas found an unknown name")
	}
}
