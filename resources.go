package stage

import (
	"encoding/json"
	"image"
	"image/color"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rotisserie/eris"
)

// Resources is a shared cache of images and sprite atlases keyed by name.
// Actors and components reach it through World.Resources.
type Resources struct {
	fsys    fs.FS
	images  map[string]*ebiten.Image
	atlases map[string]*Atlas
}

// NewResources creates an empty cache that loads files from the OS file
// system.
func NewResources() *Resources {
	return &Resources{
		images:  make(map[string]*ebiten.Image),
		atlases: make(map[string]*Atlas),
	}
}

// NewResourcesFS creates an empty cache that loads files from fsys, e.g. an
// embed.FS.
func NewResourcesFS(fsys fs.FS) *Resources {
	r := NewResources()
	r.fsys = fsys
	return r
}

// LoadImage decodes the image at path and caches it under path. A cached
// image is returned without touching the file system.
func (r *Resources) LoadImage(path string) (*ebiten.Image, error) {
	if img, ok := r.images[path]; ok {
		return img, nil
	}
	var (
		img *ebiten.Image
		err error
	)
	if r.fsys != nil {
		img, _, err = ebitenutil.NewImageFromFileSystem(r.fsys, path)
	} else {
		img, _, err = ebitenutil.NewImageFromFile(path)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "stage: load image %s", path)
	}
	r.images[path] = img
	return img, nil
}

// SetImage caches img under name, replacing any previous entry.
func (r *Resources) SetImage(name string, img *ebiten.Image) {
	r.images[name] = img
}

// Image returns the cached image for name.
func (r *Resources) Image(name string) (*ebiten.Image, bool) {
	img, ok := r.images[name]
	return img, ok
}

// LoadAtlas parses TexturePacker JSON for the given page images and caches
// the atlas under name.
func (r *Resources) LoadAtlas(name string, jsonData []byte, pages []*ebiten.Image) (*Atlas, error) {
	atlas, err := ParseAtlas(jsonData, pages)
	if err != nil {
		return nil, err
	}
	r.atlases[name] = atlas
	return atlas, nil
}

// Atlas returns the cached atlas for name.
func (r *Resources) Atlas(name string) (*Atlas, bool) {
	a, ok := r.atlases[name]
	return a, ok
}

// Release drops every cached image and atlas.
func (r *Resources) Release() {
	clear(r.images)
	clear(r.atlases)
}

// --- Atlas ---

// Region describes a named sub-rectangle within an atlas page.
type Region struct {
	Page          int
	X, Y          int
	Width, Height int
	Rotated       bool
}

// Atlas holds one or more atlas page images and a map of named regions.
type Atlas struct {
	// Pages contains the atlas page images indexed by page number.
	Pages   []*ebiten.Image
	regions map[string]Region
}

// Region returns the region for the given name.
func (a *Atlas) Region(name string) (Region, bool) {
	r, ok := a.regions[name]
	return r, ok
}

// SubImage returns the image for the named region. A missing name or page
// yields a 1x1 magenta placeholder so that missing art is visible on screen.
func (a *Atlas) SubImage(name string) *ebiten.Image {
	r, ok := a.regions[name]
	if !ok || r.Page < 0 || r.Page >= len(a.Pages) || a.Pages[r.Page] == nil {
		return placeholderImage()
	}
	rect := image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
	return a.Pages[r.Page].SubImage(rect).(*ebiten.Image)
}

// Len returns the number of regions.
func (a *Atlas) Len() int {
	return len(a.regions)
}

// magenta placeholder singleton (no sync.Once; single-threaded)
var magentaImage *ebiten.Image

func placeholderImage() *ebiten.Image {
	if magentaImage == nil {
		magentaImage = ebiten.NewImage(1, 1)
		magentaImage.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	}
	return magentaImage
}

// ParseAtlas parses TexturePacker JSON data and associates the given page
// images. Supports both the hash format (single "frames" object) and the
// array format ("textures" array with per-page frame lists).
func ParseAtlas(jsonData []byte, pages []*ebiten.Image) (*Atlas, error) {
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, eris.Wrap(err, "stage: parse atlas JSON")
	}

	atlas := &Atlas{
		Pages:   pages,
		regions: make(map[string]Region),
	}

	switch {
	case probe.Textures != nil:
		var textures []struct {
			Frames map[string]jsonFrame `json:"frames"`
		}
		if err := json.Unmarshal(probe.Textures, &textures); err != nil {
			return nil, eris.Wrap(err, "stage: parse atlas textures array")
		}
		for i, tex := range textures {
			for name, f := range tex.Frames {
				atlas.regions[name] = f.region(i)
			}
		}
	case probe.Frames != nil:
		var frames map[string]jsonFrame
		if err := json.Unmarshal(probe.Frames, &frames); err != nil {
			return nil, eris.Wrap(err, "stage: parse atlas frames")
		}
		for name, f := range frames {
			atlas.regions[name] = f.region(0)
		}
	default:
		return nil, eris.New("stage: atlas JSON has neither \"frames\" nor \"textures\" key")
	}
	return atlas, nil
}

type jsonFrame struct {
	Frame struct {
		X int `json:"x"`
		Y int `json:"y"`
		W int `json:"w"`
		H int `json:"h"`
	} `json:"frame"`
	Rotated bool `json:"rotated"`
}

func (f jsonFrame) region(page int) Region {
	return Region{
		Page:    page,
		X:       f.Frame.X,
		Y:       f.Frame.Y,
		Width:   f.Frame.W,
		Height:  f.Frame.H,
		Rotated: f.Rotated,
	}
}
