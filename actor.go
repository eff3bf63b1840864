package stage

import (
	"github.com/beevik/etree"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

// Actor is a unit of persistent simulation state owned by a World.
//
// Concrete actor types usually embed RootComponent, which supplies Root and
// the common persisted fields, and implement the type-specific hooks.
type Actor interface {
	// Type returns the name the actor's constructor is registered under in
	// the ActorFactory. It is written as the record's type attribute.
	Type() string
	// Root returns the actor's generic root component.
	Root() *RootComponent
	// LoadFields reads the type-specific fields from the actor's record.
	LoadFields(rec *etree.Element) error
	// SaveFields writes the type-specific fields into the actor's record.
	SaveFields(rec *etree.Element) error
}

// rootTag is the element holding the root component's fields inside an
// actor record.
const rootTag = "Root"

// RootComponent holds the fields every actor shares: identity and transform.
// It satisfies Positioner, so cameras can follow actors directly.
type RootComponent struct {
	ID       uuid.UUID
	Position Vec2
	Z        float64
	Rotation float64
	Scale    Vec2
}

// NewRootComponent returns a root component with a fresh ID and unit scale.
func NewRootComponent() RootComponent {
	return RootComponent{ID: uuid.New(), Scale: Vec2{1, 1}}
}

// Root returns r. Embedding RootComponent in an actor type provides the
// Actor.Root method.
func (r *RootComponent) Root() *RootComponent {
	return r
}

// FinalPosition returns the world-space position.
func (r *RootComponent) FinalPosition() Vec2 {
	return r.Position
}

// FinalZ returns the depth key used for render ordering.
func (r *RootComponent) FinalZ() float64 {
	return r.Z
}

// Transform returns the local-to-world affine matrix of the component.
func (r *RootComponent) Transform() [6]float64 {
	return localTransform(r.Position, r.Scale, r.Rotation)
}

// GeoM returns Transform as an ebiten.GeoM, ready for DrawImageOptions.
func (r *RootComponent) GeoM() ebiten.GeoM {
	return geoM(r.Transform())
}

// Load reads the common fields from the record's Root child. A record
// without a Root child leaves the component unchanged.
func (r *RootComponent) Load(rec *etree.Element) error {
	el := rec.SelectElement(rootTag)
	if el == nil {
		return nil
	}
	if s := el.SelectAttrValue("id", ""); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return attrError(el, "id", err)
		}
		r.ID = id
	}
	var err error
	if r.Position.X, err = FloatAttr(el, "x", r.Position.X); err != nil {
		return err
	}
	if r.Position.Y, err = FloatAttr(el, "y", r.Position.Y); err != nil {
		return err
	}
	if r.Z, err = FloatAttr(el, "z", r.Z); err != nil {
		return err
	}
	if r.Rotation, err = FloatAttr(el, "rotation", r.Rotation); err != nil {
		return err
	}
	if r.Scale.X, err = FloatAttr(el, "sx", r.Scale.X); err != nil {
		return err
	}
	if r.Scale.Y, err = FloatAttr(el, "sy", r.Scale.Y); err != nil {
		return err
	}
	return nil
}

// Save writes the common fields into a new Root child of rec.
func (r *RootComponent) Save(rec *etree.Element) error {
	el := rec.CreateElement(rootTag)
	el.CreateAttr("id", r.ID.String())
	SetFloatAttr(el, "x", r.Position.X)
	SetFloatAttr(el, "y", r.Position.Y)
	SetFloatAttr(el, "z", r.Z)
	SetFloatAttr(el, "rotation", r.Rotation)
	SetFloatAttr(el, "sx", r.Scale.X)
	SetFloatAttr(el, "sy", r.Scale.Y)
	return nil
}
