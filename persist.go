package stage

import (
	"io"
	"strconv"

	"github.com/beevik/etree"
	"github.com/rotisserie/eris"
)

// Document layout: <Actors><Actor type="..."> type fields... <Root .../></Actor></Actors>
const (
	actorsTag = "Actors"
	actorTag  = "Actor"
	typeAttr  = "type"
)

// Load reads the actor population from the XML document at path and stages
// every actor whose type is registered in the factory for addition. Loaded
// actors become live at the next Update. Records with an unknown type are
// skipped.
//
// Load fails, staging nothing, when the document cannot be read, has no
// Actors section, or an actor hook reports an error.
func (w *World) Load(path string) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return eris.Wrapf(ErrDocument, "%s: %v", path, err)
	}
	n, err := w.loadDocument(doc)
	if err != nil {
		return eris.Wrapf(err, "load %s", path)
	}
	w.log.Info("world loaded", "path", path, "actors", n)
	return nil
}

// LoadFrom is Load for an XML document read from r.
func (w *World) LoadFrom(r io.Reader) error {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return eris.Wrapf(ErrDocument, "%v", err)
	}
	_, err := w.loadDocument(doc)
	return err
}

func (w *World) loadDocument(doc *etree.Document) (int, error) {
	root := doc.SelectElement(actorsTag)
	if root == nil {
		return 0, ErrNoRoot
	}

	records := root.ChildElements()
	loaded := make([]Actor, 0, len(records))
	for i, rec := range records {
		typeName := rec.SelectAttrValue(typeAttr, "")
		a, ok := w.factory.New(typeName)
		if !ok {
			w.log.Debug("skipping actor of unknown type", "type", typeName, "index", i)
			continue
		}
		if isNil(a) || isNil(a.Root()) {
			return 0, eris.Wrapf(ErrConstructor, "actor %d (%s)", i, typeName)
		}
		if err := a.LoadFields(rec); err != nil {
			return 0, eris.Wrapf(err, "actor %d (%s)", i, typeName)
		}
		if err := a.Root().Load(rec); err != nil {
			return 0, eris.Wrapf(err, "actor %d (%s) root", i, typeName)
		}
		loaded = append(loaded, a)
	}

	for _, a := range loaded {
		w.AddActor(a)
	}
	return len(loaded), nil
}

// Save writes every committed actor, in index order, to an XML document at
// path. Each record gets the actor's type attribute, then its type-specific
// fields, then its root component fields. Staged but uncommitted actors are
// not written.
func (w *World) Save(path string) error {
	doc, err := w.buildDocument()
	if err != nil {
		return eris.Wrapf(err, "save %s", path)
	}
	if err := doc.WriteToFile(path); err != nil {
		return eris.Wrapf(ErrWrite, "%s: %v", path, err)
	}
	w.log.Info("world saved", "path", path, "actors", w.actors.Len())
	return nil
}

// SaveTo is Save for an XML document written to wr.
func (w *World) SaveTo(wr io.Writer) error {
	doc, err := w.buildDocument()
	if err != nil {
		return err
	}
	if _, err := doc.WriteTo(wr); err != nil {
		return eris.Wrapf(ErrWrite, "%v", err)
	}
	return nil
}

func (w *World) buildDocument() (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(actorsTag)
	for i, a := range w.actors.Items() {
		rec := root.CreateElement(actorTag)
		rec.CreateAttr(typeAttr, a.Type())
		if err := a.SaveFields(rec); err != nil {
			return nil, eris.Wrapf(err, "actor %d (%s)", i, a.Type())
		}
		if err := a.Root().Save(rec); err != nil {
			return nil, eris.Wrapf(err, "actor %d (%s) root", i, a.Type())
		}
	}
	doc.Indent(2)
	return doc, nil
}

// --- Attribute helpers for actor hooks ---

// FloatAttr parses the named attribute of el as a float64. A missing
// attribute yields def.
func FloatAttr(el *etree.Element, name string, def float64) (float64, error) {
	attr := el.SelectAttr(name)
	if attr == nil {
		return def, nil
	}
	v, err := strconv.ParseFloat(attr.Value, 64)
	if err != nil {
		return def, attrError(el, name, err)
	}
	return v, nil
}

// SetFloatAttr writes v as the named attribute of el.
func SetFloatAttr(el *etree.Element, name string, v float64) {
	el.CreateAttr(name, strconv.FormatFloat(v, 'g', -1, 64))
}

// IntAttr parses the named attribute of el as an int. A missing attribute
// yields def.
func IntAttr(el *etree.Element, name string, def int) (int, error) {
	attr := el.SelectAttr(name)
	if attr == nil {
		return def, nil
	}
	v, err := strconv.Atoi(attr.Value)
	if err != nil {
		return def, attrError(el, name, err)
	}
	return v, nil
}

// SetIntAttr writes v as the named attribute of el.
func SetIntAttr(el *etree.Element, name string, v int) {
	el.CreateAttr(name, strconv.Itoa(v))
}

// BoolAttr parses the named attribute of el as a bool. A missing attribute
// yields def.
func BoolAttr(el *etree.Element, name string, def bool) (bool, error) {
	attr := el.SelectAttr(name)
	if attr == nil {
		return def, nil
	}
	v, err := strconv.ParseBool(attr.Value)
	if err != nil {
		return def, attrError(el, name, err)
	}
	return v, nil
}

// SetBoolAttr writes v as the named attribute of el.
func SetBoolAttr(el *etree.Element, name string, v bool) {
	el.CreateAttr(name, strconv.FormatBool(v))
}
