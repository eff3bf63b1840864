package stage

import (
	"github.com/beevik/etree"
	"github.com/rotisserie/eris"
)

// Load and save failures. Returned errors wrap these; test with errors.Is.
var (
	// ErrDocument reports a world document that cannot be opened or parsed.
	ErrDocument = eris.New("stage: cannot read world document")
	// ErrNoRoot reports a world document without the Actors section.
	ErrNoRoot = eris.New("stage: world document has no Actors section")
	// ErrWrite reports a world document that could not be written.
	ErrWrite = eris.New("stage: cannot write world document")
	// ErrConstructor reports a registered constructor that returned a nil
	// actor or an actor without a root component.
	ErrConstructor = eris.New("stage: actor constructor returned no actor")
)

func attrError(el *etree.Element, name string, err error) error {
	return eris.Wrapf(err, "stage: <%s> attribute %q", el.Tag, name)
}
