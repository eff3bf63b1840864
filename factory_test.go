package stage

import (
	"reflect"
	"testing"
)

func TestActorFactory(t *testing.T) {
	f := NewActorFactory()
	f.Register("b", func() Actor { return newTestActor() })
	f.Register("a", func() Actor { return newTestActor() })

	if !f.Contains("a") || f.Contains("c") {
		t.Error("Contains mismatch")
	}
	if got := f.Types(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Types = %v, want [a b]", got)
	}

	a1, ok := f.New("a")
	if !ok || a1 == nil {
		t.Fatal("New(a) failed")
	}
	a2, _ := f.New("a")
	if a1 == a2 {
		t.Error("New returned the same instance twice")
	}

	if a, ok := f.New("c"); ok || a != nil {
		t.Errorf("New(c) = (%v, %v), want (nil, false)", a, ok)
	}

	f.Unregister("a")
	if f.Contains("a") {
		t.Error("Unregister left the binding")
	}
}

func TestActorFactoryReplace(t *testing.T) {
	f := NewActorFactory()
	f.Register("x", func() Actor { return &testActor{HP: 1} })
	f.Register("x", func() Actor { return &testActor{HP: 2} })
	a, _ := f.New("x")
	if a.(*testActor).HP != 2 {
		t.Error("Register did not replace the previous constructor")
	}
}
