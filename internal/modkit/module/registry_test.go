package module

import "testing"

type demoPort interface{ Tag() string }

type demoPorts struct{ tag string }

func (d demoPorts) Tag() string { return d.tag }

func TestRegisterAndPortsAs(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("demo", demoPorts{tag: "v1"})

	got, ok := PortsAs[demoPorts]("demo")
	if !ok || got.Tag() != "v1" {
		t.Fatalf("got %+v ok=%v", got, ok)
	}
}

func TestPortsAsMissingName(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := PortsAs[demoPorts]("nope"); ok {
		t.Fatalf("expected miss for unregistered name")
	}
}

func TestPortsAsWrongType(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register("demo", demoPorts{tag: "v1"})
	if _, ok := PortsAs[int]("demo"); ok {
		t.Fatalf("expected type mismatch to report not ok")
	}
}

func TestResetClears(t *testing.T) {
	Register("demo", demoPorts{})
	Reset()
	if _, ok := PortsAs[demoPorts]("demo"); ok {
		t.Fatalf("registry not cleared")
	}
}
