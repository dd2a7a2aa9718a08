package module

import (
	"strings"
	"testing"
)

type versionPort interface{ Version() string }

type fixedVersion string

func (f fixedVersion) Version() string { return string(f) }

type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) Name() string { return m.name }
func (m fakeModule) Ports() any   { return m.ports }

func TestPortsOf(t *testing.T) {
	type bundle struct {
		Rules versionPort
		Count int
	}
	type hidden struct{ rules versionPort }

	cases := []struct {
		name  string
		ports any
		ok    bool
	}{
		{"nil", nil, false},
		{"direct", versionPort(fixedVersion("1")), true},
		{"struct field", bundle{Rules: fixedVersion("2")}, true},
		{"pointer struct", &bundle{Rules: fixedVersion("3")}, true},
		{"unexported field", hidden{rules: fixedVersion("4")}, false},
		{"wrong type", 12, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, ok := PortsOf[versionPort](fakeModule{name: c.name, ports: c.ports})
			if ok != c.ok {
				t.Fatalf("ok = %v want %v", ok, c.ok)
			}
		})
	}
}

func TestMustPortsOf_PanicsWithName(t *testing.T) {
	defer func() {
		msg, _ := recover().(string)
		if !strings.Contains(msg, "meta") {
			t.Fatalf("panic = %q", msg)
		}
	}()
	MustPortsOf[versionPort](fakeModule{name: "meta"})
}

func TestRegistry(t *testing.T) {
	Reset()
	Register("check", fixedVersion("v1"))
	got, ok := PortsAs[fixedVersion]("check")
	if !ok || got != "v1" {
		t.Fatalf("PortsAs = %q %v", got, ok)
	}
	if _, ok := PortsAs[int]("check"); ok {
		t.Fatalf("type mismatch should be false")
	}
	Reset()
	if _, ok := PortsAs[fixedVersion]("check"); ok {
		t.Fatalf("Reset should clear")
	}
}
