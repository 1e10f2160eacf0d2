package nativetest

import (
	"testing"

	"github.com/agiangrant/beagle/internal/binding"
)

type surface struct {
	Add  func(a, b int32) int32
	Name func() string
}

func (s *surface) table() *binding.Table {
	return binding.NewTable("test",
		binding.Slot{Name: "add", Fn: &s.Add},
		binding.Slot{Name: "name", Fn: &s.Name},
	)
}

func TestBindImplementationsAndStubs(t *testing.T) {
	lib := New("name").Export("add", func(a, b int32) int32 { return a + b })

	var s surface
	report := s.table().Populate(lib, lib.Bind)
	if !report.Complete() {
		t.Fatalf("missing = %v", report.Missing)
	}

	if got := s.Add(2, 3); got != 5 {
		t.Errorf("Add(2, 3) = %d, want 5", got)
	}
	if got := s.Name(); got != "" {
		t.Errorf("Name() = %q, want zero value", got)
	}
	if lib.Calls("add") != 1 || lib.Calls("name") != 1 {
		t.Errorf("calls = %d, %d, want 1, 1", lib.Calls("add"), lib.Calls("name"))
	}
}

func TestBindAcrossLibraries(t *testing.T) {
	a := New().Export("add", func(x, y int32) int32 { return x * y })
	b := New().Export("name", func() string { return "b" })

	var s surface
	s.table().Populate(binding.Chain(a, b), Bind(a, b))

	if s.Add(3, 4) != 12 || s.Name() != "b" {
		t.Error("symbols bound from the wrong library")
	}
}

func TestRemove(t *testing.T) {
	lib := New("add", "name").Remove("add")
	if _, ok := lib.Resolve("add"); ok {
		t.Error("removed symbol still resolves")
	}
	if got := lib.Symbols(); len(got) != 1 || got[0] != "name" {
		t.Errorf("Symbols() = %v, want [name]", got)
	}
}
