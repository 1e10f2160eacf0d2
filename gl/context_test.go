package gl

import (
	"errors"
	"reflect"
	"testing"

	"github.com/agiangrant/beagle/internal/binding"
)

// exports resolves the given names to fake addresses.
func exports(names ...string) binding.Resolver {
	addrs := make(map[string]uintptr, len(names))
	for i, n := range names {
		addrs[n] = uintptr(0x1000 + i*16)
	}
	return binding.ResolverFunc(func(name string) (uintptr, bool) {
		addr, ok := addrs[name]
		return addr, ok
	})
}

// stubBind installs a func that returns zero values.
func stubBind(fn any, addr uintptr) {
	v := reflect.ValueOf(fn).Elem()
	v.Set(reflect.MakeFunc(v.Type(), func(args []reflect.Value) []reflect.Value {
		out := make([]reflect.Value, v.Type().NumOut())
		for i := range out {
			out[i] = reflect.Zero(v.Type().Out(i))
		}
		return out
	}))
}

func ladderNames(upTo Version) []string {
	var names []string
	for _, r := range Ladder {
		if Version(r.Tier) <= upTo {
			names = append(names, r.Slot)
		}
	}
	return names
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  Version
	}{
		{"legacy 1.1", ladderNames(V1_1), V1_1},
		{"core 3.3", append(ladderNames(V3_3), "glBufferData", "glBindBuffer"), V3_3},
		{"full 4.6", ladderNames(V4_6), V4_6},
		{"gap below the top", []string{"glClear", "glVertexAttribDivisor"}, V3_3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, report, err := Load(exports(tt.names...), stubBind, nil)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if c.Version() != tt.want {
				t.Errorf("Version() = %s, want %s", c.Version(), tt.want)
			}
			if len(report.Bound) != len(tt.names) {
				t.Errorf("bound %d slots, want %d", len(report.Bound), len(tt.names))
			}
			if report.Complete() {
				t.Error("expected missing slots to be reported")
			}
			for _, n := range tt.names {
				if !c.Table().Bound(n) {
					t.Errorf("slot %s not bound", n)
				}
			}
		})
	}
}

func TestLoadNoTier(t *testing.T) {
	_, report, err := Load(exports("glBufferData"), stubBind, nil)
	if !errors.Is(err, binding.ErrNoCapabilityTier) {
		t.Fatalf("Load() error = %v, want ErrNoCapabilityTier", err)
	}
	if len(report.Bound) != 1 {
		t.Errorf("bound %d slots, want 1", len(report.Bound))
	}
}

func TestLoadedFunctionsAreCallable(t *testing.T) {
	c, _, err := Load(exports(ladderNames(V2_0)...), stubBind, nil)
	if err != nil {
		t.Fatal(err)
	}
	if c.Functions().Clear == nil || c.Functions().CreateShader == nil {
		t.Fatal("expected bound functions to be installed")
	}
	if c.Functions().GenVertexArrays != nil {
		t.Error("3.0 entry point bound on a 2.0 library")
	}
	if got := c.Functions().CreateShader(VERTEX_SHADER); got != 0 {
		t.Errorf("stub CreateShader() = %d, want 0", got)
	}
}

func TestSupports(t *testing.T) {
	c := NewContext(&Functions{}, V3_3, nil)
	if !c.Supports(V3_0) || !c.Supports(V3_3) {
		t.Error("expected 3.3 to support 3.0 and 3.3")
	}
	if c.Supports(V4_0) {
		t.Error("3.3 must not support 4.0")
	}
	if c.Table() != nil {
		t.Error("NewContext should not carry a table")
	}
}

func TestVersionString(t *testing.T) {
	tests := []struct {
		v    Version
		want string
	}{
		{V1_0, "1.0"},
		{V3_3, "3.3"},
		{V4_6, "4.6"},
		{V(2, 1), "2.1"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("Version(%d).String() = %q, want %q", int(tt.v), got, tt.want)
		}
		if V(tt.v.Major(), tt.v.Minor()) != tt.v {
			t.Errorf("V(Major, Minor) round trip failed for %s", tt.v)
		}
	}
}

func TestCheckErrorReturnsFirst(t *testing.T) {
	d := newFakeDriver()
	d.errors = []uint32{INVALID_ENUM, INVALID_VALUE}
	c := NewContext(d.functions(), V3_3, nil)

	if got := c.checkError(); got != INVALID_ENUM {
		t.Errorf("checkError() = %#x, want INVALID_ENUM", got)
	}
	if len(d.errors) != 0 {
		t.Error("expected the error queue to be drained")
	}
}
