// Package binding fills declared tables of native entry points from a
// shared library and infers a capability tier from what resolved.
package binding

import (
	"github.com/ebitengine/purego"
	"go.uber.org/zap"
)

// Resolver looks up the address of an exported symbol.
type Resolver interface {
	Resolve(name string) (uintptr, bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(name string) (uintptr, bool)

func (f ResolverFunc) Resolve(name string) (uintptr, bool) { return f(name) }

// Chain returns a resolver that asks each resolver in turn and returns the
// first address found. Nil resolvers are skipped.
func Chain(resolvers ...Resolver) Resolver {
	return ResolverFunc(func(name string) (uintptr, bool) {
		for _, r := range resolvers {
			if r == nil {
				continue
			}
			if addr, ok := r.Resolve(name); ok {
				return addr, true
			}
		}
		return 0, false
	})
}

// BindFunc makes the func variable pointed to by fn call the native code at addr.
type BindFunc func(fn any, addr uintptr)

// RegisterFunc is the production binder. fn must be a pointer to a func
// variable whose signature matches the native entry point.
func RegisterFunc(fn any, addr uintptr) {
	purego.RegisterFunc(fn, addr)
}

// Slot is one named entry point. Fn points at the typed func variable that
// receives the binding, so the signature is declared by the variable's type.
type Slot struct {
	Name string
	Fn   any

	addr uintptr
}

// Bound reports whether the slot resolved.
func (s *Slot) Bound() bool { return s.addr != 0 }

// Addr returns the resolved address, or 0.
func (s *Slot) Addr() uintptr { return s.addr }

// Table is the complete set of slots of one capability surface.
type Table struct {
	surface string
	slots   []*Slot
	index   map[string]*Slot
}

// NewTable declares a table. Slot names must be unique; a duplicate panics
// because the declaration is static.
func NewTable(surface string, slots ...Slot) *Table {
	t := &Table{
		surface: surface,
		slots:   make([]*Slot, 0, len(slots)),
		index:   make(map[string]*Slot, len(slots)),
	}
	for i := range slots {
		s := slots[i]
		if _, dup := t.index[s.Name]; dup {
			panic("binding: duplicate slot " + s.Name + " in " + surface)
		}
		t.slots = append(t.slots, &s)
		t.index[s.Name] = &s
	}
	return t
}

// Surface returns the name of the capability surface.
func (t *Table) Surface() string { return t.surface }

// Len returns the number of declared slots.
func (t *Table) Len() int { return len(t.slots) }

// Slots returns the declared slots in declaration order.
func (t *Table) Slots() []*Slot { return t.slots }

// Lookup returns the slot with the given name.
func (t *Table) Lookup(name string) (*Slot, bool) {
	s, ok := t.index[name]
	return s, ok
}

// Bound reports whether the named slot resolved. Undeclared names are unbound.
func (t *Table) Bound(name string) bool {
	s, ok := t.index[name]
	return ok && s.Bound()
}

// Report summarizes one populate pass.
type Report struct {
	Surface string
	Bound   []string
	Missing []string
}

// Complete reports whether every slot resolved.
func (r Report) Complete() bool { return len(r.Missing) == 0 }

// Populate resolves every slot of the table. A missing symbol leaves its
// slot unresolved and the pass carries on with the rest. Slots that are
// already bound are kept as they are.
func (t *Table) Populate(r Resolver, bind BindFunc) Report {
	report := Report{Surface: t.surface}
	for _, s := range t.slots {
		if s.Bound() {
			report.Bound = append(report.Bound, s.Name)
			continue
		}
		addr, ok := r.Resolve(s.Name)
		if !ok || addr == 0 {
			Logger().Debug("slot unresolved",
				zap.String("surface", t.surface),
				zap.String("symbol", s.Name))
			report.Missing = append(report.Missing, s.Name)
			continue
		}
		if s.Fn != nil {
			bind(s.Fn, addr)
		}
		s.addr = addr
		report.Bound = append(report.Bound, s.Name)
	}

	if len(report.Missing) > 0 {
		Logger().Warn("binding table partially populated",
			zap.String("surface", t.surface),
			zap.Int("bound", len(report.Bound)),
			zap.Int("missing", len(report.Missing)))
	} else {
		Logger().Info("binding table populated",
			zap.String("surface", t.surface),
			zap.Int("bound", len(report.Bound)))
	}
	return report
}
