// Package nativetest provides an in-process stand-in for a native shared
// library. Symbols are Go funcs registered by name; binding installs them
// into the slot's func variable with reflection.
package nativetest

import (
	"fmt"
	"reflect"
	"sort"
	"sync/atomic"

	"github.com/agiangrant/beagle/internal/binding"
)

// Addresses are unique across every Library in the process.
var nextAddr atomic.Uintptr

func init() { nextAddr.Store(0x10000) }

// Library is a fake shared library.
type Library struct {
	names  []string
	addrs  map[string]uintptr
	impls  map[uintptr]any
	byAddr map[uintptr]string
	calls  map[string]int
}

// New returns a library exporting the given symbols as zero-value stubs.
func New(symbols ...string) *Library {
	l := &Library{
		addrs:  make(map[string]uintptr),
		impls:  make(map[uintptr]any),
		byAddr: make(map[uintptr]string),
		calls:  make(map[string]int),
	}
	for _, s := range symbols {
		l.Export(s, nil)
	}
	return l
}

// Export adds a symbol. A nil impl binds to a stub returning zero values.
// A non-nil impl must have exactly the slot's func type.
func (l *Library) Export(name string, impl any) *Library {
	addr, ok := l.addrs[name]
	if !ok {
		addr = nextAddr.Add(16)
		l.addrs[name] = addr
		l.names = append(l.names, name)
		l.byAddr[addr] = name
	}
	l.impls[addr] = impl
	return l
}

// Remove stops exporting name.
func (l *Library) Remove(name string) *Library {
	delete(l.addrs, name)
	for i, n := range l.names {
		if n == name {
			l.names = append(l.names[:i], l.names[i+1:]...)
			break
		}
	}
	return l
}

// Symbols returns the exported names in sorted order.
func (l *Library) Symbols() []string {
	out := append([]string(nil), l.names...)
	sort.Strings(out)
	return out
}

// Resolve implements binding.Resolver.
func (l *Library) Resolve(name string) (uintptr, bool) {
	addr, ok := l.addrs[name]
	return addr, ok
}

// Calls returns how many times the bound symbol was called.
func (l *Library) Calls(name string) int { return l.calls[name] }

// Owns reports whether addr was handed out by l.
func (l *Library) Owns(addr uintptr) bool {
	_, ok := l.impls[addr]
	return ok
}

// Bind returns a binding.BindFunc that installs symbols from whichever of
// libs handed out the address.
func Bind(libs ...*Library) binding.BindFunc {
	return func(fn any, addr uintptr) {
		for _, l := range libs {
			if l.Owns(addr) {
				l.Bind(fn, addr)
				return
			}
		}
		panic(fmt.Sprintf("nativetest: no library owns address %#x", addr))
	}
}

// Bind implements binding.BindFunc for addresses this library handed out.
func (l *Library) Bind(fn any, addr uintptr) {
	v := reflect.ValueOf(fn).Elem()
	name := l.nameOf(addr)
	impl := l.impls[addr]

	var target reflect.Value
	if impl != nil {
		target = reflect.ValueOf(impl)
		if target.Type() != v.Type() {
			panic(fmt.Sprintf("nativetest: %s has type %s, slot wants %s", name, target.Type(), v.Type()))
		}
	} else {
		typ := v.Type()
		target = reflect.MakeFunc(typ, func([]reflect.Value) []reflect.Value {
			out := make([]reflect.Value, typ.NumOut())
			for i := range out {
				out[i] = reflect.Zero(typ.Out(i))
			}
			return out
		})
	}

	v.Set(reflect.MakeFunc(v.Type(), func(args []reflect.Value) []reflect.Value {
		l.calls[name]++
		if v.Type().IsVariadic() {
			return target.CallSlice(args)
		}
		return target.Call(args)
	}))
}

func (l *Library) nameOf(addr uintptr) string {
	if n, ok := l.byAddr[addr]; ok {
		return n
	}
	return fmt.Sprintf("%#x", addr)
}

// Resolver returns l as a binding.Resolver.
func (l *Library) Resolver() binding.Resolver { return l }
