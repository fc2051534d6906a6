package structure

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/npillmayer/alga/ops"
)

// Registration describes one registered (type, tag) pair.
type Registration struct {
	TypeName string // e.g. "uint32"
	Tag      string // tag name, e.g. "additive"
	Symbol   string // tag symbol, e.g. "+"
	Exact    bool   // witness satisfies Monoid, not only MonoidApprox
}

func (r Registration) String() string {
	kind := "MonoidApprox"
	if r.Exact {
		kind = "Monoid"
	}
	return fmt.Sprintf("%s<%s>(%s)", kind, r.Tag, r.TypeName)
}

type regKey struct {
	typ reflect.Type
	tag reflect.Type
}

type regEntry struct {
	info    Registration
	witness any // MonoidApprox[T, O] for the key's T and O
}

// registry maps (T, O) to its witness. It is written during package
// initialization and read afterwards.
type registry struct {
	mx      sync.RWMutex
	entries map[regKey]regEntry
}

var defaultRegistry = newRegistry()

func newRegistry() *registry {
	return &registry{entries: make(map[regKey]regEntry)}
}

func keyFor[T any, O ops.Op]() regKey {
	return regKey{typ: reflect.TypeFor[T](), tag: reflect.TypeFor[O]()}
}

// Register adds a witness for (T, O). If m satisfies Monoid[T, O], the
// registration is marked as exact.
//
// Registering the same (T, O) pair twice returns ErrDuplicateRegistration.
func Register[T any, O ops.Op](m MonoidApprox[T, O]) error {
	return registerIn[T, O](defaultRegistry, m)
}

func registerIn[T any, O ops.Op](reg *registry, m MonoidApprox[T, O]) error {
	if m == nil {
		return ErrNilCapability
	}
	_, exact := m.(Monoid[T, O])
	key := keyFor[T, O]()
	info := Registration{
		TypeName: key.typ.String(),
		Tag:      ops.NameOf[O](),
		Symbol:   ops.SymbolOf[O](),
		Exact:    exact,
	}
	reg.mx.Lock()
	defer reg.mx.Unlock()
	if _, ok := reg.entries[key]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateRegistration, info)
	}
	reg.entries[key] = regEntry{info: info, witness: m}
	tracer().Debugf("registered %s", info)
	return nil
}

// LookupMonoidApprox returns the registered witness for (T, O).
func LookupMonoidApprox[T any, O ops.Op]() (MonoidApprox[T, O], bool) {
	return lookupIn[T, O](defaultRegistry)
}

func lookupIn[T any, O ops.Op](reg *registry) (MonoidApprox[T, O], bool) {
	reg.mx.RLock()
	entry, ok := reg.entries[keyFor[T, O]()]
	reg.mx.RUnlock()
	if !ok {
		return nil, false
	}
	m, ok := entry.witness.(MonoidApprox[T, O])
	return m, ok
}

// LookupMonoid returns the registered witness for (T, O) if it satisfies the
// exact Monoid capability.
func LookupMonoid[T any, O ops.Op]() (Monoid[T, O], bool) {
	return lookupExactIn[T, O](defaultRegistry)
}

func lookupExactIn[T any, O ops.Op](reg *registry) (Monoid[T, O], bool) {
	m, ok := lookupIn[T, O](reg)
	if !ok {
		return nil, false
	}
	exact, ok := m.(Monoid[T, O])
	return exact, ok
}

// MustLookupMonoid is like LookupMonoid but panics with ErrNotRegistered if
// (T, O) has no exact registration.
func MustLookupMonoid[T any, O ops.Op]() Monoid[T, O] {
	m, ok := LookupMonoid[T, O]()
	if !ok {
		panic(fmt.Errorf("%w: Monoid<%s>(%s)", ErrNotRegistered, ops.NameOf[O](), reflect.TypeFor[T]()))
	}
	return m
}

// Registrations lists all registrations, ordered by type name and tag.
func Registrations() []Registration {
	return defaultRegistry.list()
}

func (reg *registry) list() []Registration {
	reg.mx.RLock()
	list := make([]Registration, 0, len(reg.entries))
	for _, entry := range reg.entries {
		list = append(list, entry.info)
	}
	reg.mx.RUnlock()
	sort.Slice(list, func(i, j int) bool {
		if list[i].TypeName != list[j].TypeName {
			return list[i].TypeName < list[j].TypeName
		}
		return list[i].Tag < list[j].Tag
	})
	return list
}
