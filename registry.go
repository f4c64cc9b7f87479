// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tdd

import (
	"fmt"
	"reflect"
	"runtime"

	"golang.org/x/exp/slices"
)

// Registry is an ordered collection of test groups.  Groups are run in
// the order they were registered; a registry doesn't deduplicate by
// name.  A registry is populated before it is run for the first time;
// registering into a registry which has been run panics.  The zero
// value is not usable, use NewRegistry or the process wide Default.
type Registry struct {
	groups        []groupEntry
	moduleInit    func(*T)
	moduleCleanup func(*T)
	sealed        bool
}

// Default is the registry Register, RegisterFunc, OnModuleInitialize,
// OnModuleCleanup and Run operate on.
var Default = NewRegistry()

// NewRegistry creates a new empty registry with no-op module hooks.
func NewRegistry() *Registry {
	return &Registry{moduleInit: noGroupHook, moduleCleanup: noGroupHook}
}

// groupEntry is a registered group.  Its runner hides the group's type.
type groupEntry struct {
	name   string
	runner groupRunner
}

type groupRunner interface {
	run(*execution)
	tests() []TestInfo
}

// Register registers the group G with the Default registry and returns
// G's group name.  Register is meant to be called at package
// initialization:
//
//	type Math struct{}
//
//	var _ = tdd.Register[Math]()
//
// Tests of G are the exported methods of *G taking a *T as only
// argument (except for the hooks of Initializer, Finalizer, SetUpper
// and TearDowner).  They are run in the order they are declared in the
// file which registered G and the other go files of its directory.
func Register[G any]() string {
	return register[G](Default, nil, registrationFile())
}

// RegisterFunc registers the group G with the Default registry like
// Register does but creates the instance for each test with given
// factory.
func RegisterFunc[G any](factory func() *G) string {
	return register(Default, factory, registrationFile())
}

// RegisterIn registers the group G with given registry (see Register).
func RegisterIn[G any](r *Registry) string {
	return register[G](r, nil, registrationFile())
}

// RegisterFuncIn registers the group G with given registry creating
// its instances with given factory (see RegisterFunc).
func RegisterFuncIn[G any](r *Registry, factory func() *G) string {
	return register(r, factory, registrationFile())
}

// OnModuleInitialize sets the hook of the Default registry which is run
// once before the first test of a run is executed.  If it fails no test
// of the run is executed.  The returned value makes it usable in
// package level variable declarations.
func OnModuleInitialize(hook func(*T)) bool {
	Default.SetModuleInitialize(hook)
	return true
}

// OnModuleCleanup sets the hook of the Default registry which is run
// once after all groups of a run iff the module initialization hook was
// run.
func OnModuleCleanup(hook func(*T)) bool {
	Default.SetModuleCleanup(hook)
	return true
}

// SetModuleInitialize sets r's module initialization hook (see
// OnModuleInitialize).
func (r *Registry) SetModuleInitialize(hook func(*T)) {
	r.mustBeOpen()
	if hook == nil {
		hook = noGroupHook
	}
	r.moduleInit = hook
}

// SetModuleCleanup sets r's module cleanup hook (see OnModuleCleanup).
func (r *Registry) SetModuleCleanup(hook func(*T)) {
	r.mustBeOpen()
	if hook == nil {
		hook = noGroupHook
	}
	r.moduleCleanup = hook
}

// Len returns the number of groups registered with r.
func (r *Registry) Len() int { return len(r.groups) }

// Tests returns the identities of all tests registered with r in the
// order they are run.  Nothing is executed.
func (r *Registry) Tests() []TestInfo {
	tt := []TestInfo{}
	for _, g := range r.groups {
		tt = append(tt, g.runner.tests()...)
	}
	return tt
}

func (r *Registry) mustBeOpen() {
	if r.sealed {
		panic("tdd: registry: modified after it was run")
	}
}

// registrationFile returns the source file of the function which called
// the exported registration function.
func registrationFile() string {
	_, file, _, ok := runtime.Caller(2)
	if !ok {
		return ""
	}
	return file
}

func register[G any](r *Registry, factory func() *G, file string) string {
	r.mustBeOpen()
	typ := reflect.TypeOf((*G)(nil)).Elem()
	name := typ.Name()
	if name == "" {
		name = typ.String()
	}
	if factory == nil {
		factory = func() *G { return new(G) }
	}
	g := &group[G]{
		name:    name,
		create:  factory,
		hooks:   resolveHooks[G](),
		methods: discover[G](name, file),
	}
	r.groups = append(r.groups, groupEntry{name: name, runner: g})
	return name
}

// group is the runner of the registered group G.
type group[G any] struct {
	name   string
	create func() *G
	hooks  hooks[G]

	// methods are G's discovered tests in run order.
	methods []*methodEntry[G]
}

// methodEntry is one test of a group.
type methodEntry[G any] struct {
	info   TestInfo
	invoke func(*G, *T)
}

func (g *group[G]) tests() []TestInfo {
	tt := make([]TestInfo, len(g.methods))
	for i, m := range g.methods {
		tt[i] = m.info
	}
	return tt
}

var tType = reflect.TypeOf((*T)(nil))

// discover returns the tests of G ordered by their declaration in
// given file and its siblings.  Tests without a located declaration,
// e.g. promoted methods of embedded types, follow in reflection order.
// A hook method, e.g. SetUp, with another type than func(*T) panics.
func discover[G any](name, file string) []*methodEntry[G] {
	pt := reflect.TypeOf((*G)(nil))
	idx := indexer.indexOf(file, pt.Elem().Name())
	mm := []*methodEntry[G]{}
	for i := 0; i < pt.NumMethod(); i++ {
		m := pt.Method(i)
		isStep := m.Type.NumIn() == 2 && m.Type.NumOut() == 0 &&
			m.Type.In(1) == tType
		if isSpecial(m.Name) {
			if !isStep {
				panic(fmt.Sprintf("tdd: discover: %s.%s: hook must "+
					"have type func(*tdd.T); got %s", name, m.Name, m.Type))
			}
			continue
		}
		if !isStep {
			continue
		}
		invoke, ok := m.Func.Interface().(func(*G, *T))
		if !ok {
			panic(fmt.Sprintf("tdd: discover: %s.%s: unexpected "+
				"method type %s", name, m.Name, m.Type))
		}
		mm = append(mm, &methodEntry[G]{
			info:   TestInfo{Group: name, Name: m.Name},
			invoke: invoke,
		})
	}
	position := func(m *methodEntry[G]) int {
		if i, ok := idx[m.info.Name]; ok {
			return i
		}
		return len(idx)
	}
	slices.SortStableFunc(mm, func(a, b *methodEntry[G]) int {
		return position(a) - position(b)
	})
	return mm
}
