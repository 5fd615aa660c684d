package fluent

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/stretchr/testify/assert"
)

// Attributes maps attribute names to read accessors for an entity type. It is the table that
// FilteredOnAttribute looks names up in, for example:
//
//	var memberAttributes = fluent.Attributes[Member]{
//		"age":  func(m Member) interface{} { return m.Age() },
//		"name": func(m Member) interface{} { return m.Name() },
//	}
type Attributes[T any] map[string]func(T) interface{}

// Names returns the attribute names in sorted order.
func (a Attributes[T]) Names() []string {
	ret := make([]string, 0, len(a))
	for name := range a {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

// Get reads the named attribute of item.
func (a Attributes[T]) Get(item T, name string) (interface{}, error) {
	accessor, ok := a[name]
	if !ok {
		return nil, &UnknownAttributeError{Name: name, Known: a.Names()}
	}
	return accessor(item), nil
}

// SliceAssert is an assertion chain for a slice subject.
type SliceAssert[T any] struct {
	Chain
	actual []T
}

// Slice starts an assertion chain for a slice.
func Slice[T any](t TestingT, actual []T) *SliceAssert[T] {
	return &SliceAssert[T]{Chain: newChain(t, sliceSubject[T](actual)), actual: actual}
}

// FilteredOn returns a chain for the elements that satisfy the condition, in their original
// order. The new chain shares this chain's state. If the chain has already failed or been
// closed, the condition is not called.
func (a *SliceAssert[T]) FilteredOn(condition func(T) bool) *SliceAssert[T] {
	if a.State() != Open {
		return &SliceAssert[T]{Chain: a.derive(sliceSubject[T](nil))}
	}
	var filtered []T
	for _, item := range a.actual {
		if condition(item) {
			filtered = append(filtered, item)
		}
	}
	return &SliceAssert[T]{Chain: a.derive(sliceSubject[T](filtered)), actual: filtered}
}

// FilteredOnAttribute is like FilteredOn, keeping the elements whose named attribute equals
// expected. Values are compared with testify's ObjectsAreEqualValues, so an int attribute
// matches an int64 expected value. A name that is not in attrs fails the chain with an
// *UnknownAttributeError cause.
func (a *SliceAssert[T]) FilteredOnAttribute(attrs Attributes[T], name string, expected interface{}) *SliceAssert[T] {
	if a.State() != Open {
		return &SliceAssert[T]{Chain: a.derive(sliceSubject[T](nil))}
	}
	if _, ok := attrs[name]; !ok {
		a.evaluateErr(fmt.Sprintf("can be filtered on %q", name), "", func() (bool, error) {
			return false, &UnknownAttributeError{Name: name, Known: attrs.Names()}
		})
		return &SliceAssert[T]{Chain: a.derive(sliceSubject[T](nil))}
	}
	return a.FilteredOn(func(item T) bool {
		value, _ := attrs.Get(item, name)
		return assert.ObjectsAreEqualValues(expected, value)
	})
}

func (a *SliceAssert[T]) HasSize(n int) *SliceAssert[T] {
	a.evaluate("has size "+strconv.Itoa(n), strconv.Itoa(n), func() bool { return len(a.actual) == n })
	return a
}

func (a *SliceAssert[T]) IsEmpty() *SliceAssert[T] {
	a.evaluate("is empty", "[]", func() bool { return len(a.actual) == 0 })
	return a
}

// ContainsOnly passes if the subject and expected hold the same elements, ignoring order: every
// element of the subject is among expected, and every expected element is in the subject.
// Elements are compared with testify's ObjectsAreEqual.
func (a *SliceAssert[T]) ContainsOnly(expected ...T) *SliceAssert[T] {
	expectedDesc := sliceSubject[T](expected).String()
	a.evaluate("contains only "+expectedDesc, expectedDesc, func() bool {
		return len(missingFrom(a.actual, expected)) == 0 && len(missingFrom(expected, a.actual)) == 0
	})
	return a
}

// Contains passes if every expected element is in the subject.
func (a *SliceAssert[T]) Contains(expected ...T) *SliceAssert[T] {
	expectedDesc := sliceSubject[T](expected).String()
	a.evaluate("contains "+expectedDesc, expectedDesc, func() bool {
		return len(missingFrom(a.actual, expected)) == 0
	})
	return a
}

func (a *SliceAssert[T]) Satisfies(description string, condition func([]T) bool) *SliceAssert[T] {
	a.evaluate(description, "", func() bool { return condition(a.actual) })
	return a
}

// missingFrom returns the elements of want that are not in have.
func missingFrom[T any](have, want []T) []T {
	var missing []T
	for _, w := range want {
		found := false
		for _, h := range have {
			if assert.ObjectsAreEqual(w, h) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, w)
		}
	}
	return missing
}

type sliceSubject[T any] []T

func (s sliceSubject[T]) String() string {
	parts := make([]string, 0, len(s))
	for _, item := range s {
		parts = append(parts, describe(item))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
