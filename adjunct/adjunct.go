// Package adjunct contains the pointwise coordinate operations that the space traits are built
// from. A coordinate type only has to expose its dimension and indexed components; everything
// here is written once against that contract.
package adjunct

import (
	"go.viam.com/euclid/numeric"
)

// Adjunct is a fixed-length tuple of scalars.
type Adjunct[S numeric.Scalar] interface {
	Dim() int
	Component(i int) S
}

// Composite is an Adjunct that can be rebuilt one component at a time. WithComponent returns a
// modified copy; the receiver is never changed.
type Composite[S numeric.Scalar, A any] interface {
	Adjunct[S]
	WithComponent(i int, s S) A
}

// Converged builds a value with every component equal to s.
func Converged[S numeric.Scalar, A Composite[S, A]](s S) A {
	var a A
	for i := 0; i < a.Dim(); i++ {
		a = a.WithComponent(i, s)
	}
	return a
}

// ZipMap combines a and b pointwise.
func ZipMap[S numeric.Scalar, A Composite[S, A]](a, b A, f func(S, S) S) A {
	out := a
	for i := 0; i < a.Dim(); i++ {
		out = out.WithComponent(i, f(a.Component(i), b.Component(i)))
	}
	return out
}

// Fold reduces the components of a in index order, starting from seed.
func Fold[S numeric.Scalar, A Adjunct[S], R any](a A, seed R, f func(R, S) R) R {
	acc := seed
	for i := 0; i < a.Dim(); i++ {
		acc = f(acc, a.Component(i))
	}
	return acc
}

// Map applies f to every component of a.
func Map[S numeric.Scalar, A Composite[S, A]](a A, f func(S) S) A {
	out := a
	for i := 0; i < a.Dim(); i++ {
		out = out.WithComponent(i, f(a.Component(i)))
	}
	return out
}

// FromItems builds a value from exactly Dim() items. It returns false if the count is wrong.
func FromItems[S numeric.Scalar, A Composite[S, A]](items ...S) (A, bool) {
	var a A
	if len(items) != a.Dim() {
		return a, false
	}
	for i, s := range items {
		a = a.WithComponent(i, s)
	}
	return a, true
}

// IntoItems copies the components of a into a new slice.
func IntoItems[S numeric.Scalar, A Adjunct[S]](a A) []S {
	items := make([]S, a.Dim())
	for i := range items {
		items[i] = a.Component(i)
	}
	return items
}

// All reports whether pred holds for every component of a.
func All[S numeric.Scalar, A Adjunct[S]](a A, pred func(S) bool) bool {
	for i := 0; i < a.Dim(); i++ {
		if !pred(a.Component(i)) {
			return false
		}
	}
	return true
}

// Any reports whether pred holds for at least one component of a.
func Any[S numeric.Scalar, A Adjunct[S]](a A, pred func(S) bool) bool {
	for i := 0; i < a.Dim(); i++ {
		if pred(a.Component(i)) {
			return true
		}
	}
	return false
}

// AlmostEqual compares a and b component by component under the tolerance of S.
func AlmostEqual[S numeric.Scalar, A Adjunct[S]](a, b A) bool {
	if a.Dim() != b.Dim() {
		return false
	}
	for i := 0; i < a.Dim(); i++ {
		if !numeric.AlmostEqual(a.Component(i), b.Component(i)) {
			return false
		}
	}
	return true
}
