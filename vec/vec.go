// Package vec provides the native coordinate types: fixed size vectors and points for two and
// three dimensions backed by arrays, and slice backed types for any other dimension.
package vec

import (
	"fmt"
	"strings"

	"go.viam.com/euclid/adjunct"
	"go.viam.com/euclid/numeric"
	"go.viam.com/euclid/space"
)

// Compile-time interface checks.
var (
	_ space.InnerSpace[float64, Vec2[float64]] = Vec2[float64]{}
	_ space.InnerSpace[float64, Vec3[float64]] = Vec3[float64]{}
	_ space.InnerSpace[float32, Vec3[float32]] = Vec3[float32]{}
	_ space.Crosser[Vec3[float64]]             = Vec3[float64]{}
	_ space.Extender[float64, Vec3[float64]]   = Vec2[float64]{}
	_ space.Truncater[float64, Vec2[float64]]  = Vec3[float64]{}
	_ space.Spatial[float64]                   = Point3[float64]{}

	_ space.EuclideanSpace[float64, Point2[float64], Vec2[float64]] = Point2[float64]{}
	_ space.EuclideanSpace[float64, Point3[float64], Vec3[float64]] = Point3[float64]{}

	_ space.InnerSpace[float64, VecN[float64, numeric.D4]]                                   = VecN[float64, numeric.D4]{}
	_ space.EuclideanSpace[float64, PointN[float64, numeric.D4], VecN[float64, numeric.D4]] = PointN[float64, numeric.D4]{}
)

// format renders any coordinate tuple as "(a, b, ...)".
func format[S numeric.Scalar, A adjunct.Adjunct[S]](a A) string {
	parts := make([]string, a.Dim())
	for i := range parts {
		parts[i] = fmt.Sprintf("%g", a.Component(i))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
