// SPDX-License-Identifier: MIT

// Package geom provides small 2D/3D geometry formulas: distances, circle and
// triangle measures, 2D affine transforms and point-plane distance.
//
// Points convert to and from github.com/twpayne/go-geom coordinates so the
// results can be fed to spatial tooling built on that library; triangle
// measures are computed over a go-geom polygon ring.
//
// All functions are pure and never fail; degenerate input (a zero plane
// normal, a negative radius) yields the value the formula produces.
package geom

import (
	"math"

	gogeom "github.com/twpayne/go-geom"

	"github.com/katalvlaran/lvlmath/trig"
)

// Point2D is a point in the plane.
type Point2D struct {
	X, Y float64
}

// Point3D is a point in space.
type Point3D struct {
	X, Y, Z float64
}

// Circle is a disc of radius Radius around Center.
type Circle struct {
	Center Point2D
	Radius float64
}

// Plane is the set of points p with Normal·p + D = 0.
type Plane struct {
	Normal Point3D
	D      float64
}

// Coord returns p as an XY go-geom coordinate.
func (p Point2D) Coord() gogeom.Coord { return gogeom.Coord{p.X, p.Y} }

// Coord returns p as an XYZ go-geom coordinate.
func (p Point3D) Coord() gogeom.Coord { return gogeom.Coord{p.X, p.Y, p.Z} }

// Point2DFromCoord reads the X and Y ordinates of c.
func Point2DFromCoord(c gogeom.Coord) Point2D { return Point2D{X: c.X(), Y: c.Y()} }

// Point3DFromCoord reads X, Y and Z of c; a 2D coordinate yields Z = 0.
func Point3DFromCoord(c gogeom.Coord) Point3D {
	p := Point3D{X: c.X(), Y: c.Y()}
	if len(c) > 2 {
		p.Z = c[2]
	}

	return p
}

// Distance2D returns the Euclidean distance between a and b.
func Distance2D(a, b Point2D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// Distance3D returns the Euclidean distance between a and b.
func Distance3D(a, b Point3D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// CircleArea returns π·r².
func CircleArea(c Circle) float64 { return trig.Pi * c.Radius * c.Radius }

// CircleCircumference returns 2·π·r.
func CircleCircumference(c Circle) float64 { return 2.0 * trig.Pi * c.Radius }

// PointInCircle reports whether p lies inside or on the boundary of c.
func PointInCircle(p Point2D, c Circle) bool {
	return Distance2D(p, c.Center) <= c.Radius
}

// triangleRing returns the closed ring a→b→c→a as a go-geom polygon.
func triangleRing(a, b, c Point2D) *gogeom.Polygon {
	flat := []float64{a.X, a.Y, b.X, b.Y, c.X, c.Y, a.X, a.Y}

	return gogeom.NewPolygonFlat(gogeom.XY, flat, []int{len(flat)})
}

// TriangleArea returns the unsigned area of triangle abc; collinear points give 0.
func TriangleArea(a, b, c Point2D) float64 {
	return math.Abs(triangleRing(a, b, c).Area())
}

// TrianglePerimeter returns |ab| + |bc| + |ca|.
func TrianglePerimeter(a, b, c Point2D) float64 {
	return triangleRing(a, b, c).Length()
}

// Translate2D returns p shifted by (dx, dy).
func Translate2D(p Point2D, dx, dy float64) Point2D {
	return Point2D{X: p.X + dx, Y: p.Y + dy}
}

// Scale2D returns p scaled about the origin by (sx, sy).
func Scale2D(p Point2D, sx, sy float64) Point2D {
	return Point2D{X: p.X * sx, Y: p.Y * sy}
}

// Rotate2D returns p rotated counter-clockwise about the origin by rad radians.
func Rotate2D(p Point2D, rad float64) Point2D {
	cos, sin := trig.Cos(rad), trig.Sin(rad)

	return Point2D{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// PointPlaneDistance returns |n·p + d| / |n|. A zero normal yields NaN or +Inf.
func PointPlaneDistance(p Point3D, pl Plane) float64 {
	n := pl.Normal
	num := math.Abs(n.X*p.X + n.Y*p.Y + n.Z*p.Z + pl.D)
	den := math.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z)

	return num / den
}
