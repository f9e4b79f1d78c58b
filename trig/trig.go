// SPDX-License-Identifier: MIT

// Package trig provides angle conversion and thin trigonometric and hyperbolic
// functions over float64. Angles are in radians unless a name says otherwise.
// Domain errors follow package math (NaN or ±Inf results, never panics).
package trig

import "math"

// Pi is the constant shared with package geom.
const Pi = math.Pi

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 { return deg * (Pi / 180.0) }

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 { return rad * (180.0 / Pi) }

// Sin returns the sine of x.
func Sin(x float64) float64 { return math.Sin(x) }

// Cos returns the cosine of x.
func Cos(x float64) float64 { return math.Cos(x) }

// Tan returns the tangent of x.
func Tan(x float64) float64 { return math.Tan(x) }

// Asin returns the arcsine of x in [-Pi/2, Pi/2]; NaN for |x| > 1.
func Asin(x float64) float64 { return math.Asin(x) }

// Acos returns the arccosine of x in [0, Pi]; NaN for |x| > 1.
func Acos(x float64) float64 { return math.Acos(x) }

// Atan returns the arctangent of x.
func Atan(x float64) float64 { return math.Atan(x) }

// Atan2 returns the angle of the point (x, y), using the signs of both to pick the quadrant.
func Atan2(y, x float64) float64 { return math.Atan2(y, x) }

// Sinh returns the hyperbolic sine of x.
func Sinh(x float64) float64 { return math.Sinh(x) }

// Cosh returns the hyperbolic cosine of x.
func Cosh(x float64) float64 { return math.Cosh(x) }

// Tanh returns the hyperbolic tangent of x.
func Tanh(x float64) float64 { return math.Tanh(x) }

// Asinh returns the inverse hyperbolic sine of x.
func Asinh(x float64) float64 { return math.Asinh(x) }

// Acosh returns the inverse hyperbolic cosine of x; NaN for x < 1.
func Acosh(x float64) float64 { return math.Acosh(x) }

// Atanh returns the inverse hyperbolic tangent of x; ±Inf at ±1, NaN for |x| > 1.
func Atanh(x float64) float64 { return math.Atanh(x) }
