// Package vector provides the 2D vector value type used for particle and
// agent motion.
package vector

import (
	"fmt"
	"math"
)

// Vector2D is a point or direction in the plane. Methods never modify the
// receiver; every transform returns a new value.
type Vector2D struct{ x, y float64 }

// Origin is the zero vector.
var Origin = Vector2D{}

// north is the reference direction headings are measured from.
var north = Vector2D{1, 0}

func New(x, y float64) Vector2D {
	return Vector2D{x: x, y: y}
}

func Zero() Vector2D {
	return Origin
}

// FromArray copies a fixed size array into a vector.
func FromArray(a [2]float64) Vector2D {
	return Vector2D{a[0], a[1]}
}

// FromView copies raw component data into a vector. It fails with an
// InvalidShapeError unless s holds exactly two components.
func FromView(s []float64) (Vector2D, error) {
	if len(s) != 2 {
		return Vector2D{}, newInvalidShapeError(len(s))
	}
	return Vector2D{s[0], s[1]}, nil
}

func (v Vector2D) X() float64 { return v.x }

func (v Vector2D) Y() float64 { return v.y }

// At returns component i, 0 for x and 1 for y. Any other index panics.
func (v Vector2D) At(i int) float64 {
	switch i {
	case 0:
		return v.x
	case 1:
		return v.y
	}
	panic(fmt.Sprintf("vector: index %d out of range [0, 2)", i))
}

func (v Vector2D) Array() [2]float64 {
	return [2]float64{v.x, v.y}
}

func (v Vector2D) Add(o Vector2D) Vector2D {
	return Vector2D{v.x + o.x, v.y + o.y}
}

func (v Vector2D) Sub(o Vector2D) Vector2D {
	return Vector2D{v.x - o.x, v.y - o.y}
}

func (v Vector2D) Scale(s float64) Vector2D {
	return Vector2D{v.x * s, v.y * s}
}

// Div divides both components by s. Division by zero follows IEEE 754.
func (v Vector2D) Div(s float64) Vector2D {
	return Vector2D{v.x / s, v.y / s}
}

func (v Vector2D) Neg() Vector2D {
	return Vector2D{-v.x, -v.y}
}

func (v Vector2D) Dot(o Vector2D) float64 {
	return v.x*o.x + v.y*o.y
}

// Length is the euclidean norm.
func (v Vector2D) Length() float64 {
	return math.Hypot(v.x, v.y)
}

// Unit returns v scaled to length 1, or the zero vector if v has no length.
func (v Vector2D) Unit() Vector2D {
	l := v.Length()
	if l > 0 {
		return v.Div(l)
	}
	return Origin
}

// Orthogonal returns the unit vector rotated a quarter turn in the +z
// direction.
func (v Vector2D) Orthogonal() Vector2D {
	u := v.Unit()
	return Vector2D{-u.y, u.x}
}

// Angle returns the angle between v and o in degrees.
func (v Vector2D) Angle(o Vector2D) float64 {
	return degrees(v.AngleRadians(o))
}

// AngleRadians returns the angle between v and o in radians, in [0, π].
func (v Vector2D) AngleRadians(o Vector2D) float64 {
	u, w := v.Unit(), o.Unit()
	a := math.Acos(u.Dot(w))
	if math.IsNaN(a) {
		// Rounding pushed the dot product past ±1.
		if u.Equal(w) {
			return 0
		}
		return math.Pi
	}
	return a
}

// Heading is the angle in degrees between v and north, which is (1, 0).
func (v Vector2D) Heading() float64 {
	return v.Angle(north)
}

func (v Vector2D) HeadingRadians() float64 {
	return v.AngleRadians(north)
}

// RelativeHeading returns the bearing in degrees from the point v toward the
// point o, measured clockwise with y growing downward. offset is the current
// heading in radians and is added before conversion; pass 0 for none.
func (v Vector2D) RelativeHeading(o Vector2D, offset float64) float64 {
	return degrees(v.RelativeHeadingRadians(o, offset))
}

// RelativeHeadingRadians is RelativeHeading in radians.
func (v Vector2D) RelativeHeadingRadians(o Vector2D, offset float64) float64 {
	d := o.Sub(v)
	return math.Atan2(-d.y, d.x) + offset
}

func (v Vector2D) Distance(o Vector2D) float64 {
	return v.Sub(o).Length()
}

// Equal reports whether v and o are equal within DefaultTolerance.
func (v Vector2D) Equal(o Vector2D) bool {
	return v.EqualWithin(o, DefaultTolerance)
}

func (v Vector2D) NotEqual(o Vector2D) bool {
	return !v.Equal(o)
}

func (v Vector2D) EqualWithin(o Vector2D, tol Tolerance) bool {
	return tol.Close(v.x, o.x) && tol.Close(v.y, o.y)
}

func (v Vector2D) String() string {
	return fmt.Sprintf("{%.2f, %.2f}", v.x, v.y)
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
