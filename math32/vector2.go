// Copyright (c) 2026, Xu Collaborators. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"

	"golang.org/x/image/math/fixed"
)

// Vector2 is a 2D vector/point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Vector2Scalar returns a new [Vector2] with all components set to the given scalar value.
func Vector2Scalar(s float32) Vector2 {
	return Vector2{s, s}
}

// FromPoint returns a new [Vector2] from the given [image.Point].
func FromPoint(pt image.Point) Vector2 {
	return Vector2{float32(pt.X), float32(pt.Y)}
}

// FromFixed returns a new [Vector2] from the given [fixed.Point26_6].
func FromFixed(pt fixed.Point26_6) Vector2 {
	return Vector2{float32(pt.X) / 64, float32(pt.Y) / 64}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector2) SetScalar(s float32) {
	v.X = s
	v.Y = s
}

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts the other given vector from this one and returns the result as a new vector.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

// Min returns min of this vector components vs. other vector.
func (v Vector2) Min(other Vector2) Vector2 {
	return Vector2{Min(v.X, other.X), Min(v.Y, other.Y)}
}

// Max returns max of this vector components vs. other vector.
func (v Vector2) Max(other Vector2) Vector2 {
	return Vector2{Max(v.X, other.X), Max(v.Y, other.Y)}
}

// ToPointFloor returns an [image.Point] using floor on the components.
func (v Vector2) ToPointFloor() image.Point {
	return image.Pt(int(Floor(v.X)), int(Floor(v.Y)))
}

// ToPointCeil returns an [image.Point] using ceil on the components.
func (v Vector2) ToPointCeil() image.Point {
	return image.Pt(int(Ceil(v.X)), int(Ceil(v.Y)))
}

// ToFixed returns the vector as a [fixed.Point26_6].
func (v Vector2) ToFixed() fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(v.X * 64), Y: fixed.Int26_6(v.Y * 64)}
}
