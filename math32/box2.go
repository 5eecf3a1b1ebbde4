// Copyright (c) 2026, Xu Collaborators. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"

	"golang.org/x/image/math/fixed"
)

// Box2 represents a 2D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Empty returns a new [Box2] with empty minimum and maximum values
func B2Empty() Box2 {
	bx := Box2{}
	bx.SetEmpty()
	return bx
}

// B2FromRect returns a new [Box2] from the given [image.Rectangle].
func B2FromRect(rect image.Rectangle) Box2 {
	return Box2{FromPoint(rect.Min), FromPoint(rect.Max)}
}

// B2FromFixed returns a new [Box2] from the given [fixed.Rectangle26_6].
func B2FromFixed(rect fixed.Rectangle26_6) Box2 {
	return Box2{FromFixed(rect.Min), FromFixed(rect.Max)}
}

func (b Box2) String() string {
	return fmt.Sprintf("[%v - %v]", b.Min, b.Max)
}

// SetEmpty set this bounding box to empty (min / max +/- Infinity)
func (b *Box2) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// IsEmpty returns if this bounding box is empty (max < min on any coord).
func (b Box2) IsEmpty() bool {
	return (b.Max.X < b.Min.X) || (b.Max.Y < b.Min.Y)
}

// Size returns the size of the box.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// Canon returns the canonical version of the box.
// The returned rectangle has minimum and maximum coordinates swapped
// if necessary so that it is well-formed.
func (b Box2) Canon() Box2 {
	return Box2{b.Min.Min(b.Max), b.Min.Max(b.Max)}
}

// Corners returns the four corners of the box in
// top-left, top-right, bottom-right, bottom-left order.
func (b Box2) Corners() [4]Vector2 {
	return [4]Vector2{
		b.Min,
		{b.Max.X, b.Min.Y},
		b.Max,
		{b.Min.X, b.Max.Y},
	}
}

// ToRect returns image.Rectangle version of this bbox, using floor for min
// and Ceil for max.
func (b Box2) ToRect() image.Rectangle {
	return image.Rectangle{Min: b.Min.ToPointFloor(), Max: b.Max.ToPointCeil()}
}

// ToFixed returns fixed.Rectangle26_6 version of this bbox.
func (b Box2) ToFixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{Min: b.Min.ToFixed(), Max: b.Max.ToFixed()}
}
