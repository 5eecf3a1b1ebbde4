// Copyright (c) 2026, Xu Collaborators. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))
	assert.Equal(t, Vector2{15, -5}, FromPoint(image.Pt(15, -5)))
	assert.Equal(t, Vector2{8, 3}, FromFixed(fixed.P(8, 3)))
	assert.Equal(t, fixed.P(8, 3), Vec2(8, 3).ToFixed())

	assert.Equal(t, Vector2{1, 2}, Vec2(1, 7).Min(Vec2(4, 2)))
	assert.Equal(t, Vector2{4, 7}, Vec2(1, 7).Max(Vec2(4, 2)))
	assert.Equal(t, image.Pt(1, -2), Vec2(1.5, -1.5).ToPointFloor())
	assert.Equal(t, image.Pt(2, -1), Vec2(1.5, -1.5).ToPointCeil())
}

func TestBox2(t *testing.T) {
	b := B2(10, 20, 30, 60)
	assert.Equal(t, Vec2(20, 40), b.Size())
	assert.False(t, b.IsEmpty())
	assert.True(t, B2Empty().IsEmpty())

	assert.Equal(t, b, B2(30, 60, 10, 20).Canon())
	assert.Equal(t, [4]Vector2{{10, 20}, {30, 20}, {30, 60}, {10, 60}}, b.Corners())

	r := image.Rect(1, 2, 3, 4)
	assert.Equal(t, r, B2FromRect(r).ToRect())
	assert.Equal(t, b, B2FromFixed(b.ToFixed()))
	assert.Equal(t, "[(10, 20) - (30, 60)]", b.String())
}
