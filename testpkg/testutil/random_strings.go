// Copyright 2024 Francis Michael Stephens. All rights reserved.  Use of this
// source code is governed by an MIT license that can be found in the LICENSE
// file.

package testutil

import (
	"math/rand"
	"strings"

	"github.com/crhntr/regionquad/pkg/quadtree"
)

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandomStringMaker produces repeatable random strings and byte slices, for
// tests that need CSV-tag-shaped filler data without caring what it says.
type RandomStringMaker struct {
	r *rand.Rand
}

func NewRandomStringMaker() *RandomStringMaker {
	return &RandomStringMaker{
		r: rand.New(rand.NewSource(1)),
	}
}

func (rsm *RandomStringMaker) MakeSizedBytes(length int) []byte {
	bytes := make([]byte, 0, length)
	for range length {
		bytes = append(bytes, letters[rsm.r.Intn(len(letters))])
	}
	return bytes
}

func (rsm *RandomStringMaker) MakeSizedString(length int) string {
	builder := strings.Builder{}
	builder.Grow(length)
	for range length {
		builder.WriteByte(letters[rsm.r.Intn(len(letters))])
	}
	return builder.String()
}

// RandomRectMaker produces repeatable random rects and points confined to a
// bound, for quadtree churn tests that want realistic insert/remove traffic
// without hand-listing coordinates.
type RandomRectMaker struct {
	r     *rand.Rand
	bound quadtree.Rect
}

func NewRandomRectMaker(bound quadtree.Rect) *RandomRectMaker {
	return &RandomRectMaker{
		r:     rand.New(rand.NewSource(1)),
		bound: bound,
	}
}

// MakePoint returns a uniformly random point within the bound, inclusive of
// its edges.
func (rrm *RandomRectMaker) MakePoint() quadtree.Point {
	width := rrm.bound.Right - rrm.bound.Left
	height := rrm.bound.Top - rrm.bound.Bottom

	x := rrm.bound.Left
	if width > 0 {
		x += int32(rrm.r.Intn(int(width) + 1))
	}
	y := rrm.bound.Bottom
	if height > 0 {
		y += int32(rrm.r.Intn(int(height) + 1))
	}

	return quadtree.Point{X: x, Y: y}
}

// MakeRect returns a random rect within the bound whose width and height are
// each at most maxSide.
func (rrm *RandomRectMaker) MakeRect(maxSide int32) quadtree.Rect {
	origin := rrm.MakePoint()

	w := int32(0)
	if maxSide > 0 {
		w = int32(rrm.r.Intn(int(maxSide) + 1))
	}
	h := int32(0)
	if maxSide > 0 {
		h = int32(rrm.r.Intn(int(maxSide) + 1))
	}

	corner := quadtree.Point{X: clampInt32(origin.X+w, rrm.bound.Left, rrm.bound.Right), Y: clampInt32(origin.Y-h, rrm.bound.Bottom, rrm.bound.Top)}
	return quadtree.FromPoints(origin, corner)
}

func clampInt32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
