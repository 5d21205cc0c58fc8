package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// HitList is an ordered collection of shapes tested one by one.
// There is no acceleration structure; every ray visits every shape.
type HitList struct {
	shapes []Shape
}

// NewHitList creates a list holding the given shapes
func NewHitList(shapes ...Shape) *HitList {
	return &HitList{shapes: shapes}
}

// Add appends a shape. Only call this while building a scene, never
// while a render is running.
func (l *HitList) Add(shape Shape) {
	l.shapes = append(l.shapes, shape)
}

// Len returns the number of shapes in the list
func (l *HitList) Len() int {
	return len(l.shapes)
}

// Shapes returns the shapes in insertion order
func (l *HitList) Shapes() []Shape {
	return l.shapes
}

// Hit returns the closest hit among all shapes within [tMin, tMax]
func (l *HitList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range l.shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// Intersect returns the nearest hit at or beyond tMin, with no upper bound
func (l *HitList) Intersect(ray core.Ray, tMin float64) (*material.HitRecord, bool) {
	return l.Hit(ray, tMin, math.Inf(1))
}
