package cmd

import (
	"fmt"

	"github.com/pulsekit/pulse/prototype"
)

// Shape is the demo prototype capability: cloneable and printable. The demo
// types copy by value, so a clone shares no state with its template.
type Shape interface {
	prototype.Cloner[Shape]
	String() string
}

// Circle is the classic teaching prototype.
type Circle struct {
	Radius int
}

// Clone returns an independent copy.
func (c *Circle) Clone() Shape {
	dup := *c
	return &dup
}

func (c *Circle) String() string {
	return fmt.Sprintf("circle(radius=%d)", c.Radius)
}

// Rectangle is the second demo prototype.
type Rectangle struct {
	Width  int
	Height int
}

// Clone returns an independent copy.
func (r *Rectangle) Clone() Shape {
	dup := *r
	return &dup
}

func (r *Rectangle) String() string {
	return fmt.Sprintf("rectangle(%dx%d)", r.Width, r.Height)
}
