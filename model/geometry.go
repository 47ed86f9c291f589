package model

import "fmt"

// EMUPerInch is the number of English Metric Units in an inch.
const EMUPerInch = 914400

// Point is a position in EMUs.
type Point struct {
	X, Y int64
}

// Extent is a size in EMUs.
type Extent struct {
	Cx, Cy int64
}

// Rect is the bounding rectangle of a shape.
type Rect struct {
	Origin Point
	Size   Extent
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Size.Cx <= 0 || r.Size.Cy <= 0
}

// Inches converts an EMU value to inches.
func Inches(emu int64) float64 {
	return float64(emu) / EMUPerInch
}

func (r Rect) String() string {
	return fmt.Sprintf("(%.2fin, %.2fin) %.2fin x %.2fin",
		Inches(r.Origin.X), Inches(r.Origin.Y), Inches(r.Size.Cx), Inches(r.Size.Cy))
}
