package geo_test

import (
	"fmt"

	"github.com/ericcole/ViewBox/pkg/geo"
)

func ExampleBox_Apply() {
	// Chained assignments pin each other: Width grows with the freshly
	// placed left edge held in place.
	b := geo.BoxOfSize(geo.Sz(100, 100))
	b = b.Apply(
		geo.Assign(geo.Left, 10),
		geo.Assign(geo.Width, 50),
		geo.Assign(geo.Top, 20),
		geo.Assign(geo.Height, 30),
	)
	fmt.Println(b.Rect())
	// Output: (10, 20) 50 x 30
}

func ExampleBox_Piece() {
	// Carve the top-left quadrant: fractional sizes, flush position.
	b := geo.NewBox(geo.Pt(0, 0), geo.Sz(100, 100))
	quadrant := b.Piece(geo.TopLeft, 0, 0, geo.Sz(0.5, 0.5))
	fmt.Println(quadrant)
	// Output: center (-25, -25) size 50 x 50
}

func ExampleBoxAt() {
	// Place a 20 x 10 box by its bottom-right corner.
	b := geo.BoxAt(geo.BottomRight, geo.Pt(20, 15), geo.Sz(20, 10))
	fmt.Println(b.Rect())
	// Output: (0, 5) 20 x 10
}

func ExampleSetRightToLeft() {
	b := geo.BoxFromRect(geo.Rct(0, 0, 100, 50))

	geo.SetRightToLeft(false)
	fmt.Println(b.PointAt(geo.TopLeading))

	geo.SetRightToLeft(true)
	fmt.Println(b.PointAt(geo.TopLeading))

	geo.SetRightToLeft(false)
	// Output:
	// (0, 0)
	// (100, 0)
}

func ExampleBox_TrimBy() {
	b := geo.BoxFromRect(geo.Rct(0, 0, 100, 50))
	b = b.TrimBy(geo.Left, 10).TrimBy(geo.Bottom, 5)
	fmt.Println(b.Rect())
	// Output: (10, 0) 90 x 45
}
