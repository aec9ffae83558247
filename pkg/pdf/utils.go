package pdf

import (
	"github.com/pyhub-apps/mensa2json/pkg/layout"
)

// letterBox is used when a page declares no usable MediaBox
var letterBox = layout.BoundingBox{X0: 0, Y0: 0, X1: 612, Y1: 792}

// maxTreeDepth bounds walks up the page tree of malformed files
const maxTreeDepth = 32

// charFromRun converts a decoded glyph run (baseline origin, advance width)
// into a CharObject
func charFromRun(s, font string, fontSize, x, y, w float64, cfg layoutConfig) CharObject {
	y0 := y - fontSize*cfg.DescentRatio
	return CharObject{
		Text:     s,
		Font:     font,
		FontSize: fontSize,
		Baseline: y,
		X0:       x,
		Y0:       y0,
		X1:       x + w,
		Y1:       y0 + fontSize,
		Width:    w,
	}
}

// rectFromCorners normalises two corners into a RectObject
func rectFromCorners(ax, ay, bx, by float64) RectObject {
	return RectObject{
		X0: min(ax, bx),
		Y0: min(ay, by),
		X1: max(ax, bx),
		Y1: max(ay, by),
	}
}

func boxOrDefault(boxes []layout.BoundingBox, pageNumber int) layout.BoundingBox {
	if pageNumber >= 1 && pageNumber <= len(boxes) {
		if b := boxes[pageNumber-1]; b.Width() > 0 && b.Height() > 0 {
			return b
		}
	}
	return layout.BoundingBox{}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
