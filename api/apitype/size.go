package apitype

import (
	"fmt"
	"image"
)

type Size struct {
	width  int
	height int
}

func (s Size) Height() int {
	return s.height
}

func (s Size) Width() int {
	return s.width
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.width, s.height)
}

func SizeOf(width int, height int) Size {
	return Size{width, height}
}

func SizeFromRectangle(rectangle image.Rectangle) Size {
	return Size{
		width:  rectangle.Dx(),
		height: rectangle.Dy(),
	}
}

// ScaleDownToFit shrinks source so that it fits inside target. The side that
// exceeds its limit the most decides the scale. Sizes that already fit are
// returned unchanged; nothing is ever upscaled.
func ScaleDownToFit(source Size, target Size) Size {
	if source.width <= 0 || source.height <= 0 || target.width <= 0 || target.height <= 0 {
		return source
	}

	var heightRatio, widthRatio float64
	if source.height > target.height {
		heightRatio = float64(source.height) / float64(target.height)
	}
	if source.width > target.width {
		widthRatio = float64(source.width) / float64(target.width)
	}

	switch {
	case heightRatio > 0 && widthRatio > 0:
		if heightRatio > widthRatio {
			return fitHeight(source, target.height)
		}
		return fitWidth(source, target.width)
	case heightRatio > 0:
		return fitHeight(source, target.height)
	case widthRatio > 0:
		return fitWidth(source, target.width)
	default:
		return source
	}
}

func fitHeight(source Size, height int) Size {
	return Size{
		width:  int(float64(source.width) * (float64(height) / float64(source.height))),
		height: height,
	}
}

func fitWidth(source Size, width int) Size {
	return Size{
		width:  width,
		height: int(float64(source.height) * (float64(width) / float64(source.width))),
	}
}
