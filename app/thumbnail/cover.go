package thumbnail

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

const (
	Width  = 960
	Height = 540

	// TopBias positions the crop window at this fraction of the vertical
	// overflow, favouring the upper part of the picture.
	TopBias = 0.35

	Quality = 85
)

// Cover scales img until it fully covers width x height, then crops the
// overflow: centered horizontally, TopBias from the top vertically.
func Cover(img image.Image, width, height int) *image.NRGBA {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()

	scale := math.Max(float64(width)/float64(srcW), float64(height)/float64(srcH))
	scaledW := max(width, int(math.Ceil(float64(srcW)*scale)))
	scaledH := max(height, int(math.Ceil(float64(srcH)*scale)))

	scaled := imaging.Resize(img, scaledW, scaledH, imaging.Lanczos)

	return imaging.Crop(scaled, CropRect(scaledW, scaledH, width, height))
}

// CropRect returns the crop window for a scaled image of scaledW x scaledH.
func CropRect(scaledW, scaledH, width, height int) image.Rectangle {
	left := (scaledW - width) / 2
	top := int(float64(scaledH-height) * TopBias)
	top = min(max(top, 0), scaledH-height)

	return image.Rect(left, top, left+width, top+height)
}
