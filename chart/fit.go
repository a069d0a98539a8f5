package chart

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Fit scales img to the largest size that fits inside width×height while
// keeping its aspect ratio, centered on a white background.
func Fit(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	b := img.Bounds()
	if b.Empty() || width <= 0 || height <= 0 {
		return dst
	}

	scale := math.Min(float64(width)/float64(b.Dx()), float64(height)/float64(b.Dy()))
	w := int(math.Round(float64(b.Dx()) * scale))
	h := int(math.Round(float64(b.Dy()) * scale))
	offset := image.Pt((width-w)/2, (height-h)/2)
	target := image.Rectangle{Min: offset, Max: offset.Add(image.Pt(w, h))}

	draw.CatmullRom.Scale(dst, target, img, b, draw.Over, nil)
	return dst
}
