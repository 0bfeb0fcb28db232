package viz

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample shrinks img to targetSize with CatmullRom filtering on
// premultiplied alpha, which avoids dark halos along transparent edges.
func Downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return img
	}

	premul := image.NewRGBA(b)
	for i := 0; i+3 < len(img.Pix); i += 4 {
		a := uint32(img.Pix[i+3])
		premul.Pix[i] = uint8((uint32(img.Pix[i])*a + 127) / 255)
		premul.Pix[i+1] = uint8((uint32(img.Pix[i+1])*a + 127) / 255)
		premul.Pix[i+2] = uint8((uint32(img.Pix[i+2])*a + 127) / 255)
		premul.Pix[i+3] = img.Pix[i+3]
	}

	scaled := image.NewRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), premul, premul.Bounds(), draw.Src, nil)

	out := image.NewNRGBA(scaled.Bounds())
	for i := 0; i+3 < len(scaled.Pix); i += 4 {
		a := uint32(scaled.Pix[i+3])
		if a > 0 {
			out.Pix[i] = clamp8((uint32(scaled.Pix[i])*255 + a/2) / a)
			out.Pix[i+1] = clamp8((uint32(scaled.Pix[i+1])*255 + a/2) / a)
			out.Pix[i+2] = clamp8((uint32(scaled.Pix[i+2])*255 + a/2) / a)
		}
		out.Pix[i+3] = scaled.Pix[i+3]
	}
	return out
}

func clamp8(v uint32) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}
