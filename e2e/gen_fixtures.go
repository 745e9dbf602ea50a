//go:build ignore

// gen_fixtures creates small images and a catalog for the E2E smoke test.
// Usage: go run gen_fixtures.go <output_dir>
package main

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/LaplaceYoung/pixelcraft/internal/catalog"
	"github.com/LaplaceYoung/pixelcraft/internal/palette"
	"github.com/disintegration/imaging"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_fixtures <output_dir>")
		os.Exit(1)
	}
	dir := os.Args[1]
	must(os.MkdirAll(filepath.Join(dir, "sprites"), 0o755))
	must(os.MkdirAll(filepath.Join(dir, ".cache"), 0o755))

	// Photo-like gradient (JPEG, 400x225): many cells, many colours.
	must(imaging.Save(gradient(400, 225), filepath.Join(dir, "sunset.jpg"), imaging.JPEGQuality(85)))

	// Pixel-art sprites (PNG), upscaled 8x so a 16-wide grid is exact.
	must(imaging.Save(upscale(heart(), 8), filepath.Join(dir, "sprites", "heart.png")))
	must(imaging.Save(upscale(stripes(16, 16), 8), filepath.Join(dir, "sprites", "stripes.png")))

	// Ignored by the scanner.
	must(imaging.Save(stripes(4, 4), filepath.Join(dir, ".cache", "skip.png")))

	// Catalog with the hama colours, minus two the user "does not own".
	pal := palette.Builtin("hama")
	pal.SetDisabled("H06", true)
	pal.SetDisabled("H07", true)
	must(catalog.WriteJSON(catalog.New("my-hama", pal), filepath.Join(dir, "catalog.json")))

	fmt.Fprintf(os.Stderr, "[gen_fixtures] created 4 images and catalog.json in %s\n", dir)
}

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

var heartRows = []string{
	"................",
	"..RRR......RRR..",
	".RRRRR....RRRRR.",
	"RRRWRRR..RRRRRRR",
	"RRWWRRRRRRRRRRRR",
	"RRRRRRRRRRRRRRRR",
	"RRRRRRRRRRRRRRRR",
	".RRRRRRRRRRRRRR.",
	"..RRRRRRRRRRRR..",
	"...RRRRRRRRRR...",
	"....RRRRRRRR....",
	".....RRRRRR.....",
	"......RRRR......",
	".......RR.......",
	"................",
	"................",
}

func heart() *image.NRGBA {
	palette := map[byte]color.NRGBA{
		'.': {R: 0xED, G: 0xED, B: 0xED, A: 255},
		'R': {R: 0xB6, G: 0x31, B: 0x36, A: 255},
		'W': {R: 0xFF, G: 0xFF, B: 0xFF, A: 255},
	}
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y, row := range heartRows {
		for x := 0; x < len(row); x++ {
			img.SetNRGBA(x, y, palette[row[x]])
		}
	}
	return img
}

func stripes(w, h int) *image.NRGBA {
	bands := []color.NRGBA{
		{R: 0xF0, G: 0xB9, B: 0x01, A: 255},
		{R: 0x2C, G: 0x46, B: 0x90, A: 255},
		{R: 0x25, G: 0x6D, B: 0x49, A: 255},
		{R: 0x2E, G: 0x2F, B: 0x31, A: 255},
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		c := bands[y*len(bands)/h]
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func upscale(img *image.NRGBA, factor int) *image.NRGBA {
	b := img.Bounds()
	return imaging.Resize(img, b.Dx()*factor, b.Dy()*factor, imaging.NearestNeighbor)
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
