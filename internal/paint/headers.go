package paint

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"gocv.io/x/gocv"
)

// HeaderHeight is the pixel height of synthesized header bars.
const HeaderHeight = 125

// LoadHeaders reads toolbar header images from dir in name order. At least
// one image per palette swatch is required.
func LoadHeaders(dir string, minCount int) ([]gocv.Mat, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read header dir: %w", err)
	}

	var headers []gocv.Mat
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		mat := gocv.IMRead(filepath.Join(dir, entry.Name()), gocv.IMReadColor)
		if mat.Empty() {
			mat.Close()
			continue
		}
		headers = append(headers, mat)
	}

	if len(headers) < minCount {
		CloseHeaders(headers)
		return nil, fmt.Errorf("header dir %s holds %d usable images, need %d", dir, len(headers), minCount)
	}

	return headers, nil
}

// SynthesizeHeaders builds one toolbar bar per palette swatch so the app
// runs without image assets. Each bar shows every swatch in its hit region,
// with the bar's own swatch outlined white.
func SynthesizeHeaders(width int, palette Palette) []gocv.Mat {
	headers := make([]gocv.Mat, len(palette))
	for i, active := range palette {
		bar := gocv.NewMatWithSize(HeaderHeight, width, gocv.MatTypeCV8UC3)
		bar.SetTo(gocv.NewScalar(40, 40, 40, 0))

		for _, s := range palette {
			r := image.Rect(s.XMin, 15, s.XMax, HeaderHeight-15)
			gocv.Rectangle(&bar, r, s.Color, -1)
			if s.HeaderIndex == active.HeaderIndex {
				gocv.Rectangle(&bar, r, color.RGBA{R: 255, G: 255, B: 255}, 4)
			}
		}

		headers[i] = bar
	}
	return headers
}

// CloseHeaders releases every header Mat.
func CloseHeaders(headers []gocv.Mat) {
	for i := range headers {
		headers[i].Close()
	}
}
