package paint

import (
	"image"

	"gocv.io/x/gocv"
)

// MaskThreshold is the grayscale value a canvas pixel must exceed to count
// as painted when building the compositing mask.
const MaskThreshold = 50

// Composite merges the stroke canvas and the header toolbar onto the live
// frame in place.
//
// Canvas pixels brighter than MaskThreshold after grayscale conversion are
// "painted". An inverse mask (painted -> 0, background -> 255) is ANDed
// with the frame to punch holes where strokes go, then the canvas is ORed
// in, so painted regions show the stroke color exactly and background
// regions pass the live frame through unchanged. The header image is then
// pasted over the top-left corner, clipped against the frame bounds.
func Composite(frame *gocv.Mat, canvas gocv.Mat, header gocv.Mat) {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(canvas, &gray, gocv.ColorBGRToGray)

	inv := gocv.NewMat()
	defer inv.Close()
	gocv.Threshold(gray, &inv, MaskThreshold, 255, gocv.ThresholdBinaryInv)

	mask := gocv.NewMat()
	defer mask.Close()
	gocv.CvtColor(inv, &mask, gocv.ColorGrayToBGR)

	gocv.BitwiseAnd(*frame, mask, frame)
	gocv.BitwiseOr(*frame, canvas, frame)

	pasteHeader(frame, header)
}

// pasteHeader overwrites the frame's top-left corner with the header image,
// clipping the header against the frame dimensions.
func pasteHeader(frame *gocv.Mat, header gocv.Mat) {
	if header.Empty() {
		return
	}

	w := header.Cols()
	if fw := frame.Cols(); w > fw {
		w = fw
	}
	h := header.Rows()
	if fh := frame.Rows(); h > fh {
		h = fh
	}
	if w <= 0 || h <= 0 {
		return
	}

	src := header.Region(image.Rect(0, 0, w, h))
	defer src.Close()
	dst := frame.Region(image.Rect(0, 0, w, h))
	defer dst.Close()
	src.CopyTo(&dst)
}
