package prep

import "image"

const (
	// adaptiveWindow is the side of the local mean window.
	adaptiveWindow = 11
	// adaptiveOffset is subtracted from the local mean before comparing.
	adaptiveOffset = 2
)

// otsuBinarize thresholds a grayscale image at the level that maximizes
// the between-class variance of the intensity histogram. Pixels above the
// threshold become white, the rest black.
func otsuBinarize(g *image.Gray) *image.Gray {
	return binarize(g, otsuThreshold(g))
}

// otsuThreshold computes Otsu's global threshold for a grayscale image.
func otsuThreshold(g *image.Gray) uint8 {
	b := g.Bounds()
	total := b.Dx() * b.Dy()
	if total == 0 {
		return 128
	}

	var hist [256]int
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := g.Pix[(y-b.Min.Y)*g.Stride : (y-b.Min.Y)*g.Stride+b.Dx()]
		for _, v := range row {
			hist[v]++
		}
	}

	var sumAll float64
	for i, n := range hist {
		sumAll += float64(i) * float64(n)
	}

	var (
		sumBack    float64
		weightBack int
		maxVar     float64
		best       uint8
	)
	for t := 0; t < 256; t++ {
		weightBack += hist[t]
		if weightBack == 0 {
			continue
		}
		weightFore := total - weightBack
		if weightFore == 0 {
			break
		}
		sumBack += float64(t) * float64(hist[t])

		meanBack := sumBack / float64(weightBack)
		meanFore := (sumAll - sumBack) / float64(weightFore)
		diff := meanBack - meanFore
		variance := float64(weightBack) * float64(weightFore) * diff * diff
		if variance > maxVar {
			maxVar = variance
			best = uint8(t)
		}
	}
	return best
}

// binarize maps every pixel above threshold to white and the rest to
// black.
func binarize(g *image.Gray, threshold uint8) *image.Gray {
	b := g.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		src := g.Pix[y*g.Stride : y*g.Stride+b.Dx()]
		dst := out.Pix[y*out.Stride : y*out.Stride+b.Dx()]
		for x, v := range src {
			if v > threshold {
				dst[x] = 255
			} else {
				dst[x] = 0
			}
		}
	}
	return out
}

// adaptiveThreshold binarizes against the mean of a window x window
// neighborhood minus offset. A summed-area table keeps the window mean
// O(1) per pixel; windows are clipped at the borders.
func adaptiveThreshold(g *image.Gray, window, offset int) *image.Gray {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return out
	}

	// integral[y][x] holds the sum over the rectangle [0,x) x [0,y).
	integral := make([]uint64, (w+1)*(h+1))
	stride := w + 1
	for y := 0; y < h; y++ {
		var rowSum uint64
		for x := 0; x < w; x++ {
			rowSum += uint64(g.Pix[y*g.Stride+x])
			integral[(y+1)*stride+(x+1)] = integral[y*stride+(x+1)] + rowSum
		}
	}

	half := window / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			x0, y0 := x-half, y-half
			x1, y1 := x+half+1, y+half+1
			if x0 < 0 {
				x0 = 0
			}
			if y0 < 0 {
				y0 = 0
			}
			if x1 > w {
				x1 = w
			}
			if y1 > h {
				y1 = h
			}
			area := uint64((x1 - x0) * (y1 - y0))
			sum := integral[y1*stride+x1] - integral[y0*stride+x1] - integral[y1*stride+x0] + integral[y0*stride+x0]
			mean := int(sum / area)

			if int(g.Pix[y*g.Stride+x]) > mean-offset {
				out.Pix[y*out.Stride+x] = 255
			}
		}
	}
	return out
}
