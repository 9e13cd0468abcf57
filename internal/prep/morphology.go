package prep

import "image"

// open performs a morphological opening (erosion then dilation) with a
// k x k square structuring element, removing bright speckles smaller than
// the element while restoring the size of surviving shapes.
func open(g *image.Gray, k int) *image.Gray {
	return dilate(erode(g, k), k)
}

func erode(g *image.Gray, k int) *image.Gray {
	return reduce(g, k, func(best, v uint8) bool { return v < best })
}

func dilate(g *image.Gray, k int) *image.Gray {
	return reduce(g, k, func(best, v uint8) bool { return v > best })
}

// reduce slides the k x k window over the image, anchored at k/2, and
// keeps the extreme value selected by better. Pixels outside the image
// are excluded from the window, which matches replicated-border behavior
// on two-level images.
func reduce(g *image.Gray, k int, better func(best, v uint8) bool) *image.Gray {
	b := g.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	anchor := k / 2

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			best := g.Pix[y*g.Stride+x]
			for dy := -anchor; dy < k-anchor; dy++ {
				yy := y + dy
				if yy < 0 || yy >= h {
					continue
				}
				for dx := -anchor; dx < k-anchor; dx++ {
					xx := x + dx
					if xx < 0 || xx >= w {
						continue
					}
					if v := g.Pix[yy*g.Stride+xx]; better(best, v) {
						best = v
					}
				}
			}
			out.Pix[y*out.Stride+x] = best
		}
	}
	return out
}
