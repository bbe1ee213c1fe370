package geom

// FindAllImages returns the orbit of p under the monoid generated by
// transforms, restricted to bounds. The orbit is grown breadth-first and
// always includes p itself. Termination follows from the orbit being a
// subset of the finite bounds: images that leave bounds are dropped and
// never expanded.
func FindAllImages(p Point, transforms []AffineTransform, bounds Bounds) []Point {
	seen := map[Point]bool{p: true}
	images := []Point{p}
	for i := 0; i < len(images); i++ {
		for _, tr := range transforms {
			q := tr.Apply(images[i])
			if !seen[q] && bounds.Contains(q) {
				seen[q] = true
				images = append(images, q)
			}
		}
	}
	return images
}
