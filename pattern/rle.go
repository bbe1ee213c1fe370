package pattern

import "gitlab.com/terezi/lifesat/geom"

// parseRLE scans a run-length-encoded pattern into the set of live cells
// at t = 0, with origin (0, 0, 0), and returns the cells together with the
// largest occupied x and y. Tags are 'b' (dead), 'o' (alive) and '$'
// (newline), each with an optional run count; '!' ends the pattern. Lines
// starting with 'x' or '#' are headers or comments and are skipped.
// Unrecognized bytes are ignored, best effort.
func parseRLE(rle string) (on map[geom.Point]bool, maxX, maxY int) {
	on = make(map[geom.Point]bool)
	var x, y, count int
	for i := 0; i < len(rle); i++ {
		c := rle[i]
		if c == 'x' || c == '#' {
			for i < len(rle) && rle[i] != '\n' {
				i++
			}
			continue
		}
		if c >= '0' && c <= '9' {
			count = count*10 + int(c-'0')
			continue
		}
		if count == 0 {
			count = 1
		}
		switch c {
		case 'b':
			x += count
		case 'o':
			for j := 0; j < count; j++ {
				on[geom.Point{X: x, Y: y}] = true
				if x > maxX {
					maxX = x
				}
				x++
			}
			if y > maxY {
				maxY = y
			}
		case '$':
			y += count
			x = 0
		case '!':
			return on, maxX, maxY
		}
		count = 0
	}
	return on, maxX, maxY
}
