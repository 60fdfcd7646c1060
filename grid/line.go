package grid

// Line returns every coordinate on the Bresenham segment from a to b,
// both ends included, in order from a.
func Line(a, b Coord) []Coord {
	dx, dy := abs(b.X-a.X), abs(b.Y-a.Y)
	sx, sy := 1, 1
	if b.X < a.X {
		sx = -1
	}
	if b.Y < a.Y {
		sy = -1
	}

	out := make([]Coord, 0, max(dx, dy)+1)
	err := dx - dy
	x, y := a.X, a.Y
	for {
		out = append(out, Coord{X: x, Y: y})
		if x == b.X && y == b.Y {
			return out
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
