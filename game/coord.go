package game

import "fmt"

type Coord struct {
	X, Y, Z int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y, c.Z)
}

type Bounds struct {
	Width, Height, Depth int
}

func (b Bounds) Volume() int {
	return b.Width * b.Height * b.Depth
}

func (b Bounds) Contains(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.Z >= 0 &&
		c.X < b.Width && c.Y < b.Height && c.Z < b.Depth
}

// valid requires positive sides and a volume of at most maxCells. The
// volume is never multiplied out, as it may overflow.
func (b Bounds) valid() bool {
	if b.Width < 1 || b.Height < 1 || b.Depth < 1 {
		return false
	}
	return b.Width <= maxCells/b.Height/b.Depth
}

// index maps c into the flat cell slice; c must be in bounds
func (b Bounds) index(c Coord) int {
	return c.X + c.Y*b.Width + c.Z*b.Width*b.Height
}

func (b Bounds) coordAt(idx int) Coord {
	layer := b.Width * b.Height
	return Coord{
		X: idx % b.Width,
		Y: (idx % layer) / b.Width,
		Z: idx / layer,
	}
}

// InBounds reports whether c addresses a cell of a grid with the given bounds
func InBounds(c Coord, b Bounds) bool {
	return b.Contains(c)
}

// Neighbors returns the cells touching c by a face, edge or corner, clipped
// to the grid. Order is lexicographic by (dz, dy, dx).
func Neighbors(c Coord, b Bounds) []Coord {
	return AppendNeighbors(make([]Coord, 0, maxNeighbors), c, b)
}

// AppendNeighbors appends the neighbors of c to dst, in the same order as
// Neighbors.
func AppendNeighbors(dst []Coord, c Coord, b Bounds) []Coord {
	for dz := -1; dz <= 1; dz++ {
		z := c.Z + dz
		if z < 0 || z >= b.Depth {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			y := c.Y + dy
			if y < 0 || y >= b.Height {
				continue
			}
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				x := c.X + dx
				if x < 0 || x >= b.Width {
					continue
				}
				dst = append(dst, Coord{x, y, z})
			}
		}
	}
	return dst
}
