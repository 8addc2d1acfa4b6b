package viz

import (
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a grid of Braille cells, each holding 2×4 sub-pixels.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
	return c
}

// Set lights the sub-pixel at (x, y). The canvas is Width*2 sub-pixels wide
// and Height*4 high; points outside are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Unset clears the sub-pixel at (x, y).
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
	c.Grid[row][col] |= brailleBlank
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// DrawLattice clears the canvas and lights every sub-pixel whose site holds
// an up spin. The lattice is scaled to the largest square that fits; when it
// has more sites than sub-pixels, sites are sampled.
func (c *Canvas) DrawLattice(spins [][]int) {
	c.Clear()
	L := len(spins)
	if L == 0 {
		return
	}

	side := min(c.Width*2, c.Height*4)
	for y := 0; y < side; y++ {
		i := y * L / side
		for x := 0; x < side; x++ {
			j := x * L / side
			if spins[i][j] > 0 {
				c.Set(x, y)
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

// LatticeString renders spins one character per site, '+' for up and '-'
// for down, suitable for small lattices.
func LatticeString(spins [][]int) string {
	var b strings.Builder
	for _, row := range spins {
		for j, s := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			if s > 0 {
				b.WriteByte('+')
			} else {
				b.WriteByte('-')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
