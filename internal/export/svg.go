// Package export renders stored lattices and curves as standalone SVG.
package export

import (
	"fmt"
	"strings"
)

// Point is one vertex of a curve.
type Point struct{ X, Y float64 }

const svgHeader = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`

// LatticeSVG draws one square per site, up spins in upColor on a dark
// background. cell is the side of a site in pixels.
func LatticeSVG(spins [][]int, cell int, upColor string) string {
	L := len(spins)
	if L == 0 || cell < 1 {
		return ""
	}
	side := L * cell

	var sb strings.Builder
	fmt.Fprintf(&sb, svgHeader, side, side, side, side, "#0a0a0a")
	fmt.Fprintf(&sb, "<g fill=\"%s\">\n", upColor)
	for i, row := range spins {
		for j, s := range row {
			if s <= 0 {
				continue
			}
			fmt.Fprintf(&sb, "<rect x=\"%d\" y=\"%d\" width=\"%d\" height=\"%d\"/>\n", j*cell, i*cell, cell, cell)
		}
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// CurveSVG draws points as a polyline scaled to width×height, padded by a
// tenth of the data range on every side, with a dot on each point.
func CurveSVG(points []Point, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	// flat axes are centred
	if rangeX == 0 {
		rangeX, minX = 1, minX-0.5
	}
	if rangeY == 0 {
		rangeY, minY = 1, minY-0.5
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	project := func(p Point) (x, y float64) {
		x = (p.X - minX) / rangeX * float64(width)
		y = float64(height) - (p.Y-minY)/rangeY*float64(height)
		return x, y
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, svgHeader, width, height, width, height, "#0a0a0a")
	fmt.Fprintf(&sb, "<path fill=\"none\" stroke=\"%s\" stroke-width=\"1.5\" d=\"M", strokeColor)
	for i, p := range points {
		x, y := project(p)
		if i > 0 {
			sb.WriteString(" L")
		}
		fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
	}
	sb.WriteString("\"/>\n")

	fmt.Fprintf(&sb, "<g fill=\"%s\">\n", strokeColor)
	for _, p := range points {
		x, y := project(p)
		fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"2\"/>\n", x, y)
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
