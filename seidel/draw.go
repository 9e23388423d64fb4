package seidel

import (
	"fmt"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

const dbgDrawPadding = 20

// Draw renders the map to a PNG at the given path: interior trapezoids
// filled blue, exterior ones yellow, every boundary stroked green with the
// slot number drawn at the center. Scale is pixels per input unit.
func (tr *Triangulator) Draw(path string, scale float64) error {
	return tr.draw(scale).SavePNG(path)
}

// DrawTerminal renders like Draw and cats the image to the terminal. Only
// works in iTerm.
func (tr *Triangulator) DrawTerminal(scale float64) error {
	if err := tr.draw(scale).SavePNG("/tmp/trapmap.png"); err != nil {
		return err
	}
	return imgcat.CatFile("/tmp/trapmap.png", os.Stdout)
}

func (tr *Triangulator) draw(scale float64) *gg.Context {
	// The box corners are the last four points, so the first and last give
	// the full extent.
	min := tr.Points[len(tr.Points)-4]
	max := tr.Points[len(tr.Points)-1]

	// Set up the context
	width := int(scale*(max.X-min.X)) + dbgDrawPadding*2
	height := int(scale*(max.Y-min.Y)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-min.X, -min.Y)

	c.SetLineWidth(2)
	for t := range tr.Traps {
		tr.drawTrap(c, t, false)
	}
	// Stroke in a second pass so fills can't cover boundaries
	for t := range tr.Traps {
		tr.drawTrap(c, t, true)
	}
	return c
}

func (tr *Triangulator) drawTrap(c *gg.Context, t int, stroke bool) {
	quad := tr.Outline(t)
	c.MoveTo(quad[0].X, quad[0].Y)
	for _, p := range quad[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()

	if stroke {
		c.SetRGB(0, 1, 0)
		c.Stroke()
		return
	}

	if tr.IsInside(t) {
		c.SetRGBA(0.3, 0.2, 1.0, 0.5)
	} else {
		c.SetRGBA(1.0, 1.0, 0, 0.5)
	}
	c.Fill()

	// Label at the centroid. Text has to be drawn unflipped, so move the
	// anchor to image space and draw through an identity transform.
	centerX := (quad[0].X + quad[1].X + quad[2].X + quad[3].X) / 4
	centerY := (quad[0].Y + quad[1].Y + quad[2].Y + quad[3].Y) / 4
	centerX, centerY = c.TransformPoint(centerX, centerY)
	c.Push()
	c.Identity()
	c.SetRGB(1, 1, 1)
	c.DrawStringAnchored(fmt.Sprintf("T%d", t), centerX, centerY, 0.5, 0.5)
	c.Pop()
}
