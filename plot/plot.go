// Pictures of two dimensional linear programs, for debugging and for the lp2d
// command. The feasible region is filled, every constraint's boundary line is
// drawn across the picture, and the solution is marked: the optimum and the lines
// through it, the conflicting constraints, or the direction of unboundedness.
package plot

import (
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/lp2d/seidel"
	"github.com/pkg/errors"
)

// Padding around the view, in pixels
const Padding = 40

// Default width of the view, in pixels, when no scale is given
const DefaultSize = 800

type Options struct {
	// Pixels per unit. Zero fits the view into DefaultSize.
	Scale float64
	// Half-width of the view in problem units. Zero picks one that shows every
	// constraint line and the optimum.
	Extent float64
}

type Canvas struct {
	ctx    *gg.Context
	extent float64
	scale  float64
}

func (c *Canvas) Image() image.Image {
	return c.ctx.Image()
}

// Pixel coordinates of a point in problem coordinates.
func (c *Canvas) ToPixel(p seidel.Point) (float64, float64) {
	return c.ctx.TransformPoint(p.X, p.Y)
}

func (c *Canvas) Extent() float64 {
	return c.extent
}

func (c *Canvas) SavePNG(path string) error {
	return errors.Wrapf(c.ctx.SavePNG(path), "saving %q", path)
}

// Draw a problem and its solution. cx, cy is the objective.
func Render(constraints []seidel.HalfPlane, cx, cy float64, solution seidel.Solution, opts Options) *Canvas {
	extent := opts.Extent
	if extent <= 0 {
		extent = fitExtent(constraints, solution)
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = (DefaultSize - 2*Padding) / (2 * extent)
	}

	// Set up the context
	size := int(scale*2*extent) + Padding*2
	ctx := gg.NewContext(size, size)
	ctx.SetRGB(0, 0, 0)
	ctx.DrawRectangle(0, 0, float64(size), float64(size))
	ctx.Fill()

	// Flip the context so the origin is at the bottom left
	ctx.Translate(0, float64(size))
	ctx.Scale(1, -1)
	// Translate for padding
	ctx.Translate(Padding, Padding)
	// Scale
	ctx.Scale(scale, scale)
	// Translate to min
	ctx.Translate(extent, extent)

	c := &Canvas{ctx: ctx, extent: extent, scale: scale}
	c.drawAxes()
	c.drawRegion(seidel.Region(constraints, extent))

	ctx.SetLineWidth(1)
	ctx.SetRGBA(0.7, 0.7, 0.7, 0.8)
	for _, hp := range constraints {
		c.line(hp)
	}
	ctx.Stroke()

	c.drawObjective(cx, cy)
	c.drawSolution(constraints, solution)
	return c
}

// Render and write a PNG.
func SavePNG(path string, constraints []seidel.HalfPlane, cx, cy float64, solution seidel.Solution, opts Options) error {
	return Render(constraints, cx, cy, solution, opts).SavePNG(path)
}

// Print an image file to the terminal, for terminals that speak the iTerm image
// protocol.
func Cat(path string, w io.Writer) error {
	return errors.Wrapf(imgcat.CatFile(path, w), "imgcat %q", path)
}

// Big enough to show where every constraint line passes closest to the origin,
// and a finite optimum.
func fitExtent(constraints []seidel.HalfPlane, solution seidel.Solution) float64 {
	extent := 1.0
	for _, hp := range constraints {
		if normal, ok := hp.Normalized(); ok {
			extent = math.Max(extent, math.Abs(normal.C))
		}
	}
	if solution.IsOptimal() {
		extent = math.Max(extent, math.Max(math.Abs(solution.X), math.Abs(solution.Y)))
	}
	return extent * 1.25
}

func (c *Canvas) drawAxes() {
	c.ctx.SetLineWidth(1)
	c.ctx.SetRGB(0.25, 0.25, 0.25)
	c.ctx.DrawLine(-c.extent, 0, c.extent, 0)
	c.ctx.DrawLine(0, -c.extent, 0, c.extent)
	c.ctx.Stroke()
}

func (c *Canvas) drawRegion(region seidel.Polygon) {
	if region.IsEmpty() {
		return
	}
	c.ctx.SetLineWidth(2)
	c.ctx.MoveTo(region.Points[0].X, region.Points[0].Y)
	for _, p := range region.Points[1:] {
		c.ctx.LineTo(p.X, p.Y)
	}
	c.ctx.ClosePath()
	c.ctx.SetRGB(0, 0.5, 0)
	c.ctx.FillPreserve()
	c.ctx.SetRGB(0, 1, 1)
	c.ctx.Stroke()
}

// Add a constraint's boundary line to the path, long enough to cross the view.
func (c *Canvas) line(hp seidel.HalfPlane) {
	normal, ok := hp.Normalized()
	if !ok {
		return
	}
	ref := normal.Reference()
	reach := normal.Direction().Mul(4 * c.extent)
	start, end := ref.Sub(reach), ref.Add(reach)
	c.ctx.MoveTo(start.X, start.Y)
	c.ctx.LineTo(end.X, end.Y)
}

// An arrow from the origin, pointing the way the objective decreases.
func (c *Canvas) drawObjective(cx, cy float64) {
	objective := seidel.Point{X: cx, Y: cy}
	if objective.Norm() == 0 {
		return
	}
	c.arrow(seidel.Point{}, objective.Normalize().Mul(-c.extent/4))
	c.ctx.SetRGB(1, 1, 1)
	c.ctx.SetLineWidth(2)
	c.ctx.Stroke()
}

func (c *Canvas) drawSolution(constraints []seidel.HalfPlane, solution seidel.Solution) {
	switch solution.Status {
	case seidel.Optimal:
		c.ctx.SetLineWidth(2)
		c.ctx.SetRGB(1, 1, 0)
		for _, i := range solution.Basis {
			c.line(constraints[i])
		}
		c.ctx.Stroke()
		c.ctx.DrawCircle(solution.X, solution.Y, 5/c.scale)
		c.ctx.Fill()

	case seidel.PrimaryInfeasible:
		c.ctx.SetLineWidth(3)
		c.ctx.SetRGB(1, 0, 0)
		for _, i := range solution.Conflict {
			c.line(constraints[i])
		}
		c.ctx.Stroke()

	case seidel.DualInfeasible:
		// Start from somewhere feasible in view, if anything is
		start := seidel.Point{}
		if region := seidel.Region(constraints, c.extent); !region.IsEmpty() {
			start = centroid(region)
		}
		c.arrow(start, solution.Ray.Mul(c.extent))
		c.ctx.SetLineWidth(3)
		c.ctx.SetRGB(1, 0, 1)
		c.ctx.Stroke()
	}
}

func (c *Canvas) arrow(from, delta seidel.Point) {
	to := from.Add(delta)
	c.ctx.MoveTo(from.X, from.Y)
	c.ctx.LineTo(to.X, to.Y)
	// Arrow head
	back := delta.Normalize().Mul(-12 / c.scale)
	side := back.Ortho().Mul(0.5)
	left, right := to.Add(back).Add(side), to.Add(back).Sub(side)
	c.ctx.MoveTo(left.X, left.Y)
	c.ctx.LineTo(to.X, to.Y)
	c.ctx.LineTo(right.X, right.Y)
}

func centroid(poly seidel.Polygon) seidel.Point {
	var sum seidel.Point
	for _, p := range poly.Points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(poly.Points)))
}
