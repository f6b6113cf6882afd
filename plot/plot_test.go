package plot

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/osuushi/lp2d/seidel"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rgb(c color.Color) (uint32, uint32, uint32) {
	r, g, b, _ := c.RGBA()
	return r >> 8, g >> 8, b >> 8
}

func TestRender(t *testing.T) {
	// The square [1, 3] x [1, 3]
	constraints := []seidel.HalfPlane{{A: 1, C: 3}, {A: -1, C: -1}, {B: 1, C: 3}, {B: -1, C: -1}}
	solution := seidel.NewSolver(seidel.WithSeed(1)).SolveMinY(constraints)
	require.True(t, solution.IsOptimal())

	canvas := Render(constraints, 0, 1, solution, Options{})
	bounds := canvas.Image().Bounds()
	assert.Equal(t, DefaultSize, bounds.Dx())
	assert.Equal(t, DefaultSize, bounds.Dy())
	assert.InDelta(t, 3.75, canvas.Extent(), 1e-12)

	// Inside the region is filled green
	x, y := canvas.ToPixel(seidel.Point{X: 2.2, Y: 2.3})
	r, g, b := rgb(canvas.Image().At(int(x), int(y)))
	assert.Greater(t, g, r)
	assert.Greater(t, g, b)

	// Outside it, away from every line, is background
	x, y = canvas.ToPixel(seidel.Point{X: -2.2, Y: -2.6})
	r, g, b = rgb(canvas.Image().At(int(x), int(y)))
	assert.Equal(t, [3]uint32{0, 0, 0}, [3]uint32{r, g, b})

	// Up is up
	_, top := canvas.ToPixel(seidel.Point{X: 0, Y: 1})
	_, bottom := canvas.ToPixel(seidel.Point{X: 0, Y: -1})
	assert.Less(t, top, bottom)
}

func TestRenderStatuses(t *testing.T) {
	infeasible := []seidel.HalfPlane{{A: -1, B: 4, C: -3}, {A: 1, B: -4, C: 2}}
	unbounded := []seidel.HalfPlane{{A: 0.001, B: -1, C: 2}}

	for name, constraints := range map[string][]seidel.HalfPlane{
		"infeasible": infeasible,
		"unbounded":  unbounded,
		"empty":      nil,
	} {
		t.Run(name, func(t *testing.T) {
			solution := seidel.NewSolver(seidel.WithSeed(1)).SolveMinY(constraints)
			assert.NotPanics(t, func() {
				Render(constraints, 0, 1, solution, Options{Scale: 20})
			})
		})
	}
}

func TestSavePNG(t *testing.T) {
	constraints := []seidel.HalfPlane{{A: -1, B: 1, C: -2}, {A: 1, B: -4, C: 9}}
	solution := seidel.NewSolver(seidel.WithSeed(1)).SolveMinY(constraints)
	path := filepath.Join(t.TempDir(), "plot.png")
	require.NoError(t, SavePNG(path, constraints, 0, 1, solution, Options{Scale: 30}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	assert.Error(t, Cat(filepath.Join(t.TempDir(), "missing.png"), os.Stdout))
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestCat(t *testing.T) {
	constraints := []seidel.HalfPlane{{A: 0, B: -1, C: 2}, {A: 1, B: 1, C: 1}}
	solution := seidel.NewSolver(seidel.WithSeed(1)).Solve(1, 1, constraints)
	path := filepath.Join(t.TempDir(), "plot.png")
	require.NoError(t, SavePNG(path, constraints, 1, 1, solution, Options{Scale: 10}))

	var out bytes.Buffer
	require.NoError(t, Cat(path, &out))
	assert.Contains(t, out.String(), "]1337;File=")

	assert.Error(t, Cat(path, brokenWriter{}))
	// Exists, but can't be read as a file
	assert.Error(t, Cat(t.TempDir(), &out))
}
