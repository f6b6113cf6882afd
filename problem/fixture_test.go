package problem

import (
	"embed"
	"testing"

	"github.com/osuushi/lp2d/seidel"
	"github.com/stretchr/testify/require"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixturePolygon(t *testing.T, name string) seidel.Polygon {
	t.Helper()
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	require.NoError(t, err, "could not load fixture %q", name)
	defer fixture.Close()

	polygon, err := ParsePolygon(fixture)
	require.NoError(t, err, "could not parse fixture %q", name)
	return polygon
}

func LoadFixtureConstraints(t *testing.T, name string) ([]seidel.HalfPlane, error) {
	t.Helper()
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	require.NoError(t, err, "could not load fixture %q", name)
	defer fixture.Close()
	return FromSVG(fixture)
}
