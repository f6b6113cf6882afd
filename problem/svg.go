package problem

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/lp2d/seidel"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) SVG reader. It finds the one polygon in the
// document and takes its points attribute as given, without transforms.

func LoadSVG(path string) ([]seidel.HalfPlane, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening svg %q", path)
	}
	defer f.Close()
	constraints, err := FromSVG(f)
	return constraints, errors.WithMessagef(err, "svg %q", path)
}

// The constraints whose intersection is the polygon in the SVG document. The
// polygon must be convex, and may wind either way.
func FromSVG(r io.Reader) ([]seidel.HalfPlane, error) {
	polygon, err := ParsePolygon(r)
	if err != nil {
		return nil, err
	}
	if !polygon.IsConvex() {
		return nil, errors.New("polygon is not convex")
	}
	return polygon.HalfPlanes(), nil
}

// Parse the only polygon in an SVG document, made counterclockwise.
func ParsePolygon(r io.Reader) (seidel.Polygon, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return seidel.Polygon{}, errors.Wrap(err, "parsing svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return seidel.Polygon{}, errors.New("no polygon found")
	}
	if len(polygons) > 1 {
		return seidel.Polygon{}, errors.Errorf("%d polygons found, want one", len(polygons))
	}

	points, err := parsePoints(polygons[0].Attributes["points"])
	if err != nil {
		return seidel.Polygon{}, err
	}
	result := seidel.Polygon{Points: points}
	if result.IsEmpty() {
		return seidel.Polygon{}, errors.Errorf("polygon has %d points, want at least 3", len(points))
	}

	// Ensure that the polygon is CCW
	if !result.IsCCW() {
		result = result.Reverse()
	}
	return result, nil
}

// Points are "x,y" pairs separated by spaces.
func parsePoints(pointString string) ([]seidel.Point, error) {
	pointStrings := strings.Fields(pointString)
	points := make([]seidel.Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		coordinates := strings.Split(pointString, ",")
		if len(coordinates) != 2 {
			return nil, errors.Errorf("invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coordinates[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", coordinates[0])
		}
		y, err := strconv.ParseFloat(coordinates[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", coordinates[1])
		}
		points = append(points, seidel.Point{X: x, Y: y})
	}
	return points, nil
}
