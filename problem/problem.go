// Problem files for the solver.
//
// A problem is a YAML document:
//
//	name: basic            # optional
//	objective: [0, 1]      # optional, defaults to minimizing y
//	constraints:
//	  - [0, -1, 2]         # a, b, c for a*x + b*y <= c
//	svg: square.svg        # optional, relative to the problem file
//
// The polygon in an SVG file becomes one constraint per edge, so convex regions
// can be drawn instead of typed. Plain text files with one "a b c" line per
// constraint are accepted too.
package problem

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/osuushi/lp2d/seidel"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Problem struct {
	Name        string `yaml:"name,omitempty"`
	Objective   Row    `yaml:"objective,omitempty"`
	Constraints []Row  `yaml:"constraints"`
	SVG         string `yaml:"svg,omitempty"`

	// Edges of the SVG polygon, once loaded
	svgConstraints []seidel.HalfPlane
}

// A row of numbers, written on one line.
type Row []float64

func (r Row) MarshalYAML() (interface{}, error) {
	var node yaml.Node
	if err := node.Encode([]float64(r)); err != nil {
		return nil, err
	}
	node.Style = yaml.FlowStyle
	return &node, nil
}

// Decode a YAML problem. Unknown keys are an error, since a misspelled
// "objective" would otherwise silently solve the wrong problem. A referenced SVG
// file is not loaded; Load does that.
func Decode(r io.Reader) (*Problem, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var p Problem
	if err := decoder.Decode(&p); err != nil {
		if err == io.EOF {
			return nil, errors.New("empty problem")
		}
		return nil, errors.Wrap(err, "decoding problem")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load a problem from a file. The format goes by extension: .yaml or .yml for a
// problem document, .svg for a bare polygon (minimizing y), and anything else is
// read as text, one "a b c" constraint per line. The path "-" reads text from
// stdin.
func Load(path string) (*Problem, error) {
	if path == "-" {
		constraints, err := ReadText(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(err, "reading stdin")
		}
		return FromHalfPlanes("stdin", constraints), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening problem %q", path)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		p, err := Decode(f)
		if err != nil {
			return nil, errors.WithMessagef(err, "problem %q", path)
		}
		if p.Name == "" {
			p.Name = name
		}
		if p.SVG != "" {
			svgPath := p.SVG
			if !filepath.IsAbs(svgPath) {
				svgPath = filepath.Join(filepath.Dir(path), svgPath)
			}
			if p.svgConstraints, err = LoadSVG(svgPath); err != nil {
				return nil, errors.WithMessagef(err, "problem %q", path)
			}
		}
		return p, nil

	case ".svg":
		constraints, err := FromSVG(f)
		if err != nil {
			return nil, errors.WithMessagef(err, "svg %q", path)
		}
		p := &Problem{Name: name, SVG: filepath.Base(path), svgConstraints: constraints}
		return p, nil

	default:
		constraints, err := ReadText(f)
		if err != nil {
			return nil, errors.WithMessagef(err, "problem %q", path)
		}
		return FromHalfPlanes(name, constraints), nil
	}
}

func FromHalfPlanes(name string, constraints []seidel.HalfPlane) *Problem {
	p := &Problem{Name: name, Constraints: make([]Row, len(constraints))}
	for i, hp := range constraints {
		p.Constraints[i] = Row{hp.A, hp.B, hp.C}
	}
	return p
}

func (p *Problem) Validate() error {
	if len(p.Objective) != 0 && len(p.Objective) != 2 {
		return errors.Errorf("objective needs 2 values, got %d", len(p.Objective))
	}
	for i, row := range p.Constraints {
		if len(row) != 3 {
			return errors.Errorf("constraint %d needs 3 values (a, b, c), got %d", i, len(row))
		}
	}
	return nil
}

// The objective direction. Minimizing y unless the problem says otherwise.
func (p *Problem) Direction() (cx, cy float64) {
	if len(p.Objective) == 2 {
		return p.Objective[0], p.Objective[1]
	}
	return 0, 1
}

// Every constraint: the listed ones first, then the SVG polygon's edges.
func (p *Problem) HalfPlanes() []seidel.HalfPlane {
	result := make([]seidel.HalfPlane, 0, len(p.Constraints)+len(p.svgConstraints))
	for _, row := range p.Constraints {
		result = append(result, seidel.HalfPlane{A: row[0], B: row[1], C: row[2]})
	}
	return append(result, p.svgConstraints...)
}

func (p *Problem) Solve(opts ...seidel.Option) seidel.Solution {
	cx, cy := p.Direction()
	return seidel.NewSolver(opts...).Solve(cx, cy, p.HalfPlanes())
}

// Write the problem as YAML. Constraints from an SVG file are written out as
// plain constraints, so the output stands on its own.
func (p *Problem) Encode(w io.Writer) error {
	out := FromHalfPlanes(p.Name, p.HalfPlanes())
	out.Objective = p.Objective
	return encode(w, out)
}

func encode(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return errors.Wrap(err, "encoding yaml")
	}
	return errors.Wrap(encoder.Close(), "encoding yaml")
}

// Read constraints as text, one "a b c" per line. Blank lines and lines starting
// with # are skipped.
func ReadText(r io.Reader) ([]seidel.HalfPlane, error) {
	var constraints []seidel.HalfPlane
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse the constraint out of the line
		fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
		if len(fields) != 3 {
			return nil, errors.Errorf("line %d: want 3 values (a b c), got %d", lineNumber, len(fields))
		}
		var values [3]float64
		for i, field := range fields {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNumber)
			}
			values[i] = value
		}
		constraints = append(constraints, seidel.HalfPlane{A: values[0], B: values[1], C: values[2]})
	}
	return constraints, errors.Wrap(scanner.Err(), "reading constraints")
}
