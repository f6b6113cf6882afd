package problem

import (
	"io"

	"github.com/osuushi/lp2d/seidel"
)

// The YAML form of a solution.
type Result struct {
	Name     string   `yaml:"name,omitempty"`
	Status   string   `yaml:"status"`
	Point    Row      `yaml:"point,omitempty"`
	Value    *float64 `yaml:"value,omitempty"`
	Basis    []int    `yaml:"basis,omitempty,flow"`
	Conflict []int    `yaml:"conflict,omitempty,flow"`
	Ray      Row      `yaml:"ray,omitempty"`
	Stats    Stats    `yaml:"stats"`
}

type Stats struct {
	Constraints int `yaml:"constraints"`
	Violations  int `yaml:"violations"`
}

func NewResult(p *Problem, solution seidel.Solution) Result {
	result := Result{
		Name:     p.Name,
		Status:   solution.Status.String(),
		Basis:    solution.Basis,
		Conflict: solution.Conflict,
		Stats: Stats{
			Constraints: solution.Stats.Constraints,
			Violations:  solution.Stats.Violations,
		},
	}
	switch solution.Status {
	case seidel.Optimal:
		value := solution.Objective(p.Direction())
		result.Point = Row{solution.X, solution.Y}
		result.Value = &value
	case seidel.DualInfeasible:
		result.Point = Row{solution.X, solution.Y}
		result.Ray = Row{solution.Ray.X, solution.Ray.Y}
	}
	return result
}

func EncodeResult(w io.Writer, result Result) error {
	return encode(w, result)
}
