package seidel

import "github.com/logrusorgru/aurora"

type Status int

const (
	// A finite minimizer exists and was returned.
	Optimal Status = iota
	// The constraints have no common point.
	PrimaryInfeasible
	// The constraints are satisfiable, but the objective has no lower bound on them.
	DualInfeasible
)

func (s Status) String() string {
	switch s {
	case Optimal:
		return "Optimal"
	case PrimaryInfeasible:
		return "PrimaryInfeasible"
	case DualInfeasible:
		return "DualInfeasible"
	}
	return "Status(?)"
}

// Status name colored for terminal output: green when optimal, red when
// infeasible, yellow when unbounded.
func (s Status) Colorize(au aurora.Aurora) aurora.Value {
	switch s {
	case Optimal:
		return au.Green(s.String())
	case PrimaryInfeasible:
		return au.Red(s.String())
	default:
		return au.Yellow(s.String())
	}
}
