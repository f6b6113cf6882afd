// Command lp2d solves two dimensional linear programs from problem files.
//
//	lp2d solve problem.yaml --plot out.png
//	lp2d check problem.yaml -- 1.5 -2
//	lp2d gen --n 25 > random.yaml
//
// Problem files are YAML, SVG (a convex polygon), or plain text with one "a b c"
// constraint per line; "-" reads text from stdin. See the problem package.
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/lp2d/internal/dbg"
	"github.com/osuushi/lp2d/plot"
	"github.com/osuushi/lp2d/problem"
	"github.com/osuushi/lp2d/seidel"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app     = kingpin.New("lp2d", "Solve two dimensional linear programs.")
	debug   = app.Flag("debug", "Log every step of the solver to stderr.").Bool()
	noColor = app.Flag("no-color", "Disable colored output.").Bool()

	solveCmd    = app.Command("solve", "Solve a problem file.")
	solveFile   = solveCmd.Arg("file", "Problem file (.yaml, .svg, or text; - for stdin).").Required().String()
	solveSeed   = solveCmd.Flag("seed", "Seed for the constraint order. 0 picks one at random.").Int64()
	solvePlot   = solveCmd.Flag("plot", "Write a picture of the problem to this PNG file.").String()
	solveImgcat = solveCmd.Flag("imgcat", "Show the picture in the terminal (iTerm).").Bool()
	solveScale  = solveCmd.Flag("scale", "Pixels per unit in the picture. 0 fits it.").Float64()
	solveYAML   = solveCmd.Flag("yaml", "Print the result as YAML.").Bool()

	checkCmd  = app.Command("check", "List the constraints a point violates. Exits 1 if there are any.")
	checkFile = checkCmd.Arg("file", "Problem file.").Required().String()
	checkX    = checkCmd.Arg("x", "X coordinate.").Required().Float64()
	checkY    = checkCmd.Arg("y", "Y coordinate.").Required().Float64()

	genCmd  = app.Command("gen", "Write a random feasible problem as YAML.")
	genN    = genCmd.Flag("n", "Number of constraints.").Default("25").Int()
	genSeed = genCmd.Flag("seed", "Random seed. 0 picks one at random.").Int64()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	au := aurora.NewAurora(!*noColor)
	if *debug {
		seidel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var err error
	switch command {
	case solveCmd.FullCommand():
		err = solve(au)
	case checkCmd.FullCommand():
		err = check(au)
	case genCmd.FullCommand():
		err = gen()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, au.Red(err.Error()))
		os.Exit(2)
	}
}

func solve(au aurora.Aurora) (err error) {
	p, err := problem.Load(*solveFile)
	if err != nil {
		return err
	}

	var opts []seidel.Option
	if *solveSeed != 0 {
		opts = append(opts, seidel.WithSeed(*solveSeed))
	}

	// Bad coefficients come back from the solver as panics
	defer func() {
		if recoveredErr := seidel.HandleSolvePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	solution := p.Solve(opts...)

	if *solveYAML {
		if err := problem.EncodeResult(os.Stdout, problem.NewResult(p, solution)); err != nil {
			return err
		}
	} else {
		printSolution(au, p, solution)
	}

	if *solvePlot == "" && !*solveImgcat {
		return nil
	}
	path := *solvePlot
	if path == "" {
		f, err := os.CreateTemp("", "lp2d-*.png")
		if err != nil {
			return err
		}
		f.Close()
		path = f.Name()
		defer os.Remove(path)
	}
	cx, cy := p.Direction()
	if err := plot.SavePNG(path, p.HalfPlanes(), cx, cy, solution, plot.Options{Scale: *solveScale}); err != nil {
		return err
	}
	if *solveImgcat {
		return plot.Cat(path, os.Stdout)
	}
	return nil
}

func printSolution(au aurora.Aurora, p *problem.Problem, solution seidel.Solution) {
	fmt.Printf("%s: %s\n", au.Bold(p.Name), solution.Status.Colorize(au))
	switch solution.Status {
	case seidel.Optimal:
		fmt.Printf("  point  (%g, %g)\n", solution.X, solution.Y)
		fmt.Printf("  value  %g\n", solution.Objective(p.Direction()))
		fmt.Printf("  basis  %v\n", solution.Basis)
	case seidel.PrimaryInfeasible:
		fmt.Printf("  conflict  %v\n", solution.Conflict)
	case seidel.DualInfeasible:
		fmt.Printf("  ray  (%g, %g)\n", solution.Ray.X, solution.Ray.Y)
	}
	fmt.Printf("  %d constraints, %d violations\n", solution.Stats.Constraints, solution.Stats.Violations)
}

func check(au aurora.Aurora) error {
	p, err := problem.Load(*checkFile)
	if err != nil {
		return err
	}
	constraints := p.HalfPlanes()
	violations := seidel.Violations(constraints, seidel.Point{X: *checkX, Y: *checkY})
	if len(violations) == 0 {
		fmt.Println(au.Green("feasible"))
		return nil
	}
	for _, i := range violations {
		fmt.Printf("%s %d: %v\n", au.Red("violates"), i, constraints[i])
	}
	os.Exit(1)
	return nil
}

// Random constraints that all contain the origin, so the problem is feasible.
func gen() error {
	seed := *genSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))
	constraints := make([]seidel.HalfPlane, *genN)
	for i := range constraints {
		constraints[i] = seidel.HalfPlane{
			A: r.Float64()*2 - 1,
			B: r.Float64()*2 - 1,
			C: r.Float64(),
		}
	}
	return problem.FromHalfPlanes(dbg.Label(), constraints).Encode(os.Stdout)
}
