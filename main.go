// Command lifesat encodes Game of Life pattern searches as CNF, hands
// them to a SAT solver and prints the decoded patterns.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gitlab.com/terezi/lifesat/cnf"
	"gitlab.com/terezi/lifesat/geom"
	"gitlab.com/terezi/lifesat/pattern"
	"gitlab.com/terezi/lifesat/sat"
	"gitlab.com/terezi/lifesat/search"
)

type options struct {
	debug bool

	width, height, gens int
	transform           string
	deadBorder          bool
	alivePerGen         bool
	rle                 string

	solver string
	out    string
	force  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := options{}
	cmd := &cobra.Command{
		Use:           "lifesat",
		Short:         "SAT-based search for Game of Life patterns with spacetime symmetry",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if o.debug {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	cmd.PersistentFlags().BoolVar(&o.debug, "debug", false, "use debug log level")

	cmd.AddCommand(newEvolveCmd(&o))
	cmd.AddCommand(newShowCmd(&o))
	cmd.AddCommand(newEncodeCmd(&o))
	cmd.AddCommand(newSolveCmd(&o))
	return cmd
}

func addProblemFlags(cmd *cobra.Command, o *options) {
	cmd.Flags().IntVar(&o.width, "width", 6, "interior width of the search region")
	cmd.Flags().IntVar(&o.height, "height", 5, "interior height of the search region")
	cmd.Flags().IntVar(&o.gens, "gens", 2, "number of generations beyond the first")
	cmd.Flags().StringVar(&o.transform, "transform", "", "time transform a1,a2,a3,a4,bx,by,bt tying cells across generations")
	cmd.Flags().BoolVar(&o.deadBorder, "dead-border", true, "surround the region with a known-dead border")
	cmd.Flags().StringVar(&o.rle, "rle", "", "RLE pattern pinning generation 0")
}

func newEvolveCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evolve",
		Short: "Parse an RLE pattern and print its evolution",
		RunE: func(*cobra.Command, []string) error {
			if o.rle == "" {
				return fmt.Errorf("--rle is required")
			}
			k := pattern.NewKnown(o.rle, o.gens)
			for t := 0; t <= o.gens; t++ {
				k.PrintGen(os.Stdout, t)
				fmt.Println()
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&o.gens, "gens", 4, "number of generations to simulate")
	cmd.Flags().StringVar(&o.rle, "rle", "", "RLE pattern")
	return cmd
}

func newShowCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Build the search problem and print its variable grid",
		RunE: func(*cobra.Command, []string) error {
			pb, err := o.buildProblem()
			if err != nil {
				return err
			}
			pb.Render(os.Stdout)
			return nil
		},
	}
	addProblemFlags(cmd, o)
	return cmd
}

func newEncodeCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Build the search problem and write its DIMACS CNF to a file",
		RunE: func(*cobra.Command, []string) error {
			pb, err := o.buildProblem()
			if err != nil {
				return err
			}
			var big []cnf.BigClause
			if o.alivePerGen {
				big = pb.AliveClauses()
			}
			return pb.WriteCNF(o.out, o.force, big)
		},
	}
	addProblemFlags(cmd, o)
	cmd.Flags().BoolVar(&o.alivePerGen, "alive-per-gen", false, "require at least one live cell per generation")
	cmd.Flags().StringVar(&o.out, "out", "problem.cnf", "output file")
	cmd.Flags().BoolVar(&o.force, "force", false, "overwrite the output file if it exists")
	return cmd
}

func newSolveCmd(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Build the search problem, solve it and print the solution",
		RunE: func(*cobra.Command, []string) error {
			pb, err := o.buildProblem()
			if err != nil {
				return err
			}
			var big []cnf.BigClause
			if o.alivePerGen {
				big = pb.AliveClauses()
			}
			var solver sat.Solver
			if o.solver == "gini" {
				solver = sat.NewGini()
			} else {
				solver = sat.NewExec(o.solver)
			}
			res := solver.Solve(pb.NumVariables(), pb.Clauses(), big)
			switch res.Status {
			case sat.Sat:
				fmt.Println("SATISFIABLE")
				solution := pb.Decode(res.Model)
				for t := pb.Bounds().T.Lo; t <= pb.Bounds().T.Hi; t++ {
					solution.PrintGen(os.Stdout, t)
					fmt.Println()
				}
			case sat.Unsat:
				fmt.Println("UNSATISFIABLE")
			default:
				return fmt.Errorf("solver error: %s", res.Msg)
			}
			return nil
		},
	}
	addProblemFlags(cmd, o)
	cmd.Flags().BoolVar(&o.alivePerGen, "alive-per-gen", true, "require at least one live cell per generation")
	cmd.Flags().StringVar(&o.solver, "solver", "gini", `solver to use: "gini" or an external binary such as kissat`)
	return cmd
}

// buildProblem assembles the search region: an interior grid, optionally
// wrapped in a known-dead border, every cell tied by the configured time
// transform, and generation 0 optionally pinned to an RLE pattern.
func (o *options) buildProblem() (*search.Problem, error) {
	width, height := o.width, o.height
	if o.deadBorder {
		width += 2
		height += 2
	}
	vp := pattern.NewVariableGrid(width, height, o.gens)
	if o.deadBorder {
		vp.ShiftBy(geom.Point{X: -1, Y: -1})
	}

	if o.transform != "" {
		tr, err := parseTransform(o.transform)
		if err != nil {
			return nil, err
		}
		group := vp.AddTimeGroup(tr)
		vp.SetCellGroupIf(group, func(pattern.Cell) bool { return true })
	}
	if o.deadBorder {
		vp.SetKnownIf(false, func(c pattern.Cell) bool { return vp.IsBoundary(c.Pos) })
	}
	if o.rle != "" {
		k := pattern.NewKnown(o.rle, 0)
		vp.SetKnownIf(false, func(c pattern.Cell) bool { return c.Pos.T == 0 && !c.Known })
		kb := k.Bounds()
		for y := kb.Y.Lo; y <= kb.Y.Hi; y++ {
			for x := kb.X.Lo; x <= kb.X.Hi; x++ {
				if k.State(geom.Point{X: x, Y: y}) {
					vp.SetKnown(geom.Point{X: x, Y: y}, true)
				}
			}
		}
	}

	pb := search.New(vp.Bounds())
	pb.AddEntry(vp, search.All)
	if err := pb.Build(); err != nil {
		return nil, err
	}
	return pb, nil
}

// parseTransform reads "a1,a2,a3,a4,bx,by,bt".
func parseTransform(s string) (geom.AffineTransform, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 7 {
		return geom.AffineTransform{}, fmt.Errorf("invalid transform %q: want 7 comma-separated integers", s)
	}
	vals := make([]int, 7)
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return geom.AffineTransform{}, fmt.Errorf("invalid transform %q: %v", s, err)
		}
		vals[i] = v
	}
	return geom.AffineTransform{
		A1: vals[0], A2: vals[1], A3: vals[2], A4: vals[3],
		BX: vals[4], BY: vals[5], BT: vals[6],
	}, nil
}
