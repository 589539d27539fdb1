// Command curveforge generates Neverball-style map geometry from the
// command line. Each subcommand produces one curve; the resulting map
// is written to stdout or, with --file, to disk.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chazu/curveforge/pkg/curve"
	"github.com/chazu/curveforge/pkg/hull/quickhull"
	"github.com/chazu/curveforge/pkg/qmap"
	"github.com/chazu/curveforge/pkg/script"
)

var outputFile string

func main() {
	root := &cobra.Command{
		Use:           "curveforge",
		Short:         "Generate curved map geometry for Neverball",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&outputFile, "file", "f", "", "write output to file instead of stdout")

	root.AddCommand(
		classicCmd(),
		slopeCmd(),
		raytoCmd(),
		bankCmd(),
		catenaryCmd(),
		serpentineCmd(),
		scriptCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("error:"), err)
		os.Exit(1)
	}
}

// emit bakes a curve and writes the resulting map document.
func emit(c curve.Curve) error {
	b := qmap.NewBuilder(quickhull.New(), 0)
	brushes, err := c.Bake(b)
	if err != nil {
		return err
	}
	doc := qmap.NewDocument(qmap.Worldspawn(brushes)).AddNeverballMetadata()
	return write(doc.String())
}

func write(out string) error {
	if outputFile == "" {
		fmt.Print(out)
		return nil
	}
	return os.WriteFile(outputFile, []byte(out), 0o644)
}

// markRequired marks flags required, panicking on a typo in the flag
// name. Registration errors are programmer errors.
func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
}

func classicCmd() *cobra.Command {
	var c curve.Classic
	cmd := &cobra.Command{
		Use:   "classic",
		Short: "Generate a circular arc with different starting and ending radii",
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(c)
		},
	}
	f := cmd.Flags()
	f.IntVar(&c.N, "n", 0, "number of segments")
	f.Float64Var(&c.Ri0, "ri0", 0, "starting inner radius")
	f.Float64Var(&c.Ro0, "ro0", 0, "starting outer radius")
	f.Float64Var(&c.Ri1, "ri1", 0, "ending inner radius")
	f.Float64Var(&c.Ro1, "ro1", 0, "ending outer radius")
	f.Float64Var(&c.Theta0, "theta0", 0, "starting angle (deg)")
	f.Float64Var(&c.Theta1, "theta1", 0, "ending angle (deg)")
	f.Float64Var(&c.T, "t", 0, "thickness")
	markRequired(cmd, "n", "ri0", "ro0", "ri1", "ro1", "theta0", "theta1", "t")
	return cmd
}

func slopeCmd() *cobra.Command {
	var c curve.Slope
	cmd := &cobra.Command{
		Use:   "slope",
		Short: "Generate a curved slope; many options are available",
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(c)
		},
	}
	f := cmd.Flags()
	f.IntVar(&c.N, "n", 0, "number of segments")
	f.Float64Var(&c.Ri0, "ri0", 0, "starting inner radius")
	f.Float64Var(&c.Ro0, "ro0", 0, "starting outer radius")
	f.Float64Var(&c.Ri1, "ri1", 0, "ending inner radius")
	f.Float64Var(&c.Ro1, "ro1", 0, "ending outer radius")
	f.Float64Var(&c.Theta0, "theta0", 0, "starting angle (deg)")
	f.Float64Var(&c.Theta1, "theta1", 0, "ending angle (deg)")
	f.Float64Var(&c.HeightInnerTop0, "height-inner-top-0", 0, "starting inner height, top")
	f.Float64Var(&c.HeightInnerBot0, "height-inner-bot-0", 0, "starting inner height, bottom")
	f.Float64Var(&c.HeightOuterTop0, "height-outer-top-0", 0, "starting outer height, top")
	f.Float64Var(&c.HeightOuterBot0, "height-outer-bot-0", 0, "starting outer height, bottom")
	f.Float64Var(&c.HeightInnerTop1, "height-inner-top-1", 0, "ending inner height, top")
	f.Float64Var(&c.HeightInnerBot1, "height-inner-bot-1", 0, "ending inner height, bottom")
	f.Float64Var(&c.HeightOuterTop1, "height-outer-top-1", 0, "ending outer height, top")
	f.Float64Var(&c.HeightOuterBot1, "height-outer-bot-1", 0, "ending outer height, bottom")
	f.Float64Var(&c.HillInnerTop, "hill-inner-top", 0, "inner hill, top")
	f.Float64Var(&c.HillInnerBot, "hill-inner-bot", 0, "inner hill, bottom")
	f.Float64Var(&c.HillOuterTop, "hill-outer-top", 0, "outer hill, top")
	f.Float64Var(&c.HillOuterBot, "hill-outer-bot", 0, "outer hill, bottom")
	markRequired(cmd, "n", "ri0", "ro0", "ri1", "ro1", "theta0", "theta1",
		"height-inner-top-0", "height-inner-bot-0", "height-outer-top-0", "height-outer-bot-0",
		"height-inner-top-1", "height-inner-bot-1", "height-outer-top-1", "height-outer-bot-1")
	return cmd
}

func raytoCmd() *cobra.Command {
	var c curve.Rayto
	cmd := &cobra.Command{
		Use:   "rayto",
		Short: "Generate a curve with rays from a circle segment to a single point",
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(c)
		},
	}
	f := cmd.Flags()
	f.IntVar(&c.N, "n", 0, "number of segments")
	f.Float64Var(&c.R0, "r0", 0, "starting radius")
	f.Float64Var(&c.R1, "r1", 0, "ending radius")
	f.Float64Var(&c.Theta0, "theta0", 0, "starting angle (deg)")
	f.Float64Var(&c.Theta1, "theta1", 0, "ending angle (deg)")
	f.Float64Var(&c.X, "x", 0, "x-coordinate of corner")
	f.Float64Var(&c.Y, "y", 0, "y-coordinate of corner")
	f.Float64Var(&c.H, "h", 0, "height/thickness of curve")
	markRequired(cmd, "n", "r0", "r1", "theta0", "theta1", "x", "y", "h")
	return cmd
}

func bankCmd() *cobra.Command {
	var c curve.Bank
	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Generate a banked curve",
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(c)
		},
	}
	f := cmd.Flags()
	f.IntVar(&c.N, "n", 0, "number of segments")
	f.Float64Var(&c.Ri0, "ri0", 0, "starting inner radius")
	f.Float64Var(&c.Ro0, "ro0", 0, "starting outer radius")
	f.Float64Var(&c.Ri1, "ri1", 0, "ending inner radius")
	f.Float64Var(&c.Ro1, "ro1", 0, "ending outer radius")
	f.Float64Var(&c.Theta0, "theta0", 0, "starting angle (deg)")
	f.Float64Var(&c.Theta1, "theta1", 0, "ending angle (deg)")
	f.Float64Var(&c.H, "h", 0, "cone height")
	f.Float64Var(&c.T, "t", 0, "thickness of the bank")
	f.BoolVar(&c.Fill, "fill", false, "filled bank")
	markRequired(cmd, "n", "ri0", "ro0", "ri1", "ro1", "theta0", "theta1", "h", "t")
	return cmd
}

func catenaryCmd() *cobra.Command {
	var c curve.Catenary
	cmd := &cobra.Command{
		Use:   "catenary",
		Short: "Generate a catenary curve",
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(c)
		},
	}
	f := cmd.Flags()
	f.IntVar(&c.N, "n", 0, "number of segments")
	f.Float64Var(&c.X0, "x0", 0, "starting horizontal position of the curve")
	f.Float64Var(&c.Z0, "z0", 0, "starting height of the curve")
	f.Float64Var(&c.X1, "x1", 0, "ending horizontal position of the curve")
	f.Float64Var(&c.Z1, "z1", 0, "ending height of the curve")
	f.Float64Var(&c.S, "s", 0, "length of the curve (i.e. how long your rope is)")
	f.Float64Var(&c.W, "w", 0, "width of the curve")
	f.Float64Var(&c.T, "t", 0, "thickness of the curve")
	f.Float64Var(&c.InitialGuess, "initial-guess", 0, "initial guess for the catenary parameter 'a' used by Newton's method")
	markRequired(cmd, "n", "x0", "z0", "x1", "z1", "s", "w", "t")
	return cmd
}

func serpentineCmd() *cobra.Command {
	var c curve.Serpentine
	var offset string
	cmd := &cobra.Command{
		Use:   "serpentine",
		Short: "Generate a serpentine curve",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch offset {
			case "top":
				c.Offset = curve.OffsetTop
			case "middle":
				c.Offset = curve.OffsetMiddle
			case "bottom":
				c.Offset = curve.OffsetBottom
			default:
				return fmt.Errorf("invalid offset mode %q, expected top, middle, or bottom", offset)
			}
			return emit(c)
		},
	}
	f := cmd.Flags()
	f.IntVar(&c.N0, "n0", 0, "number of segments in the lower arc")
	f.IntVar(&c.N1, "n1", 0, "number of segments in the upper arc")
	f.Float64Var(&c.X, "x", 0, "ending horizontal position of the curve")
	f.Float64Var(&c.Z, "z", 0, "ending height of the curve")
	f.Float64Var(&c.Xm, "xm", 0, "horizontal position of the midpoint")
	f.Float64Var(&c.Zm, "zm", 0, "height of the midpoint")
	f.Float64Var(&c.W, "w", 0, "width of the curve")
	f.Float64Var(&c.T, "t", 0, "thickness of the curve")
	f.StringVar(&offset, "offset", "middle", "where thickness extends from the surface (top, middle, bottom)")
	markRequired(cmd, "n0", "n1", "x", "z", "xm", "zm", "w", "t")
	return cmd
}

func scriptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "script [file]",
		Short: "Evaluate a curve script and emit the resulting map",
		Long: "Evaluate a curve script and emit the resulting map.\n" +
			"Reads from the named file, or from stdin when no file is given.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var source []byte
			var err error
			if len(args) == 1 {
				source, err = os.ReadFile(args[0])
			} else {
				source, err = io.ReadAll(os.Stdin)
			}
			if err != nil {
				return err
			}

			engine := script.NewEngine(qmap.NewBuilder(quickhull.New(), 0))
			doc, evalErrs, err := engine.Evaluate(string(source))
			if err != nil {
				return err
			}
			if len(evalErrs) > 0 {
				for _, e := range evalErrs {
					fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("error:"), e)
				}
				return fmt.Errorf("script evaluation failed")
			}
			return write(doc.String())
		},
	}
	return cmd
}
