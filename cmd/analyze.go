package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wcfrobert/wthisj/internal/diagram"
	"github.com/wcfrobert/wthisj/internal/shear"
)

var (
	analyzeFile        string
	analyzeShowDiagram bool
	analyzeExportFile  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute the punching shear stress distribution",
	Long: `Run the elastic punching shear stress analysis for a connection
defined in a JSON file.

The perimeter is discretized into fibers; each fiber's stress is the
superposition of direct shear and the shear-transferred fractions of
the unbalanced moments:

  v = P/A + γvx·Msc,x·y/Ix + γvy·Msc,y·x/Iy

Examples:
  wthisj analyze --file interior-column.json
  wthisj analyze -f corner.json --diagram
  wthisj analyze -f corner.json -o stress.png`,
	Run: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to connection JSON file [required]")
	analyzeCmd.MarkFlagRequired("file")

	analyzeCmd.Flags().BoolVar(&analyzeShowDiagram, "diagram", false, "Show ASCII stress plan view")
	analyzeCmd.Flags().StringVarP(&analyzeExportFile, "output", "o", "", "Export stress diagram to file (png, svg, pdf)")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	model, err := shear.LoadModel(analyzeFile)
	if err != nil {
		fmt.Printf("Error loading model: %v\n", err)
		return
	}
	if model.Load == nil {
		fmt.Println("Error: model has no load case; add a \"load\" block or use 'wthisj preview'")
		return
	}

	sec, err := model.Build()
	if err != nil {
		fmt.Printf("Error building section: %v\n", err)
		return
	}

	result, err := sec.Solve(*model.Load)
	if err != nil {
		fmt.Printf("Error solving: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     PUNCHING SHEAR STRESS ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if model.Name != "" {
		fmt.Printf("  Model: %s\n", model.Name)
	}
	if model.Description != "" {
		fmt.Printf("  Description: %s\n", model.Description)
	}
	fmt.Println()

	printGeometry(model, sec)
	printProperties(result.Properties)

	props := result.Properties
	fmt.Println("MOMENT TRANSFER:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  γvx:\t%.4f\n", result.GammaVx)
	fmt.Fprintf(w, "  γvy:\t%.4f\n", result.GammaVy)
	if model.Load.ConsiderPe {
		fmt.Fprintf(w, "  Eccentricity (ex, ey):\t(%.2f, %.2f)\n", result.Ex, result.Ey)
	}
	fmt.Fprintf(w, "  Msc,x:\t%.2f\n", result.MscX)
	fmt.Fprintf(w, "  Msc,y:\t%.2f\n", result.MscY)
	w.Flush()
	fmt.Println()

	fmt.Println("STRESS RESULTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Fibers solved:\t%d\n", len(result.Rows))
	fmt.Fprintf(w, "  Direct stress P/A:\t%.4f\n", model.Load.P/props.Area)
	fmt.Fprintf(w, "  v max:\t%.4f\n", result.VMax)
	fmt.Fprintf(w, "  v min:\t%.4f\n", result.VMin)
	w.Flush()
	fmt.Println()

	eq := result.Equilibrium
	fmt.Println("EQUILIBRIUM CHECK:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ΣvdA:\t%.4f\t(target %.4f)\n", eq.SumFz, eq.TargetFz)
	fmt.Fprintf(w, "  ΣvdA·y:\t%.4f\t(target %.4f)\n", eq.SumMx, eq.TargetMx)
	fmt.Fprintf(w, "  ΣvdA·x:\t%.4f\t(target %.4f)\n", eq.SumMy, eq.TargetMy)
	balanced := "✓"
	if !eq.Balanced {
		balanced = "⚠ NOT BALANCED"
	}
	fmt.Fprintf(w, "  Balanced:\t%s\n", balanced)
	w.Flush()
	fmt.Println()

	if len(result.Warnings) > 0 {
		fmt.Println("WARNINGS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		for _, warning := range result.Warnings {
			fmt.Printf("  ⚠ %s\n", warning)
		}
		fmt.Println()
	}

	fmt.Print(diagram.DrawSummaryBox("MAXIMUM SHEAR STRESS", []string{
		fmt.Sprintf("v max = %.4f", result.VMax),
		fmt.Sprintf("v min = %.4f", result.VMin),
	}))
	fmt.Println()

	if analyzeShowDiagram {
		fmt.Println(diagram.DrawASCIIPlan(planData(sec, result)))
	}

	if analyzeExportFile != "" {
		if err := diagram.ExportStressDiagram(planData(sec, result), analyzeExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", analyzeExportFile)
		}
	}
}

func printGeometry(model *shear.Model, sec *shear.Section) {
	cfg := sec.Config()
	fmt.Println("CONNECTION GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Column:\t%g x %g\n", cfg.Width, cfg.Height)
	fmt.Fprintf(w, "  Slab depth:\t%g\n", cfg.SlabDepth)
	if cfg.ManualPerimeter {
		fmt.Fprintf(w, "  Perimeter:\tuser-drawn (%d segments)\n", len(sec.Segments()))
	} else {
		fmt.Fprintf(w, "  Condition:\t%s\n", cfg.Condition)
	}
	if cfg.OverhangX != 0 || cfg.OverhangY != 0 {
		fmt.Fprintf(w, "  Overhangs (x, y):\t(%g, %g)\n", cfg.OverhangX, cfg.OverhangY)
	}
	if cfg.StudRailLength > 0 {
		fmt.Fprintf(w, "  Stud rail length:\t%g\n", cfg.StudRailLength)
	}
	if n := len(model.Openings); n > 0 {
		fmt.Fprintf(w, "  Openings:\t%d\n", n)
	}
	fmt.Fprintf(w, "  Patch size:\t%g\n", cfg.PatchSize)
	w.Flush()
	fmt.Println()
}

func printProperties(props shear.SectionProperties) {
	fmt.Println("SECTION PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  bo:\t%.2f\n", props.Bo)
	fmt.Fprintf(w, "  Area:\t%.2f\n", props.Area)
	fmt.Fprintf(w, "  Centroid (xc, yc):\t(%.3f, %.3f)\n", props.Xc, props.Yc)
	fmt.Fprintf(w, "  Ix:\t%.0f\n", props.Ix)
	fmt.Fprintf(w, "  Iy:\t%.0f\n", props.Iy)
	fmt.Fprintf(w, "  Ixy:\t%.0f\n", props.Ixy)
	fmt.Fprintf(w, "  θp:\t%.2f°\n", props.ThetaP)
	fmt.Fprintf(w, "  Extreme fibers (cx1, cx2):\t(%.2f, %.2f)\n", props.Cx1, props.Cx2)
	fmt.Fprintf(w, "  Extreme fibers (cy1, cy2):\t(%.2f, %.2f)\n", props.Cy1, props.Cy2)
	fmt.Fprintf(w, "  Active fibers:\t%d of %d\n", props.ActiveFiberCount, props.FiberCount)
	w.Flush()
	fmt.Println()
}
