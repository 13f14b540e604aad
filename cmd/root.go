package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wcfrobert/wthisj/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "wthisj",
	Short: "Punching shear stress analysis",
	Long: `wthisj - What The Heck Is Sigma J

A CLI tool for elastic punching shear stress analysis of
column-to-slab connections using the superposition method.

This tool helps structural engineers:
  - Generate critical shear perimeters for interior, edge, and
    corner columns, with or without stud rails
  - Account for nearby slab openings
  - Compute section properties (bo, centroid, Ix, Iy, Ixy)
  - Evaluate the direct-plus-bending stress superposition
    v = P/A + γvx·Msc,x·y/Ix + γvy·Msc,y·x/Iy

Stress demand only: shear capacity is outside this tool's scope.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   wthisj v%-48s║\n", version.Version)
		fmt.Println("  ║   Punching Shear Stress Analysis                          ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Elastic punching shear stress analysis of column-to-slab")
		fmt.Println("  connections using the superposition method.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • All nine column conditions (interior, edge, corner)")
		fmt.Println("    • Stud rail perimeters and user-drawn custom perimeters")
		fmt.Println("    • Opening-driven perimeter removal")
		fmt.Println("    • Principal orientation rotation and Pe adjustment")
		fmt.Println()
		fmt.Println("  Use 'wthisj --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
